package output

import "github.com/charmbracelet/lipgloss"

// Default styles for the text renderer.
var (
	MatchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	MismatchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	NameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)
