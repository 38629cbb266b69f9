package cli

import (
	"embed"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/seqmatch/pkg/errors"
)

//go:embed docs/*.md
var topicsFS embed.FS

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics [name]",
		Short: "Browse the built-in documentation",
		Long:  `Without arguments, list the available help topics. With a name, render that topic.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, name := range topicNames() {
					cmd.Println(name)
				}
				return nil
			}
			return renderTopic(cmd, args[0])
		},
	}
}

func topicNames() []string {
	entries, err := topicsFS.ReadDir("docs")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}

func renderTopic(cmd *cobra.Command, name string) error {
	content, err := topicsFS.ReadFile("docs/" + name + ".md")
	if err != nil {
		return errors.Newf(errors.ErrNotFound, "no topic %q; run seqmatch topics to list them", name)
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		// Fall back to the raw markdown.
		cmd.Println(string(content))
		return nil
	}
	rendered, err := renderer.Render(string(content))
	if err != nil {
		cmd.Println(string(content))
		return nil
	}
	cmd.Print(rendered)
	return nil
}
