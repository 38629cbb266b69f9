// Package cli wires up the seqmatch command tree.
package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/seqmatch/internal/version"
	"github.com/arthur-debert/seqmatch/pkg/logging"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		noColor   bool
		cfgPath   string
	)

	rootCmd := &cobra.Command{
		Use:   "seqmatch",
		Short: "Structural pattern matching over data",
		Long: `seqmatch matches regex-like patterns against arbitrary nested data:
sequences, maps, scalars and text. Patterns combine literals, wildcards,
captures, quantifiers, groups, alternation and negation; a successful
match reports the names the pattern bound along the way.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file (default is $XDG_CONFIG_HOME/seqmatch/seqmatch.toml)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newMatchCmd(&noColor, &cfgPath))
	rootCmd.AddCommand(newTopicsCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("seqmatch version %s\n", version.Version)
			cmd.Printf("  commit: %s\n", version.Commit)
			cmd.Printf("  built:  %s\n", version.Date)
		},
	}
}
