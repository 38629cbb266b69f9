package cli

import (
	stderrors "errors"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/seqmatch/pkg/config"
	"github.com/arthur-debert/seqmatch/pkg/loader"
	"github.com/arthur-debert/seqmatch/pkg/logging"
	"github.com/arthur-debert/seqmatch/pkg/match"
	"github.com/arthur-debert/seqmatch/pkg/output"
)

// ErrNoMatch marks a clean mismatch: the attempt ran fine and the answer
// is no. main translates it to exit code 1 without printing anything.
var ErrNoMatch = stderrors.New("no match")

func newMatchCmd(noColor *bool, cfgPath *string) *cobra.Command {
	var (
		patternPath string
		valuePath   string
		valueFormat string
		outFormat   string
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match a pattern file against a value document",
		Long: `Load a pattern from a YAML pattern file and a value from a JSON, YAML,
TOML or XML document, run one match attempt, and print the verdict with
any names the pattern bound. Exits 0 on a match, 1 on a mismatch.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.match")

			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}

			pat, err := loader.LoadPattern(patternPath)
			if err != nil {
				return err
			}
			value, err := loader.LoadValue(valuePath, valueFormat)
			if err != nil {
				return err
			}

			m, err := match.New(match.WithMaxDepth(cfg.Engine.MaxDepth))
			if err != nil {
				return err
			}
			ok, err := m.Attempt(value, pat)
			if err != nil {
				return err
			}
			logger.Info().Bool("matched", ok).Msg("attempt finished")

			if outFormat == "" {
				outFormat = cfg.Output.Format
			}
			renderer, err := output.NewRenderer(cmd.OutOrStdout(), outFormat, *noColor || cfg.Output.NoColor)
			if err != nil {
				return err
			}
			result := &output.Result{Matched: ok, Bindings: m.Bound()}
			if err := renderer.Render(result); err != nil {
				return err
			}

			if !ok {
				return ErrNoMatch
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&patternPath, "pattern", "p", "", "Pattern file (YAML pattern DSL)")
	cmd.Flags().StringVarP(&valuePath, "value", "i", "", "Value document to match against")
	cmd.Flags().StringVarP(&valueFormat, "format", "f", "", "Value format: json, yaml, toml or xml (default: by extension)")
	cmd.Flags().StringVarP(&outFormat, "output", "o", "", "Output format: text, json or yaml (default: from config)")
	_ = cmd.MarkFlagRequired("pattern")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}
