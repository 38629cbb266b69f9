// Package output renders match results for people and for pipelines: a
// styled verdict plus bindings table on terminals, JSON or YAML when a
// machine is reading.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/seqmatch/pkg/errors"
	"github.com/arthur-debert/seqmatch/pkg/logging"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Result is one attempt's outcome.
type Result struct {
	Matched  bool           `json:"matched" yaml:"matched"`
	Bindings map[string]any `json:"bindings,omitempty" yaml:"bindings,omitempty"`
}

// Renderer writes match results in a fixed format.
type Renderer struct {
	writer  io.Writer
	format  string
	noColor bool
}

// NewRenderer builds a renderer for the given writer. Color is dropped
// when noColor is set, when NO_COLOR is in the environment, or when the
// writer is not a terminal.
func NewRenderer(w io.Writer, format string, noColor bool) (*Renderer, error) {
	log := logging.GetLogger("output")

	switch format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported output format %q", format)
	}

	if !noColor {
		noColor = os.Getenv("NO_COLOR") != "" || !writerIsTerminal(w)
	}
	if !noColor {
		renderer := lipgloss.NewRenderer(w)
		log.Debug().
			Str("colorProfile", fmt.Sprintf("%v", renderer.ColorProfile())).
			Msg("color output enabled")
		lipgloss.SetDefaultRenderer(renderer)
	} else {
		lipgloss.SetColorProfile(termenv.Ascii)
		pterm.DisableColor()
	}

	return &Renderer{writer: w, format: format, noColor: noColor}, nil
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// Render writes one result in the renderer's format.
func (r *Renderer) Render(result *Result) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.writer)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode result as JSON")
		}
		return nil

	case FormatYAML:
		data, err := yaml.Marshal(result)
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode result as YAML")
		}
		_, err = r.writer.Write(data)
		return err
	}
	return r.renderText(result)
}

func (r *Renderer) renderText(result *Result) error {
	verdict := MatchStyle.Render("match")
	if !result.Matched {
		verdict = MismatchStyle.Render("no match")
	}
	if _, err := fmt.Fprintln(r.writer, verdict); err != nil {
		return err
	}

	if !result.Matched || len(result.Bindings) == 0 {
		return nil
	}

	names := make([]string, 0, len(result.Bindings))
	for name := range result.Bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	data := pterm.TableData{{"name", "value"}}
	for _, name := range names {
		data = append(data, []string{
			NameStyle.Render(name),
			fmt.Sprintf("%v", result.Bindings[name]),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to render bindings table")
	}
	_, err = fmt.Fprintln(r.writer, table)
	return err
}
