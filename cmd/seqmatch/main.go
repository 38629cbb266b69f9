package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/arthur-debert/seqmatch/internal/cli"
	"github.com/arthur-debert/seqmatch/pkg/output"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, cli.ErrNoMatch) {
			// The verdict was already rendered; the exit code is the signal.
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, output.MismatchStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(2)
	}
}
