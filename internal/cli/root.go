// Package cli implements the archdiagrams command-line interface.
//
// This package provides commands for generating the built-in Azure
// architecture diagrams, converting DOT output to Draw.io, printing
// architecture summaries, and previewing generated files over HTTP. The CLI
// is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Render one or all topologies to PNG/SVG/DOT and Draw.io
//   - convert: Convert an existing DOT file to Draw.io format
//   - summary: Print the fixed architecture recap
//   - serve: Serve the output directory for browser preview
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/utkloud/archdiagrams/pkg/buildinfo"
)

// appName is the application name used for the binary and display.
const appName = "archdiagrams"

// Execute runs the archdiagrams CLI and returns an error if any command
// fails. This is the main entry point for the CLI application. The context
// is threaded to every command so Ctrl-C cancels in-flight rendering and
// conversion subprocesses.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Archdiagrams generates Azure architecture diagrams as code",
		Long:         `Archdiagrams renders fixed Azure deployment topologies (nodes, subnets, traffic flows) as PNG, SVG, DOT, and Draw.io diagrams, with a printed architecture summary.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newSummaryCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
