package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/utkloud/archdiagrams/pkg/drawio"
)

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	output string // output .drawio path; empty derives from input
	tool   string // conversion executable override
}

// newConvertCmd creates the convert command for standalone DOT to Draw.io
// conversion. Unlike the conversion step inside generate, a failure here is
// the whole point of the command, so it propagates to the exit code.
func newConvertCmd() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert <file.dot>",
		Short: "Convert a DOT file to Draw.io format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input with .drawio extension)")
	cmd.Flags().StringVar(&opts.tool, "tool", "", "conversion executable (default: "+drawio.ToolName+")")

	return cmd
}

func runConvert(cmd *cobra.Command, input string, opts *convertOpts) error {
	logger := loggerFromContext(cmd.Context())

	if filepath.Ext(input) != ".dot" {
		return fmt.Errorf("input must be a .dot file: %s", input)
	}
	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, ".dot") + ".drawio"
	}
	logger.Debugf("Converting %s -> %s", input, output)

	conv := drawio.Converter{Tool: opts.tool}
	if err := conv.Convert(cmd.Context(), input, output); err != nil {
		if errors.Is(err, drawio.ErrToolNotFound) {
			printError("%v", err)
		}
		return err
	}

	printSuccess("Draw.io file generated: %s", output)
	return nil
}
