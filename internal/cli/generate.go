package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/utkloud/archdiagrams/pkg/config"
	"github.com/utkloud/archdiagrams/pkg/diagram"
	"github.com/utkloud/archdiagrams/pkg/drawio"
	"github.com/utkloud/archdiagrams/pkg/topology"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output     string   // output directory for diagram files
	formats    []string // output formats: "png", "svg", "dot"
	convert    bool     // convert the emitted DOT to Draw.io format
	native     bool     // fall back to the built-in Draw.io exporter when the tool is missing
	configPath string   // optional TOML config file
	summary    bool     // print the architecture recap after generation
}

// newGenerateCmd creates the generate command for rendering topologies.
//
// Default settings:
//   - output: diagrams/
//   - formats: png, dot
//   - convert: true (Draw.io conversion is attempted, failure is reported
//     but never fails the command)
//   - summary: true
func newGenerateCmd() *cobra.Command {
	var formatsStr string
	opts := generateOpts{
		convert: true,
		summary: true,
	}

	cmd := &cobra.Command{
		Use:       "generate [topology]",
		Short:     "Generate architecture diagrams for one or all topologies",
		Long:      fmt.Sprintf("Generate architecture diagrams. Available topologies: %s.\nWith no argument, all topologies are generated.", strings.Join(topology.Names(), ", ")),
		ValidArgs: topology.Names(),
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("output") {
				cfg.OutputDir = opts.output
			}
			if cmd.Flags().Changed("format") {
				cfg.Formats = strings.Split(formatsStr, ",")
			}
			if err := diagram.ValidateFormats(cfg.Formats); err != nil {
				return err
			}
			opts.formats = cfg.Formats

			names := topology.Names()
			if len(args) == 1 {
				names = args[:1]
			}
			for _, name := range names {
				if err := runGenerate(cmd.Context(), name, cfg, &opts); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "diagrams", "output directory")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "png,dot", "output format(s): png, svg, dot (comma-separated)")
	cmd.Flags().BoolVar(&opts.convert, "convert", opts.convert, "convert DOT output to Draw.io format")
	cmd.Flags().BoolVar(&opts.native, "native", false, "use the built-in Draw.io exporter if "+drawio.ToolName+" is missing")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "TOML config file")
	cmd.Flags().BoolVar(&opts.summary, "summary", opts.summary, "print the architecture summary after generation")

	return cmd
}

// formatList renders a format slice for display, e.g. "PNG and DOT".
func formatList(formats []string) string {
	upper := make([]string, len(formats))
	for i, f := range formats {
		upper[i] = strings.ToUpper(f)
	}
	if len(upper) <= 1 {
		return strings.Join(upper, "")
	}
	return strings.Join(upper[:len(upper)-1], ", ") + " and " + upper[len(upper)-1]
}

// loadConfig returns the defaults when no config file is given.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// runGenerate renders a single topology and runs the Draw.io conversion.
// Conversion failure is reported but never propagated: diagram generation
// succeeded and its files are already on disk.
func runGenerate(ctx context.Context, name string, cfg config.Config, opts *generateOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	d, err := topology.BuildWith(name, topology.Palette(cfg.Palette))
	if err != nil {
		return err
	}
	cfg.Apply(d)
	logger.Debugf("Built %s: %d nodes, %d edges", name, d.NodeCount(), d.EdgeCount())

	sp := newSpinner(ctx, fmt.Sprintf("Rendering %s", name))
	sp.Start()
	paths, err := diagram.Render(ctx, d, cfg.OutputDir, opts.formats)
	sp.Stop()
	if err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	printSuccess("%s files generated in %s/", formatList(opts.formats), cfg.OutputDir)
	for _, p := range paths {
		logger.Debugf("Wrote %s", p)
	}

	if opts.convert {
		if err := runConversion(ctx, d, cfg, opts); err != nil {
			return err
		}
	}

	prog.done(fmt.Sprintf("Generated %s", name))

	if opts.summary {
		if err := printRecap(os.Stdout, name); err != nil {
			return err
		}
	}
	return nil
}

// runConversion converts the emitted DOT file to Draw.io and prints one line
// per outcome. The three outcomes (converted, tool failed, tool missing) are
// all terminal for the conversion step only; none fail the generate command.
func runConversion(ctx context.Context, d *diagram.Diagram, cfg config.Config, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	dotPath := diagram.DOTPath(d, cfg.OutputDir)
	if _, err := os.Stat(dotPath); err != nil {
		printWarning("Skipping Draw.io conversion: no DOT output (add 'dot' to --format)")
		return nil
	}
	outPath := strings.TrimSuffix(dotPath, ".dot") + ".drawio"

	sp := newSpinner(ctx, "Converting to Draw.io")
	sp.Start()
	conv := drawio.Converter{Tool: cfg.Converter}
	err := conv.Convert(ctx, dotPath, outPath)
	sp.Stop()

	switch {
	case err == nil:
		printSuccess("Draw.io file generated: %s", outPath)
	case ctx.Err() != nil:
		return ctx.Err()
	case errors.Is(err, drawio.ErrToolNotFound) && opts.native:
		logger.Debug("Conversion tool missing, using built-in exporter")
		if err := drawio.WriteNative(d, outPath); err != nil {
			return err
		}
		printSuccess("Draw.io file generated (built-in exporter, no layout): %s", outPath)
	case errors.Is(err, drawio.ErrToolNotFound):
		printError("%v", err)
	default:
		printError("Failed to convert to Draw.io format: %v", err)
	}
	return nil
}
