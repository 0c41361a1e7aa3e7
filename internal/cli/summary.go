package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/utkloud/archdiagrams/pkg/summary"
	"github.com/utkloud/archdiagrams/pkg/topology"
)

// newSummaryCmd creates the summary command, which prints the fixed
// architecture recap without generating any files.
func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "summary [topology]",
		Short:     "Print the architecture summary",
		Long:      fmt.Sprintf("Print the fixed architecture recap. Available topologies: %s.", strings.Join(topology.Names(), ", ")),
		ValidArgs: topology.Names(),
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := topology.Names()
			if len(args) == 1 {
				names = args[:1]
			}
			for _, name := range names {
				if err := printRecap(os.Stdout, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// printRecap writes the recap for one topology: a styled title line followed
// by the plain-text block from the summary package.
func printRecap(w io.Writer, name string) error {
	d, err := topology.Build(name)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, styleTitle.Render(d.Title))
	return summary.Fprint(w, name)
}
