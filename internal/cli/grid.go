package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/panels/pkg/io"
	"github.com/matzehuels/panels/pkg/layout"
)

// gridCommand creates the grid command, which prints the occupancy map and
// placements of every grid in a dashboard description.
func (c *CLI) gridCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "grid [file]",
		Short: "Show the occupancy of every grid in a dashboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := io.ImportTOML(args[0])
			if err != nil {
				return err
			}
			grids := d.Grids()
			if len(grids) == 0 {
				printInfo("No grids in %s", args[0])
				return nil
			}
			out := cmd.OutOrStdout()
			for i, g := range grids {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, formatGrid(g))
			}
			return nil
		},
	}
}

// formatGrid renders a grid heading, its occupancy map and one line per
// placed object.
func formatGrid(g *layout.GridSpec) string {
	s := StyleTitle.Render(g.Name()) + " " +
		StyleDim.Render(fmt.Sprintf("%s×%s", StyleNumber.Render(fmt.Sprint(g.NRows())), StyleNumber.Render(fmt.Sprint(g.NCols()))))
	s += "\n" + formatOccupancy(g.Grid())
	for _, it := range g.Items() {
		s += "\n  " + StyleDim.Render(it.Region.String()) + " " + StyleValue.Render(it.Object.Repr(1))
	}
	return s
}
