package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphlab/gridgraph"
)

var (
	// ErrNoGrid is returned by floodfill when the document has no grid.
	ErrNoGrid = errors.New("cli: document has no grid")

	// ErrNoFillValue is returned when a repaint is requested without --value.
	ErrNoFillValue = errors.New("cli: --value is required unless --islands is set")
)

func (a *app) floodFillCommand() *cobra.Command {
	var (
		row, col, value   int
		diagonal, islands bool
	)
	cmd := &cobra.Command{
		Use:   "floodfill",
		Short: "Repaint the region of the document grid containing (row, col)",
		Long: `Repaint the region of the document grid containing (row, col).

With --islands the grid is left untouched: cells with a value of at least 1
are land, and the command lists every island and the cheapest bridge of
converted water cells between the first two.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := a.document(cmd)
			if err != nil {
				return err
			}
			if len(doc.Grid) == 0 {
				return ErrNoGrid
			}
			conn := gridgraph.Conn4
			if diagonal {
				conn = gridgraph.Conn8
			}
			if islands {
				return a.islands(cmd, doc.Grid, conn)
			}
			if !cmd.Flags().Changed("value") {
				return ErrNoFillValue
			}

			done := a.rec.Track("floodfill")
			painted := gridgraph.FloodFillConn(doc.Grid, row, col, value, conn)
			a.observe(cmd, "floodfill", done, nil, false)

			p := a.printer(cmd.OutOrStdout())
			p.Heading("painted %d cell(s)", painted)
			for _, r := range doc.Grid {
				p.Line("%s", join(r))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&row, "row", 0, "seed row")
	cmd.Flags().IntVar(&col, "col", 0, "seed column")
	cmd.Flags().IntVar(&value, "value", 0, "replacement value")
	cmd.Flags().BoolVar(&diagonal, "diagonal", false, "treat diagonal neighbours as connected")
	cmd.Flags().BoolVar(&islands, "islands", false, "list land islands and bridge the first two instead of repainting")
	return cmd
}

// islands reports the land components of grid and, when there are at least
// two, the cheapest bridge between island 0 and island 1.
func (a *app) islands(cmd *cobra.Command, grid [][]int, conn gridgraph.Connectivity) error {
	gg, err := gridgraph.From2D(grid, conn)
	if err != nil {
		return err
	}
	g := gg.ToCoreGraph()
	a.rec.ObserveGraph(g.VertexCount(), g.EdgeCount())

	done := a.rec.Track("islands")
	comps := gg.ConnectedComponents()
	var (
		bridge []gridgraph.Point
		cost   int
	)
	if len(comps) >= 2 {
		bridge, cost, err = gg.ExpandIsland(0, 1)
	}
	a.observe(cmd, "islands", done, err, false)
	if err != nil {
		return err
	}

	p := a.printer(cmd.OutOrStdout())
	p.Heading("%d island(s)", len(comps))
	for i, c := range comps {
		p.Line("island %d: %d cell(s) from (%d,%d)", i, len(c), c[0].Y, c[0].X)
	}
	if bridge == nil {
		return nil
	}
	cells := make([]string, len(bridge))
	for i, pt := range bridge {
		cells[i] = fmt.Sprintf("(%d,%d)", pt.Y, pt.X)
	}
	p.Line("bridge 0-1 costs %d: %s", cost, strings.Join(cells, " "))
	return nil
}
