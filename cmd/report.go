package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alexiusacademia/antgeom/internal/design"
	"github.com/alexiusacademia/antgeom/internal/diagram"
	"github.com/alexiusacademia/antgeom/internal/geometry"
	"github.com/alexiusacademia/antgeom/internal/units"
	"github.com/spf13/cobra"
)

const rule = "───────────────────────────────────────────────────────────────"

// outputOptions are the presentation flags shared by generating commands.
type outputOptions struct {
	unit    string
	diagram bool
	points  bool
	json    bool
	output  string
}

func addOutputFlags(c *cobra.Command, o *outputOptions) {
	c.Flags().StringVarP(&o.unit, "unit", "u", string(units.Millimeter), "Length unit of the dimensions (mm, m)")
	c.Flags().BoolVar(&o.diagram, "diagram", false, "Show ASCII layer diagram")
	c.Flags().BoolVar(&o.points, "points", false, "List every generated point")
	c.Flags().BoolVar(&o.json, "json", false, "Print the generation as JSON")
	c.Flags().StringVarP(&o.output, "output", "o", "", "Export layer diagram to file (png, svg, pdf)")
}

// generateDesign validates d and runs the engine on it in the design's own
// unit.
func generateDesign(d *design.Design) (*geometry.Generation, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return geometry.New().Generate(d.Topology, d.Params(d.Unit))
}

// report prints a generation in the format selected by opts. It is used for
// partial generations too, so it never assumes any layer is present.
func report(out io.Writer, title string, unit units.Unit, gen *geometry.Generation, opts outputOptions) error {
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(gen)
	}

	u := unit.Label()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(out, "     %s\n", title)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "SIZING HINT:")
	fmt.Fprintln(out, rule)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Topology:\t%s\n", gen.Topology)
	fmt.Fprintf(w, "  Length:\t%.4g %s\n", gen.Hint.Length, u)
	if gen.Hint.Width != 0 {
		fmt.Fprintf(w, "  Width:\t%.4g %s\n", gen.Hint.Width, u)
	}
	if gen.Hint.Radius != 0 {
		fmt.Fprintf(w, "  Radius:\t%.4g %s\n", gen.Hint.Radius, u)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "LAYERS:")
	fmt.Fprintln(out, rule)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Layer\tShapes\tPoints\n")
	layerRow(w, "Conductor", gen.Layers.Conductor)
	layerRow(w, "Substrate", gen.Layers.Substrate)
	layerRow(w, "Superstrate", gen.Layers.Superstrate)
	samples := 0
	for _, m := range gen.Layers.Solids {
		for _, row := range m {
			samples += len(row)
		}
	}
	fmt.Fprintf(w, "  Solids\t%d\t%d\n", len(gen.Layers.Solids), samples)
	w.Flush()
	fmt.Fprintln(out)

	if len(gen.Layers.Solids) > 0 {
		fmt.Fprintln(out, "WIRE ARMS:")
		fmt.Fprintln(out, rule)
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for i, m := range gen.Layers.Solids {
			lo, hi := m.ZRange()
			fmt.Fprintf(w, "  Arm %d:\tz = [%.4g, %.4g] %s\n", i+1, lo, hi, u)
		}
		w.Flush()
		fmt.Fprintln(out)
	}

	if opts.points {
		printPoints(out, "CONDUCTOR", gen.Layers.Conductor)
		printPoints(out, "SUBSTRATE", gen.Layers.Substrate)
		printPoints(out, "SUPERSTRATE", gen.Layers.Superstrate)
	}

	fmt.Fprint(out, diagram.DrawSummaryBox("VIEW VOLUME ("+u+")", []string{
		fmt.Sprintf("x: [%.4g, %.4g]", gen.View.X[0], gen.View.X[1]),
		fmt.Sprintf("y: [%.4g, %.4g]", gen.View.Y[0], gen.View.Y[1]),
		fmt.Sprintf("z: [%.4g, %.4g]", gen.View.Z[0], gen.View.Z[1]),
	}))
	fmt.Fprintln(out)

	pl := diagram.PlaneFor(gen.Topology)
	if opts.diagram {
		rows := 24
		if pl == diagram.PlaneXZ {
			rows = 30
		}
		fmt.Fprintln(out, diagram.DrawLayers(gen, pl, 60, rows))
	}

	if opts.output != "" {
		if err := diagram.ExportLayers(gen, pl, u, opts.output); err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Fprintf(out, "Diagram exported to: %s\n", opts.output)
	}
	return nil
}

func layerRow(w io.Writer, name string, shapes []geometry.Shape) {
	n := 0
	for _, s := range shapes {
		n += len(s)
	}
	fmt.Fprintf(w, "  %s\t%d\t%d\n", name, len(shapes), n)
}

func printPoints(out io.Writer, layer string, shapes []geometry.Shape) {
	if len(shapes) == 0 {
		return
	}
	fmt.Fprintf(out, "%s POINTS:\n", layer)
	fmt.Fprintln(out, rule)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  Shape\t#\tx\ty\tz\t\n")
	for i, s := range shapes {
		for j, p := range s {
			fmt.Fprintf(w, "  %d\t%d\t%.4f\t%.4f\t%.4f\t\n", i+1, j+1, p.X, p.Y, p.Z)
		}
	}
	w.Flush()
	fmt.Fprintln(out)
}
