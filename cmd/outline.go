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

var (
	outlineArgs patchFlags
	outlineFile string
	outlineTo   string

	outlineOpts outputOptions
)

var outlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "Regenerate a patch top layer outline for manufacturing",
	Long: `Regenerate the conductor outline of a rectangular patch in the plane
of the conductor. Dimensions are given the same way as for 'antgeom patch'
(or with --file) and the outline is written in meters unless --to mm.

The outline is the geometry handed to DXF and Gerber writers; --output
draws it to a png, svg or pdf file.

Examples:
  antgeom outline --width 38.04 --length 29.44 --x0 9.5
  antgeom outline --file patch.json -o rectangular_patch.svg`,
	Run: func(cmd *cobra.Command, args []string) {
		d, err := outlineDesign()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := runOutline(cmd.OutOrStdout(), d, units.Unit(outlineTo), outlineOpts); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(outlineCmd)

	outlineArgs.bind(outlineCmd)
	outlineCmd.Flags().StringVarP(&outlineOpts.unit, "unit", "u", string(units.Millimeter), "Length unit of the dimensions (mm, m)")

	outlineCmd.Flags().StringVar(&outlineFile, "file", "", "JSON design file with a rectangular_patch topology")
	outlineCmd.Flags().StringVar(&outlineTo, "to", string(units.Meter), "Length unit of the outline (m, mm)")
	outlineCmd.Flags().BoolVar(&outlineOpts.json, "json", false, "Print the outline as JSON")
	outlineCmd.Flags().StringVarP(&outlineOpts.output, "output", "o", "", "Draw the outline to file (png, svg, pdf)")

	outlineCmd.MarkFlagsMutuallyExclusive("file", "width")
	outlineCmd.MarkFlagsMutuallyExclusive("file", "length")
}

func outlineDesign() (*design.Design, error) {
	if outlineFile == "" {
		return outlineArgs.design(outlineOpts.unit), nil
	}
	d, err := design.LoadFromFile(outlineFile)
	if err != nil {
		return nil, err
	}
	if d.Topology != geometry.RectangularPatch {
		return nil, fmt.Errorf("outline needs a %s design, got %s", geometry.RectangularPatch, d.Topology)
	}
	return d, nil
}

func runOutline(out io.Writer, d *design.Design, to units.Unit, opts outputOptions) error {
	if err := d.Validate(); err != nil {
		return err
	}
	to, err := units.Parse(string(to))
	if err != nil {
		return err
	}
	o, err := geometry.TopLayerOutline(*d.Params(to).Patch)
	if err != nil {
		return err
	}

	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(o)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(out, "     PATCH TOP LAYER OUTLINE - %s FEED (%s)\n", o.Feed, to)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "BOUNDARY:")
	fmt.Fprintln(out, rule)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  #\tx\ty\t\n")
	for i, v := range o.Boundary {
		fmt.Fprintf(w, "  %d\t%.6f\t%.6f\t\n", i+1, v.X, v.Y)
	}
	w.Flush()
	fmt.Fprintln(out)

	if o.Pin != nil {
		fmt.Fprintf(out, "  Probe pin: (%.6f, %.6f) %s\n\n", o.Pin.X, o.Pin.Y, to)
	}

	if opts.output != "" {
		if err := diagram.ExportOutline(o, to.Label(), opts.output); err != nil {
			return fmt.Errorf("exporting outline: %w", err)
		}
		fmt.Fprintf(out, "Outline exported to: %s\n", opts.output)
	}
	return nil
}

