package cmd

import (
	"fmt"

	"github.com/alexiusacademia/antgeom/internal/design"
	"github.com/alexiusacademia/antgeom/internal/geometry"
	"github.com/alexiusacademia/antgeom/internal/units"
	"github.com/spf13/cobra"
)

// patchFlags holds the patch dimension flags of one command.
type patchFlags struct {
	feed       string
	width      float64
	length     float64
	height     float64
	x0         float64
	y0         float64
	stripWidth float64
	gap        float64
	dielectric float64
}

var (
	patchArgs patchFlags
	patchOpts outputOptions
)

var patchCmd = &cobra.Command{
	Use:   "patch",
	Short: "Generate rectangular patch layers",
	Long: `Generate the ground plane, substrate and conductor layers of a
rectangular patch antenna.

Feed types:
  microstrip - inset-fed notch conductor (uses --strip-width, --gap)
  probe      - plain rectangular conductor with a feed point at (W/2+y0, 1.5L-x0)

Examples:
  # 2.4 GHz inset-fed patch on 1.6mm FR-4
  antgeom patch --width 38.04 --length 29.44 --x0 9.5

  # Probe-fed patch with diagram
  antgeom patch --feed probe -W 5 -L 10 --x0 2 --y0 1 --diagram`,
	Run: func(cmd *cobra.Command, args []string) {
		d := patchArgs.design(patchOpts.unit)
		gen, err := generateDesign(d)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		title := fmt.Sprintf("RECTANGULAR PATCH - %s FEED (εr = %.2f)", d.Patch.Feed, d.Patch.Dielectric)
		if err := report(cmd.OutOrStdout(), title, d.Unit, gen, patchOpts); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(patchCmd)

	patchArgs.bind(patchCmd)
	patchCmd.MarkFlagRequired("width")
	patchCmd.MarkFlagRequired("length")

	addOutputFlags(patchCmd, &patchOpts)
}

func (f *patchFlags) bind(c *cobra.Command) {
	c.Flags().StringVarP(&f.feed, "feed", "f", string(geometry.Microstrip), "Feed type (microstrip, probe)")

	// Geometry flags
	c.Flags().Float64VarP(&f.width, "width", "W", 0, "Patch width")
	c.Flags().Float64VarP(&f.length, "length", "L", 0, "Patch length")
	c.Flags().Float64Var(&f.height, "height", units.DefaultSubstrateHeight, "Substrate height")
	c.Flags().Float64Var(&f.x0, "x0", 0, "Feed inset depth / probe offset along the length")
	c.Flags().Float64Var(&f.y0, "y0", 0, "Probe offset along the width")

	// Material flags
	c.Flags().Float64Var(&f.dielectric, "dielectric", units.DefaultDielectric, "Substrate relative permittivity (recorded only)")

	// Microstrip feed flags
	c.Flags().Float64Var(&f.stripWidth, "strip-width", units.DefaultStripWidth, "Microstrip feed line width")
	c.Flags().Float64Var(&f.gap, "gap", units.DefaultGap, "Clearance between feed line and patch")
}

func (f *patchFlags) design(unit string) *design.Design {
	return &design.Design{
		Topology: geometry.RectangularPatch,
		Unit:     units.Unit(unit),
		Patch: &geometry.PatchParams{
			Feed:       geometry.FeedType(f.feed),
			Height:     f.height,
			Width:      f.width,
			Length:     f.length,
			X0:         f.x0,
			Y0:         f.y0,
			StripWidth: f.stripWidth,
			Gap:        f.gap,
			Dielectric: f.dielectric,
		},
	}
}
