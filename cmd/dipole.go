package cmd

import (
	"fmt"

	"github.com/alexiusacademia/antgeom/internal/design"
	"github.com/alexiusacademia/antgeom/internal/geometry"
	"github.com/alexiusacademia/antgeom/internal/units"
	"github.com/spf13/cobra"
)

var (
	dipoleLength     float64
	dipoleHalfLength float64
	dipoleRadius     float64
	dipoleFeedGap    float64

	dipoleOpts outputOptions
)

var dipoleCmd = &cobra.Command{
	Use:   "dipole",
	Short: "Generate half-wave dipole arms",
	Long: `Generate the two cylindrical arms of a half-wave dipole along the
z axis, separated by the feed gap.

Examples:
  # 2.4 GHz dipole, 1mm wire, 5mm feed gap
  antgeom dipole --length 62.5

  # Side view diagram
  antgeom dipole -L 62.5 --radius 1 --feed-gap 5 --diagram`,
	Run: func(cmd *cobra.Command, args []string) {
		d := &design.Design{
			Topology: geometry.HalfWaveDipole,
			Unit:     units.Unit(dipoleOpts.unit),
			Dipole: &geometry.DipoleParams{
				Length:     dipoleLength,
				HalfLength: dipoleHalfLength,
				Radius:     dipoleRadius,
				FeedGap:    dipoleFeedGap,
			},
		}
		gen, err := generateDesign(d)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := report(cmd.OutOrStdout(), "HALF-WAVE DIPOLE", d.Unit, gen, dipoleOpts); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(dipoleCmd)

	dipoleCmd.Flags().Float64VarP(&dipoleLength, "length", "L", 0, "Total dipole length [required]")
	dipoleCmd.Flags().Float64Var(&dipoleHalfLength, "half-length", 0, "Arm span from the center (default length/2)")
	dipoleCmd.Flags().Float64VarP(&dipoleRadius, "radius", "r", units.DefaultWireRadius, "Conductor radius")
	dipoleCmd.Flags().Float64Var(&dipoleFeedGap, "feed-gap", units.DefaultFeedGap, "Gap between the two arms")

	dipoleCmd.MarkFlagRequired("length")

	addOutputFlags(dipoleCmd, &dipoleOpts)
}
