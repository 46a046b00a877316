package cmd

import (
	"fmt"

	"github.com/alexiusacademia/antgeom/internal/design"
	"github.com/alexiusacademia/antgeom/internal/geometry"
	"github.com/alexiusacademia/antgeom/internal/units"
	"github.com/spf13/cobra"
)

var (
	monopoleLength float64
	monopoleRadius float64

	monopoleOpts outputOptions
)

var monopoleCmd = &cobra.Command{
	Use:   "monopole",
	Short: "Generate a quarter-wave monopole",
	Long: `Generate the single cylindrical arm of a quarter-wave monopole,
rising from z = 0 to z = length.

Example:
  antgeom monopole --length 31.25 --radius 1 --diagram`,
	Run: func(cmd *cobra.Command, args []string) {
		d := &design.Design{
			Topology: geometry.QuarterWaveMonopole,
			Unit:     units.Unit(monopoleOpts.unit),
			Monopole: &geometry.MonopoleParams{Length: monopoleLength, Radius: monopoleRadius},
		}
		gen, err := generateDesign(d)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := report(cmd.OutOrStdout(), "QUARTER-WAVE MONOPOLE", d.Unit, gen, monopoleOpts); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(monopoleCmd)

	monopoleCmd.Flags().Float64VarP(&monopoleLength, "length", "L", 0, "Monopole length [required]")
	monopoleCmd.Flags().Float64VarP(&monopoleRadius, "radius", "r", units.DefaultWireRadius, "Conductor radius")

	monopoleCmd.MarkFlagRequired("length")

	addOutputFlags(monopoleCmd, &monopoleOpts)
}
