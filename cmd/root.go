package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/alexiusacademia/antgeom/internal/version"
	"github.com/spf13/cobra"
)

// logger reports non-fatal generation problems. Results still print.
var logger = log.New(os.Stderr, "antgeom: ", 0)

var rootCmd = &cobra.Command{
	Use:   "antgeom",
	Short: "Antenna geometry generator",
	Long: `antgeom - Antenna Geometry Engine

A CLI tool that turns calculated antenna dimensions into drawable
point geometry and a framing view volume.

Supported topologies:
  - Rectangular patch (microstrip inset feed or probe feed)
  - Half-wave dipole
  - Quarter-wave monopole

Lengths are millimeters unless --unit m is given. Top layer outlines
for manufacturing are regenerated in meters.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   antgeom v%-47s║\n", version.Version)
		fmt.Println("  ║   Antenna Geometry Engine                                 ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Generates layer geometry for rectangular patch, half-wave")
		fmt.Println("  dipole and quarter-wave monopole antennas.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Microstrip inset-fed and probe-fed patch layers")
		fmt.Println("    • Sampled cylinder surfaces for wire antennas")
		fmt.Println("    • View volume framing per topology")
		fmt.Println("    • ASCII previews and png/svg/pdf export")
		fmt.Println("    • Top layer outlines in meters")
		fmt.Println()
		fmt.Println("  Use 'antgeom --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
