package cmd

import (
	"fmt"

	"github.com/alexiusacademia/antgeom/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of antgeom",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("antgeom v%s\n", version.Version)
		fmt.Println("Antenna Geometry Engine")
		fmt.Printf("Built %s from commit %s\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
