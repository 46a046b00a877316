package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexiusacademia/antgeom/internal/design"
	"github.com/alexiusacademia/antgeom/internal/geometry"
	"github.com/alexiusacademia/antgeom/internal/units"
	"github.com/spf13/cobra"
)

var (
	generateFile     string
	generateFeatures string

	generateOpts outputOptions
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate geometry from a JSON design or calculator record",
	Long: `Generate geometry from a file.

--file reads a named design:
  {"name": "...", "topology": "rectangular_patch", "unit": "mm",
   "patch": {"feed_type": "microstrip", "width": 38.04, ...}}

--features reads a positional calculator record:
  {"topology": "half_wave_dipole",
   "features": [["simulation_frequency", 2.4e9], ...],
   "params": [["length", 62.5], ["half_length", 31.25], ["radius", 1], ["feed_gap", 5]]}

Calculator records are not validated. An unrecognized feed type or
topology is reported as a warning and whatever geometry was produced
is still printed.

Examples:
  antgeom generate --file patch.json --diagram
  antgeom generate --features calc.json --json`,
	Run: func(cmd *cobra.Command, args []string) {
		var err error
		if generateFeatures != "" {
			err = runFeatures(cmd.OutOrStdout(), generateFeatures, generateOpts)
		} else {
			err = runDesignFile(cmd.OutOrStdout(), generateFile, generateOpts)
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generateFile, "file", "", "JSON design file")
	generateCmd.Flags().StringVar(&generateFeatures, "features", "", "JSON calculator record")
	generateCmd.MarkFlagsMutuallyExclusive("file", "features")
	generateCmd.MarkFlagsOneRequired("file", "features")

	generateCmd.Flags().BoolVar(&generateOpts.diagram, "diagram", false, "Show ASCII layer diagram")
	generateCmd.Flags().BoolVar(&generateOpts.points, "points", false, "List every generated point")
	generateCmd.Flags().BoolVar(&generateOpts.json, "json", false, "Print the generation as JSON")
	generateCmd.Flags().StringVarP(&generateOpts.output, "output", "o", "", "Export layer diagram to file (png, svg, pdf)")
}

func runDesignFile(out io.Writer, path string, opts outputOptions) error {
	d, err := design.LoadFromFile(path)
	if err != nil {
		return err
	}
	gen, err := generateDesign(d)
	if err != nil {
		return err
	}
	title := strings.ToUpper(string(d.Topology))
	if d.Name != "" {
		title = fmt.Sprintf("%s - %s", title, d.Name)
	}
	return report(out, title, d.Unit, gen, opts)
}

func runFeatures(out io.Writer, path string, opts outputOptions) error {
	ff, err := design.LoadFeatureFile(path)
	if err != nil {
		return err
	}
	params, err := design.ParseFeatures(ff.Topology, ff.Features, ff.Params)
	var te *geometry.TopologyError
	if err != nil && !errors.As(err, &te) {
		return err
	}
	gen, err := geometry.New().Generate(ff.Topology, params)
	if gen == nil {
		return err
	}
	if err != nil {
		logger.Printf("warning: %v", err)
	}
	unit, _ := units.Parse(string(ff.Unit))
	return report(out, strings.ToUpper(string(ff.Topology)), unit, gen, opts)
}
