package cmd

import (
	"fmt"

	"github.com/gtrlab/fretsolve/constants"
	"github.com/gtrlab/fretsolve/resolver"
	"github.com/gtrlab/fretsolve/sample"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(samplesCmd)
}

var samplesCmd = &cobra.Command{
	Use:   "samples [symbol]",
	Short: "Prints the sample plan for a fingering",
	Long:  `Resolves a chord symbol and prints the per-string sample paths a player would load.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		samples(args[0])
	},
}

func samples(symbol string) {
	r := resolver.New(resolver.DefaultConfig())
	res, err := r.Resolve(symbol)
	if err != nil {
		panic("Could not resolve " + symbol + ": " + err.Error())
	}

	refs, err := sample.Plan(res.Fingering, constants.GetSampleDir(), constants.GetSampleExt(), nil)
	if err != nil {
		panic("Could not plan samples: " + err.Error())
	}

	fmt.Printf("%v (%v)\n", res.Symbol, res.Fingering.Diagram())
	for _, ref := range refs {
		fmt.Printf("  %v\n", ref.Path)
	}
}
