package cmd

import (
	"fmt"
	"strings"

	"github.com/gtrlab/fretsolve/constants"
	"github.com/gtrlab/fretsolve/model"
	"github.com/gtrlab/fretsolve/resolver"
	"github.com/spf13/cobra"
)

var showAlternatives bool

func init() {
	resolveCmd.Flags().BoolVarP(&showAlternatives, "alternatives", "a", false, "print runner-up fingerings when the fallback search ran")
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [symbols...]",
	Short: "Resolves chord symbols to fingerings",
	Long:  `Resolves one or more chord symbols to fingerings and prints them.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		r := resolver.New(resolver.DefaultConfig())
		for _, symbol := range args {
			printResolution(r, symbol)
		}
	},
}

func printResolution(r *resolver.Resolver, symbol string) {
	res, err := r.Resolve(symbol)
	if err != nil {
		fmt.Printf("%v: %v\n", symbol, err)
		return
	}

	fmt.Printf("%v (%v)\n", res.Symbol, res.Path)
	fmt.Printf("  %v\n", strings.Join(constants.StringNames[:], " "))
	fmt.Printf("  %v\n", res.Fingering.Diagram())
	fmt.Printf("  %v\n", strings.Join(res.Fingering.Notes(), " "))

	if res.Best != nil {
		printMetrics(*res.Best, res.Candidates)
		if showAlternatives {
			for i, alt := range res.Alternatives {
				fmt.Printf("  alt %v: %v (score %.2f)\n", i+1, alt.Fingering.Diagram(), alt.Score)
			}
		}
	}
}

func printMetrics(c model.ScoredCandidate, candidates int) {
	fmt.Printf("  score %.2f (span %v, open %v, barre %v, standard %.2f) from %v candidates\n",
		c.Score, c.FretSpan, c.OpenStrings, c.BarreRequired, c.StandardMatch, candidates)
}
