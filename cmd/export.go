package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/gtrlab/fretsolve/resolver"
	"github.com/gtrlab/fretsolve/sample"
	"github.com/spf13/cobra"
)

var exportArpeggiate bool
var exportBpm float64
var exportOut string

func init() {
	exportCmd.Flags().BoolVar(&exportArpeggiate, "arpeggio", false, "arpeggiate low string first instead of strumming")
	exportCmd.Flags().Float64Var(&exportBpm, "bpm", 120, "tempo of the exported file")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output path (default <uuid>.mid)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [symbol]",
	Short: "Exports a fingering as a MIDI file",
	Long:  `Resolves a chord symbol and writes its fingering as a Standard MIDI File.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		export(args[0])
	},
}

func export(symbol string) {
	r := resolver.New(resolver.DefaultConfig())
	res, err := r.Resolve(symbol)
	if err != nil {
		panic("Could not resolve " + symbol + ": " + err.Error())
	}

	out := exportOut
	if out == "" {
		out = uuid.New().String() + ".mid"
	}

	mf := sample.CreateSMF(res.Fingering, exportArpeggiate, exportBpm)
	if err := mf.WriteFile(out); err != nil {
		panic("Could not write midi file: " + err.Error())
	}
	fmt.Printf("Wrote %v (%v, %v)\n", out, res.Symbol, res.Fingering.Diagram())
}
