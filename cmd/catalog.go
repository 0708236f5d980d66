package cmd

import (
	"fmt"
	"sort"

	"github.com/gtrlab/fretsolve/chord"
	"github.com/gtrlab/fretsolve/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Lists supported chord qualities",
	Long:  `Lists every supported chord quality suffix with its interval set.`,
	Run: func(cmd *cobra.Command, args []string) {
		catalog()
	},
}

func catalog() {
	suffixes := chord.SupportedSuffixes()
	keys := util.GetKeys(suffixes)
	sort.Strings(keys)

	for _, suffix := range keys {
		name := suffix
		if name == "" {
			name = "(major)"
		}
		fmt.Printf("%-6v %v\n", name, suffixes[suffix])
	}
}
