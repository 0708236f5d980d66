package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fretsolve",
	Short: "Chord symbol to guitar fingering resolver",
	Long:  `Resolves textual chord symbols (Cmaj7, Bbm, ...) into playable six-string fingerings.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
