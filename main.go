package main

import (
	"github.com/gtrlab/fretsolve/cmd"
)

func main() {
	cmd.Execute()
}
