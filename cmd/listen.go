package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sort"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/gtrlab/fretsolve/chord"
	"github.com/gtrlab/fretsolve/resolver"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Resolves chords played on a MIDI input",
	Long:  `Listens to the first MIDI input port, names the chord being held and prints its fingering.`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func listen() {
	defer midi.CloseDriver()

	in, err := midi.InPort(0)
	if err != nil {
		fmt.Println("can't find a MIDI input port")
		return
	}

	r := resolver.New(resolver.DefaultConfig())

	var mu sync.Mutex
	onNotes := make(map[uint8]bool)

	// notes of a strum arrive as a burst; wait for it to settle before
	// naming the chord
	debounced := debounce.New(75 * time.Millisecond)

	resolveCurrent := func() {
		mu.Lock()
		notes := make([]uint8, 0, len(onNotes))
		for n := range onNotes {
			notes = append(notes, n)
		}
		mu.Unlock()

		if len(notes) < 3 {
			return
		}
		sort.Slice(notes, func(i, j int) bool { return notes[i] < notes[j] })

		symbol, ok := chord.Identify(notes)
		if !ok {
			fmt.Printf("no chord name for notes %v\n", notes)
			return
		}
		printResolution(r, symbol)
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			mu.Lock()
			onNotes[key] = true
			mu.Unlock()
			debounced(resolveCurrent)
		case msg.GetNoteEnd(&ch, &key):
			mu.Lock()
			delete(onNotes, key)
			mu.Unlock()
			debounced(resolveCurrent)
		default:
			// ignore
		}
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	fmt.Printf("Listening on %v, ctrl-c to quit\n", in.String())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	<-sigs
	stop()
}
