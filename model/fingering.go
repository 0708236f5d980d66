package model

import (
	"strconv"
	"strings"

	"github.com/gtrlab/fretsolve/constants"
)

// Pitch is a single fretboard pitch. Name is the sharp-based pitch-class
// name; Midi is the absolute semitone index (MIDI note number). Chord
// membership compares by Name, ordering compares by Midi.
type Pitch struct {
	Name   string
	Octave int
	Midi   uint8
}

// Position addresses one spot on the lattice. String is 0 (low E) through
// 5 (high e).
type Position struct {
	String int
	Fret   int
}

// StringState is one string of a fingering: either muted or a fretted
// (possibly open) pitch.
type StringState struct {
	Muted bool
	Fret  int
	Pitch Pitch
}

// Fingering always has exactly one entry per string, low to high.
type Fingering [constants.NumStrings]StringState

// MutedFingering returns a fingering with every string muted, the starting
// point for every builder.
func MutedFingering() Fingering {
	var f Fingering
	for i := range f {
		f[i].Muted = true
	}
	return f
}

// Sounded returns how many strings are played.
func (f Fingering) Sounded() int {
	var n int
	for _, s := range f {
		if !s.Muted {
			n++
		}
	}
	return n
}

// Frets renders per-string fret numbers, "x" for muted strings.
func (f Fingering) Frets() []string {
	res := make([]string, 0, constants.NumStrings)
	for _, s := range f {
		if s.Muted {
			res = append(res, "x")
		} else {
			res = append(res, strconv.Itoa(s.Fret))
		}
	}
	return res
}

// Notes renders per-string note names with octave, "x" for muted strings.
func (f Fingering) Notes() []string {
	res := make([]string, 0, constants.NumStrings)
	for _, s := range f {
		if s.Muted {
			res = append(res, "x")
		} else {
			res = append(res, s.Pitch.Name+strconv.Itoa(s.Pitch.Octave))
		}
	}
	return res
}

// Diagram is the compact one-line form, e.g. "x 3 2 0 1 0".
func (f Fingering) Diagram() string {
	return strings.Join(f.Frets(), " ")
}
