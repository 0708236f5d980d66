package fretboard

import (
	"sort"

	"github.com/gtrlab/fretsolve/constants"
	"github.com/gtrlab/fretsolve/model"
)

// Fretboard is the static (string, fret) -> pitch lattice for standard
// tuning over frets 0-7. It is read-only after New and safe to share
// between goroutines.
type Fretboard struct {
	lattice [constants.NumStrings][constants.MaxFret + 1]model.Pitch
}

func New() *Fretboard {
	var fb Fretboard
	for s := 0; s < constants.NumStrings; s++ {
		for f := 0; f <= constants.MaxFret; f++ {
			midi := constants.OpenPitches[s] + uint8(f)
			fb.lattice[s][f] = model.Pitch{
				Name:   constants.NoteNames[midi%12],
				Octave: int(midi)/12 - 1,
				Midi:   midi,
			}
		}
	}
	return &fb
}

// PitchAt is total over string 0-5, fret 0-7 and fails outside that range.
func (fb *Fretboard) PitchAt(str, fret int) (model.Pitch, error) {
	if str < 0 || str >= constants.NumStrings || fret < 0 || fret > constants.MaxFret {
		return model.Pitch{}, model.OutOfRangeError{String: str, Fret: fret}
	}
	return fb.lattice[str][fret], nil
}

// Occurrences lists every lattice position sounding the given pitch class,
// ordered by absolute pitch ascending, ties broken by string order (lowest
// string first).
func (fb *Fretboard) Occurrences(pitchClass string) []model.Position {
	var res []model.Position
	for s := 0; s < constants.NumStrings; s++ {
		for f := 0; f <= constants.MaxFret; f++ {
			if fb.lattice[s][f].Name == pitchClass {
				res = append(res, model.Position{String: s, Fret: f})
			}
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		pi := fb.lattice[res[i].String][res[i].Fret].Midi
		pj := fb.lattice[res[j].String][res[j].Fret].Midi
		if pi != pj {
			return pi < pj
		}
		return res[i].String < res[j].String
	})
	return res
}

// AnchorFor finds the fretboard position that anchors a fingering for the
// given root. Priority: any open string carrying the root (lowest string
// first), then the lowest-pitch occurrence inside the low-string/low-fret
// window, then the lowest-pitch occurrence anywhere.
func (fb *Fretboard) AnchorFor(rootClass string) (model.Position, error) {
	for s := 0; s < constants.NumStrings; s++ {
		if fb.lattice[s][0].Name == rootClass {
			return model.Position{String: s, Fret: 0}, nil
		}
	}

	if pos, ok := fb.lowestIn(rootClass, constants.AnchorWindowStrings, constants.AnchorWindowMaxFret); ok {
		return pos, nil
	}
	if pos, ok := fb.lowestIn(rootClass, constants.NumStrings, constants.MaxFret); ok {
		return pos, nil
	}
	return model.Position{}, model.RootNotFoundError{Root: rootClass}
}

func (fb *Fretboard) lowestIn(pitchClass string, numStrings, maxFret int) (model.Position, bool) {
	var best model.Position
	var bestMidi uint8
	found := false
	for s := 0; s < numStrings; s++ {
		for f := 0; f <= maxFret; f++ {
			p := fb.lattice[s][f]
			if p.Name != pitchClass {
				continue
			}
			if !found || p.Midi < bestMidi {
				found = true
				best = model.Position{String: s, Fret: f}
				bestMidi = p.Midi
			}
		}
	}
	return best, found
}
