package sample

import (
	"fmt"

	"github.com/gtrlab/fretsolve/constants"
	"github.com/gtrlab/fretsolve/model"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Ref points at one per-string sample. ShiftSemitones is how far the
// integrator must pitch-shift it to sound the requested fret; zero when
// the exact sample exists.
type Ref struct {
	StringName     string
	Path           string
	ShiftSemitones int
}

// PathFor builds the conventional sample path <base>/<string>/fret<N>.<ext>.
func PathFor(base, stringName string, fret int, ext string) string {
	return fmt.Sprintf("%s/%s/fret%d.%s", base, stringName, fret, ext)
}

// Plan maps every sounded string of a fingering to a sample reference.
// exists decides whether a sample path is available; nil means every path
// is. When the exact sample is missing, the nearest fret's sample within
// MaxPitchShift semitones stands in, closest first, lower fret preferred
// on ties. File IO stays with the caller.
func Plan(f model.Fingering, base, ext string, exists func(string) bool) ([]Ref, error) {
	var res []Ref
	for s, st := range f {
		if st.Muted {
			continue
		}
		name := constants.StringNames[s]

		exact := PathFor(base, name, st.Fret, ext)
		if exists == nil || exists(exact) {
			res = append(res, Ref{StringName: name, Path: exact})
			continue
		}

		found := false
		for d := 1; d <= constants.MaxPitchShift && !found; d++ {
			for _, fret := range []int{st.Fret - d, st.Fret + d} {
				if fret < 0 || fret > constants.MaxFret {
					continue
				}
				path := PathFor(base, name, fret, ext)
				if exists(path) {
					res = append(res, Ref{
						StringName:     name,
						Path:           path,
						ShiftSemitones: st.Fret - fret,
					})
					found = true
					break
				}
			}
		}
		if !found {
			return nil, fmt.Errorf("no sample within %v semitones for string %v fret %v", constants.MaxPitchShift, name, st.Fret)
		}
	}
	return res, nil
}

const ticksPerQuarter = 960

// CreateSMF renders a fingering as a one-track Standard MIDI File, either
// strummed (all strings together) or arpeggiated low string first.
func CreateSMF(f model.Fingering, arpeggiate bool, bpm float64) *smf.SMF {
	ticks := smf.MetricTicks(ticksPerQuarter)
	var res smf.SMF
	res.TimeFormat = ticks

	var keys []uint8
	for _, st := range f {
		if !st.Muted {
			keys = append(keys, st.Pitch.Midi)
		}
	}

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(bpm))

	if arpeggiate {
		for i, k := range keys {
			var delta uint32
			if i > 0 {
				delta = ticks.Ticks8th()
			}
			tr.Add(delta, midi.NoteOn(0, k, 96))
		}
	} else {
		for _, k := range keys {
			tr.Add(0, midi.NoteOn(0, k, 96))
		}
	}

	// let the chord ring for a whole note, then release everything
	for i, k := range keys {
		var delta uint32
		if i == 0 {
			delta = 4 * ticks.Ticks4th()
		}
		tr.Add(delta, midi.NoteOff(0, k))
	}
	tr.Close(0)
	res.Tracks = append(res.Tracks, tr)
	return &res
}
