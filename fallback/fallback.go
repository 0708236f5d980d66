package fallback

import (
	"sort"

	"github.com/gtrlab/fretsolve/constants"
	"github.com/gtrlab/fretsolve/fretboard"
	"github.com/gtrlab/fretsolve/model"
)

// Options bounds the combinatorial search. Zero values mean the defaults
// from constants.
type Options struct {
	MaxFretSpan   int
	MaxCandidates int
	Alternatives  int
}

func (o Options) withDefaults() Options {
	if o.MaxFretSpan == 0 {
		o.MaxFretSpan = constants.DefaultMaxFretSpan
	}
	if o.MaxCandidates == 0 {
		o.MaxCandidates = constants.DefaultMaxCandidates
	}
	if o.Alternatives == 0 {
		o.Alternatives = constants.DefaultAlternatives
	}
	return o
}

// Generate enumerates fingerings by assigning every chord tone to one
// string occurrence, no two tones sharing a string, and ranks them by the
// weighted score. Enumeration stops at MaxCandidates (first-found, not
// exhaustive). Returns the winner, up to Alternatives runners-up and the
// number of candidates considered.
func Generate(fb *fretboard.Fretboard, def model.ChordDef, opts Options) (model.ScoredCandidate, []model.ScoredCandidate, int, error) {
	opts = opts.withDefaults()

	occurrences := make([][]model.Position, len(def.Tones))
	for i, tone := range def.Tones {
		occurrences[i] = fb.Occurrences(tone)
	}

	var candidates []model.ScoredCandidate
	var usedStrings [constants.NumStrings]bool
	picks := make([]model.Position, len(def.Tones))

	var assign func(tone int)
	assign = func(tone int) {
		if len(candidates) >= opts.MaxCandidates {
			return
		}
		if tone == len(def.Tones) {
			c := score(fb, def, picks)
			if c.FretSpan <= opts.MaxFretSpan {
				candidates = append(candidates, c)
			}
			return
		}
		for _, pos := range occurrences[tone] {
			if usedStrings[pos.String] {
				continue
			}
			usedStrings[pos.String] = true
			picks[tone] = pos
			assign(tone + 1)
			usedStrings[pos.String] = false
			if len(candidates) >= opts.MaxCandidates {
				return
			}
		}
	}
	assign(0)

	if len(candidates) == 0 {
		return model.ScoredCandidate{}, nil, 0, model.NoFingeringFound{Symbol: def.Symbol}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	best := candidates[0]
	numAlts := opts.Alternatives
	if numAlts > len(candidates)-1 {
		numAlts = len(candidates) - 1
	}
	alts := append([]model.ScoredCandidate(nil), candidates[1:1+numAlts]...)
	return best, alts, len(candidates), nil
}

func score(fb *fretboard.Fretboard, def model.ChordDef, picks []model.Position) model.ScoredCandidate {
	f := model.MutedFingering()
	for _, pos := range picks {
		pitch, err := fb.PitchAt(pos.String, pos.Fret)
		if err != nil {
			continue
		}
		f[pos.String] = model.StringState{Fret: pos.Fret, Pitch: pitch}
	}

	c := model.ScoredCandidate{
		Fingering:     f,
		FretSpan:      fretSpan(f),
		OpenStrings:   openCount(f),
		BarreRequired: barreRequired(f),
		StandardMatch: standardSimilarity(def.Root, f),
	}

	c.Score = constants.WeightSpan*float64(c.FretSpan) +
		constants.WeightOpen*float64(c.OpenStrings) +
		constants.WeightStandard*c.StandardMatch
	if c.BarreRequired {
		c.Score += constants.WeightBarre
	}
	return c
}

// fretSpan is max minus min fret over fretted (non-open, non-muted)
// strings, zero when nothing is fretted.
func fretSpan(f model.Fingering) int {
	min, max := -1, -1
	for _, s := range f {
		if s.Muted || s.Fret == 0 {
			continue
		}
		if min == -1 || s.Fret < min {
			min = s.Fret
		}
		if s.Fret > max {
			max = s.Fret
		}
	}
	if min == -1 {
		return 0
	}
	return max - min
}

func openCount(f model.Fingering) int {
	var n int
	for _, s := range f {
		if !s.Muted && s.Fret == 0 {
			n++
		}
	}
	return n
}

// barreRequired reports whether two or more adjacent sounded strings sit
// on the same fret above the nut.
func barreRequired(f model.Fingering) bool {
	for i := 0; i < constants.NumStrings-1; i++ {
		if f[i].Muted || f[i+1].Muted {
			continue
		}
		if f[i].Fret > 0 && f[i].Fret == f[i+1].Fret {
			return true
		}
	}
	return false
}
