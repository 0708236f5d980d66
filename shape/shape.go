package shape

import (
	"github.com/gtrlab/fretsolve/chord"
	"github.com/gtrlab/fretsolve/constants"
	"github.com/gtrlab/fretsolve/fretboard"
	"github.com/gtrlab/fretsolve/model"
	"github.com/gtrlab/fretsolve/util"
)

// Template is a per-string degree pattern: Degrees[i] is played on
// Strings[i], every other string is muted.
type Template struct {
	Strings []int
	Degrees []chord.Degree
}

// catalog keys templates by the string the root lands on. Only the three
// lowest strings carry templates (the movable E, A and D shapes); anchors
// on higher strings go to the fallback search.
var catalog = map[int]Template{
	0: {
		Strings: []int{0, 1, 2, 3, 4, 5},
		Degrees: []chord.Degree{1, 5, 1, 3, 5, 1},
	},
	1: {
		Strings: []int{1, 2, 3, 4, 5},
		Degrees: []chord.Degree{1, 5, 1, 3, 5},
	},
	2: {
		Strings: []int{2, 3, 4, 5},
		Degrees: []chord.Degree{1, 5, 1, 3},
	},
}

// templateToneCount restricts templates to triads. Seventh and added-tone
// chords need one string per distinct degree, which the triad patterns
// cannot provide; they resolve through the fallback search instead.
const templateToneCount = 3

// Build instantiates the template selected by the anchor string, or
// returns nil when no template applies and the fallback search should run.
// A degree the chord does not contain mutes its string; that is expected
// data, not a failure.
func Build(fb *fretboard.Fretboard, def model.ChordDef, anchor model.Position) *model.Fingering {
	if len(def.Tones) != templateToneCount {
		return nil
	}
	tpl, ok := catalog[anchor.String]
	if !ok {
		return nil
	}

	degrees := chord.DegreesOf(def)

	f := model.MutedFingering()
	for i, s := range tpl.Strings {
		target := toneForDegree(def, degrees, tpl.Degrees[i])
		if target == "" {
			continue
		}
		fret := locate(fb, s, target, anchor.Fret)
		if fret < 0 {
			continue
		}
		pitch, err := fb.PitchAt(s, fret)
		if err != nil {
			continue
		}
		f[s] = model.StringState{Fret: fret, Pitch: pitch}
	}
	return &f
}

// toneForDegree resolves a template degree to a pitch class: degree 1 is
// always the root, otherwise the first chord tone carrying that degree
// wins (the defined tie-break for collapsed degrees).
func toneForDegree(def model.ChordDef, degrees map[string]chord.Degree, want chord.Degree) string {
	if want == 1 {
		return def.Root
	}
	for _, tone := range def.Tones {
		if degrees[tone] == want {
			return tone
		}
	}
	return ""
}

// locate finds the fret sounding the target pitch class on one string:
// the open string first, then a window around the anchor fret, then the
// whole fretted range. Lowest fret wins within each phase. Returns -1 when
// the string cannot sound the tone.
func locate(fb *fretboard.Fretboard, str int, pitchClass string, anchorFret int) int {
	if p, err := fb.PitchAt(str, 0); err == nil && p.Name == pitchClass {
		return 0
	}

	lo := util.Max(1, anchorFret-constants.TemplateWindow)
	hi := util.Min(constants.MaxFret, anchorFret+constants.TemplateWindow)
	for f := lo; f <= hi; f++ {
		if p, err := fb.PitchAt(str, f); err == nil && p.Name == pitchClass {
			return f
		}
	}

	for f := 1; f <= constants.MaxFret; f++ {
		if p, err := fb.PitchAt(str, f); err == nil && p.Name == pitchClass {
			return f
		}
	}
	return -1
}
