package chord

import (
	"strings"

	"github.com/gtrlab/fretsolve/constants"
	"github.com/gtrlab/fretsolve/model"
)

// Kind is the closed set of supported chord qualities. Every recognized
// suffix spelling maps onto exactly one Kind; there is no silent fallback
// for unknown suffixes.
type Kind int

const (
	Major Kind = iota
	Minor
	Diminished
	Augmented
	Dominant7
	Major7
	Minor7
	Sus2
	Sus4
	Add9
	Sixth
	Minor6
	MinorAdd9
	Dim7
	HalfDim7
	Dominant9
)

// kindIntervals holds the canonical semitone offsets for each quality.
// Offsets above 12 (add9's 14) are kept as written; pitch-class math
// reduces modulo 12.
var kindIntervals = map[Kind][]int{
	Major:      {0, 4, 7},
	Minor:      {0, 3, 7},
	Diminished: {0, 3, 6},
	Augmented:  {0, 4, 8},
	Dominant7:  {0, 4, 7, 10},
	Major7:     {0, 4, 7, 11},
	Minor7:     {0, 3, 7, 10},
	Sus2:       {0, 2, 7},
	Sus4:       {0, 5, 7},
	Add9:       {0, 4, 7, 14},
	Sixth:      {0, 4, 7, 9},
	Minor6:     {0, 3, 7, 9},
	MinorAdd9:  {0, 3, 7, 14},
	Dim7:       {0, 3, 6, 9},
	HalfDim7:   {0, 3, 6, 10},
	Dominant9:  {0, 4, 7, 10, 14},
}

// suffixKinds maps every accepted suffix spelling to its quality. The empty
// suffix is an implicit major triad.
var suffixKinds = map[string]Kind{
	"":      Major,
	"maj":   Major,
	"M":     Major,
	"major": Major,
	"m":     Minor,
	"min":   Minor,
	"minor": Minor,
	"-":     Minor,
	"dim":   Diminished,
	"o":     Diminished,
	"aug":   Augmented,
	"+":     Augmented,
	"7":     Dominant7,
	"dom7":  Dominant7,
	"maj7":  Major7,
	"M7":    Major7,
	"m7":    Minor7,
	"min7":  Minor7,
	"-7":    Minor7,
	"sus2":  Sus2,
	"sus4":  Sus4,
	"sus":   Sus4,
	"add9":  Add9,
	"6":     Sixth,
	"m6":    Minor6,
	"min6":  Minor6,
	"madd9": MinorAdd9,
	"dim7":  Dim7,
	"m7b5":  HalfDim7,
	"9":     Dominant9,
}

// canonicalSuffix is the spelling used when naming an identified chord.
var canonicalSuffix = map[Kind]string{
	Major:      "",
	Minor:      "m",
	Diminished: "dim",
	Augmented:  "aug",
	Dominant7:  "7",
	Major7:     "maj7",
	Minor7:     "m7",
	Sus2:       "sus2",
	Sus4:       "sus4",
	Add9:       "add9",
	Sixth:      "6",
	Minor6:     "m6",
	MinorAdd9:  "madd9",
	Dim7:       "dim7",
	HalfDim7:   "m7b5",
	Dominant9:  "9",
}

// noteIndex resolves note spellings (sharp, flat and the edge enharmonics)
// to a semitone index; NoteNames[idx] is the canonical sharp-based name.
var noteIndex = map[string]int{
	"C": 0, "B#": 0,
	"C#": 1, "Db": 1,
	"D": 2,
	"D#": 3, "Eb": 3,
	"E": 4, "Fb": 4,
	"F": 5, "E#": 5,
	"F#": 6, "Gb": 6,
	"G": 7,
	"G#": 8, "Ab": 8,
	"A": 9,
	"A#": 10, "Bb": 10,
	"B": 11, "Cb": 11,
}

// Parse splits a chord symbol into a root pitch class and a quality,
// returning the canonical interval set. Whitespace is stripped, flat and
// enharmonic roots are normalized to sharp names, and an empty quality
// suffix means major.
func Parse(symbol string) (model.ChordDef, error) {
	s := strings.Join(strings.Fields(symbol), "")
	if s == "" {
		return model.ChordDef{}, model.UnknownRootError{Token: symbol}
	}

	rootTok := s[:1]
	rest := s[1:]
	if len(rest) > 0 && (rest[0] == '#' || rest[0] == 'b') {
		rootTok += rest[:1]
		rest = rest[1:]
	}

	rootIdx, ok := noteIndex[rootTok]
	if !ok {
		return model.ChordDef{}, model.UnknownRootError{Token: symbol}
	}

	kind, ok := suffixKinds[rest]
	if !ok {
		return model.ChordDef{}, model.UnsupportedQualityError{Symbol: symbol, Quality: rest}
	}

	intervals := kindIntervals[kind]
	def := model.ChordDef{
		Symbol:    s,
		Root:      constants.NoteNames[rootIdx],
		Intervals: append([]int(nil), intervals...),
		Quality:   qualityTag(intervals),
		Tones:     make([]string, 0, len(intervals)),
	}
	for _, iv := range intervals {
		def.Tones = append(def.Tones, constants.NoteNames[(rootIdx+iv)%12])
	}
	return def, nil
}

// qualityTag derives the coarse major/minor tag from the third, if any.
func qualityTag(intervals []int) model.Quality {
	for _, iv := range intervals {
		switch iv % 12 {
		case 4:
			return model.QualityMajor
		case 3:
			return model.QualityMinor
		}
	}
	return model.QualityUnspecified
}

// SupportedSuffixes returns every accepted suffix with its interval set,
// for the catalog listing.
func SupportedSuffixes() map[string][]int {
	res := make(map[string][]int, len(suffixKinds))
	for suffix, kind := range suffixKinds {
		res[suffix] = append([]int(nil), kindIntervals[kind]...)
	}
	return res
}
