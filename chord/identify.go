package chord

import (
	"sort"

	"github.com/gtrlab/fretsolve/constants"
)

// identifyOrder fixes which quality wins when a pitch set matches several
// table entries (a sixth chord over its relative minor seventh, for
// example): plainer qualities first.
var identifyOrder = []Kind{
	Major, Minor, Dominant7, Major7, Minor7, Diminished, Augmented,
	Sus2, Sus4, Sixth, Minor6, Add9, MinorAdd9, Dim7, HalfDim7, Dominant9,
}

// Identify names the chord sounded by a set of MIDI notes, if its pitch
// classes exactly match a quality table entry. Roots are tried starting
// from the lowest sounding note, so inversions prefer the bass.
func Identify(notes []uint8) (string, bool) {
	if len(notes) == 0 {
		return "", false
	}

	sorted := append([]uint8(nil), notes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	classSet := make(map[int]bool)
	var classes []int
	for _, n := range sorted {
		c := int(n % 12)
		if !classSet[c] {
			classSet[c] = true
			classes = append(classes, c)
		}
	}

	for _, root := range classes {
		for _, kind := range identifyOrder {
			if matchesKind(classSet, root, kind) {
				return constants.NoteNames[root] + canonicalSuffix[kind], true
			}
		}
	}
	return "", false
}

func matchesKind(classSet map[int]bool, root int, kind Kind) bool {
	intervals := kindIntervals[kind]

	want := make(map[int]bool, len(intervals))
	for _, iv := range intervals {
		want[(root+iv)%12] = true
	}
	if len(want) != len(classSet) {
		return false
	}
	for c := range classSet {
		if !want[c] {
			return false
		}
	}
	return true
}
