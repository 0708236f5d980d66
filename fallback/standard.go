package fallback

import (
	"github.com/gtrlab/fretsolve/constants"
	"github.com/gtrlab/fretsolve/model"
)

// standardShapes is the catalog of common open-position shapes keyed by
// the chord's base letter, -1 meaning muted. Candidates earn a bonus for
// each sounded catalog position they hit fret-for-fret.
var standardShapes = map[string][constants.NumStrings]int{
	"C": {-1, 3, 2, 0, 1, 0},
	"A": {-1, 0, 2, 2, 2, 0},
	"G": {3, 2, 0, 0, 0, 3},
	"E": {0, 2, 2, 1, 0, 0},
	"D": {-1, -1, 0, 2, 3, 2},
	"F": {1, 3, 3, 2, 1, 1},
}

// standardSimilarity is the fraction of the standard shape's sounded
// positions a candidate matches, zero when the root's base letter has no
// catalog entry.
func standardSimilarity(root string, f model.Fingering) float64 {
	shape, ok := standardShapes[root[:1]]
	if !ok {
		return 0
	}

	var total, matched int
	for s := 0; s < constants.NumStrings; s++ {
		if shape[s] < 0 {
			continue
		}
		total++
		if !f[s].Muted && f[s].Fret == shape[s] {
			matched++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(matched) / float64(total)
}
