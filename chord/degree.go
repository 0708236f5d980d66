package chord

import (
	"github.com/gtrlab/fretsolve/model"
)

// Degree is a chord tone's functional position relative to the root.
// DegreeUnclassified marks intervals with no table entry.
type Degree int

const DegreeUnclassified Degree = 0

// intervalDegrees collapses semitone intervals onto scale degrees. The
// mapping is lossy on purpose: minor and major thirds both land on 3, and
// diminished, perfect and augmented fifths all land on 5. Callers that
// need the exact quality must keep the raw interval.
var intervalDegrees = map[int]Degree{
	0:  1,
	2:  2,
	3:  3,
	4:  3,
	5:  4,
	6:  5,
	7:  5,
	8:  5,
	9:  6,
	10: 7,
	11: 7,
}

// DegreeOf classifies a semitone interval (reduced modulo 12).
func DegreeOf(interval int) Degree {
	if d, ok := intervalDegrees[((interval%12)+12)%12]; ok {
		return d
	}
	return DegreeUnclassified
}

// DegreesOf labels every chord tone with its degree relative to root.
// When two tones collapse onto the same degree both keep their label; the
// template builder disambiguates by taking the first matching tone in
// chord order.
func DegreesOf(def model.ChordDef) map[string]Degree {
	res := make(map[string]Degree, len(def.Tones))
	for i, tone := range def.Tones {
		if _, seen := res[tone]; seen {
			continue
		}
		res[tone] = DegreeOf(def.Intervals[i])
	}
	return res
}
