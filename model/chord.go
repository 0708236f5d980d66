package model

// Quality is the broad third-quality tag of a chord. It is derived from the
// interval set (major third present, minor third present, neither) and is
// deliberately coarser than the full quality table: sus and power-chord
// style sets carry no third and stay unspecified.
type Quality int

const (
	QualityUnspecified Quality = iota
	QualityMajor
	QualityMinor
)

func (q Quality) String() string {
	switch q {
	case QualityMajor:
		return "major"
	case QualityMinor:
		return "minor"
	}
	return "unspecified"
}

// ChordDef is a parsed chord symbol: a root pitch class plus semitone
// offsets from it. Offsets are unique modulo 12 and always start at 0.
// Tones holds the pitch-class name for each offset, root first, so
// Tones[i] corresponds to Intervals[i].
type ChordDef struct {
	Symbol    string
	Root      string
	Intervals []int
	Quality   Quality
	Tones     []string
}
