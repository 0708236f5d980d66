package model

// Path records which strategy produced a fingering.
type Path string

const (
	PathTemplate Path = "template"
	PathFallback Path = "fallback"
)

// ScoredCandidate is a fallback-search candidate with its score and the
// metrics that produced it. Candidates are transient; only the winner and
// a few runners-up survive the search.
type ScoredCandidate struct {
	Fingering     Fingering
	Score         float64
	FretSpan      int
	OpenStrings   int
	BarreRequired bool
	StandardMatch float64
}

// Resolution is the full outcome of resolving one chord symbol.
// Candidates and Best are only meaningful on the fallback path.
type Resolution struct {
	Symbol       string
	Chord        ChordDef
	Fingering    Fingering
	Path         Path
	Candidates   int
	Best         *ScoredCandidate
	Alternatives []ScoredCandidate
}
