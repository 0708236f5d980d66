package resolver

import (
	"github.com/gtrlab/fretsolve/chord"
	"github.com/gtrlab/fretsolve/constants"
	"github.com/gtrlab/fretsolve/fallback"
	"github.com/gtrlab/fretsolve/fretboard"
	"github.com/gtrlab/fretsolve/model"
	"github.com/gtrlab/fretsolve/shape"
)

// Config enumerates the recognized resolution knobs. Zero values take the
// defaults.
type Config struct {
	MaxFretSpan   int
	MaxCandidates int
	Alternatives  int
}

func DefaultConfig() Config {
	return Config{
		MaxFretSpan:   constants.DefaultMaxFretSpan,
		MaxCandidates: constants.DefaultMaxCandidates,
		Alternatives:  constants.DefaultAlternatives,
	}
}

// Resolver turns chord symbols into fingerings. It holds only read-only
// tables and is safe for concurrent use.
type Resolver struct {
	fb  *fretboard.Fretboard
	cfg Config
}

func New(cfg Config) *Resolver {
	def := DefaultConfig()
	if cfg.MaxFretSpan == 0 {
		cfg.MaxFretSpan = def.MaxFretSpan
	}
	if cfg.MaxCandidates == 0 {
		cfg.MaxCandidates = def.MaxCandidates
	}
	if cfg.Alternatives == 0 {
		cfg.Alternatives = def.Alternatives
	}
	return &Resolver{fb: fretboard.New(), cfg: cfg}
}

// Fretboard exposes the shared lattice for callers that render or export
// the result.
func (r *Resolver) Fretboard() *fretboard.Fretboard {
	return r.fb
}

// Resolve runs the full pipeline: parse, classify, anchor, then template
// or fallback. Pure computation over static tables; resolving the same
// symbol twice yields the same result.
func (r *Resolver) Resolve(symbol string) (model.Resolution, error) {
	res := model.Resolution{Symbol: symbol}

	def, err := chord.Parse(symbol)
	if err != nil {
		return res, err
	}
	res.Chord = def

	anchor, err := r.fb.AnchorFor(def.Root)
	if err != nil {
		return res, err
	}

	if f := shape.Build(r.fb, def, anchor); f != nil {
		res.Fingering = *f
		res.Path = model.PathTemplate
		return res, nil
	}

	best, alts, total, err := fallback.Generate(r.fb, def, fallback.Options{
		MaxFretSpan:   r.cfg.MaxFretSpan,
		MaxCandidates: r.cfg.MaxCandidates,
		Alternatives:  r.cfg.Alternatives,
	})
	if err != nil {
		return res, err
	}

	res.Fingering = best.Fingering
	res.Path = model.PathFallback
	res.Candidates = total
	res.Best = &best
	res.Alternatives = alts
	return res, nil
}
