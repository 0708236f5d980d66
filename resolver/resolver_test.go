package resolver

import (
	"errors"
	"testing"

	"github.com/gtrlab/fretsolve/constants"
	"github.com/gtrlab/fretsolve/model"
	"github.com/stretchr/testify/assert"
)

func TestResolveCMajorTemplate(t *testing.T) {
	r := New(DefaultConfig())
	res, err := r.Resolve("C")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(res.Path, model.PathTemplate)
	assert.True(res.Fingering[0].Muted)
	for s := 1; s < constants.NumStrings; s++ {
		assert.False(res.Fingering[s].Muted)
	}
	// root sounds at the lowest non-muted position
	assert.Equal(res.Fingering[1].Pitch.Name, "C")
}

func TestResolveEmAllStringsPlayable(t *testing.T) {
	r := New(DefaultConfig())
	res, err := r.Resolve("Em")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(res.Path, model.PathTemplate)
	assert.Equal(res.Fingering.Sounded(), constants.NumStrings)
	assert.Equal(res.Fingering[0].Fret, 0)
	assert.Equal(res.Fingering[0].Pitch.Name, res.Chord.Root)
	assert.Equal(res.Fingering.Frets(), []string{"0", "2", "2", "0", "0", "0"})
}

func TestResolveBbm(t *testing.T) {
	r := New(DefaultConfig())
	res, err := r.Resolve("Bbm")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(res.Fingering.Frets(), []string{"x", "1", "3", "3", "2", "1"})
	assert.GreaterOrEqual(res.Candidates, 0)
}

func TestResolveGFallsBack(t *testing.T) {
	// G anchors on the open G string, which no template covers
	r := New(DefaultConfig())
	res, err := r.Resolve("G")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(res.Path, model.PathFallback)
	assert.Greater(res.Candidates, 0)
	assert.NotNil(res.Best)
	assert.LessOrEqual(res.Best.FretSpan, constants.DefaultMaxFretSpan)
}

func TestResolveCmaj7OneDegreePerString(t *testing.T) {
	r := New(DefaultConfig())
	res, err := r.Resolve("Cmaj7")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(res.Path, model.PathFallback)
	assert.Equal(len(res.Chord.Tones), 4)
	assert.LessOrEqual(res.Fingering.Sounded(), 4)

	seen := make(map[string]bool)
	for _, s := range res.Fingering {
		if !s.Muted {
			assert.False(seen[s.Pitch.Name])
			seen[s.Pitch.Name] = true
		}
	}
}

func TestResolveUnknownRoot(t *testing.T) {
	r := New(DefaultConfig())
	_, err := r.Resolve("H")

	var unknownRoot model.UnknownRootError
	assert.True(t, errors.As(err, &unknownRoot))
}

func TestResolveUnsupportedQuality(t *testing.T) {
	r := New(DefaultConfig())
	_, err := r.Resolve("Cxyz")

	var unsupported model.UnsupportedQualityError
	assert.True(t, errors.As(err, &unsupported))
}

func TestResolveIdempotent(t *testing.T) {
	r := New(DefaultConfig())
	first, err1 := r.Resolve("Dm7")
	second, err2 := r.Resolve("Dm7")

	assert := assert.New(t)
	assert.NoError(err1)
	assert.NoError(err2)
	assert.Equal(first, second)
}

func TestResolvedNotesMatchLattice(t *testing.T) {
	r := New(DefaultConfig())
	fb := r.Fretboard()

	for _, symbol := range []string{"C", "Em", "Bbm", "G", "Cmaj7", "Asus4"} {
		t.Run(symbol, func(t *testing.T) {
			res, err := r.Resolve(symbol)
			assert := assert.New(t)
			assert.NoError(err)
			for s, st := range res.Fingering {
				if st.Muted {
					continue
				}
				p, perr := fb.PitchAt(s, st.Fret)
				assert.NoError(perr)
				assert.Equal(st.Pitch, p)
			}
		})
	}
}

func TestConfigDefaultsApplied(t *testing.T) {
	r := New(Config{})
	assert := assert.New(t)
	assert.Equal(r.cfg.MaxFretSpan, constants.DefaultMaxFretSpan)
	assert.Equal(r.cfg.MaxCandidates, constants.DefaultMaxCandidates)
	assert.Equal(r.cfg.Alternatives, constants.DefaultAlternatives)
}
