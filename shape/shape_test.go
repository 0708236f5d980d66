package shape

import (
	"testing"

	"github.com/gtrlab/fretsolve/chord"
	"github.com/gtrlab/fretsolve/fretboard"
	"github.com/gtrlab/fretsolve/model"
	"github.com/stretchr/testify/assert"
)

func build(t *testing.T, symbol string) *model.Fingering {
	t.Helper()
	fb := fretboard.New()
	def, err := chord.Parse(symbol)
	if err != nil {
		t.Fatalf("could not parse %v: %v", symbol, err)
	}
	anchor, err := fb.AnchorFor(def.Root)
	if err != nil {
		t.Fatalf("could not anchor %v: %v", symbol, err)
	}
	return Build(fb, def, anchor)
}

func TestBuildOpenShapes(t *testing.T) {
	cases := map[string][]string{
		"Em": {"0", "2", "2", "0", "0", "0"},
		"E":  {"0", "2", "2", "1", "0", "0"},
		"Am": {"x", "0", "2", "2", "1", "0"},
		"A":  {"x", "0", "2", "2", "2", "0"},
		"Dm": {"x", "x", "0", "2", "3", "1"},
		"D":  {"x", "x", "0", "2", "3", "2"},
	}

	for symbol, frets := range cases {
		t.Run(symbol, func(t *testing.T) {
			f := build(t, symbol)
			assert := assert.New(t)
			assert.NotNil(f)
			assert.Equal(f.Frets(), frets)
		})
	}
}

func TestBuildBarreShapes(t *testing.T) {
	cases := map[string][]string{
		// C anchors at A-string fret 3 and comes out as the movable barre form
		"C":   {"x", "3", "5", "5", "5", "3"},
		"Bbm": {"x", "1", "3", "3", "2", "1"},
		"F#m": {"2", "4", "4", "2", "2", "2"},
	}

	for symbol, frets := range cases {
		t.Run(symbol, func(t *testing.T) {
			f := build(t, symbol)
			assert := assert.New(t)
			assert.NotNil(f)
			assert.Equal(f.Frets(), frets)
		})
	}
}

func TestBuildRootAtLowestSoundedString(t *testing.T) {
	f := build(t, "C")
	assert := assert.New(t)
	assert.NotNil(f)
	assert.True(f[0].Muted)
	for s := 1; s < len(f); s++ {
		assert.False(f[s].Muted)
	}
	assert.Equal(f[1].Pitch.Name, "C")
}

func TestBuildNilOffTemplateStrings(t *testing.T) {
	// G and B anchor on open strings outside the templated set
	assert := assert.New(t)
	assert.Nil(build(t, "G"))
	assert.Nil(build(t, "B"))
}

func TestBuildNilForFourToneChords(t *testing.T) {
	assert := assert.New(t)
	assert.Nil(build(t, "Cmaj7"))
	assert.Nil(build(t, "Am7"))
	assert.Nil(build(t, "E6"))
}

func TestBuildMutesUnmatchedDegrees(t *testing.T) {
	// sus2 has no third, so the template's degree-3 string stays muted
	f := build(t, "Dsus2")
	assert := assert.New(t)
	assert.NotNil(f)
	assert.Equal(f.Frets(), []string{"x", "x", "0", "2", "3", "x"})
}

func TestBuildAlwaysSixEntries(t *testing.T) {
	f := build(t, "Em")
	assert := assert.New(t)
	assert.NotNil(f)
	assert.Equal(len(f), 6)
}
