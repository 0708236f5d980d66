package sample

import (
	"strings"
	"testing"

	"github.com/gtrlab/fretsolve/model"
	"github.com/gtrlab/fretsolve/resolver"
	"github.com/stretchr/testify/assert"
)

func resolveFingering(t *testing.T, symbol string) model.Fingering {
	t.Helper()
	r := resolver.New(resolver.DefaultConfig())
	res, err := r.Resolve(symbol)
	if err != nil {
		t.Fatalf("could not resolve %v: %v", symbol, err)
	}
	return res.Fingering
}

func TestPathFor(t *testing.T) {
	assert.Equal(t, PathFor("samples", "A", 3, "wav"), "samples/A/fret3.wav")
}

func TestPlanExactSamples(t *testing.T) {
	f := resolveFingering(t, "Em")
	refs, err := Plan(f, "samples", "wav", nil)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(len(refs), 6)
	for _, ref := range refs {
		assert.Equal(ref.ShiftSemitones, 0)
		assert.True(strings.HasPrefix(ref.Path, "samples/"+ref.StringName+"/"))
	}
}

func TestPlanSkipsMutedStrings(t *testing.T) {
	f := resolveFingering(t, "C")
	refs, err := Plan(f, "samples", "wav", nil)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(len(refs), f.Sounded())
}

func TestPlanPitchShiftFallback(t *testing.T) {
	f := resolveFingering(t, "Em")
	missing := PathFor("samples", "A", 2, "wav")
	exists := func(path string) bool { return path != missing }

	refs, err := Plan(f, "samples", "wav", exists)
	assert := assert.New(t)
	assert.NoError(err)

	var shifted *Ref
	for i := range refs {
		if refs[i].StringName == "A" {
			shifted = &refs[i]
		}
	}
	assert.NotNil(shifted)
	// fret 1 sample shifted up one semitone stands in for fret 2
	assert.Equal(shifted.Path, PathFor("samples", "A", 1, "wav"))
	assert.Equal(shifted.ShiftSemitones, 1)
}

func TestPlanFailsBeyondShiftBound(t *testing.T) {
	f := resolveFingering(t, "Em")
	exists := func(path string) bool { return false }

	_, err := Plan(f, "samples", "wav", exists)
	assert.Error(t, err)
}

func TestCreateSMFStrum(t *testing.T) {
	f := resolveFingering(t, "Em")
	mf := CreateSMF(f, false, 120)

	assert := assert.New(t)
	assert.Equal(len(mf.Tracks), 1)

	var ons, offs int
	for _, evt := range mf.Tracks[0] {
		var ch, key, vel uint8
		switch {
		case evt.Message.GetNoteOn(&ch, &key, &vel):
			if vel > 0 {
				ons++
			} else {
				offs++
			}
		case evt.Message.GetNoteOff(&ch, &key, &vel):
			offs++
		}
	}
	assert.Equal(ons, f.Sounded())
	assert.Equal(offs, f.Sounded())
}

func TestCreateSMFArpeggioStaggersOnsets(t *testing.T) {
	f := resolveFingering(t, "Em")
	mf := CreateSMF(f, true, 120)

	assert := assert.New(t)
	assert.Equal(len(mf.Tracks), 1)

	var onsWithDelta int
	for _, evt := range mf.Tracks[0] {
		var ch, key, vel uint8
		if evt.Message.GetNoteOn(&ch, &key, &vel) && vel > 0 && evt.Delta > 0 {
			onsWithDelta++
		}
	}
	assert.Equal(onsWithDelta, f.Sounded()-1)
}
