package model

import "fmt"

// UnknownRootError means the leading note token of a symbol could not be
// parsed as a pitch letter with optional accidental.
type UnknownRootError struct {
	Token string
}

func (e UnknownRootError) Error() string {
	return fmt.Sprintf("unknown root note in %q", e.Token)
}

// UnsupportedQualityError means the quality suffix has no entry in the
// interval table.
type UnsupportedQualityError struct {
	Symbol  string
	Quality string
}

func (e UnsupportedQualityError) Error() string {
	return fmt.Sprintf("unsupported chord quality %q in %q", e.Quality, e.Symbol)
}

// RootNotFoundError means the root pitch class has no occurrence on the
// lattice. It cannot happen in standard tuning over frets 0-7 but the
// anchor search still reports it rather than guessing.
type RootNotFoundError struct {
	Root string
}

func (e RootNotFoundError) Error() string {
	return fmt.Sprintf("root %v not present on the fretboard", e.Root)
}

// NoFingeringFound means the fallback search finished with zero valid
// candidates.
type NoFingeringFound struct {
	Symbol string
}

func (e NoFingeringFound) Error() string {
	return fmt.Sprintf("no playable fingering found for %v", e.Symbol)
}

// OutOfRangeError reports a lattice lookup outside the modeled fret range.
type OutOfRangeError struct {
	String int
	Fret   int
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("position string=%v fret=%v is outside the fretboard", e.String, e.Fret)
}
