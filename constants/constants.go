package constants

import "os"

const NumStrings = 6

// MaxFret is the highest fret the lattice models. Fret 0 is the open string.
const MaxFret = 7

// Standard tuning, low to high: E2 A2 D3 G3 B3 E4.
var OpenPitches = [NumStrings]uint8{40, 45, 50, 55, 59, 64}

// StringNames identifies strings low to high. The high E is lowercase
// to distinguish it from the low E in diagrams and sample paths.
var StringNames = [NumStrings]string{"E", "A", "D", "G", "B", "e"}

// Sharp-based pitch class names, indexed by semitone within the octave.
var NoteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Root anchor search window: lowest strings, low frets.
const AnchorWindowStrings = 3
const AnchorWindowMaxFret = 4

// TemplateWindow is how many frets around the anchor the template builder
// searches before widening to the full fret range.
const TemplateWindow = 2

// Fallback scoring weights. Span and barre are penalties, open strings and
// matching a standard open-chord shape are bonuses.
const (
	WeightSpan     = -1.5
	WeightOpen     = 0.75
	WeightBarre    = -1.0
	WeightStandard = 3.0
)

const DefaultMaxFretSpan = 4
const DefaultMaxCandidates = 250
const DefaultAlternatives = 3

// MaxPitchShift bounds how far (in semitones) a neighboring fret's sample
// may be shifted to stand in for a missing one.
const MaxPitchShift = 2

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

func GetSampleDir() string {
	path := os.Getenv("SAMPLE_PATH")
	if path != "" {
		return path
	}
	return "./samples"
}

func GetSampleExt() string {
	ext := os.Getenv("SAMPLE_EXT")
	if ext != "" {
		return ext
	}
	return "wav"
}

// GetMetadataTable returns the DynamoDB table holding chord metadata.
// Empty means metadata lookup is disabled.
func GetMetadataTable() string {
	return os.Getenv("METADATA_TABLE")
}

func GetDynamoEndpoint() string {
	endpoint := os.Getenv("DYNAMO_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}
