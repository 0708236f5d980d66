package model

type ResolveRequestBody struct {
	Symbols []string `json:"symbols"`
}

type ChordResult struct {
	Symbol   string         `json:"symbol"`
	Error    string         `json:"error,omitempty"`
	Path     string         `json:"path,omitempty"`
	Frets    []string       `json:"frets,omitempty"`
	Notes    []string       `json:"notes,omitempty"`
	Score    *float64       `json:"score,omitempty"`
	Metadata *ChordMetadata `json:"metadata,omitempty"`
}

type ResolveResponse struct {
	RequestId string        `json:"request_id"`
	Results   []ChordResult `json:"results"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

// ChordMetadata is editorial data about a chord, fetched from DynamoDB
// when a metadata table is configured.
type ChordMetadata struct {
	DisplayName string `json:"display_name"`
	Difficulty  uint   `json:"difficulty"`
	SongExample string `json:"song_example,omitempty"`
}
