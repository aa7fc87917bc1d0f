package model

// Sheet is a chord sheet: free text with chord names scattered through it.
type Sheet struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Text   string   `json:"text"`
	Chords []string `json:"chords"`

	// NOTE: empty when the sheet has no chords
	Key string `json:"key,omitempty"`
}
