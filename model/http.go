package model

type TransposeRequestBody struct {
	Chords    []string `json:"chords"`
	Semitones int      `json:"semitones"`
	Direction string   `json:"direction"`
}

type ChordsResponse struct {
	Chords []string `json:"chords"`
}

type OptimizeRequestBody struct {
	Chords []string `json:"chords"`
}

type ExtractRequestBody struct {
	Text string `json:"text"`
}

type SheetRequestBody struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type SheetTransposeRequestBody struct {
	Semitones int    `json:"semitones"`
	Direction string `json:"direction"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
