package chord

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jsphweid/transposer/note"
)

var ErrNotAChord = errors.New("not a chord")

const (
	letterPattern     = `([A-G])`
	accidentalPattern = `(##|#|bb|b)?`
	markPattern       = `(m|sus2|sus4)?`
	intervalPattern   = `(?:2|4|5|6|7M|7|9|11|13|maj7|maj9|add(?:2|4|9|11|13))?`
	alterationPattern = `(?:b2|2|4#|4|b5|5|#5|6|7M|7|b9|9|#9|#11|11|b13|13)`
)

// submatch indexes of chordRegex
const (
	rootLetterGroup = iota + 1
	rootAccidentalGroup
	complementGroup
	markGroup
	inversionLetterGroup
	inversionAccidentalGroup
)

var chordRegex = regexp.MustCompile(buildPattern())

func buildPattern() string {
	alterations := `(?:\(` + alterationPattern + `(?:,` + alterationPattern + `)*\))?`
	complement := `(\+|\x{00B0}|` + markPattern + intervalPattern + alterations + `)`
	inversion := `(?:/` + letterPattern + accidentalPattern + `)?`
	return `^` + letterPattern + accidentalPattern + complement + inversion + `$`
}

// Parse reads a chord name. Surrounding whitespace is ignored but the rest
// of the text has to match in full.
func Parse(text string) (*Chord, error) {
	text = strings.TrimSpace(text)
	m := chordRegex.FindStringSubmatch(text)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotAChord, text)
	}

	root, err := parseNote(m[rootLetterGroup], m[rootAccidentalGroup])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrNotAChord, text, err)
	}

	tonality, complement := resolveTonality(m[complementGroup], m[markGroup])

	var inversion *note.Note
	if m[inversionLetterGroup] != "" {
		inv, err := parseNote(m[inversionLetterGroup], m[inversionAccidentalGroup])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrNotAChord, text, err)
		}
		inversion = &inv
	}

	return New(root, tonality, complement, inversion), nil
}

func MustParse(text string) *Chord {
	c, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return c
}

func parseNote(letter string, accidental string) (note.Note, error) {
	return note.Parse(letter + accidental)
}

func resolveTonality(complement string, mark string) (Tonality, string) {
	switch complement {
	case Augmented.Suffix():
		return Augmented, ""
	case Diminished.Suffix():
		return Diminished, ""
	case HalfDiminished.Suffix():
		return HalfDiminished, ""
	}

	rest := strings.TrimPrefix(complement, mark)
	switch mark {
	case Minor.Suffix():
		return Minor, rest
	case Sus2.Suffix():
		return Sus2, rest
	case Sus4.Suffix():
		return Sus4, rest
	}
	return Major, complement
}
