package transpose

import (
	"strings"

	"github.com/jsphweid/transposer/chord"
)

func IsChord(text string) bool {
	_, err := chord.Parse(text)
	return err == nil
}

// ExtractChords returns the whitespace separated tokens of text that are
// chords, in order. Anything else is skipped.
func ExtractChords(text string) []*chord.Chord {
	return ValidChords(strings.Fields(text))
}

// ValidChords parses the names that are chords and drops the rest.
func ValidChords(names []string) []*chord.Chord {
	res := make([]*chord.Chord, 0, len(names))
	for _, name := range names {
		c, err := chord.Parse(name)
		if err != nil {
			continue
		}
		res = append(res, c)
	}
	return res
}
