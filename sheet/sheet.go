// Package sheet transposes chord sheets: lyrics or notes with chord names
// written among them.
package sheet

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jsphweid/transposer/chord"
	"github.com/jsphweid/transposer/model"
	"github.com/jsphweid/transposer/note"
	"github.com/jsphweid/transposer/transpose"
)

var tokenRegex = regexp.MustCompile(`\S+`)

func New(title string, text string) model.Sheet {
	s := model.Sheet{
		ID:     uuid.New().String(),
		Title:  title,
		Text:   text,
		Chords: ChordNames(text),
	}
	if key, ok := Key(text); ok {
		s.Key = key.String()
	}
	return s
}

func ChordNames(text string) []string {
	chords := transpose.ExtractChords(text)
	res := make([]string, 0, len(chords))
	for _, c := range chords {
		res = append(res, c.String())
	}
	return res
}

// Key is the root of the first chord in text.
func Key(text string) (note.Note, bool) {
	chords := transpose.ExtractChords(text)
	if len(chords) == 0 {
		return note.Note{}, false
	}
	return chords[0].Root, true
}

// Transpose shifts every chord in text. Words that are not chords are left
// alone, and the spacing after a chord is adjusted so the chords that
// follow on the same line stay in their columns when possible.
func Transpose(text string, semitones int, dir transpose.Direction) (string, error) {
	if semitones < 0 {
		return "", fmt.Errorf("%w: %d", transpose.ErrInvalidSemitones, semitones)
	}

	shift := func(token string) string {
		c, err := chord.Parse(token)
		if err != nil {
			return token
		}
		shifted, err := transpose.Shift(c, semitones, dir)
		if err != nil {
			return token
		}
		return shifted.String()
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = transposeLine(line, shift)
	}
	return strings.Join(lines, "\n"), nil
}

// TransposeTo moves text so that a chord on from lands on to.
func TransposeTo(text string, from note.Note, to note.Note) (string, error) {
	return Transpose(text, transpose.Semitones(from, to), transpose.Upward)
}

func transposeLine(line string, shift func(string) string) string {
	var b strings.Builder

	// runes written minus runes read so far
	drift := 0
	last := 0
	for _, loc := range tokenRegex.FindAllStringIndex(line, -1) {
		gap := line[last:loc[0]]
		if last > 0 && strings.Trim(gap, " ") == "" {
			switch {
			case drift > 0:
				reduce := drift
				if reduce > len(gap)-1 {
					reduce = len(gap) - 1
				}
				gap = gap[reduce:]
				drift -= reduce
			case drift < 0:
				gap += strings.Repeat(" ", -drift)
				drift = 0
			}
		}
		b.WriteString(gap)

		token := line[loc[0]:loc[1]]
		replaced := shift(token)
		drift += utf8.RuneCountInString(replaced) - utf8.RuneCountInString(token)
		b.WriteString(replaced)
		last = loc[1]
	}
	b.WriteString(line[last:])
	return b.String()
}
