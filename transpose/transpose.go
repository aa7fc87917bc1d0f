// Package transpose shifts notes and chords by semitones and keeps their
// spelling idiomatic.
//
// A shifted note keeps the flat/sharp family of the note it came from.
// Naturals have no family of their own and take the one of the direction:
// sharps going up, flats going down.
package transpose

import (
	"fmt"
	"strings"

	"github.com/jsphweid/transposer/chord"
	"github.com/jsphweid/transposer/note"
	"github.com/jsphweid/transposer/util"
)

type Direction int

const (
	Upward Direction = iota
	Downward
)

func (d Direction) String() string {
	if d == Downward {
		return "down"
	}
	return "up"
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "up":
		return Upward, nil
	case "down":
		return Downward, nil
	}
	return Upward, fmt.Errorf("unknown direction %q", s)
}

func normalize(semitones int) (int, error) {
	if semitones < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSemitones, semitones)
	}
	return semitones % note.SemitonesPerOctave, nil
}

func shiftNote(n note.Note, semitones int, dir Direction) note.Note {
	offset := semitones
	if dir == Downward {
		offset = -semitones
	}
	pc := util.Mod(n.PitchClass()+offset, note.SemitonesPerOctave)

	switch {
	case n.Accidental.IsFlat():
		return note.FlatSpelling(pc)
	case n.Accidental.IsSharp():
		return note.SharpSpelling(pc)
	case dir == Downward:
		return note.FlatSpelling(pc)
	}
	return note.SharpSpelling(pc)
}

// ShiftNote moves n by semitones in dir. A shift that is a multiple of an
// octave returns n as it was given.
func ShiftNote(n note.Note, semitones int, dir Direction) (note.Note, error) {
	semitones, err := normalize(semitones)
	if err != nil {
		return n, err
	}
	if semitones == 0 {
		return n, nil
	}
	return shiftNote(n, semitones, dir), nil
}

func UpNote(n note.Note, semitones int) (note.Note, error) {
	return ShiftNote(n, semitones, Upward)
}

func DownNote(n note.Note, semitones int) (note.Note, error) {
	return ShiftNote(n, semitones, Downward)
}

// Shift moves a chord by semitones in dir. The bass note is first brought
// into the root's family, then root and bass are shifted independently.
func Shift(c *chord.Chord, semitones int, dir Direction) (*chord.Chord, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: chord", ErrNullArgument)
	}
	semitones, err := normalize(semitones)
	if err != nil {
		return nil, err
	}

	c = align(c)
	if semitones == 0 {
		return c, nil
	}

	root := shiftNote(c.Root, semitones, dir)
	var inversion *note.Note
	if c.Inversion != nil {
		// a bass that lands on the root's spelling is no longer a slash chord
		if inv := shiftNote(*c.Inversion, semitones, dir); inv != root {
			inversion = &inv
		}
	}
	return chord.New(root, c.Tonality, c.Complement, inversion), nil
}

func Up(c *chord.Chord, semitones int) (*chord.Chord, error) {
	return Shift(c, semitones, Upward)
}

func Down(c *chord.Chord, semitones int) (*chord.Chord, error) {
	return Shift(c, semitones, Downward)
}

func UpOne(c *chord.Chord) (*chord.Chord, error) {
	return Up(c, 1)
}

func DownOne(c *chord.Chord) (*chord.Chord, error) {
	return Down(c, 1)
}

func ShiftText(text string, semitones int, dir Direction) (*chord.Chord, error) {
	c, err := chord.Parse(text)
	if err != nil {
		return nil, err
	}
	return Shift(c, semitones, dir)
}

func UpText(text string, semitones int) (*chord.Chord, error) {
	return ShiftText(text, semitones, Upward)
}

func DownText(text string, semitones int) (*chord.Chord, error) {
	return ShiftText(text, semitones, Downward)
}

// ShiftAll shifts every chord, keeping order. A nil list is an error, an
// empty one is not.
func ShiftAll(chords []*chord.Chord, semitones int, dir Direction) ([]*chord.Chord, error) {
	if chords == nil {
		return nil, fmt.Errorf("%w: chord list", ErrNullArgument)
	}
	res := make([]*chord.Chord, 0, len(chords))
	for i, c := range chords {
		shifted, err := Shift(c, semitones, dir)
		if err != nil {
			return nil, fmt.Errorf("chord %d: %w", i, err)
		}
		res = append(res, shifted)
	}
	return res, nil
}

func UpAll(chords []*chord.Chord, semitones int) ([]*chord.Chord, error) {
	return ShiftAll(chords, semitones, Upward)
}

func DownAll(chords []*chord.Chord, semitones int) ([]*chord.Chord, error) {
	return ShiftAll(chords, semitones, Downward)
}

// Semitones is the upward distance from one note to another, 0 to 11.
func Semitones(from note.Note, to note.Note) int {
	return util.Mod(to.PitchClass()-from.PitchClass(), note.SemitonesPerOctave)
}
