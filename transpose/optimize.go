package transpose

import (
	"fmt"

	"github.com/jsphweid/transposer/chord"
	"github.com/jsphweid/transposer/note"
)

// ChromaticCorrespondent returns the simplest enharmonic spelling of n.
func ChromaticCorrespondent(n *note.Note) (note.Note, error) {
	if n == nil {
		return note.Note{}, fmt.Errorf("%w: note", ErrNullArgument)
	}
	return n.Correspondent(), nil
}

// HasDifferentChromaticPole is true when one note is on the flat side and
// the other on the sharp side. Doubles count for their side, naturals for
// neither.
func HasDifferentChromaticPole(a note.Note, b note.Note) bool {
	pa, pb := a.Pole(), b.Pole()
	return pa != note.NoPole && pb != note.NoPole && pa != pb
}

// Optimize simplifies double accidentals on the root and the bass note,
// then brings the bass note into the root's flat/sharp family. A bass note
// that ends up spelled like the root is dropped. The root spelling is only
// ever changed to get rid of a double accidental.
func Optimize(c *chord.Chord) *chord.Chord {
	if c == nil {
		return nil
	}

	root := simplify(c.Root)
	var inversion *note.Note
	if c.Inversion != nil {
		inv := simplify(*c.Inversion)
		inversion = &inv
	}
	return align(chord.New(root, c.Tonality, c.Complement, inversion))
}

// OptimizeText parses text and optimizes the chord.
func OptimizeText(text string) (*chord.Chord, error) {
	c, err := chord.Parse(text)
	if err != nil {
		return nil, err
	}
	return Optimize(c), nil
}

func simplify(n note.Note) note.Note {
	if n.Accidental.IsDouble() {
		return n.Correspondent()
	}
	return n
}

// align only looks at single accidentals, so a chord spelled with doubles
// passes through untouched.
func align(c *chord.Chord) *chord.Chord {
	if c.Inversion == nil {
		return c
	}

	inv := *c.Inversion
	if c.Root.Accidental.IsSingle() && inv.Accidental.IsSingle() && HasDifferentChromaticPole(c.Root, inv) {
		inv = inv.Correspondent()
	}

	if inv == c.Root {
		return chord.New(c.Root, c.Tonality, c.Complement, nil)
	}
	if inv == *c.Inversion {
		return c
	}
	return chord.New(c.Root, c.Tonality, c.Complement, &inv)
}
