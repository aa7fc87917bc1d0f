package chord

import (
	"github.com/jsphweid/transposer/note"
)

type Tonality uint8

const (
	Major Tonality = iota
	Minor
	Augmented
	Diminished
	HalfDiminished
	Sus2
	Sus4
)

var tonalitySuffixes = [...]string{"", "m", "+", "°", "m7(b5)", "sus2", "sus4"}
var tonalityNames = [...]string{"major", "minor", "augmented", "diminished", "half-diminished", "sus2", "sus4"}

// Suffix is the text written right after the root, e.g. "m" for Minor.
func (t Tonality) Suffix() string {
	return tonalitySuffixes[t]
}

func (t Tonality) String() string {
	return tonalityNames[t]
}

// Chord is an immutable chord name: root, tonality, the extensions written
// after the tonality marker and an optional bass note.
type Chord struct {
	Root       note.Note
	Tonality   Tonality
	Complement string

	// nil when the chord has no slash bass
	Inversion *note.Note
}

// New builds a chord from its parts without validation.
func New(root note.Note, tonality Tonality, complement string, inversion *note.Note) *Chord {
	c := &Chord{
		Root:       root,
		Tonality:   tonality,
		Complement: complement,
	}
	if inversion != nil {
		inv := *inversion
		c.Inversion = &inv
	}
	return c
}

// FromNote is a major chord on root with no extensions or bass.
func FromNote(root note.Note) *Chord {
	return New(root, Major, "", nil)
}

func (c *Chord) String() string {
	res := c.Root.String() + c.Tonality.Suffix() + c.Complement
	if c.Inversion != nil {
		res += "/" + c.Inversion.String()
	}
	return res
}

// Key is the canonical text, usable as a map key.
func (c *Chord) Key() string {
	return c.String()
}

func (c *Chord) Equal(other *Chord) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.String() == other.String()
}

func (c *Chord) HasInversion() bool {
	return c.Inversion != nil
}

func (c *Chord) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Chord) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = *parsed
	return nil
}
