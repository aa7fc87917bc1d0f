// Package note models note letters, accidentals and pitch classes.
//
// Pitch classes are counted from A (A=0), so the natural letters sit at
// A=0, B=2, C=3, D=5, E=7, F=8, G=10 with the half steps between B-C and
// E-F.
package note

import (
	"errors"
	"fmt"

	"github.com/jsphweid/transposer/util"
)

const SemitonesPerOctave = 12

var ErrNotANote = errors.New("not a note")

type Letter uint8

const (
	A Letter = iota
	B
	C
	D
	E
	F
	G
)

var letterNames = [...]string{"A", "B", "C", "D", "E", "F", "G"}
var letterBases = [...]int{0, 2, 3, 5, 7, 8, 10}

func (l Letter) String() string {
	return letterNames[l]
}

// Base is the pitch class of the natural letter.
func (l Letter) Base() int {
	return letterBases[l]
}

func ParseLetter(s string) (Letter, error) {
	for i, name := range letterNames {
		if name == s {
			return Letter(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown letter %q", ErrNotANote, s)
}

type Accidental uint8

const (
	Natural Accidental = iota
	DoubleFlat
	Flat
	Sharp
	DoubleSharp
)

var accidentalSymbols = [...]string{"", "bb", "b", "#", "##"}
var accidentalOffsets = [...]int{0, -2, -1, 1, 2}

func (a Accidental) Symbol() string {
	return accidentalSymbols[a]
}

func (a Accidental) Offset() int {
	return accidentalOffsets[a]
}

func (a Accidental) IsFlat() bool {
	return a == Flat || a == DoubleFlat
}

func (a Accidental) IsSharp() bool {
	return a == Sharp || a == DoubleSharp
}

func (a Accidental) IsDouble() bool {
	return a == DoubleFlat || a == DoubleSharp
}

func (a Accidental) IsSingle() bool {
	return a == Flat || a == Sharp
}

func ParseAccidental(s string) (Accidental, error) {
	for i, symbol := range accidentalSymbols {
		if symbol == s {
			return Accidental(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown accidental %q", ErrNotANote, s)
}

// Pole is the chromatic side of a note. Naturals have none.
type Pole int8

const (
	FlatPole Pole = iota - 1
	NoPole
	SharpPole
)

type Note struct {
	Letter     Letter
	Accidental Accidental
}

func New(l Letter, a Accidental) Note {
	return Note{Letter: l, Accidental: a}
}

// Parse reads a bare note such as "C", "Eb" or "F##".
func Parse(s string) (Note, error) {
	if len(s) == 0 {
		return Note{}, fmt.Errorf("%w: empty", ErrNotANote)
	}
	l, err := ParseLetter(s[:1])
	if err != nil {
		return Note{}, err
	}
	a, err := ParseAccidental(s[1:])
	if err != nil {
		return Note{}, err
	}
	return New(l, a), nil
}

func MustParse(s string) Note {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

func (n Note) String() string {
	return n.Letter.String() + n.Accidental.Symbol()
}

func (n Note) PitchClass() int {
	return util.Mod(n.Letter.Base()+n.Accidental.Offset(), SemitonesPerOctave)
}

func (n Note) Pole() Pole {
	switch {
	case n.Accidental.IsFlat():
		return FlatPole
	case n.Accidental.IsSharp():
		return SharpPole
	}
	return NoPole
}

func (n Note) Ptr() *Note {
	return &n
}
