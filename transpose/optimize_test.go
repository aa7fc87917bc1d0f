package transpose

import (
	"errors"
	"testing"

	"github.com/jsphweid/transposer/chord"
	"github.com/jsphweid/transposer/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimize(t *testing.T) {
	cases := []struct {
		chord    string
		expected string
	}{
		{"A", "A"},
		{"A#", "A#"},
		{"Ab", "Ab"},
		{"A#/Db", "A#/C#"},
		{"Ab/C#", "Ab/Db"},
		{"A/Ebb", "A/D"},
		{"A/D##", "A/E"},
		{"A#/Ebb", "A#/D"},
		{"A#/D##", "A#/E"},
		{"A##/Ebb", "B/D"},
		{"A##/D##", "B/E"},
		{"Abb/Ebb", "G/D"},
		{"Abb/Dbb", "G/C"},
		{"A#/Bb", "A#"},
		{"Bbb/A", "A"},
		{"Cbbm7/Bb", "Bbm7"},
	}
	for _, c := range cases {
		t.Run(c.chord, func(t *testing.T) {
			assert.Equal(t, c.expected, Optimize(chord.MustParse(c.chord)).String())

			res, err := OptimizeText(c.chord)
			require.NoError(t, err)
			assert.Equal(t, c.expected, res.String())
		})
	}
}

func TestOptimizeIsIdempotent(t *testing.T) {
	for _, root := range allNotes() {
		for _, inv := range allNotes() {
			c := chord.New(root, chord.Minor, "7", &inv)
			once := Optimize(c)
			assert.True(t, once.Equal(Optimize(once)), c.String())
		}
	}
}

func TestOptimizeNeverChangesASingleAccidentalRoot(t *testing.T) {
	for _, text := range []string{"Ab/C#", "A#/Db", "Gb/F#", "F#/Gb"} {
		c := chord.MustParse(text)
		assert.Equal(t, c.Root, Optimize(c).Root)
	}
}

func TestOptimizeRejectsInvalidText(t *testing.T) {
	for _, text := range []string{"", "H"} {
		_, err := OptimizeText(text)
		assert.True(t, errors.Is(err, chord.ErrNotAChord))
	}
}

func TestOptimizeNilChord(t *testing.T) {
	assert.Nil(t, Optimize(nil))
}

func TestChromaticCorrespondent(t *testing.T) {
	cases := []struct {
		expected string
		note     note.Note
	}{
		{"A#", note.New(note.B, note.Flat)},
		{"Bb", note.New(note.A, note.Sharp)},
		{"A", note.New(note.A, note.Natural)},
		{"B", note.New(note.A, note.DoubleSharp)},
		{"A", note.New(note.B, note.DoubleFlat)},
	}
	for _, c := range cases {
		t.Run(c.note.String(), func(t *testing.T) {
			n := c.note
			res, err := ChromaticCorrespondent(&n)
			require.NoError(t, err)
			assert.Equal(t, c.expected, res.String())
		})
	}
}

func TestChromaticCorrespondentOfNil(t *testing.T) {
	_, err := ChromaticCorrespondent(nil)
	assert.True(t, errors.Is(err, ErrNullArgument))
}

func TestHasDifferentChromaticPole(t *testing.T) {
	same := [][2]note.Accidental{
		{note.Natural, note.Natural},
		{note.Natural, note.Flat},
		{note.Flat, note.Natural},
		{note.Flat, note.Flat},
		{note.Natural, note.Sharp},
		{note.Sharp, note.Natural},
		{note.Sharp, note.Sharp},
	}
	for _, pair := range same {
		assert.False(t, HasDifferentChromaticPole(note.New(note.C, pair[0]), note.New(note.C, pair[1])))
	}

	different := [][2]note.Accidental{
		{note.Flat, note.Sharp},
		{note.Flat, note.DoubleSharp},
		{note.Sharp, note.Flat},
		{note.Sharp, note.DoubleFlat},
		{note.DoubleFlat, note.Sharp},
		{note.DoubleFlat, note.DoubleSharp},
		{note.DoubleSharp, note.Flat},
		{note.DoubleSharp, note.DoubleFlat},
	}
	for _, pair := range different {
		assert.True(t, HasDifferentChromaticPole(note.New(note.C, pair[0]), note.New(note.C, pair[1])))
	}
}
