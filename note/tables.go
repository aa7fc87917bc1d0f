package note

import "github.com/jsphweid/transposer/util"

var sharpTable = [SemitonesPerOctave]Note{
	{A, Natural}, {A, Sharp}, {B, Natural}, {C, Natural},
	{C, Sharp}, {D, Natural}, {D, Sharp}, {E, Natural},
	{F, Natural}, {F, Sharp}, {G, Natural}, {G, Sharp},
}

var flatTable = [SemitonesPerOctave]Note{
	{A, Natural}, {B, Flat}, {B, Natural}, {C, Natural},
	{D, Flat}, {D, Natural}, {E, Flat}, {E, Natural},
	{F, Natural}, {G, Flat}, {G, Natural}, {A, Flat},
}

// SharpSpelling spells a pitch class with a sharp or as a natural.
func SharpSpelling(pc int) Note {
	return sharpTable[util.Mod(pc, SemitonesPerOctave)]
}

// FlatSpelling spells a pitch class with a flat or as a natural.
func FlatSpelling(pc int) Note {
	return flatTable[util.Mod(pc, SemitonesPerOctave)]
}

// Correspondent returns the simplest enharmonic spelling of n. Single
// accidentals swap family (Ab -> G#, B# -> C), double accidentals collapse
// within their own family (Cbb -> Bb, B## -> C#). Naturals are returned
// as they are.
func (n Note) Correspondent() Note {
	pc := n.PitchClass()
	switch n.Accidental {
	case Flat, DoubleSharp:
		return SharpSpelling(pc)
	case Sharp, DoubleFlat:
		return FlatSpelling(pc)
	}
	return n
}
