package midi

import (
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/jsphweid/transposer/chord"
	"github.com/jsphweid/transposer/note"
	"github.com/jsphweid/transposer/util"
)

const (
	minKey = 0
	maxKey = 127
)

// semitones above the root
var triads = map[chord.Tonality][]int{
	chord.Major:          {0, 4, 7},
	chord.Minor:          {0, 3, 7},
	chord.Augmented:      {0, 4, 8},
	chord.Diminished:     {0, 3, 6},
	chord.HalfDiminished: {0, 3, 6, 10},
	chord.Sus2:           {0, 2, 7},
	chord.Sus4:           {0, 5, 7},
}

var intervalTones = map[string][]int{
	"2":     {2},
	"4":     {5},
	"5":     {},
	"6":     {9},
	"7":     {10},
	"7M":    {11},
	"maj7":  {11},
	"9":     {10, 14},
	"maj9":  {11, 14},
	"11":    {10, 14, 17},
	"13":    {10, 14, 21},
	"add2":  {2},
	"add4":  {5},
	"add9":  {14},
	"add11": {17},
	"add13": {21},
}

var alterationTones = map[string][]int{
	"b2":  {1},
	"2":   {2},
	"4":   {5},
	"4#":  {6},
	"5":   {7},
	"6":   {9},
	"7":   {10},
	"7M":  {11},
	"b9":  {13},
	"9":   {14},
	"#9":  {15},
	"11":  {17},
	"#11": {18},
	"b13": {20},
	"13":  {21},
}

// altered fifths replace the perfect fifth instead of adding to it
var fifthAlterations = map[string]int{
	"b5": 6,
	"#5": 8,
}

// a "5" chord is root and fifth only
const powerChordInterval = "5"

var complementRegex = regexp.MustCompile(`^([^(]*)(?:\((.*)\))?$`)

// ChordNotes voices c as MIDI keys with the root in octave (C4 = 60). A
// bass note goes one octave below the root. Keys are ascending.
func ChordNotes(c *chord.Chord, octave int) []uint8 {
	octave = util.Clamp(octave, -1, 9)
	root := (octave+1)*note.SemitonesPerOctave + semitonesFromC(c.Root)

	var res []uint8
	if c.Inversion != nil {
		bass := octave*note.SemitonesPerOctave + semitonesFromC(*c.Inversion)
		if bass >= minKey && bass <= maxKey {
			res = append(res, uint8(bass))
		}
	}
	for _, interval := range intervals(c) {
		key := root + interval
		if key < minKey || key > maxKey {
			continue
		}
		res = append(res, uint8(key))
	}
	return res
}

func semitonesFromC(n note.Note) int {
	return util.Mod(n.PitchClass()-note.New(note.C, note.Natural).PitchClass(), note.SemitonesPerOctave)
}

func intervals(c *chord.Chord) []int {
	tones := append([]int{}, triads[c.Tonality]...)

	m := complementRegex.FindStringSubmatch(c.Complement)
	if m == nil {
		return tones
	}
	tones = append(tones, intervalTones[m[1]]...)
	if m[1] == powerChordInterval {
		tones = without(tones, 3, 4)
	}
	if m[2] != "" {
		for _, alt := range strings.Split(m[2], ",") {
			if fifth, ok := fifthAlterations[alt]; ok {
				tones = replace(tones, 7, fifth)
				continue
			}
			tones = append(tones, alterationTones[alt]...)
		}
	}

	seen := make(map[int]bool)
	var res []int
	for _, t := range tones {
		if !seen[t] {
			seen[t] = true
			res = append(res, t)
		}
	}
	sort.Ints(res)
	return res
}

func replace(tones []int, from int, to int) []int {
	res := make([]int, 0, len(tones)+1)
	found := false
	for _, t := range tones {
		if t == from {
			found = true
			res = append(res, to)
			continue
		}
		res = append(res, t)
	}
	if !found {
		res = append(res, to)
	}
	return res
}

func without(tones []int, drop ...int) []int {
	res := make([]int, 0, len(tones))
	for _, t := range tones {
		if !slices.Contains(drop, t) {
			res = append(res, t)
		}
	}
	return res
}
