package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jsphweid/transposer/chord"
	"github.com/jsphweid/transposer/constants"
	"github.com/jsphweid/transposer/util"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const velocity = 100

// WriteProgression writes chords as a single track SMF, one bar per chord.
func WriteProgression(w io.Writer, chords []*chord.Chord, octave int) error {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)
	bar := uint32(constants.TicksPerQuarter * constants.BeatsPerChord)

	var tr smf.Track
	tr.Add(0, smf.MetaMeter(4, 4))

	// ticks since the last event, carried over chords that voice to nothing
	var pending uint32
	for _, c := range chords {
		keys := ChordNotes(c, octave)
		if len(keys) == 0 {
			pending += bar
			continue
		}
		for i, key := range keys {
			var delta uint32
			if i == 0 {
				delta = pending
			}
			tr.Add(delta, gomidi.NoteOn(0, key, velocity))
		}
		for i, key := range keys {
			var delta uint32
			if i == 0 {
				delta = bar
			}
			tr.Add(delta, gomidi.NoteOff(0, key))
		}
		pending = 0
	}
	tr.Close(pending)

	if err := s.Add(tr); err != nil {
		return fmt.Errorf("could not add track: %w", err)
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("could not write midi: %w", err)
	}
	return nil
}

func WriteMidiFile(path string, chords []*chord.Chord, octave int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create midi file: %w", err)
	}
	if err := WriteProgression(f, chords, octave); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("could not close midi file: %w", err)
	}
	return nil
}

// ReadProgression groups the note-ons of every track by the tick they
// start on. Groups come back in time order with ascending keys.
func ReadProgression(r io.Reader) (groups [][]uint8, e error) {
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if rec := recover(); rec != nil {
			groups = nil
			e = fmt.Errorf("error parsing midi file... %v", rec)
		}
	}()

	s, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing midi file... %w", err)
	}

	onsets := make(map[int64][]uint8)
	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			var channel, key, vel uint8
			if event.Message.GetNoteOn(&channel, &key, &vel) && vel > 0 {
				onsets[absTicks] = append(onsets[absTicks], key)
			}
		}
	}

	ticks := util.GetKeys(onsets)
	sort.Slice(ticks, func(i, j int) bool { return ticks[i] < ticks[j] })

	for _, tick := range ticks {
		keys := onsets[tick]
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		groups = append(groups, keys)
	}
	return groups, nil
}

func ReadMidiFile(path string) ([][]uint8, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("Error reading midi file... " + err.Error())
	}
	return ReadProgression(bytes.NewReader(dat))
}
