package cmd

import (
	"fmt"

	"github.com/jsphweid/transposer/chord"
	"github.com/jsphweid/transposer/constants"
	"github.com/jsphweid/transposer/midi"
	"github.com/jsphweid/transposer/transpose"
	"github.com/spf13/cobra"
)

var (
	exportOutput    string
	exportOctave    int
	exportSemitones int
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "progression.mid", "midi file to write")
	exportCmd.Flags().IntVar(&exportOctave, "octave", constants.DefaultOctave, "octave of the chord roots")
	exportCmd.Flags().IntVarP(&exportSemitones, "semitones", "s", 0, "semitones to transpose up by before writing")
}

var exportCmd = &cobra.Command{
	Use:   "export CHORD...",
	Short: "Writes a chord progression as a midi file",
	Long:  `Writes the chords as a midi file with one bar per chord.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chords := make([]*chord.Chord, 0, len(args))
		for _, arg := range args {
			c, err := chord.Parse(arg)
			if err != nil {
				return err
			}
			chords = append(chords, c)
		}

		chords, err := transpose.UpAll(chords, exportSemitones)
		if err != nil {
			return err
		}

		if err := midi.WriteMidiFile(exportOutput, chords, exportOctave); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %v\n", renderLabel("Wrote "+exportOutput), len(chords))
		return nil
	},
}
