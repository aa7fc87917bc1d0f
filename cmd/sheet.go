package cmd

import (
	"errors"
	"fmt"

	"github.com/jsphweid/transposer/note"
	"github.com/jsphweid/transposer/sheet"
	"github.com/jsphweid/transposer/transpose"
	"github.com/spf13/cobra"
)

var (
	sheetSemitones int
	sheetDown      bool
	sheetTo        string
)

func init() {
	rootCmd.AddCommand(sheetCmd)
	sheetCmd.Flags().IntVarP(&sheetSemitones, "semitones", "s", 0, "semitones to transpose by")
	sheetCmd.Flags().BoolVarP(&sheetDown, "down", "d", false, "transpose down instead of up")
	sheetCmd.Flags().StringVar(&sheetTo, "to", "", "move the first chord's root to this note")
}

var sheetCmd = &cobra.Command{
	Use:   "sheet [FILE]",
	Short: "Transposes every chord in a chord sheet",
	Long: `Transposes the chords in a chord sheet and prints it back with the
lyrics untouched. Reads stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		var res string
		if sheetTo != "" {
			res, err = transposeSheetTo(text, sheetTo)
		} else {
			dir := transpose.Upward
			if sheetDown {
				dir = transpose.Downward
			}
			res, err = sheet.Transpose(text, sheetSemitones, dir)
		}
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), res)
		return nil
	},
}

func transposeSheetTo(text string, target string) (string, error) {
	to, err := note.Parse(target)
	if err != nil {
		return "", err
	}
	from, ok := sheet.Key(text)
	if !ok {
		return "", errors.New("sheet has no chords")
	}
	return sheet.TransposeTo(text, from, to)
}
