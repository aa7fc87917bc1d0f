package cmd

import (
	"fmt"

	"github.com/jsphweid/transposer/transpose"
	"github.com/spf13/cobra"
)

var (
	transposeSemitones int
	transposeDown      bool
)

func init() {
	rootCmd.AddCommand(transposeCmd)
	transposeCmd.Flags().IntVarP(&transposeSemitones, "semitones", "s", 1, "semitones to transpose by")
	transposeCmd.Flags().BoolVarP(&transposeDown, "down", "d", false, "transpose down instead of up")
}

var transposeCmd = &cobra.Command{
	Use:   "transpose CHORD...",
	Short: "Transposes chords",
	Long:  `Transposes each chord by the given number of semitones.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := transpose.Upward
		if transposeDown {
			dir = transpose.Downward
		}
		for _, arg := range args {
			res, err := transpose.ShiftText(arg, transposeSemitones, dir)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderMapping(arg, res.String()))
		}
		return nil
	},
}
