package cmd

import (
	"fmt"

	"github.com/jsphweid/transposer/note"
	"github.com/jsphweid/transposer/transpose"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(semitonesCmd)
}

var semitonesCmd = &cobra.Command{
	Use:   "semitones FROM TO",
	Short: "Counts the semitones up from one note to another",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := note.Parse(args[0])
		if err != nil {
			return err
		}
		to, err := note.Parse(args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), transpose.Semitones(from, to))
		return nil
	},
}
