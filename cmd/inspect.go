package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/transposer/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Inspects a midi file",
	Long:  `Prints the keys that start together in a midi file, in time order.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		groups, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}
		for i, keys := range groups {
			parts := make([]string, 0, len(keys))
			for _, k := range keys {
				parts = append(parts, fmt.Sprint(k))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", renderLabel(fmt.Sprintf("%d:", i+1)), strings.Join(parts, " "))
		}
		return nil
	},
}
