package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/transposer/transpose"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(extractCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract [FILE]",
	Short: "Lists the chords found in a text",
	Long:  `Lists the chords found in FILE, or in stdin when no file is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		for _, c := range transpose.ExtractChords(text) {
			fmt.Fprintln(cmd.OutOrStdout(), renderChord(c.String()))
		}
		return nil
	},
}

// readInput reads the file named by the first arg, or stdin for none or "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("could not read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("could not read file: %w", err)
	}
	return string(data), nil
}
