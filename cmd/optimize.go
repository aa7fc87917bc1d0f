package cmd

import (
	"fmt"

	"github.com/jsphweid/transposer/transpose"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(optimizeCmd)
}

var optimizeCmd = &cobra.Command{
	Use:   "optimize CHORD...",
	Short: "Simplifies chord spelling",
	Long: `Removes double accidentals and spells the bass note in the same
flat/sharp family as the root.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			res, err := transpose.OptimizeText(arg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderMapping(arg, res.String()))
		}
		return nil
	},
}
