package cmd

import (
	"github.com/jsphweid/transposer/constants"
	"github.com/jsphweid/transposer/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "transposer",
	Short: "Chord name parser and transposer",
	Long: `Parses chord names such as A#m7(b5)/C# and transposes them,
keeping sharps and flats idiomatic.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initEnv)
}

func initEnv() {
	// a missing .env is fine, the environment is used as is
	_ = godotenv.Load()

	if err := logger.Init(constants.GetSentryDSN(), constants.GetEnvironment()); err != nil {
		logger.Warn("Failed to initialize Sentry", logger.Fields{"error": err.Error()})
	}
}

func Execute() {
	err := rootCmd.Execute()
	logger.Flush()
	cobra.CheckErr(err)
}
