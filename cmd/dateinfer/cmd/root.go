package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "dateinfer",
	Short: "Infer a strptime-style date/time format from example dates",
	Long: `dateinfer looks at a collection of date strings drawn from the same
source and infers the shared strptime-style format, disambiguating
individually-ambiguous values (day-first vs month-first, 2- vs 4-digit
years) by consensus across the whole collection.

Examples:
  dateinfer infer dates.txt               Infer the format from a file
  cat dates.txt | dateinfer infer -       Infer the format from stdin
  dateinfer batch ./columns               Infer a format per file in a directory`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log pipeline stages to stderr")

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	cobra.OnInitialize(func() {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	})
}
