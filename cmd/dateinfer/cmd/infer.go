package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/coledrain/go-dateinfer"
)

var (
	inferDayFirst      bool
	inferMinConfidence float64
	inferStrict        bool
	inferFormatOnly    bool
)

var inferCmd = &cobra.Command{
	Use:   "infer <file|->",
	Short: "Infer a format string from one column of example dates",
	Long: `Infer reads one date string per line from a file (or "-" for stdin) and
prints the inferred strptime-style format, its confidence, and the
resolved role of every token.

Examples:
  dateinfer infer dates.txt
  cat dates.txt | dateinfer infer -
  dateinfer infer --day-first=false --strict dates.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInfer(args[0])
	},
}

func init() {
	inferCmd.Flags().BoolVar(&inferDayFirst, "day-first", true, "Prefer day-first when a day/month tie can't be broken by votes")
	inferCmd.Flags().Float64Var(&inferMinConfidence, "min-confidence", 0, "Fail if the resolved format's confidence is below this")
	inferCmd.Flags().BoolVar(&inferStrict, "strict", false, "Re-validate every input against the resolved format")
	inferCmd.Flags().BoolVar(&inferFormatOnly, "format-only", false, "Print only the format string")
	rootCmd.AddCommand(inferCmd)
}

func runInfer(path string) error {
	dates, err := readLines(path)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	cfg := dateinfer.Config{
		DayFirst:      inferDayFirst,
		MinConfidence: inferMinConfidence,
		Strict:        inferStrict,
	}

	logger.Debug().Int("lines", len(dates)).Bool("day_first", cfg.DayFirst).Msg("starting inference")

	result, err := dateinfer.Infer(dates, cfg)
	if err != nil {
		logger.Debug().Err(err).Msg("inference failed")
		return err
	}

	logger.Debug().Str("format", result.Format).Float64("confidence", result.Confidence).Msg("inference resolved")

	if inferFormatOnly {
		fmt.Println(result.Format)
		return nil
	}

	fmt.Printf("format:     %s\n", result.Format)
	fmt.Printf("confidence: %.3f\n", result.Confidence)
	fmt.Printf("describe:   %s\n", dateinfer.Describe(result.Format))
	fmt.Printf("tokens:     %v\n", result.TokenTypes)
	return nil
}

// readLines reads one entry per line from path, or from stdin when path is
// "-". Lines are split on newlines only; trailing spaces and blank lines are
// preserved verbatim since they may be meaningful sentinels (spec.md §4.3).
func readLines(path string) ([]string, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
