package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/coledrain/go-dateinfer"
	"github.com/coledrain/go-dateinfer/batch"
)

var batchDayFirst bool

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Infer a format per file in a directory, one column per file",
	Long: `Batch treats every regular file directly inside dir as one column of
example dates (the file's base name is the column name) and infers a
format for each column in parallel.

Examples:
  dateinfer batch ./columns
  dateinfer batch --day-first=false ./columns`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatch(args[0])
	},
}

func init() {
	batchCmd.Flags().BoolVar(&batchDayFirst, "day-first", true, "Prefer day-first when a day/month tie can't be broken by votes")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(dir string) error {
	columns, err := readColumns(dir)
	if err != nil {
		return fmt.Errorf("read columns: %w", err)
	}

	cfg := dateinfer.DefaultConfig()
	cfg.DayFirst = batchDayFirst

	logger.Debug().Int("columns", len(columns)).Msg("starting batch inference")

	results := batch.InferBatch(columns, cfg)

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	exitCode := 0
	for _, name := range names {
		res := results[name]
		if res.Err != nil {
			fmt.Printf("%s: error: %v\n", name, res.Err)
			exitCode = 1
			continue
		}
		fmt.Printf("%s: %s (confidence %.3f)\n", name, res.Result.Format, res.Result.Confidence)
	}

	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}

func readColumns(dir string) (map[string][]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	columns := make(map[string][]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		lines, err := readLines(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		columns[entry.Name()] = lines
	}
	return columns, nil
}
