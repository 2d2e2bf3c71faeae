package cmd

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// runCLI executes rootCmd with args, capturing everything written to
// os.Stdout. The CLI commands print with fmt.Println/fmt.Printf straight to
// os.Stdout rather than cmd.OutOrStdout(), so stdout has to be swapped at
// the os.File level rather than through cobra's SetOut.
func runCLI(t *testing.T, args ...string) (stdout string, err error) {
	t.Helper()

	oldStdout := os.Stdout
	r, w, pipeErr := os.Pipe()
	require.NoError(t, pipeErr)
	os.Stdout = w

	rootCmd.SetArgs(args)
	err = rootCmd.Execute()

	w.Close()
	os.Stdout = oldStdout

	out, readErr := io.ReadAll(r)
	require.NoError(t, readErr)
	return string(out), err
}

// writeLines writes one entry per line (newline-joined) to dir/name and
// returns the full path.
func writeLines(t *testing.T, dir, name string, lines []string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	var content string
	for _, l := range lines {
		content += l + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
