package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// SampleRows is a small well formed employee file body without a header.
var SampleRows = []string{
	"E1,Alice Smith,5/3/1990,1 Main St,Sales",
	"E2,Bob Jones,01/01/1985,22 Side Ave,Engineering",
	"E3,Carol White,15/11/1990,3 High Rd,sales",
	"e4,Dan Brown,2/7/1978,4 Low Ln,HR",
}

// WriteCSV writes lines joined by newlines into dir/name and returns the path.
func WriteCSV(t testing.TB, dir, name string, lines ...string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write fixture %s: %v", path, err)
	}
	return path
}

// ReadLines returns the non-empty lines of the file at path.
func ReadLines(t testing.TB, path string) []string {
	t.Helper()

	data, err := os.ReadFile(path) //nolint:gosec // G304: test fixture path
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
