// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/roster/internal/cli/output"
)

// TestRenderer wraps a Renderer for testing with a captured output buffer.
type TestRenderer struct {
	*output.Renderer
	Out *bytes.Buffer
}

// NewTestRenderer creates a test renderer with the given options.
func NewTestRenderer(opts output.Options) *TestRenderer {
	out := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRenderer(out, opts),
		Out:      out,
	}
}

// NewTestRendererPlain creates a test renderer without colors.
func NewTestRendererPlain() *TestRenderer {
	return NewTestRenderer(output.Options{Color: output.ColorNever})
}

// Output returns the captured output as a string.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// Reset clears the output buffer.
func (tr *TestRenderer) Reset() {
	tr.Out.Reset()
}

// Result is the captured outcome of a command execution.
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// ExecuteCommand runs cmd with args, feeding stdin and capturing both
// output streams.
func ExecuteCommand(t *testing.T, cmd *cobra.Command, stdin string, args ...string) Result {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return Result{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// AssertHasANSI checks that a string contains at least one ANSI escape code.
func AssertHasANSI(t *testing.T, s string) {
	t.Helper()
	if !ansiPattern.MatchString(s) {
		t.Errorf("string contains no ANSI escape codes: %q", s)
	}
}
