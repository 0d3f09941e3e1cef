package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// LineReader reads one line of user input after showing a prompt. It returns
// io.EOF once the input is exhausted.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// NewLineReader picks readline for terminals and a plain scanner otherwise.
func NewLineReader(in io.Reader, out io.Writer, historyFile string) (LineReader, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) { //nolint:gosec // G115: fd fits in int
		return NewReadlineReader(f, out, historyFile)
	}
	return NewScannerReader(in, out), nil
}

// ReadlineReader reads lines with line editing and history.
type ReadlineReader struct {
	rl *readline.Instance
}

// NewReadlineReader wraps a terminal in a readline instance.
func NewReadlineReader(in io.ReadCloser, out io.Writer, historyFile string) (*ReadlineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Stdin:           in,
		Stdout:          out,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize line editor: %w", err)
	}
	return &ReadlineReader{rl: rl}, nil
}

// ReadLine shows prompt and reads a line. An interrupt yields an empty line.
func (r *ReadlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return line, nil
}

// Close releases the terminal.
func (r *ReadlineReader) Close() error {
	return r.rl.Close()
}

// ScannerReader reads newline delimited input from any reader.
type ScannerReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewScannerReader creates a reader that writes prompts to out.
func NewScannerReader(in io.Reader, out io.Writer) *ScannerReader {
	return &ScannerReader{scanner: bufio.NewScanner(in), out: out}
}

// ReadLine writes prompt and returns the next line without its terminator.
func (r *ScannerReader) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		_, _ = io.WriteString(r.out, prompt)
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSuffix(r.scanner.Text(), "\r"), nil
}

// Close is a no-op.
func (r *ScannerReader) Close() error {
	return nil
}
