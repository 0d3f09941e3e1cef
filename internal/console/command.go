// Package console runs the interactive employee management session: a
// numbered menu read from a line oriented input stream, dispatching to the
// import, add, filter and export actions.
package console

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is a main menu choice.
type Command int

// Main menu commands.
const (
	Exit Command = iota
	Import
	Add
	Filter
	Export
)

func (c Command) String() string {
	switch c {
	case Exit:
		return "exit"
	case Import:
		return "import"
	case Add:
		return "add"
	case Filter:
		return "filter"
	case Export:
		return "export"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// InputError reports a menu choice that is not an integer.
type InputError struct {
	Input string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input %q: not a number", e.Input)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// parseChoice reads a trimmed integer menu choice.
func parseChoice(line string) (int, error) {
	s := strings.TrimSpace(line)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &InputError{Input: s, Err: err}
	}
	return n, nil
}

// ParseCommand parses a main menu line. Any integer is accepted; whether it
// names a known command is decided by the dispatch table.
func ParseCommand(line string) (Command, error) {
	n, err := parseChoice(line)
	if err != nil {
		return 0, err
	}
	return Command(n), nil
}
