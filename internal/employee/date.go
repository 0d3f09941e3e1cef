package employee

import (
	"fmt"
	"strings"
	"time"
)

const (
	// InputPattern is the pattern users are asked to type birth dates in.
	InputPattern = "d/M/yyyy"

	// parseLayout accepts one or two digit day and month with a four digit year.
	parseLayout = "2/1/2006"
	// formatLayout always renders two digit day and month.
	formatLayout = "02/01/2006"
)

// FormatError reports text that is not a valid d/M/yyyy date.
type FormatError struct {
	Input string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid date %q: expected %s", e.Input, InputPattern)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// ParseDate parses a day/month/year date. Surrounding whitespace is ignored.
func ParseDate(text string) (time.Time, error) {
	s := strings.TrimSpace(text)
	t, err := time.ParseInLocation(parseLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, &FormatError{Input: text, Err: err}
	}
	return t, nil
}

// FormatDate renders t as dd/MM/yyyy.
func FormatDate(t time.Time) string {
	return t.Format(formatLayout)
}
