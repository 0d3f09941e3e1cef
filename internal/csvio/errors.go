package csvio

import "fmt"

// NotFoundError is returned when the source file does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// RowFormatError reports a row that could not be decoded into an employee.
// Line is the 1-based physical line number in the source.
type RowFormatError struct {
	Line   int
	Reason string
	Err    error
}

func (e *RowFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Reason, e.Err)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

func (e *RowFormatError) Unwrap() error {
	return e.Err
}

// WriteError is returned when the destination cannot be created or written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
