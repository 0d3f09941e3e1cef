// Package csvio reads and writes employee CSV files.
//
// Files hold one employee per line with five comma separated fields in a
// fixed order: ID, Name, Date of Birth, Address, Department. Dates use the
// dd/MM/yyyy form on output and accept d/M/yyyy on input. An optional header
// line carrying the column labels is recognized and skipped by every reader.
//
// Two readers implement TabularReader: ManualReader splits lines by hand and
// LibraryReader tokenizes with encoding/csv and maps rows with gocsv. For
// unquoted input they produce identical results.
package csvio

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/leapstack-labs/roster/internal/employee"
)

// Delimiter separates fields on a line.
const Delimiter = ','

// FieldCount is the number of fields every row must have.
const FieldCount = 5

// Header holds the canonical column labels in file order.
var Header = [FieldCount]string{"ID", "Name", "Date of Birth", "Address", "Department"}

// TabularReader decodes a CSV source into employees.
type TabularReader interface {
	// Name identifies the strategy in prompts and logs.
	Name() string
	// Read decodes every row from r. The first malformed row aborts the read
	// with a *RowFormatError.
	Read(r io.Reader) ([]employee.Employee, error)
}

// ReadAll opens path and decodes it with reader.
func ReadAll(path string, reader TabularReader) ([]employee.Employee, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path is chosen by the user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	records, err := reader.Read(f)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// decodeText drops a leading byte order mark. UTF-16 input with a BOM, as
// some spreadsheet exports produce, is decoded to UTF-8.
func decodeText(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

// foldKey case-folds s for case-insensitive comparison.
func foldKey(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// isHeader reports whether fields are the canonical column labels.
func isHeader(fields []string) bool {
	if len(fields) != FieldCount {
		return false
	}
	for i, f := range fields {
		if foldKey(f) != foldKey(Header[i]) {
			return false
		}
	}
	return true
}

// decodeRow turns trimmed fields into an employee. line is only used for
// error reporting.
func decodeRow(line int, fields []string) (employee.Employee, error) {
	if len(fields) != FieldCount {
		return employee.Employee{}, &RowFormatError{
			Line:   line,
			Reason: fmt.Sprintf("expected %d fields, got %d", FieldCount, len(fields)),
		}
	}
	e, err := employee.Parse(fields[0], fields[1], fields[2], fields[3], fields[4])
	if err != nil {
		var fe *employee.FormatError
		if errors.As(err, &fe) {
			return employee.Employee{}, &RowFormatError{Line: line, Reason: "invalid date of birth", Err: err}
		}
		return employee.Employee{}, &RowFormatError{Line: line, Reason: "invalid employee", Err: err}
	}
	return e, nil
}

func trimFields(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.TrimSpace(f)
	}
	return out
}

// Strategy names accepted by NewReader.
const (
	StrategyManual  = "manual"
	StrategyLibrary = "library"
)

// NewReader returns the reader for a strategy name. Unknown names fall back
// to the manual reader; ok reports whether the name was recognized.
func NewReader(strategy string) (reader TabularReader, ok bool) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case StrategyManual:
		return ManualReader{}, true
	case StrategyLibrary:
		return LibraryReader{}, true
	default:
		return ManualReader{}, false
	}
}
