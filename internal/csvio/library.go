package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/leapstack-labs/roster/internal/employee"
)

// row is the gocsv mapping of one file line. Field order matches the file.
type row struct {
	ID         string `csv:"ID"`
	Name       string `csv:"Name"`
	BirthDate  string `csv:"Date of Birth"`
	Address    string `csv:"Address"`
	Department string `csv:"Department"`
}

func rowOf(e employee.Employee) row {
	f := e.Fields()
	return row{ID: f[0], Name: f[1], BirthDate: f[2], Address: f[3], Department: f[4]}
}

// LibraryReader tokenizes with encoding/csv, so quoted fields may contain
// the delimiter, and maps the records onto row values with gocsv.
type LibraryReader struct{}

// Name returns the strategy name.
func (LibraryReader) Name() string { return StrategyLibrary }

// Read decodes all rows of r.
func (LibraryReader) Read(r io.Reader) ([]employee.Employee, error) {
	src, err := collectRows(decodeText(r))
	if err != nil {
		return nil, err
	}
	records := make([]employee.Employee, 0, len(src.rows))
	if len(src.rows) > 0 {
		var rows []row
		if err := gocsv.UnmarshalCSVWithoutHeaders(src, &rows); err != nil {
			return nil, fmt.Errorf("failed to map rows: %w", err)
		}
		for i, rw := range rows {
			e, err := decodeRow(src.lines[i], []string{rw.ID, rw.Name, rw.BirthDate, rw.Address, rw.Department})
			if err != nil {
				return nil, err
			}
			records = append(records, e)
		}
	}
	if src.err != nil {
		return nil, src.err
	}
	return records, nil
}

// rowSet is an in-memory gocsv.CSVReader over records with the right field
// count. lines[i] is the source line of rows[i]. err holds the first record
// with a wrong field count; rows only covers the records before it.
type rowSet struct {
	rows  [][]string
	lines []int
	next  int
	err   error
}

func (s *rowSet) Read() ([]string, error) {
	if s.next >= len(s.rows) {
		return nil, io.EOF
	}
	rec := s.rows[s.next]
	s.next++
	return rec, nil
}

func (s *rowSet) ReadAll() ([][]string, error) {
	rest := s.rows[s.next:]
	s.next = len(s.rows)
	return rest, nil
}

// collectRows tokenizes r up to the first malformed record, skipping a
// leading header, and remembers the physical line of every record.
func collectRows(r io.Reader) (*rowSet, error) {
	cr := csv.NewReader(r)
	cr.Comma = Delimiter
	cr.FieldsPerRecord = -1
	// A quote inside an unquoted field is text, as it is for the manual reader.
	cr.LazyQuotes = true

	set := &rowSet{}
	first := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				set.err = &RowFormatError{Line: pe.StartLine, Reason: "malformed row", Err: pe.Err}
				return set, nil
			}
			return nil, fmt.Errorf("failed to read rows: %w", err)
		}

		line, _ := cr.FieldPos(0)
		fields := trimFields(rec)
		if first {
			first = false
			if isHeader(fields) {
				continue
			}
		}
		if len(fields) != FieldCount {
			set.err = &RowFormatError{
				Line:   line,
				Reason: fmt.Sprintf("expected %d fields, got %d", FieldCount, len(fields)),
			}
			return set, nil
		}
		set.rows = append(set.rows, fields)
		set.lines = append(set.lines, line)
	}
	return set, nil
}
