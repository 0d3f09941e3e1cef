package csvio

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/leapstack-labs/roster/internal/employee"
)

// WriteOptions controls the exported file layout.
type WriteOptions struct {
	// Header writes the column labels as the first line.
	Header bool
}

// WriteAll writes records to path, replacing any existing file.
func WriteAll(records []employee.Employee, path string, opts WriteOptions) (err error) {
	f, err := os.Create(path) //nolint:gosec // G304: path is chosen by the user
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &WriteError{Path: path, Err: cerr}
		}
	}()

	rows := make([]row, 0, len(records))
	for _, e := range records {
		rows = append(rows, rowOf(e))
	}

	w := newFieldWriter(f)

	// An empty export is either an empty file or a bare header line.
	if len(rows) == 0 {
		if opts.Header {
			_ = w.Write(Header[:])
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return &WriteError{Path: path, Err: err}
		}
		return nil
	}

	if opts.Header {
		err = gocsv.MarshalCSV(&rows, w)
	} else {
		err = gocsv.MarshalCSVWithoutHeaders(&rows, w)
	}
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// fieldWriter is a gocsv.CSVWriter that quotes a field only when it holds
// the delimiter or a line break. Any other text, quotes included, is written
// as is so the manual reader reads back what was exported.
type fieldWriter struct {
	w   *bufio.Writer
	err error
}

func newFieldWriter(w io.Writer) *fieldWriter {
	return &fieldWriter{w: bufio.NewWriter(w)}
}

func (fw *fieldWriter) Write(rec []string) error {
	if fw.err != nil {
		return fw.err
	}
	var b strings.Builder
	for i, f := range rec {
		if i > 0 {
			b.WriteRune(Delimiter)
		}
		b.WriteString(encodeField(f))
	}
	b.WriteByte('\n')
	_, fw.err = fw.w.WriteString(b.String())
	return fw.err
}

func (fw *fieldWriter) Flush() {
	if err := fw.w.Flush(); err != nil && fw.err == nil {
		fw.err = err
	}
}

func (fw *fieldWriter) Error() error {
	return fw.err
}

func encodeField(f string) string {
	switch {
	case strings.ContainsAny(f, string(Delimiter)+"\r\n"):
		return `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	case strings.HasPrefix(f, `"`):
		// A leading quote would open a quoted field. Readers trim the space.
		return " " + f
	}
	return f
}
