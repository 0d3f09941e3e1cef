package csvio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/leapstack-labs/roster/internal/employee"
)

// maxLineSize bounds a single line for the manual reader.
const maxLineSize = 1 << 20

// ManualReader splits every line on the delimiter without any quoting rules.
type ManualReader struct{}

// Name returns the strategy name.
func (ManualReader) Name() string { return StrategyManual }

// Read decodes rows line by line.
func (ManualReader) Read(r io.Reader) ([]employee.Employee, error) {
	scanner := bufio.NewScanner(decodeText(r))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	records := []employee.Employee{}
	lineNo := 0
	first := true
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		fields := trimFields(strings.Split(line, string(Delimiter)))
		if first {
			first = false
			if isHeader(fields) {
				continue
			}
		}

		e, err := decodeRow(lineNo, fields)
		if err != nil {
			return nil, err
		}
		records = append(records, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return records, nil
}
