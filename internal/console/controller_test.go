package console

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/roster/internal/catalog"
	"github.com/leapstack-labs/roster/internal/cli/output"
	"github.com/leapstack-labs/roster/internal/employee"
	"github.com/leapstack-labs/roster/internal/testutil"
)

type session struct {
	ctrl *Controller
	out  *bytes.Buffer
}

// runSession feeds lines to a new controller and runs it to completion.
func runSession(t *testing.T, cat *catalog.Catalog, exportHeader bool, lines ...string) session {
	t.Helper()

	out := &bytes.Buffer{}
	input := strings.Join(lines, "\n") + "\n"
	ctrl := New(Options{
		Input:        NewScannerReader(strings.NewReader(input), out),
		Renderer:     output.NewRenderer(out, output.Options{Color: output.ColorNever}),
		Logger:       testutil.NewTestLogger(t),
		Catalog:      cat,
		ExportHeader: exportHeader,
	})
	require.NoError(t, ctrl.Run(context.Background()))
	return session{ctrl: ctrl, out: out}
}

func sampleCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	var records []employee.Employee
	for _, line := range testutil.SampleRows {
		f := strings.Split(line, ",")
		e, err := employee.Parse(f[0], f[1], f[2], f[3], f[4])
		require.NoError(t, err)
		records = append(records, e)
	}
	return catalog.New(records...)
}

func twoEmployees(t *testing.T) *catalog.Catalog {
	t.Helper()
	e1, err := employee.Parse("E1", "Alice", "5/3/1990", "1 Main St", "Sales")
	require.NoError(t, err)
	e2, err := employee.Parse("E2", "Bob", "1/1/1985", "2 Side St", "IT")
	require.NoError(t, err)
	return catalog.New(e1, e2)
}

func assertInOrder(t *testing.T, text string, parts ...string) {
	t.Helper()
	last := -1
	for _, p := range parts {
		idx := strings.Index(text, p)
		require.GreaterOrEqual(t, idx, 0, "missing %q", p)
		assert.Greater(t, idx, last, "%q out of order", p)
		last = idx
	}
}

func TestRun_ExitAndEndOfInput(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{name: "exit command", lines: []string{"0"}},
		{name: "end of input", lines: nil},
		{name: "exit with spaces", lines: []string{"  0 "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := runSession(t, nil, false, tt.lines...)

			out := s.out.String()
			assert.Contains(t, out, "Welcome to the Employee Management System")
			assert.Contains(t, out, "Menu:\n0 - Exit\n1 - Select File, Import data")
			assert.Contains(t, out, "Exiting...")
		})
	}
}

func TestRun_InvalidMenuInput(t *testing.T) {
	s := runSession(t, nil, false, "abc", "9", "-1", "", "0")

	out := s.out.String()
	assert.Equal(t, 2, strings.Count(out, "Invalid input. Please enter a number."))
	assert.Equal(t, 2, strings.Count(out, "Invalid choice. Please try again."))
	assert.Equal(t, 5, strings.Count(out, "Menu:"))
}

func TestRun_Import(t *testing.T) {
	for _, choice := range []string{"1", "2"} {
		t.Run("strategy "+choice, func(t *testing.T) {
			path := testutil.WriteCSV(t, t.TempDir(), "employees.csv", testutil.SampleRows...)

			s := runSession(t, nil, false, "1", choice, path, "0")

			out := s.out.String()
			assert.Contains(t, out, "Data imported successfully, here is all the imported data from CSV file.")
			assert.Contains(t, out, "Showing 4 employee(s) data...")
			assertInOrder(t, out, "Dan Brown", "Bob Jones", "Alice Smith", "Carol White")
			assert.NotContains(t, out, "Defaulting")

			all := s.ctrl.Catalog().All()
			require.Len(t, all, 4)
			assert.Equal(t, "E1", all[0].ID, "catalog keeps file order")
		})
	}
}

func TestRun_ImportStrategyFallback(t *testing.T) {
	tests := []struct {
		choice  string
		warning string
	}{
		{choice: "7", warning: "Invalid choice. Defaulting to manual reading."},
		{choice: "x", warning: "Invalid input. Defaulting to manual reading."},
	}

	for _, tt := range tests {
		t.Run(tt.choice, func(t *testing.T) {
			path := testutil.WriteCSV(t, t.TempDir(), "employees.csv", testutil.SampleRows...)

			s := runSession(t, nil, false, "1", tt.choice, path, "0")

			assert.Contains(t, s.out.String(), tt.warning)
			assert.Equal(t, 4, s.ctrl.Catalog().Len())
		})
	}
}

func TestRun_ImportFailureKeepsCatalog(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.csv")
	short := testutil.WriteCSV(t, dir, "short.csv",
		"E5,Eve,1/1/1999,5 Elm St,Ops",
		"E6,Frank,2/2/1998,6 Oak St",
	)

	tests := []struct {
		name    string
		choice  string
		path    string
		message string
	}{
		{name: "missing file", choice: "1", path: missing, message: "file not found: " + missing},
		{name: "short row manual", choice: "1", path: short, message: "line 2: expected 5 fields, got 4"},
		{name: "short row library", choice: "2", path: short, message: "line 2: expected 5 fields, got 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := twoEmployees(t)
			before := cat.All()

			s := runSession(t, cat, false, "1", tt.choice, tt.path, "0")

			assert.Contains(t, s.out.String(), tt.message)
			assert.NotContains(t, s.out.String(), "Data imported successfully")
			assert.Equal(t, before, s.ctrl.Catalog().All())
		})
	}
}

func TestRun_AddEmployee(t *testing.T) {
	s := runSession(t, nil, false, "2", " E9 ", " Zed ", "1/2/2000", "9 Far Rd", "Ops", "0")

	assert.Contains(t, s.out.String(), "Employee added successfully.")
	got, ok := s.ctrl.Catalog().Lookup("E9")
	require.True(t, ok)
	assert.Equal(t, "E9", got.ID)
	assert.Equal(t, "Zed", got.Name)
	assert.Equal(t, time.Date(2000, time.February, 1, 0, 0, 0, 0, time.UTC), got.BirthDate)
	assert.Equal(t, "Ops", got.Department)
}

func TestRun_AddDuplicate(t *testing.T) {
	t.Run("declined", func(t *testing.T) {
		cat := twoEmployees(t)
		before := cat.All()

		s := runSession(t, cat, false, "2", "e1", "no", "0")

		out := s.out.String()
		assert.Contains(t, out, "Employee with ID e1 already exists.")
		assert.Contains(t, out, "Do you want to overwrite? (yes/no): ")
		assert.Contains(t, out, "Addition cancelled.")
		assert.NotContains(t, out, "Enter Name: ")
		assert.Equal(t, before, s.ctrl.Catalog().All())
	})

	t.Run("answer must be yes", func(t *testing.T) {
		cat := twoEmployees(t)

		s := runSession(t, cat, false, "2", "E1", "y", "0")

		assert.Contains(t, s.out.String(), "Addition cancelled.")
		assert.Equal(t, 2, s.ctrl.Catalog().Len())
	})

	t.Run("overwritten", func(t *testing.T) {
		cat := twoEmployees(t)

		s := runSession(t, cat, false, "2", "e1", " YES ", "New Name", "2/2/2002", "A", "D", "0")

		assert.Contains(t, s.out.String(), "Employee added successfully.")
		all := s.ctrl.Catalog().All()
		require.Len(t, all, 2)
		assert.Equal(t, "E2", all[0].ID)
		assert.Equal(t, "e1", all[1].ID)
		assert.Equal(t, "New Name", all[1].Name)
	})

	t.Run("invalid date keeps existing record", func(t *testing.T) {
		cat := twoEmployees(t)
		before := cat.All()

		s := runSession(t, cat, false, "2", "E1", "yes", "X", "31/2/2020", "A", "D", "0")

		assert.Contains(t, s.out.String(), "Invalid date format. Please use the format d/M/yyyy.")
		assert.Equal(t, before, s.ctrl.Catalog().All())
	})
}

func TestRun_AddInvalid(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		message string
	}{
		{
			name:    "bad date",
			lines:   []string{"2", "E9", "Zed", "2000-02-01", "A", "D", "0"},
			message: "Invalid date format. Please use the format d/M/yyyy.",
		},
		{
			name:    "empty id",
			lines:   []string{"2", "   ", "Zed", "1/2/2000", "A", "D", "0"},
			message: "An error occurred while adding the employee. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := runSession(t, nil, false, tt.lines...)

			assert.Contains(t, s.out.String(), tt.message)
			assert.NotContains(t, s.out.String(), "Employee added successfully.")
			assert.Equal(t, 0, s.ctrl.Catalog().Len())
		})
	}
}

func TestRun_Filter(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		contains []string
		excludes []string
	}{
		{
			name:     "by year",
			lines:    []string{"3", "3", "1990", "0"},
			contains: []string{"Showing 2 employee(s) data...", "Alice Smith", "Carol White"},
			excludes: []string{"Bob Jones", "Dan Brown"},
		},
		{
			name:     "by department ignores case",
			lines:    []string{"3", "4", "SALES", "0"},
			contains: []string{"Showing 2 employee(s) data...", "Alice Smith", "Carol White"},
			excludes: []string{"Bob Jones"},
		},
		{
			name:     "by name is case sensitive",
			lines:    []string{"3", "1", "Jones", "0"},
			contains: []string{"Showing 1 employee(s) data...", "Bob Jones"},
		},
		{
			name:     "by id substring",
			lines:    []string{"3", "2", "E", "0"},
			contains: []string{"Showing 3 employee(s) data..."},
			excludes: []string{"Dan Brown"},
		},
		{
			name:     "all sorted by birth date",
			lines:    []string{"3", "5", "0"},
			contains: []string{"Showing 4 employee(s) data..."},
		},
		{
			name:     "no match",
			lines:    []string{"3", "1", "jones", "0"},
			contains: []string{"No employees found."},
			excludes: []string{"Showing"},
		},
		{
			name:     "unknown kind",
			lines:    []string{"3", "9", "0"},
			contains: []string{"Invalid choice. Returning to menu.", "No employees found."},
		},
		{
			name:     "non numeric kind",
			lines:    []string{"3", "name", "0"},
			contains: []string{"Invalid input. Please enter a number.", "No employees found."},
		},
		{
			name:     "non numeric year",
			lines:    []string{"3", "3", "nineteen", "0"},
			contains: []string{"Invalid input. Please enter a number.", "No employees found."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := runSession(t, sampleCatalog(t), false, tt.lines...)

			out := s.out.String()
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestRun_FilterOrder(t *testing.T) {
	s := runSession(t, sampleCatalog(t), false, "3", "5", "0")

	assertInOrder(t, s.out.String(), "Dan Brown", "Bob Jones", "Alice Smith", "Carol White")
}

func TestRun_FilterByYearScenario(t *testing.T) {
	s := runSession(t, twoEmployees(t), false, "3", "3", "1990", "0")

	out := s.out.String()
	assert.Contains(t, out, "Showing 1 employee(s) data...")
	assert.Contains(t, out, "E1 | Alice")
	assert.NotContains(t, out, "Bob")
}

func TestRun_Export(t *testing.T) {
	t.Run("all without header", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.csv")

		s := runSession(t, sampleCatalog(t), false, "4", "5", path, "0")

		assert.Contains(t, s.out.String(), "Filtered data exported successfully.")
		assert.Equal(t, []string{
			"e4,Dan Brown,02/07/1978,4 Low Ln,HR",
			"E2,Bob Jones,01/01/1985,22 Side Ave,Engineering",
			"E1,Alice Smith,05/03/1990,1 Main St,Sales",
			"E3,Carol White,15/11/1990,3 High Rd,sales",
		}, testutil.ReadLines(t, path))
	})

	t.Run("filtered with header", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.csv")

		runSession(t, sampleCatalog(t), true, "4", "3", "1990", path, "0")

		assert.Equal(t, []string{
			"ID,Name,Date of Birth,Address,Department",
			"E1,Alice Smith,05/03/1990,1 Main St,Sales",
			"E3,Carol White,15/11/1990,3 High Rd,sales",
		}, testutil.ReadLines(t, path))
	})

	t.Run("empty result still writes file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.csv")

		s := runSession(t, sampleCatalog(t), false, "4", "1", "Nobody", path, "0")

		assert.Contains(t, s.out.String(), "Filtered data exported successfully.")
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Zero(t, info.Size())
	})

	t.Run("unwritable destination", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing-dir", "out.csv")

		s := runSession(t, sampleCatalog(t), false, "4", "5", path, "0")

		assert.Contains(t, s.out.String(), "failed to write "+path)
		assert.NotContains(t, s.out.String(), "Filtered data exported successfully.")
	})
}

func TestRun_ImportAddExportSession(t *testing.T) {
	dir := t.TempDir()
	in := testutil.WriteCSV(t, dir, "in.csv", testutil.SampleRows[:2]...)
	out := filepath.Join(dir, "out.csv")

	s := runSession(t, nil, false,
		"1", "2", in,
		"2", "E7", "Gale", "9/9/1970", "7 Bay Rd", "Ops",
		"4", "5", out,
		"0",
	)

	assert.Equal(t, 3, s.ctrl.Catalog().Len())
	assert.Equal(t, []string{
		"E7,Gale,09/09/1970,7 Bay Rd,Ops",
		"E2,Bob Jones,01/01/1985,22 Side Ave,Engineering",
		"E1,Alice Smith,05/03/1990,1 Main St,Sales",
	}, testutil.ReadLines(t, out))
}

func TestRun_ExportThenReimportQuotedName(t *testing.T) {
	for _, strategy := range []string{"1", "2"} {
		t.Run(strategy, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "out.csv")

			first := runSession(t, nil, false,
				"2", "E1", `Robert "Bob" Smith`, "5/3/1990", `"Main" St`, "Sales",
				"4", "5", out,
				"0",
			)
			second := runSession(t, nil, false, "1", strategy, out, "0")

			assert.Contains(t, second.out.String(), "Data imported successfully")
			assert.Equal(t, first.ctrl.Catalog().All(), second.ctrl.Catalog().All())
		})
	}
}

func TestRun_EndOfInputMidDialog(t *testing.T) {
	cat := twoEmployees(t)
	before := cat.All()

	s := runSession(t, cat, false, "2", "E1", "yes", "Name")

	assert.Contains(t, s.out.String(), "Exiting...")
	assert.Equal(t, before, s.ctrl.Catalog().All())
}

func TestRun_Logging(t *testing.T) {
	path := testutil.WriteCSV(t, t.TempDir(), "employees.csv", testutil.SampleRows...)
	logger, logs := testutil.NewBufferLogger()
	out := &bytes.Buffer{}

	ctrl := New(Options{
		Input:    NewScannerReader(strings.NewReader("1\n2\n"+path+"\n0\n"), out),
		Renderer: output.NewRenderer(out, output.Options{Color: output.ColorNever}),
		Logger:   logger,
	})
	require.NoError(t, ctrl.Run(context.Background()))

	assert.Contains(t, logs.String(), "dispatching command")
	assert.Contains(t, logs.String(), "imported employees")
	assert.Contains(t, logs.String(), "strategy=library")
	assert.Contains(t, logs.String(), "count=4")
	assert.NotContains(t, out.String(), "imported employees")
}

type failingReader struct {
	err error
}

func (f failingReader) ReadLine(string) (string, error) { return "", f.err }
func (f failingReader) Close() error                   { return nil }

func TestRun_InputFailure(t *testing.T) {
	boom := errors.New("device gone")
	ctrl := New(Options{
		Input:    failingReader{err: boom},
		Renderer: output.NewRenderer(&bytes.Buffer{}, output.Options{Color: output.ColorNever}),
	})

	err := ctrl.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestRun_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ctrl := New(Options{
		Input:    NewScannerReader(strings.NewReader("0\n"), &bytes.Buffer{}),
		Renderer: output.NewRenderer(&bytes.Buffer{}, output.Options{Color: output.ColorNever}),
	})

	assert.ErrorIs(t, ctrl.Run(ctx), context.Canceled)
}
