package catalog

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/leapstack-labs/roster/internal/employee"
)

// FilterKind selects the predicate applied by Filter.
type FilterKind int

// Filter kinds. ByName and ByID match substrings case-sensitively,
// ByBirthYear compares the year, ByDepartment matches the whole department
// ignoring case.
const (
	ByName FilterKind = iota + 1
	ByID
	ByBirthYear
	ByDepartment
	All
)

func (k FilterKind) String() string {
	switch k {
	case ByName:
		return "name"
	case ByID:
		return "id"
	case ByBirthYear:
		return "birth-year"
	case ByDepartment:
		return "department"
	case All:
		return "all"
	default:
		return fmt.Sprintf("FilterKind(%d)", int(k))
	}
}

// NeedsParameter reports whether the kind takes a parameter.
func (k FilterKind) NeedsParameter() bool {
	return k != All
}

// Filter is a predicate over employees.
type Filter struct {
	Kind FilterKind
	Text string
	Year int
}

// NameContains matches names containing s.
func NameContains(s string) Filter { return Filter{Kind: ByName, Text: s} }

// IDContains matches identifiers containing s.
func IDContains(s string) Filter { return Filter{Kind: ByID, Text: s} }

// BornIn matches employees born in year.
func BornIn(year int) Filter { return Filter{Kind: ByBirthYear, Year: year} }

// InDepartment matches the department ignoring case.
func InDepartment(s string) Filter { return Filter{Kind: ByDepartment, Text: s} }

// Everyone matches every employee.
func Everyone() Filter { return Filter{Kind: All} }

// InvalidYearError is returned by ParseFilter when a year is not a number.
type InvalidYearError struct {
	Input string
	Err   error
}

func (e *InvalidYearError) Error() string {
	return fmt.Sprintf("invalid year %q: not a number", e.Input)
}

func (e *InvalidYearError) Unwrap() error {
	return e.Err
}

// ParseFilter builds a filter of the given kind from user input. Text
// parameters are used verbatim; the year is trimmed and parsed as an integer.
func ParseFilter(kind FilterKind, parameter string) (Filter, error) {
	switch kind {
	case ByName:
		return NameContains(parameter), nil
	case ByID:
		return IDContains(parameter), nil
	case ByBirthYear:
		s := strings.TrimSpace(parameter)
		year, err := strconv.Atoi(s)
		if err != nil {
			return Filter{}, &InvalidYearError{Input: s, Err: err}
		}
		return BornIn(year), nil
	case ByDepartment:
		return InDepartment(parameter), nil
	case All:
		return Everyone(), nil
	default:
		return Filter{}, fmt.Errorf("unknown filter kind %d", int(kind))
	}
}

// Match reports whether e satisfies the filter.
func (f Filter) Match(e employee.Employee) bool {
	switch f.Kind {
	case ByName:
		return strings.Contains(e.Name, f.Text)
	case ByID:
		return strings.Contains(e.ID, f.Text)
	case ByBirthYear:
		return e.BirthYear() == f.Year
	case ByDepartment:
		return foldID(e.Department) == foldID(f.Text)
	case All:
		return true
	default:
		return false
	}
}

// Filter returns the matching records in catalog order. It never returns nil.
func (c *Catalog) Filter(f Filter) []employee.Employee {
	out := []employee.Employee{}
	for _, e := range c.records {
		if f.Match(e) {
			out = append(out, e)
		}
	}
	return out
}

// SortByBirthDate returns a copy of records ordered by birth date, oldest
// first. Employees born on the same day keep their relative order.
func SortByBirthDate(records []employee.Employee) []employee.Employee {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b employee.Employee) int {
		return a.BirthDate.Compare(b.BirthDate)
	})
	return out
}
