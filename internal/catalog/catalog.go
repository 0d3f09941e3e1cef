// Package catalog holds the in-memory, ordered employee collection of a
// session. Identifiers are unique under Unicode case folding.
package catalog

import (
	"fmt"
	"slices"

	"golang.org/x/text/cases"

	"github.com/leapstack-labs/roster/internal/employee"
)

// Outcome describes what Add did with a record.
type Outcome int

// Add outcomes.
const (
	Inserted Outcome = iota
	Replaced
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case Replaced:
		return "replaced"
	case Rejected:
		return "rejected"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// DuplicateIdentifierError reports an identifier that is already taken.
type DuplicateIdentifierError struct {
	ID       string
	Existing employee.Employee
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("employee with ID %s already exists", e.ID)
}

// Catalog is an ordered employee collection. It is not safe for concurrent
// use; the console owns the only instance.
type Catalog struct {
	records []employee.Employee
}

// New returns a catalog holding records in the given order.
func New(records ...employee.Employee) *Catalog {
	c := &Catalog{}
	c.Replace(records)
	return c
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// All returns a copy of every record in catalog order.
func (c *Catalog) All() []employee.Employee {
	return slices.Clone(c.records)
}

// Replace discards the current contents and takes a copy of records.
func (c *Catalog) Replace(records []employee.Employee) {
	c.records = make([]employee.Employee, len(records))
	copy(c.records, records)
}

// Lookup returns the record whose identifier matches id case-insensitively.
func (c *Catalog) Lookup(id string) (employee.Employee, bool) {
	i := c.indexOf(id)
	if i < 0 {
		return employee.Employee{}, false
	}
	return c.records[i], true
}

// CheckUnique returns a *DuplicateIdentifierError when id is taken.
func (c *Catalog) CheckUnique(id string) error {
	if existing, ok := c.Lookup(id); ok {
		return &DuplicateIdentifierError{ID: id, Existing: existing}
	}
	return nil
}

// Add appends e. When a record with the same identifier exists, Add leaves
// the catalog untouched and returns Rejected unless overwrite is set, in
// which case the existing record is removed before e is appended.
func (c *Catalog) Add(e employee.Employee, overwrite bool) Outcome {
	i := c.indexOf(e.ID)
	if i < 0 {
		c.records = append(c.records, e)
		return Inserted
	}
	if !overwrite {
		return Rejected
	}
	c.records = slices.Delete(c.records, i, i+1)
	c.records = append(c.records, e)
	return Replaced
}

func (c *Catalog) indexOf(id string) int {
	key := foldID(id)
	return slices.IndexFunc(c.records, func(e employee.Employee) bool {
		return foldID(e.ID) == key
	})
}

func foldID(s string) string {
	return cases.Fold().String(s)
}
