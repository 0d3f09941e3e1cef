// Package employee defines the employee record and the date codec shared by
// the catalog, the CSV codec and the interactive console.
package employee

import (
	"errors"
	"strings"
	"time"
)

// ErrEmptyID is returned when an employee is constructed without an identifier.
var ErrEmptyID = errors.New("employee id is required")

// Employee is one person's attribute set. Values are not mutated after
// construction; replacing an employee means building a new value.
type Employee struct {
	ID         string
	Name       string
	BirthDate  time.Time
	Address    string
	Department string
}

// New builds an Employee after trimming the identifier. The birth date is
// normalized to UTC midnight so that values compare by calendar day.
func New(id, name string, birthDate time.Time, address, department string) (Employee, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Employee{}, ErrEmptyID
	}
	return Employee{
		ID:         id,
		Name:       name,
		BirthDate:  dateOnlyUTC(birthDate),
		Address:    address,
		Department: department,
	}, nil
}

// Parse builds an Employee from its textual fields, parsing the birth date
// with ParseDate.
func Parse(id, name, birthDate, address, department string) (Employee, error) {
	dob, err := ParseDate(birthDate)
	if err != nil {
		return Employee{}, err
	}
	return New(id, name, dob, address, department)
}

// BirthYear returns the four-digit year component of the birth date.
func (e Employee) BirthYear() int {
	return e.BirthDate.Year()
}

// Fields returns the employee as text in file column order.
func (e Employee) Fields() [5]string {
	return [5]string{e.ID, e.Name, FormatDate(e.BirthDate), e.Address, e.Department}
}

func dateOnlyUTC(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
