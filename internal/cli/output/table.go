package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leapstack-labs/roster/internal/employee"
)

// Column labels of the employee table, in file order.
var Columns = [5]string{"ID", "Name", "Date of Birth", "Address", "Department"}

const columnSeparator = " | "

// tabSpaces replaces tabs in cells, matching lipgloss's default tab width.
const tabSpaces = "    "

// Table is a rendered plain employee table without styling.
type Table struct {
	Header string
	Rule   string
	Rows   []string
}

// PlainTable lays out records in five left-aligned columns. Each column is
// as wide as its widest cell or label; the rule is as wide as the header.
func PlainTable(records []employee.Employee) Table {
	cells := make([][5]string, len(records))
	widths := [5]int{}
	for i, label := range Columns {
		widths[i] = lipgloss.Width(label)
	}
	for r, e := range records {
		for i, c := range e.Fields() {
			c = strings.ReplaceAll(c, "\t", tabSpaces)
			cells[r][i] = c
			widths[i] = max(widths[i], lipgloss.Width(c))
		}
	}

	header := formatRow(Columns, widths)
	t := Table{
		Header: header,
		Rule:   strings.Repeat("-", lipgloss.Width(header)),
		Rows:   make([]string, len(cells)),
	}
	for i, c := range cells {
		t.Rows[i] = formatRow(c, widths)
	}
	return t
}

func formatRow(cells [5]string, widths [5]int) string {
	var b strings.Builder
	for i, c := range cells {
		if i > 0 {
			b.WriteString(columnSeparator)
		}
		b.WriteString(c)
		b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(c)))
	}
	return b.String()
}

// BoxTable draws records with go-pretty's light box style.
func BoxTable(records []employee.Employee) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{Columns[0], Columns[1], Columns[2], Columns[3], Columns[4]})
	for _, e := range records {
		f := e.Fields()
		t.AppendRow(table.Row{f[0], f[1], f[2], f[3], f[4]})
	}
	return t.Render()
}
