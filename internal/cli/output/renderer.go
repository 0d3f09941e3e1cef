// Package output renders console text for roster: styled status messages,
// menus and the employee table.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/leapstack-labs/roster/internal/employee"
)

// ColorMode controls ANSI styling.
type ColorMode string

// Color modes.
const (
	ColorAuto   ColorMode = "auto"   // style only when the writer is a color capable terminal
	ColorAlways ColorMode = "always" // always emit ANSI colors
	ColorNever  ColorMode = "never"  // plain text
)

// TableStyle selects how employee tables are drawn.
type TableStyle string

// Table styles.
const (
	TablePlain TableStyle = "plain" // padded columns separated by " | "
	TableBox   TableStyle = "box"   // go-pretty light box drawing
)

// Options configures a Renderer.
type Options struct {
	Color ColorMode
	Table TableStyle
}

// Renderer writes styled console output.
type Renderer struct {
	w      io.Writer
	styles Styles
	table  TableStyle
}

// NewRenderer creates a renderer writing to w.
func NewRenderer(w io.Writer, opts Options) *Renderer {
	lr := lipgloss.NewRenderer(w)
	switch opts.Color {
	case ColorNever:
		lr.SetColorProfile(termenv.Ascii)
	case ColorAlways:
		lr.SetColorProfile(termenv.ANSI)
	}

	table := opts.Table
	if table == "" {
		table = TablePlain
	}

	return &Renderer{
		w:      w,
		styles: newStyles(lr),
		table:  table,
	}
}

// Styles returns the renderer's styles.
func (r *Renderer) Styles() *Styles {
	return &r.styles
}

// Println writes a line.
func (r *Renderer) Println(s string) {
	_, _ = fmt.Fprintln(r.w, s)
}

// Printf writes formatted text.
func (r *Renderer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.w, format, args...)
}

// PromptText returns label styled as a prompt, ready to be shown before
// reading a line.
func (r *Renderer) PromptText(label string) string {
	return r.styles.Prompt.Render(label)
}

// Success writes a success message.
func (r *Renderer) Success(msg string) {
	r.Println(r.styles.Success.Render(msg))
}

// Warning writes a warning message.
func (r *Renderer) Warning(msg string) {
	r.Println(r.styles.Warning.Render(msg))
}

// Error writes an error message.
func (r *Renderer) Error(msg string) {
	r.Println(r.styles.Error.Render(msg))
}

// Info writes an informational message.
func (r *Renderer) Info(msg string) {
	r.Println(r.styles.Info.Render(msg))
}

// Rule writes a horizontal rule of width ch characters.
func (r *Renderer) Rule(ch string, width int) {
	r.Println(strings.Repeat(ch, width))
}

// MenuItem is one numbered menu entry.
type MenuItem struct {
	Key   int
	Label string
}

// Menu writes a titled list of numbered options.
func (r *Renderer) Menu(title string, items []MenuItem, styled lipgloss.Style) {
	r.Println(styled.Render(title))
	for _, it := range items {
		r.Println(styled.Render(fmt.Sprintf("%d - %s", it.Key, it.Label)))
	}
}

var bannerLines = []string{
	`       ____            _             `,
	`      |  _ \ ___  ___| |_ ___ _ __  `,
	`      | |_) / _ \/ __| __/ _ \ '__| `,
	`      |  _ < (_) \__ \ ||  __/ |    `,
	`      |_| \_\___/|___/\__\___|_|    `,
}

// Banner writes the welcome banner.
func (r *Renderer) Banner() {
	for _, line := range bannerLines {
		r.Println(r.styles.Header2.Render(line))
	}
	r.Println(r.styles.Header1.Render("             Welcome to the Employee Management System"))
	r.Println("")
}

// Employees writes records as a table in the given order, preceded by a
// count caption.
func (r *Renderer) Employees(records []employee.Employee) {
	r.Println("")
	r.Println(r.styles.Bold.Render(fmt.Sprintf("Showing %d employee(s) data...", len(records))))

	if r.table == TableBox {
		r.Println(BoxTable(records))
		return
	}

	t := PlainTable(records)
	rule := r.styles.Rule.Render(t.Rule)
	r.Println(rule)
	r.Println(r.styles.Rule.Render(t.Header))
	r.Println(rule)
	for _, row := range t.Rows {
		r.Println(r.styles.Row.Render(row))
	}
	r.Println(rule)
}
