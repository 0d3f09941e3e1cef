package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the console.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Prompt  lipgloss.Style
	Menu    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Rule    lipgloss.Style
	Row     lipgloss.Style
}

// ANSI palette indexes.
const (
	colorRed    = lipgloss.Color("1")
	colorGreen  = lipgloss.Color("2")
	colorYellow = lipgloss.Color("3")
	colorBlue   = lipgloss.Color("4")
	colorPurple = lipgloss.Color("5")
	colorCyan   = lipgloss.Color("6")
	colorGray   = lipgloss.Color("8")
)

func newStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Header1: r.NewStyle().Bold(true).Foreground(colorPurple),
		Header2: r.NewStyle().Foreground(colorCyan),
		Bold:    r.NewStyle().Bold(true),
		Muted:   r.NewStyle().Foreground(colorGray),
		Prompt:  r.NewStyle().Foreground(colorBlue),
		Menu:    r.NewStyle().Foreground(colorGreen),
		Success: r.NewStyle().Foreground(colorGreen),
		Warning: r.NewStyle().Foreground(colorYellow),
		Error:   r.NewStyle().Foreground(colorRed),
		Info:    r.NewStyle().Foreground(colorCyan),
		Rule:    r.NewStyle().Foreground(colorCyan),
		Row:     r.NewStyle().Foreground(colorYellow),
	}
}
