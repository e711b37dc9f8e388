package repl

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	ColorTitle   = lipgloss.Color("#2CD7C7")
	ColorAccent  = lipgloss.Color("#20B9B4")
	ColorError   = lipgloss.Color("#E74C3C")
	ColorWarning = lipgloss.Color("#F4D03F")
	ColorMuted   = lipgloss.Color("#2C4A54")
)

// Styles renders loop output. When Enabled is false text passes through
// untouched, which keeps scripted output and tests byte-exact.
type Styles struct {
	Enabled bool

	Title   lipgloss.Style
	Rule    lipgloss.Style
	Prompt  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Vertex  lipgloss.Style
	Muted   lipgloss.Style
}

// DefaultStyles returns the colored style set.
func DefaultStyles() Styles {
	return Styles{
		Enabled: true,
		Title:   lipgloss.NewStyle().Bold(true).Foreground(ColorTitle),
		Rule:    lipgloss.NewStyle().Foreground(ColorMuted),
		Prompt:  lipgloss.NewStyle().Foreground(ColorAccent),
		Success: lipgloss.NewStyle().Foreground(ColorTitle),
		Error:   lipgloss.NewStyle().Foreground(ColorError),
		Vertex:  lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(ColorWarning),
	}
}

// PlainStyles returns a style set that renders nothing.
func PlainStyles() Styles {
	return Styles{}
}

// paint renders s with st when styling is enabled.
func (s Styles) paint(st lipgloss.Style, text string) string {
	if !s.Enabled {
		return text
	}

	return st.Render(text)
}
