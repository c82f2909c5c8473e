package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Title    lipgloss.Style
	Ink      lipgloss.Style
	Panel    lipgloss.Style
	Section  lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Active   lipgloss.Style
	Running  lipgloss.Style
	Paused   lipgloss.Style
	KeyHint  lipgloss.Style
	Error    lipgloss.Style
	meterOn  lipgloss.Style
	meterOff lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(t.Title),
		Ink:   lipgloss.NewStyle().Foreground(t.Ink),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent),
		Label:    lipgloss.NewStyle().Foreground(t.Muted).Width(16),
		Value:    lipgloss.NewStyle().Foreground(t.Text),
		Active:   lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Running:  lipgloss.NewStyle().Bold(true).Foreground(t.Good),
		Paused:   lipgloss.NewStyle().Bold(true).Foreground(t.Warn),
		KeyHint:  lipgloss.NewStyle().Italic(true).Foreground(t.Muted),
		Error:    lipgloss.NewStyle().Foreground(t.Warn),
		meterOn:  lipgloss.NewStyle().Foreground(t.Accent),
		meterOff: lipgloss.NewStyle().Foreground(t.Border),
	}
}

// Bar renders a horizontal gauge for ratio in [0,1].
func (s Styles) Bar(ratio float64, width int) string {
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return s.meterOn.Render(strings.Repeat("█", filled)) +
		s.meterOff.Render(strings.Repeat("░", width-filled))
}

func (s Styles) Row(label, value string) string {
	return s.Label.Render(label) + s.Value.Render(value)
}
