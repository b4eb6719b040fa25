package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	muted   lipgloss.Style
	good    lipgloss.Style
	warning lipgloss.Style
	bad     lipgloss.Style
	panel   lipgloss.Style
	tab     lipgloss.Style
	active  lipgloss.Style
}

func (t Theme) styles() styles {
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),
		label: lipgloss.NewStyle().
			Foreground(t.Muted).
			Width(22),
		value: lipgloss.NewStyle().
			Foreground(t.Text).
			Bold(true),
		muted:   lipgloss.NewStyle().Foreground(t.Muted),
		good:    lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		warning: lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
		bad:     lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		tab: lipgloss.NewStyle().
			Foreground(t.Muted).
			Padding(0, 1),
		active: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent).
			Underline(true).
			Padding(0, 1),
	}
}

// separator renders a muted rule with a centre mark.
func (s styles) separator(width int) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	return s.muted.Render(strings.Repeat("─", mid-2) + " ◆ " + strings.Repeat("─", width-mid-3))
}
