package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles are the panel styles derived from a Theme.
type styles struct {
	canvas   lipgloss.Style
	panel    lipgloss.Style
	title    lipgloss.Style
	subtitle lipgloss.Style
	button   lipgloss.Style
	card     lipgloss.Style
	cardHead lipgloss.Style
	section  lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	key      lipgloss.Style
	hint     lipgloss.Style
	spark    lipgloss.Style
}

func newStyles(t Theme, panelWidth int) styles {
	return styles{
		canvas:   lipgloss.NewStyle().Padding(1, 2),
		panel:    lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(t.Muted).Padding(1, 2).Width(panelWidth),
		title:    lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		subtitle: lipgloss.NewStyle().Foreground(t.Muted),
		button:   lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(t.Primary).Bold(true).Padding(0, 1),
		card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Muted).Padding(0, 1).Width(panelWidth - 6),
		cardHead: lipgloss.NewStyle().Foreground(t.Selected).Bold(true),
		section:  lipgloss.NewStyle().Foreground(t.Primary),
		label:    lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		value:    lipgloss.NewStyle().Foreground(t.Muted),
		key:      lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		hint:     lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		spark:    lipgloss.NewStyle().Foreground(t.Accent),
	}
}

// keyHint renders "key desc" pairs separated by two spaces.
func (s styles) keyHint(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(s.key.Render(pairs[i]) + s.hint.Render(" "+pairs[i+1]))
	}
	return b.String()
}

// separator is a decorative rule of the given width.
func (s styles) separator(width int) string {
	if width < 8 {
		return s.subtitle.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	return s.subtitle.Render(strings.Repeat("─", mid-3) + " ◆ " + strings.Repeat("─", width-mid-3))
}

// SparklineChart renders a mini sparkline of the last width values between lo and hi.
func SparklineChart(values []float64, width int, lo, hi float64) string {
	if width <= 0 {
		return ""
	}
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	if len(values) > width {
		values = values[len(values)-width:]
	}
	rng := hi - lo
	if rng <= 0 {
		rng = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int((v - lo) / rng * float64(len(chars)-1))
		idx = max(0, min(len(chars)-1, idx))
		b.WriteRune(chars[idx])
	}
	return b.String()
}
