package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/anirudh/studyloop/internal/ui/theme"
)

// ProgressBar is a horizontal fill bar with an optional label and
// percentage readout.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, ShowPercent: showPercent, Width: width}
}

// View renders the bar, shrinking the fill to whatever width remains
// after the label and readout.
func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	reserved := lipgloss.Width(b.String())
	if p.ShowPercent {
		reserved += 6 // readout: two spaces + up to "100%"
	}
	span := p.Width - reserved
	if span < 4 {
		span = 4
	}

	fill := int(p.Percent * float64(span))
	switch {
	case fill < 0:
		fill = 0
	case fill > span:
		fill = span
	}

	b.WriteString(theme.ProgressFilled.Render(strings.Repeat(" ", fill)))
	b.WriteString(theme.ProgressEmpty.Render(strings.Repeat(" ", span-fill)))

	if p.ShowPercent {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100))))
	}

	return b.String()
}
