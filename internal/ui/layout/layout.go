package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/anirudh/studyloop/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	HeaderHeight = 3
	FooterHeight = 3
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight returns the rows left for screen content between the
// header and footer bars.
func ContentHeight(totalHeight int) int {
	if h := totalHeight - HeaderHeight - FooterHeight; h > 0 {
		return h
	}
	return 0
}

// RenderMinSizeMessage fills the whole terminal with a resize prompt.
func RenderMinSizeMessage(width, height int) string {
	lines := []string{
		theme.Title.Render("Terminal too small"),
		"",
		fmt.Sprintf("studyloop needs at least %d x %d", MinWidth, MinHeight),
		theme.Hint.Render(fmt.Sprintf("current: %d x %d", width, height)),
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(lines, "\n"))
}

// RenderHeader renders the top bar: brand on the left, screen title in
// the middle, status (difficulty, timer, or empty) on the right edge.
func RenderHeader(title, status string, width int) string {
	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  studyloop")
	mid := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	edge := lipgloss.NewStyle().Foreground(theme.Accent).Render(status)

	inner := width - 4 // border columns
	if inner < 0 {
		inner = 0
	}

	// Center the title against the full inner width, then pull the
	// brand and status over it so they win at the edges.
	gapL := (inner-lipgloss.Width(mid))/2 - lipgloss.Width(brand)
	if gapL < 1 {
		gapL = 1
	}
	gapR := inner - lipgloss.Width(brand) - gapL - lipgloss.Width(mid) - lipgloss.Width(edge)
	if gapR < 1 {
		gapR = 1
	}

	return barStyle(width).Render(
		brand + strings.Repeat(" ", gapL) + mid + strings.Repeat(" ", gapR) + edge)
}

// RenderFooter renders the bottom bar of key hints.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString("  ")
	for i, h := range hints {
		if i > 0 {
			b.WriteString("   ")
		}
		b.WriteString(keyStyle.Render(h.Key))
		b.WriteString(" ")
		b.WriteString(descStyle.Render(h.Description))
	}

	return barStyle(width).Render(b.String())
}

// RenderFrame stacks header, content, and footer, stretching content to
// fill the rows between the bars.
func RenderFrame(header, content, footer string, width, height int) string {
	body := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if body < 0 {
		body = 0
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Width(width).Height(body).Render(content),
		footer,
	)
}

func barStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}
