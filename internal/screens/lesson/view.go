package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/anirudh/studyloop/internal/ui/components"
	"github.com/anirudh/studyloop/internal/ui/theme"
)

func (s *LessonScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", s.errMsg))
	}
	if s.timeline == nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Loading lesson...")
	}

	var b strings.Builder

	// Transport line: play state, position, duration.
	stateIcon := "⏸"
	if s.playing {
		stateIcon = "▶"
	}
	transport := fmt.Sprintf("  %s  %s / %s", stateIcon,
		formatSecs(s.timeline.CurrentTime()), formatSecs(s.timeline.Duration()))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(transport))

	if m := s.timeline.ActiveMarker(); m != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("   ◆ %s", m.Title)))
	}
	b.WriteString("\n")

	// Overall position bar with marker pips below it.
	var overall float64
	if d := s.timeline.Duration(); d > 0 {
		overall = s.timeline.CurrentTime() / d
	}
	bar := components.NewProgressBar("", overall, false, width-8)
	b.WriteString("  " + bar.View())
	b.WriteString("\n")
	b.WriteString("  " + s.renderMarkerPips(width-8))
	b.WriteString("\n\n")

	// Active chapter and its progress.
	if ch := s.timeline.ActiveChapter(); ch != nil {
		pct, _ := s.timeline.ChapterProgress()
		line := fmt.Sprintf("  Chapter: %s", ch.Title)
		b.WriteString(theme.Body.Bold(true).Render(line))
		b.WriteString("\n")
		chBar := components.NewProgressBar("  ", pct/100, true, width-12)
		b.WriteString("  " + chBar.View())
		b.WriteString("\n\n")
	} else {
		b.WriteString(theme.Hint.Render("  Between chapters"))
		b.WriteString("\n\n")
	}

	// Table of contents with watch progress.
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  Chapters"))
	b.WriteString("\n")
	active := s.timeline.ActiveChapter()
	for i, ch := range s.timeline.Chapters() {
		marker := "  "
		if active != nil && ch.ID == active.ID {
			marker = "▶ "
		}
		check := " "
		if s.timeline.Completed(ch.ID) {
			check = "✓"
		}
		line := fmt.Sprintf("  %s%s %s  (%s)  %3.0f%% watched",
			marker, check, ch.Title, formatSecs(ch.Duration()), s.timeline.WatchProgress(ch.ID))

		switch {
		case i == s.cursor:
			b.WriteString(theme.Selected.Render(line))
		case s.timeline.Completed(ch.ID):
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}

	// Chapter notes.
	if s.showNotes && active != nil {
		if note, ok := s.lesson.Notes[active.ID]; ok && note != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  Notes"))
			b.WriteString("\n")
			b.WriteString("  " + lipgloss.NewStyle().
				Width(min(width-8, 70)).
				Foreground(theme.Text).
				Render(note))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderMarkerPips draws marker positions under the overall progress bar.
func (s *LessonScreen) renderMarkerPips(barWidth int) string {
	d := s.timeline.Duration()
	if d <= 0 || barWidth < 4 {
		return ""
	}
	row := make([]rune, barWidth)
	for i := range row {
		row[i] = ' '
	}
	for _, m := range s.timeline.Markers() {
		pos := int(m.Time / d * float64(barWidth-1))
		if pos >= 0 && pos < barWidth {
			row[pos] = '◆'
		}
	}
	return lipgloss.NewStyle().Foreground(theme.Accent).Render(string(row))
}

func formatSecs(secs float64) string {
	total := int(secs)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
