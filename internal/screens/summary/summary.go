package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anirudh/studyloop/internal/quiz"
	"github.com/anirudh/studyloop/internal/router"
	"github.com/anirudh/studyloop/internal/screen"
	"github.com/anirudh/studyloop/internal/ui/layout"
	"github.com/anirudh/studyloop/internal/ui/theme"
)

// SummaryScreen displays the performance report of a finished quiz.
type SummaryScreen struct {
	summary *quiz.Summary
	topic   string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *quiz.Summary, topic string) *SummaryScreen {
	return &SummaryScreen{summary: summary, topic: topic}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Quiz Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), "Quiz complete!"))
	b.WriteString("\n\n")

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("Topic: %s    Duration: %s    Avg: %s/question",
			s.topic, formatDuration(sum.Duration), formatDuration(sum.AvgTimePerItem))))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Score: %d/%d        Correct: %d/%d        Accuracy: %.0f%%",
		sum.Score, sum.MaxScore, sum.Correct, sum.Answered, sum.Accuracy()*100)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text), statsLine))
	b.WriteString("\n")

	extras := fmt.Sprintf("Best streak: %d        Timed out: %d        Flagged: %d",
		sum.BestStreak, sum.TimedOut, sum.Flagged)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim), extras))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	// Per-topic breakdown.
	if len(sum.ByTopic) > 0 {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim), "By topic"))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n")
		for topic, g := range sum.ByTopic {
			line := fmt.Sprintf("  %-24s %d/%d correct   %.0f%%",
				topic, g.Correct, g.Total, g.Accuracy()*100)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Body.Render(line)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Per-difficulty breakdown, in level order.
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim), "By difficulty"))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n")
	for _, level := range []quiz.Difficulty{quiz.Easy, quiz.Medium, quiz.Hard} {
		g, ok := sum.ByDifficulty[level]
		if !ok {
			continue
		}
		line := fmt.Sprintf("  %-24s %d/%d correct   %.0f%%",
			level.String(), g.Correct, g.Total, g.Accuracy()*100)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Body.Render(line)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Accent),
		fmt.Sprintf("Next session starts at %s difficulty", sum.FinalLevel)))

	return b.String()
}

func formatDuration(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
