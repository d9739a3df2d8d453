package quiz

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	quizcore "github.com/anirudh/studyloop/internal/quiz"
	"github.com/anirudh/studyloop/internal/ui/components"
	"github.com/anirudh/studyloop/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, s.errMsg)
	case s.session == nil:
		return renderLoading(width)
	case s.showQuitConfirm:
		return renderQuitConfirm(width)
	case s.session.State() == quizcore.Paused:
		return renderPaused(width)
	case s.showFeedback:
		return s.renderFeedback(width)
	default:
		return s.renderQuestion(width)
	}
}

func (s *QuizScreen) renderQuestion(width int) string {
	q := s.session.CurrentQuestion()
	if q == nil {
		return renderLoading(width)
	}

	var b strings.Builder

	// Status line: position, flag marker, difficulty, clocks.
	pos := fmt.Sprintf("  Question %d/%d", s.session.CurrentIndex()+1, s.session.QuestionCount())
	if s.session.Flagged(q.ID) {
		pos += theme.Flagged.Render("  ⚑")
	}
	infoLeft := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(pos)

	elapsed := formatClock(s.session.Elapsed())
	right := fmt.Sprintf("%s  %s  %s", q.Topic, q.Difficulty, elapsed)
	if remaining, limited := s.session.QuestionRemaining(); limited {
		right += lipgloss.NewStyle().Foreground(theme.Error).
			Render(fmt.Sprintf("  ⏱ %s", formatClock(remaining)))
	}
	infoRight := lipgloss.NewStyle().Foreground(theme.TextDim).Render(right)

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")

	// Progress across the question sequence.
	answered := len(s.session.Answers())
	bar := components.NewProgressBar("", float64(answered)/float64(s.session.QuestionCount()), false, width-8)
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt))
	b.WriteString("\n\n")

	if prev := s.session.AnswerFor(q.ID); !prev.IsUnanswered() {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Previously answered: %s", prev)))
		b.WriteString("\n\n")
	}

	if q.Type.HasOptions() {
		block := s.choices.View()
		if len(q.CorrectValues) > 1 {
			block += theme.Hint.Render("\nSpace toggles, Enter submits")
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View()))
	}

	return b.String()
}

func (s *QuizScreen) renderFeedback(width int) string {
	q := s.session.CurrentQuestion()

	var b strings.Builder
	b.WriteString("\n\n")

	switch {
	case s.feedbackTimeout:
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.Error).Bold(true).
			Render("Time's up!"))
	case s.feedbackCorrect:
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.Success).Bold(true).
			Render("Correct!"))
	default:
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.Error).Bold(true).
			Render("Not quite"))
	}

	if q != nil && (!s.feedbackCorrect || s.feedbackTimeout) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Correct answer: %s", q.CorrectAnswer())))
	}

	b.WriteString("\n\n")

	if q != nil && q.Explanation != "" {
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(q.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Text).Bold(true).
		Render("End quiz early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Answers so far will be saved."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end quiz"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))
	return b.String()
}

func renderPaused(width int) string {
	return lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Accent).Bold(true).
		Render("\n\n\n  Paused — press P to resume")
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Preparing your quiz...")
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func formatClock(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
