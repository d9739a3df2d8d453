package practice

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	practicecore "github.com/anirudh/studyloop/internal/practice"
	"github.com/anirudh/studyloop/internal/ui/components"
	"github.com/anirudh/studyloop/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", s.errMsg))
	}
	if s.session == nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Preparing practice...")
	}
	if s.session.Done() {
		return s.renderResults(width)
	}
	return s.renderQuestion(width)
}

func (s *PracticeScreen) renderQuestion(width int) string {
	q := s.session.CurrentQuestion()
	if q == nil {
		return ""
	}

	var b strings.Builder

	// Status line: remaining time and the load gauge.
	infoLeft := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("  Time left: %s", formatClock(s.session.Remaining())))
	infoRight := s.renderLoadGauge()

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Text).Bold(true).
		Render(q.Prompt))
	b.WriteString("\n\n")

	if s.solutionText != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().
				Width(min(width-8, 70)).
				Foreground(theme.Accent).
				Render("Solution: "+s.solutionText)))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Press any key for the next question..."))
		return b.String()
	}

	if q.Type.HasOptions() {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choices.View()))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Render("Answer: " + s.input.View()))
	}
	b.WriteString("\n")

	if s.wrongFlash {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Not quite — try again"))
		b.WriteString("\n")
	}

	if s.hintText != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Width(min(width-8, 70)).Render("Hint: "+s.hintText)))
		b.WriteString("\n")
	}

	return b.String()
}

// renderLoadGauge shows the cognitive-load band with a colored bar.
func (s *PracticeScreen) renderLoadGauge() string {
	level := s.session.Monitor().Level()

	color := theme.Success
	filled := 1
	switch level {
	case practicecore.LoadMedium:
		color = theme.Secondary
		filled = 2
	case practicecore.LoadHigh:
		color = theme.Accent
		filled = 3
	case practicecore.LoadOverload:
		color = theme.Error
		filled = 4
	}

	gauge := strings.Repeat("█", filled) + strings.Repeat("░", 4-filled)
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render("Load ") +
		lipgloss.NewStyle().Foreground(color).Render(gauge+" "+level.String())
}

func (s *PracticeScreen) renderResults(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Primary).Bold(true).
		Render("Practice complete!"))
	b.WriteString("\n\n")

	results := s.session.Results()
	correct := 0
	for _, r := range results {
		if r.Correct {
			correct++
		}
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Solved %d of %d in %s",
			correct, len(results), formatClock(s.session.Elapsed()))))
	b.WriteString("\n\n")

	for _, r := range results {
		mark := theme.Incorrect.Render("✗")
		if r.Correct {
			mark = theme.Correct.Render("✓")
		}
		detail := fmt.Sprintf("%d attempt(s)", r.Attempts)
		if r.HintUsed {
			detail += ", hint"
		}
		if r.SolutionShown {
			detail += ", solution shown"
		}

		prompt := ""
		if q := s.questionByID(r.QuestionID); q != nil {
			prompt = q.Prompt
			if len(prompt) > 40 {
				prompt = prompt[:40] + "…"
			}
		}

		line := fmt.Sprintf("  %s %-42s %s", mark, prompt, detail)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Body.Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.NewProgressBar("Accuracy", safeRatio(correct, len(results)), true, min(width-8, 50)).View()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Enter to go home"))
	return b.String()
}

func safeRatio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
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

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
