package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/anirudh/studyloop/internal/quiz"
)

func testSummary() *quiz.Summary {
	return &quiz.Summary{
		TotalQuestions: 10,
		Answered:       9,
		Correct:        7,
		TimedOut:       1,
		Flagged:        2,
		Score:          14,
		MaxScore:       20,
		Duration:       12 * time.Minute,
		AvgTimePerItem: 72 * time.Second,
		BestStreak:     4,
		FinalStreak:    2,
		ByTopic: map[string]quiz.GroupStats{
			"fractions": {Total: 6, Correct: 5},
			"decimals":  {Total: 4, Correct: 2},
		},
		ByDifficulty: map[quiz.Difficulty]quiz.GroupStats{
			quiz.Medium: {Total: 7, Correct: 5},
			quiz.Hard:   {Total: 3, Correct: 2},
		},
		FinalLevel: quiz.Hard,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary(), "fractions")
	if s.Title() != "Quiz Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Quiz Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary(), "fractions")
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	for _, want := range []string{"Quiz complete!", "fractions", "Best streak: 4", "hard"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary(), "fractions")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary(), "fractions")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary(), "fractions")
	if hints := s.KeyHints(); len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
