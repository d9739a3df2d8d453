package practice

import (
	"testing"
	"time"

	"github.com/anirudh/studyloop/internal/quiz"
)

func practiceQuestions() []quiz.Question {
	return []quiz.Question{
		{
			ID: "p1", Type: quiz.ShortAnswer, Prompt: "Derivative of x^2?",
			CorrectValues: []string{"2x"}, Points: 5,
			Hint: "Use the power rule.", Explanation: "d/dx x^2 = 2x.",
		},
		{
			ID: "p2", Type: quiz.TrueFalse, Prompt: "Is e irrational?",
			Options: []string{"true", "false"}, CorrectValues: []string{"true"}, Points: 5,
		},
	}
}

func testSession() (*Session, *time.Time) {
	s := NewSession("pr1", practiceQuestions(), 5*time.Minute, nil)
	now := t0
	s.Now = func() time.Time { return now }
	return s, &now
}

func TestPractice_WrongAnswerAllowsRetry(t *testing.T) {
	s, _ := testSession()
	s.Start()

	correct, accepted := s.Submit(quiz.Single("x"))
	if !accepted || correct {
		t.Fatalf("first submit = (%v,%v), want wrong but accepted", correct, accepted)
	}
	if q := s.CurrentQuestion(); q == nil || q.ID != "p1" {
		t.Fatal("wrong answer advanced the question")
	}
	if s.Monitor().Errors() != 1 {
		t.Errorf("errors = %d, want 1", s.Monitor().Errors())
	}

	correct, _ = s.Submit(quiz.Single("2x"))
	if !correct {
		t.Fatal("correct retry rejected")
	}
	if q := s.CurrentQuestion(); q == nil || q.ID != "p2" {
		t.Error("correct answer did not advance")
	}

	results := s.Results()
	if len(results) != 1 || results[0].Attempts != 2 || !results[0].Correct {
		t.Errorf("results = %+v, want one result with 2 attempts, correct", results)
	}
}

func TestPractice_HintChargesHesitationOnce(t *testing.T) {
	s, _ := testSession()
	s.Start()

	if hint := s.RevealHint(); hint != "Use the power rule." {
		t.Fatalf("hint = %q", hint)
	}
	before := s.Monitor().Hesitation()
	s.RevealHint() // second reveal of the same hint is free
	if s.Monitor().Hesitation() != before {
		t.Error("re-revealing a hint charged hesitation again")
	}
	if before == 0 {
		t.Error("hint reveal charged no hesitation")
	}
}

func TestPractice_SolutionRevealsAndAdvances(t *testing.T) {
	s, _ := testSession()
	s.Start()

	sol := s.RevealSolution()
	if sol != "d/dx x^2 = 2x." {
		t.Errorf("solution = %q", sol)
	}
	if q := s.CurrentQuestion(); q == nil || q.ID != "p2" {
		t.Error("solution did not advance")
	}

	results := s.Results()
	if len(results) != 1 || results[0].Correct || !results[0].SolutionShown {
		t.Errorf("results = %+v, want revealed and not correct", results)
	}
}

func TestPractice_TimeBoxEndsSession(t *testing.T) {
	s, now := testSession()
	s.Start()

	*now = now.Add(5 * time.Minute)
	s.Tick(*now)

	if !s.Done() {
		t.Fatal("session still running after time box expired")
	}
	if _, accepted := s.Submit(quiz.Single("2x")); accepted {
		t.Error("submit accepted after finish")
	}
}

func TestPractice_CompletesWhenQuestionsExhausted(t *testing.T) {
	s, _ := testSession()
	s.Start()
	s.Submit(quiz.Single("2x"))
	s.Submit(quiz.Single("true"))

	if !s.Done() {
		t.Fatal("session not done after last question")
	}
	if s.CurrentQuestion() != nil {
		t.Error("current question non-nil after completion")
	}
	if len(s.Results()) != 2 {
		t.Errorf("results = %d, want 2", len(s.Results()))
	}
}

func TestPractice_EmptyListFinishesImmediately(t *testing.T) {
	s := NewSession("pr2", nil, time.Minute, nil)
	s.Start()
	if !s.Done() {
		t.Error("empty practice session did not finish immediately")
	}
}

func TestPractice_Reset(t *testing.T) {
	s, _ := testSession()
	s.Start()
	s.Submit(quiz.Single("wrong"))
	s.Reset()

	if s.Done() || s.Monitor().Errors() != 0 || len(s.Results()) != 0 {
		t.Error("Reset did not clear session state")
	}
	if !s.Start() {
		t.Error("Start rejected after Reset")
	}
}
