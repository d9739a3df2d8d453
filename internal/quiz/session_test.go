package quiz

import (
	"testing"
	"time"
)

var sessionStart = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

// fakeClock returns a clock function and a pointer that tests can move.
func fakeClock() (func() time.Time, *time.Time) {
	now := sessionStart
	return func() time.Time { return now }, &now
}

func twoQuestions() []Question {
	return []Question{
		{
			ID: "q1", Type: MultipleChoice, Prompt: "2+2?",
			Options: []string{"3", "4", "5", "6"}, CorrectValues: []string{"4"},
			Difficulty: Easy, Topic: "arithmetic", Points: 10,
		},
		{
			ID: "q2", Type: MultipleChoice, Prompt: "Capital of France?",
			Options: []string{"Lyon", "Paris", "Nice", "Lille"}, CorrectValues: []string{"Paris"},
			Difficulty: Medium, Topic: "geography", Points: 20,
		},
	}
}

func TestSession_FullRun(t *testing.T) {
	s := NewSession("s1", twoQuestions())
	clock, now := fakeClock()
	s.Now = clock

	var gotSummary *Summary
	var gotAnswers map[string]Answer
	s.OnComplete = func(sum *Summary, answers map[string]Answer) {
		gotSummary = sum
		gotAnswers = answers
	}

	if !s.Start() {
		t.Fatal("Start rejected")
	}
	if s.State() != Active {
		t.Fatalf("state = %v, want active", s.State())
	}

	*now = now.Add(4 * time.Second)
	s.Tick(*now)
	if !s.SubmitAnswer(Single("4")) {
		t.Fatal("SubmitAnswer rejected for q1")
	}
	if !s.Next() {
		t.Fatal("Next rejected after q1")
	}
	if s.CurrentIndex() != 1 {
		t.Fatalf("index = %d, want 1", s.CurrentIndex())
	}

	*now = now.Add(6 * time.Second)
	s.Tick(*now)
	if !s.SubmitAnswer(Single("Nice")) {
		t.Fatal("SubmitAnswer rejected for q2")
	}
	if !s.Next() {
		t.Fatal("Next rejected on last question")
	}

	if s.State() != Completed {
		t.Fatalf("state = %v, want completed", s.State())
	}
	if gotSummary == nil {
		t.Fatal("completion callback did not fire")
	}
	if gotSummary.Correct != 1 || gotSummary.TotalQuestions != 2 {
		t.Errorf("summary correct/total = %d/%d, want 1/2", gotSummary.Correct, gotSummary.TotalQuestions)
	}
	if gotSummary.Score != 10 {
		t.Errorf("score = %d, want 10 (q1 points only)", gotSummary.Score)
	}
	if gotSummary.MaxScore != 30 {
		t.Errorf("maxScore = %d, want 30", gotSummary.MaxScore)
	}
	if len(gotAnswers) != 2 {
		t.Errorf("answer map size = %d, want 2", len(gotAnswers))
	}
	if s.TimeSpent("q1") != 4*time.Second {
		t.Errorf("timeSpent(q1) = %v, want 4s", s.TimeSpent("q1"))
	}
}

func TestSession_InvalidTransitionsAreNoOps(t *testing.T) {
	s := NewSession("s2", twoQuestions())

	if s.SubmitAnswer(Single("4")) {
		t.Error("SubmitAnswer accepted before Start")
	}
	if s.Next() || s.Previous() || s.Pause() || s.Resume() || s.ToggleFlag() {
		t.Error("transition accepted before Start")
	}

	s.Start()
	if s.Start() {
		t.Error("double Start accepted")
	}
	if s.Resume() {
		t.Error("Resume accepted while active")
	}

	s.Pause()
	if s.SubmitAnswer(Single("4")) {
		t.Error("SubmitAnswer accepted while paused")
	}
	if s.Pause() {
		t.Error("double Pause accepted")
	}
	if len(s.Answers()) != 0 {
		t.Error("rejected calls mutated state")
	}
}

func TestSession_PauseFreezesCountdown(t *testing.T) {
	qs := twoQuestions()
	qs[0].TimeLimitSecs = 10
	s := NewSession("s3", qs)
	clock, now := fakeClock()
	s.Now = clock
	s.Start()

	*now = now.Add(3 * time.Second)
	s.Tick(*now)
	s.Pause()

	// A minute passes while paused; the limit must not drain.
	*now = now.Add(time.Minute)
	s.Tick(*now)
	s.Resume()
	*now = now.Add(2 * time.Second)
	s.Tick(*now)

	remaining, limited := s.QuestionRemaining()
	if !limited {
		t.Fatal("q1 should carry a time limit")
	}
	if remaining != 5*time.Second {
		t.Errorf("remaining = %v, want 5s", remaining)
	}
	if a := s.AnswerFor("q1"); !a.IsUnanswered() {
		t.Errorf("answer = %v, want unanswered", a)
	}
}

func TestSession_TimeoutRecordsSentinelWithoutAdvancing(t *testing.T) {
	qs := twoQuestions()
	qs[0].TimeLimitSecs = 5
	s := NewSession("s4", qs)
	clock, now := fakeClock()
	s.Now = clock
	s.Adapter = NewAdapter(Medium, 5)
	s.Start()

	*now = now.Add(5 * time.Second)
	s.Tick(*now)

	a := s.AnswerFor("q1")
	if !a.IsTimeout() {
		t.Fatalf("answer = %v, want timeout sentinel", a)
	}
	if s.CurrentIndex() != 0 {
		t.Error("timeout advanced the pointer")
	}
	if Validate(a, qs[0].CorrectAnswer()) {
		t.Error("timeout validated as correct")
	}
	// The timeout flowed through the ordinary incorrect path.
	if s.Adapter.Level() != Easy {
		t.Errorf("adapter level = %v, want easy after incorrect", s.Adapter.Level())
	}
	// The budget is spent; late submissions are rejected.
	if s.SubmitAnswer(Single("4")) {
		t.Error("SubmitAnswer accepted after timeout")
	}
}

func TestSession_NavigationBounds(t *testing.T) {
	s := NewSession("s5", twoQuestions())
	s.Start()

	if s.Previous() {
		t.Error("Previous accepted at index 0")
	}
	if s.JumpTo(-1) || s.JumpTo(2) {
		t.Error("out-of-range JumpTo accepted")
	}
	if !s.JumpTo(1) {
		t.Error("in-range JumpTo rejected")
	}
	if !s.Previous() {
		t.Error("Previous rejected at index 1")
	}
	if s.CurrentIndex() != 0 {
		t.Errorf("index = %d, want 0", s.CurrentIndex())
	}
}

func TestSession_PreviousKeepsRecordedAnswer(t *testing.T) {
	s := NewSession("s6", twoQuestions())
	s.Start()
	s.SubmitAnswer(Single("4"))
	s.Next()
	s.Previous()

	if a := s.AnswerFor("q1"); a.Value() != "4" {
		t.Errorf("revisited answer = %v, want 4", a)
	}
}

func TestSession_ToggleFlag(t *testing.T) {
	s := NewSession("s7", twoQuestions())
	s.Start()

	s.ToggleFlag()
	if !s.Flagged("q1") {
		t.Error("flag not set")
	}
	s.ToggleFlag()
	if s.Flagged("q1") {
		t.Error("flag not cleared")
	}
}

func TestSession_EmptyQuestionList(t *testing.T) {
	s := NewSession("s8", nil)
	fired := false
	s.OnComplete = func(sum *Summary, _ map[string]Answer) {
		fired = true
		if sum.TotalQuestions != 0 || sum.Score != 0 || sum.MaxScore != 0 {
			t.Errorf("zero-question summary not zero-valued: %+v", sum)
		}
	}

	if !s.Start() {
		t.Fatal("Start rejected for empty list")
	}
	if s.State() != Completed {
		t.Fatalf("state = %v, want completed immediately", s.State())
	}
	if !fired {
		t.Error("completion callback did not fire")
	}
}

func TestSession_RestartAfterCompletion(t *testing.T) {
	s := NewSession("s9", twoQuestions())
	s.Start()
	s.SubmitAnswer(Single("4"))
	s.Next()
	s.Next()
	if s.State() != Completed {
		t.Fatal("expected completed")
	}

	if !s.Start() {
		t.Fatal("Start from Completed rejected")
	}
	if s.State() != Active || s.CurrentIndex() != 0 {
		t.Error("restart did not reset the session")
	}
	if len(s.Answers()) != 0 {
		t.Error("restart kept old answers")
	}

	s.Reset()
	if s.State() != NotStarted {
		t.Errorf("state after Reset = %v, want not_started", s.State())
	}
}
