package quiz

import (
	"time"

	"github.com/anirudh/studyloop/internal/timekeep"
)

// State is the session lifecycle state.
type State int

const (
	NotStarted State = iota
	Active
	Paused
	Completed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Active:
		return "active"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	}
	return "unknown"
}

// CompletionFunc receives the final summary and the full answer map when
// the session reaches Completed.
type CompletionFunc func(summary *Summary, answers map[string]Answer)

// Session is the quiz state machine. All mutation goes through its
// transition methods; each returns whether the call was accepted, so an
// out-of-state call is a rejected no-op rather than a crash or a partial
// mutation. Time only moves when the owner calls Tick, which keeps the
// machine deterministic under test and makes pause trivially correct.
type Session struct {
	// OnComplete, when set, fires exactly once per run on the transition
	// into Completed.
	OnComplete CompletionFunc

	// Adapter, when set, receives every validated outcome. The session
	// works without one; the host then gets no difficulty signal.
	Adapter *Adapter

	// Now is the clock source, injectable for tests.
	Now func() time.Time

	id        string
	questions []Question

	state     int // State; kept unexported behind State()
	current   int
	answers   map[string]Answer
	flagged   map[string]bool
	timeSpent map[string]time.Duration

	startedAt     time.Time
	sessionWatch  timekeep.Stopwatch
	questionWatch timekeep.Stopwatch
	questionClock *timekeep.Countdown

	summary *Summary
}

// NewSession creates a session over an immutable question sequence.
// The session starts in NotStarted; call Start to begin.
func NewSession(id string, questions []Question) *Session {
	qs := make([]Question, len(questions))
	copy(qs, questions)
	return &Session{
		id:        id,
		questions: qs,
		Now:       time.Now,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// State returns the current lifecycle state.
func (s *Session) State() State { return State(s.state) }

// QuestionCount returns the number of questions in the sequence.
func (s *Session) QuestionCount() int { return len(s.questions) }

// CurrentIndex returns the 0-based question pointer.
func (s *Session) CurrentIndex() int { return s.current }

// CurrentQuestion returns the question under the pointer, or nil when the
// sequence is empty.
func (s *Session) CurrentQuestion() *Question {
	if len(s.questions) == 0 {
		return nil
	}
	return &s.questions[s.current]
}

// Start begins a run. Valid from NotStarted or Completed; both reset all
// session fields first. An empty question list completes immediately with
// a zero-valued summary.
func (s *Session) Start() bool {
	if s.State() != NotStarted && s.State() != Completed {
		return false
	}
	now := s.Now()
	s.resetFields()
	s.startedAt = now
	s.state = int(Active)
	s.sessionWatch.Start(now)

	if len(s.questions) == 0 {
		s.complete()
		return true
	}
	s.beginQuestion(now)
	return true
}

// Pause suspends the session. The current question's countdown stops
// draining until Resume.
func (s *Session) Pause() bool {
	if s.State() != Active {
		return false
	}
	now := s.Now()
	s.sessionWatch.Pause(now)
	s.questionWatch.Pause(now)
	if s.questionClock != nil {
		s.questionClock.Pause(now)
	}
	s.state = int(Paused)
	return true
}

// Resume returns a paused session to Active.
func (s *Session) Resume() bool {
	if s.State() != Paused {
		return false
	}
	now := s.Now()
	s.sessionWatch.Resume(now)
	s.questionWatch.Resume(now)
	if s.questionClock != nil {
		s.questionClock.Resume(now)
	}
	s.state = int(Active)
	return true
}

// SubmitAnswer records the answer and elapsed time for the current
// question. It does not advance the pointer; confirming and moving on are
// separate actions. Rejected outside Active, and rejected after the
// question's time limit already recorded a timeout.
func (s *Session) SubmitAnswer(answer Answer) bool {
	if s.State() != Active {
		return false
	}
	q := s.CurrentQuestion()
	if q == nil {
		return false
	}
	if prev, ok := s.answers[q.ID]; ok && prev.IsTimeout() {
		return false
	}

	s.answers[q.ID] = answer
	s.timeSpent[q.ID] = s.questionWatch.Elapsed()
	if s.Adapter != nil {
		s.Adapter.Record(Validate(answer, q.CorrectAnswer()))
	}
	return true
}

// Next advances the pointer, or completes the session when called on the
// last question. The pointer never moves past the end.
func (s *Session) Next() bool {
	if s.State() != Active {
		return false
	}
	if s.current >= len(s.questions)-1 {
		s.complete()
		return true
	}
	s.current++
	s.beginQuestion(s.Now())
	return true
}

// Previous moves back one question. No-op at index 0. The earlier answer,
// if any, stays recorded.
func (s *Session) Previous() bool {
	if s.State() != Active || s.current == 0 {
		return false
	}
	s.current--
	s.beginQuestion(s.Now())
	return true
}

// JumpTo moves the pointer directly to an in-range index.
func (s *Session) JumpTo(index int) bool {
	if s.State() != Active || index < 0 || index >= len(s.questions) {
		return false
	}
	if index == s.current {
		return true
	}
	s.current = index
	s.beginQuestion(s.Now())
	return true
}

// ToggleFlag marks or unmarks the current question for review,
// independent of its answer state.
func (s *Session) ToggleFlag() bool {
	if s.State() != Active {
		return false
	}
	q := s.CurrentQuestion()
	if q == nil {
		return false
	}
	if s.flagged[q.ID] {
		delete(s.flagged, q.ID)
	} else {
		s.flagged[q.ID] = true
	}
	return true
}

// Tick advances the session clocks. When the current question carries a
// time limit and it expires with no answer recorded, the timeout sentinel
// is recorded as the answer — but the pointer stays put; moving on remains
// the caller's action. Ticks outside Active are ignored.
func (s *Session) Tick(now time.Time) {
	if s.State() != Active {
		return
	}
	s.sessionWatch.Advance(now)
	s.questionWatch.Advance(now)

	q := s.CurrentQuestion()
	if q == nil || s.questionClock == nil {
		return
	}
	s.questionClock.Advance(now)
	if !s.questionClock.Expired() {
		return
	}
	if _, answered := s.answers[q.ID]; answered {
		return
	}
	s.answers[q.ID] = TimedOut()
	s.timeSpent[q.ID] = time.Duration(q.TimeLimitSecs) * time.Second
	if s.Adapter != nil {
		s.Adapter.Record(false)
	}
}

// Reset returns the session to NotStarted, discarding all recorded state.
// No clock is left running afterward.
func (s *Session) Reset() {
	s.resetFields()
	s.state = int(NotStarted)
}

// AnswerFor returns the recorded answer for a question id.
func (s *Session) AnswerFor(id string) Answer {
	if a, ok := s.answers[id]; ok {
		return a
	}
	return Unanswered()
}

// Answers returns a copy of the answer map.
func (s *Session) Answers() map[string]Answer {
	out := make(map[string]Answer, len(s.answers))
	for id, a := range s.answers {
		out[id] = a
	}
	return out
}

// Flagged reports whether a question id is marked for review.
func (s *Session) Flagged(id string) bool { return s.flagged[id] }

// TimeSpent returns the recorded time for a question id.
func (s *Session) TimeSpent(id string) time.Duration { return s.timeSpent[id] }

// Elapsed returns total active time in this run.
func (s *Session) Elapsed() time.Duration { return s.sessionWatch.Elapsed() }

// QuestionRemaining returns the time left on the current question's
// limit, and whether a limit applies.
func (s *Session) QuestionRemaining() (time.Duration, bool) {
	if s.questionClock == nil || !s.questionClock.Limited() {
		return 0, false
	}
	return s.questionClock.Remaining(), true
}

// Summary returns the final summary, or nil before completion.
func (s *Session) Summary() *Summary { return s.summary }

func (s *Session) resetFields() {
	s.current = 0
	s.answers = make(map[string]Answer)
	s.flagged = make(map[string]bool)
	s.timeSpent = make(map[string]time.Duration)
	s.summary = nil
	s.sessionWatch.Reset()
	s.questionWatch.Reset()
	s.questionClock = nil
	s.startedAt = time.Time{}
}

// beginQuestion restarts the per-question clocks for the question under
// the pointer.
func (s *Session) beginQuestion(now time.Time) {
	s.questionWatch.Reset()
	s.questionWatch.Start(now)
	q := s.CurrentQuestion()
	if q != nil && q.TimeLimitSecs > 0 {
		s.questionClock = timekeep.NewCountdown(time.Duration(q.TimeLimitSecs) * time.Second)
		s.questionClock.Start(now)
	} else {
		s.questionClock = nil
	}
}

func (s *Session) complete() {
	now := s.Now()
	s.sessionWatch.Pause(now)
	s.questionClock = nil
	s.state = int(Completed)

	level := Medium
	if s.Adapter != nil {
		level = s.Adapter.Level()
	}
	s.summary = BuildSummary(s.questions, s.answers, s.timeSpent, s.flagged, s.sessionWatch.Elapsed(), level)

	if s.OnComplete != nil {
		s.OnComplete(s.summary, s.Answers())
	}
}
