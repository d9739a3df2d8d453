package practice

import (
	"time"

	"github.com/anirudh/studyloop/internal/quiz"
	"github.com/anirudh/studyloop/internal/timekeep"
)

const (
	// DefaultDuration time-boxes a practice session.
	DefaultDuration = 10 * time.Minute

	// hintHesitation and solutionHesitation are the hesitation charges
	// for revealing scaffolding, proportional to how much help it gives.
	hintHesitation     = 5 * time.Second
	solutionHesitation = 15 * time.Second
)

// Result is the per-question outcome of a practice attempt.
type Result struct {
	QuestionID     string
	Correct        bool
	HintUsed       bool
	SolutionShown  bool
	Attempts       int
	TimeSpent      time.Duration
}

// Session is a timed practice run over a question list. Unlike the quiz
// state machine it is forgiving: wrong answers allow retries, hints and
// solutions can be revealed, and the load monitor watches the cost of all
// that help.
type Session struct {
	// Now is the clock source, injectable for tests.
	Now func() time.Time

	id        string
	questions []quiz.Question
	duration  time.Duration
	monitor   *Monitor

	current   int
	results   map[string]*Result
	active    bool
	done      bool

	watch         timekeep.Stopwatch
	questionWatch timekeep.Stopwatch
	box           *timekeep.Countdown
}

// NewSession creates a practice session time-boxed to duration
// (DefaultDuration when zero).
func NewSession(id string, questions []quiz.Question, duration time.Duration, monitor *Monitor) *Session {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if monitor == nil {
		monitor = NewMonitor(DefaultLoadWeights())
	}
	qs := make([]quiz.Question, len(questions))
	copy(qs, questions)
	return &Session{
		Now:       time.Now,
		id:        id,
		questions: qs,
		duration:  duration,
		monitor:   monitor,
		results:   make(map[string]*Result),
		box:       timekeep.NewCountdown(duration),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Monitor exposes the load monitor for rendering the load band.
func (s *Session) Monitor() *Monitor { return s.monitor }

// Start begins the run. Empty question lists finish immediately.
func (s *Session) Start() bool {
	if s.active || s.done {
		return false
	}
	now := s.Now()
	s.active = true
	s.watch.Start(now)
	s.questionWatch.Start(now)
	s.box.Start(now)
	s.monitor.RecordInteraction(now)
	if len(s.questions) == 0 {
		s.finish()
	}
	return true
}

// Tick advances the clocks and the idle accounting. When the time box
// expires the session finishes.
func (s *Session) Tick(now time.Time) {
	if !s.active {
		return
	}
	s.watch.Advance(now)
	s.questionWatch.Advance(now)
	s.box.Advance(now)
	s.monitor.Tick(now)
	if s.box.Expired() {
		s.finish()
	}
}

// CurrentQuestion returns the question being practiced, or nil when done.
func (s *Session) CurrentQuestion() *quiz.Question {
	if s.done || s.current >= len(s.questions) {
		return nil
	}
	return &s.questions[s.current]
}

// Submit checks an answer against the current question. Wrong answers
// count an error and leave the question in place for another attempt;
// correct ones record the result and move on.
func (s *Session) Submit(answer quiz.Answer) (correct bool, accepted bool) {
	q := s.CurrentQuestion()
	if !s.active || q == nil {
		return false, false
	}
	now := s.Now()
	s.monitor.RecordInteraction(now)
	r := s.result(q.ID)
	r.Attempts++

	if !quiz.Validate(answer, q.CorrectAnswer()) {
		s.monitor.RecordError()
		return false, true
	}

	r.Correct = true
	r.TimeSpent = s.questionWatch.Elapsed()
	s.advance(now)
	return true, true
}

// RevealHint marks the hint as used and charges hesitation time.
// Returns the hint text, or "" when the question has none.
func (s *Session) RevealHint() string {
	q := s.CurrentQuestion()
	if !s.active || q == nil || q.Hint == "" {
		return ""
	}
	r := s.result(q.ID)
	if !r.HintUsed {
		r.HintUsed = true
		s.monitor.RecordHesitation(hintHesitation)
	}
	s.monitor.RecordInteraction(s.Now())
	return q.Hint
}

// RevealSolution shows the worked answer, charges hesitation, and moves
// on; a revealed question is never counted correct.
func (s *Session) RevealSolution() string {
	q := s.CurrentQuestion()
	if !s.active || q == nil {
		return ""
	}
	now := s.Now()
	r := s.result(q.ID)
	if !r.SolutionShown {
		r.SolutionShown = true
		s.monitor.RecordHesitation(solutionHesitation)
	}
	r.TimeSpent = s.questionWatch.Elapsed()
	s.monitor.RecordInteraction(now)
	s.advance(now)
	if q.Explanation != "" {
		return q.Explanation
	}
	return q.CorrectAnswer().String()
}

// Skip abandons the current question without penalty beyond losing its
// point; used when the learner gives up silently.
func (s *Session) Skip() bool {
	q := s.CurrentQuestion()
	if !s.active || q == nil {
		return false
	}
	now := s.Now()
	r := s.result(q.ID)
	r.TimeSpent = s.questionWatch.Elapsed()
	s.monitor.RecordInteraction(now)
	s.advance(now)
	return true
}

// Done reports whether the session has finished.
func (s *Session) Done() bool { return s.done }

// Elapsed returns total practice time so far.
func (s *Session) Elapsed() time.Duration { return s.watch.Elapsed() }

// Remaining returns time left in the box.
func (s *Session) Remaining() time.Duration { return s.box.Remaining() }

// Results returns per-question outcomes for questions seen so far.
func (s *Session) Results() []Result {
	out := make([]Result, 0, len(s.results))
	for i := range s.questions {
		if r, ok := s.results[s.questions[i].ID]; ok {
			out = append(out, *r)
		}
	}
	return out
}

// Reset returns the session to its initial state, zeroing the monitor.
func (s *Session) Reset() {
	s.current = 0
	s.results = make(map[string]*Result)
	s.active = false
	s.done = false
	s.watch.Reset()
	s.questionWatch.Reset()
	s.box = timekeep.NewCountdown(s.duration)
	s.monitor.Reset()
}

func (s *Session) result(id string) *Result {
	r, ok := s.results[id]
	if !ok {
		r = &Result{QuestionID: id}
		s.results[id] = r
	}
	return r
}

func (s *Session) advance(now time.Time) {
	s.current++
	s.questionWatch.Reset()
	s.questionWatch.Start(now)
	if s.current >= len(s.questions) {
		s.finish()
	}
}

func (s *Session) finish() {
	s.active = false
	s.done = true
	s.watch.Pause(s.Now())
}
