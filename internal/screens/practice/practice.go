package practice

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/anirudh/studyloop/internal/content"
	practicecore "github.com/anirudh/studyloop/internal/practice"
	quizcore "github.com/anirudh/studyloop/internal/quiz"
	"github.com/anirudh/studyloop/internal/router"
	"github.com/anirudh/studyloop/internal/screen"
	"github.com/anirudh/studyloop/internal/store"
	"github.com/anirudh/studyloop/internal/ui/components"
	"github.com/anirudh/studyloop/internal/ui/layout"
)

// questionsReadyMsg is sent when the content source has produced the
// practice questions.
type questionsReadyMsg struct {
	Questions []quizcore.Question
	Err       error
}

// tickMsg drives the time box and the load monitor.
type tickMsg time.Time

// PracticeScreen runs a timed practice session with hints, solutions,
// and the cognitive-load gauge.
type PracticeScreen struct {
	source   content.Source
	events   store.EventRepo
	topic    string
	count    int
	duration time.Duration

	session   *practicecore.Session
	questions []quizcore.Question

	input   components.TextInput
	choices components.ChoiceList

	hintText     string
	solutionText string
	wrongFlash   bool
	errMsg       string
	persisted    bool
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a PracticeScreen pulling count questions on topic.
func New(source content.Source, events store.EventRepo, topic string, count int, duration time.Duration) *PracticeScreen {
	return &PracticeScreen{
		source:   source,
		events:   events,
		topic:    topic,
		count:    count,
		duration: duration,
		input:    components.NewTextInput("Type your answer...", 80),
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	return tea.Batch(s.loadQuestions(), s.input.Init())
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.session != nil && s.session.Done() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Home"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Check"},
		{Key: "Tab", Description: "Hint"},
		{Key: "Ctrl+S", Description: "Solution"},
		{Key: "Ctrl+K", Description: "Skip"},
		{Key: "Esc", Description: "End"},
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsReadyMsg:
		return s.handleQuestionsReady(msg)
	case tickMsg:
		return s.handleTick()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.session != nil && !s.session.Done() {
		return s, s.forwardToWidget(msg)
	}
	return s, nil
}

func (s *PracticeScreen) loadQuestions() tea.Cmd {
	return func() tea.Msg {
		questions, err := s.source.QuestionSet(context.Background(), content.SetRequest{
			Topic: s.topic,
			Count: s.count,
		})
		return questionsReadyMsg{Questions: questions, Err: err}
	}
}

func (s *PracticeScreen) handleQuestionsReady(msg questionsReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	monitor := practicecore.NewMonitor(practicecore.DefaultLoadWeights())
	s.questions = msg.Questions
	s.session = practicecore.NewSession(uuid.New().String(), msg.Questions, s.duration, monitor)
	s.session.Start()
	s.syncWidgets()
	return s, tea.Batch(s.input.Init(), tickCmd())
}

func (s *PracticeScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.session == nil {
		return s, nil
	}

	s.session.Tick(time.Now())
	if s.session.Done() {
		s.persistResults()
		return s, nil
	}
	return s, tickCmd()
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.session == nil {
		return s, nil
	}

	if s.session.Done() {
		switch key {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	// Any keypress counts as interaction for the idle clock.
	s.session.Monitor().RecordInteraction(time.Now())

	switch key {
	case "esc":
		s.persistResults()
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "enter":
		return s.submit()

	case "tab":
		if hint := s.session.RevealHint(); hint != "" {
			s.hintText = hint
		}
		return s, nil

	case "ctrl+s":
		if sol := s.session.RevealSolution(); sol != "" {
			s.solutionText = sol
			// RevealSolution already advanced; show the solution until
			// the next keypress builds the next question's widget.
		}
		return s, nil

	case "ctrl+k":
		s.session.Skip()
		s.nextQuestion()
		return s, s.input.Init()
	}

	if s.solutionText != "" {
		// Dismiss the solution overlay and move to the next question.
		s.nextQuestion()
		return s, s.input.Init()
	}

	return s, s.forwardToWidget(msg)
}

// submit checks the answer. Wrong answers keep the question in place for
// another attempt; correct ones advance.
func (s *PracticeScreen) submit() (screen.Screen, tea.Cmd) {
	q := s.session.CurrentQuestion()
	if q == nil {
		return s, nil
	}

	var answer quizcore.Answer
	if q.Type.HasOptions() {
		chosen := s.choices.Chosen()
		if len(chosen) == 0 {
			return s, nil
		}
		if len(chosen) == 1 {
			answer = quizcore.Single(chosen[0])
		} else {
			answer = quizcore.Multi(chosen...)
		}
	} else {
		val := strings.TrimSpace(s.input.Value())
		if val == "" {
			return s, nil
		}
		answer = quizcore.Single(val)
	}

	correct, accepted := s.session.Submit(answer)
	if !accepted {
		return s, nil
	}
	if correct {
		s.nextQuestion()
		return s, s.input.Init()
	}

	s.wrongFlash = true
	if !q.Type.HasOptions() {
		s.input.Submit(false)
	}
	if s.session.Done() {
		s.persistResults()
	}
	return s, nil
}

// nextQuestion resets transient display state for the question now under
// the pointer.
func (s *PracticeScreen) nextQuestion() {
	s.hintText = ""
	s.solutionText = ""
	s.wrongFlash = false
	if s.session.Done() {
		s.persistResults()
		return
	}
	s.syncWidgets()
}

func (s *PracticeScreen) syncWidgets() {
	q := s.session.CurrentQuestion()
	if q == nil {
		return
	}
	if q.Type.HasOptions() {
		s.choices = components.NewChoiceList(q.Options, len(q.CorrectValues) > 1)
	} else {
		s.input = components.NewTextInput("Type your answer...", 80)
	}
}

// persistResults appends one practice event per attempted question.
// Idempotent; the session can finish from several paths.
func (s *PracticeScreen) persistResults() {
	if s.persisted || s.events == nil || s.session == nil {
		return
	}
	s.persisted = true

	ctx := context.Background()
	level := s.session.Monitor().Level().String()
	for _, r := range s.session.Results() {
		topic := s.topic
		if q := s.questionByID(r.QuestionID); q != nil {
			topic = q.Topic
		}
		_ = s.events.AppendPracticeEvent(ctx, store.PracticeEventData{
			SessionID:     s.session.ID(),
			QuestionID:    r.QuestionID,
			Topic:         topic,
			Correct:       r.Correct,
			HintUsed:      r.HintUsed,
			SolutionShown: r.SolutionShown,
			Attempts:      r.Attempts,
			TimeMs:        int(r.TimeSpent.Milliseconds()),
			LoadLevel:     level,
		})
	}
}

func (s *PracticeScreen) questionByID(id string) *quizcore.Question {
	for i := range s.questions {
		if s.questions[i].ID == id {
			return &s.questions[i]
		}
	}
	return nil
}

func (s *PracticeScreen) forwardToWidget(msg tea.Msg) tea.Cmd {
	q := s.session.CurrentQuestion()
	var cmd tea.Cmd
	if q != nil && q.Type.HasOptions() {
		s.choices, cmd = s.choices.Update(msg)
	} else {
		s.input, cmd = s.input.Update(msg)
	}
	return cmd
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
