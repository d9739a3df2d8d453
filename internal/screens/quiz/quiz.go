package quiz

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/anirudh/studyloop/internal/content"
	quizcore "github.com/anirudh/studyloop/internal/quiz"
	"github.com/anirudh/studyloop/internal/router"
	"github.com/anirudh/studyloop/internal/screen"
	"github.com/anirudh/studyloop/internal/screens/summary"
	"github.com/anirudh/studyloop/internal/store"
	"github.com/anirudh/studyloop/internal/ui/components"
	"github.com/anirudh/studyloop/internal/ui/layout"
)

// QuizScreen runs one adaptive quiz session.
type QuizScreen struct {
	source content.Source
	events store.EventRepo
	snaps  store.SnapshotRepo
	topic  string
	count  int

	session   *quizcore.Session
	adapter   *quizcore.Adapter
	questions []quizcore.Question

	input   components.TextInput
	choices components.ChoiceList

	// prevLessons carries lesson resume state from the last snapshot so a
	// quiz save does not wipe it.
	prevLessons map[string]store.LessonState

	showFeedback    bool
	feedbackCorrect bool
	feedbackTimeout bool
	showQuitConfirm bool
	errMsg          string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen that will pull count questions on topic from
// the content source.
func New(source content.Source, events store.EventRepo, snaps store.SnapshotRepo, topic string, count int) *QuizScreen {
	return &QuizScreen{
		source: source,
		events: events,
		snaps:  snaps,
		topic:  topic,
		count:  count,
		input:  components.NewTextInput("Type your answer...", 80),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return tea.Batch(
		s.loadQuestions(),
		s.input.Init(),
	)
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.showQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End quiz"},
			{Key: "N", Description: "Keep going"},
		}
	case s.showFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case s.session != nil && s.session.State() == quizcore.Paused:
		return []layout.KeyHint{
			{Key: "P", Description: "Resume"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "←/→", Description: "Prev/Skip"},
			{Key: "F", Description: "Flag"},
			{Key: "P", Description: "Pause"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsReadyMsg:
		return s.handleQuestionsReady(msg)

	case tickMsg:
		return s.handleTick()

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case sessionDoneMsg:
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(msg.Summary, s.topic)}
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.answering() {
		return s, s.forwardToWidget(msg)
	}
	return s, nil
}

// loadQuestions restores the difficulty adapter from the latest snapshot
// and asks the content source for a question set at that level.
func (s *QuizScreen) loadQuestions() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		level := quizcore.Medium
		var history []bool
		if s.snaps != nil {
			if snap, err := s.snaps.Latest(ctx); err == nil && snap != nil {
				level = quizcore.ParseDifficulty(snap.Data.DifficultyLevel)
				history = snap.Data.DifficultyHistory
				s.prevLessons = snap.Data.Lessons
			}
		}

		questions, err := s.source.QuestionSet(ctx, content.SetRequest{
			Topic: s.topic,
			Count: s.count,
			Level: level,
		})
		return questionsReadyMsg{
			Questions: questions,
			Level:     level,
			History:   history,
			Err:       err,
		}
	}
}

func (s *QuizScreen) handleQuestionsReady(msg questionsReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.adapter = quizcore.NewAdapter(msg.Level, quizcore.DefaultWindow)
	s.adapter.Restore(msg.Level, msg.History)

	s.questions = msg.Questions
	s.session = quizcore.NewSession(uuid.New().String(), msg.Questions)
	s.session.Adapter = s.adapter
	s.session.Start()

	if s.events != nil {
		_ = s.events.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID:     s.session.ID(),
			Action:        "start",
			QuestionCount: s.session.QuestionCount(),
		})
	}

	s.syncWidgets()
	return s, tea.Batch(s.input.Init(), tickCmd())
}

func (s *QuizScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.session == nil || s.session.State() == quizcore.Completed {
		return s, nil
	}

	s.session.Tick(time.Now())

	// A time limit may just have recorded the timeout sentinel.
	if q := s.session.CurrentQuestion(); q != nil && !s.showFeedback {
		if a := s.session.AnswerFor(q.ID); a.IsTimeout() {
			if s.optionQuestion() {
				s.choices.Reveal(q.CorrectValues)
			} else {
				s.input.Submit(false)
			}
			s.showFeedback = true
			s.feedbackCorrect = false
			s.feedbackTimeout = true
		}
	}

	return s, tickCmd()
}

func (s *QuizScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	s.showFeedback = false
	s.feedbackTimeout = false

	s.session.Next()
	if s.session.State() == quizcore.Completed {
		return s, s.finishSession()
	}
	s.syncWidgets()
	return s, s.input.Init()
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state — any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.session == nil {
		return s, nil
	}

	if s.showQuitConfirm {
		switch key {
		case "y", "Y":
			s.showQuitConfirm = false
			return s, s.abandonSession()
		case "n", "N", "esc":
			s.showQuitConfirm = false
			s.session.Resume()
			return s, nil
		}
		return s, nil
	}

	if s.showFeedback {
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	if s.session.State() == quizcore.Paused {
		if key == "p" || key == "P" {
			s.session.Resume()
		}
		return s, nil
	}

	if s.session.State() != quizcore.Active {
		return s, nil
	}

	switch key {
	case "esc":
		s.session.Pause()
		s.showQuitConfirm = true
		return s, nil
	case "enter":
		return s.submitAnswer()
	case "left":
		s.session.Previous()
		s.syncWidgets()
		return s, s.input.Init()
	case "right":
		s.session.Next()
		if s.session.State() == quizcore.Completed {
			return s, s.finishSession()
		}
		s.syncWidgets()
		return s, s.input.Init()
	case "ctrl+f":
		s.session.ToggleFlag()
		return s, nil
	case "ctrl+p":
		s.session.Pause()
		return s, nil
	}

	// Text questions swallow plain letters, so flag/pause ride ctrl above
	// but single-key shortcuts still work for option questions.
	if s.optionQuestion() {
		switch key {
		case "f":
			s.session.ToggleFlag()
			return s, nil
		case "p":
			s.session.Pause()
			return s, nil
		}
	}

	return s, s.forwardToWidget(msg)
}

// submitAnswer reads the active widget, records the answer, and shows
// feedback.
func (s *QuizScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	q := s.session.CurrentQuestion()
	if q == nil {
		return s, nil
	}

	var answer quizcore.Answer
	if s.optionQuestion() {
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

	if !s.session.SubmitAnswer(answer) {
		return s, nil
	}

	correct := quizcore.Validate(answer, q.CorrectAnswer())
	if s.optionQuestion() {
		s.choices.Reveal(q.CorrectValues)
	} else {
		s.input.Submit(correct)
	}

	s.showFeedback = true
	s.feedbackCorrect = correct
	return s, nil
}

// finishSession persists answer events, the end event, and the snapshot,
// then hands the summary off for display.
func (s *QuizScreen) finishSession() tea.Cmd {
	session := s.session
	sum := session.Summary()

	return func() tea.Msg {
		ctx := context.Background()
		if s.events != nil {
			s.appendAnswerEvents(ctx, session)
			_ = s.events.AppendSessionEvent(ctx, store.SessionEventData{
				SessionID:     session.ID(),
				Action:        "end",
				QuestionCount: sum.TotalQuestions,
				Answered:      sum.Answered,
				Correct:       sum.Correct,
				TimedOut:      sum.TimedOut,
				Score:         sum.Score,
				MaxScore:      sum.MaxScore,
				DurationSecs:  int(sum.Duration.Seconds()),
				FinalLevel:    sum.FinalLevel.String(),
			})
		}
		s.saveSnapshot(ctx)
		return sessionDoneMsg{Summary: sum}
	}
}

// abandonSession records a partial end event and leaves without a summary.
func (s *QuizScreen) abandonSession() tea.Cmd {
	session := s.session
	return func() tea.Msg {
		ctx := context.Background()
		if s.events != nil {
			s.appendAnswerEvents(ctx, session)

			answered := len(session.Answers())
			_ = s.events.AppendSessionEvent(ctx, store.SessionEventData{
				SessionID:     session.ID(),
				Action:        "end",
				QuestionCount: session.QuestionCount(),
				Answered:      answered,
				DurationSecs:  int(session.Elapsed().Seconds()),
				FinalLevel:    s.adapter.Level().String(),
			})
		}
		s.saveSnapshot(ctx)
		return router.PopScreenMsg{}
	}
}

func (s *QuizScreen) appendAnswerEvents(ctx context.Context, session *quizcore.Session) {
	for id, a := range session.Answers() {
		q := s.questionByID(id)
		if q == nil {
			continue
		}
		_ = s.events.AppendAnswerEvent(ctx, store.AnswerEventData{
			SessionID:     session.ID(),
			QuestionID:    q.ID,
			QuestionType:  string(q.Type),
			Topic:         q.Topic,
			Difficulty:    q.Difficulty.String(),
			Prompt:        q.Prompt,
			CorrectAnswer: q.CorrectAnswer().String(),
			GivenAnswer:   a.String(),
			Correct:       quizcore.Validate(a, q.CorrectAnswer()),
			TimedOut:      a.IsTimeout(),
			Flagged:       session.Flagged(id),
			TimeMs:        int(session.TimeSpent(id).Milliseconds()),
		})
	}
}

func (s *QuizScreen) saveSnapshot(ctx context.Context) {
	if s.snaps == nil || s.adapter == nil {
		return
	}
	snap := &store.Snapshot{
		Timestamp: time.Now(),
		Data: store.SnapshotData{
			Version:           1,
			DifficultyLevel:   s.adapter.Level().String(),
			DifficultyHistory: s.adapter.History(),
			Lessons:           s.prevLessons,
		},
	}
	_ = s.snaps.Save(ctx, snap)
	_ = s.snaps.Prune(ctx, 10)
}

// syncWidgets rebuilds the answer widget for the question under the
// pointer.
func (s *QuizScreen) syncWidgets() {
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

func (s *QuizScreen) optionQuestion() bool {
	q := s.session.CurrentQuestion()
	return q != nil && q.Type.HasOptions()
}

func (s *QuizScreen) answering() bool {
	return s.session != nil &&
		s.session.State() == quizcore.Active &&
		!s.showFeedback && !s.showQuitConfirm
}

func (s *QuizScreen) forwardToWidget(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if s.optionQuestion() {
		s.choices, cmd = s.choices.Update(msg)
	} else {
		s.input, cmd = s.input.Update(msg)
	}
	return cmd
}

func (s *QuizScreen) questionByID(id string) *quizcore.Question {
	for i := range s.questions {
		if s.questions[i].ID == id {
			return &s.questions[i]
		}
	}
	return nil
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
