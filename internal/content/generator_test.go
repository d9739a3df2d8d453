package content

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/anirudh/studyloop/internal/llm"
	"github.com/anirudh/studyloop/internal/quiz"
)

const goodSetResponse = `{
	"topic": "fractions",
	"questions": [
		{
			"type": "multiple_choice",
			"prompt": "What is 1/2 of 8?",
			"options": ["2", "3", "4", "5"],
			"correct": ["4"],
			"difficulty": "easy",
			"points": 10,
			"hint": "Half means divide by 2.",
			"explanation": "8 divided by 2 is 4."
		},
		{
			"type": "short_answer",
			"prompt": "Write 0.5 as a fraction in lowest terms.",
			"options": [],
			"correct": ["1/2"],
			"difficulty": "medium",
			"points": 10,
			"hint": "",
			"explanation": "0.5 is five tenths, which reduces to one half."
		}
	]
}`

func TestGeneratorQuestionSet(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(goodSetResponse)},
	)
	g := NewGenerator(mock, DefaultGeneratorConfig())

	questions, err := g.QuestionSet(context.Background(), SetRequest{
		Topic: "fractions",
		Count: 2,
		Level: quiz.Easy,
	})
	if err != nil {
		t.Fatalf("question set: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}

	q := questions[0]
	if q.ID == "" {
		t.Error("expected generated ID")
	}
	if q.Type != quiz.MultipleChoice {
		t.Errorf("type = %v, want multiple_choice", q.Type)
	}
	if q.Topic != "fractions" {
		t.Errorf("topic = %q, want fractions", q.Topic)
	}
	if !quiz.Validate(quiz.Single("4"), q.CorrectAnswer()) {
		t.Error("expected '4' to validate against the correct answer")
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
	if mock.Calls[0].Schema != QuestionSetSchema {
		t.Error("expected the question-set schema on the request")
	}
}

func TestGeneratorQuestionSetAvoidListCapped(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(goodSetResponse)},
	)
	cfg := DefaultGeneratorConfig()
	cfg.MaxAvoid = 2
	g := NewGenerator(mock, cfg)

	_, err := g.QuestionSet(context.Background(), SetRequest{
		Topic: "fractions",
		Count: 2,
		Level: quiz.Easy,
		Avoid: []string{"one", "two", "three", "four"},
	})
	if err != nil {
		t.Fatalf("question set: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	if strings.Contains(msg, "one") || strings.Contains(msg, "two") {
		t.Errorf("oldest avoid entries should be dropped, got:\n%s", msg)
	}
	if !strings.Contains(msg, "three") || !strings.Contains(msg, "four") {
		t.Errorf("newest avoid entries should be kept, got:\n%s", msg)
	}
}

func TestGeneratorQuestionSetRejectsInvalid(t *testing.T) {
	// Correct answer missing from the options.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{
			"topic": "t",
			"questions": [{
				"type": "multiple_choice",
				"prompt": "Pick.",
				"options": ["a", "b", "c", "d"],
				"correct": ["z"],
				"difficulty": "easy",
				"points": 5,
				"hint": "",
				"explanation": "x"
			}]
		}`)},
	)
	g := NewGenerator(mock, DefaultGeneratorConfig())

	_, err := g.QuestionSet(context.Background(), SetRequest{Topic: "t", Count: 1})
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestGeneratorLesson(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{
			"title": "Understanding Fractions",
			"chapters": [
				{"title": "Parts of a whole", "length_secs": 120, "notes": "A fraction names part of a whole."},
				{"title": "Equivalent fractions", "length_secs": 180, "notes": "Different fractions can name the same amount."}
			],
			"key_points": [
				{"title": "Numerator counts parts", "at_secs": 40},
				{"title": "Multiply top and bottom alike", "at_secs": 200}
			]
		}`)},
	)
	g := NewGenerator(mock, DefaultGeneratorConfig())

	lesson, err := g.Lesson(context.Background(), "fractions")
	if err != nil {
		t.Fatalf("lesson: %v", err)
	}

	if lesson.Title != "Understanding Fractions" {
		t.Errorf("title = %q", lesson.Title)
	}
	if len(lesson.Chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(lesson.Chapters))
	}

	// Chapters are laid out back to back from zero.
	if lesson.Chapters[0].Start != 0 || lesson.Chapters[0].End != 120 {
		t.Errorf("chapter 1 = [%v, %v), want [0, 120)", lesson.Chapters[0].Start, lesson.Chapters[0].End)
	}
	if lesson.Chapters[1].Start != 120 || lesson.Chapters[1].End != 300 {
		t.Errorf("chapter 2 = [%v, %v), want [120, 300)", lesson.Chapters[1].Start, lesson.Chapters[1].End)
	}

	if lesson.Notes[lesson.Chapters[0].ID] == "" {
		t.Error("expected notes for the first chapter")
	}

	tl, err := lesson.Timeline()
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	if tl.Duration() != 300 {
		t.Errorf("duration = %v, want 300", tl.Duration())
	}
	if len(tl.Markers()) != 2 {
		t.Errorf("expected 2 markers, got %d", len(tl.Markers()))
	}
}

func TestGeneratorLessonRejectsMarkerPastEnd(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{
			"title": "Short",
			"chapters": [{"title": "Only", "length_secs": 60, "notes": "n"}],
			"key_points": [{"title": "Too late", "at_secs": 999}]
		}`)},
	)
	g := NewGenerator(mock, DefaultGeneratorConfig())

	if _, err := g.Lesson(context.Background(), "short"); err == nil {
		t.Fatal("expected validation error")
	}
}

