package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/anirudh/studyloop/internal/quiz"
)

func writeFixture(t *testing.T, dir, sub, name, body string) {
	t.Helper()
	full := filepath.Join(dir, sub)
	if err := os.MkdirAll(full, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", full, err)
	}
	if err := os.WriteFile(filepath.Join(full, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

const fractionsQuiz = `{
	"topic": "fractions",
	"questions": [
		{
			"id": "q1",
			"type": "multiple_choice",
			"prompt": "What is 1/2 + 1/4?",
			"options": ["1/4", "2/4", "3/4", "4/4"],
			"correct": ["3/4"],
			"difficulty": "easy",
			"points": 10
		},
		{
			"type": "short_answer",
			"prompt": "Reduce 6/8 to lowest terms.",
			"correct": ["3/4"],
			"difficulty": "medium",
			"points": 10
		},
		{
			"type": "true_false",
			"prompt": "2/3 is greater than 3/4.",
			"options": ["True", "False"],
			"correct": ["False"],
			"difficulty": "hard",
			"points": 5
		}
	]
}`

func TestFileSourceQuestionSet(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "quizzes", "fractions.json", fractionsQuiz)

	src := NewFileSource(dir)
	questions, err := src.QuestionSet(context.Background(), SetRequest{
		Topic: "fractions",
		Count: 10,
		Level: quiz.Easy,
	})
	if err != nil {
		t.Fatalf("question set: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}

	// Requested level comes first.
	if questions[0].Difficulty != quiz.Easy {
		t.Errorf("first question difficulty = %v, want easy", questions[0].Difficulty)
	}

	// Missing IDs and topics are filled in.
	if questions[1].ID == "" {
		t.Error("expected generated ID for question without one")
	}
	for i, q := range questions {
		if q.Topic != "fractions" {
			t.Errorf("question %d topic = %q, want fractions", i, q.Topic)
		}
	}
}

func TestFileSourceQuestionSetCount(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "quizzes", "fractions.json", fractionsQuiz)

	src := NewFileSource(dir)
	questions, err := src.QuestionSet(context.Background(), SetRequest{
		Topic: "fractions",
		Count: 2,
		Level: quiz.Medium,
	})
	if err != nil {
		t.Fatalf("question set: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
}

func TestFileSourceMissingTopic(t *testing.T) {
	src := NewFileSource(t.TempDir())
	_, err := src.QuestionSet(context.Background(), SetRequest{Topic: "nope"})
	if err == nil {
		t.Fatal("expected error for missing fixture")
	}
}

func TestFileSourceRejectsBadQuestions(t *testing.T) {
	dir := t.TempDir()
	// Correct answer not among the options.
	writeFixture(t, dir, "quizzes", "broken.json", `{
		"topic": "broken",
		"questions": [{
			"type": "multiple_choice",
			"prompt": "Pick one.",
			"options": ["a", "b", "c", "d"],
			"correct": ["e"],
			"difficulty": "easy",
			"points": 5
		}]
	}`)

	src := NewFileSource(dir)
	_, err := src.QuestionSet(context.Background(), SetRequest{Topic: "broken"})
	if err == nil {
		t.Fatal("expected validation error")
	}
}

const algebraLesson = `{
	"title": "Intro to Algebra",
	"topic": "algebra",
	"chapters": [
		{"id": "c1", "title": "Variables", "start": 0, "end": 120},
		{"id": "c2", "title": "Equations", "start": 120, "end": 300}
	],
	"markers": [
		{"id": "m1", "title": "What a variable is", "time": 30, "kind": "key_point"}
	],
	"notes": {"c1": "A variable stands for an unknown number."}
}`

func TestFileSourceLesson(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "lessons", "algebra-intro.json", algebraLesson)

	src := NewFileSource(dir)
	lesson, err := src.Lesson(context.Background(), "algebra-intro")
	if err != nil {
		t.Fatalf("lesson: %v", err)
	}
	if lesson.ID != "algebra-intro" {
		t.Errorf("ID = %q, want algebra-intro", lesson.ID)
	}
	if len(lesson.Chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(lesson.Chapters))
	}

	tl, err := lesson.Timeline()
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	if tl.Duration() != 300 {
		t.Errorf("duration = %v, want 300", tl.Duration())
	}
}

func TestFileSourceLessonRejectsMarkerPastEnd(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "lessons", "bad.json", `{
		"title": "Bad",
		"chapters": [{"id": "c1", "title": "Only", "start": 0, "end": 60}],
		"markers": [{"id": "m1", "title": "Too late", "time": 500}]
	}`)

	src := NewFileSource(dir)
	if _, err := src.Lesson(context.Background(), "bad"); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestListLessons(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "lessons", "a.json", algebraLesson)
	writeFixture(t, dir, "lessons", "b.json", algebraLesson)
	writeFixture(t, dir, "lessons", "notes.txt", "ignore me")

	src := NewFileSource(dir)
	ids, err := src.ListLessons()
	if err != nil {
		t.Fatalf("list lessons: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 lessons, got %d: %v", len(ids), ids)
	}
}
