package content

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/anirudh/studyloop/internal/quiz"
)

// FileSource loads study material from JSON fixture files laid out as
// <dir>/quizzes/<topic>.json and <dir>/lessons/<id>.json.
type FileSource struct {
	dir string
}

// NewFileSource creates a FileSource rooted at dir.
func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

// questionFile is the on-disk quiz fixture format.
type questionFile struct {
	Topic     string          `json:"topic"`
	Questions []quiz.Question `json:"questions"`
}

func (s *FileSource) QuestionSet(_ context.Context, req SetRequest) ([]quiz.Question, error) {
	path := filepath.Join(s.dir, "quizzes", req.Topic+".json")
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question set %q: %w", req.Topic, err)
	}

	var file questionFile
	if err := json.Unmarshal(b, &file); err != nil {
		return nil, fmt.Errorf("parse question set %q: %w", req.Topic, err)
	}

	questions := file.Questions
	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = uuid.NewString()
		}
		if questions[i].Topic == "" {
			questions[i].Topic = file.Topic
		}
	}

	if err := validateQuestions(questions); err != nil {
		return nil, fmt.Errorf("question set %q: %w", req.Topic, err)
	}

	// Prefer questions at the requested level, then fill with the rest
	// in file order.
	var atLevel, others []quiz.Question
	for _, q := range questions {
		if q.Difficulty == req.Level {
			atLevel = append(atLevel, q)
		} else {
			others = append(others, q)
		}
	}
	ordered := append(atLevel, others...)

	if req.Count > 0 && len(ordered) > req.Count {
		ordered = ordered[:req.Count]
	}
	return ordered, nil
}

func (s *FileSource) Lesson(_ context.Context, id string) (*Lesson, error) {
	path := filepath.Join(s.dir, "lessons", id+".json")
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lesson %q: %w", id, err)
	}

	var lesson Lesson
	if err := json.Unmarshal(b, &lesson); err != nil {
		return nil, fmt.Errorf("parse lesson %q: %w", id, err)
	}
	if lesson.ID == "" {
		lesson.ID = id
	}

	if err := validateLesson(&lesson); err != nil {
		return nil, fmt.Errorf("lesson %q: %w", id, err)
	}
	return &lesson, nil
}

// ListLessons returns the lesson IDs available under the fixture dir.
func (s *FileSource) ListLessons() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.dir, "lessons"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list lessons: %w", err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		ids = append(ids, name[:len(name)-len(".json")])
	}
	return ids, nil
}
