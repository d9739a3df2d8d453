package content

import (
	"context"

	"github.com/anirudh/studyloop/internal/quiz"
)

// Source produces study material. Implementations: FileSource (JSON
// fixtures on disk) and Generator (LLM-backed).
type Source interface {
	// QuestionSet returns questions matching the request. Implementations
	// may return fewer than Count when the backing material runs short.
	QuestionSet(ctx context.Context, req SetRequest) ([]quiz.Question, error)

	// Lesson returns the lesson with the given ID.
	Lesson(ctx context.Context, id string) (*Lesson, error)
}
