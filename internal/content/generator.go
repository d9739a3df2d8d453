package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/anirudh/studyloop/internal/llm"
	"github.com/anirudh/studyloop/internal/quiz"
	"github.com/anirudh/studyloop/internal/video"
)

// GeneratorConfig controls the LLM-backed Source.
type GeneratorConfig struct {
	// MaxTokens is the token budget per generation call.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64

	// MaxAvoid caps how many already-seen prompts go into the prompt.
	MaxAvoid int
}

// DefaultGeneratorConfig returns the recommended generation settings.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		MaxTokens:   4096,
		Temperature: 0.7,
		MaxAvoid:    12,
	}
}

// Generator is an LLM-backed Source. Question sets come from
// QuestionSetSchema-constrained generation; lessons are outlined by
// topic, with Lesson's id argument doubling as the topic.
type Generator struct {
	provider llm.Provider
	cfg      GeneratorConfig
}

// NewGenerator creates a Generator with the given provider and config.
func NewGenerator(provider llm.Provider, cfg GeneratorConfig) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

// setOutput is the raw question-set response before validation.
type setOutput struct {
	Topic     string `json:"topic"`
	Questions []struct {
		Type        string   `json:"type"`
		Prompt      string   `json:"prompt"`
		Options     []string `json:"options"`
		Correct     []string `json:"correct"`
		Difficulty  string   `json:"difficulty"`
		Points      int      `json:"points"`
		Hint        string   `json:"hint"`
		Explanation string   `json:"explanation"`
	} `json:"questions"`
}

func (g *Generator) QuestionSet(ctx context.Context, req SetRequest) ([]quiz.Question, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	if g.cfg.MaxAvoid > 0 && len(req.Avoid) > g.cfg.MaxAvoid {
		req.Avoid = req.Avoid[len(req.Avoid)-g.cfg.MaxAvoid:]
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: quizSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuizMessage(req)},
		},
		Schema:      QuestionSetSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate question set: %w", err)
	}

	var raw setOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse question set response: %w", err)
	}

	topic := raw.Topic
	if topic == "" {
		topic = req.Topic
	}

	questions := make([]quiz.Question, 0, len(raw.Questions))
	for _, rq := range raw.Questions {
		questions = append(questions, quiz.Question{
			ID:            uuid.NewString(),
			Type:          quiz.QuestionType(rq.Type),
			Prompt:        rq.Prompt,
			Options:       rq.Options,
			CorrectValues: rq.Correct,
			Difficulty:    quiz.ParseDifficulty(rq.Difficulty),
			Topic:         topic,
			Points:        rq.Points,
			Hint:          rq.Hint,
			Explanation:   rq.Explanation,
		})
	}

	if err := validateQuestions(questions); err != nil {
		return nil, fmt.Errorf("generated question set: %w", err)
	}
	return questions, nil
}

// outlineOutput is the raw lesson-outline response before validation.
type outlineOutput struct {
	Title    string `json:"title"`
	Chapters []struct {
		Title      string `json:"title"`
		LengthSecs int    `json:"length_secs"`
		Notes      string `json:"notes"`
	} `json:"chapters"`
	KeyPoints []struct {
		Title  string `json:"title"`
		AtSecs int    `json:"at_secs"`
	} `json:"key_points"`
}

func (g *Generator) Lesson(ctx context.Context, topic string) (*Lesson, error) {
	ctx = llm.WithPurpose(ctx, "lesson-gen")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: lessonSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildLessonMessage(topic, quiz.Medium)},
		},
		Schema:      LessonOutlineSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate lesson outline: %w", err)
	}

	var raw outlineOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse lesson outline response: %w", err)
	}

	lesson := &Lesson{
		ID:    uuid.NewString(),
		Title: raw.Title,
		Topic: topic,
		Notes: make(map[string]string, len(raw.Chapters)),
	}

	// Chapter extents are laid out back to back from zero.
	var at float64
	for i, rc := range raw.Chapters {
		id := fmt.Sprintf("ch%d", i+1)
		end := at + float64(rc.LengthSecs)
		lesson.Chapters = append(lesson.Chapters, video.Chapter{
			ID:    id,
			Title: rc.Title,
			Start: at,
			End:   end,
		})
		lesson.Notes[id] = rc.Notes
		at = end
	}

	for i, kp := range raw.KeyPoints {
		lesson.Markers = append(lesson.Markers, video.Marker{
			ID:    fmt.Sprintf("kp%d", i+1),
			Title: kp.Title,
			Time:  float64(kp.AtSecs),
			Kind:  "key_point",
		})
	}

	if err := validateLesson(lesson); err != nil {
		return nil, fmt.Errorf("generated lesson: %w", err)
	}
	return lesson, nil
}
