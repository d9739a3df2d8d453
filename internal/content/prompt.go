package content

import (
	"fmt"
	"strings"

	"github.com/anirudh/studyloop/internal/quiz"
)

const quizSystemPrompt = `You are writing quiz questions for a self-study app.

Rules:
- Generate the requested number of questions on the given topic at the given difficulty.
- Use plain ASCII text. No LaTeX, no Unicode symbols.
- Each prompt must be clear and self-contained.
- For multiple_choice, provide exactly 4 options with exactly one correct. Distractors should reflect plausible mistakes, not random values.
- For true_false, the options are exactly ["True", "False"].
- For short_answer and fill_blank, leave options empty and put the expected answer text in "correct".
- The "correct" values for option types must match the option text exactly.
- Keep hints short and scaffolding, never a giveaway.
- Do not repeat any prompt from the "already seen" list.`

const lessonSystemPrompt = `You are outlining a self-study lesson for a study app with a chaptered player.

Rules:
- Break the topic into 3-6 chapters in a sensible learning order.
- Give each chapter an estimated study time in seconds (30-600) proportional to its substance.
- Write each chapter's notes as 3-6 plain-text sentences a learner reads while the chapter plays.
- List 2-6 key points with their offset into the lesson, each inside the total length.`

func buildQuizMessage(req SetRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	fmt.Fprintf(&b, "Questions: %d\n", req.Count)
	fmt.Fprintf(&b, "Difficulty: %s\n", req.Level)

	b.WriteString("\nAlready seen in this session:\n")
	if len(req.Avoid) == 0 {
		b.WriteString("None")
	} else {
		for i, p := range req.Avoid {
			fmt.Fprintf(&b, "%d. %s\n", i+1, p)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func buildLessonMessage(topic string, level quiz.Difficulty) string {
	return fmt.Sprintf("Topic: %s\nLearner level: %s", topic, level)
}
