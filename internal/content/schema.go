package content

import "github.com/anirudh/studyloop/internal/llm"

// QuestionSetSchema defines the JSON schema for LLM question-set
// generation responses.
var QuestionSetSchema = &llm.Schema{
	Name:        "question-set",
	Description: "A set of quiz questions on a single topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topic": map[string]any{
				"type":        "string",
				"description": "The topic all questions belong to",
			},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"multiple_choice", "true_false", "short_answer", "fill_blank"},
							"description": "How the learner answers",
						},
						"prompt": map[string]any{
							"type":        "string",
							"description": "The question shown to the learner, plain text",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "4 options for multiple_choice, [\"True\",\"False\"] for true_false, empty otherwise",
						},
						"correct": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "The correct answer value(s). For option types, must match option text exactly.",
						},
						"difficulty": map[string]any{
							"type":        "string",
							"enum":        []any{"easy", "medium", "hard"},
							"description": "Difficulty band",
						},
						"points": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"description": "Points awarded for a correct answer",
						},
						"hint": map[string]any{
							"type":        "string",
							"description": "A short scaffolding hint, or empty",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct answer is correct, 1-3 sentences",
						},
					},
					"required":             []any{"type", "prompt", "options", "correct", "difficulty", "points", "hint", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"topic", "questions"},
		"additionalProperties": false,
	},
}

// LessonOutlineSchema defines the JSON schema for LLM lesson-outline
// generation responses. Chapter lengths are in seconds of estimated
// study time; the player treats them as timeline extents.
var LessonOutlineSchema = &llm.Schema{
	Name:        "lesson-outline",
	Description: "A chaptered lesson outline with study notes and key-point markers",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short lesson title (3-8 words)",
			},
			"chapters": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "Chapter title",
						},
						"length_secs": map[string]any{
							"type":        "integer",
							"minimum":     30,
							"description": "Estimated study time for the chapter in seconds",
						},
						"notes": map[string]any{
							"type":        "string",
							"description": "The chapter's study text, 3-6 sentences",
						},
					},
					"required":             []any{"title", "length_secs", "notes"},
					"additionalProperties": false,
				},
			},
			"key_points": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "The key point, 5-12 words",
						},
						"at_secs": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"description": "Offset into the lesson where this point lands",
						},
					},
					"required":             []any{"title", "at_secs"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "chapters", "key_points"},
		"additionalProperties": false,
	},
}
