package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func questionSchema() *Schema {
	return &Schema{
		Name:        "test-question",
		Description: "A single quiz question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"prompt":     map[string]any{"type": "string"},
				"points":     map[string]any{"type": "integer", "minimum": 0},
				"difficulty": map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			},
			"required": []any{"prompt", "points"},
		},
	}
}

func TestValidateResponseValid(t *testing.T) {
	raw := json.RawMessage(`{"prompt":"What is 6x7?","points":10,"difficulty":"easy"}`)
	if err := validateResponse(questionSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponseValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"prompt":"Name the capital of France.","points":5}`)
	if err := validateResponse(questionSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponseMissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"prompt":"Orphan question"}`)
	err := validateResponse(questionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseWrongType(t *testing.T) {
	raw := json.RawMessage(`{"prompt":"Q","points":"ten"}`)
	err := validateResponse(questionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseInvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"prompt":"Q","points":5,"difficulty":"brutal"}`)
	err := validateResponse(questionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseMalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(questionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseEmpty(t *testing.T) {
	if err := validateResponse(questionSchema(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponseNested(t *testing.T) {
	schema := &Schema{
		Name: "test-question-set",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"topic": map[string]any{"type": "string"},
				"questions": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"prompt": map[string]any{"type": "string"},
						},
						"required": []any{"prompt"},
					},
				},
			},
			"required": []any{"topic", "questions"},
		},
	}

	valid := json.RawMessage(`{"topic":"fractions","questions":[{"prompt":"1/2 + 1/4 = ?"}]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"topic":"fractions","questions":[{"answer":42}]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for missing prompt in item")
	}
}
