// Package llm abstracts the hosted model providers used for content
// generation. Consumers send a Request and get schema-validated JSON
// back; which vendor serves it is a configuration detail.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Provider generates structured content from a prompt.
type Provider interface {
	// Generate sends the request and returns the response. When the
	// request carries a Schema, Content is JSON validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of conversation context.
type Message struct {
	Role    Role
	Content string
}

// Schema names a JSON Schema the response must conform to. Providers use
// their native structured-output mechanism where one exists, and the
// response is validated locally either way.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Request describes one generation call.
type Request struct {
	System      string
	Messages    []Message
	Schema      *Schema
	MaxTokens   int
	Temperature float64
}

// Usage reports token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Response is the provider output. StopReason is normalized to "end" or
// "max_tokens".
type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string
}

// ErrRateLimit is returned on a 429. RetryAfter may be zero.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse is returned when the model's output fails to parse
// or does not conform to the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid model response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrUnavailable is returned when the provider is unreachable or failing
// server-side.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model provider unavailable: %v", e.Err)
	}
	return "model provider unavailable"
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrTruncated is returned when generation stopped at the MaxTokens
// limit; the configured budget, not the request, is at fault, so it is
// never retried.
type ErrTruncated struct {
	Content json.RawMessage
}

func (e *ErrTruncated) Error() string {
	return "model response truncated at max tokens"
}

// resolveModel maps a friendly model alias to a vendor model ID,
// passing unknown names through so direct IDs keep working.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
