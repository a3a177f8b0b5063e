// Package llm talks to hosted language models through one narrow surface:
// a single-turn, schema-bound completion. Every call the app makes asks for
// exactly one JSON document (a tutor insight), so there is no conversation
// history and no streaming — a Task goes in, a validated Result comes back.
package llm

import (
	"context"
	"encoding/json"
)

// Provider executes one completion task against a hosted model.
type Provider interface {
	// Complete runs a single-turn task. When the task carries a Schema,
	// the returned JSON has already been validated against it.
	Complete(ctx context.Context, task Task) (*Result, error)

	// ModelID reports the model this provider is configured for.
	ModelID() string
}

// Task is one self-contained ask: a system role, one user prompt, and the
// schema the answer must satisfy.
type Task struct {
	// Purpose labels the task in the event log, e.g. "insight".
	Purpose string

	System string
	Prompt string

	// Schema constrains the output. Nil means the raw text comes back
	// untouched as the JSON payload.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]; zero means deterministic.
	Temperature float64
}

// Result is the model's answer to a Task.
type Result struct {
	// JSON holds the output, schema-validated when the task had a Schema.
	JSON json.RawMessage

	Tokens TokenCount

	// Model is the concrete model that answered, which can be more
	// specific than the configured alias.
	Model string
}

// TokenCount tallies what a single call consumed.
type TokenCount struct {
	Input  int
	Output int
}

// Total returns input plus output tokens.
func (t TokenCount) Total() int { return t.Input + t.Output }
