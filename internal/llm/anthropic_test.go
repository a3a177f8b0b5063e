package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func newTestAnthropicProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
	)
	return &AnthropicProvider{
		client: &client,
		model:  "claude-sonnet-4-20250514",
	}
}

func anthropicMessage(text, stopReason string) map[string]any {
	return map[string]any{
		"id":   "msg_test",
		"type": "message",
		"role": "assistant",
		"content": []map[string]any{
			{"type": "text", "text": text},
		},
		"model":       "claude-sonnet-4-20250514",
		"stop_reason": stopReason,
		"usage": map[string]any{
			"input_tokens":  50,
			"output_tokens": 30,
		},
	}
}

func TestAnthropicComplete(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage(
			`{"headline":"Dev server speed","body":"Vite serves source over native ESM, so startup skips bundling."}`,
			"end_turn",
		))
	}

	p := newTestAnthropicProvider(t, handler)
	res, err := p.Complete(context.Background(), Task{
		Purpose:   "insight",
		System:    "You are a Vite tutor.",
		Prompt:    "Explain why the dev server starts fast.",
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Tokens.Input != 50 || res.Tokens.Output != 30 {
		t.Fatalf("unexpected token counts: %+v", res.Tokens)
	}
	var body struct {
		Headline string `json:"headline"`
	}
	if err := json.Unmarshal(res.JSON, &body); err != nil {
		t.Fatalf("result is not the returned JSON: %v", err)
	}
	if body.Headline != "Dev server speed" {
		t.Fatalf("unexpected headline: %q", body.Headline)
	}
}

func TestAnthropicTruncation(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage(`{"headline":"Dev serv`, "max_tokens"))
	}

	p := newTestAnthropicProvider(t, handler)
	_, err := p.Complete(context.Background(), Task{Prompt: "go", MaxTokens: 8})
	var trunc *ErrTruncated
	if !errors.As(err, &trunc) {
		t.Fatalf("expected ErrTruncated, got: %T (%v)", err, err)
	}
}

func TestAnthropicRateLimit(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"type": "error",
			"error": map[string]any{
				"type":    "rate_limit_error",
				"message": "Rate limit exceeded",
			},
		})
	}

	p := newTestAnthropicProvider(t, handler)
	_, err := p.Complete(context.Background(), Task{Prompt: "go", MaxTokens: 100})
	var rl *ErrRateLimited
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimited, got: %T (%v)", err, err)
	}
}

func TestAnthropicServerError(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"type": "error",
			"error": map[string]any{
				"type":    "api_error",
				"message": "Internal server error",
			},
		})
	}

	p := newTestAnthropicProvider(t, handler)
	_, err := p.Complete(context.Background(), Task{Prompt: "go", MaxTokens: 100})
	var unavail *ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrUnavailable, got: %T (%v)", err, err)
	}
}

func TestCanonicalModel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"claude-sonnet", "claude-sonnet-4-20250514"},
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-sonnet-4-20250514", "claude-sonnet-4-20250514"}, // Pass-through
	}
	for _, tt := range tests {
		got := canonicalModel(tt.input, anthropicAliases)
		if got != tt.expected {
			t.Errorf("canonicalModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
