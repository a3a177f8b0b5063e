// Package tutor generates short AI insights for lessons. Generation runs in
// the background so the UI never blocks on a provider; a failed request
// degrades to a fixed offline insight instead of an error.
package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"viteroad/internal/llm"
)

// Service generates lesson insights asynchronously.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Insight
	ready   bool
}

// NewService creates an insight service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// RequestInsight starts async insight generation. Only one insight is
// in-flight at a time — new requests replace pending ones. Failures are
// absorbed: the pending slot gets the offline fallback instead.
func (s *Service) RequestInsight(ctx context.Context, input InsightInput) {
	go func() {
		insight, err := s.Insight(ctx, input)
		if err != nil {
			insight = Fallback(input.Lesson.ID)
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = insight
		s.ready = true
	}()
}

// ConsumeInsight returns the pending insight if one is ready.
// Returns (nil, false) if no insight is ready yet.
// After consumption, the pending slot is cleared.
func (s *Service) ConsumeInsight() (*Insight, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	insight := s.pending
	s.pending = nil
	s.ready = false
	return insight, insight != nil
}

type insightOutput struct {
	Headline  string   `json:"headline"`
	Body      string   `json:"body"`
	KeyPoints []string `json:"key_points"`
}

// Insight generates a single insight synchronously.
func (s *Service) Insight(ctx context.Context, input InsightInput) (*Insight, error) {
	task := llm.Task{
		Purpose:     "insight",
		System:      insightSystemPrompt,
		Prompt:      buildInsightUserMessage(input),
		Schema:      InsightSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	res, err := s.provider.Complete(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("insight generation: %w", err)
	}

	var out insightOutput
	if err := json.Unmarshal(res.JSON, &out); err != nil {
		return nil, fmt.Errorf("parse insight response: %w", err)
	}

	return &Insight{
		LessonID:  input.Lesson.ID,
		Headline:  out.Headline,
		Body:      out.Body,
		KeyPoints: out.KeyPoints,
	}, nil
}

// Fallback returns the fixed insight shown when no provider is reachable.
func Fallback(lessonID string) *Insight {
	return &Insight{
		LessonID: lessonID,
		Headline: "Tutor offline",
		Body: "No AI provider is reachable right now. The lesson text and its " +
			"code snippet cover everything needed to pass the quiz; the tutor " +
			"only adds extra depth.",
		KeyPoints: []string{
			"Set an API key to enable the tutor",
			"Lessons work fully without it",
		},
	}
}
