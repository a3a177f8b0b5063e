package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResult scripts one answer for the MockProvider.
type MockResult struct {
	JSON   json.RawMessage
	Tokens TokenCount
	Err    error
}

// MockProvider replays scripted results in order and records every task it
// was handed. An exhausted script fails like an unreachable provider,
// which makes degraded paths easy to test.
type MockProvider struct {
	mu     sync.Mutex
	script []MockResult

	// Tasks holds every task passed to Complete, oldest first.
	Tasks []Task
}

// NewMockProvider creates a mock that replays the given results.
func NewMockProvider(script ...MockResult) *MockProvider {
	return &MockProvider{script: script}
}

func (m *MockProvider) Complete(_ context.Context, task Task) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Tasks = append(m.Tasks, task)

	if len(m.script) == 0 {
		return nil, &ErrUnavailable{}
	}
	next := m.script[0]
	m.script = m.script[1:]

	if next.Err != nil {
		return nil, next.Err
	}
	return &Result{JSON: next.JSON, Tokens: next.Tokens, Model: "mock"}, nil
}

func (m *MockProvider) ModelID() string { return "mock" }

// Script appends another scripted result.
func (m *MockProvider) Script(r MockResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, r)
}

// CallCount reports how many tasks the mock has seen.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Tasks)
}
