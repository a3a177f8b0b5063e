package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"viteroad/internal/store"
)

// recordingEventRepo captures appended LLM events; everything else is a
// no-op.
type recordingEventRepo struct {
	requests  []store.LLMRequestEventData
	appendErr error
}

func (r *recordingEventRepo) AppendCompletion(context.Context, store.CompletionEventData) error {
	return nil
}
func (r *recordingEventRepo) AppendAnswer(context.Context, store.AnswerEventData) error   { return nil }
func (r *recordingEventRepo) AppendPractice(context.Context, store.PracticeEventData) error {
	return nil
}
func (r *recordingEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.requests = append(r.requests, data)
	return nil
}
func (r *recordingEventRepo) QueryCompletions(context.Context, store.QueryOpts) ([]store.CompletionEventRecord, error) {
	return nil, nil
}
func (r *recordingEventRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMRequestEventRecord, error) {
	return nil, nil
}
func (r *recordingEventRepo) GetLLMEvent(context.Context, int) (*store.LLMRequestEventRecord, error) {
	return nil, nil
}
func (r *recordingEventRepo) AnswerStats(context.Context) (store.AnswerStats, error) {
	return store.AnswerStats{}, nil
}
func (r *recordingEventRepo) PracticeStats(context.Context) (store.PracticeStats, error) {
	return store.PracticeStats{}, nil
}
func (r *recordingEventRepo) LLMStats(context.Context) (store.LLMStats, error) {
	return store.LLMStats{}, nil
}
func (r *recordingEventRepo) LLMUsageByPurpose(context.Context) ([]store.LLMPurposeUsage, error) {
	return nil, nil
}
func (r *recordingEventRepo) LLMUsageByModel(context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

func TestEventLogRecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResult{
		JSON:   json.RawMessage(`{"headline":"Pre-bundling"}`),
		Tokens: TokenCount{Input: 40, Output: 20},
	})
	repo := &recordingEventRepo{}
	p := WithEventLog(mock, "mock", repo)

	_, err := p.Complete(context.Background(), Task{
		Purpose: "insight",
		System:  "You are a Vite tutor.",
		Prompt:  "Explain dependency pre-bundling.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.requests) != 1 {
		t.Fatalf("expected 1 recorded event, got %d", len(repo.requests))
	}
	rec := repo.requests[0]
	if rec.Provider != "mock" || rec.Purpose != "insight" {
		t.Errorf("provider/purpose = %q/%q", rec.Provider, rec.Purpose)
	}
	if !rec.Success {
		t.Error("success not recorded")
	}
	if rec.InputTokens != 40 || rec.OutputTokens != 20 {
		t.Errorf("tokens = %d/%d", rec.InputTokens, rec.OutputTokens)
	}
	if !strings.Contains(rec.RequestBody, "[system]") || !strings.Contains(rec.RequestBody, "pre-bundling") {
		t.Errorf("request transcript incomplete: %q", rec.RequestBody)
	}
	if rec.ResponseBody != `{"headline":"Pre-bundling"}` {
		t.Errorf("response not recorded: %q", rec.ResponseBody)
	}
}

func TestEventLogRecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResult{Err: &ErrUnavailable{Err: errors.New("down")}})
	repo := &recordingEventRepo{}
	p := WithEventLog(mock, "mock", repo)

	_, err := p.Complete(context.Background(), Task{Purpose: "insight"})
	if err == nil {
		t.Fatal("expected the provider error through")
	}
	if len(repo.requests) != 1 {
		t.Fatalf("expected 1 recorded event, got %d", len(repo.requests))
	}
	rec := repo.requests[0]
	if rec.Success {
		t.Error("failure recorded as success")
	}
	if rec.ErrorMessage == "" {
		t.Error("error message not recorded")
	}
}

func TestEventLogWriteFailureDoesNotFailTask(t *testing.T) {
	mock := NewMockProvider(MockResult{JSON: json.RawMessage(`{}`)})
	repo := &recordingEventRepo{appendErr: errors.New("disk full")}
	p := WithEventLog(mock, "mock", repo)

	res, err := p.Complete(context.Background(), Task{Purpose: "insight"})
	if err != nil {
		t.Fatalf("recording failure must not fail the task: %v", err)
	}
	if res == nil {
		t.Fatal("expected a result")
	}
}
