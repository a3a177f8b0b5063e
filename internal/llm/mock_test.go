package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockReplaysScriptInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResult{JSON: json.RawMessage(`{"headline":"first"}`), Tokens: TokenCount{Input: 10, Output: 5}},
		MockResult{JSON: json.RawMessage(`{"headline":"second"}`)},
	)

	res, err := mock.Complete(context.Background(), Task{Purpose: "insight", Prompt: "one"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(res.JSON) != `{"headline":"first"}` {
		t.Fatalf("unexpected first result: %s", res.JSON)
	}
	if res.Tokens.Total() != 15 {
		t.Fatalf("expected 15 total tokens, got %d", res.Tokens.Total())
	}

	res, err = mock.Complete(context.Background(), Task{Purpose: "insight", Prompt: "two"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(res.JSON) != `{"headline":"second"}` {
		t.Fatalf("unexpected second result: %s", res.JSON)
	}
}

func TestMockRecordsTasks(t *testing.T) {
	mock := NewMockProvider(MockResult{JSON: json.RawMessage(`{}`)})

	_, _ = mock.Complete(context.Background(), Task{Purpose: "insight", Prompt: "explain HMR"})

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 recorded call, got %d", mock.CallCount())
	}
	if mock.Tasks[0].Prompt != "explain HMR" {
		t.Fatalf("task not recorded: %+v", mock.Tasks[0])
	}
}

func TestMockExhaustedScriptFailsAsUnavailable(t *testing.T) {
	mock := NewMockProvider()

	_, err := mock.Complete(context.Background(), Task{Purpose: "insight"})
	var unavail *ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrUnavailable, got: %T (%v)", err, err)
	}
}

func TestMockScriptedError(t *testing.T) {
	boom := &ErrRateLimited{Err: errors.New("429")}
	mock := NewMockProvider(MockResult{Err: boom})

	_, err := mock.Complete(context.Background(), Task{Purpose: "insight"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the scripted error, got: %v", err)
	}
}

func TestMockScriptAppends(t *testing.T) {
	mock := NewMockProvider()
	mock.Script(MockResult{JSON: json.RawMessage(`{"headline":"late"}`)})

	res, err := mock.Complete(context.Background(), Task{Purpose: "insight"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(res.JSON) != `{"headline":"late"}` {
		t.Fatalf("unexpected result: %s", res.JSON)
	}
}
