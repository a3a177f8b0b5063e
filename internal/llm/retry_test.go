package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetrySucceedsOnFirstAttempt(t *testing.T) {
	mock := NewMockProvider(
		MockResult{JSON: json.RawMessage(`{"headline":"ok"}`)},
	)
	p := WithRetries(mock, retryConfig())

	res, err := p.Complete(context.Background(), Task{Purpose: "insight"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(res.JSON) != `{"headline":"ok"}` {
		t.Fatalf("unexpected output: %s", res.JSON)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetryOutageThenSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResult{Err: &ErrUnavailable{Err: errors.New("down")}},
		MockResult{JSON: json.RawMessage(`{"headline":"ok"}`)},
	)
	p := WithRetries(mock, retryConfig())

	res, err := p.Complete(context.Background(), Task{Purpose: "insight"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(res.JSON) != `{"headline":"ok"}` {
		t.Fatalf("unexpected output: %s", res.JSON)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetryAllAttemptsFail(t *testing.T) {
	mock := NewMockProvider(
		MockResult{Err: &ErrUnavailable{Err: errors.New("down")}},
		MockResult{Err: &ErrUnavailable{Err: errors.New("down")}},
		MockResult{Err: &ErrUnavailable{Err: errors.New("down")}},
	)
	p := WithRetries(mock, retryConfig())

	_, err := p.Complete(context.Background(), Task{Purpose: "insight"})
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetryTruncationNotRetried(t *testing.T) {
	// A truncated answer means the token budget is wrong; asking again
	// with the same budget cannot help.
	mock := NewMockProvider(
		MockResult{Err: &ErrTruncated{Raw: json.RawMessage(`{"headline":"Dev`)}},
	)
	p := WithRetries(mock, retryConfig())

	_, err := p.Complete(context.Background(), Task{Purpose: "insight"})
	var trunc *ErrTruncated
	if !errors.As(err, &trunc) {
		t.Fatalf("expected ErrTruncated, got: %T", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call (no retry), got %d", mock.CallCount())
	}
}

func TestRetryBadOutputRetriedOnce(t *testing.T) {
	mock := NewMockProvider(
		MockResult{Err: &ErrBadOutput{Raw: json.RawMessage(`not json`), Err: errors.New("not JSON")}},
		MockResult{Err: &ErrBadOutput{Raw: json.RawMessage(`not json`), Err: errors.New("not JSON")}},
		MockResult{JSON: json.RawMessage(`{"headline":"ok"}`)}, // Never reached.
	)
	p := WithRetries(mock, retryConfig())

	_, err := p.Complete(context.Background(), Task{Purpose: "insight"})
	if err == nil {
		t.Fatal("expected error")
	}
	// One retry for a malformed answer, then give up.
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetryContextCancellation(t *testing.T) {
	mock := NewMockProvider(
		MockResult{Err: &ErrUnavailable{Err: errors.New("down")}},
		MockResult{Err: &ErrUnavailable{Err: errors.New("down")}},
		MockResult{JSON: json.RawMessage(`{"headline":"ok"}`)},
	)
	p := WithRetries(mock, retryConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Complete(ctx, Task{Purpose: "insight"})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestRetryRateLimitHonorsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResult{Err: &ErrRateLimited{RetryAfter: 1 * time.Millisecond, Err: errors.New("429")}},
		MockResult{JSON: json.RawMessage(`{"headline":"ok"}`)},
	)
	p := WithRetries(mock, retryConfig())

	res, err := p.Complete(context.Background(), Task{Purpose: "insight"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(res.JSON) != `{"headline":"ok"}` {
		t.Fatalf("unexpected output: %s", res.JSON)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetryModelIDDelegates(t *testing.T) {
	mock := NewMockProvider()
	p := WithRetries(mock, retryConfig())
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}
