package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrRateLimited reports a 429 from the provider.
type ErrRateLimited struct {
	// RetryAfter is the provider's requested pause, zero when it named
	// none.
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimited) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimited) Unwrap() error { return e.Err }

// ErrUnavailable reports a provider that is down or unreachable.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	if e.Err == nil {
		return "model provider unavailable"
	}
	return fmt.Sprintf("model provider unavailable: %v", e.Err)
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrBadOutput reports an answer that failed JSON parsing or schema
// validation.
type ErrBadOutput struct {
	Raw json.RawMessage
	Err error
}

func (e *ErrBadOutput) Error() string {
	return fmt.Sprintf("unusable model output: %v", e.Err)
}

func (e *ErrBadOutput) Unwrap() error { return e.Err }

// ErrTruncated reports an answer cut off by the token limit. Every task
// here expects one complete JSON document, so a truncated answer is
// unusable and the limit needs raising, not a retry.
type ErrTruncated struct {
	Raw json.RawMessage
}

func (e *ErrTruncated) Error() string {
	return "model output truncated at the token limit"
}
