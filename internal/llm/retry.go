package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retrier re-runs transient failures with exponential backoff.
type retrier struct {
	next Provider
	cfg  RetryConfig
}

// WithRetries wraps a provider so rate limits, outages, and other
// transport errors are retried. Unusable output gets exactly one more
// chance; truncation and context cancellation fail immediately.
func WithRetries(p Provider, cfg RetryConfig) Provider {
	return &retrier{next: p, cfg: cfg}
}

func (r *retrier) Complete(ctx context.Context, task Task) (*Result, error) {
	badOutputs := 0
	var err error

	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		var res *Result
		res, err = r.next.Complete(ctx, task)
		if err == nil {
			return res, nil
		}

		wait, retryable := classify(err, &badOutputs)
		if !retryable || attempt == r.cfg.MaxAttempts-1 {
			return nil, err
		}
		if wait == 0 {
			wait = r.pause(attempt)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
	return nil, err
}

func (r *retrier) ModelID() string { return r.next.ModelID() }

// classify decides whether err deserves another attempt, returning the
// provider-mandated wait when it named one.
func classify(err error, badOutputs *int) (time.Duration, bool) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return 0, false
	}

	var truncated *ErrTruncated
	if errors.As(err, &truncated) {
		return 0, false
	}

	// Models occasionally emit malformed JSON once and get it right on a
	// second ask; past that the prompt or schema is the problem.
	var bad *ErrBadOutput
	if errors.As(err, &bad) {
		*badOutputs++
		return 0, *badOutputs <= 1
	}

	var limited *ErrRateLimited
	if errors.As(err, &limited) {
		return limited.RetryAfter, true
	}

	// Outages and unknown transport errors are presumed transient.
	return 0, true
}

// pause is exponential backoff with ±20% jitter, capped at MaxWait.
func (r *retrier) pause(attempt int) time.Duration {
	wait := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	wait = math.Min(wait, float64(r.cfg.MaxWait))
	wait *= 1 + 0.2*(2*rand.Float64()-1)
	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
