package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// The error taxonomy below drives two decisions downstream: whether the
// retry decorator tries again, and whether the analysis service falls
// back to its rule-based answer. Every provider maps its SDK errors
// into one of these types.

// ErrProviderUnavailable covers network failures and provider 5xx
// responses. Retryable; the analysis service treats an exhausted retry
// as "offline" and answers from local rules.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err == nil {
		return "LLM provider unavailable"
	}
	return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrRateLimit is a provider 429. RetryAfter, when the provider sent
// one, overrides the backoff schedule.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse means the model's output failed schema validation.
// Analysis payloads are never patched up locally; a response missing an
// urgency level is rejected whole. Content carries the offending JSON
// for the event log.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded means the response hit the request's token cap
// and was truncated. Not retryable: the same request hits the same cap.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// ErrSafetyBlocked means the provider's safety filter refused to
// answer. Symptom descriptions that mention self-harm, overdose, or
// violence can trip these filters. Not retryable: the same text trips
// the same filter.
type ErrSafetyBlocked struct {
	Reason string
	Err    error
}

func (e *ErrSafetyBlocked) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("LLM refused on safety grounds (%s)", e.Reason)
	}
	return "LLM refused on safety grounds"
}

func (e *ErrSafetyBlocked) Unwrap() error { return e.Err }
