package llm

import "context"

// Purpose labels for the event log. Every caller that talks to a
// provider tags its context with one of these so `arogya llm list`
// can tell an analysis request from a translation.
const (
	PurposeAnalysis    = "symptom-analysis"
	PurposeChat        = "follow-up-chat"
	PurposeTranslation = "translation"
)

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose tags the context with a purpose label for event logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom returns the context's purpose label, or "unknown" for an
// untagged context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
