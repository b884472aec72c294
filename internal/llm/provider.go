package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single seam between arogya and a hosted model. The
// analysis service sends one-shot structured requests (symptom
// analysis, translation) and multi-turn free-text requests (the
// follow-up chat) through the same interface, so providers are
// interchangeable and the whole app degrades to its rule-based
// fallback when none is configured.
type Provider interface {
	// Generate sends the request and returns the model's output. When
	// req.Schema is set the provider uses its native structured-output
	// mechanism and the returned Content is schema-validated JSON; the
	// caller may unmarshal it without re-checking shape.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model, for the event log and the
	// llm status command.
	ModelID() string
}

// Request describes one call to the model.
type Request struct {
	// System sets the model's role and constraints. Arogya's system
	// prompts always pin the medical-disclaimer and
	// no-diagnosis-no-prescription rules here rather than in user turns.
	System string

	// Messages is the conversation. Symptom analysis and translation
	// send a single user turn; the follow-up chat replays prior turns.
	Messages []Message

	// Schema, when set, is the JSON Schema the response must satisfy.
	// When nil the response Content is the raw text as a JSON string.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0, 1]. Zero value means deterministic, which is
	// what every arogya request uses: health guidance should not vary
	// between runs for the same symptoms.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON structure expected back.
type Schema struct {
	// Name identifies the schema to the provider (tool name for
	// Anthropic, schema name for OpenAI) and keys the local compile
	// cache. Kebab-case, e.g. "symptom-analysis".
	Name string

	// Description guides generation; sent to the model.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is validated JSON when the request carried a Schema,
	// otherwise the raw text wrapped as a JSON string.
	Content json.RawMessage

	// Usage reports token consumption, recorded in the event log and
	// priced by the llm list command.
	Usage Usage

	// Model is the model that actually served the request, which can
	// differ from the configured one behind gateways like OpenRouter.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage is token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
