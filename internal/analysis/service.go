package analysis

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/abhisek/arogya/internal/i18n"
	"github.com/abhisek/arogya/internal/llm"
	"github.com/abhisek/arogya/internal/triage"
)

// Generation parameters for the two call shapes.
const (
	analysisMaxTokens   = 1000
	analysisTemperature = 0.3
	chatMaxTokens       = 800
	chatTemperature     = 0.4
)

// Service runs symptom analysis and the follow-up chat. A nil provider
// means offline mode: the deterministic fallback handles everything.
type Service struct {
	provider   llm.Provider
	translator i18n.Translator
}

// NewService creates a Service backed by the given provider. Pass nil
// to run fully offline.
func NewService(provider llm.Provider) *Service {
	return &Service{
		provider:   provider,
		translator: newTranslator(provider),
	}
}

// Analyze evaluates the patient input. The emergency gate runs first
// and short-circuits the LLM entirely when it fires; otherwise the
// provider is consulted, and any provider failure degrades to the
// local fallback. Analyze never fails: there is always a result.
func (s *Service) Analyze(ctx context.Context, input triage.PatientInput) *Result {
	c := triage.Classify(input)
	if c.IsEmergency {
		return emergencyResult(c)
	}

	if s.provider == nil {
		return fallbackResult(input)
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeAnalysis)
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      analysisSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildAnalysisPrompt(input)}},
		Schema:      analysisSchema(),
		MaxTokens:   analysisMaxTokens,
		Temperature: analysisTemperature,
	})
	if err != nil {
		return fallbackResult(input)
	}

	result, err := decodeResult(resp.Content)
	if err != nil {
		return fallbackResult(input)
	}
	result.Source = SourceAI
	return result
}

// Chat answers a follow-up question about a prior analysis. Provider
// failures degrade to the canned assistant; Chat never fails.
func (s *Service) Chat(ctx context.Context, question string, input triage.PatientInput, prior *Result) string {
	if s.provider == nil {
		return fallbackChatAnswer(question)
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeChat)
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      chatSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildChatPrompt(question, input, prior)}},
		MaxTokens:   chatMaxTokens,
		Temperature: chatTemperature,
	})
	if err != nil {
		return fallbackChatAnswer(question)
	}

	answer := strings.TrimSpace(decodeText(resp.Content))
	if answer == "" {
		return fallbackChatAnswer(question)
	}
	return answer
}

// emergencyResult synthesizes the analysis shown when the emergency
// gate fires. The LLM is never consulted for emergencies.
func emergencyResult(c triage.Classification) *Result {
	bundle := triage.Recommendations(c)

	recs := make([]Recommendation, 0, len(bundle.Immediate))
	for _, action := range bundle.Immediate {
		recs = append(recs, Recommendation{Action: action, Priority: "critical"})
	}

	return &Result{
		IsEmergency: true,
		Urgency:     UrgencyEmergency,
		Conditions: []Condition{{
			Name:        "EMERGENCY SITUATION DETECTED",
			Probability: clampPercent(int(c.Confidence * 100)),
			Description: c.Reason,
		}},
		Recommendations: recs,
		WhenToSeekHelp: []string{
			"Immediately - this is a potential emergency",
			"Call 911 (US) or 108 (India) now",
		},
		Avoid:          bundle.Avoid,
		Disclaimer:     "EMERGENCY DETECTED: Seek immediate professional medical attention.",
		Source:         SourceEmergency,
		Classification: &c,
	}
}

// decodeText unwraps provider content that may arrive either as a bare
// string or as a JSON-encoded string.
func decodeText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
