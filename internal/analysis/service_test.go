package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/arogya/internal/llm"
	"github.com/abhisek/arogya/internal/triage"
)

func TestAnalyze_EmergencyShortCircuitsProvider(t *testing.T) {
	mock := llm.NewMockProvider()
	s := NewService(mock)

	got := s.Analyze(context.Background(), triage.PatientInput{FreeText: "crushing chest pain"})
	if !got.IsEmergency {
		t.Fatal("expected emergency result")
	}
	if got.Urgency != UrgencyEmergency {
		t.Errorf("got urgency %q, want emergency", got.Urgency)
	}
	if got.Source != SourceEmergency {
		t.Errorf("got source %q, want emergency", got.Source)
	}
	if mock.CallCount() != 0 {
		t.Errorf("got %d provider calls, want 0 for emergencies", mock.CallCount())
	}
	if got.Classification == nil || got.Classification.Type != string(triage.CategoryCardiac) {
		t.Errorf("got classification %+v, want cardiac attached", got.Classification)
	}
	if got.Conditions[0].Name != "EMERGENCY SITUATION DETECTED" {
		t.Errorf("got condition %q", got.Conditions[0].Name)
	}
	if got.Conditions[0].Probability != 95 {
		t.Errorf("got probability %d, want 95", got.Conditions[0].Probability)
	}
	// Recommendations come from the cardiac bundle, all critical.
	if len(got.Recommendations) == 0 {
		t.Fatal("expected recommendations")
	}
	for _, r := range got.Recommendations {
		if r.Priority != "critical" {
			t.Errorf("got priority %q, want critical", r.Priority)
		}
	}
	if len(got.Avoid) == 0 {
		t.Error("expected avoid actions from the bundle")
	}
}

func TestAnalyze_ProviderResponse(t *testing.T) {
	payload := `{
		"urgencyLevel": "low",
		"possibleConditions": [
			{"condition": "Seasonal Allergy", "probability": 70, "description": "Pollen-triggered rhinitis"}
		],
		"recommendations": [{"action": "Use a saline rinse", "priority": "low"}],
		"whenToSeekHelp": ["Wheezing develops"],
		"disclaimer": "Informational only."
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(payload)})
	s := NewService(mock)

	got := s.Analyze(context.Background(), triage.PatientInput{FreeText: "sneezing and itchy eyes", Severity: 2})
	if got.Source != SourceAI {
		t.Fatalf("got source %q, want ai", got.Source)
	}
	if got.Urgency != UrgencyLow {
		t.Errorf("got urgency %q, want low", got.Urgency)
	}
	if got.Conditions[0].Name != "Seasonal Allergy" || got.Conditions[0].Probability != 70 {
		t.Errorf("got condition %+v", got.Conditions[0])
	}
	if got.IsEmergency {
		t.Error("got emergency for a provider result, want none")
	}
	if mock.CallCount() != 1 {
		t.Errorf("got %d provider calls, want 1", mock.CallCount())
	}
	// The request carries the schema and the analysis parameters.
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "symptom-analysis" {
		t.Errorf("got schema %+v, want symptom-analysis", req.Schema)
	}
	if req.MaxTokens != analysisMaxTokens || req.Temperature != analysisTemperature {
		t.Errorf("got (%d, %f), want analysis parameters", req.MaxTokens, req.Temperature)
	}
}

func TestAnalyze_ProviderErrorFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	s := NewService(mock)

	got := s.Analyze(context.Background(), triage.PatientInput{FreeText: "runny nose", Severity: 2})
	if got.Source != SourceFallback {
		t.Errorf("got source %q, want fallback", got.Source)
	}
	if len(got.Conditions) == 0 || got.Disclaimer == "" {
		t.Error("fallback result must be fully displayable")
	}
}

func TestAnalyze_UnparseableResponseFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json at all`)})
	s := NewService(mock)

	got := s.Analyze(context.Background(), triage.PatientInput{FreeText: "runny nose"})
	if got.Source != SourceFallback {
		t.Errorf("got source %q, want fallback", got.Source)
	}
}

func TestAnalyze_NilProviderUsesFallback(t *testing.T) {
	s := NewService(nil)
	got := s.Analyze(context.Background(), triage.PatientInput{FreeText: "runny nose"})
	if got.Source != SourceFallback {
		t.Errorf("got source %q, want fallback", got.Source)
	}
}

func TestChat_ProviderAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"Rest and fluids help most mild colds."`)})
	s := NewService(mock)

	got := s.Chat(context.Background(), "what should I do?", triage.PatientInput{FreeText: "cold"}, nil)
	if got != "Rest and fluids help most mild colds." {
		t.Errorf("got %q", got)
	}
	req := mock.Calls[0]
	if req.Schema != nil {
		t.Error("chat requests must not carry a schema")
	}
	if req.MaxTokens != chatMaxTokens {
		t.Errorf("got max tokens %d, want %d", req.MaxTokens, chatMaxTokens)
	}
}

func TestChat_IncludesPriorContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"ok"`)})
	s := NewService(mock)

	prior := &Result{Conditions: []Condition{{Name: "Tension Headache"}}}
	s.Chat(context.Background(), "is this serious?", triage.PatientInput{FreeText: "headache", Severity: 4}, prior)

	content := mock.Calls[0].Messages[0].Content
	if !strings.Contains(content, "Tension Headache") {
		t.Errorf("got prompt without prior conditions:\n%s", content)
	}
}

func TestChat_ProviderErrorUsesCannedAnswer(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	s := NewService(mock)

	got := s.Chat(context.Background(), "which medication should I take?", triage.PatientInput{}, nil)
	if !strings.Contains(got, "cannot recommend specific medications") {
		t.Errorf("got %q, want the medication guidance", got)
	}
}

func TestChat_NilProvider(t *testing.T) {
	s := NewService(nil)
	got := s.Chat(context.Background(), "is this an emergency?", triage.PatientInput{}, nil)
	if !strings.Contains(got, "call your local emergency number") {
		t.Errorf("got %q, want the emergency guidance", got)
	}
}
