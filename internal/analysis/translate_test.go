package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/arogya/internal/i18n"
)

type upperTranslator struct{}

func (upperTranslator) Translate(_ context.Context, text string, _, _ i18n.Lang) (string, error) {
	return strings.ToUpper(text), nil
}

type failingTranslator struct{}

func (failingTranslator) Translate(_ context.Context, _ string, _, _ i18n.Lang) (string, error) {
	return "", errors.New("translation service down")
}

func sampleResult() *Result {
	return &Result{
		Urgency: UrgencyModerate,
		Conditions: []Condition{
			{Name: "Tension Headache", Probability: 60, Description: "common stress headache"},
		},
		Recommendations: []Recommendation{
			{Action: "rest in a quiet room", Priority: "medium"},
		},
		WhenToSeekHelp: []string{"headache lasts more than three days"},
		Avoid:          []string{"bright screens"},
		Disclaimer:     "not a diagnosis",
		Source:         SourceFallback,
	}
}

func TestLocalizeResult_EnglishUntouched(t *testing.T) {
	svc := NewService(nil)
	svc.translator = upperTranslator{}

	r := sampleResult()
	got := svc.LocalizeResult(context.Background(), r, i18n.English)
	if got != r {
		t.Error("English localization must return the same result")
	}
}

func TestLocalizeResult_TranslatesDisplayStrings(t *testing.T) {
	svc := NewService(nil)
	svc.translator = upperTranslator{}

	r := sampleResult()
	got := svc.LocalizeResult(context.Background(), r, i18n.Hindi)

	if got == r {
		t.Fatal("expected a localized copy")
	}
	if got.Recommendations[0].Action != "REST IN A QUIET ROOM" {
		t.Errorf("Action = %q", got.Recommendations[0].Action)
	}
	if got.Conditions[0].Description != "COMMON STRESS HEADACHE" {
		t.Errorf("Description = %q", got.Conditions[0].Description)
	}
	if got.Disclaimer != "NOT A DIAGNOSIS" {
		t.Errorf("Disclaimer = %q", got.Disclaimer)
	}

	// Original must not be mutated.
	if r.Recommendations[0].Action != "rest in a quiet room" {
		t.Error("original result was mutated")
	}
	// Non-display fields carry over unchanged.
	if got.Conditions[0].Name != "Tension Headache" || got.Conditions[0].Probability != 60 {
		t.Error("condition identity fields must survive localization")
	}
}

func TestLocalizeResult_FailureReturnsOriginal(t *testing.T) {
	svc := NewService(nil)
	svc.translator = failingTranslator{}

	r := sampleResult()
	got := svc.LocalizeResult(context.Background(), r, i18n.Hindi)
	if got != r {
		t.Error("translation failure must fall back to the original result")
	}
}

func TestLocalizeResult_NilResult(t *testing.T) {
	svc := NewService(nil)
	if svc.LocalizeResult(context.Background(), nil, i18n.Hindi) != nil {
		t.Error("nil result must stay nil")
	}
}

func TestNewTranslator_OfflinePassthrough(t *testing.T) {
	tr := newTranslator(nil)
	got, err := tr.Translate(context.Background(), "stay calm", i18n.English, i18n.Tamil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "stay calm" {
		t.Errorf("got %q, want passthrough", got)
	}
}
