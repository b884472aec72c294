package analysis

import (
	"encoding/json"
	"testing"
)

func TestDecodeResult_CompletePayload(t *testing.T) {
	raw := json.RawMessage(`{
		"urgencyLevel": "high",
		"possibleConditions": [{"condition": "Pneumonia", "probability": 60, "description": "Lung infection"}],
		"recommendations": [{"action": "See a doctor today", "priority": "high"}],
		"whenToSeekHelp": ["Breathing worsens"],
		"disclaimer": "Custom disclaimer."
	}`)

	got, err := decodeResult(raw)
	if err != nil {
		t.Fatal(err)
	}
	if got.Urgency != UrgencyHigh {
		t.Errorf("got urgency %q, want high", got.Urgency)
	}
	if got.Conditions[0].Name != "Pneumonia" || got.Conditions[0].Probability != 60 {
		t.Errorf("got condition %+v", got.Conditions[0])
	}
	if got.Recommendations[0].Action != "See a doctor today" {
		t.Errorf("got recommendation %+v", got.Recommendations[0])
	}
	if got.Disclaimer != "Custom disclaimer." {
		t.Errorf("got disclaimer %q", got.Disclaimer)
	}
}

func TestDecodeResult_MarkdownFences(t *testing.T) {
	raw := json.RawMessage("```json\n{\"urgencyLevel\": \"low\"}\n```")

	got, err := decodeResult(raw)
	if err != nil {
		t.Fatal(err)
	}
	if got.Urgency != UrgencyLow {
		t.Errorf("got urgency %q, want low", got.Urgency)
	}
}

func TestDecodeResult_SurroundingProse(t *testing.T) {
	raw := json.RawMessage(`Here is the analysis: {"urgencyLevel": "moderate"} I hope this helps.`)

	got, err := decodeResult(raw)
	if err != nil {
		t.Fatal(err)
	}
	if got.Urgency != UrgencyModerate {
		t.Errorf("got urgency %q, want moderate", got.Urgency)
	}
}

func TestDecodeResult_NotAnObject(t *testing.T) {
	if _, err := decodeResult(json.RawMessage(`"just a string"`)); err == nil {
		t.Error("expected an error for a non-object payload")
	}
}

func TestCoerce_Defaults(t *testing.T) {
	got := coerce(map[string]any{})

	if got.Urgency != UrgencyModerate {
		t.Errorf("got urgency %q, want moderate default", got.Urgency)
	}
	if got.Conditions[0].Name != "Medical Evaluation Needed" {
		t.Errorf("got condition %q, want the default", got.Conditions[0].Name)
	}
	if got.Recommendations[0].Action != "Consult with healthcare provider" {
		t.Errorf("got recommendation %q, want the default", got.Recommendations[0].Action)
	}
	if len(got.WhenToSeekHelp) == 0 || got.Disclaimer == "" {
		t.Error("defaults must cover every displayed field")
	}
}

func TestCoerce_InvalidUrgency(t *testing.T) {
	got := coerce(map[string]any{"urgencyLevel": "catastrophic"})
	if got.Urgency != UrgencyModerate {
		t.Errorf("got urgency %q, want moderate for unknown values", got.Urgency)
	}
}

func TestCoerce_ProbabilityClamped(t *testing.T) {
	got := coerce(map[string]any{
		"possibleConditions": []any{
			map[string]any{"condition": "A", "probability": float64(250)},
			map[string]any{"condition": "B", "probability": float64(-10)},
		},
	})
	if got.Conditions[0].Probability != 100 {
		t.Errorf("got %d, want 100", got.Conditions[0].Probability)
	}
	if got.Conditions[1].Probability != 0 {
		t.Errorf("got %d, want 0", got.Conditions[1].Probability)
	}
}

func TestCoerce_SkipsNamelessConditions(t *testing.T) {
	got := coerce(map[string]any{
		"possibleConditions": []any{
			map[string]any{"probability": float64(50)},
			map[string]any{"condition": "Kept", "probability": float64(50)},
		},
	})
	if len(got.Conditions) != 1 || got.Conditions[0].Name != "Kept" {
		t.Errorf("got %+v, want only the named condition", got.Conditions)
	}
}

func TestCoerce_UnknownPriorityDefaultsToMedium(t *testing.T) {
	got := coerce(map[string]any{
		"recommendations": []any{
			map[string]any{"action": "Do the thing", "priority": "whenever"},
		},
	})
	if got.Recommendations[0].Priority != "medium" {
		t.Errorf("got priority %q, want medium", got.Recommendations[0].Priority)
	}
}

func TestCoerce_EmptyArraysKeepDefaults(t *testing.T) {
	got := coerce(map[string]any{
		"possibleConditions": []any{},
		"recommendations":    []any{},
		"whenToSeekHelp":     []any{},
	})
	if len(got.Conditions) == 0 || len(got.Recommendations) == 0 || len(got.WhenToSeekHelp) == 0 {
		t.Error("empty arrays must fall back to defaults")
	}
}
