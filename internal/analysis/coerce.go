package analysis

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Defaults substituted for missing or malformed fields. External AI
// output is never trusted to be complete even after schema validation;
// a partial result must still render safely.
const defaultDisclaimer = "This analysis is for informational purposes only and should not replace professional medical advice."

var (
	defaultConditions = []Condition{{
		Name:        "Medical Evaluation Needed",
		Probability: 75,
		Description: "Professional medical assessment recommended",
	}}
	defaultRecommendations = []Recommendation{{
		Action:   "Consult with healthcare provider",
		Priority: "high",
	}}
	defaultWhenToSeekHelp = []string{
		"Symptoms worsen or persist",
		"New concerning symptoms develop",
	}
)

// decodeResult parses raw LLM output into a Result, coercing missing
// or invalid fields to safe defaults. It fails only when the payload
// is not a JSON object at all.
func decodeResult(raw json.RawMessage) (*Result, error) {
	var parsed map[string]any
	if err := json.Unmarshal(cleanJSON(raw), &parsed); err != nil {
		return nil, fmt.Errorf("parse analysis response: %w", err)
	}
	return coerce(parsed), nil
}

// cleanJSON strips markdown code fences and surrounding prose, keeping
// the outermost JSON object. Schema-constrained providers should never
// produce either, but the response path must not depend on that.
func cleanJSON(raw json.RawMessage) json.RawMessage {
	s := string(raw)
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		s = s[start : end+1]
	}
	return json.RawMessage(s)
}

// coerce builds a complete Result from a loosely-typed object.
func coerce(parsed map[string]any) *Result {
	out := &Result{
		Urgency:         UrgencyModerate,
		Conditions:      defaultConditions,
		Recommendations: defaultRecommendations,
		WhenToSeekHelp:  defaultWhenToSeekHelp,
		Disclaimer:      defaultDisclaimer,
	}

	if u, ok := parsed["urgencyLevel"].(string); ok && validUrgency(Urgency(u)) {
		out.Urgency = Urgency(u)
	}
	if s, ok := parsed["disclaimer"].(string); ok && s != "" {
		out.Disclaimer = s
	}
	if items, ok := parsed["possibleConditions"].([]any); ok {
		if conditions := coerceConditions(items); len(conditions) > 0 {
			out.Conditions = conditions
		}
	}
	if items, ok := parsed["recommendations"].([]any); ok {
		if recs := coerceRecommendations(items); len(recs) > 0 {
			out.Recommendations = recs
		}
	}
	if items, ok := parsed["whenToSeekHelp"].([]any); ok {
		var signs []string
		for _, item := range items {
			if s, ok := item.(string); ok && s != "" {
				signs = append(signs, s)
			}
		}
		if len(signs) > 0 {
			out.WhenToSeekHelp = signs
		}
	}

	return out
}

func coerceConditions(items []any) []Condition {
	var out []Condition
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name, _ := m["condition"].(string)
		if name == "" {
			continue
		}
		c := Condition{Name: name}
		if p, ok := m["probability"].(float64); ok {
			c.Probability = clampPercent(int(p))
		}
		if d, ok := m["description"].(string); ok {
			c.Description = d
		}
		out = append(out, c)
	}
	return out
}

func coerceRecommendations(items []any) []Recommendation {
	var out []Recommendation
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		action, _ := m["action"].(string)
		if action == "" {
			continue
		}
		r := Recommendation{Action: action, Priority: "medium"}
		if p, ok := m["priority"].(string); ok {
			switch p {
			case "high", "medium", "low", "critical":
				r.Priority = p
			}
		}
		out = append(out, r)
	}
	return out
}

func clampPercent(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
