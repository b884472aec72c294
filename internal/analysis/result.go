// Package analysis orchestrates symptom analysis: the rule-based
// emergency gate runs first, then the LLM with a schema-validated
// response, with a deterministic local fallback when the provider
// fails. Every path ends in a displayable result.
package analysis

import "github.com/abhisek/arogya/internal/triage"

// Urgency is the coarse urgency of an analysis result.
type Urgency string

const (
	UrgencyLow       Urgency = "low"
	UrgencyModerate  Urgency = "moderate"
	UrgencyHigh      Urgency = "high"
	UrgencyEmergency Urgency = "emergency"
)

// validUrgency reports whether u is a known urgency level.
func validUrgency(u Urgency) bool {
	switch u {
	case UrgencyLow, UrgencyModerate, UrgencyHigh, UrgencyEmergency:
		return true
	}
	return false
}

// Source records which path produced a result.
type Source string

const (
	SourceEmergency Source = "emergency"
	SourceAI        Source = "ai"
	SourceFallback  Source = "fallback"
)

// Condition is one possible condition with an estimated probability in
// percent (0-100).
type Condition struct {
	Name        string `json:"condition"`
	Probability int    `json:"probability"`
	Description string `json:"description"`
}

// Recommendation is one suggested action with a priority of "high",
// "medium", "low" or "critical".
type Recommendation struct {
	Action   string `json:"action"`
	Priority string `json:"priority"`
}

// Result is a complete analysis shown to the user.
type Result struct {
	IsEmergency     bool             `json:"isEmergency"`
	Urgency         Urgency          `json:"urgencyLevel"`
	Conditions      []Condition      `json:"possibleConditions"`
	Recommendations []Recommendation `json:"recommendations"`
	WhenToSeekHelp  []string         `json:"whenToSeekHelp"`
	Avoid           []string         `json:"avoidActions,omitempty"`
	Disclaimer      string           `json:"disclaimer"`
	Source          Source           `json:"source"`

	// Classification carries the emergency gate's output when it fired.
	Classification *triage.Classification `json:"classification,omitempty"`
}
