// Package triage implements the rule-based emergency classifier: fixed
// keyword tables scanned in strict tier order, with fixed confidence
// weights per tier. The classifier is pure and never calls out; it is
// the safety gate that runs before any AI analysis.
package triage

import (
	"fmt"
	"strings"

	"github.com/abhisek/arogya/internal/i18n"
)

// notEmergency is the terminal no-match result.
var notEmergency = Classification{Level: LevelNone}

// Classify evaluates one patient input against the rule tiers and
// returns the first tier that fires. Tiers run in fixed order: direct
// keyword, critical combination, severity, duration. Inputs with no
// symptom text at all are never an emergency.
func Classify(input PatientInput) Classification {
	text := searchText(input)
	if text == "" {
		return notEmergency
	}

	if c, ok := checkKeywords(text, input.Language); ok {
		return c
	}
	if c, ok := checkCombinations(text); ok {
		return c
	}
	if c, ok := checkSeverity(text, input.Severity, input.AgeGroup); ok {
		return c
	}
	if c, ok := checkDuration(text, input.Duration, input.Severity); ok {
		return c
	}
	return notEmergency
}

// checkKeywords scans the language's keyword table for a direct match.
// Categories and keywords are scanned in table order; the first hit
// wins.
func checkKeywords(text string, lang i18n.Lang) (Classification, bool) {
	for _, group := range keywordsFor(lang) {
		for _, keyword := range group.Keywords {
			if strings.Contains(text, keyword) {
				return Classification{
					IsEmergency: true,
					Type:        string(group.Category),
					Level:       LevelCritical,
					Confidence:  ConfidenceKeyword,
					Reason:      "Critical symptoms detected",
					Keyword:     keyword,
				}, true
			}
		}
	}
	return Classification{}, false
}

// checkCombinations looks for phrase pairs where both members appear.
func checkCombinations(text string) (Classification, bool) {
	for _, pair := range criticalCombinations {
		if strings.Contains(text, pair[0]) && strings.Contains(text, pair[1]) {
			return Classification{
				IsEmergency: true,
				Type:        TypeCombination,
				Level:       LevelHigh,
				Confidence:  ConfidenceCombination,
				Reason:      "Critical symptom combination detected",
			}, true
		}
	}
	return Classification{}, false
}

// checkSeverity applies the severity tier. Scores below 6 never fire.
// 9 and above is critical regardless of age; otherwise the age
// bracket's threshold plus a concern keyword escalates to high.
func checkSeverity(text string, severity int, bracket AgeBracket) (Classification, bool) {
	if severity < 6 {
		return Classification{}, false
	}
	if severity >= 9 {
		return Classification{
			IsEmergency: true,
			Type:        TypeHighSeverity,
			Level:       LevelCritical,
			Confidence:  ConfidenceSeverity,
			Reason:      "Extremely high severity level (9-10/10)",
		}, true
	}
	threshold := thresholdFor(bracket)
	if severity >= threshold.Severity {
		for _, keyword := range threshold.ConcernKeywords {
			if strings.Contains(text, keyword) {
				return Classification{
					IsEmergency: true,
					Type:        TypeHighSeverity,
					Level:       LevelHigh,
					Confidence:  ConfidenceSeverity,
					Reason:      fmt.Sprintf("High severity (%d/10) with concerning symptoms for age group", severity),
				}, true
			}
		}
	}
	return Classification{}, false
}

// checkDuration applies the duration tier: sudden onset of severe
// symptoms, or persistent cardiorespiratory symptoms lasting days.
// Requires a duration and severity of at least 7.
func checkDuration(text, duration string, severity int) (Classification, bool) {
	if duration == "" || severity < 7 {
		return Classification{}, false
	}
	d := strings.ToLower(duration)

	if (strings.Contains(d, "sudden") || strings.Contains(d, "just started")) && severity >= 8 {
		return Classification{
			IsEmergency: true,
			Type:        TypePersistentSevere,
			Level:       LevelModerate,
			Confidence:  ConfidenceDuration,
			Reason:      "Sudden onset of severe symptoms",
		}, true
	}
	if strings.Contains(d, "days") && severity >= 7 {
		if strings.Contains(text, "chest pain") || strings.Contains(text, "difficulty breathing") {
			return Classification{
				IsEmergency: true,
				Type:        TypePersistentSevere,
				Level:       LevelModerate,
				Confidence:  ConfidenceDuration,
				Reason:      "Persistent severe cardiorespiratory symptoms",
			}, true
		}
	}
	return Classification{}, false
}
