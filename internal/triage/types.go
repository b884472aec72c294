package triage

import (
	"strconv"
	"strings"

	"github.com/abhisek/arogya/internal/i18n"
)

// Category is a clinical emergency category used to group keywords,
// recommendations and first-aid scripts.
type Category string

const (
	CategoryCardiac      Category = "cardiac"
	CategoryRespiratory  Category = "respiratory"
	CategoryNeurological Category = "neurological"
	CategoryTrauma       Category = "trauma"
	CategoryAllergic     Category = "allergic"
	CategoryPoisoning    Category = "poisoning"
)

// Result types emitted by tiers that do not map to a single clinical
// category.
const (
	TypeCombination      = "combination"
	TypeHighSeverity     = "high_severity"
	TypePersistentSevere = "persistent_severe"
)

// Level is the coarse urgency bucket of a classification, distinct from
// the 1-10 self-reported severity score.
type Level string

const (
	LevelNone     Level = "none"
	LevelModerate Level = "moderate"
	LevelHigh     Level = "high"
	LevelCritical Level = "critical"
)

// levelRanks orders levels for comparison. Higher is more urgent.
var levelRanks = map[Level]int{
	LevelNone:     0,
	LevelModerate: 1,
	LevelHigh:     2,
	LevelCritical: 3,
}

// Rank returns the ordering position of the level (none=0 .. critical=3).
func (l Level) Rank() int {
	return levelRanks[l]
}

// Fixed confidence per rule tier. These are rule weights, not calibrated
// probabilities.
const (
	ConfidenceKeyword     = 0.95
	ConfidenceCombination = 0.90
	ConfidenceSeverity    = 0.80
	ConfidenceDuration    = 0.70
)

// AgeBracket is a coarse patient age group.
type AgeBracket string

const (
	Age18To30 AgeBracket = "18-30"
	Age31To50 AgeBracket = "31-50"
	Age51To65 AgeBracket = "51-65"
	Age65Plus AgeBracket = "65+"

	// DefaultAgeBracket is assumed when the bracket is unset or unknown.
	DefaultAgeBracket = Age31To50
)

// Duration bucket values offered by the intake form. Free-text synonyms
// ("sudden", "just started", "for days") are also accepted; duration
// matching is substring-based.
const (
	DurationFewHours = "few-hours"
	DurationToday    = "today"
	Duration1To2Days = "1-2-days"
	Duration3To7Days = "3-7-days"
	DurationOverWeek = "over-week"
	DurationChronic  = "chronic"
)

// SymptomTag is a controlled-vocabulary tag from the intake checklist.
type SymptomTag string

const (
	TagFever       SymptomTag = "fever"
	TagHeadache    SymptomTag = "headache"
	TagCough       SymptomTag = "cough"
	TagFatigue     SymptomTag = "fatigue"
	TagNausea      SymptomTag = "nausea"
	TagStomachPain SymptomTag = "stomach-pain"
	TagChestPain   SymptomTag = "chest-pain"
	TagBreathing   SymptomTag = "breathing"
	TagDizziness   SymptomTag = "dizziness"
	TagRash        SymptomTag = "rash"
)

// tagPhrases maps each checklist tag to the phrase searched by the
// keyword tiers. Tags and free text share one classification path, so a
// ticked "chest pain" box behaves exactly like typing "chest pain".
var tagPhrases = map[SymptomTag]string{
	TagFever:       "fever",
	TagHeadache:    "headache",
	TagCough:       "cough",
	TagFatigue:     "fatigue",
	TagNausea:      "nausea",
	TagStomachPain: "stomach pain",
	TagChestPain:   "chest pain",
	TagBreathing:   "difficulty breathing",
	TagDizziness:   "dizziness",
	TagRash:        "skin rash",
}

// TagPhrase returns the searchable phrase for a checklist tag, or the
// tag itself if it has no mapping.
func TagPhrase(tag SymptomTag) string {
	if p, ok := tagPhrases[tag]; ok {
		return p
	}
	return string(tag)
}

// PatientInput is the fact pattern submitted for one evaluation.
type PatientInput struct {
	FreeText string
	Symptoms []SymptomTag
	Severity int    // 1-10 self-reported; 0 means absent
	Duration string // bucket value or free-text synonym
	AgeGroup AgeBracket
	Language i18n.Lang
}

// Classification is the output of one evaluation. It is a pure function
// of the input and the active language table: same input, same output.
type Classification struct {
	IsEmergency bool
	Type        string // Category value, combination, high_severity, persistent_severe, or "" for none
	Level       Level
	Confidence  float64
	Reason      string
	// Keyword is the matched phrase for keyword-tier results, for display
	// and de-dup purposes. Empty for other tiers.
	Keyword string
}

// ClinicalCategory returns the clinical category when the classification
// came from a direct keyword match, and false otherwise.
func (c Classification) ClinicalCategory() (Category, bool) {
	switch Category(c.Type) {
	case CategoryCardiac, CategoryRespiratory, CategoryNeurological,
		CategoryTrauma, CategoryAllergic, CategoryPoisoning:
		return Category(c.Type), true
	}
	return "", false
}

// ParseSeverity parses a self-reported severity defensively. Non-numeric
// input yields 0 (absent); numeric input is clamped to [1, 10].
func ParseSeverity(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0
	}
	if n > 10 {
		return 10
	}
	return n
}

// searchText builds the lowercased text scanned by the keyword tiers:
// the free-text description plus the phrase for every selected tag.
func searchText(input PatientInput) string {
	parts := make([]string, 0, 1+len(input.Symptoms))
	if t := strings.TrimSpace(input.FreeText); t != "" {
		parts = append(parts, t)
	}
	for _, tag := range input.Symptoms {
		parts = append(parts, TagPhrase(tag))
	}
	return strings.ToLower(strings.Join(parts, " "))
}
