// Package firstaid holds the step-by-step first-aid scripts shown
// during an active emergency, and the session state for walking
// through one.
package firstaid

import (
	"github.com/abhisek/arogya/internal/i18n"
	"github.com/abhisek/arogya/internal/triage"
)

// Condition names a first-aid script. It is coarser than the triage
// category: neurological emergencies map to the stroke script, and
// everything without a specific script maps to general.
type Condition string

const (
	ConditionCardiac     Condition = "cardiac"
	ConditionRespiratory Condition = "respiratory"
	ConditionStroke      Condition = "stroke"
	ConditionTrauma      Condition = "trauma"
	ConditionAllergic    Condition = "allergic"
	ConditionGeneral     Condition = "general"
)

// Step is one instruction in a guide. Duration is in seconds; zero
// means the step is not timed.
type Step struct {
	Title       string
	Instruction string
	Duration    int
}

// Guide is a complete first-aid script for one condition.
type Guide struct {
	Title    string
	Warning  string
	Steps    []Step
	Warnings []string
}

// ConditionFor maps an emergency classification to the script to show.
// The classifier's clinical category is the single source of truth;
// classifications without a category get the general script.
func ConditionFor(c triage.Classification) Condition {
	category, ok := c.ClinicalCategory()
	if !ok {
		return ConditionGeneral
	}
	switch category {
	case triage.CategoryCardiac:
		return ConditionCardiac
	case triage.CategoryRespiratory:
		return ConditionRespiratory
	case triage.CategoryNeurological:
		return ConditionStroke
	case triage.CategoryTrauma:
		return ConditionTrauma
	case triage.CategoryAllergic:
		return ConditionAllergic
	default:
		return ConditionGeneral
	}
}

// GuideFor returns the script for a condition in the requested
// language. Unknown conditions get the general script; languages
// without a localized script fall back to English per condition.
func GuideFor(condition Condition, lang i18n.Lang) Guide {
	byLang, ok := guides[condition]
	if !ok {
		byLang = guides[ConditionGeneral]
	}
	resolved := i18n.Resolve(lang, func(l i18n.Lang) bool {
		_, ok := byLang[l]
		return ok
	})
	return byLang[resolved]
}
