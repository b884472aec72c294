package firstaid

import (
	"testing"

	"github.com/abhisek/arogya/internal/i18n"
	"github.com/abhisek/arogya/internal/triage"
)

func TestConditionFor_CategoryMapping(t *testing.T) {
	cases := []struct {
		typ  string
		want Condition
	}{
		{string(triage.CategoryCardiac), ConditionCardiac},
		{string(triage.CategoryRespiratory), ConditionRespiratory},
		{string(triage.CategoryNeurological), ConditionStroke},
		{string(triage.CategoryTrauma), ConditionTrauma},
		{string(triage.CategoryAllergic), ConditionAllergic},
		{string(triage.CategoryPoisoning), ConditionGeneral},
		{triage.TypeCombination, ConditionGeneral},
		{triage.TypeHighSeverity, ConditionGeneral},
		{"", ConditionGeneral},
	}
	for _, tc := range cases {
		c := triage.Classification{IsEmergency: tc.typ != "", Type: tc.typ}
		if got := ConditionFor(c); got != tc.want {
			t.Errorf("type %q: got %q, want %q", tc.typ, got, tc.want)
		}
	}
}

func TestConditionFor_FromClassifier(t *testing.T) {
	c := triage.Classify(triage.PatientInput{FreeText: "facial drooping and speech problems"})
	if got := ConditionFor(c); got != ConditionStroke {
		t.Errorf("got %q, want %q", got, ConditionStroke)
	}
}

func TestGuideFor_EveryConditionHasFiveSteps(t *testing.T) {
	conditions := []Condition{
		ConditionCardiac, ConditionRespiratory, ConditionStroke,
		ConditionTrauma, ConditionAllergic, ConditionGeneral,
	}
	for _, cond := range conditions {
		g := GuideFor(cond, i18n.English)
		if len(g.Steps) != 5 {
			t.Errorf("%s: got %d steps, want 5", cond, len(g.Steps))
		}
		if len(g.Warnings) == 0 {
			t.Errorf("%s: got no warnings", cond)
		}
		if g.Title == "" {
			t.Errorf("%s: got empty title", cond)
		}
	}
}

func TestGuideFor_HindiWhereAvailable(t *testing.T) {
	g := GuideFor(ConditionCardiac, i18n.Hindi)
	if g.Title != "दिल का दौरा / सीने में दर्द प्राथमिक चिकित्सा" {
		t.Errorf("got title %q, want Hindi cardiac script", g.Title)
	}
}

func TestGuideFor_FallsBackToEnglish(t *testing.T) {
	g := GuideFor(ConditionStroke, i18n.Hindi)
	if g.Title != "Stroke First Aid" {
		t.Errorf("got title %q, want English fallback", g.Title)
	}
}

func TestGuideFor_UnknownConditionGetsGeneral(t *testing.T) {
	g := GuideFor("unknown", i18n.English)
	if g.Title != "General Emergency First Aid" {
		t.Errorf("got title %q, want general script", g.Title)
	}
}
