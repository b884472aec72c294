package intake

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/arogya/internal/i18n"
	"github.com/abhisek/arogya/internal/router"
	"github.com/abhisek/arogya/internal/screens/loading"
	triagescreen "github.com/abhisek/arogya/internal/screens/triage"
	"github.com/abhisek/arogya/internal/triage"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func TestIntakeScreen_Title(t *testing.T) {
	s := New(nil, nil, nil, nil)
	if s.Title() != "Check Symptoms" {
		t.Errorf("Title = %q, want %q", s.Title(), "Check Symptoms")
	}
}

func TestPatientInput_AssemblesForm(t *testing.T) {
	s := New(nil, nil, nil, nil)
	s.input.SetValue("headache since this morning")
	s.tags[triage.TagFever] = true
	s.tags[triage.TagNausea] = true
	s.severity.Selected = 6

	input := s.PatientInput()
	if input.FreeText != "headache since this morning" {
		t.Errorf("FreeText = %q", input.FreeText)
	}
	if input.Severity != 7 {
		t.Errorf("Severity = %d, want 7", input.Severity)
	}
	if len(input.Symptoms) != 2 {
		t.Fatalf("Symptoms = %v, want 2 tags", input.Symptoms)
	}
	if input.Language != i18n.English {
		t.Errorf("Language = %q, want English default", input.Language)
	}
}

func TestNew_PrefillsFromPreviousInput(t *testing.T) {
	prev := &triage.PatientInput{
		FreeText: "dry cough",
		Symptoms: []triage.SymptomTag{triage.TagCough},
		Severity: 8,
		Duration: triage.Duration3To7Days,
		AgeGroup: triage.Age51To65,
		Language: i18n.Hindi,
	}
	s := New(nil, nil, nil, prev)

	got := s.PatientInput()
	if got.FreeText != prev.FreeText {
		t.Errorf("FreeText = %q, want %q", got.FreeText, prev.FreeText)
	}
	if got.Severity != 8 {
		t.Errorf("Severity = %d, want 8", got.Severity)
	}
	if got.Duration != triage.Duration3To7Days {
		t.Errorf("Duration = %q, want %q", got.Duration, triage.Duration3To7Days)
	}
	if got.AgeGroup != triage.Age51To65 {
		t.Errorf("AgeGroup = %q, want %q", got.AgeGroup, triage.Age51To65)
	}
	if got.Language != i18n.Hindi {
		t.Errorf("Language = %q, want Hindi", got.Language)
	}
	if len(got.Symptoms) != 1 || got.Symptoms[0] != triage.TagCough {
		t.Errorf("Symptoms = %v, want [cough]", got.Symptoms)
	}
}

func TestLiveCheck_BannerOnEmergencyText(t *testing.T) {
	s := New(nil, nil, nil, nil)
	s.input.SetValue("crushing chest pain")
	s.scheduleClassify()

	scr, _ := s.Update(classifyTickMsg{Seq: s.seq})
	is := scr.(*IntakeScreen)

	if !is.lastClass.IsEmergency {
		t.Fatal("expected emergency classification")
	}
	if !is.banner {
		t.Error("expected banner after emergency tick")
	}
}

func TestLiveCheck_StaleTickIgnored(t *testing.T) {
	s := New(nil, nil, nil, nil)
	s.input.SetValue("crushing chest pain")
	s.scheduleClassify()
	s.scheduleClassify()

	// A tick from the first schedule arrives after the second edit.
	scr, _ := s.Update(classifyTickMsg{Seq: s.seq - 1})
	is := scr.(*IntakeScreen)

	if is.banner {
		t.Error("stale tick must not raise the banner")
	}
}

func TestLiveCheck_BannerClearsWhenNotEmergency(t *testing.T) {
	s := New(nil, nil, nil, nil)
	s.input.SetValue("crushing chest pain")
	s.scheduleClassify()
	s.Update(classifyTickMsg{Seq: s.seq})
	if !s.banner {
		t.Fatal("expected banner before the edit")
	}

	s.input.SetValue("mild skin rash on my arm")
	s.scheduleClassify()
	scr, _ := s.Update(classifyTickMsg{Seq: s.seq})
	is := scr.(*IntakeScreen)

	if is.banner {
		t.Error("expected banner to clear once text is no longer an emergency")
	}
}

func TestCtrlE_OpensEmergencyFlow(t *testing.T) {
	s := New(nil, nil, nil, nil)
	s.input.SetValue("severe chest pain")
	s.scheduleClassify()
	s.Update(classifyTickMsg{Seq: s.seq})

	_, cmd := s.Update(ctrlKey('e'))
	if cmd == nil {
		t.Fatal("expected a command from ctrl+e during an emergency")
	}

	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want router.PushScreenMsg", msg)
	}
	if _, ok := push.Screen.(*triagescreen.TriageScreen); !ok {
		t.Errorf("pushed screen = %T, want *triage.TriageScreen", push.Screen)
	}
}

func TestCtrlE_IgnoredWithoutEmergency(t *testing.T) {
	s := New(nil, nil, nil, nil)
	s.input.SetValue("slight tiredness")
	s.scheduleClassify()
	s.Update(classifyTickMsg{Seq: s.seq})

	_, cmd := s.Update(ctrlKey('e'))
	if cmd != nil {
		t.Error("ctrl+e must be inert when no emergency is flagged")
	}
}

func TestAnalyze_RequiresSomeInput(t *testing.T) {
	s := New(nil, nil, nil, nil)

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no command for an empty form")
	}
}

func TestAnalyze_PushesLoadingScreen(t *testing.T) {
	s := New(nil, nil, nil, nil)
	s.input.SetValue("mild headache after work")

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command after analyze")
	}

	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want router.PushScreenMsg", msg)
	}
	if _, ok := push.Screen.(*loading.LoadingScreen); !ok {
		t.Errorf("pushed screen = %T, want *loading.LoadingScreen", push.Screen)
	}
}

func TestTagToggle(t *testing.T) {
	s := New(nil, nil, nil, nil)
	s.setFocus(fieldTags)

	s.Update(specialKey(tea.KeyEnter))
	if !s.tags[tagOrder[0]] {
		t.Fatal("expected first tag to be toggled on")
	}

	s.Update(keyPress(' '))
	if s.tags[tagOrder[0]] {
		t.Error("expected second toggle to clear the tag")
	}
}

func TestFocusCycle(t *testing.T) {
	s := New(nil, nil, nil, nil)
	if s.focus != fieldText {
		t.Fatalf("initial focus = %d, want text field", s.focus)
	}

	for i := 0; i < fieldCount; i++ {
		s.Update(specialKey(tea.KeyTab))
	}
	if s.focus != fieldText {
		t.Errorf("focus after full cycle = %d, want text field", s.focus)
	}
}

func TestKeyHints_IncludeEmergencyShortcutWhenFlagged(t *testing.T) {
	s := New(nil, nil, nil, nil)
	base := len(s.KeyHints())

	s.input.SetValue("severe bleeding from a cut")
	s.scheduleClassify()
	s.Update(classifyTickMsg{Seq: s.seq})

	if len(s.KeyHints()) != base+1 {
		t.Errorf("hints = %d, want %d with emergency shortcut", len(s.KeyHints()), base+1)
	}
}
