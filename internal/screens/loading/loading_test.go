package loading

import (
	"testing"
	"time"

	"github.com/abhisek/arogya/internal/analysis"
	"github.com/abhisek/arogya/internal/emergency"
	"github.com/abhisek/arogya/internal/router"
	"github.com/abhisek/arogya/internal/screens/results"
	triagescreen "github.com/abhisek/arogya/internal/screens/triage"
	"github.com/abhisek/arogya/internal/triage"
)

func testLoadingScreen() *LoadingScreen {
	svc := analysis.NewService(nil)
	dialer := emergency.NewDialer(nil, nil)
	input := triage.PatientInput{FreeText: "mild headache"}
	return New(svc, nil, dialer, input)
}

func TestSpinner_AdvancesStages(t *testing.T) {
	s := testLoadingScreen()
	s.started = time.Now()

	for i := 0; i < framesPerStage; i++ {
		s.Update(spinnerTickMsg(time.Now()))
	}
	if s.stage != 1 {
		t.Errorf("stage = %d, want 1 after %d frames", s.stage, framesPerStage)
	}

	// Stage label never runs past the last entry.
	for i := 0; i < framesPerStage*len(stages); i++ {
		s.Update(spinnerTickMsg(time.Now()))
	}
	if s.stage != len(stages)-1 {
		t.Errorf("stage = %d, want %d at cap", s.stage, len(stages)-1)
	}
}

func TestResult_HeldUntilMinimumDisplay(t *testing.T) {
	s := testLoadingScreen()
	s.started = time.Now()

	_, cmd := s.Update(analysisDoneMsg{Result: &analysis.Result{}})
	if cmd != nil {
		t.Error("expected no handoff before the minimum display time")
	}
	if s.result == nil {
		t.Error("expected result stored for later handoff")
	}
}

func TestResult_HandsOffAfterMinimumDisplay(t *testing.T) {
	s := testLoadingScreen()
	s.started = time.Now().Add(-2 * minDisplay)

	_, cmd := s.Update(analysisDoneMsg{Result: &analysis.Result{}})
	if cmd == nil {
		t.Fatal("expected handoff command")
	}
	if _, ok := cmd().(handoffMsg); !ok {
		t.Error("expected handoffMsg")
	}
}

func TestHandoff_ReplacesWithResults(t *testing.T) {
	s := testLoadingScreen()
	s.result = &analysis.Result{Urgency: analysis.UrgencyModerate}

	_, cmd := s.Update(handoffMsg{})
	if cmd == nil {
		t.Fatal("expected replace command")
	}

	msg := cmd()
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want router.ReplaceScreenMsg", msg)
	}
	if _, ok := replace.Screen.(*results.ResultsScreen); !ok {
		t.Errorf("screen = %T, want *results.ResultsScreen", replace.Screen)
	}
}

func TestHandoff_EmergencyGoesToEmergencyFlow(t *testing.T) {
	s := testLoadingScreen()
	cls := triage.Classification{
		IsEmergency: true,
		Type:        string(triage.CategoryCardiac),
		Level:       triage.LevelCritical,
		Reason:      "Cardiac emergency symptoms detected",
	}
	s.result = &analysis.Result{
		IsEmergency:    true,
		Urgency:        analysis.UrgencyEmergency,
		Classification: &cls,
	}

	_, cmd := s.Update(handoffMsg{})
	if cmd == nil {
		t.Fatal("expected replace command")
	}

	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected router.ReplaceScreenMsg")
	}
	if _, ok := replace.Screen.(*triagescreen.TriageScreen); !ok {
		t.Errorf("screen = %T, want the emergency flow", replace.Screen)
	}
}
