package firstaid

import (
	"testing"

	"github.com/abhisek/arogya/internal/i18n"
)

func newTestSession() *Session {
	return NewSession(ConditionCardiac, GuideFor(ConditionCardiac, i18n.English))
}

func TestSession_StepNavigation(t *testing.T) {
	s := newTestSession()
	if s.Step() != 0 {
		t.Fatalf("got initial step %d, want 0", s.Step())
	}
	s.Next()
	if s.Step() != 1 {
		t.Errorf("got step %d after Next, want 1", s.Step())
	}
	s.Previous()
	if s.Step() != 0 {
		t.Errorf("got step %d after Previous, want 0", s.Step())
	}
}

func TestSession_ClampedAtBounds(t *testing.T) {
	s := newTestSession()
	s.Previous()
	if s.Step() != 0 {
		t.Errorf("got step %d below first, want clamped at 0", s.Step())
	}
	for i := 0; i < 20; i++ {
		s.Next()
	}
	if s.Step() != len(s.Guide.Steps)-1 {
		t.Errorf("got step %d past last, want clamped at %d", s.Step(), len(s.Guide.Steps)-1)
	}
	if !s.AtLastStep() {
		t.Errorf("got AtLastStep false on last step")
	}
}

func TestSession_TimerLifecycle(t *testing.T) {
	s := newTestSession()
	s.Tick()
	if s.Elapsed() != 0 {
		t.Errorf("got elapsed %d with stopped timer, want 0", s.Elapsed())
	}
	s.StartTimer()
	for i := 0; i < 65; i++ {
		s.Tick()
	}
	if s.Elapsed() != 65 {
		t.Errorf("got elapsed %d, want 65", s.Elapsed())
	}
	if got := s.ElapsedDisplay(); got != "01:05" {
		t.Errorf("got display %q, want %q", got, "01:05")
	}
	s.StopTimer()
	s.Tick()
	if s.Elapsed() != 65 {
		t.Errorf("got elapsed %d after stop, want 65", s.Elapsed())
	}
	s.ResetTimer()
	if s.Elapsed() != 0 || s.TimerRunning() {
		t.Errorf("got (%d, %v) after reset, want (0, false)", s.Elapsed(), s.TimerRunning())
	}
}

func TestSession_CurrentFollowsStep(t *testing.T) {
	s := newTestSession()
	first := s.Current().Title
	s.Next()
	if s.Current().Title == first {
		t.Errorf("got same step title after Next")
	}
}
