package triage

import "testing"

func emergencyFor(text string) (PatientInput, Classification) {
	input := PatientInput{FreeText: text}
	return input, Classify(input)
}

func TestMonitor_FirstDetectionAlerts(t *testing.T) {
	m := NewMonitor()
	input, c := emergencyFor("chest pain")
	if !m.ShouldAlert(input, c) {
		t.Errorf("got suppressed first detection, want alert")
	}
}

func TestMonitor_RepeatSuppressed(t *testing.T) {
	m := NewMonitor()
	input, c := emergencyFor("chest pain")
	m.ShouldAlert(input, c)
	if m.ShouldAlert(input, c) {
		t.Errorf("got second alert for identical input, want suppressed")
	}
}

func TestMonitor_KeystrokeNoiseSuppressed(t *testing.T) {
	m := NewMonitor()
	input, c := emergencyFor("chest pain")
	m.ShouldAlert(input, c)
	// A few extra characters within the edit window.
	input2, c2 := emergencyFor("chest pain no")
	if m.ShouldAlert(input2, c2) {
		t.Errorf("got alert for keystroke noise, want suppressed")
	}
}

func TestMonitor_MaterialTextChangeAlerts(t *testing.T) {
	m := NewMonitor()
	input, c := emergencyFor("chest pain")
	m.ShouldAlert(input, c)
	input2, c2 := emergencyFor("chest pain and my left arm is numb")
	if !m.ShouldAlert(input2, c2) {
		t.Errorf("got suppressed material change, want alert")
	}
}

func TestMonitor_SeverityChangeAlerts(t *testing.T) {
	m := NewMonitor()
	input := PatientInput{FreeText: "feeling awful", Severity: 9}
	c := Classify(input)
	m.ShouldAlert(input, c)
	input.Severity = 10
	if !m.ShouldAlert(input, Classify(input)) {
		t.Errorf("got suppressed severity change, want alert")
	}
}

func TestMonitor_NonEmergencyNeverAlerts(t *testing.T) {
	m := NewMonitor()
	input := PatientInput{FreeText: "mild headache", Severity: 2}
	if m.ShouldAlert(input, Classify(input)) {
		t.Errorf("got alert for non-emergency, want none")
	}
}

func TestMonitor_Reset(t *testing.T) {
	m := NewMonitor()
	input, c := emergencyFor("chest pain")
	m.ShouldAlert(input, c)
	m.Reset()
	if !m.ShouldAlert(input, c) {
		t.Errorf("got suppressed alert after reset, want alert")
	}
}
