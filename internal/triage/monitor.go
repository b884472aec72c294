package triage

import (
	"fmt"
	"sort"
	"strings"
)

// minTextDelta is how many runes the normalized free text must grow or
// shrink before a re-detection counts as new information. Keystroke
// noise inside the window does not re-trigger the alert.
const minTextDelta = 5

// Monitor decides whether a detected emergency should be surfaced to
// the user again. The classifier itself is pure; the monitor holds the
// de-dup state for one intake session. Not safe for concurrent use.
type Monitor struct {
	alerted  bool
	lastText string
	lastSig  string
}

// NewMonitor returns a monitor with no alert history.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// signature captures the non-text fields that always count as a
// material change when they differ.
func signature(input PatientInput, c Classification) string {
	tags := make([]string, len(input.Symptoms))
	for i, t := range input.Symptoms {
		tags[i] = string(t)
	}
	sort.Strings(tags)
	return fmt.Sprintf("%s|%s|%d|%s", strings.Join(tags, ","), input.Duration, input.Severity, c.Type)
}

// ShouldAlert reports whether this classification warrants surfacing an
// alert now, and records it when it does. A non-emergency result never
// alerts but does not clear history: if the same emergency reappears
// unchanged, it stays suppressed.
func (m *Monitor) ShouldAlert(input PatientInput, c Classification) bool {
	if !c.IsEmergency {
		return false
	}
	text := strings.ToLower(strings.TrimSpace(input.FreeText))
	sig := signature(input, c)
	if m.alerted && sig == m.lastSig && !textChangedMaterially(m.lastText, text) {
		return false
	}
	m.alerted = true
	m.lastText = text
	m.lastSig = sig
	return true
}

func textChangedMaterially(prev, cur string) bool {
	if prev == cur {
		return false
	}
	delta := len([]rune(cur)) - len([]rune(prev))
	if delta < 0 {
		delta = -delta
	}
	return delta >= minTextDelta
}

// Reset clears the alert history, for a fresh intake session.
func (m *Monitor) Reset() {
	*m = Monitor{}
}
