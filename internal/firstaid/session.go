package firstaid

import "fmt"

// Session tracks progress through one guide: the current step and an
// elapsed-seconds timer. Sessions are in-memory only and discarded when
// the user leaves the flow.
type Session struct {
	Condition Condition
	Guide     Guide

	step         int
	elapsed      int
	timerRunning bool
}

// NewSession starts a session at the first step of the guide.
func NewSession(condition Condition, guide Guide) *Session {
	return &Session{Condition: condition, Guide: guide}
}

// Step returns the current zero-based step index.
func (s *Session) Step() int {
	return s.step
}

// Current returns the step the session is on.
func (s *Session) Current() Step {
	return s.Guide.Steps[s.step]
}

// Next advances one step, staying clamped at the last step.
func (s *Session) Next() {
	if s.step < len(s.Guide.Steps)-1 {
		s.step++
	}
}

// Previous moves back one step, staying clamped at the first step.
func (s *Session) Previous() {
	if s.step > 0 {
		s.step--
	}
}

// AtLastStep reports whether the session is on the final step.
func (s *Session) AtLastStep() bool {
	return s.step == len(s.Guide.Steps)-1
}

// StartTimer begins counting elapsed seconds. Ticks are delivered by
// the caller via Tick.
func (s *Session) StartTimer() { s.timerRunning = true }

// StopTimer pauses the timer, keeping the elapsed count.
func (s *Session) StopTimer() { s.timerRunning = false }

// ResetTimer stops the timer and clears the elapsed count.
func (s *Session) ResetTimer() {
	s.timerRunning = false
	s.elapsed = 0
}

// TimerRunning reports whether ticks currently advance the timer.
func (s *Session) TimerRunning() bool {
	return s.timerRunning
}

// Tick advances the timer by one second when running.
func (s *Session) Tick() {
	if s.timerRunning {
		s.elapsed++
	}
}

// Elapsed returns the timer value in seconds.
func (s *Session) Elapsed() int {
	return s.elapsed
}

// ElapsedDisplay formats the timer as mm:ss.
func (s *Session) ElapsedDisplay() string {
	return fmt.Sprintf("%02d:%02d", s.elapsed/60, s.elapsed%60)
}
