// Package triage implements the emergency flow: assessment, call
// actions, and the first-aid walkthrough.
package triage

import (
	"context"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/arogya/internal/emergency"
	firstaidpkg "github.com/abhisek/arogya/internal/firstaid"
	"github.com/abhisek/arogya/internal/router"
	"github.com/abhisek/arogya/internal/screen"
	triagepkg "github.com/abhisek/arogya/internal/triage"
	"github.com/abhisek/arogya/internal/ui/layout"
)

type phase int

const (
	phaseAssessment phase = iota
	phaseActions
	phaseFirstAid
)

type dialedMsg struct {
	Action emergency.CallAction
	Err    error
}

type timerTickMsg time.Time

// callTarget is one dialable row on the actions screen.
type callTarget struct {
	Label   string
	Region  string             // set for regional emergency numbers
	Contact *emergency.Contact // set for contact rows
}

// TriageScreen walks the user through an active emergency.
type TriageScreen struct {
	cls    triagepkg.Classification
	input  triagepkg.PatientInput
	dialer *emergency.Dialer

	phase    phase
	targets  []callTarget
	cursor   int
	dialed   *emergency.CallAction
	dialErr  string
	location string

	session *firstaidpkg.Session
}

var _ screen.Screen = (*TriageScreen)(nil)
var _ screen.KeyHintProvider = (*TriageScreen)(nil)
var _ screen.EscHandler = (*TriageScreen)(nil)

// New creates the emergency flow for a detected emergency.
func New(cls triagepkg.Classification, input triagepkg.PatientInput, dialer *emergency.Dialer) *TriageScreen {
	return &TriageScreen{
		cls:     cls,
		input:   input,
		dialer:  dialer,
		phase:   phaseAssessment,
		targets: buildTargets(),
	}
}

// NewDirect creates the flow for the home screen's emergency call
// shortcut: no assessment, straight to the call actions.
func NewDirect(dialer *emergency.Dialer) *TriageScreen {
	return &TriageScreen{
		dialer:  dialer,
		phase:   phaseActions,
		targets: buildTargets(),
	}
}

func buildTargets() []callTarget {
	var targets []callTarget
	for _, n := range emergency.Numbers {
		targets = append(targets, callTarget{Label: n.Label + "  " + n.Dial, Region: n.Region})
	}
	for _, c := range emergency.Contacts(personalContact()) {
		c := c
		targets = append(targets, callTarget{Label: c.Name + "  " + c.Dial, Contact: &c})
	}
	return targets
}

// personalContact reads the optional personal emergency contact from
// the environment.
func personalContact() *emergency.Contact {
	name := os.Getenv("AROGYA_CONTACT_NAME")
	dial := os.Getenv("AROGYA_CONTACT_PHONE")
	if dial == "" {
		return nil
	}
	if name == "" {
		name = "Emergency contact"
	}
	return &emergency.Contact{Name: name, Dial: dial}
}

func (s *TriageScreen) Init() tea.Cmd {
	loc, known := s.dialer.Locator.Locate(context.Background())
	s.location = emergency.ShareMessage(loc, known)
	return nil
}

func (s *TriageScreen) Title() string {
	return "Emergency"
}

// HandlesEsc keeps Esc inside the flow: it steps back one phase instead
// of dismissing the whole screen, except at the assessment root.
func (s *TriageScreen) HandlesEsc() bool {
	return s.phase != phaseAssessment
}

func (s *TriageScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseAssessment:
		return []layout.KeyHint{
			{Key: "C", Description: "Call now"},
			{Key: "F", Description: "First aid"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseActions:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Dial"},
			{Key: "F", Description: "First aid"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "←→", Description: "Steps"},
			{Key: "C", Description: "Call now"},
			{Key: "T", Description: "Timer"},
			{Key: "R", Description: "Reset"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *TriageScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case dialedMsg:
		if msg.Err != nil {
			s.dialErr = msg.Err.Error()
			return s, nil
		}
		s.dialErr = ""
		s.dialed = &msg.Action
		return s, nil

	case timerTickMsg:
		if s.session != nil && s.session.TimerRunning() {
			s.session.Tick()
			return s, timerTick()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *TriageScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseAssessment:
		switch key {
		case "c", "C":
			s.phase = phaseActions
		case "f", "F":
			return s, s.enterFirstAid()
		}

	case phaseActions:
		switch key {
		case "esc":
			if s.cls.IsEmergency {
				s.phase = phaseAssessment
			} else {
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.targets)-1 {
				s.cursor++
			}
		case "enter":
			return s, s.dial(s.targets[s.cursor])
		case "f", "F":
			return s, s.enterFirstAid()
		}

	case phaseFirstAid:
		switch key {
		case "esc":
			if s.cls.IsEmergency {
				s.phase = phaseAssessment
			} else {
				s.phase = phaseActions
			}
		case "c", "C":
			// Calling must stay one keypress away during the walkthrough.
			s.phase = phaseActions
		case "right", "l", "n":
			s.session.Next()
		case "left", "h", "p":
			s.session.Previous()
		case "t", "T":
			if s.session.TimerRunning() {
				s.session.StopTimer()
				return s, nil
			}
			s.session.StartTimer()
			return s, timerTick()
		case "r", "R":
			s.session.ResetTimer()
		}
	}

	return s, nil
}

// enterFirstAid starts (or resumes) the walkthrough for the detected
// condition.
func (s *TriageScreen) enterFirstAid() tea.Cmd {
	if s.session == nil {
		condition := firstaidpkg.ConditionFor(s.cls)
		guide := firstaidpkg.GuideFor(condition, s.input.Language)
		s.session = firstaidpkg.NewSession(condition, guide)
	}
	s.phase = phaseFirstAid
	return nil
}

// dial runs the audited call action off the update loop.
func (s *TriageScreen) dial(target callTarget) tea.Cmd {
	dialer := s.dialer
	snap := emergency.Snapshot{
		Symptoms: s.input.FreeText,
		Severity: s.input.Severity,
	}
	return func() tea.Msg {
		var action emergency.CallAction
		var err error
		if target.Contact != nil {
			action, err = dialer.DialContact(context.Background(), *target.Contact, snap)
		} else {
			action, err = dialer.Dial(context.Background(), target.Region, snap)
		}
		return dialedMsg{Action: action, Err: err}
	}
}

func timerTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
