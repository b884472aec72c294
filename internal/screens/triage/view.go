package triage

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	triagepkg "github.com/abhisek/arogya/internal/triage"
	"github.com/abhisek/arogya/internal/ui/theme"
)

func (s *TriageScreen) View(width, height int) string {
	switch s.phase {
	case phaseAssessment:
		return s.viewAssessment(width)
	case phaseActions:
		return s.viewActions(width)
	default:
		return s.viewFirstAid(width)
	}
}

func (s *TriageScreen) viewAssessment(width int) string {
	var b strings.Builder

	header := theme.EmergencyCard.Width(width - 4).Render(
		theme.Critical.Render("⚠ EMERGENCY INDICATORS DETECTED") + "\n" +
			lipgloss.NewStyle().Foreground(theme.Text).Render(s.cls.Reason))
	b.WriteString(header + "\n\n")

	b.WriteString(fmt.Sprintf("  %s %s\n",
		theme.Body.Bold(true).Render("Urgency:"),
		theme.Critical.Render(strings.ToUpper(string(s.cls.Level)))))
	if s.cls.Keyword != "" {
		b.WriteString(fmt.Sprintf("  %s %q\n",
			theme.Body.Bold(true).Render("Matched:"), s.cls.Keyword))
	}
	b.WriteString("\n")

	bundle := triagepkg.Recommendations(s.cls)
	if len(bundle.Immediate) > 0 {
		b.WriteString("  " + theme.Body.Bold(true).Render("Do now") + "\n")
		for _, r := range bundle.Immediate {
			b.WriteString("    • " + theme.Body.Render(r) + "\n")
		}
		b.WriteString("\n")
	}
	if len(bundle.Avoid) > 0 {
		b.WriteString("  " + theme.Critical.Render("Do NOT") + "\n")
		for _, r := range bundle.Avoid {
			b.WriteString("    ✗ " + theme.Body.Render(r) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("  " + theme.Hint.Render("Press C to call emergency services, F for first-aid steps."))
	return b.String()
}

func (s *TriageScreen) viewActions(width int) string {
	var b strings.Builder

	b.WriteString("  " + theme.Critical.Render("EMERGENCY CALL") + "\n\n")

	for i, t := range s.targets {
		prefix := "    "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.cursor {
			prefix = "  ▸ "
			style = lipgloss.NewStyle().Foreground(theme.Emergency).Bold(true)
		}
		b.WriteString(style.Render(prefix+t.Label) + "\n")
	}
	b.WriteString("\n")

	if s.dialErr != "" {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Error).
			Render("Could not record the call: "+s.dialErr) + "\n\n")
	}
	if s.dialed != nil {
		b.WriteString("  " + theme.Safe.Render("Ready to dial: "+s.dialed.URI) + "\n")
		b.WriteString("  " + theme.Hint.Render("Open this number on your phone now.") + "\n\n")
	}

	b.WriteString("  " + theme.Body.Bold(true).Render("Share with responders") + "\n")
	b.WriteString("    " + lipgloss.NewStyle().Foreground(theme.Text).Width(width-8).Render(s.location) + "\n")

	return b.String()
}

func (s *TriageScreen) viewFirstAid(width int) string {
	var b strings.Builder
	g := s.session.Guide

	b.WriteString("  " + theme.Critical.Render(g.Title) + "\n")
	if g.Warning != "" {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Warning).Width(width-4).Render(g.Warning) + "\n")
	}
	b.WriteString("\n")

	step := s.session.Current()
	b.WriteString(fmt.Sprintf("  %s\n\n",
		theme.Body.Bold(true).Render(fmt.Sprintf("Step %d of %d: %s",
			s.session.Step()+1, len(g.Steps), step.Title))))
	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Text).Width(width-4).Render(step.Instruction) + "\n\n")

	if step.Duration > 0 {
		b.WriteString(fmt.Sprintf("  %s %ds suggested\n",
			theme.Hint.Render("Duration:"), step.Duration))
	}

	timerLabel := "stopped"
	if s.session.TimerRunning() {
		timerLabel = "running"
	}
	b.WriteString(fmt.Sprintf("  %s %s (%s)\n\n",
		theme.Body.Bold(true).Render("Timer:"),
		s.session.ElapsedDisplay(), timerLabel))

	if s.session.AtLastStep() && len(g.Warnings) > 0 {
		b.WriteString("  " + theme.Critical.Render("Watch for") + "\n")
		for _, w := range g.Warnings {
			b.WriteString("    ⚠ " + theme.Body.Render(w) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("  " + theme.Critical.Render("Press C to call emergency services now."))
	return b.String()
}
