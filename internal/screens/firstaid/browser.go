// Package firstaid is the standalone first-aid guide browser, reachable
// from the home menu outside any emergency.
package firstaid

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	firstaidpkg "github.com/abhisek/arogya/internal/firstaid"
	"github.com/abhisek/arogya/internal/i18n"
	"github.com/abhisek/arogya/internal/screen"
	"github.com/abhisek/arogya/internal/ui/layout"
	"github.com/abhisek/arogya/internal/ui/theme"
)

type timerTickMsg time.Time

// conditionOrder fixes the browser's list order.
var conditionOrder = []firstaidpkg.Condition{
	firstaidpkg.ConditionCardiac,
	firstaidpkg.ConditionRespiratory,
	firstaidpkg.ConditionStroke,
	firstaidpkg.ConditionTrauma,
	firstaidpkg.ConditionAllergic,
	firstaidpkg.ConditionGeneral,
}

var conditionLabels = map[firstaidpkg.Condition]string{
	firstaidpkg.ConditionCardiac:     "Heart attack / cardiac",
	firstaidpkg.ConditionRespiratory: "Breathing difficulty",
	firstaidpkg.ConditionStroke:      "Stroke",
	firstaidpkg.ConditionTrauma:      "Injury / trauma",
	firstaidpkg.ConditionAllergic:    "Severe allergic reaction",
	firstaidpkg.ConditionGeneral:     "General emergency",
}

// BrowserScreen lists the first-aid guides and walks through one.
type BrowserScreen struct {
	cursor  int
	lang    i18n.Lang
	session *firstaidpkg.Session
}

var _ screen.Screen = (*BrowserScreen)(nil)
var _ screen.KeyHintProvider = (*BrowserScreen)(nil)
var _ screen.EscHandler = (*BrowserScreen)(nil)

// NewBrowser creates the guide browser.
func NewBrowser() *BrowserScreen {
	return &BrowserScreen{lang: i18n.Default}
}

func (s *BrowserScreen) Init() tea.Cmd {
	return nil
}

func (s *BrowserScreen) Title() string {
	return "First Aid"
}

func (s *BrowserScreen) HandlesEsc() bool {
	return s.session != nil
}

func (s *BrowserScreen) KeyHints() []layout.KeyHint {
	if s.session != nil {
		return []layout.KeyHint{
			{Key: "←→", Description: "Steps"},
			{Key: "T", Description: "Timer"},
			{Key: "Esc", Description: "Guides"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Open guide"},
		{Key: "L", Description: "Language"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BrowserScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
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

func (s *BrowserScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.session != nil {
		switch key {
		case "esc":
			s.session = nil
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
		return s, nil
	}

	switch key {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(conditionOrder)-1 {
			s.cursor++
		}
	case "l", "L":
		// Toggle between English and Hindi, the two script languages.
		if s.lang == i18n.English {
			s.lang = i18n.Hindi
		} else {
			s.lang = i18n.English
		}
	case "enter":
		condition := conditionOrder[s.cursor]
		guide := firstaidpkg.GuideFor(condition, s.lang)
		s.session = firstaidpkg.NewSession(condition, guide)
	}
	return s, nil
}

func (s *BrowserScreen) View(width, height int) string {
	if s.session != nil {
		return s.viewGuide(width)
	}

	var b strings.Builder
	b.WriteString("  " + theme.Body.Bold(true).Render("First-aid guides") +
		"  " + theme.Hint.Render("("+i18n.Names[s.lang]+")") + "\n\n")

	for i, c := range conditionOrder {
		prefix := "    "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.cursor {
			prefix = "  ▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(prefix+conditionLabels[c]) + "\n")
	}
	return b.String()
}

func (s *BrowserScreen) viewGuide(width int) string {
	var b strings.Builder
	g := s.session.Guide

	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(g.Title) + "\n")
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
	b.WriteString(fmt.Sprintf("  %s %s\n\n",
		theme.Body.Bold(true).Render("Timer:"), s.session.ElapsedDisplay()))

	if s.session.AtLastStep() && len(g.Warnings) > 0 {
		b.WriteString("  " + theme.Critical.Render("Watch for") + "\n")
		for _, w := range g.Warnings {
			b.WriteString("    ⚠ " + theme.Body.Render(w) + "\n")
		}
	}
	return b.String()
}

func timerTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
