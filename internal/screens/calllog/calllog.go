// Package calllog shows the audit trail of emergency call actions.
package calllog

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/arogya/internal/screen"
	"github.com/abhisek/arogya/internal/store"
	"github.com/abhisek/arogya/internal/ui/layout"
	"github.com/abhisek/arogya/internal/ui/theme"
)

type callsLoadedMsg struct {
	Calls []store.CallRecord
	Err   error
}

// CallLogScreen lists recent emergency call records.
type CallLogScreen struct {
	calls    store.CallRepo
	records  []store.CallRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*CallLogScreen)(nil)
var _ screen.KeyHintProvider = (*CallLogScreen)(nil)

// New creates the call log screen.
func New(calls store.CallRepo) *CallLogScreen {
	return &CallLogScreen{
		calls:    calls,
		expanded: make(map[int]bool),
	}
}

func (s *CallLogScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := s.calls.Recent(context.Background(), 50)
		return callsLoadedMsg{Calls: records, Err: err}
	}
}

func (s *CallLogScreen) Title() string {
	return "Call History"
}

func (s *CallLogScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CallLogScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case callsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Calls
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *CallLogScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading call history...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No emergency calls recorded.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.records {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  %s (%s)",
			prefix, rec.CreatedAt.Format("Jan 02, 2006 15:04"), rec.Number, rec.Region)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString("    " + style.Render(line) + "\n")

		if s.expanded[i] {
			detail := func(label, value string) {
				if value == "" {
					value = "—"
				}
				b.WriteString("        " + theme.Hint.Render(label+": ") +
					lipgloss.NewStyle().Foreground(theme.TextDim).Render(value) + "\n")
			}
			detail("Symptoms", rec.Symptoms)
			if rec.Severity > 0 {
				detail("Severity", fmt.Sprintf("%d/10", rec.Severity))
			}
			detail("Location", rec.Location)
		}
	}
	return b.String()
}
