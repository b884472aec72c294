package results

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/arogya/internal/analysis"
	"github.com/abhisek/arogya/internal/i18n"
	"github.com/abhisek/arogya/internal/screen"
	"github.com/abhisek/arogya/internal/triage"
	"github.com/abhisek/arogya/internal/ui/components"
	"github.com/abhisek/arogya/internal/ui/layout"
	"github.com/abhisek/arogya/internal/ui/theme"
)

type chatAnswerMsg struct {
	Question string
	Answer   string
}

type localizedMsg struct {
	Result *analysis.Result
}

type chatEntry struct {
	Question string
	Answer   string
}

// ResultsScreen displays an analysis and hosts the follow-up chat.
type ResultsScreen struct {
	svc    *analysis.Service
	input  triage.PatientInput
	result *analysis.Result

	chat      []chatEntry
	chatInput components.TextInput
	chatMode  bool
	waiting   bool
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen for a completed analysis.
func New(svc *analysis.Service, input triage.PatientInput, result *analysis.Result) *ResultsScreen {
	return &ResultsScreen{
		svc:       svc,
		input:     input,
		result:    result,
		chatInput: components.NewTextInput("Ask a follow-up question...", 300),
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	if s.input.Language == i18n.English || s.input.Language == "" {
		return nil
	}
	svc, result, lang := s.svc, s.result, s.input.Language
	return func() tea.Msg {
		return localizedMsg{Result: svc.LocalizeResult(context.Background(), result, lang)}
	}
}

func (s *ResultsScreen) Title() string {
	return "Analysis"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	if s.chatMode {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Ask"},
			{Key: "Esc", Description: "Close chat"},
		}
	}
	return []layout.KeyHint{
		{Key: "/", Description: "Ask a question"},
		{Key: "Esc", Description: "Back"},
	}
}

// HandlesEsc claims Esc while the chat input is open so closing the
// chat does not pop the whole screen.
func (s *ResultsScreen) HandlesEsc() bool {
	return s.chatMode
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case localizedMsg:
		if msg.Result != nil {
			s.result = msg.Result
		}
		return s, nil

	case chatAnswerMsg:
		s.waiting = false
		s.chat = append(s.chat, chatEntry{Question: msg.Question, Answer: msg.Answer})
		return s, nil

	case tea.KeyMsg:
		key := msg.String()
		if s.chatMode {
			switch key {
			case "esc":
				s.chatMode = false
				s.chatInput.Blur()
				return s, nil
			case "enter":
				return s.ask()
			}
			var cmd tea.Cmd
			s.chatInput, cmd = s.chatInput.Update(msg)
			return s, cmd
		}
		if key == "/" {
			s.chatMode = true
			return s, s.chatInput.Focus()
		}
	}
	return s, nil
}

func (s *ResultsScreen) ask() (screen.Screen, tea.Cmd) {
	question := strings.TrimSpace(s.chatInput.Value())
	if question == "" || s.waiting {
		return s, nil
	}
	s.chatInput.SetValue("")
	s.waiting = true

	svc, input, prior := s.svc, s.input, s.result
	return s, func() tea.Msg {
		answer := svc.Chat(context.Background(), question, input, prior)
		return chatAnswerMsg{Question: question, Answer: answer}
	}
}

func (s *ResultsScreen) View(width, height int) string {
	var b strings.Builder
	r := s.result

	urgency := strings.ToUpper(string(r.Urgency))
	b.WriteString("  " + lipgloss.NewStyle().
		Foreground(theme.UrgencyColor(string(r.Urgency))).
		Bold(true).
		Render("URGENCY: "+urgency))
	if r.Source == analysis.SourceFallback {
		b.WriteString("  " + theme.Hint.Render("(offline analysis)"))
	}
	b.WriteString("\n\n")

	b.WriteString("  " + theme.Body.Bold(true).Render("Possible conditions") + "\n")
	for _, c := range r.Conditions {
		bar := components.NewProgressBar("", float64(c.Probability)/100, true, 32)
		b.WriteString(fmt.Sprintf("    %s\n    %s\n",
			theme.Body.Render(c.Name), bar.View()))
		if c.Description != "" {
			b.WriteString("    " + theme.Hint.Render(c.Description) + "\n")
		}
	}
	b.WriteString("\n")

	b.WriteString("  " + theme.Body.Bold(true).Render("Recommendations") + "\n")
	for _, rec := range r.Recommendations {
		marker := priorityMarker(rec.Priority)
		b.WriteString(fmt.Sprintf("    %s %s\n", marker, theme.Body.Render(rec.Action)))
	}
	b.WriteString("\n")

	b.WriteString("  " + theme.Body.Bold(true).Render("Seek help if") + "\n")
	for _, w := range r.WhenToSeekHelp {
		b.WriteString("    • " + theme.Body.Render(w) + "\n")
	}

	if len(r.Avoid) > 0 {
		b.WriteString("\n  " + theme.Critical.Render("Avoid") + "\n")
		for _, a := range r.Avoid {
			b.WriteString("    ✗ " + theme.Body.Render(a) + "\n")
		}
	}

	b.WriteString("\n  " + theme.Hint.Render(r.Disclaimer) + "\n")

	if len(s.chat) > 0 || s.chatMode || s.waiting {
		b.WriteString("\n" + s.renderChat(width))
	}

	return b.String()
}

func (s *ResultsScreen) renderChat(width int) string {
	var b strings.Builder
	b.WriteString("  " + theme.Body.Bold(true).Render("Follow-up") + "\n")

	// Show only the last two exchanges to keep the screen readable.
	start := 0
	if len(s.chat) > 2 {
		start = len(s.chat) - 2
	}
	for _, e := range s.chat[start:] {
		b.WriteString("    " + lipgloss.NewStyle().Foreground(theme.Secondary).Render("You: "+e.Question) + "\n")
		wrapped := lipgloss.NewStyle().Foreground(theme.Text).Width(width - 8).Render(e.Answer)
		b.WriteString(indent(wrapped, "    ") + "\n")
	}

	if s.waiting {
		b.WriteString("    " + theme.Hint.Render("Thinking...") + "\n")
	}
	if s.chatMode {
		b.WriteString("    " + s.chatInput.View() + "\n")
	}
	return b.String()
}

func priorityMarker(priority string) string {
	switch priority {
	case "critical":
		return theme.Critical.Render("‼")
	case "high":
		return lipgloss.NewStyle().Foreground(theme.Warning).Render("!")
	default:
		return theme.Hint.Render("·")
	}
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
