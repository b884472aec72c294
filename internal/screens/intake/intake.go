package intake

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/arogya/internal/analysis"
	"github.com/abhisek/arogya/internal/emergency"
	"github.com/abhisek/arogya/internal/i18n"
	"github.com/abhisek/arogya/internal/router"
	"github.com/abhisek/arogya/internal/screen"
	"github.com/abhisek/arogya/internal/screens/loading"
	triagescreen "github.com/abhisek/arogya/internal/screens/triage"
	"github.com/abhisek/arogya/internal/store"
	"github.com/abhisek/arogya/internal/triage"
	"github.com/abhisek/arogya/internal/ui/components"
	"github.com/abhisek/arogya/internal/ui/layout"
	"github.com/abhisek/arogya/internal/ui/theme"
)

// debounceDelay is how long after the last edit the live emergency
// check runs. Short enough to feel immediate, long enough to skip
// per-keystroke churn.
const debounceDelay = 400 * time.Millisecond

// Form field focus order.
const (
	fieldText = iota
	fieldTags
	fieldSeverity
	fieldDuration
	fieldAge
	fieldLanguage
	fieldAnalyze
	fieldCount
)

// tagOrder fixes the checklist display order.
var tagOrder = []triage.SymptomTag{
	triage.TagFever, triage.TagHeadache, triage.TagCough, triage.TagFatigue,
	triage.TagNausea, triage.TagStomachPain, triage.TagChestPain,
	triage.TagBreathing, triage.TagDizziness, triage.TagRash,
}

var tagLabels = map[triage.SymptomTag]string{
	triage.TagFever:       "Fever",
	triage.TagHeadache:    "Headache",
	triage.TagCough:       "Cough",
	triage.TagFatigue:     "Fatigue",
	triage.TagNausea:      "Nausea",
	triage.TagStomachPain: "Stomach pain",
	triage.TagChestPain:   "Chest pain",
	triage.TagBreathing:   "Breathing trouble",
	triage.TagDizziness:   "Dizziness",
	triage.TagRash:        "Skin rash",
}

// Duration options offered by the form. Index 0 means unspecified.
var durationLabels = []string{"Not sure", "A few hours", "Since today", "1-2 days", "3-7 days", "Over a week", "Chronic"}
var durationValues = []string{"", triage.DurationFewHours, triage.DurationToday, triage.Duration1To2Days, triage.Duration3To7Days, triage.DurationOverWeek, triage.DurationChronic}

var ageValues = []triage.AgeBracket{triage.Age18To30, triage.Age31To50, triage.Age51To65, triage.Age65Plus}

// langOrder fixes the language picker order, English first.
var langOrder = []i18n.Lang{
	i18n.English, i18n.Hindi, i18n.Bengali, i18n.Tamil, i18n.Telugu,
	i18n.Gujarati, i18n.Marathi, i18n.Kannada, i18n.Malayalam,
	i18n.Punjabi, i18n.Urdu, i18n.Assamese, i18n.Odia,
}

// IntakeScreen is the symptom entry form with a live emergency check.
type IntakeScreen struct {
	svc    *analysis.Service
	st     *store.Store
	dialer *emergency.Dialer

	input    components.TextInput
	tags     map[triage.SymptomTag]bool
	tagIdx   int
	severity components.Picker
	duration components.Picker
	age      components.Picker
	lang     components.Picker
	focus    int

	monitor   *triage.Monitor
	lastClass triage.Classification
	banner    bool
	seq       int
}

var _ screen.Screen = (*IntakeScreen)(nil)
var _ screen.KeyHintProvider = (*IntakeScreen)(nil)

// New creates the intake form, prefilled from the last saved input when
// one exists.
func New(svc *analysis.Service, st *store.Store, dialer *emergency.Dialer, prev *triage.PatientInput) *IntakeScreen {
	sevOptions := make([]string, 10)
	for i := range sevOptions {
		sevOptions[i] = fmt.Sprintf("%d", i+1)
	}
	ageOptions := make([]string, len(ageValues))
	for i, a := range ageValues {
		ageOptions[i] = string(a)
	}
	langOptions := make([]string, len(langOrder))
	for i, l := range langOrder {
		langOptions[i] = i18n.Names[l]
	}

	s := &IntakeScreen{
		svc:      svc,
		st:       st,
		dialer:   dialer,
		input:    components.NewTextInput("Describe your symptoms...", 500),
		tags:     make(map[triage.SymptomTag]bool),
		severity: components.NewPicker("Severity (1-10)", sevOptions),
		duration: components.NewPicker("Duration       ", durationLabels),
		age:      components.NewPicker("Age group      ", ageOptions),
		lang:     components.NewPicker("Language       ", langOptions),
		monitor:  triage.NewMonitor(),
	}
	s.severity.Selected = 4 // default 5/10

	if prev != nil {
		s.input.SetValue(prev.FreeText)
		for _, tag := range prev.Symptoms {
			s.tags[tag] = true
		}
		if prev.Severity >= 1 && prev.Severity <= 10 {
			s.severity.Selected = prev.Severity - 1
		}
		for i, v := range durationValues {
			if v == prev.Duration {
				s.duration.Selected = i
			}
		}
		for i, a := range ageValues {
			if a == prev.AgeGroup {
				s.age.Selected = i
			}
		}
		for i, l := range langOrder {
			if l == prev.Language {
				s.lang.Selected = i
			}
		}
	}

	return s
}

func (s *IntakeScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *IntakeScreen) Title() string {
	return "Check Symptoms"
}

func (s *IntakeScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Analyze"},
		{Key: "Esc", Description: "Back"},
	}
	if s.banner {
		hints = append([]layout.KeyHint{{Key: "Ctrl+E", Description: "Emergency actions"}}, hints...)
	}
	return hints
}

// PatientInput assembles the current form state.
func (s *IntakeScreen) PatientInput() triage.PatientInput {
	var selected []triage.SymptomTag
	for _, tag := range tagOrder {
		if s.tags[tag] {
			selected = append(selected, tag)
		}
	}
	return triage.PatientInput{
		FreeText: s.input.Value(),
		Symptoms: selected,
		Severity: s.severity.Selected + 1,
		Duration: durationValues[s.duration.Selected],
		AgeGroup: ageValues[s.age.Selected],
		Language: langOrder[s.lang.Selected],
	}
}

func (s *IntakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case classifyTickMsg:
		if msg.Seq != s.seq {
			return s, nil
		}
		input := s.PatientInput()
		s.lastClass = triage.Classify(input)
		if !s.lastClass.IsEmergency {
			s.banner = false
			return s, nil
		}
		if s.monitor.ShouldAlert(input, s.lastClass) {
			s.banner = true
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.focus == fieldText {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *IntakeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+e":
		if s.lastClass.IsEmergency {
			input := s.PatientInput()
			cls := s.lastClass
			dialer := s.dialer
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: triagescreen.New(cls, input, dialer)}
			}
		}
		return s, nil

	case "tab", "down":
		if s.focus == fieldText && key == "down" {
			// let the cursor stay usable; only tab leaves the text field
			break
		}
		s.setFocus((s.focus + 1) % fieldCount)
		return s, nil

	case "shift+tab", "up":
		if s.focus == fieldText {
			return s, nil
		}
		s.setFocus((s.focus - 1 + fieldCount) % fieldCount)
		return s, nil

	case "enter":
		if s.focus == fieldTags {
			return s.toggleTag()
		}
		return s.analyze()

	case " ", "space":
		if s.focus == fieldTags {
			return s.toggleTag()
		}
	}

	switch s.focus {
	case fieldText:
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, tea.Batch(cmd, s.scheduleClassify())

	case fieldTags:
		switch key {
		case "left", "h":
			if s.tagIdx > 0 {
				s.tagIdx--
			}
		case "right", "l":
			if s.tagIdx < len(tagOrder)-1 {
				s.tagIdx++
			}
		}
		return s, nil

	case fieldSeverity:
		var cmd tea.Cmd
		s.severity, cmd = s.severity.Update(msg)
		return s, tea.Batch(cmd, s.scheduleClassify())

	case fieldDuration:
		var cmd tea.Cmd
		s.duration, cmd = s.duration.Update(msg)
		return s, tea.Batch(cmd, s.scheduleClassify())

	case fieldAge:
		var cmd tea.Cmd
		s.age, cmd = s.age.Update(msg)
		return s, tea.Batch(cmd, s.scheduleClassify())

	case fieldLanguage:
		var cmd tea.Cmd
		s.lang, cmd = s.lang.Update(msg)
		return s, tea.Batch(cmd, s.scheduleClassify())
	}

	return s, nil
}

func (s *IntakeScreen) toggleTag() (screen.Screen, tea.Cmd) {
	tag := tagOrder[s.tagIdx]
	s.tags[tag] = !s.tags[tag]
	return s, s.scheduleClassify()
}

func (s *IntakeScreen) setFocus(f int) {
	s.focus = f
	if f == fieldText {
		s.input.Focus()
	} else {
		s.input.Blur()
	}
	s.severity.Focused = f == fieldSeverity
	s.duration.Focused = f == fieldDuration
	s.age.Focused = f == fieldAge
	s.lang.Focused = f == fieldLanguage
}

// scheduleClassify restarts the debounce window after an edit.
func (s *IntakeScreen) scheduleClassify() tea.Cmd {
	s.seq++
	seq := s.seq
	return tea.Tick(debounceDelay, func(time.Time) tea.Msg {
		return classifyTickMsg{Seq: seq}
	})
}

// analyze saves the form and hands off to the loading screen.
func (s *IntakeScreen) analyze() (screen.Screen, tea.Cmd) {
	input := s.PatientInput()
	if strings.TrimSpace(input.FreeText) == "" && len(input.Symptoms) == 0 {
		return s, nil
	}

	if s.st != nil {
		_ = s.st.RecordRepo().Save(context.Background(), store.KeyPatient, input)
	}

	svc, st, dialer := s.svc, s.st, s.dialer
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: loading.New(svc, st, dialer, input)}
	}
}

func (s *IntakeScreen) View(width, height int) string {
	var b strings.Builder

	if s.banner {
		b.WriteString(renderBanner(s.lastClass, width))
		b.WriteString("\n\n")
	}

	label := func(f int, text string) string {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if s.focus == f {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		return style.Render(text)
	}

	b.WriteString(label(fieldText, "  What are you experiencing?"))
	b.WriteString("\n  " + s.input.View() + "\n\n")

	b.WriteString(label(fieldTags, "  Common symptoms (space to toggle)"))
	b.WriteString("\n" + s.renderTags() + "\n")

	b.WriteString("  " + s.severity.View() + "\n")
	b.WriteString("  " + s.duration.View() + "\n")
	b.WriteString("  " + s.age.View() + "\n")
	b.WriteString("  " + s.lang.View() + "\n\n")

	button := components.Button{Label: "ANALYZE SYMPTOMS", Active: s.focus == fieldAnalyze}
	b.WriteString("  " + button.View() + "\n")

	return b.String()
}

func (s *IntakeScreen) renderTags() string {
	var lines []string
	perRow := 5
	for row := 0; row*perRow < len(tagOrder); row++ {
		var cells []string
		for col := 0; col < perRow; col++ {
			i := row*perRow + col
			if i >= len(tagOrder) {
				break
			}
			tag := tagOrder[i]
			box := "[ ]"
			if s.tags[tag] {
				box = "[x]"
			}
			cell := fmt.Sprintf("%s %s", box, tagLabels[tag])
			style := lipgloss.NewStyle().Foreground(theme.Text).Width(22)
			if s.focus == fieldTags && i == s.tagIdx {
				style = style.Foreground(theme.Primary).Bold(true)
			} else if s.tags[tag] {
				style = style.Foreground(theme.Secondary)
			}
			cells = append(cells, style.Render(cell))
		}
		lines = append(lines, "    "+strings.Join(cells, ""))
	}
	return strings.Join(lines, "\n") + "\n"
}

// renderBanner draws the emergency strip shown when the live check fires.
func renderBanner(c triage.Classification, width int) string {
	text := fmt.Sprintf("⚠ POSSIBLE EMERGENCY: %s — press Ctrl+E for emergency actions", c.Reason)
	return theme.EmergencyCard.Width(width - 4).Render(
		lipgloss.NewStyle().Foreground(theme.Emergency).Bold(true).Render(text))
}
