package loading

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/arogya/internal/analysis"
	"github.com/abhisek/arogya/internal/emergency"
	"github.com/abhisek/arogya/internal/router"
	"github.com/abhisek/arogya/internal/screen"
	"github.com/abhisek/arogya/internal/screens/results"
	triagescreen "github.com/abhisek/arogya/internal/screens/triage"
	"github.com/abhisek/arogya/internal/store"
	"github.com/abhisek/arogya/internal/triage"
	"github.com/abhisek/arogya/internal/ui/components"
	"github.com/abhisek/arogya/internal/ui/theme"
)

// minDisplay keeps the loading screen up long enough to read even when
// the local fallback answers instantly.
const minDisplay = 1200 * time.Millisecond

// framesPerStage advances the stage label every 600ms of spinner time.
const framesPerStage = 6

var stages = []string{
	"Reviewing your symptoms...",
	"Checking for emergency indicators...",
	"Consulting medical knowledge...",
	"Preparing recommendations...",
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type analysisDoneMsg struct {
	Result *analysis.Result
}

type spinnerTickMsg time.Time

type handoffMsg struct{}

// LoadingScreen runs the analysis asynchronously behind a staged
// progress display.
type LoadingScreen struct {
	svc    *analysis.Service
	st     *store.Store
	dialer *emergency.Dialer
	input  triage.PatientInput

	started time.Time
	frame   int
	stage   int
	result  *analysis.Result
}

var _ screen.Screen = (*LoadingScreen)(nil)

// New creates a loading screen that analyzes the given input.
func New(svc *analysis.Service, st *store.Store, dialer *emergency.Dialer, input triage.PatientInput) *LoadingScreen {
	return &LoadingScreen{svc: svc, st: st, dialer: dialer, input: input}
}

func (s *LoadingScreen) Init() tea.Cmd {
	s.started = time.Now()
	return tea.Batch(s.runAnalysis(), spinnerTick())
}

func (s *LoadingScreen) Title() string {
	return "Analyzing"
}

func (s *LoadingScreen) runAnalysis() tea.Cmd {
	svc, st, input := s.svc, s.st, s.input
	return func() tea.Msg {
		result := svc.Analyze(context.Background(), input)
		if st != nil {
			_ = st.RecordRepo().Save(context.Background(), store.KeyAnalysis, result)
		}
		return analysisDoneMsg{Result: result}
	}
}

func (s *LoadingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		s.frame++
		if s.frame%framesPerStage == 0 && s.stage < len(stages)-1 {
			s.stage++
		}
		if s.result != nil && time.Since(s.started) >= minDisplay {
			return s, func() tea.Msg { return handoffMsg{} }
		}
		return s, spinnerTick()

	case analysisDoneMsg:
		s.result = msg.Result
		if time.Since(s.started) >= minDisplay {
			return s, func() tea.Msg { return handoffMsg{} }
		}
		return s, nil

	case handoffMsg:
		return s, s.handoff()
	}
	return s, nil
}

// handoff replaces this screen so Esc from the destination skips the
// loading step. Emergencies land on the emergency flow directly.
func (s *LoadingScreen) handoff() tea.Cmd {
	result, input, svc, dialer := s.result, s.input, s.svc, s.dialer
	if result.IsEmergency && result.Classification != nil {
		cls := *result.Classification
		return func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: triagescreen.New(cls, input, dialer)}
		}
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: results.New(svc, input, result)}
	}
}

func (s *LoadingScreen) View(width, height int) string {
	spinner := spinnerFrames[s.frame%len(spinnerFrames)]

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(spinner + "  " + stages[s.stage]))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", float64(s.stage+1)/float64(len(stages)), false, 40)
	b.WriteString(bar.View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
