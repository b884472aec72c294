package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/arogya/internal/analysis"
	"github.com/abhisek/arogya/internal/emergency"
	"github.com/abhisek/arogya/internal/router"
	"github.com/abhisek/arogya/internal/screen"
	"github.com/abhisek/arogya/internal/screens/calllog"
	"github.com/abhisek/arogya/internal/screens/firstaid"
	"github.com/abhisek/arogya/internal/screens/intake"
	triagescreen "github.com/abhisek/arogya/internal/screens/triage"
	"github.com/abhisek/arogya/internal/store"
	"github.com/abhisek/arogya/internal/triage"
	"github.com/abhisek/arogya/internal/ui/components"
	"github.com/abhisek/arogya/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu      components.Menu
	lastInput *triage.PatientInput
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc *analysis.Service, st *store.Store, dialer *emergency.Dialer) *HomeScreen {
	ctx := context.Background()

	// Prefill the intake form from the last saved patient record.
	var lastInput *triage.PatientInput
	var saved triage.PatientInput
	if st != nil {
		if ok, err := st.RecordRepo().Load(ctx, store.KeyPatient, &saved); err == nil && ok {
			lastInput = &saved
		}
	}

	items := []components.MenuItem{
		{Label: "CHECK SYMPTOMS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: intake.New(svc, st, dialer, lastInput)}
			}
		}},
		{Label: "FIRST AID GUIDES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: firstaid.NewBrowser()}
			}
		}},
		{Label: "EMERGENCY CALL", Urgent: true, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: triagescreen.NewDirect(dialer)}
			}
		}},
		{Label: "CALL HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: calllog.New(st.CallRepo())}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:      components.NewMenu(items),
		lastInput: lastInput,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("AROGYA"))
	sections = append(sections, theme.Subtitle.Width(width).Render("Symptom checker and emergency triage"))

	menu := h.menu.View()
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Render(menu)))

	disclaimer := theme.Hint.Width(width).Align(lipgloss.Center).Render(
		"Not a substitute for professional medical advice.\nIn an emergency, call your local emergency number.")
	sections = append(sections, disclaimer)

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
