// Package app wires the stores, the analysis service and the Bubble Tea
// shell together.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/arogya/internal/analysis"
	"github.com/abhisek/arogya/internal/emergency"
	"github.com/abhisek/arogya/internal/llm"
	"github.com/abhisek/arogya/internal/router"
	"github.com/abhisek/arogya/internal/screen"
	"github.com/abhisek/arogya/internal/screens/home"
	"github.com/abhisek/arogya/internal/store"
	"github.com/abhisek/arogya/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	mode   string
	width  int
	height int
}

// Deps bundles the services the shell needs.
type Deps struct {
	Store    *store.Store
	Service  *analysis.Service
	Dialer   *emergency.Dialer
	ModeName string // provider model id, or "offline"
}

// BuildDeps opens the store and constructs the provider-backed (or
// offline) analysis service. Provider setup failures degrade to offline
// rather than blocking the app: the rule-based core must always run.
func BuildDeps(ctx context.Context, dbPath string) (Deps, error) {
	st, err := store.Open(dbPath)
	if err != nil {
		return Deps{}, fmt.Errorf("open store: %w", err)
	}

	var provider llm.Provider
	mode := "offline"

	cfg := llm.ConfigFromEnv()
	if cfg.Validate() != nil {
		if discovered, ok := llm.DiscoverConfig(); ok {
			cfg = discovered
		}
	}
	if cfg.Validate() == nil {
		if p, err := llm.NewProvider(ctx, cfg, st.EventRepo()); err == nil {
			provider = p
			mode = p.ModelID()
		}
	}

	dialer := emergency.NewDialer(st.CallRepo(), emergency.EnvLocator{})

	return Deps{
		Store:    st,
		Service:  analysis.NewService(provider),
		Dialer:   dialer,
		ModeName: mode,
	}, nil
}

// newAppModel creates the root model with the home screen.
func newAppModel(deps Deps) AppModel {
	homeScreen := home.New(deps.Service, deps.Store, deps.Dialer)
	return AppModel{
		router: router.New(homeScreen),
		mode:   deps.ModeName,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens that own Esc (emergency flow, open chat) get it
			// forwarded instead of being popped.
			if h, ok := m.router.Active().(screen.EscHandler); ok && h.HandlesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, "English", m.mode, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program with the given dependencies. The
// caller owns the store and closes it after Run returns.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
