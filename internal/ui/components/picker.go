package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/arogya/internal/ui/theme"
)

// Picker cycles through a fixed list of options with left/right keys.
// Used for the intake form's severity, duration, and age fields.
type Picker struct {
	Label    string
	Options  []string
	Selected int
	Focused  bool
}

// NewPicker creates a picker over the given options.
func NewPicker(label string, options []string) Picker {
	return Picker{Label: label, Options: options}
}

// Update handles left/right cycling while focused.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	if !p.Focused {
		return p, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if p.Selected > 0 {
			p.Selected--
		}
	case "right", "l":
		if p.Selected < len(p.Options)-1 {
			p.Selected++
		}
	}

	return p, nil
}

// Value returns the selected option, or "" when nothing is selected.
func (p Picker) Value() string {
	if p.Selected < 0 || p.Selected >= len(p.Options) {
		return ""
	}
	return p.Options[p.Selected]
}

// View renders the picker as  Label  ◂ option ▸ .
func (p Picker) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text)
	arrowStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if p.Focused {
		labelStyle = labelStyle.Foreground(theme.Primary).Bold(true)
		valueStyle = valueStyle.Foreground(theme.Primary).Bold(true)
		arrowStyle = arrowStyle.Foreground(theme.Primary)
	}

	left := "◂"
	if p.Selected == 0 {
		left = " "
	}
	right := "▸"
	if p.Selected == len(p.Options)-1 {
		right = " "
	}

	return fmt.Sprintf("%s  %s %s %s",
		labelStyle.Render(p.Label),
		arrowStyle.Render(left),
		valueStyle.Render(p.Value()),
		arrowStyle.Render(right),
	)
}
