package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/arogya/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	HeaderHeight = 3
	FooterHeight = 3

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

// KeyHint is one key binding shown in the footer. Screens list their
// hints most-important-first; on narrow terminals trailing hints are
// dropped, so the call-for-help binding always survives.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactWidth reports whether the terminal width is in compact range.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsCompactHeight reports whether the terminal height is in compact range.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall reports whether the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight returns the available height for screen content.
func ContentHeight(totalHeight int) int {
	h := totalHeight - HeaderHeight - FooterHeight
	if h < 0 {
		return 0
	}
	return h
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader renders the application header bar: app name on the
// left, screen title centered, active language and analysis mode (the
// provider's model ID, or "offline") on the right.
func RenderHeader(title, language, mode string, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  Arogya")

	center := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(title)

	modeStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	if mode == "offline" {
		modeStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
	}
	right := lipgloss.NewStyle().Foreground(theme.Secondary).Render(language) +
		"   " + modeStyle.Render(mode)

	return chromeBar(spread(left, center, right, width), width)
}

// RenderFooter renders the key hint footer, dropping trailing hints
// that don't fit the width.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key)+
				" "+
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description))
	}

	content := "  " + strings.Join(parts, "   ")
	for len(parts) > 1 && lipgloss.Width(content) > width-2 {
		parts = parts[:len(parts)-1]
		content = "  " + strings.Join(parts, "   ")
	}

	return chromeBar(content, width)
}

// RenderFrame composes the full frame: header + content + footer.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	body := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return header + "\n" + body + "\n" + footer
}

// chromeBar is the bordered single-line box used for both header and
// footer.
func chromeBar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// spread lays out left, centered, and right segments on one line,
// keeping at least one space between them when the width is tight.
func spread(left, center, right string, width int) string {
	innerWidth := width - 4 // border padding
	if innerWidth < 0 {
		innerWidth = 0
	}

	leftGap := (innerWidth-lipgloss.Width(center))/2 - lipgloss.Width(left)
	if leftGap < 1 {
		leftGap = 1
	}
	rightGap := innerWidth - lipgloss.Width(left) - leftGap -
		lipgloss.Width(center) - lipgloss.Width(right)
	if rightGap < 1 {
		rightGap = 1
	}

	return left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
}
