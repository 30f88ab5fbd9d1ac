package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"jigcalc/pkg/geometry"
)

// ══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Dracula-inspired with semantic verdict colors
// ══════════════════════════════════════════════════════════════════════════════

var (
	ColorBg          = lipgloss.Color("#282A36")
	ColorBgSubtle    = lipgloss.Color("#363949")
	ColorBgHighlight = lipgloss.Color("#44475A")
	ColorText        = lipgloss.Color("#F8F8F2")
	ColorSubtext     = lipgloss.Color("#BFBFBF")
	ColorMuted       = lipgloss.Color("#6272A4")

	ColorPrimary = lipgloss.Color("#BD93F9")
	ColorAccent  = lipgloss.Color("#FF79C6")
	ColorInfo    = lipgloss.Color("#8BE9FD")
	ColorSuccess = lipgloss.Color("#50FA7B")
	ColorWarning = lipgloss.Color("#FFB86C")
	ColorDanger  = lipgloss.Color("#FF5555")

	// Verdict background colors (for badges)
	ColorSuccessBg = lipgloss.Color("#1A3D2A")
	ColorWarningBg = lipgloss.Color("#3D2A1A")
	ColorDangerBg  = lipgloss.Color("#3D1A1A")
)

// ══════════════════════════════════════════════════════════════════════════════
// PANEL AND TEXT STYLES
// ══════════════════════════════════════════════════════════════════════════════

var (
	// PanelStyle is the default style for unfocused panels
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBgHighlight).
			Padding(0, 1)

	// FocusedPanelStyle is the style for the focused panel
	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtext)

	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	IssueStyle = lipgloss.NewStyle().
			Foreground(ColorDanger)

	HintStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	KeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)
)

// RenderStatusBadge returns a styled verdict badge for one output cell.
func RenderStatusBadge(status geometry.Status) string {
	var fg, bg lipgloss.Color
	var label string

	switch status {
	case geometry.StatusOK:
		fg, bg, label = ColorSuccess, ColorSuccessBg, " OK "
	case geometry.StatusConditional:
		fg, bg, label = ColorWarning, ColorWarningBg, "CHECK"
	case geometry.StatusOutOfRange:
		fg, bg, label = ColorDanger, ColorDangerBg, "RANGE"
	case geometry.StatusError:
		fg, bg, label = ColorDanger, ColorDangerBg, "ERROR"
	default: // incomplete
		fg, bg, label = ColorMuted, ColorBgSubtle, " -- "
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Bold(true).
		Render(label)
}

// RenderDivider renders a horizontal divider line
func RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(ColorBgHighlight).
		Render(strings.Repeat("─", width))
}
