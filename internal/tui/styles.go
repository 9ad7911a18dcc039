package tui

import (
	"github.com/charmbracelet/lipgloss"

	"campusmap/internal/render"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	errorFg   = lipgloss.Color("#EF4444")
	borderCol = lipgloss.Color("#243141")

	appStyle      = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle    = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(baseDimFg)
	errStyle      = lipgloss.NewStyle().Foreground(errorFg)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	focusStyle    = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	selectedStyle = pathStyle(render.Highlighted)

	inkStyles = map[ink]lipgloss.Style{
		inkNone:        lipgloss.NewStyle(),
		inkNormal:      pathStyle(render.Normal),
		inkHighlighted: pathStyle(render.Highlighted),
	}
)

// pathStyle turns pathway paint attributes into a terminal style: thin
// translucent strokes render faint, heavy ones bold.
func pathStyle(s render.Style) lipgloss.Style {
	a := s.Attributes()
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(a.Color))
	if a.Opacity < 1 {
		st = st.Faint(true)
	}
	if a.Weight > 2 {
		st = st.Bold(true)
	}
	return st
}
