package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"campusmap/internal/location"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	contentWidth := max(10, m.width)

	// Header
	header := titleStyle.Render(" campusmap ─ pathway highlighter ")
	if m.showMarkers {
		header += "  " + markerLegend()
	}
	header = lipgloss.NewStyle().Width(contentWidth).Padding(0).Render(header)

	// Side panel
	var panel string
	if m.mode == modeCompose {
		panel = m.renderCompose(contentHeight)
	} else {
		panel = m.l.View()
	}
	panel = lipgloss.NewStyle().Width(sidebarWidth).Height(contentHeight).MaxHeight(contentHeight).Render(panel)

	// Map viewport
	var mapView string
	switch {
	case m.showAttrs:
		maxW := min(m.mapW, 64)
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(m.mapH-2, 16))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(m.mapW, m.mapH, lipgloss.Center, lipgloss.Center, box)
	case m.cv == nil:
		mapView = lipgloss.Place(m.mapW, m.mapH, lipgloss.Center, lipgloss.Center, dimStyle.Render("waiting for map surface…"))
	default:
		cx, cy := -1, -1
		if m.hovering {
			cx, cy = m.hoverCellX, m.hoverCellY
		}
		mapView = lipgloss.NewStyle().Width(m.mapW).Height(m.mapH).Render(m.cv.render(m.markers(), cx, cy))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, panel, " ", mapView)

	// Footer / help
	st := dimStyle
	if m.statusErr {
		st = errStyle
	}
	status := st.Render(" " + m.status + " ")
	coords := ""
	if m.hoverHasGeo {
		coords = dimStyle.Render(fmt.Sprintf("  lon=%.6f lat=%.6f  ", m.hoverAt.Lon(), m.hoverAt.Lat()))
	}
	spacerW := max(0, contentWidth-lipgloss.Width(status)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	line1 := lipgloss.JoinHorizontal(lipgloss.Bottom, status, right)
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinVertical(lipgloss.Left, line1, m.renderHelp()))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderCompose(height int) string {
	var b strings.Builder
	title := "New location"
	if m.draft.EditingID != "" {
		title = "Edit location"
	}
	b.WriteString(titleStyle.Render(title) + "\n")

	label := func(f field, s string) string {
		if m.focus == f {
			return focusStyle.Render("› " + s)
		}
		return "  " + s
	}
	b.WriteString(label(fieldName, "Name ") + m.name.View() + "\n")
	b.WriteString(label(fieldType, fmt.Sprintf("Type     ‹ %s ›", m.draft.Type)) + "\n")
	b.WriteString(label(fieldCategory, fmt.Sprintf("Category ‹ %s ›", m.draft.Category)) + "\n")
	b.WriteString(label(fieldAccess, fmt.Sprintf("Access   ‹ %s ›", m.draft.AccessType)) + "\n")
	if m.draft.HasCoords {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  At %.6f, %.6f", m.draft.Latitude, m.draft.Longitude)) + "\n")
	}
	b.WriteString(label(fieldPaths, "Pathways") + "\n")

	// picker rows, scrolled to keep the cursor visible
	rows := m.pickerRows()
	room := max(3, height-14)
	start := clamp(m.pick-room/2, 0, max(0, len(rows)-room))
	for i := start; i < len(rows) && i < start+room; i++ {
		b.WriteString(rows[i] + "\n")
	}

	b.WriteString(label(fieldDesc, "Description") + "\n")
	b.WriteString(m.desc.View())
	return b.String()
}

// pickerRows renders one row per pathway, prefixed by its group on change.
// Row i corresponds to m.pickIDs[i].
func (m Model) pickerRows() []string {
	chosen := map[string]bool{}
	for _, id := range m.draft.ConnectedPath {
		chosen[id] = true
	}
	out := make([]string, 0, len(m.pickIDs))
	for i, id := range m.pickIDs {
		box := "[ ]"
		if chosen[id] {
			box = "[x]"
		}
		row := fmt.Sprintf("%s %s", box, m.reg.DisplayName(id))
		if chosen[id] {
			row = selectedStyle.Render(row)
		}
		if m.focus == fieldPaths && i == m.pick {
			row = focusStyle.Render("› ") + row
		} else {
			row = "  " + row
		}
		if i == 0 || m.pickGroup[i] != m.pickGroup[i-1] {
			row = dimStyle.Render(m.pickGroup[i]) + "\n" + row
		}
		out = append(out, row)
	}
	return out
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	var keys []string
	if m.mode == modeCompose {
		keys = []string{
			"Tab field",
			"←→ change",
			"↑↓ move",
			"Space toggle",
			"click place",
			"Enter save",
			"Esc cancel",
		}
	} else {
		keys = []string{
			"↑↓ highlight",
			"/ filter",
			"n new",
			"e edit",
			"d delete",
			"a details",
			"x export",
			"m markers",
			"+/- zoom",
			"h help",
			"q quit",
		}
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}

// markerLegend lists the marker colours per location type.
func markerLegend() string {
	parts := make([]string, 0, len(location.Types))
	for _, t := range location.Types {
		parts = append(parts, lipgloss.NewStyle().Foreground(lipgloss.Color(location.TypeColor(t))).Render("●")+" "+string(t))
	}
	return strings.Join(parts, "  ")
}
