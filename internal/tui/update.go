package tui

import (
	"errors"
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"campusmap/internal/geom"
	"campusmap/internal/location"
)

// surfaceReadyMsg reports that the canvas of mount seq can be drawn on.
type surfaceReadyMsg struct {
	seq  int
	w, h int
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, m.remount()
	case surfaceReadyMsg:
		if msg.seq != m.mountSeq {
			return m, nil
		}
		m.mount(msg.w, msg.h)
		return m, nil
	case locationsLoadedMsg:
		if msg.err != nil {
			m.log.Error("locations_load_failed", "err", msg.err)
			m.setStatus("load failed: "+msg.err.Error(), true)
			return m, nil
		}
		m.setLocations(msg.locs)
		m.setStatus(fmt.Sprintf("%d locations", len(msg.locs)), false)
		return m, nil
	case locationSavedMsg:
		if msg.err != nil {
			m.log.Error("location_save_failed", "id", msg.loc.ID, "err", msg.err)
			m.setStatus("save failed: "+msg.err.Error(), true)
			return m, nil
		}
		verb := "updated"
		if msg.created {
			verb = "created"
		}
		m.log.Info("location_saved", "id", msg.loc.ID, "op", verb)
		m.closeCompose()
		m.setStatus(fmt.Sprintf("%s %q", verb, msg.loc.Name), false)
		return m, m.loadLocationsCmd()
	case locationDeletedMsg:
		if msg.err != nil {
			m.log.Error("location_delete_failed", "id", msg.id, "err", msg.err)
			m.setStatus("delete failed: "+msg.err.Error(), true)
			return m, nil
		}
		m.binding.OnHoverLocation(nil)
		m.setStatus("deleted "+msg.id, false)
		return m, m.loadLocationsCmd()
	case exportedMsg:
		if msg.err != nil {
			m.log.Error("export_failed", "path", msg.path, "err", msg.err)
			m.setStatus("export failed: "+msg.err.Error(), true)
			return m, nil
		}
		m.log.Info("export_written", "path", msg.path, "count", msg.n)
		m.setStatus(fmt.Sprintf("exported %d locations to %s", msg.n, msg.path), false)
		return m, nil
	case tea.KeyMsg:
		if m.mode == modeCompose {
			return m.updateCompose(msg)
		}
		// While filtering, keys belong to the list.
		if m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			m.hoverSelected()
			return m, cmd
		}
		return m.updateBrowse(msg)
	case tea.MouseMsg:
		m.updateMouse(msg)
		return m, nil
	}
	return m, nil
}

// layout sizes the map area and the side panel from the window size.
func (m *Model) layout() {
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	m.mapW = max(10, m.width-sidebarWidth-1)
	m.mapH = contentHeight
	m.l.SetSize(sidebarWidth-2, contentHeight-2)
}

// remount tears the current surface down and schedules readiness of a new
// one sized to the map area.
func (m *Model) remount() tea.Cmd {
	if m.cv != nil {
		m.state.Teardown()
		m.cv = nil
	}
	m.mountSeq++
	seq, w, h := m.mountSeq, m.mapW, m.mapH
	return func() tea.Msg { return surfaceReadyMsg{seq: seq, w: w, h: h} }
}

// mount attaches a fresh canvas, creates the pathway handles and re-applies
// the current selection.
func (m *Model) mount(w, h int) {
	cv := newCanvas(w, h)
	cv.zoom = m.zoom
	cv.FitBounds(m.viewportPoints())
	m.cv = cv
	n := m.state.Initialize(cv)
	res := m.ctl.ApplySelection(m.binding.Active())
	m.log.Debug("surface_mounted", "seq", m.mountSeq, "w", w, "h", h, "handles", n, "highlighted", len(res.Highlighted))
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "down", "k", "j", "pgup", "pgdown", "home", "end", "/":
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		m.hoverSelected()
		return m, cmd
	case "esc":
		m.binding.OnHoverLocation(nil)
		m.showAttrs = false
		m.setStatus("selection cleared", false)
	case "n":
		at, ok := m.cursorLonLat()
		if !ok {
			m.setStatus("map not ready", true)
			return m, nil
		}
		d := location.NewDraft()
		d.SetCoords(at.Lat(), at.Lon())
		m.openCompose(d)
		m.setStatus("new location: pick pathways, enter to save", false)
	case "e":
		l, ok := m.selected()
		if !ok {
			m.setStatus("no location selected", true)
			return m, nil
		}
		m.openCompose(location.EditDraft(l))
		m.setStatus("editing "+l.Name, false)
	case "d":
		l, ok := m.selected()
		if !ok {
			m.setStatus("no location selected", true)
			return m, nil
		}
		return m, m.deleteLocationCmd(l.ID)
	case "a":
		m.showAttrs = !m.showAttrs
		if m.showAttrs {
			m.refreshDetails()
		}
	case "x":
		return m, m.exportCmd()
	case "r":
		return m, m.loadLocationsCmd()
	case "m":
		m.showMarkers = !m.showMarkers
		m.setStatus(fmt.Sprintf("markers: %v", m.showMarkers), false)
	case "h":
		m.helpVisible = !m.helpVisible
	case "+", "=":
		if m.zoom < 64 {
			m.setZoom(m.zoom * 1.2)
		}
	case "-", "_":
		if m.zoom > 0.05 {
			m.setZoom(m.zoom / 1.2)
		}
	}
	return m, nil
}

func (m *Model) setZoom(z float64) {
	m.zoom = z
	if m.cv != nil {
		m.cv.zoom = z
	}
	m.setStatus(fmt.Sprintf("zoom: %.2fx", z), false)
}

// hoverSelected highlights the pathways of the list's current entry.
func (m *Model) hoverSelected() {
	l, ok := m.selected()
	if !ok {
		m.binding.OnHoverLocation(nil)
		return
	}
	m.binding.OnHoverLocation(&l)
	m.setStatus(l.Name+": "+m.reg.DisplayPath(l.ConnectedPath), false)
	if m.showAttrs {
		m.refreshDetails()
	}
}

// cursorLonLat is the hovered map position, or the viewport centre.
func (m Model) cursorLonLat() (geom.LonLat, bool) {
	if m.cv == nil {
		return geom.LonLat{}, false
	}
	if m.hoverHasGeo {
		return m.hoverAt, true
	}
	return m.cv.cellToLonLat(m.cv.w/2, m.cv.h/2)
}

func (m *Model) openCompose(d location.Draft) {
	m.mode = modeCompose
	m.showAttrs = false
	m.draft = d
	m.focus = fieldName
	m.pick = 0
	m.name.SetValue(d.Name)
	m.desc.SetValue(d.Description)
	m.desc.Blur()
	m.name.Focus()
	m.binding.OnComposingPathsChange(d.ConnectedPath)
}

// closeCompose leaves the form and clears the selection.
func (m *Model) closeCompose() {
	m.mode = modeBrowse
	m.draft = location.Draft{}
	m.name.Blur()
	m.desc.Blur()
	m.binding.OnHoverLocation(nil)
}

func (m Model) updateCompose(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.closeCompose()
		m.setStatus("cancelled", false)
		return m, nil
	case "tab":
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil
	case "shift+tab":
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil
	case "ctrl+s":
		return m.submit()
	case "enter":
		if m.focus != fieldDesc {
			return m.submit()
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldName:
		m.name, cmd = m.name.Update(msg)
	case fieldDesc:
		m.desc, cmd = m.desc.Update(msg)
	case fieldType:
		m.draft.Type = cycle(location.Types, m.draft.Type, step(msg))
	case fieldCategory:
		m.draft.Category = cycle(location.Categories, m.draft.Category, step(msg))
	case fieldAccess:
		m.draft.AccessType = cycle(location.Accesses, m.draft.AccessType, step(msg))
	case fieldPaths:
		switch msg.String() {
		case "up", "k":
			m.pick = clamp(m.pick-1, 0, len(m.pickIDs)-1)
		case "down", "j":
			m.pick = clamp(m.pick+1, 0, len(m.pickIDs)-1)
		case " ", "space":
			if len(m.pickIDs) > 0 {
				m.draft.TogglePath(m.pickIDs[m.pick])
				m.binding.OnComposingPathsChange(m.draft.ConnectedPath)
			}
		}
	}
	return m, cmd
}

func (m *Model) setFocus(f field) {
	m.focus = f
	m.name.Blur()
	m.desc.Blur()
	switch f {
	case fieldName:
		m.name.Focus()
	case fieldDesc:
		m.desc.Focus()
	}
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	m.draft.Name = m.name.Value()
	m.draft.Description = m.desc.Value()
	l, err := m.draft.Build(m.now().UTC())
	if err != nil {
		var ve *location.ValidationError
		if errors.As(err, &ve) {
			m.setStatus(ve.Error(), true)
		} else {
			m.setStatus(err.Error(), true)
		}
		return m, nil
	}
	return m, m.saveLocationCmd(l, m.draft.EditingID == "")
}

// step maps left/right keys to -1/+1 and anything else to 0.
func step(msg tea.KeyMsg) int {
	switch msg.String() {
	case "left", "h":
		return -1
	case "right", "l":
		return 1
	}
	return 0
}

func cycle[T comparable](vals []T, cur T, d int) T {
	if len(vals) == 0 || d == 0 {
		return cur
	}
	i := 0
	for j, v := range vals {
		if v == cur {
			i = j
			break
		}
	}
	return vals[(i+d+len(vals))%len(vals)]
}

// updateMouse tracks the hovered map cell. A left click while composing
// moves the new location there.
func (m *Model) updateMouse(msg tea.MouseMsg) {
	mapOriginX := sidebarWidth + 1
	mapOriginY := headerHeight
	cx, cy := msg.X, msg.Y
	if m.cv == nil || cx < mapOriginX || cx >= mapOriginX+m.mapW || cy < mapOriginY || cy >= mapOriginY+m.mapH {
		m.hovering = false
		m.hoverHasGeo = false
		return
	}
	m.hovering = true
	m.hoverCellX = cx - mapOriginX
	m.hoverCellY = cy - mapOriginY
	at, ok := m.cv.cellToLonLat(m.hoverCellX, m.hoverCellY)
	m.hoverHasGeo = ok
	m.hoverAt = at
	if ok && m.mode == modeCompose && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.draft.SetCoords(at.Lat(), at.Lon())
		m.setStatus(fmt.Sprintf("moved to %.6f, %.6f", at.Lat(), at.Lon()), false)
	}
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}
