package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"campusmap/internal/location"
)

type locItem struct {
	loc   location.Location
	paths string
}

func (i locItem) Title() string       { return i.loc.Name }
func (i locItem) Description() string { return i.paths }
func (i locItem) FilterValue() string { return i.loc.Name + " " + i.loc.Building }

type (
	locationsLoadedMsg struct {
		locs []location.Location
		err  error
	}
	locationSavedMsg struct {
		loc     location.Location
		created bool
		err     error
	}
	locationDeletedMsg struct {
		id  string
		err error
	}
	exportedMsg struct {
		path string
		n    int
		err  error
	}
)

// setLocations replaces the list contents, keeping the cursor in range. A
// hover selection is recomputed from whatever entry is now under the cursor.
func (m *Model) setLocations(locs []location.Location) {
	m.locs = locs
	items := make([]list.Item, 0, len(locs))
	for _, l := range locs {
		items = append(items, locItem{loc: l, paths: m.reg.DisplayPath(l.ConnectedPath)})
		if unknown := m.reg.Unknown(l.ConnectedPath); len(unknown) > 0 {
			m.log.Warn("location_unknown_pathways", "id", l.ID, "unknown", unknown)
		}
	}
	m.l.SetItems(items)
	if len(items) > 0 && m.l.Index() >= len(items) {
		m.l.Select(len(items) - 1)
	}
	if m.cv != nil {
		m.cv.FitBounds(m.viewportPoints())
	}
	if m.mode == modeBrowse && len(m.binding.Active()) > 0 {
		m.hoverSelected()
	}
}

func (m Model) loadLocationsCmd() tea.Cmd {
	store, timeout := m.store, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		locs, err := store.List(ctx)
		return locationsLoadedMsg{locs: locs, err: err}
	}
}

func (m Model) saveLocationCmd(l location.Location, create bool) tea.Cmd {
	store, timeout := m.store, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		var err error
		if create {
			err = store.Create(ctx, l)
		} else {
			err = store.Update(ctx, l)
		}
		return locationSavedMsg{loc: l, created: create, err: err}
	}
}

func (m Model) deleteLocationCmd(id string) tea.Cmd {
	store, timeout := m.store, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return locationDeletedMsg{id: id, err: store.Delete(ctx, id)}
	}
}

func (m Model) exportCmd() tea.Cmd {
	locs := append([]location.Location(nil), m.locs...)
	path := filepath.Join(m.exportDir, location.ExportFileName(m.now()))
	return func() tea.Msg {
		n, err := writeExport(path, locs)
		return exportedMsg{path: path, n: n, err: err}
	}
}

// writeExport writes locs to path as GeoJSON and returns how many were written.
func writeExport(path string, locs []location.Location) (int, error) {
	data, err := location.ExportGeoJSON(locs)
	if err != nil {
		return 0, fmt.Errorf("encode export: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("write export: %w", err)
	}
	return len(locs), nil
}
