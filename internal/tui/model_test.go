package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusmap/internal/location"
	"campusmap/internal/logger"
	"campusmap/internal/pathway"
)

var fixedNow = time.Date(2025, 10, 18, 9, 30, 0, 0, time.UTC)

func seedLocations() []location.Location {
	return []location.Location{
		{
			ID: "loc_registrar", Name: "Registrar", Type: location.TypeOffice,
			Category: location.CategoryAdministrative, AccessType: location.AccessExternal,
			ConnectedPath: []string{"admin_path", "admin_registrar_path"},
			Latitude:      8.63340, Longitude: 126.09370, CreatedAt: fixedNow,
		},
		{
			ID: "loc_canteen", Name: "Canteen", Type: location.TypeFacility,
			Category: location.CategoryService, AccessType: location.AccessInternal,
			ConnectedPath: []string{"canteen_path"},
			Latitude:      8.63320, Longitude: 126.09340, CreatedAt: fixedNow.Add(-time.Hour),
		},
	}
}

func newTestModel(t *testing.T, store location.Store) Model {
	t.Helper()
	return New(Options{
		Registry:  pathway.Campus(),
		Store:     store,
		Logger:    logger.Discard(),
		ExportDir: t.TempDir(),
		Now:       func() time.Time { return fixedNow },
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

// run executes cmd and feeds its message back into the model.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// ready sizes the window, delivers the readiness signal and loads locations.
func ready(t *testing.T, m Model) Model {
	t.Helper()
	m = run(t, m, m.Init())
	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 140, Height: 40})
	return run(t, m, cmd)
}

func TestSurfaceMountsOnReadiness(t *testing.T) {
	m := newTestModel(t, location.NewMemoryStore())

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 140, Height: 40})
	assert.False(t, m.state.Ready(), "not ready before the signal")
	assert.Contains(t, m.View(), "waiting for map surface")

	m = run(t, m, cmd)
	assert.True(t, m.state.Ready())
	assert.Equal(t, m.reg.Len(), m.state.Len())
	assert.Len(t, m.cv.lines, m.reg.Len())
}

func TestStaleReadinessIsIgnored(t *testing.T) {
	m := newTestModel(t, location.NewMemoryStore())
	m, first := update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, second := update(t, m, tea.WindowSizeMsg{Width: 140, Height: 40})

	m = run(t, m, first)
	assert.False(t, m.state.Ready())

	m = run(t, m, second)
	assert.True(t, m.state.Ready())
	assert.Equal(t, 140-sidebarWidth-1, m.cv.w)
}

func TestHoverHighlightsConnectedPaths(t *testing.T) {
	m := ready(t, newTestModel(t, location.NewMemoryStore(seedLocations()...)))
	require.Len(t, m.locs, 2)

	m, _ = update(t, m, key("down"))
	assert.Equal(t, []string{"canteen_path"}, m.state.Highlighted())

	m, _ = update(t, m, key("up"))
	assert.ElementsMatch(t, []string{"admin_path", "admin_registrar_path"}, m.state.Highlighted())
	assert.Contains(t, m.status, "Administration + Admin-Registrar")

	m, _ = update(t, m, key("esc"))
	assert.Empty(t, m.state.Highlighted())
}

func TestReloadRecomputesHoverSelection(t *testing.T) {
	store := location.NewMemoryStore(seedLocations()...)
	m := ready(t, newTestModel(t, store))
	m, _ = update(t, m, key("down"))
	require.Equal(t, []string{"canteen_path"}, m.state.Highlighted())

	require.NoError(t, store.Delete(context.Background(), "loc_canteen"))
	m, cmd := update(t, m, key("r"))
	m = run(t, m, cmd)

	require.Len(t, m.locs, 1)
	assert.ElementsMatch(t, []string{"admin_path", "admin_registrar_path"}, m.state.Highlighted())
}

func TestReloadKeepsClearedSelection(t *testing.T) {
	m := ready(t, newTestModel(t, location.NewMemoryStore(seedLocations()...)))
	m, _ = update(t, m, key("down"))
	m, _ = update(t, m, key("esc"))

	m, cmd := update(t, m, key("r"))
	m = run(t, m, cmd)

	assert.Empty(t, m.state.Highlighted())
}

func TestResizeRemountsAndReappliesSelection(t *testing.T) {
	m := ready(t, newTestModel(t, location.NewMemoryStore(seedLocations()...)))
	m, _ = update(t, m, key("down"))
	old := m.cv

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
	assert.False(t, m.state.Ready())
	assert.Nil(t, m.cv)

	m = run(t, m, cmd)
	require.NotNil(t, m.cv)
	assert.NotSame(t, old, m.cv)
	assert.Equal(t, []string{"canteen_path"}, m.state.Highlighted())
}

func TestComposeHighlightsPickedPathsAndSaves(t *testing.T) {
	store := location.NewMemoryStore()
	m := ready(t, newTestModel(t, store))

	m, _ = update(t, m, key("n"))
	require.Equal(t, modeCompose, m.mode)
	require.True(t, m.draft.HasCoords)

	for _, r := range "Library" {
		m, _ = update(t, m, key(string(r)))
	}
	for i := 0; i < int(fieldPaths); i++ {
		m, _ = update(t, m, key("tab"))
	}
	require.Equal(t, fieldPaths, m.focus)

	m, _ = update(t, m, key("space"))
	m, _ = update(t, m, key("down"))
	m, _ = update(t, m, key("space"))
	want := []string{m.pickIDs[0], m.pickIDs[1]}
	assert.ElementsMatch(t, want, m.state.Highlighted())

	m, cmd := update(t, m, key("enter"))
	m, cmd = update(t, m, cmd())
	assert.Equal(t, modeBrowse, m.mode)
	assert.Empty(t, m.state.Highlighted(), "saving clears the selection")

	m = run(t, m, cmd)
	require.Len(t, m.locs, 1)
	assert.Equal(t, "Library", m.locs[0].Name)
	assert.Equal(t, want, m.locs[0].ConnectedPath)
	assert.True(t, m.locs[0].DualPathways)
}

func TestComposeRequiresAPathway(t *testing.T) {
	m := ready(t, newTestModel(t, location.NewMemoryStore()))
	m, _ = update(t, m, key("n"))

	m, cmd := update(t, m, key("enter"))

	assert.Nil(t, cmd)
	assert.True(t, m.statusErr)
	assert.Equal(t, modeCompose, m.mode)
}

func TestComposeEscapeClearsSelection(t *testing.T) {
	m := ready(t, newTestModel(t, location.NewMemoryStore(seedLocations()...)))
	m, _ = update(t, m, key("e"))
	require.Equal(t, modeCompose, m.mode)
	assert.NotEmpty(t, m.state.Highlighted())

	m, _ = update(t, m, key("esc"))

	assert.Equal(t, modeBrowse, m.mode)
	assert.Empty(t, m.state.Highlighted())
}

func TestEditKeepsIdentity(t *testing.T) {
	store := location.NewMemoryStore(seedLocations()...)
	m := ready(t, newTestModel(t, store))
	m, _ = update(t, m, key("e"))
	for i := 0; i < int(fieldPaths); i++ {
		m, _ = update(t, m, key("tab"))
	}
	m, _ = update(t, m, key("space"))

	m, cmd := update(t, m, key("enter"))
	m, cmd = update(t, m, cmd())
	m = run(t, m, cmd)

	locs, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, locs, 2)
	assert.Equal(t, "loc_registrar", m.locs[0].ID)
	assert.False(t, m.locs[0].UpdatedAt.IsZero())
}

func TestDeleteSelected(t *testing.T) {
	store := location.NewMemoryStore(seedLocations()...)
	m := ready(t, newTestModel(t, store))

	m, cmd := update(t, m, key("d"))
	m, cmd = update(t, m, cmd())
	m = run(t, m, cmd)

	require.Len(t, m.locs, 1)
	assert.Equal(t, "loc_canteen", m.locs[0].ID)
}

func TestExportWritesDatedFile(t *testing.T) {
	m := ready(t, newTestModel(t, location.NewMemoryStore(seedLocations()...)))

	m, cmd := update(t, m, key("x"))
	m = run(t, m, cmd)

	path := filepath.Join(m.exportDir, "campus_locations_2025-10-18.geojson")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"loc_registrar"`)
	assert.Contains(t, m.status, "exported 2 locations")
}

func TestDetailsTable(t *testing.T) {
	m := ready(t, newTestModel(t, location.NewMemoryStore(seedLocations()...)))

	m, _ = update(t, m, key("a"))

	require.True(t, m.showAttrs)
	var pathsRow []string
	for _, r := range m.tbl.Rows() {
		if r[0] == "pathways" {
			pathsRow = r
		}
	}
	require.NotNil(t, pathsRow)
	assert.Equal(t, "Administration + Admin-Registrar", pathsRow[1])
}

func TestMouseReadout(t *testing.T) {
	m := ready(t, newTestModel(t, location.NewMemoryStore()))

	m, _ = update(t, m, tea.MouseMsg{X: sidebarWidth + 1 + m.mapW/2, Y: headerHeight + m.mapH/2, Action: tea.MouseActionMotion})
	assert.True(t, m.hoverHasGeo)
	assert.True(t, strings.Contains(m.View(), "lon="))

	m, _ = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	assert.False(t, m.hovering)
}
