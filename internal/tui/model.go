package tui

import (
	"log/slog"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"campusmap/internal/geom"
	"campusmap/internal/highlight"
	"campusmap/internal/location"
	"campusmap/internal/logger"
	"campusmap/internal/pathway"
	"campusmap/internal/render"
)

const (
	sidebarWidth   = 36
	headerHeight   = 1
	footerHeight   = 2
	defaultTimeout = 10 * time.Second
)

type mode int

const (
	modeBrowse mode = iota
	modeCompose
)

// field is the focused control of the compose form.
type field int

const (
	fieldName field = iota
	fieldType
	fieldCategory
	fieldAccess
	fieldPaths
	fieldDesc
	fieldCount
)

// Options wires the model to its collaborators.
type Options struct {
	Registry  *pathway.Registry
	Store     location.Store
	Logger    *slog.Logger
	ExportDir string
	// Timeout bounds every store call.
	Timeout time.Duration
	Now     func() time.Time
}

type Model struct {
	width  int
	height int

	helpVisible bool
	showMarkers bool
	showAttrs   bool

	status    string
	statusErr bool

	reg     *pathway.Registry
	state   *render.State
	ctl     *highlight.Controller
	binding *highlight.Binding
	store   location.Store
	log     *slog.Logger

	exportDir string
	timeout   time.Duration
	now       func() time.Time

	// rendering surface; nil until the mount for mountSeq reports ready
	cv       *canvas
	mountSeq int
	mapW     int
	mapH     int
	zoom     float64

	locs []location.Location
	l    list.Model
	tbl  table.Model

	// compose form
	mode      mode
	draft     location.Draft
	focus     field
	pick      int
	pickIDs   []string
	pickGroup []string
	name      textinput.Model
	desc      textarea.Model

	// hover state
	hovering    bool
	hoverCellX  int
	hoverCellY  int
	hoverHasGeo bool
	hoverAt     geom.LonLat
}

func New(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = logger.L()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ExportDir == "" {
		opts.ExportDir = "."
	}
	if opts.Store == nil {
		opts.Store = location.NewMemoryStore()
	}
	if opts.Registry == nil {
		opts.Registry = pathway.Campus()
	}
	st := render.NewState(opts.Registry, opts.Logger)
	ctl := highlight.NewController(opts.Registry, st, opts.Logger)
	m := Model{
		helpVisible: true,
		showMarkers: true,
		status:      "campusmap ready",
		reg:         opts.Registry,
		state:       st,
		ctl:         ctl,
		binding:     highlight.NewBinding(ctl),
		store:       opts.Store,
		log:         opts.Logger,
		exportDir:   opts.ExportDir,
		timeout:     opts.Timeout,
		now:         opts.Now,
		zoom:        1.0,
	}
	// list setup
	d := list.NewDefaultDelegate()
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Locations"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// compose inputs
	m.name = textinput.New()
	m.name.Placeholder = "Location name"
	m.name.CharLimit = 120
	m.desc = textarea.New()
	m.desc.Placeholder = "Description (optional)"
	m.desc.CharLimit = 0
	m.desc.SetWidth(sidebarWidth - 4)
	m.desc.SetHeight(3)
	// details table
	m.tbl = table.New(
		table.WithColumns([]table.Column{{Title: "Field", Width: 14}, {Title: "Value", Width: 44}}),
		table.WithFocused(true),
	)
	m.tbl.SetHeight(16)
	m.buildPicker()
	return m
}

func (m Model) Init() tea.Cmd { return m.loadLocationsCmd() }

// buildPicker flattens the grouped pathway options. Pathways in no group are
// listed last under "Other".
func (m *Model) buildPicker() {
	seen := map[string]bool{}
	for _, g := range m.reg.Options() {
		for _, o := range g.Options {
			if seen[o.ID] {
				continue
			}
			seen[o.ID] = true
			m.pickIDs = append(m.pickIDs, o.ID)
			m.pickGroup = append(m.pickGroup, g.Group)
		}
	}
	for _, id := range m.reg.AllIDs() {
		if !seen[id] {
			m.pickIDs = append(m.pickIDs, id)
			m.pickGroup = append(m.pickGroup, "Other")
		}
	}
}

// viewportPoints are the render-order points the map is fitted to.
func (m Model) viewportPoints() []geom.LatLon {
	pts := geom.ToRenderOrder(m.reg.AllPoints())
	for _, l := range m.locs {
		pts = append(pts, geom.ToRenderOrder([]geom.LonLat{l.Coordinates()})...)
	}
	return pts
}

func (m Model) markers() []marker {
	if !m.showMarkers {
		return nil
	}
	out := make([]marker, 0, len(m.locs)+1)
	for _, l := range m.locs {
		at := geom.ToRenderOrder([]geom.LonLat{l.Coordinates()})[0]
		out = append(out, marker{at: at, color: location.TypeColor(l.Type)})
	}
	if m.mode == modeCompose && m.draft.HasCoords {
		at := geom.ToRenderOrder([]geom.LonLat{{m.draft.Longitude, m.draft.Latitude}})[0]
		out = append(out, marker{at: at, color: string(accentFg)})
	}
	return out
}

func (m Model) selected() (location.Location, bool) {
	it, ok := m.l.SelectedItem().(locItem)
	if !ok {
		return location.Location{}, false
	}
	return it.loc, true
}
