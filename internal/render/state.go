// Package render owns the drawn pathway handles of a rendering surface and
// their current style.
package render

import (
	"errors"
	"fmt"
	"log/slog"

	"campusmap/internal/geom"
	"campusmap/internal/logger"
	"campusmap/internal/pathway"
)

var (
	ErrNotFound = errors.New("pathway handle not found")
	ErrNotReady = errors.New("rendering surface not ready")
)

// Handle is an opaque drawn object owned by a Surface.
type Handle any

// Surface is the drawing backend. Points arrive in render order.
type Surface interface {
	CreatePolyline(points []geom.LatLon, style Style) Handle
	SetHandleStyle(h Handle, style Style)
	RaiseHandle(h Handle)
}

type entry struct {
	handle Handle
	style  Style
}

// State maps pathway ids to live handles on one surface lifetime.
// A State without a surface treats every operation as a no-op.
type State struct {
	registry *pathway.Registry
	surface  Surface
	entries  map[string]*entry
	front    []string
	log      *slog.Logger
}

func NewState(reg *pathway.Registry, l *slog.Logger) *State {
	if l == nil {
		l = logger.L()
	}
	return &State{registry: reg, log: l}
}

// Initialize creates one Normal handle per registry pathway on s, replacing
// any handles from a previous surface. A nil surface leaves the state not
// ready. It returns the number of handles created.
func (st *State) Initialize(s Surface) int {
	st.entries = nil
	st.front = nil
	st.surface = s
	if s == nil {
		st.log.Debug("render_initialize_skipped", "reason", "surface not ready")
		return 0
	}
	ids := st.registry.AllIDs()
	st.entries = make(map[string]*entry, len(ids))
	for _, id := range ids {
		pts := geom.ToRenderOrder(st.registry.Points(id))
		h := s.CreatePolyline(pts, Normal)
		st.entries[id] = &entry{handle: h, style: Normal}
	}
	st.log.Info("render_initialized", "handles", len(st.entries))
	return len(st.entries)
}

// Teardown invalidates every handle at once. The state is not ready until
// the next Initialize.
func (st *State) Teardown() {
	if st.surface != nil {
		st.log.Info("render_teardown", "handles", len(st.entries))
	}
	st.surface = nil
	st.entries = nil
	st.front = nil
}

// Ready reports whether a surface is attached.
func (st *State) Ready() bool { return st.surface != nil }

// Len is the number of live handles.
func (st *State) Len() int { return len(st.entries) }

// SetStyle restyles the handle of id. Unknown ids and a missing surface are
// reported, logged and otherwise ignored.
func (st *State) SetStyle(id string, style Style) error {
	e, err := st.lookup(id, "set_style")
	if err != nil {
		return err
	}
	st.surface.SetHandleStyle(e.handle, style)
	e.style = style
	return nil
}

// BringToFront raises the handle of id above every other handle.
func (st *State) BringToFront(id string) error {
	e, err := st.lookup(id, "bring_to_front")
	if err != nil {
		return err
	}
	st.surface.RaiseHandle(e.handle)
	for i, f := range st.front {
		if f == id {
			st.front = append(st.front[:i], st.front[i+1:]...)
			break
		}
	}
	st.front = append(st.front, id)
	return nil
}

// StyleOf returns the current style of id.
func (st *State) StyleOf(id string) (Style, bool) {
	e, ok := st.entries[id]
	if !ok {
		return Normal, false
	}
	return e.style, true
}

// Highlighted returns the highlighted ids in registry order.
func (st *State) Highlighted() []string {
	var out []string
	for _, id := range st.registry.AllIDs() {
		if e, ok := st.entries[id]; ok && e.style == Highlighted {
			out = append(out, id)
		}
	}
	return out
}

// FrontOrder lists raised ids, last is frontmost.
func (st *State) FrontOrder() []string {
	return append([]string(nil), st.front...)
}

func (st *State) lookup(id, op string) (*entry, error) {
	if st.surface == nil {
		return nil, ErrNotReady
	}
	e, ok := st.entries[id]
	if !ok {
		st.log.Warn("pathway_not_found", "op", op, "id", id)
		return nil, fmt.Errorf("%s %q: %w", op, id, ErrNotFound)
	}
	return e, nil
}
