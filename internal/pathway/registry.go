// Package pathway holds the static catalog of campus pathways: named
// polylines keyed by id and the named groups they are listed under.
package pathway

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"campusmap/internal/geom"
	"campusmap/internal/logger"
)

var (
	ErrUnknownPathway   = errors.New("unknown pathway")
	ErrDuplicatePathway = errors.New("duplicate pathway id")
	ErrMalformedPathway = errors.New("pathway needs at least two points")
)

// Pathway is one walkable segment. Points are (lon, lat) in drawing order.
type Pathway struct {
	ID     string
	Name   string
	Points []geom.LonLat
}

// Group is a named, ordered bucket of pathway ids.
type Group struct {
	Name string
	IDs  []string
}

// Option is a pickable pathway entry.
type Option struct {
	ID   string
	Name string
}

// GroupOptions lists the options of one group in order.
type GroupOptions struct {
	Group   string
	Options []Option
}

// Registry is read-only after construction.
type Registry struct {
	byID   map[string]Pathway
	order  []string
	groups []Group
	log    *slog.Logger
}

// NewRegistry validates and indexes pathways and groups. Definition order is
// kept for AllIDs and Groups.
func NewRegistry(pathways []Pathway, groups []Group) (*Registry, error) {
	r := &Registry{
		byID:  make(map[string]Pathway, len(pathways)),
		order: make([]string, 0, len(pathways)),
	}
	for _, p := range pathways {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: empty id", ErrMalformedPathway)
		}
		if _, dup := r.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePathway, p.ID)
		}
		if len(p.Points) < 2 {
			return nil, fmt.Errorf("%w: %s has %d", ErrMalformedPathway, p.ID, len(p.Points))
		}
		p.Points = append([]geom.LonLat(nil), p.Points...)
		r.byID[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	for _, g := range groups {
		for _, id := range g.IDs {
			if _, ok := r.byID[id]; !ok {
				return nil, fmt.Errorf("group %q: %w: %s", g.Name, ErrUnknownPathway, id)
			}
		}
		r.groups = append(r.groups, Group{Name: g.Name, IDs: append([]string(nil), g.IDs...)})
	}
	return r, nil
}

// WithLogger sets the logger used for dangling-reference diagnostics.
func (r *Registry) WithLogger(l *slog.Logger) *Registry {
	r.log = l
	return r
}

func (r *Registry) logger() *slog.Logger {
	if r.log != nil {
		return r.log
	}
	return logger.L()
}

// Lookup returns the pathway for id.
func (r *Registry) Lookup(id string) (Pathway, bool) {
	p, ok := r.byID[id]
	if !ok {
		return Pathway{}, false
	}
	p.Points = append([]geom.LonLat(nil), p.Points...)
	return p, true
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// AllIDs returns every id in definition order.
func (r *Registry) AllIDs() []string {
	return append([]string(nil), r.order...)
}

// Len is the number of registered pathways.
func (r *Registry) Len() int { return len(r.order) }

// Groups returns the groups in definition order.
func (r *Registry) Groups() []Group {
	out := make([]Group, len(r.groups))
	for i, g := range r.groups {
		out[i] = Group{Name: g.Name, IDs: append([]string(nil), g.IDs...)}
	}
	return out
}

// Group returns the ids of the named group.
func (r *Registry) Group(name string) ([]string, bool) {
	for _, g := range r.groups {
		if g.Name == name {
			return append([]string(nil), g.IDs...), true
		}
	}
	return nil, false
}

// Points returns the stored points of id, or nil when unknown.
func (r *Registry) Points(id string) []geom.LonLat {
	p, ok := r.byID[id]
	if !ok {
		return nil
	}
	return append([]geom.LonLat(nil), p.Points...)
}

// DisplayName is the pathway name, falling back to the raw id for ids that
// are not registered or have no name.
func (r *Registry) DisplayName(id string) string {
	p, ok := r.byID[id]
	if !ok {
		r.logger().Debug("pathway_display_unknown", "id", id)
		return id
	}
	if p.Name == "" {
		return id
	}
	return p.Name
}

// DisplayPath joins display names with " + ".
func (r *Registry) DisplayPath(ids []string) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			continue
		}
		names = append(names, r.DisplayName(id))
	}
	return strings.Join(names, " + ")
}

// Options lists groups with their display names, for pathway pickers.
func (r *Registry) Options() []GroupOptions {
	out := make([]GroupOptions, 0, len(r.groups))
	for _, g := range r.groups {
		opts := make([]Option, 0, len(g.IDs))
		for _, id := range g.IDs {
			opts = append(opts, Option{ID: id, Name: r.DisplayName(id)})
		}
		out = append(out, GroupOptions{Group: g.Name, Options: opts})
	}
	return out
}

// Unknown returns the entries of ids that are not registered, in order.
func (r *Registry) Unknown(ids []string) []string {
	var out []string
	for _, id := range ids {
		if _, ok := r.byID[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

// AllPoints returns every stored point across the registry, for fitting a
// viewport.
func (r *Registry) AllPoints() []geom.LonLat {
	var out []geom.LonLat
	for _, id := range r.order {
		out = append(out, r.byID[id].Points...)
	}
	return out
}
