// Package rendertest provides a recording render.Surface for tests.
package rendertest

import (
	"campusmap/internal/geom"
	"campusmap/internal/render"
)

// Polyline is the handle type the Recorder hands out.
type Polyline struct {
	Seq    int
	Points []geom.LatLon
	Style  render.Style
}

// Recorder keeps every created polyline and the paint order.
type Recorder struct {
	Lines []*Polyline
	// Z lists handles back to front.
	Z []*Polyline
	// Ops counts calls per method.
	Ops map[string]int
}

func New() *Recorder {
	return &Recorder{Ops: map[string]int{}}
}

func (r *Recorder) CreatePolyline(points []geom.LatLon, style render.Style) render.Handle {
	r.Ops["create"]++
	p := &Polyline{Seq: len(r.Lines), Points: points, Style: style}
	r.Lines = append(r.Lines, p)
	r.Z = append(r.Z, p)
	return p
}

func (r *Recorder) SetHandleStyle(h render.Handle, style render.Style) {
	r.Ops["style"]++
	h.(*Polyline).Style = style
}

func (r *Recorder) RaiseHandle(h render.Handle) {
	r.Ops["raise"]++
	p := h.(*Polyline)
	for i, z := range r.Z {
		if z == p {
			r.Z = append(r.Z[:i], r.Z[i+1:]...)
			break
		}
	}
	r.Z = append(r.Z, p)
}

// Front returns the frontmost polyline, or nil.
func (r *Recorder) Front() *Polyline {
	if len(r.Z) == 0 {
		return nil
	}
	return r.Z[len(r.Z)-1]
}

// Rank returns the paint position of p (higher is nearer the front), or -1.
func (r *Recorder) Rank(p *Polyline) int {
	for i, z := range r.Z {
		if z == p {
			return i
		}
	}
	return -1
}
