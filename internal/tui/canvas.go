package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"campusmap/internal/geom"
	"campusmap/internal/render"
)

// polyline is the handle a canvas hands out. Points are in render order.
type polyline struct {
	points []geom.LatLon
	style  render.Style
}

type marker struct {
	at    geom.LatLon
	color string
}

// canvas is a braille rendering surface measured in terminal cells. It owns
// its polylines; a new canvas is built for every mount.
type canvas struct {
	w, h  int
	bbox  geom.BBox
	zoom  float64
	lines []*polyline // back to front
}

func newCanvas(w, h int) *canvas {
	return &canvas{w: max(w, 2), h: max(h, 2), zoom: 1}
}

func (c *canvas) CreatePolyline(points []geom.LatLon, style render.Style) render.Handle {
	p := &polyline{points: append([]geom.LatLon(nil), points...), style: style}
	c.lines = append(c.lines, p)
	return p
}

func (c *canvas) SetHandleStyle(h render.Handle, style render.Style) {
	if p, ok := h.(*polyline); ok {
		p.style = style
	}
}

func (c *canvas) RaiseHandle(h render.Handle) {
	p, ok := h.(*polyline)
	if !ok {
		return
	}
	for i, l := range c.lines {
		if l == p {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.lines = append(c.lines, p)
			return
		}
	}
}

// FitBounds sets the viewport to cover pts with a small margin.
func (c *canvas) FitBounds(pts []geom.LatLon) {
	if len(pts) == 0 {
		return
	}
	c.bbox = geom.BoundsOf(pts).Pad(0.05)
}

// project maps a render-order point to microgrid coordinates (2x4 per cell),
// zoomed around the viewport centre.
func (c *canvas) project(p geom.LatLon) (int, int, bool) {
	if c.bbox.Empty() {
		return 0, 0, false
	}
	nx := (p.Lon() - c.bbox.MinX) / (c.bbox.MaxX - c.bbox.MinX)
	ny := (p.Lat() - c.bbox.MinY) / (c.bbox.MaxY - c.bbox.MinY)
	zx := 0.5 + (nx-0.5)*c.zoom
	zy := 0.5 + (ny-0.5)*c.zoom
	wMic := c.w * 2
	hMic := c.h * 4
	return int(zx * float64(wMic-1)), int((1.0 - zy) * float64(hMic-1)), true
}

// cellToLonLat converts a canvas cell back to a stored-order coordinate.
func (c *canvas) cellToLonLat(cx, cy int) (geom.LonLat, bool) {
	if c.bbox.Empty() || c.w <= 1 || c.h <= 1 {
		return geom.LonLat{}, false
	}
	zx := float64(cx) / float64(c.w-1)
	zy := 1.0 - float64(cy)/float64(c.h-1)
	nx := 0.5 + (zx-0.5)/c.zoom
	ny := 0.5 + (zy-0.5)/c.zoom
	lon := c.bbox.MinX + nx*(c.bbox.MaxX-c.bbox.MinX)
	lat := c.bbox.MinY + ny*(c.bbox.MaxY-c.bbox.MinY)
	return geom.LonLat{lon, lat}, true
}

func inkOf(s render.Style) ink {
	if s == render.Highlighted {
		return inkHighlighted
	}
	return inkNormal
}

// paint rasterizes every polyline in z order.
func (c *canvas) paint() *brailleBuf {
	br := newBrailleBuf(c.w, c.h)
	for _, p := range c.lines {
		attrs := p.style.Attributes()
		dash := 0
		if !attrs.Solid() {
			dash = attrs.Dash[0]
		}
		k := inkOf(p.style)
		phase := 0
		var prev *[2]int
		for _, pt := range p.points {
			mx, my, ok := c.project(pt)
			if !ok {
				continue
			}
			if prev != nil {
				phase = br.drawLineMicro(prev[0], prev[1], mx, my, k, dash, phase)
			}
			prev = &[2]int{mx, my}
		}
	}
	return br
}

// render draws the pathways, then location markers and the cursor on top.
// cursor is a cell position; a negative x hides it.
func (c *canvas) render(markers []marker, cursorX, cursorY int) string {
	br := c.paint()
	dots := map[[2]int]string{}
	for _, mk := range markers {
		mx, my, ok := c.project(mk.at)
		if !ok {
			continue
		}
		dots[[2]int{mx / 2, my / 4}] = mk.color
	}

	rows := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		var sb strings.Builder
		var run []rune
		runInk := inkNone
		flush := func() {
			if len(run) > 0 {
				sb.WriteString(inkStyles[runInk].Render(string(run)))
				run = run[:0]
			}
		}
		for x := 0; x < c.w; x++ {
			if x == cursorX && y == cursorY {
				flush()
				sb.WriteString(cursorStyle.Render("◯"))
				continue
			}
			if col, ok := dots[[2]int{x, y}]; ok {
				flush()
				sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(col)).Render("●"))
				continue
			}
			k := br.ink[y][x]
			if k != runInk {
				flush()
				runInk = k
			}
			run = append(run, br.glyph(x, y))
		}
		flush()
		rows[y] = sb.String()
	}
	return strings.Join(rows, "\n")
}
