package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusmap/internal/geom"
	"campusmap/internal/render"
)

func dotCount(b *brailleBuf, k ink) int {
	n := 0
	for y := range b.m {
		for x := range b.m[y] {
			if b.ink[y][x] != k {
				continue
			}
			for bits := b.m[y][x]; bits != 0; bits &= bits - 1 {
				n++
			}
		}
	}
	return n
}

func diagonal() []geom.LatLon {
	return geom.ToRenderOrder([]geom.LonLat{{0, 0}, {1, 1}})
}

func TestCanvasRaiseMovesHandleToFront(t *testing.T) {
	c := newCanvas(20, 10)
	a := c.CreatePolyline(diagonal(), render.Normal)
	b := c.CreatePolyline(diagonal(), render.Normal)
	require.Same(t, b, c.lines[1])

	c.RaiseHandle(a)

	assert.Same(t, a, c.lines[1])
	assert.Len(t, c.lines, 2)
}

func TestCanvasHighlightedPaintsOverNormal(t *testing.T) {
	c := newCanvas(20, 10)
	c.FitBounds(diagonal())
	a := c.CreatePolyline(diagonal(), render.Normal)
	c.CreatePolyline(diagonal(), render.Normal)

	c.SetHandleStyle(a, render.Highlighted)
	c.RaiseHandle(a)
	br := c.paint()

	assert.Positive(t, dotCount(br, inkHighlighted))
	assert.Zero(t, dotCount(br, inkNormal), "solid highlight covers the dashed line")
}

func TestCanvasNormalIsDashed(t *testing.T) {
	c := newCanvas(20, 10)
	c.FitBounds(diagonal())
	h := c.CreatePolyline(diagonal(), render.Normal)
	dashed := dotCount(c.paint(), inkNormal)

	c.SetHandleStyle(h, render.Highlighted)
	solid := dotCount(c.paint(), inkHighlighted)

	assert.Positive(t, dashed)
	assert.Less(t, dashed, solid)
}

func TestCanvasCellRoundTrip(t *testing.T) {
	c := newCanvas(40, 20)
	c.FitBounds(geom.ToRenderOrder([]geom.LonLat{{126.0930, 8.6320}, {126.0940, 8.6340}}))

	at, ok := c.cellToLonLat(20, 10)
	require.True(t, ok)
	mx, my, ok := c.project(geom.ToRenderOrder([]geom.LonLat{at})[0])
	require.True(t, ok)

	assert.InDelta(t, 20, mx/2, 1)
	assert.InDelta(t, 10, my/4, 1)
	assert.InDelta(t, 126.0935, at.Lon(), 0.0002)
	assert.InDelta(t, 8.6330, at.Lat(), 0.0002)
}

func TestCanvasWithoutBoundsDrawsNothing(t *testing.T) {
	c := newCanvas(10, 4)
	c.CreatePolyline(diagonal(), render.Highlighted)

	_, ok := c.cellToLonLat(1, 1)
	assert.False(t, ok)
	assert.Equal(t, strings.Repeat(" ", 10), c.paint().toLines()[0])
}

func TestCanvasRenderMarkersAndCursor(t *testing.T) {
	c := newCanvas(20, 10)
	c.FitBounds(diagonal())
	out := c.render([]marker{{at: geom.LatLon{0.5, 0.5}, color: "#27AE60"}}, 0, 0)

	assert.Contains(t, out, "●")
	assert.Contains(t, out, "◯")
	assert.Len(t, strings.Split(out, "\n"), 10)
}
