package tui

// ink identifies how a braille cell is coloured. Higher values are painted
// later and win the cell.
type ink uint8

const (
	inkNone ink = iota
	inkNormal
	inkHighlighted
)

type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
	ink  [][]ink   // last ink written to the cell
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	k := make([][]ink, h)
	for i := range m {
		m[i] = make([]uint8, w)
		k[i] = make([]ink, w)
	}
	return &brailleBuf{w: w, h: h, m: m, ink: k}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int, k ink) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy < 0 || cy >= b.h || cx < 0 || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
	b.ink[cy][cx] = k
}

// drawLineMicro draws a line on the microgrid using Bresenham. With dash > 0
// the line alternates dash pixels on and dash pixels off, starting at phase;
// the returned phase continues the pattern on the next segment.
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, k ink, dash, phase int) int {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		if dash <= 0 || (phase/dash)%2 == 0 {
			b.setPixel(x0, y0, k)
		}
		phase++
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
	return phase
}

// glyph returns the braille rune of a cell, or a space when empty.
func (b *brailleBuf) glyph(x, y int) rune {
	mask := b.m[y][x]
	if mask == 0 {
		return ' '
	}
	return rune(0x2800 + int(mask))
}

func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			row[x] = b.glyph(x, y)
		}
		out[y] = string(row)
	}
	return out
}
