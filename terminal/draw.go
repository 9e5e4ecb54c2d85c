package terminal

import (
	"github.com/nsf/termbox-go"

	"github.com/esimov/ascii-cloth/cloth"
)

// drawSegment rasterizes one constraint line into the cell buffer with
// Bresenham's algorithm, clipping cells outside the viewport. The rune is
// picked from the segment's dominant direction.
func drawSegment(buf []termbox.Cell, w, h int, s cloth.Segment) {
	x0, y0 := int(s.X1+0.5), int(s.Y1+0.5)
	x1, y1 := int(s.X2+0.5), int(s.Y2+0.5)

	ch := segmentRune(x1-x0, y1-y0)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	for {
		if x0 >= 0 && x0 < w && y0 >= 0 && y0 < h {
			buf[y0*w+x0] = termbox.Cell{Ch: ch, Fg: termbox.ColorWhite}
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func segmentRune(dx, dy int) rune {
	adx, ady := abs(dx), abs(dy)
	switch {
	case ady == 0 || adx > 2*ady:
		return '-'
	case adx == 0 || ady > 2*adx:
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
