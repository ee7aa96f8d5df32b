package canvas

import (
	"math"

	"honnef.co/go/ribbon"
)

// Braille is a monochrome raster of terminal cells, each holding 2×4 pixels
// rendered as a braille pattern.
type Braille struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

// NewBraille returns an empty raster of w×h cells.
func NewBraille(w, h int) *Braille {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &Braille{w: w, h: h, m: m}
}

// Size returns the raster's size in pixels.
func (b *Braille) Size() (w, h int) {
	return b.w * 2, b.h * 4
}

// dot bits indexed by [column][row] within a cell
var dots = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// Set sets the pixel at (x, y). Pixels outside the raster are ignored.
func (b *Braille) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	cx, cy := x/2, y/4
	if cx >= b.w || cy >= b.h {
		return
	}
	b.m[cy][cx] |= dots[x%2][y%4]
}

// Line draws a line using Bresenham's algorithm.
func (b *Braille) Line(x0, y0, x1, y1 int) {
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
		b.Set(x0, y0)
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
}

// FillTriangle fills the pixels whose centers lie inside the triangle, and
// outlines it so that slivers stay visible.
func (b *Braille) FillTriangle(x0, y0, x1, y1, x2, y2 float64) {
	pw, ph := b.Size()
	minX := max(0, int(math.Floor(min(x0, x1, x2))))
	maxX := min(pw-1, int(math.Ceil(max(x0, x1, x2))))
	minY := max(0, int(math.Floor(min(y0, y1, y2))))
	maxY := min(ph-1, int(math.Ceil(max(y0, y1, y2))))
	edge := func(ax, ay, bx, by, px, py float64) float64 {
		return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
	}
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			e0 := edge(x0, y0, x1, y1, px, py)
			e1 := edge(x1, y1, x2, y2, px, py)
			e2 := edge(x2, y2, x0, y0, px, py)
			if (e0 >= 0 && e1 >= 0 && e2 >= 0) || (e0 <= 0 && e1 <= 0 && e2 <= 0) {
				b.Set(x, y)
			}
		}
	}
	ix0, iy0 := int(math.Floor(x0)), int(math.Floor(y0))
	ix1, iy1 := int(math.Floor(x1)), int(math.Floor(y1))
	ix2, iy2 := int(math.Floor(x2)), int(math.Floor(y2))
	b.Line(ix0, iy0, ix1, iy1)
	b.Line(ix1, iy1, ix2, iy2)
	b.Line(ix2, iy2, ix0, iy0)
}

// Lines returns the raster as one string per row of cells.
func (b *Braille) Lines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			if mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}

// DrawMesh rasterizes the mesh's triangles as seen by cam. The camera's
// screen size should match the raster's size in pixels.
func DrawMesh(b *Braille, cam *Camera, m *ribbon.Mesh) {
	for tri := range m.Triangles() {
		var xs, ys [3]float64
		for i, idx := range tri {
			xs[i], ys[i] = cam.Project(m.Vertices[idx])
		}
		b.FillTriangle(xs[0], ys[0], xs[1], ys[1], xs[2], ys[2])
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
