package core

// Grid stores world cells in row-major order. Row 0 is one pole-analog edge,
// row H-1 the other.
type Grid struct {
	W, H  int
	cells []Cell
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, cells: make([]Cell, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// At returns a pointer to the cell at (x, y).
func (g *Grid) At(x, y int) *Cell { return &g.cells[y*g.W+x] }

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// OnBoundary reports whether (x, y) touches the map edge.
func (g *Grid) OnBoundary(x, y int) bool {
	return x == 0 || y == 0 || x == g.W-1 || y == g.H-1
}
