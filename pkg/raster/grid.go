package raster

import "fmt"

// Grid is a row-major 2D grid of brightness samples in [0, 255].
// Once produced by Grayscale or Dither a grid is treated as immutable;
// derived work should go through Clone.
type Grid struct {
	W, H int
	pix  []int
}

// NewGrid creates a zero-filled grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	return &Grid{W: w, H: h, pix: make([]int, w*h)}
}

// At returns the sample at (x, y). Coordinates are not bounds-checked
// beyond the underlying slice access.
func (g *Grid) At(x, y int) int {
	return g.pix[y*g.W+x]
}

// Set stores v at (x, y).
func (g *Grid) Set(x, y, v int) {
	g.pix[y*g.W+x] = v
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{W: g.W, H: g.H, pix: make([]int, len(g.pix))}
	copy(out.pix, g.pix)
	return out
}

// Values returns the distinct sample values present in the grid.
func (g *Grid) Values() map[int]bool {
	seen := make(map[int]bool)
	for _, v := range g.pix {
		seen[v] = true
	}
	return seen
}

func (g *Grid) String() string {
	return fmt.Sprintf("raster.Grid(%dx%d)", g.W, g.H)
}
