package shadow

import (
	"errors"
	"math"
	"testing"

	"github.com/chazu/umbra/pkg/raster"
)

// gridFrom builds a raster grid from row-major literal values.
func gridFrom(t *testing.T, rows [][]int) *raster.Grid {
	t.Helper()
	h := len(rows)
	w := len(rows[0])
	g := raster.NewGrid(w, h)
	for y, row := range rows {
		if len(row) != w {
			t.Fatalf("ragged test grid at row %d", y)
		}
		for x, v := range row {
			g.Set(x, y, v)
		}
	}
	return g
}

func mustResolve(t *testing.T, p Params) Config {
	t.Helper()
	cfg, err := Resolve(p)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	return cfg
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// diagonalConfig is the scenario-A parameter set: maxHeight resolves to 2.0mm.
func diagonalConfig(t *testing.T, horiz, vert bool) Config {
	return mustResolve(t, Params{
		WidthInPixels:          2,
		CellSize:               5,
		WallWidth:              0.8,
		BottomThk:              1.0,
		LayerHeight:            0.2,
		NumberOfColorsOverride: 10,
		DoHorizImage:           horiz,
		DoVertImage:            vert,
	})
}

func TestSynthesizeDiagonal(t *testing.T) {
	cfg := diagonalConfig(t, true, false)
	g := gridFrom(t, [][]int{{0, 255}, {255, 0}})

	l, err := Synthesize(g, nil, cfg)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if len(l.LeftWalls) != 4 {
		t.Fatalf("leftWalls = %d, want 4", len(l.LeftWalls))
	}
	if len(l.UpWalls) != 0 {
		t.Errorf("upWalls = %d, want 0", len(l.UpWalls))
	}

	heights := make(map[float64]int)
	for _, b := range l.LeftWalls {
		heights[b.Size.Z]++
	}
	if len(heights) != 2 {
		t.Errorf("distinct wall heights = %d, want 2 (%v)", len(heights), heights)
	}
	// Black: 1.8mm wall + one layer. White: one layer only.
	var tall, short int
	for _, b := range l.LeftWalls {
		switch {
		case approx(b.Size.Z, 2.0):
			tall++
		case approx(b.Size.Z, 0.2):
			short++
		}
	}
	if tall != 2 || short != 2 {
		t.Errorf("walls tall/short = %d/%d, want 2/2", tall, short)
	}
}

func TestLeftWallPlacement(t *testing.T) {
	cfg := diagonalConfig(t, true, false)
	g := gridFrom(t, [][]int{{0, 255}, {255, 0}})

	l, err := Synthesize(g, nil, cfg)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	// Pixel (0,0), val 0: posX = border + cell = 10, posY = border + 2*cell = 15,
	// posZ = bottom + 1.8/2 + 0.2/2 = 2.0.
	b := l.LeftWalls[0]
	if !approx(b.Position.X, 10) || !approx(b.Position.Y, 15) || !approx(b.Position.Z, 2.0) {
		t.Errorf("wall(0,0) position = %+v, want {10 15 2}", b.Position)
	}
	if !approx(b.Size.X, 0.81) || !approx(b.Size.Y, 5.01) || !approx(b.Size.Z, 2.0) {
		t.Errorf("wall(0,0) size = %+v, want {0.81 5.01 2}", b.Size)
	}

	// Pixel (1,1), val 0: posX = border + 2*cell = 15, posY = border + cell = 10.
	b = l.LeftWalls[3]
	if !approx(b.Position.X, 15) || !approx(b.Position.Y, 10) {
		t.Errorf("wall(1,1) position = %+v, want {15 10 2}", b.Position)
	}
}

func TestUpWallMirrorsLeftWall(t *testing.T) {
	cfg := diagonalConfig(t, false, true)
	g := gridFrom(t, [][]int{{0, 255}, {255, 0}})

	l, err := Synthesize(nil, g, cfg)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if len(l.UpWalls) != 4 {
		t.Fatalf("upWalls = %d, want 4", len(l.UpWalls))
	}

	// Pixel (0,0): X and Y swap roles relative to a left wall.
	b := l.UpWalls[0]
	if !approx(b.Position.X, 15) || !approx(b.Position.Y, 10) {
		t.Errorf("up wall(0,0) position = %+v, want {15 10 ...}", b.Position)
	}
	if !approx(b.Size.X, 5.01) || !approx(b.Size.Y, 0.81) {
		t.Errorf("up wall(0,0) size = %+v, want thin along Y", b.Size)
	}
}

func TestPlusWallOffset(t *testing.T) {
	p := Params{
		WidthInPixels:          2,
		CellSize:               5,
		WallWidth:              0.8,
		BottomThk:              1.0,
		LayerHeight:            0.2,
		NumberOfColorsOverride: 10,
		DoHorizImage:           true,
		PlusWalls:              true,
	}
	cfg := mustResolve(t, p)
	g := gridFrom(t, [][]int{{0, 255}, {255, 0}})

	l, err := Synthesize(g, nil, cfg)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	// Offset = 0.5 * (5 - 0.8) = 2.1, applied along the thin axis only.
	b := l.LeftWalls[0]
	if !approx(b.Position.X, 12.1) {
		t.Errorf("plus-wall posX = %g, want 12.1", b.Position.X)
	}
	if !approx(b.Position.Y, 15) {
		t.Errorf("plus-wall posY = %g, want unchanged 15", b.Position.Y)
	}
}

func TestBothAxes(t *testing.T) {
	cfg := diagonalConfig(t, true, true)
	h := gridFrom(t, [][]int{{0, 255}, {255, 0}})
	v := gridFrom(t, [][]int{{255, 0}, {0, 255}})

	l, err := Synthesize(h, v, cfg)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if len(l.LeftWalls) != 4 || len(l.UpWalls) != 4 {
		t.Errorf("walls = %d/%d, want 4/4", len(l.LeftWalls), len(l.UpWalls))
	}
	if got := len(l.Boxes()); got != 9 {
		t.Errorf("total boxes = %d, want 9", got)
	}
}

func TestDualAxisCrop(t *testing.T) {
	cfg := diagonalConfig(t, true, true)
	h := gridFrom(t, [][]int{{0, 0}, {0, 0}, {0, 0}}) // 2x3
	v := gridFrom(t, [][]int{{0, 0}, {0, 0}})         // 2x2

	l, err := Synthesize(h, v, cfg)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	// Both grids truncate to the smaller row count.
	if len(l.LeftWalls) != 4 {
		t.Errorf("leftWalls = %d, want 4 after crop", len(l.LeftWalls))
	}
	if len(l.UpWalls) != 4 {
		t.Errorf("upWalls = %d, want 4", len(l.UpWalls))
	}
	// The base slab still spans the larger grid's footprint.
	wantY := cfg.Border*2 + cfg.CellSize*float64(3+2)
	if !approx(l.Base.Size.Y, wantY) {
		t.Errorf("base Size.Y = %g, want %g", l.Base.Size.Y, wantY)
	}
}

func TestBaseSlab(t *testing.T) {
	cfg := diagonalConfig(t, true, false)
	g := gridFrom(t, [][]int{{0, 255}, {255, 0}})

	l, err := Synthesize(g, nil, cfg)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	// size = border*2 + cell*(2+2) = 30 in both XY, thickness bottomThk.
	if !approx(l.Base.Size.X, 30) || !approx(l.Base.Size.Y, 30) || !approx(l.Base.Size.Z, 1.0) {
		t.Errorf("base size = %+v, want {30 30 1}", l.Base.Size)
	}
	if !approx(l.Base.Position.X, 15) || !approx(l.Base.Position.Y, 15) || !approx(l.Base.Position.Z, 0.5) {
		t.Errorf("base position = %+v, want {15 15 0.5}", l.Base.Position)
	}
}

func TestWallHeightMonotonic(t *testing.T) {
	cfg := diagonalConfig(t, true, false)
	prev := math.Inf(1)
	for v := 0; v <= 255; v += 5 {
		h := wallHeight(v, cfg)
		if h > prev {
			t.Fatalf("wallHeight(%d) = %g exceeds wallHeight of darker pixel (%g)", v, h, prev)
		}
		prev = h
	}
}

func TestWallHeightOnLayerGrid(t *testing.T) {
	cfg := diagonalConfig(t, true, false)
	for v := 0; v <= 255; v++ {
		h := wallHeight(v, cfg)
		layers := h / cfg.LayerHeight
		if math.Abs(layers-math.Round(layers)) > 1e-9 {
			t.Errorf("wallHeight(%d) = %g not on the %.1fmm layer grid", v, h, cfg.LayerHeight)
		}
	}
}

func TestSynthesizeBothDisabled(t *testing.T) {
	cfg := diagonalConfig(t, false, false)
	_, err := Synthesize(nil, nil, cfg)
	var ipe *InvalidParameterError
	if !errors.As(err, &ipe) {
		t.Fatalf("error = %v, want *InvalidParameterError", err)
	}
}

func TestSynthesizeMissingGrid(t *testing.T) {
	cfg := diagonalConfig(t, true, false)
	_, err := Synthesize(nil, nil, cfg)
	var ipe *InvalidParameterError
	if !errors.As(err, &ipe) {
		t.Fatalf("error = %v, want *InvalidParameterError", err)
	}
	if ipe.Field != "horizGrid" {
		t.Errorf("field = %q, want horizGrid", ipe.Field)
	}
}

func TestBoxCountInvariant(t *testing.T) {
	cfg := diagonalConfig(t, true, false)
	g := raster.NewGrid(7, 3)

	l, err := Synthesize(g, nil, cfg)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if len(l.LeftWalls) != 21 {
		t.Errorf("leftWalls = %d, want w*h = 21", len(l.LeftWalls))
	}
}
