package shadow

import (
	"fmt"
	"math"
	"strings"
)

// Params are the raw user-facing parameters of a relief. All lengths are
// in mm. Params carries no derived values; Resolve computes those once.
type Params struct {
	WidthInPixels int     // target pixel width of the quantized images
	CellSize      float64 // XY footprint of one pixel cell
	WallWidth     float64 // thickness of a wall along its thin axis
	BottomThk     float64 // base slab thickness
	LayerHeight   float64 // print layer height; wall tops align to this

	DoHorizImage bool // emit left walls for the horizontal-shadow image
	DoVertImage  bool // emit up walls for the vertical-shadow image

	// NumberOfColorsOverride forces the quantization level count.
	// Zero means auto: floor((CellSize - WallWidth) / LayerHeight).
	NumberOfColorsOverride int

	// PlusWalls shifts each wall by half the free cell width along its
	// thin axis, centering it between the cell edges.
	PlusWalls bool
}

// Config is the resolved, immutable form of Params. Derived fields are
// computed exactly once in Resolve so every invariant is checked at a
// single point.
type Config struct {
	Params

	NumberOfColors int     // quantization levels, >= 1
	MaxHeight      float64 // NumberOfColors * LayerHeight
	Border         float64 // margin around the pixel area, equals CellSize
}

// Resolve validates p and derives the geometry constants. It is pure and
// idempotent: identical params yield bit-identical configs.
func Resolve(p Params) (Config, error) {
	if p.WidthInPixels <= 0 {
		return Config{}, &InvalidParameterError{Field: "widthInPixels", Reason: "must be > 0"}
	}
	if p.CellSize <= 0 {
		return Config{}, &InvalidParameterError{Field: "cellSize", Reason: "must be > 0"}
	}
	if p.WallWidth <= 0 {
		return Config{}, &InvalidParameterError{Field: "wallWidth", Reason: "must be > 0"}
	}
	if p.BottomThk <= 0 {
		return Config{}, &InvalidParameterError{Field: "bottomThk", Reason: "must be > 0"}
	}
	if p.LayerHeight <= 0 {
		return Config{}, &InvalidParameterError{Field: "layerHeight", Reason: "must be > 0"}
	}
	if p.WallWidth >= p.CellSize {
		return Config{}, &InvalidParameterError{
			Field:  "wallWidth",
			Reason: fmt.Sprintf("must be < cellSize (%g >= %g)", p.WallWidth, p.CellSize),
		}
	}
	if p.NumberOfColorsOverride < 0 {
		return Config{}, &InvalidParameterError{Field: "numberOfColorsOverride", Reason: "must be >= 0"}
	}

	n := p.NumberOfColorsOverride
	if n == 0 {
		n = int(math.Floor((p.CellSize - p.WallWidth) / p.LayerHeight))
	}
	if n < 1 {
		return Config{}, &InvalidParameterError{
			Field:  "numberOfColors",
			Reason: "resolved to < 1; increase cellSize or decrease wallWidth/layerHeight",
		}
	}

	return Config{
		Params:         p,
		NumberOfColors: n,
		MaxHeight:      float64(n) * p.LayerHeight,
		Border:         p.CellSize,
	}, nil
}

// FileStem returns the default output name (without extension), encoding
// the parameters that shaped the geometry.
func (c Config) FileStem() string {
	return fmt.Sprintf("%dpx_%scell_%swall_%sbottom_%smaxHeight",
		c.WidthInPixels,
		trimFloat(c.CellSize),
		trimFloat(c.WallWidth),
		trimFloat(c.BottomThk),
		trimFloat(c.MaxHeight))
}

// trimFloat formats v with up to two decimal places, trailing zeros trimmed.
func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
