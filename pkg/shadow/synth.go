package shadow

import (
	"math"

	"github.com/chazu/umbra/pkg/raster"
)

// fuseOverlap is a small positive overlap added to wall footprints so that
// adjacent boxes fuse with the base and each other despite floating-point
// seams in the slicer.
const fuseOverlap = 0.01

// Layout is the full box collection for one relief: exactly one base slab,
// one left wall per horizontal-grid pixel, one up wall per vertical-grid
// pixel. It is read-only after Synthesize returns.
type Layout struct {
	Base      Box
	LeftWalls []Box // thin along X, encode the horizontal-shadow image
	UpWalls   []Box // thin along Y, encode the vertical-shadow image
}

// Boxes returns every box in the layout, base first.
func (l *Layout) Boxes() []Box {
	out := make([]Box, 0, 1+len(l.LeftWalls)+len(l.UpWalls))
	out = append(out, l.Base)
	out = append(out, l.LeftWalls...)
	out = append(out, l.UpWalls...)
	return out
}

// Synthesize walks the quantized grids and emits the box primitives.
// Either grid may be nil when its axis is disabled; at least one axis must
// be active. When both axes are active the grids are cropped (top-aligned)
// to the smaller row count so the two shadow images share one footprint.
func Synthesize(horiz, vert *raster.Grid, cfg Config) (*Layout, error) {
	useHoriz := cfg.DoHorizImage
	useVert := cfg.DoVertImage
	if !useHoriz && !useVert {
		return nil, &InvalidParameterError{
			Field:  "doHorizImage",
			Reason: "at least one of doHorizImage/doVertImage must be enabled",
		}
	}
	if useHoriz && horiz == nil {
		return nil, &InvalidParameterError{Field: "horizGrid", Reason: "horizontal axis enabled but no grid supplied"}
	}
	if useVert && vert == nil {
		return nil, &InvalidParameterError{Field: "vertGrid", Reason: "vertical axis enabled but no grid supplied"}
	}

	// Row count actually used: the smaller of the two grids when both
	// axes are active. This is a truncation, not a resize.
	var endY, imageWidth, imageHeight int
	switch {
	case useHoriz && useVert:
		endY = min(horiz.H, vert.H)
		imageWidth = max(horiz.W, vert.W)
		imageHeight = max(horiz.H, vert.H)
	case useHoriz:
		endY = horiz.H
		imageWidth = horiz.W
		imageHeight = horiz.H
	default:
		endY = vert.H
		imageWidth = vert.W
		imageHeight = vert.H
	}

	l := &Layout{Base: baseSlab(cfg, imageWidth, imageHeight)}

	plusOffset := 0.0
	if cfg.PlusWalls {
		plusOffset = 0.5 * (cfg.CellSize - cfg.WallWidth)
	}

	if useHoriz {
		l.LeftWalls = make([]Box, 0, horiz.W*endY)
		for y := 0; y < endY; y++ {
			for x := 0; x < horiz.W; x++ {
				h := wallHeight(horiz.At(x, y), cfg)
				l.LeftWalls = append(l.LeftWalls, Box{
					Position: Vec3{
						X: cfg.Border + float64(x+1)*cfg.CellSize + plusOffset,
						Y: cfg.Border + float64(endY-y)*cfg.CellSize,
						Z: cfg.BottomThk + h/2 + cfg.LayerHeight/2,
					},
					Size: Vec3{
						X: cfg.WallWidth + fuseOverlap,
						Y: cfg.CellSize + fuseOverlap,
						Z: h + cfg.LayerHeight,
					},
				})
			}
		}
	}

	if useVert {
		l.UpWalls = make([]Box, 0, vert.W*endY)
		for y := 0; y < endY; y++ {
			for x := 0; x < vert.W; x++ {
				h := wallHeight(vert.At(x, y), cfg)
				l.UpWalls = append(l.UpWalls, Box{
					Position: Vec3{
						X: cfg.Border + float64(endY-y)*cfg.CellSize,
						Y: cfg.Border + float64(x+1)*cfg.CellSize + plusOffset,
						Z: cfg.BottomThk + h/2 + cfg.LayerHeight/2,
					},
					Size: Vec3{
						X: cfg.CellSize + fuseOverlap,
						Y: cfg.WallWidth + fuseOverlap,
						Z: h + cfg.LayerHeight,
					},
				})
			}
		}
	}

	return l, nil
}

// wallHeight maps a quantized brightness to a wall height rounded onto the
// layer grid. Black produces the tallest wall, white a single layer (the
// extra LayerHeight is added back at placement).
func wallHeight(val int, cfg Config) float64 {
	h := (1 - float64(val)/256) * (cfg.MaxHeight - cfg.LayerHeight)
	return roundToMultiple(h, cfg.LayerHeight)
}

// roundToMultiple rounds h to the nearest multiple of step. Keeping wall
// tops on the layer grid avoids non-manufacturable fractional layers.
func roundToMultiple(h, step float64) float64 {
	return math.Round(h/step) * step
}

// baseSlab spans the full footprint: the pixel area plus one cell of slack
// on each side, plus the border.
func baseSlab(cfg Config, imageWidth, imageHeight int) Box {
	sx := cfg.Border*2 + cfg.CellSize*float64(imageWidth+2)
	sy := cfg.Border*2 + cfg.CellSize*float64(imageHeight+2)
	return Box{
		Position: Vec3{X: sx / 2, Y: sy / 2, Z: cfg.BottomThk / 2},
		Size:     Vec3{X: sx, Y: sy, Z: cfg.BottomThk},
	}
}
