package raster

import (
	"image"
	"io"
	"math"

	// Register the decoders for the formats the pipeline accepts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

// Floyd-Steinberg error diffusion weights, in sixteenths.
const (
	weightRight     = 7.0 / 16.0
	weightDownLeft  = 3.0 / 16.0
	weightDown      = 5.0 / 16.0
	weightDownRight = 1.0 / 16.0
)

// Load decodes an image from r. PNG, JPEG, and GIF are supported.
// A failure to decode is reported as a *DecodeError.
func Load(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return img, nil
}

// Grayscale resizes img to targetWidth (height derived from the aspect
// ratio) and converts it to a luminance grid. The resize uses Catmull-Rom
// resampling, which is deterministic for a given input.
func Grayscale(img image.Image, targetWidth int) (*Grid, error) {
	if targetWidth <= 0 {
		return nil, &InvalidParameterError{Field: "targetWidth", Reason: "must be > 0"}
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, &DecodeError{Err: image.ErrFormat}
	}
	targetHeight := int(math.Round(float64(targetWidth) * float64(b.Dy()) / float64(b.Dx())))
	if targetHeight < 1 {
		targetHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	g := NewGrid(targetWidth, targetHeight)
	for y := 0; y < targetHeight; y++ {
		for x := 0; x < targetWidth; x++ {
			i := dst.PixOffset(x, y)
			r := float64(dst.Pix[i])
			gr := float64(dst.Pix[i+1])
			bl := float64(dst.Pix[i+2])
			g.Set(x, y, int(math.Round(0.299*r+0.587*gr+0.114*bl)))
		}
	}
	return g, nil
}

// Dither quantizes g onto the given sorted level set using Floyd-Steinberg
// error diffusion. The input grid is never mutated; a new grid is returned.
// Boundary pixels skip out-of-range neighbor contributions.
func Dither(g *Grid, levels []int) (*Grid, error) {
	if len(levels) < 2 {
		return nil, &InvalidParameterError{Field: "numberOfColors", Reason: "must be >= 2"}
	}

	// Working buffer holds unquantized brightness plus accumulated error,
	// which may transiently leave [0, 255].
	buf := make([]float64, g.W*g.H)
	for i, v := range g.pix {
		buf[i] = float64(v)
	}

	out := NewGrid(g.W, g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			i := y*g.W + x
			old := buf[i]
			quantized := nearestLevel(old, levels)
			out.pix[i] = clamp255(quantized)
			err := old - float64(quantized)

			if x+1 < g.W {
				buf[i+1] += err * weightRight
			}
			if y+1 < g.H {
				if x-1 >= 0 {
					buf[i+g.W-1] += err * weightDownLeft
				}
				buf[i+g.W] += err * weightDown
				if x+1 < g.W {
					buf[i+g.W+1] += err * weightDownRight
				}
			}
		}
	}
	return out, nil
}

// Quantize is the full quantization pipeline: resize, grayscale, and dither
// onto numberOfColors uniform levels.
func Quantize(img image.Image, targetWidth, numberOfColors int) (*Grid, error) {
	if numberOfColors < 2 {
		return nil, &InvalidParameterError{Field: "numberOfColors", Reason: "must be >= 2"}
	}
	gray, err := Grayscale(img, targetWidth)
	if err != nil {
		return nil, err
	}
	return Dither(gray, UniformLevels(numberOfColors))
}

// nearestLevel returns the level closest to v. Level sets are small, so a
// linear scan beats anything cleverer.
func nearestLevel(v float64, levels []int) int {
	best := levels[0]
	bestDist := math.Abs(v - float64(best))
	for _, l := range levels[1:] {
		d := math.Abs(v - float64(l))
		if d < bestDist {
			bestDist = d
			best = l
		}
	}
	return best
}

func clamp255(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
