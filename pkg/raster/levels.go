package raster

import (
	"image"
	"math"
	"sort"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// UniformLevels returns n evenly spaced brightness levels spanning [0, 255].
// Level k is round(k*255/(n-1)), so both endpoints are always present.
func UniformLevels(n int) []int {
	if n < 2 {
		return []int{0, 255}
	}
	step := 255.0 / float64(n-1)
	levels := make([]int, n)
	for k := 0; k < n; k++ {
		levels[k] = int(math.Round(float64(k) * step))
	}
	return levels
}

// AdaptiveLevels derives n quantization levels from the luminance
// distribution of img by k-means clustering over subsampled pixels.
// Images with strongly bimodal brightness get levels concentrated where
// the mass is instead of uniform steps. Falls back to UniformLevels when
// clustering cannot produce at least two distinct levels.
func AdaptiveLevels(img image.Image, n int) []int {
	if n < 2 {
		return UniformLevels(n)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return UniformLevels(n)
	}

	// Subsample to keep k-means tractable on large images.
	const maxSamples = 8000
	step := 1
	if w*h > maxSamples {
		step = int(math.Sqrt(float64(w*h)/float64(maxSamples))) + 1
	}

	dataset := make(clusters.Observations, 0, min(w*h, maxSamples))
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			if a16 == 0 {
				continue
			}
			luma := 0.299*float64(r16>>8) + 0.587*float64(g16>>8) + 0.114*float64(b16>>8)
			dataset = append(dataset, clusters.Coordinates{luma})
		}
	}
	if len(dataset) < n {
		return UniformLevels(n)
	}

	km := kmeans.New()
	cc, err := km.Partition(dataset, n)
	if err != nil || len(cc) == 0 {
		return UniformLevels(n)
	}

	levels := make([]int, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 1 {
			continue
		}
		levels = append(levels, clamp255(int(math.Round(c.Center[0]))))
	}
	sort.Ints(levels)
	levels = dedupeSorted(levels)
	if len(levels) < 2 {
		return UniformLevels(n)
	}
	return levels
}

// Tone is a coarse brightness classification of a source image.
type Tone int

const (
	ToneDark Tone = iota
	ToneMid
	ToneLight
)

func (t Tone) String() string {
	switch t {
	case ToneDark:
		return "dark"
	case ToneMid:
		return "mid"
	case ToneLight:
		return "light"
	default:
		return "unknown"
	}
}

// DominantTone classifies img by the relative luminance of its dominant
// color. Light images produce short walls and faint shadows, which is
// worth warning about before a long print.
func DominantTone(img image.Image) Tone {
	c := dominantcolor.Find(img)
	col, ok := colorful.MakeColor(c)
	if !ok {
		return ToneMid
	}
	r, g, b := col.LinearRgb()
	y := 0.2126*r + 0.7152*g + 0.0722*b
	switch {
	case y < 0.2:
		return ToneDark
	case y > 0.65:
		return ToneLight
	default:
		return ToneMid
	}
}

func dedupeSorted(vals []int) []int {
	out := vals[:0]
	for _, v := range vals {
		if len(out) == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
