package raster

import (
	"image"
	"image/color"
	"sort"
	"testing"
)

func TestUniformLevels(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{2, []int{0, 255}},
		{3, []int{0, 128, 255}},
		{5, []int{0, 64, 128, 191, 255}},
	}
	for _, tt := range tests {
		got := UniformLevels(tt.n)
		if len(got) != len(tt.want) {
			t.Errorf("UniformLevels(%d) = %v, want %v", tt.n, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("UniformLevels(%d)[%d] = %d, want %d", tt.n, i, got[i], tt.want[i])
			}
		}
	}
}

func TestUniformLevelsEndpoints(t *testing.T) {
	for n := 2; n <= 20; n++ {
		levels := UniformLevels(n)
		if levels[0] != 0 || levels[len(levels)-1] != 255 {
			t.Errorf("n=%d: endpoints = %d, %d", n, levels[0], levels[len(levels)-1])
		}
		if !sort.IntsAreSorted(levels) {
			t.Errorf("n=%d: levels not sorted: %v", n, levels)
		}
	}
}

func TestAdaptiveLevels(t *testing.T) {
	// Bimodal image: left half black, right half white.
	img := image.NewGray(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 32; x < 64; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}

	levels := AdaptiveLevels(img, 4)
	if len(levels) < 2 {
		t.Fatalf("adaptive levels = %v, want at least 2", levels)
	}
	if !sort.IntsAreSorted(levels) {
		t.Errorf("levels not sorted: %v", levels)
	}
	for i, l := range levels {
		if l < 0 || l > 255 {
			t.Errorf("level %d out of range: %d", i, l)
		}
		if i > 0 && levels[i] == levels[i-1] {
			t.Errorf("duplicate level %d", l)
		}
	}
}

func TestAdaptiveLevelsFallback(t *testing.T) {
	// Degenerate inputs fall back to uniform levels.
	img := image.NewGray(image.Rect(0, 0, 1, 1))
	levels := AdaptiveLevels(img, 4)
	want := UniformLevels(4)
	if len(levels) != len(want) {
		t.Fatalf("fallback levels = %v, want %v", levels, want)
	}
	for i := range levels {
		if levels[i] != want[i] {
			t.Errorf("fallback levels = %v, want %v", levels, want)
			break
		}
	}
}

func TestDominantTone(t *testing.T) {
	dark := image.NewRGBA(image.Rect(0, 0, 32, 32))
	light := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			dark.SetRGBA(x, y, color.RGBA{R: 10, G: 10, B: 10, A: 255})
			light.SetRGBA(x, y, color.RGBA{R: 245, G: 245, B: 245, A: 255})
		}
	}
	if got := DominantTone(dark); got != ToneDark {
		t.Errorf("dark image tone = %s, want dark", got)
	}
	if got := DominantTone(light); got != ToneLight {
		t.Errorf("light image tone = %s, want light", got)
	}
}
