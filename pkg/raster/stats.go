package raster

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the per-pixel error introduced by dithering.
type Stats struct {
	MeanAbsError float64 // average |original - dithered| over all pixels
	StdDev       float64 // standard deviation of the absolute error
	MaxAbsError  float64 // worst single pixel
}

// QuantizationStats compares a grayscale grid with its dithered counterpart.
// Error diffusion conserves brightness locally, so the mean absolute error
// stays bounded by roughly half the level spacing regardless of image size.
func QuantizationStats(original, dithered *Grid) (Stats, error) {
	if original.W != dithered.W || original.H != dithered.H {
		return Stats{}, fmt.Errorf("raster: stats over mismatched grids %dx%d vs %dx%d",
			original.W, original.H, dithered.W, dithered.H)
	}

	abs := make([]float64, len(original.pix))
	var maxErr float64
	for i := range original.pix {
		e := math.Abs(float64(original.pix[i] - dithered.pix[i]))
		abs[i] = e
		if e > maxErr {
			maxErr = e
		}
	}

	return Stats{
		MeanAbsError: stat.Mean(abs, nil),
		StdDev:       stat.StdDev(abs, nil),
		MaxAbsError:  maxErr,
	}, nil
}
