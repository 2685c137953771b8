// Package raster turns decoded images into quantized brightness grids.
// It resizes, converts to grayscale, and applies error-diffusion dithering
// so that a continuous image collapses onto a small set of discrete levels.
package raster
