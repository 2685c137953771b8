// Package shadow resolves user parameters into geometry constants and
// synthesizes the box primitives of a dual-shadow relief: a base slab plus
// one wall per quantized pixel, whose heights encode brightness.
package shadow
