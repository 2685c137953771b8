package shadow

// Vec3 is a 3D vector in mm.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of v and o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale returns v scaled by k.
func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{v.X * k, v.Y * k, v.Z * k}
}

// Box is an axis-aligned box given by its center and full extent.
// Boxes are never rotated.
type Box struct {
	Position Vec3 // center, mm
	Size     Vec3 // extent along each axis, mm
}

// Min returns the minimum corner of the box.
func (b Box) Min() Vec3 {
	return b.Position.Add(b.Size.Scale(-0.5))
}

// Max returns the maximum corner of the box.
func (b Box) Max() Vec3 {
	return b.Position.Add(b.Size.Scale(0.5))
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max Vec3
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Extent returns the size of the bounds along each axis.
func (b Bounds) Extent() Vec3 {
	return Vec3{b.Max.X - b.Min.X, b.Max.Y - b.Min.Y, b.Max.Z - b.Min.Z}
}

// ComputeBounds returns the bounding box enclosing every box's full
// extent. Used for display framing only. An empty input yields zero bounds.
func ComputeBounds(boxes []Box) Bounds {
	if len(boxes) == 0 {
		return Bounds{}
	}
	out := Bounds{Min: boxes[0].Min(), Max: boxes[0].Max()}
	for _, b := range boxes[1:] {
		lo, hi := b.Min(), b.Max()
		out.Min.X = min(out.Min.X, lo.X)
		out.Min.Y = min(out.Min.Y, lo.Y)
		out.Min.Z = min(out.Min.Z, lo.Z)
		out.Max.X = max(out.Max.X, hi.X)
		out.Max.Y = max(out.Max.Y, hi.Y)
		out.Max.Z = max(out.Max.Z, hi.Z)
	}
	return out
}
