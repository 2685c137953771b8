package mesh

import (
	"github.com/chazu/umbra/pkg/shadow"
)

const (
	vertsPerBox = 24 // 4 per face, 6 faces; no vertex sharing across faces
	trisPerBox  = 12 // 2 per face
)

// boxFace describes one cuboid face: an outward normal and four corners
// given as sign multipliers of the half-extents, wound counter-clockwise
// when viewed from outside.
type boxFace struct {
	normal  [3]float32
	corners [4][3]float64
}

var boxFaces = [6]boxFace{
	{[3]float32{1, 0, 0}, [4][3]float64{{1, -1, -1}, {1, 1, -1}, {1, 1, 1}, {1, -1, 1}}},
	{[3]float32{-1, 0, 0}, [4][3]float64{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}},
	{[3]float32{0, 1, 0}, [4][3]float64{{-1, 1, -1}, {-1, 1, 1}, {1, 1, 1}, {1, 1, -1}}},
	{[3]float32{0, -1, 0}, [4][3]float64{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}},
	{[3]float32{0, 0, 1}, [4][3]float64{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}}},
	{[3]float32{0, 0, -1}, [4][3]float64{{-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}, {1, -1, -1}}},
}

// FromLayout merges a synthesized layout into one mesh.
func FromLayout(l *shadow.Layout) *Mesh {
	return FromBoxes(l.Boxes())
}

// FromBoxes flattens boxes into a single indexed mesh. Each box contributes
// a canonical 24-vertex, 12-triangle cuboid generated in local space and
// translated to the box center; indices are rebased by a running vertex
// offset as boxes are appended.
func FromBoxes(boxes []shadow.Box) *Mesh {
	m := &Mesh{
		Vertices: make([]float32, 0, len(boxes)*vertsPerBox*3),
		Normals:  make([]float32, 0, len(boxes)*vertsPerBox*3),
		Indices:  make([]uint32, 0, len(boxes)*trisPerBox*3),
	}
	for _, b := range boxes {
		appendBox(m, b)
	}
	return m
}

// appendBox emits one cuboid into the mesh buffers.
func appendBox(m *Mesh, b shadow.Box) {
	hx := b.Size.X / 2
	hy := b.Size.Y / 2
	hz := b.Size.Z / 2

	base := uint32(m.VertexCount())
	for _, f := range boxFaces {
		for _, c := range f.corners {
			m.Vertices = append(m.Vertices,
				float32(b.Position.X+c[0]*hx),
				float32(b.Position.Y+c[1]*hy),
				float32(b.Position.Z+c[2]*hz),
			)
			m.Normals = append(m.Normals, f.normal[0], f.normal[1], f.normal[2])
		}
	}
	for face := uint32(0); face < 6; face++ {
		v0 := base + face*4
		m.Indices = append(m.Indices,
			v0, v0+1, v0+2,
			v0, v0+2, v0+3,
		)
	}
}
