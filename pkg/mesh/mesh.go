// Package mesh flattens box primitives into a single indexed triangle mesh.
package mesh

// Mesh is a triangle mesh with flat buffers: vertices has 3 floats per
// vertex (x,y,z), normals has 3 floats per vertex (constant per face),
// indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices []float32
	Normals  []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Bounds returns the component-wise min and max over all vertices.
// The zero mesh returns zero bounds.
func (m *Mesh) Bounds() (bmin, bmax [3]float32) {
	if m.IsEmpty() {
		return bmin, bmax
	}
	copy(bmin[:], m.Vertices[0:3])
	copy(bmax[:], m.Vertices[0:3])
	for i := 3; i < len(m.Vertices); i += 3 {
		for c := 0; c < 3; c++ {
			v := m.Vertices[i+c]
			if v < bmin[c] {
				bmin[c] = v
			}
			if v > bmax[c] {
				bmax[c] = v
			}
		}
	}
	return bmin, bmax
}
