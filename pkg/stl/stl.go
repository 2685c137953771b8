// Package stl serializes triangle meshes as binary STL: an 80-byte header,
// a little-endian uint32 triangle count, then 50-byte triangle records
// (normal, three vertices, uint16 attribute). File size is always exactly
// 80 + 4 + 50*N bytes.
package stl

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/chazu/umbra/pkg/mesh"
)

const (
	headerSize = 80
	recordSize = 50 // 12 floats * 4 bytes + uint16 attribute
	headerTag  = "umbra shadow relief"
)

// ErrEmptyMesh is returned when encoding a mesh with no triangles.
// An empty mesh at export time indicates an upstream bug, not user error.
var ErrEmptyMesh = errors.New("stl: mesh has no triangles")

// Encode serializes m and returns the file bytes.
func Encode(m *mesh.Mesh) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(headerSize + 4 + recordSize*m.TriangleCount())
	if err := Write(&buf, m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write serializes m to w.
func Write(w io.Writer, m *mesh.Mesh) error {
	n := m.TriangleCount()
	if n == 0 {
		return ErrEmptyMesh
	}
	if uint64(n) > math.MaxUint32 {
		return fmt.Errorf("stl: %d triangles exceed uint32 count field", n)
	}

	var header [headerSize]byte
	copy(header[:], headerTag)
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(n)); err != nil {
		return err
	}

	var record [recordSize]byte
	for t := 0; t < n; t++ {
		i0 := m.Indices[t*3]
		i1 := m.Indices[t*3+1]
		i2 := m.Indices[t*3+2]

		// Normals are constant per face, so the first vertex's normal
		// stands for the triangle.
		putVec(record[0:], m.Normals, i0)
		putVec(record[12:], m.Vertices, i0)
		putVec(record[24:], m.Vertices, i1)
		putVec(record[36:], m.Vertices, i2)
		binary.LittleEndian.PutUint16(record[48:], 0)

		if _, err := w.Write(record[:]); err != nil {
			return err
		}
	}
	return nil
}

// putVec writes the 3 float32 components of buffer entry i into dst.
func putVec(dst []byte, buffer []float32, i uint32) {
	for c := 0; c < 3; c++ {
		binary.LittleEndian.PutUint32(dst[c*4:], math.Float32bits(buffer[i*3+uint32(c)]))
	}
}

// Decode reads a binary STL file back into a mesh. Vertices are not
// deduplicated: each triangle contributes three vertices carrying the
// triangle's normal.
func Decode(r io.Reader) (*mesh.Mesh, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("stl: read header: %w", err)
	}
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("stl: read triangle count: %w", err)
	}

	n := int(count)
	m := &mesh.Mesh{
		Vertices: make([]float32, 0, n*9),
		Normals:  make([]float32, 0, n*9),
		Indices:  make([]uint32, 0, n*3),
	}

	var record [recordSize]byte
	for t := 0; t < n; t++ {
		if _, err := io.ReadFull(r, record[:]); err != nil {
			return nil, fmt.Errorf("stl: read triangle %d of %d: %w", t, n, err)
		}
		var normal [3]float32
		for c := 0; c < 3; c++ {
			normal[c] = math.Float32frombits(binary.LittleEndian.Uint32(record[c*4:]))
		}
		for v := 0; v < 3; v++ {
			off := 12 + v*12
			for c := 0; c < 3; c++ {
				m.Vertices = append(m.Vertices,
					math.Float32frombits(binary.LittleEndian.Uint32(record[off+c*4:])))
			}
			m.Normals = append(m.Normals, normal[0], normal[1], normal[2])
			m.Indices = append(m.Indices, uint32(t*3+v))
		}
	}
	return m, nil
}
