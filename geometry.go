package tess

import (
	"fmt"
	"math"
)

// GeometryBuffer is an indexed triangle list.
//
// Every three consecutive indices form one counter-clockwise triangle
// (positive signed area in path coordinates). Vertices are unique: two
// entries never hold the same coordinates.
type GeometryBuffer struct {
	Vertices []Point
	Indices  []uint16
}

// IsEmpty reports whether the buffer holds no triangles.
func (g GeometryBuffer) IsEmpty() bool {
	return len(g.Indices) == 0
}

// TriangleCount returns the number of triangles.
func (g GeometryBuffer) TriangleCount() int {
	return len(g.Indices) / 3
}

// IndexCount returns the number of indices, as passed to an indexed draw call.
func (g GeometryBuffer) IndexCount() uint32 {
	return uint32(len(g.Indices))
}

// Triangle returns the corners of triangle i.
func (g GeometryBuffer) Triangle(i int) [3]Point {
	idx := g.Indices[3*i : 3*i+3]
	return [3]Point{g.Vertices[idx[0]], g.Vertices[idx[1]], g.Vertices[idx[2]]}
}

// Area returns the total signed area of all triangles. Overlapping
// triangles are counted once each.
func (g GeometryBuffer) Area() float64 {
	var sum float64
	for i := range g.TriangleCount() {
		t := g.Triangle(i)
		sum += signedArea(t[0], t[1], t[2])
	}
	return sum
}

// Bounds returns the bounding box of the vertices. An empty buffer returns
// two zero points.
func (g GeometryBuffer) Bounds() (lo, hi Point) {
	if len(g.Vertices) == 0 {
		return Point{}, Point{}
	}
	lo, hi = g.Vertices[0], g.Vertices[0]
	for _, v := range g.Vertices[1:] {
		lo = Point{X: min(lo.X, v.X), Y: min(lo.Y, v.Y)}
		hi = Point{X: max(hi.X, v.X), Y: max(hi.Y, v.Y)}
	}
	return lo, hi
}

// Validate checks the structural invariants of the buffer: the index count
// is a multiple of three, every index is in range and every vertex is finite.
func (g GeometryBuffer) Validate() error {
	if len(g.Indices)%3 != 0 {
		return fmt.Errorf("%w: index count %d is not a multiple of 3", ErrInvalidInput, len(g.Indices))
	}
	if len(g.Vertices) > math.MaxUint16+1 {
		return fmt.Errorf("%w: %d vertices", ErrTooManyVertices, len(g.Vertices))
	}
	for i, idx := range g.Indices {
		if int(idx) >= len(g.Vertices) {
			return fmt.Errorf("%w: index %d at position %d out of range [0, %d)",
				ErrInvalidInput, idx, i, len(g.Vertices))
		}
	}
	for i, v := range g.Vertices {
		if !v.IsFinite() {
			return fmt.Errorf("%w: vertex %d is %v", ErrInvalidInput, i, v)
		}
	}
	return nil
}

// signedArea returns the signed area of triangle (a, b, c); positive when
// counter-clockwise.
func signedArea(a, b, c Point) float64 {
	abx, aby := float64(b.X)-float64(a.X), float64(b.Y)-float64(a.Y)
	acx, acy := float64(c.X)-float64(a.X), float64(c.Y)-float64(a.Y)
	return (abx*acy - aby*acx) / 2
}
