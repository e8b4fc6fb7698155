// Package mesh assembles indexed triangle lists for the tessellators.
//
// Vertices are stored as float32 pairs and deduplicated on their exact
// float32 value. Every accepted triangle is counter-clockwise (positive
// signed area in path coordinates); degenerate triangles are dropped.
package mesh

import (
	"errors"
	"math"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/tess/internal/path"
)

// MaxVertices is the largest vertex count addressable by uint16 indices.
const MaxVertices = 1 << 16

var (
	// ErrTooManyVertices is recorded when a mesh needs more than MaxVertices.
	ErrTooManyVertices = errors.New("mesh: vertex count exceeds 16-bit index range")

	// ErrNonFinite is recorded when a triangle has a NaN or infinite corner.
	ErrNonFinite = errors.New("mesh: non-finite vertex")
)

// Builder accumulates triangles.
type Builder struct {
	vertices []f32.Vec2
	indices  []uint16
	lookup   map[f32.Vec2]uint16
	err      error
}

// NewBuilder creates an empty mesh builder.
func NewBuilder() *Builder {
	return &Builder{lookup: make(map[f32.Vec2]uint16)}
}

// Triangle adds the triangle (p0, p1, p2).
//
// Corners are rounded to float32 first. A triangle whose rounded corners have
// zero signed area is dropped; a clockwise one is flipped. After the first
// error all further triangles are ignored.
func (b *Builder) Triangle(p0, p1, p2 path.Point) {
	if b.err != nil {
		return
	}
	v0, v1, v2 := toVec2(p0), toVec2(p1), toVec2(p2)
	if !finite(v0) || !finite(v1) || !finite(v2) {
		b.err = ErrNonFinite
		return
	}

	area := SignedArea(v0, v1, v2)
	if area == 0 {
		return
	}
	if area < 0 {
		v1, v2 = v2, v1
	}

	i0, ok := b.vertex(v0)
	if !ok {
		return
	}
	i1, ok := b.vertex(v1)
	if !ok {
		return
	}
	i2, ok := b.vertex(v2)
	if !ok {
		return
	}
	b.indices = append(b.indices, i0, i1, i2)
}

// Quad adds the quadrilateral (p0, p1, p2, p3) as two triangles sharing p0 and p2.
func (b *Builder) Quad(p0, p1, p2, p3 path.Point) {
	b.Triangle(p0, p1, p2)
	b.Triangle(p0, p2, p3)
}

func (b *Builder) vertex(v f32.Vec2) (uint16, bool) {
	if i, ok := b.lookup[v]; ok {
		return i, true
	}
	if len(b.vertices) >= MaxVertices {
		b.err = ErrTooManyVertices
		return 0, false
	}
	i := uint16(len(b.vertices))
	b.vertices = append(b.vertices, v)
	b.lookup[v] = i
	return i, true
}

// Err returns the first error recorded while building.
func (b *Builder) Err() error {
	return b.err
}

// Vertices returns the deduplicated vertices.
func (b *Builder) Vertices() []f32.Vec2 {
	return b.vertices
}

// Indices returns the triangle-list indices.
func (b *Builder) Indices() []uint16 {
	return b.indices
}

// TriangleCount returns the number of accepted triangles.
func (b *Builder) TriangleCount() int {
	return len(b.indices) / 3
}

// SignedArea returns twice the signed area of the triangle (a, b, c),
// computed in float64. It is positive for counter-clockwise triangles.
func SignedArea(a, b, c f32.Vec2) float64 {
	abx, aby := float64(b[0])-float64(a[0]), float64(b[1])-float64(a[1])
	acx, acy := float64(c[0])-float64(a[0]), float64(c[1])-float64(a[1])
	return abx*acy - aby*acx
}

func toVec2(p path.Point) f32.Vec2 {
	return f32.Vec2{float32(p.X), float32(p.Y)}
}

func finite(v f32.Vec2) bool {
	for _, c := range v {
		f := float64(c)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
