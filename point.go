package tess

import (
	"math"

	"golang.org/x/image/math/f32"

	ipath "github.com/gogpu/tess/internal/path"
)

// Point represents an absolute position in path coordinates.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// PointFromVec2 converts an x/image float32 vector to a Point.
func PointFromVec2(v f32.Vec2) Point {
	return Point{X: v[0], Y: v[1]}
}

// Vec2 returns the point as an x/image float32 vector.
func (p Point) Vec2() f32.Vec2 {
	return f32.Vec2{p.X, p.Y}
}

// Add returns the point displaced by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// Transform applies the affine transform m to the point.
func (p Point) Transform(m f32.Aff3) Point {
	return Point{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
	}
}

// IsFinite reports whether both coordinates are finite.
func (p Point) IsFinite() bool {
	return finite32(p.X) && finite32(p.Y)
}

func (p Point) internal() ipath.Point {
	return ipath.Point{X: float64(p.X), Y: float64(p.Y)}
}

// Vector represents a displacement.
type Vector struct {
	X, Y float32
}

// Vec is a convenience function to create a Vector.
func Vec(x, y float32) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Mul returns the vector scaled by s.
func (v Vector) Mul(s float32) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Length returns the length of the vector.
func (v Vector) Length() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

func finite32(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}
