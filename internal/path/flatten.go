// Package path provides internal path processing utilities.
package path

import (
	"errors"
	"math"
)

var (
	// ErrNonFinite is returned when flattening produces a NaN or infinite point.
	ErrNonFinite = errors.New("path: non-finite point")

	// ErrTooManySegments is returned when a curve needs more than
	// MaxCurveSegments segments to stay within the tolerance.
	ErrTooManySegments = errors.New("path: curve needs too many segments for tolerance")
)

// MaxCurveSegments caps the number of line segments a single curve is split into.
const MaxCurveSegments = 1 << 14

// Point represents a 2D point (internal copy to avoid import cycle).
// It doubles as a displacement vector.
type Point struct {
	X, Y float64
}

// PathElement represents an element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point.
type MoveTo struct{ Point Point }

func (MoveTo) isPathElement() {}

// LineTo draws a line.
type LineTo struct{ Point Point }

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic curve.
type QuadTo struct{ Control, Point Point }

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic curve.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isPathElement() {}

// Close closes the path.
type Close struct{}

func (Close) isPathElement() {}

// Polyline is one flattened subpath.
//
// Consecutive duplicate points are removed. A closed polyline does not repeat
// its first point at the end; the closing edge is implied. A polyline with a
// single point is a zero-length subpath that still had drawing commands.
type Polyline struct {
	Points []Point
	Closed bool
}

// Flatten converts path elements into polylines, one per subpath.
//
// Curves are split uniformly in parameter space. The segment count comes from
// Wang's formula, which bounds the distance between the curve and the
// polyline by tolerance. A subpath consisting only of a MoveTo produces no
// polyline.
func Flatten(elements []PathElement, tolerance float64) ([]Polyline, error) {
	var (
		lines   []Polyline
		cur     []Point
		drawn   bool
		current Point
	)

	flush := func(closed bool) {
		if drawn && len(cur) > 0 {
			if closed && len(cur) > 1 && cur[0] == cur[len(cur)-1] {
				cur = cur[:len(cur)-1]
			}
			lines = append(lines, Polyline{Points: cur, Closed: closed})
		}
		cur = nil
		drawn = false
	}
	push := func(p Point) {
		if len(cur) == 0 || cur[len(cur)-1] != p {
			cur = append(cur, p)
		}
	}

	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			flush(false)
			current = e.Point
			push(current)

		case LineTo:
			if len(cur) == 0 {
				push(current)
			}
			drawn = true
			current = e.Point
			push(current)

		case QuadTo:
			if len(cur) == 0 {
				push(current)
			}
			drawn = true
			n, err := quadSegments(current, e.Control, e.Point, tolerance)
			if err != nil {
				return nil, err
			}
			for i := 1; i < n; i++ {
				push(evalQuad(current, e.Control, e.Point, float64(i)/float64(n)))
			}
			current = e.Point
			push(current)

		case CubicTo:
			if len(cur) == 0 {
				push(current)
			}
			drawn = true
			n, err := cubicSegments(current, e.Control1, e.Control2, e.Point, tolerance)
			if err != nil {
				return nil, err
			}
			for i := 1; i < n; i++ {
				push(evalCubic(current, e.Control1, e.Control2, e.Point, float64(i)/float64(n)))
			}
			current = e.Point
			push(current)

		case Close:
			if len(cur) == 0 {
				continue
			}
			drawn = true
			start := cur[0]
			flush(true)
			current = start
		}
	}
	flush(false)

	for _, l := range lines {
		for _, p := range l.Points {
			if !p.IsFinite() {
				return nil, ErrNonFinite
			}
		}
	}
	return lines, nil
}

// quadSegments returns the segment count for a quadratic curve.
// Wang's formula for degree 2: n = sqrt(|p0 - 2p1 + p2| / (4 tol)).
func quadSegments(p0, p1, p2 Point, tolerance float64) (int, error) {
	dd := p0.Sub(p1.Mul(2)).Add(p2).Length()
	return segmentCount(math.Sqrt(dd / (4 * tolerance)))
}

// cubicSegments returns the segment count for a cubic curve.
// Wang's formula for degree 3: n = sqrt(3/4 * max|pi - 2pi+1 + pi+2| / tol).
func cubicSegments(p0, p1, p2, p3 Point, tolerance float64) (int, error) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2).Length()
	d2 := p1.Sub(p2.Mul(2)).Add(p3).Length()
	return segmentCount(math.Sqrt(0.75 * math.Max(d1, d2) / tolerance))
}

// segmentCount rounds Wang's estimate up. Curves that would need more than
// MaxCurveSegments fail rather than exceed the tolerance.
func segmentCount(n float64) (int, error) {
	switch {
	case math.IsNaN(n) || n <= 1:
		return 1, nil
	case n > MaxCurveSegments:
		return 0, ErrTooManySegments
	default:
		return int(math.Ceil(n)), nil
	}
}

// evalQuad evaluates a quadratic Bezier curve at t.
func evalQuad(p0, p1, p2 Point, t float64) Point {
	mt := 1 - t
	return p0.Mul(mt * mt).Add(p1.Mul(2 * mt * t)).Add(p2.Mul(t * t))
}

// evalCubic evaluates a cubic Bezier curve at t.
func evalCubic(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	return p0.Mul(mt * mt * mt).
		Add(p1.Mul(3 * mt * mt * t)).
		Add(p2.Mul(3 * mt * t * t)).
		Add(p3.Mul(t * t * t))
}

// Helper methods for Point
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the z-component of the 3D cross product.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction, or the zero vector.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// Perp returns the vector rotated 90 degrees counter-clockwise.
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Rotate returns the vector rotated by angle radians.
func (p Point) Rotate(angle float64) Point {
	s, c := math.Sincos(angle)
	return Point{X: p.X*c - p.Y*s, Y: p.X*s + p.Y*c}
}

// IsFinite reports whether both coordinates are finite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// DistanceToSegment returns the distance from p to the segment (a, b).
func DistanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / l2
	switch {
	case t < 0:
		return p.Distance(a)
	case t > 1:
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
