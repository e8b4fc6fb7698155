package tess

import (
	"fmt"
	"slices"

	"golang.org/x/image/math/f32"

	ipath "github.com/gogpu/tess/internal/path"
)

// PathElement represents an element in a path.
// The set of elements is closed: MoveTo, LineTo, QuadTo, CubicTo,
// RelativeMoveTo and Close.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at Point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a straight segment to Point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve to Point.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve to Point.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// RelativeMoveTo starts a new subpath displaced from the current point.
// Paths never contain it; the builder resolves it to MoveTo.
type RelativeMoveTo struct {
	Vector Vector
}

func (RelativeMoveTo) isPathElement() {}

// Close closes the current subpath back to its start point.
type Close struct{}

func (Close) isPathElement() {}

// Path is an immutable sequence of subpaths produced by Builder.Build.
//
// Every subpath starts with MoveTo and the path never contains
// RelativeMoveTo. A Path is consumed by exactly one tessellation; using it
// again panics. Clone it to tessellate the same geometry twice.
type Path struct {
	elements []PathElement
	consumed bool
}

// Subpath is a read-only view of one subpath.
type Subpath struct {
	Start Point
	// Segments holds LineTo, QuadTo and CubicTo elements in order.
	Segments []PathElement
	Closed   bool
}

func (p *Path) mustLive(op string) {
	if p == nil {
		panic("tess: " + op + " on nil Path")
	}
	if p.consumed {
		panic("tess: " + op + " on consumed Path")
	}
}

// consume marks the path as owned by a tessellation.
func (p *Path) consume(op string) {
	p.mustLive(op)
	p.consumed = true
}

// Elements returns a copy of the path elements.
func (p *Path) Elements() []PathElement {
	p.mustLive("Elements")
	return slices.Clone(p.elements)
}

// Len returns the number of elements.
func (p *Path) Len() int {
	p.mustLive("Len")
	return len(p.elements)
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return p.Len() == 0
}

// Subpaths returns the subpaths in order.
func (p *Path) Subpaths() []Subpath {
	p.mustLive("Subpaths")
	var subs []Subpath
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			subs = append(subs, Subpath{Start: e.Point})
		case Close:
			subs[len(subs)-1].Closed = true
		default:
			last := &subs[len(subs)-1]
			last.Segments = append(last.Segments, e)
		}
	}
	return subs
}

// Clone returns an independent, unconsumed copy of the path.
func (p *Path) Clone() *Path {
	p.mustLive("Clone")
	return &Path{elements: slices.Clone(p.elements)}
}

// Transform returns a new path with every point, control points included,
// mapped through the affine transform m.
func (p *Path) Transform(m f32.Aff3) *Path {
	p.mustLive("Transform")
	result := &Path{elements: make([]PathElement, 0, len(p.elements))}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.elements = append(result.elements, MoveTo{Point: e.Point.Transform(m)})
		case LineTo:
			result.elements = append(result.elements, LineTo{Point: e.Point.Transform(m)})
		case QuadTo:
			result.elements = append(result.elements, QuadTo{
				Control: e.Control.Transform(m),
				Point:   e.Point.Transform(m),
			})
		case CubicTo:
			result.elements = append(result.elements, CubicTo{
				Control1: e.Control1.Transform(m),
				Control2: e.Control2.Transform(m),
				Point:    e.Point.Transform(m),
			})
		case Close:
			result.elements = append(result.elements, e)
		}
	}
	return result
}

// validate reports the first element with a non-finite coordinate.
func (p *Path) validate() error {
	for i, elem := range p.elements {
		var pts []Point
		switch e := elem.(type) {
		case MoveTo:
			pts = []Point{e.Point}
		case LineTo:
			pts = []Point{e.Point}
		case QuadTo:
			pts = []Point{e.Control, e.Point}
		case CubicTo:
			pts = []Point{e.Control1, e.Control2, e.Point}
		}
		for _, pt := range pts {
			if !pt.IsFinite() {
				return fmt.Errorf("%w: element %d (%T) has non-finite coordinate %v", ErrInvalidInput, i, elem, pt)
			}
		}
	}
	return nil
}

// internal converts the path to the float64 elements used by the tessellators.
func (p *Path) internal() []ipath.PathElement {
	out := make([]ipath.PathElement, 0, len(p.elements))
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			out = append(out, ipath.MoveTo{Point: e.Point.internal()})
		case LineTo:
			out = append(out, ipath.LineTo{Point: e.Point.internal()})
		case QuadTo:
			out = append(out, ipath.QuadTo{Control: e.Control.internal(), Point: e.Point.internal()})
		case CubicTo:
			out = append(out, ipath.CubicTo{
				Control1: e.Control1.internal(),
				Control2: e.Control2.internal(),
				Point:    e.Point.internal(),
			})
		case Close:
			out = append(out, ipath.Close{})
		}
	}
	return out
}
