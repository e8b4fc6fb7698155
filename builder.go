package tess

// Builder constructs a Path incrementally.
//
// The builder tracks the current point and the start of the current
// subpath. A drawing command issued while no subpath is open starts one
// implicitly at the current point: the origin for a fresh builder, or the
// start of the previous subpath after Close.
//
// Build consumes the builder; any later call panics. A Builder must not be
// used from multiple goroutines at once.
type Builder struct {
	elements []PathElement
	start    Point
	current  Point
	open     bool
	consumed bool
}

// NewBuilder creates an empty path builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) check(op string) {
	if b.consumed {
		panic("tess: Builder." + op + " after Build")
	}
}

// begin opens a subpath at the current point if none is open.
func (b *Builder) begin() {
	if !b.open {
		b.elements = append(b.elements, MoveTo{Point: b.current})
		b.start = b.current
		b.open = true
	}
}

// MoveTo starts a new subpath at p. A MoveTo directly following another
// MoveTo replaces it.
func (b *Builder) MoveTo(p Point) {
	b.check("MoveTo")
	if n := len(b.elements); n > 0 {
		if _, ok := b.elements[n-1].(MoveTo); ok {
			b.elements = b.elements[:n-1]
		}
	}
	b.elements = append(b.elements, MoveTo{Point: p})
	b.start = p
	b.current = p
	b.open = true
}

// RelativeMoveTo starts a new subpath at the current point displaced by v.
func (b *Builder) RelativeMoveTo(v Vector) {
	b.check("RelativeMoveTo")
	b.MoveTo(b.current.Add(v))
}

// LineTo draws a straight segment from the current point to p.
func (b *Builder) LineTo(p Point) {
	b.check("LineTo")
	b.begin()
	b.elements = append(b.elements, LineTo{Point: p})
	b.current = p
}

// QuadraticBezierTo draws a quadratic Bezier curve to p with control point ctrl.
func (b *Builder) QuadraticBezierTo(ctrl, p Point) {
	b.check("QuadraticBezierTo")
	b.begin()
	b.elements = append(b.elements, QuadTo{Control: ctrl, Point: p})
	b.current = p
}

// CubicBezierTo draws a cubic Bezier curve to p with control points c1 and c2.
func (b *Builder) CubicBezierTo(c1, c2, p Point) {
	b.check("CubicBezierTo")
	b.begin()
	b.elements = append(b.elements, CubicTo{Control1: c1, Control2: c2, Point: p})
	b.current = p
}

// Close closes the current subpath back to its start point. It does nothing
// when no subpath is open.
func (b *Builder) Close() {
	b.check("Close")
	if !b.open {
		return
	}
	b.elements = append(b.elements, Close{})
	b.current = b.start
	b.open = false
}

// Append replays elements through the builder's mutators.
func (b *Builder) Append(elems ...PathElement) {
	b.check("Append")
	for _, elem := range elems {
		switch e := elem.(type) {
		case MoveTo:
			b.MoveTo(e.Point)
		case RelativeMoveTo:
			b.RelativeMoveTo(e.Vector)
		case LineTo:
			b.LineTo(e.Point)
		case QuadTo:
			b.QuadraticBezierTo(e.Control, e.Point)
		case CubicTo:
			b.CubicBezierTo(e.Control1, e.Control2, e.Point)
		case Close:
			b.Close()
		}
	}
}

// CurrentPoint returns the current point.
func (b *Builder) CurrentPoint() Point {
	b.check("CurrentPoint")
	return b.current
}

// Build finalizes the path and consumes the builder. A trailing MoveTo
// without drawing commands is dropped.
func (b *Builder) Build() *Path {
	b.check("Build")
	b.consumed = true
	elems := b.elements
	if n := len(elems); n > 0 {
		if _, ok := elems[n-1].(MoveTo); ok {
			elems = elems[:n-1]
		}
	}
	b.elements = nil
	return &Path{elements: elems}
}
