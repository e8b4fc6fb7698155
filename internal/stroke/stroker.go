package stroke

import (
	"math"

	"github.com/gogpu/tess/internal/mesh"
	"github.com/gogpu/tess/internal/path"
)

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// Stroke defines the style for stroke tessellation.
type Stroke struct {
	Width      float64
	StartCap   LineCap
	EndCap     LineCap
	Join       LineJoin
	MiterLimit float64
}

// DefaultStroke returns a stroke with default settings.
func DefaultStroke() Stroke {
	return Stroke{
		Width:      1.0,
		StartCap:   LineCapButt,
		EndCap:     LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 4.0,
	}
}

// DefaultTolerance is the default chord error for round joins and caps.
const DefaultTolerance = 0.25

// maxArcSegments caps the subdivision of a single arc.
const maxArcSegments = 1024

// straightCross is the cross product of unit directions below which two
// segments count as collinear.
const straightCross = 1e-9

// Stats describes the work done by the last Tessellate call.
type Stats struct {
	Subpaths int
	Segments int
	Joins    int
	Dots     int
}

// side holds the two offset points of a cross-section: l on the left
// (counter-clockwise normal) side and r on the right side.
type side struct {
	l, r path.Point
}

// Stroker tessellates stroked polylines.
// A Stroker can be reused but is not safe for concurrent use.
type Stroker struct {
	style     Stroke
	tolerance float64

	hw    float64
	out   *mesh.Builder
	stats Stats
}

// NewStroker creates a new stroker with the given style.
func NewStroker(style Stroke) *Stroker {
	return &Stroker{
		style:     style,
		tolerance: DefaultTolerance,
	}
}

// SetTolerance sets the chord error for round geometry.
func (s *Stroker) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		s.tolerance = tolerance
	}
}

// Stats returns statistics of the last Tessellate call.
func (s *Stroker) Stats() Stats {
	return s.stats
}

// Tessellate strokes every polyline and writes the triangles to out.
func (s *Stroker) Tessellate(lines []path.Polyline, out *mesh.Builder) {
	s.out = out
	s.hw = s.style.Width / 2
	s.stats = Stats{}
	before := out.TriangleCount()

	for _, l := range lines {
		s.stats.Subpaths++
		switch {
		case len(l.Points) == 1:
			s.dot(l.Points[0])
		case l.Closed:
			s.closed(l.Points)
		default:
			s.open(l.Points)
		}
	}
	s.out = nil

	slogger().Debug("stroke: tessellated",
		"width", s.style.Width,
		"subpaths", s.stats.Subpaths,
		"segments", s.stats.Segments,
		"joins", s.stats.Joins,
		"dots", s.stats.Dots,
		"triangles", out.TriangleCount()-before)
}

// segments returns the unit direction and length of every segment. For a
// closed polyline the closing segment is included.
func segments(pts []path.Point, closed bool) (dirs []path.Point, lens []float64) {
	n := len(pts) - 1
	if closed {
		n = len(pts)
	}
	dirs = make([]path.Point, n)
	lens = make([]float64, n)
	for i := 0; i < n; i++ {
		d := pts[(i+1)%len(pts)].Sub(pts[i])
		lens[i] = d.Length()
		dirs[i] = d.Normalize()
	}
	return dirs, lens
}

func (s *Stroker) open(pts []path.Point) {
	dirs, lens := segments(pts, false)
	s.stats.Segments += len(dirs)

	cur := s.startCap(pts[0], dirs[0])
	for i := 1; i < len(pts)-1; i++ {
		in, out := s.join(pts[i], dirs[i-1], dirs[i], lens[i-1], lens[i])
		s.quad(cur, in)
		cur = out
	}
	last := len(dirs) - 1
	s.quad(cur, s.endCap(pts[len(pts)-1], dirs[last]))
}

func (s *Stroker) closed(pts []path.Point) {
	dirs, lens := segments(pts, true)
	n := len(dirs)
	s.stats.Segments += n

	ins := make([]side, n)
	outs := make([]side, n)
	for i := range pts {
		prev := (i - 1 + n) % n
		ins[i], outs[i] = s.join(pts[i], dirs[prev], dirs[i], lens[prev], lens[i])
	}
	for i := range n {
		s.quad(outs[i], ins[(i+1)%n])
	}
}

// quad emits the ribbon between two cross-sections a and b, a before b.
func (s *Stroker) quad(a, b side) {
	s.out.Triangle(a.r, b.r, b.l)
	s.out.Triangle(a.r, b.l, a.l)
}

// join connects the segment arriving at p along d0 with the segment leaving
// along d1. It returns the cross-section ending the incoming segment and the
// one starting the outgoing segment, and emits the join wedge.
func (s *Stroker) join(p, d0, d1 path.Point, len0, len1 float64) (in, out side) {
	s.stats.Joins++
	hw := s.hw
	n0, n1 := d0.Perp(), d1.Perp()
	cross := d0.Cross(d1)
	dot := d0.Dot(d1)

	if math.Abs(cross) < straightCross {
		if dot > 0 {
			sd := side{l: p.Add(n0.Mul(hw)), r: p.Sub(n0.Mul(hw))}
			return sd, sd
		}
		return s.reverse(p, n0, n1)
	}

	// sign selects the outer side: +1 left, -1 right.
	sign := 1.0
	if cross > 0 {
		sign = -1
	}
	m := n0.Add(n1).Normalize()
	cosHalf := m.Dot(n0)
	miterLen := hw / cosHalf
	tanHalf := math.Sqrt(max(0, 1-cosHalf*cosHalf)) / cosHalf
	innerOK := hw*tanHalf <= min(len0, len1)
	miter := s.style.Join == LineJoinMiter && 1/cosHalf <= s.style.MiterLimit

	if miter && innerOK {
		sd := side{l: p.Add(m.Mul(miterLen)), r: p.Sub(m.Mul(miterLen))}
		return sd, sd
	}

	from := n0.Mul(sign * hw)
	o0 := p.Add(from)
	o1 := p.Add(n1.Mul(sign * hw))
	hub := p
	i0, i1 := p.Sub(from), p.Sub(n1.Mul(sign*hw))
	if innerOK {
		hub = p.Sub(m.Mul(sign * miterLen))
		i0, i1 = hub, hub
	}

	switch {
	case s.style.Join == LineJoinRound:
		s.fan(hub, p, from, math.Atan2(cross, dot), o1)
	case miter:
		tip := p.Add(m.Mul(sign * miterLen))
		s.out.Triangle(hub, o0, tip)
		s.out.Triangle(hub, tip, o1)
	default:
		s.out.Triangle(hub, o0, o1)
	}

	if sign > 0 {
		return side{l: o0, r: i0}, side{l: o1, r: i1}
	}
	return side{l: i0, r: o0}, side{l: i1, r: o1}
}

// reverse joins two segments meeting head-on. Miter and bevel joins leave
// the end flat; a round join gets a semicircle around the turning point.
func (s *Stroker) reverse(p, n0, n1 path.Point) (in, out side) {
	hw := s.hw
	in = side{l: p.Add(n0.Mul(hw)), r: p.Sub(n0.Mul(hw))}
	out = side{l: p.Add(n1.Mul(hw)), r: p.Sub(n1.Mul(hw))}
	if s.style.Join == LineJoinRound {
		s.fan(p, p, n0.Mul(hw), -math.Pi, out.l)
	}
	return in, out
}

// startCap returns the cross-section at the start of an open polyline and
// emits its cap.
func (s *Stroker) startCap(p, d path.Point) side {
	nrm := d.Perp().Mul(s.hw)
	sd := side{l: p.Add(nrm), r: p.Sub(nrm)}
	switch s.style.StartCap {
	case LineCapSquare:
		ext := d.Mul(-s.hw)
		s.quad(side{l: sd.l.Add(ext), r: sd.r.Add(ext)}, sd)
	case LineCapRound:
		s.fan(p, p, nrm.Mul(-1), -math.Pi, sd.l)
	}
	return sd
}

// endCap returns the cross-section at the end of an open polyline and emits
// its cap.
func (s *Stroker) endCap(p, d path.Point) side {
	nrm := d.Perp().Mul(s.hw)
	sd := side{l: p.Add(nrm), r: p.Sub(nrm)}
	switch s.style.EndCap {
	case LineCapSquare:
		ext := d.Mul(s.hw)
		s.quad(sd, side{l: sd.l.Add(ext), r: sd.r.Add(ext)})
	case LineCapRound:
		s.fan(p, p, nrm, -math.Pi, sd.r)
	}
	return sd
}

// dot renders a zero-length subpath. Round caps give a circle of radius
// width/2, square caps an axis-aligned square of side width, butt caps
// nothing. The start cap decides.
func (s *Stroker) dot(p path.Point) {
	hw := s.hw
	switch s.style.StartCap {
	case LineCapRound:
		s.stats.Dots++
		n := max(curveDivs(hw, 2*math.Pi, s.tolerance), 3)
		first := p.Add(path.Point{X: hw})
		prev := first
		for i := 1; i <= n; i++ {
			next := first
			if i < n {
				next = p.Add(path.Point{X: hw}.Rotate(2 * math.Pi * float64(i) / float64(n)))
			}
			s.out.Triangle(p, prev, next)
			prev = next
		}
	case LineCapSquare:
		s.stats.Dots++
		s.out.Quad(
			path.Point{X: p.X - hw, Y: p.Y - hw},
			path.Point{X: p.X + hw, Y: p.Y - hw},
			path.Point{X: p.X + hw, Y: p.Y + hw},
			path.Point{X: p.X - hw, Y: p.Y + hw},
		)
	}
}

// fan emits triangles from hub to an arc around center. The arc starts at
// center+from, turns by sweep radians and ends exactly at end.
func (s *Stroker) fan(hub, center, from path.Point, sweep float64, end path.Point) {
	n := curveDivs(s.hw, math.Abs(sweep), s.tolerance)
	prev := center.Add(from)
	for i := 1; i <= n; i++ {
		next := end
		if i < n {
			next = center.Add(from.Rotate(sweep * float64(i) / float64(n)))
		}
		s.out.Triangle(hub, prev, next)
		prev = next
	}
}

// curveDivs returns the number of chords needed to approximate an arc of
// radius r spanning arc radians within tol.
func curveDivs(r, arc, tol float64) int {
	da := math.Acos(r/(r+tol)) * 2
	if da <= 0 || math.IsNaN(da) {
		return maxArcSegments
	}
	n := math.Ceil(arc / da)
	if n >= maxArcSegments {
		return maxArcSegments
	}
	return max(2, int(n))
}
