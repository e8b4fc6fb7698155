package tess

import "math"

// kappa is the control point distance for a quarter circle of radius 1.
const kappa = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)

// Rect adds a closed rectangle as a new subpath.
func (b *Builder) Rect(x, y, w, h float32) {
	b.MoveTo(Pt(x, y))
	b.LineTo(Pt(x+w, y))
	b.LineTo(Pt(x+w, y+h))
	b.LineTo(Pt(x, y+h))
	b.Close()
}

// RoundRect adds a rectangle with rounded corners as a new subpath.
func (b *Builder) RoundRect(x, y, w, h, r float32) {
	// Clamp radius
	r = max(0, min(r, min(w, h)/2))
	k := kappa * r

	b.MoveTo(Pt(x+r, y))
	b.LineTo(Pt(x+w-r, y))
	b.CubicBezierTo(Pt(x+w-r+k, y), Pt(x+w, y+r-k), Pt(x+w, y+r))
	b.LineTo(Pt(x+w, y+h-r))
	b.CubicBezierTo(Pt(x+w, y+h-r+k), Pt(x+w-r+k, y+h), Pt(x+w-r, y+h))
	b.LineTo(Pt(x+r, y+h))
	b.CubicBezierTo(Pt(x+r-k, y+h), Pt(x, y+h-r+k), Pt(x, y+h-r))
	b.LineTo(Pt(x, y+r))
	b.CubicBezierTo(Pt(x, y+r-k), Pt(x+r-k, y), Pt(x+r, y))
	b.Close()
}

// Circle adds a circle as a new subpath.
func (b *Builder) Circle(cx, cy, r float32) {
	b.Ellipse(cx, cy, r, r)
}

// Ellipse adds an axis-aligned ellipse as a new subpath.
func (b *Builder) Ellipse(cx, cy, rx, ry float32) {
	ox := kappa * rx
	oy := kappa * ry

	b.MoveTo(Pt(cx+rx, cy))
	b.CubicBezierTo(Pt(cx+rx, cy+oy), Pt(cx+ox, cy+ry), Pt(cx, cy+ry))
	b.CubicBezierTo(Pt(cx-ox, cy+ry), Pt(cx-rx, cy+oy), Pt(cx-rx, cy))
	b.CubicBezierTo(Pt(cx-rx, cy-oy), Pt(cx-ox, cy-ry), Pt(cx, cy-ry))
	b.CubicBezierTo(Pt(cx+ox, cy-ry), Pt(cx+rx, cy-oy), Pt(cx+rx, cy))
	b.Close()
}

// Polygon adds a regular polygon as a new subpath, starting at the top.
func (b *Builder) Polygon(cx, cy, radius float32, sides int) {
	if sides < 3 {
		return
	}

	angleStep := 2 * math.Pi / float64(sides)
	startAngle := -math.Pi / 2 // Start at top

	for i := 0; i < sides; i++ {
		p := polar(cx, cy, radius, startAngle+float64(i)*angleStep)
		if i == 0 {
			b.MoveTo(p)
		} else {
			b.LineTo(p)
		}
	}
	b.Close()
}

// Star adds a star with alternating outer and inner vertices as a new subpath.
func (b *Builder) Star(cx, cy, outerRadius, innerRadius float32, points int) {
	if points < 3 {
		return
	}

	angleStep := math.Pi / float64(points)
	startAngle := -math.Pi / 2

	for i := 0; i < points*2; i++ {
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		p := polar(cx, cy, r, startAngle+float64(i)*angleStep)
		if i == 0 {
			b.MoveTo(p)
		} else {
			b.LineTo(p)
		}
	}
	b.Close()
}

// Arc adds a circular arc around (cx, cy) from angle1 to angle2 (radians,
// increasing). An angle2 below angle1 wraps around once; sweeps beyond a
// full turn are drawn as a full circle. The arc continues the open subpath
// with a straight segment to its start, or starts a new subpath when none
// is open.
//
// Non-finite angles record non-finite points, so tessellating the path
// fails with ErrInvalidInput.
func (b *Builder) Arc(cx, cy, r float32, angle1, angle2 float64) {
	const twoPi = 2 * math.Pi
	if !finite64(angle1) || !finite64(angle2) {
		b.arcStart(polar(cx, cy, r, angle1))
		b.LineTo(polar(cx, cy, r, angle2))
		return
	}

	sweep := angle2 - angle1
	switch {
	case sweep > twoPi:
		sweep = twoPi
	case sweep < 0:
		sweep = math.Mod(math.Mod(angle2, twoPi)-math.Mod(angle1, twoPi), twoPi)
		if sweep < 0 {
			sweep += twoPi
		}
	}
	angle1 = math.Mod(angle1, twoPi)
	b.arcStart(polar(cx, cy, r, angle1))

	// Maximum 90 degrees per cubic segment
	const maxAngle = math.Pi / 2
	numSegments := max(1, int(math.Ceil(sweep/maxAngle)))
	angleStep := sweep / float64(numSegments)

	for i := 0; i < numSegments; i++ {
		a1 := angle1 + float64(i)*angleStep
		b.arcSegment(cx, cy, r, a1, a1+angleStep)
	}
}

func (b *Builder) arcStart(p Point) {
	if b.open {
		b.LineTo(p)
	} else {
		b.MoveTo(p)
	}
}

// arcSegment adds a single arc segment (at most 90 degrees) as a cubic curve.
func (b *Builder) arcSegment(cx, cy, r float32, a1, a2 float64) {
	t := math.Tan((a2 - a1) / 2)
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*t*t) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)
	rr := float64(r)

	c1 := Pt(
		float32(float64(cx)+rr*cos1-alpha*rr*sin1),
		float32(float64(cy)+rr*sin1+alpha*rr*cos1),
	)
	c2 := Pt(
		float32(float64(cx)+rr*cos2+alpha*rr*sin2),
		float32(float64(cy)+rr*sin2-alpha*rr*cos2),
	)
	b.CubicBezierTo(c1, c2, polar(cx, cy, r, a2))
}

func finite64(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func polar(cx, cy, r float32, angle float64) Point {
	return Pt(
		float32(float64(cx)+float64(r)*math.Cos(angle)),
		float32(float64(cy)+float64(r)*math.Sin(angle)),
	)
}
