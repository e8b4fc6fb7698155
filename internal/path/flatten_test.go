package path

import (
	"math"
	"testing"
)

func distanceToPolyline(p Point, pts []Point) float64 {
	best := math.Inf(1)
	for i := 0; i+1 < len(pts); i++ {
		best = math.Min(best, DistanceToSegment(p, pts[i], pts[i+1]))
	}
	return best
}

func TestFlattenLines(t *testing.T) {
	lines, err := Flatten([]PathElement{
		MoveTo{Point{0, 0}},
		LineTo{Point{10, 0}},
		LineTo{Point{10, 0}},
		LineTo{Point{10, 10}},
	}, 0.01)
	if err != nil {
		t.Fatalf("Flatten() error = %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(lines))
	}
	want := []Point{{0, 0}, {10, 0}, {10, 10}}
	if len(lines[0].Points) != len(want) {
		t.Fatalf("points = %v, want %v", lines[0].Points, want)
	}
	for i, p := range want {
		if lines[0].Points[i] != p {
			t.Errorf("point %d = %v, want %v", i, lines[0].Points[i], p)
		}
	}
	if lines[0].Closed {
		t.Error("open subpath reported as closed")
	}
}

func TestFlattenClosedDropsRepeatedStart(t *testing.T) {
	lines, err := Flatten([]PathElement{
		MoveTo{Point{0, 0}},
		LineTo{Point{10, 0}},
		LineTo{Point{10, 10}},
		LineTo{Point{0, 0}},
		Close{},
	}, 0.01)
	if err != nil {
		t.Fatalf("Flatten() error = %v", err)
	}
	if len(lines) != 1 || !lines[0].Closed {
		t.Fatalf("lines = %+v, want one closed polyline", lines)
	}
	if got := len(lines[0].Points); got != 3 {
		t.Errorf("len(points) = %d, want 3", got)
	}
}

func TestFlattenSubpaths(t *testing.T) {
	tests := []struct {
		name      string
		elements  []PathElement
		wantLines int
		wantLens  []int
	}{
		{"empty", nil, 0, nil},
		{"lone move", []PathElement{MoveTo{Point{1, 1}}}, 0, nil},
		{"moves only", []PathElement{MoveTo{Point{1, 1}}, MoveTo{Point{2, 2}}}, 0, nil},
		{"zero length line", []PathElement{MoveTo{Point{1, 1}}, LineTo{Point{1, 1}}}, 1, []int{1}},
		{"move close", []PathElement{MoveTo{Point{1, 1}}, Close{}}, 1, []int{1}},
		{
			"two subpaths",
			[]PathElement{
				MoveTo{Point{0, 0}}, LineTo{Point{1, 0}},
				MoveTo{Point{5, 5}}, LineTo{Point{6, 5}}, LineTo{Point{6, 6}}, Close{},
			},
			2, []int{2, 3},
		},
		{
			"line after close starts at subpath start",
			[]PathElement{
				MoveTo{Point{0, 0}}, LineTo{Point{1, 0}}, LineTo{Point{1, 1}}, Close{},
				LineTo{Point{-1, 0}},
			},
			2, []int{3, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := Flatten(tt.elements, 0.1)
			if err != nil {
				t.Fatalf("Flatten() error = %v", err)
			}
			if len(lines) != tt.wantLines {
				t.Fatalf("len(lines) = %d, want %d", len(lines), tt.wantLines)
			}
			for i, want := range tt.wantLens {
				if got := len(lines[i].Points); got != want {
					t.Errorf("line %d has %d points, want %d", i, got, want)
				}
			}
		})
	}
}

func TestFlattenCurveErrorBound(t *testing.T) {
	p0, p1, p2, p3 := Point{0, 0}, Point{30, 120}, Point{170, -60}, Point{200, 50}
	q0, q1, q2 := Point{0, 0}, Point{100, 200}, Point{200, 0}

	for _, tol := range []float64{1, 0.1, 0.01} {
		lines, err := Flatten([]PathElement{MoveTo{p0}, CubicTo{p1, p2, p3}}, tol)
		if err != nil {
			t.Fatalf("Flatten() error = %v", err)
		}
		pts := lines[0].Points
		for i := 0; i <= 1000; i++ {
			c := evalCubic(p0, p1, p2, p3, float64(i)/1000)
			if d := distanceToPolyline(c, pts); d > tol*(1+1e-9) {
				t.Fatalf("cubic tol %v: deviation %v at t=%v", tol, d, float64(i)/1000)
			}
		}

		lines, err = Flatten([]PathElement{MoveTo{q0}, QuadTo{q1, q2}}, tol)
		if err != nil {
			t.Fatalf("Flatten() error = %v", err)
		}
		pts = lines[0].Points
		for i := 0; i <= 1000; i++ {
			c := evalQuad(q0, q1, q2, float64(i)/1000)
			if d := distanceToPolyline(c, pts); d > tol*(1+1e-9) {
				t.Fatalf("quad tol %v: deviation %v at t=%v", tol, d, float64(i)/1000)
			}
		}
	}
}

func TestFlattenEndpointsExact(t *testing.T) {
	lines, err := Flatten([]PathElement{
		MoveTo{Point{1, 2}},
		CubicTo{Point{3, 9}, Point{7, -4}, Point{11, 5}},
		QuadTo{Point{15, 15}, Point{20, 0}},
	}, 0.01)
	if err != nil {
		t.Fatalf("Flatten() error = %v", err)
	}
	pts := lines[0].Points
	if pts[0] != (Point{1, 2}) {
		t.Errorf("first point = %v, want (1,2)", pts[0])
	}
	if last := pts[len(pts)-1]; last != (Point{20, 0}) {
		t.Errorf("last point = %v, want (20,0)", last)
	}
	var found bool
	for _, p := range pts {
		if p == (Point{11, 5}) {
			found = true
		}
	}
	if !found {
		t.Error("cubic end point missing from polyline")
	}
}

func TestFlattenTighterToleranceMoreSegments(t *testing.T) {
	elements := []PathElement{MoveTo{Point{0, 0}}, CubicTo{Point{0, 100}, Point{100, 100}, Point{100, 0}}}
	coarse, _ := Flatten(elements, 1)
	fine, _ := Flatten(elements, 0.01)
	if len(fine[0].Points) <= len(coarse[0].Points) {
		t.Errorf("fine = %d points, coarse = %d points; want fine > coarse",
			len(fine[0].Points), len(coarse[0].Points))
	}
}

func TestFlattenDegenerateCurve(t *testing.T) {
	lines, err := Flatten([]PathElement{
		MoveTo{Point{5, 5}},
		CubicTo{Point{5, 5}, Point{5, 5}, Point{5, 5}},
	}, 0.01)
	if err != nil {
		t.Fatalf("Flatten() error = %v", err)
	}
	if len(lines) != 1 || len(lines[0].Points) != 1 {
		t.Errorf("lines = %+v, want one single-point polyline", lines)
	}
}

func TestFlattenNonFinite(t *testing.T) {
	_, err := Flatten([]PathElement{
		MoveTo{Point{0, 0}},
		LineTo{Point{math.Inf(1), 0}},
	}, 0.01)
	if err != ErrNonFinite {
		t.Errorf("Flatten() error = %v, want %v", err, ErrNonFinite)
	}
}

func TestSegmentCount(t *testing.T) {
	tests := []struct {
		n       float64
		want    int
		wantErr bool
	}{
		{math.NaN(), 1, false},
		{0, 1, false},
		{1, 1, false},
		{1.2, 2, false},
		{7, 7, false},
		{MaxCurveSegments, MaxCurveSegments, false},
		{MaxCurveSegments + 0.5, 0, true},
		{1e12, 0, true},
		{math.Inf(1), 0, true},
	}
	for _, tt := range tests {
		got, err := segmentCount(tt.n)
		if got != tt.want || (err != nil) != tt.wantErr {
			t.Errorf("segmentCount(%v) = %d, %v, want %d, error %v", tt.n, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestFlattenTooManySegments(t *testing.T) {
	tests := []struct {
		name string
		elem PathElement
	}{
		{"quad", QuadTo{Point{1e6, 1e6}, Point{2e6, 0}}},
		{"cubic", CubicTo{Point{0, 1e6}, Point{1e6, 1e6}, Point{1e6, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := Flatten([]PathElement{MoveTo{Point{0, 0}}, tt.elem}, 0.001)
			if err != ErrTooManySegments {
				t.Errorf("Flatten() error = %v, want %v", err, ErrTooManySegments)
			}
			if lines != nil {
				t.Errorf("Flatten() lines = %v, want nil", lines)
			}
		})
	}
}

func TestEdgesMultipleSubpaths(t *testing.T) {
	// Two separate rectangles
	lines := []Polyline{
		{Points: []Point{{0, 0}, {100, 0}, {100, 50}, {0, 50}}, Closed: true},
		{Points: []Point{{10, 10}, {90, 10}, {90, 40}, {10, 40}}},
		{Points: []Point{{5, 5}}},
	}

	edges := Edges(lines)
	if len(edges) != 8 {
		t.Fatalf("len(edges) = %d, want 8", len(edges))
	}
	// Open subpaths are closed for filling, never joined to the next subpath.
	if edges[3] != (Edge{Point{0, 50}, Point{0, 0}}) {
		t.Errorf("edge 3 = %v, want close edge of first rectangle", edges[3])
	}
	if edges[7] != (Edge{Point{10, 40}, Point{10, 10}}) {
		t.Errorf("edge 7 = %v, want close edge of second rectangle", edges[7])
	}
}

func TestPointHelpers(t *testing.T) {
	v := Point{3, 4}
	if got := v.Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := v.Perp(); got != (Point{-4, 3}) {
		t.Errorf("Perp() = %v, want (-4,3)", got)
	}
	if got := (Point{1, 0}).Cross(Point{0, 1}); got != 1 {
		t.Errorf("Cross() = %v, want 1", got)
	}
	if got := (Point{}).Normalize(); got != (Point{}) {
		t.Errorf("Normalize(zero) = %v, want zero", got)
	}
	r := Point{1, 0}.Rotate(math.Pi / 2)
	if math.Abs(r.X) > 1e-12 || math.Abs(r.Y-1) > 1e-12 {
		t.Errorf("Rotate(pi/2) = %v, want (0,1)", r)
	}
}
