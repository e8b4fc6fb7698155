// Package fill triangulates the interior of closed polylines under a winding rule.
//
// The tessellator performs a trapezoidal sweep decomposition:
//
//  1. Edges are split at every pairwise crossing, so no two edges cross
//     inside their y-range.
//  2. The endpoint y-coordinates become sweep events. Between two
//     consecutive events (a slab) the active edges never cross, so sorting
//     them by x at mid-slab gives their order on the whole slab.
//  3. Walking each slab from left to right accumulates signed crossings.
//     Every maximal run that the rule classifies as inside belongs to one
//     trapezoid. A trapezoid grows downwards through the following slabs
//     while the same pair of edges bounds a run, so the output size follows
//     the input vertices rather than edges times events.
//  4. Trapezoids are triangulated as zig-zag strips. A strip side on an
//     event line includes every trapezoid corner lying on that line, and a
//     trapezoid is cut where another corner touches its side, so
//     neighboring trapezoids share vertices and the mesh has no T-junctions.
//
// Horizontal edges carry no winding and are dropped.
package fill

import (
	"cmp"
	"errors"
	"slices"

	"github.com/gogpu/tess/internal/mesh"
	"github.com/gogpu/tess/internal/path"
)

// Rule selects which regions count as inside.
type Rule int

const (
	// NonZero fills regions with a non-zero winding number.
	NonZero Rule = iota

	// EvenOdd fills regions with an odd winding number.
	EvenOdd
)

// String returns the rule name.
func (r Rule) String() string {
	switch r {
	case NonZero:
		return "NonZero"
	case EvenOdd:
		return "EvenOdd"
	default:
		return "Unknown"
	}
}

func (r Rule) inside(winding int) bool {
	if r == EvenOdd {
		return winding&1 != 0
	}
	return winding != 0
}

// ErrUnbalanced is returned when the crossings of a slab do not sum to zero.
var ErrUnbalanced = errors.New("fill: winding does not balance")

// edge is a non-horizontal edge oriented downwards (top.Y < bot.Y).
type edge struct {
	top, bot path.Point
	dir      int // +1 if the path runs from top to bot, -1 otherwise
}

// xAt returns the x-coordinate of the edge at y. Endpoint rows are exact.
func (e *edge) xAt(y float64) float64 {
	switch y {
	case e.top.Y:
		return e.top.X
	case e.bot.Y:
		return e.bot.X
	}
	t := (y - e.top.Y) / (e.bot.Y - e.top.Y)
	return e.top.X + (e.bot.X-e.top.X)*t
}

func (e *edge) minX() float64 { return min(e.top.X, e.bot.X) }
func (e *edge) maxX() float64 { return max(e.top.X, e.bot.X) }

// span is an active edge clipped to one slab.
type span struct {
	edge   int
	x0, x1 float64
}

// trapezoid is an inside region between a left and a right edge, bounded
// above and below by the event lines top and bot.
type trapezoid struct {
	left, right int
	top, bot    int
}

// pair identifies an inside run by its bounding edges.
type pair struct{ left, right int }

// Stats describes the work done by the last Tessellate call.
type Stats struct {
	Edges      int // non-horizontal edges after crossing splits
	Crossings  int
	Slabs      int
	Trapezoids int
}

// Tessellator triangulates filled polylines.
// A Tessellator can be reused but is not safe for concurrent use.
type Tessellator struct {
	rule   Rule
	edges  []edge
	events []float64
	traps  []trapezoid
	rows   [][]float64
	spans  []span
	open   map[pair]int // runs reaching the current event line
	next   map[pair]int
	stats  Stats
}

// NewTessellator creates a fill tessellator for the given rule.
func NewTessellator(rule Rule) *Tessellator {
	return &Tessellator{rule: rule}
}

// Stats returns statistics of the last Tessellate call.
func (t *Tessellator) Stats() Stats {
	return t.stats
}

// Tessellate fills the polylines, each implicitly closed, and writes the
// triangles to out.
func (t *Tessellator) Tessellate(lines []path.Polyline, out *mesh.Builder) error {
	t.reset()
	t.addEdges(path.Edges(lines))
	if len(t.edges) == 0 {
		return nil
	}

	t.splitCrossings()
	t.collectEvents()
	if err := t.sweep(); err != nil {
		slogger().Warn("fill: sweep failed",
			"edges", t.stats.Edges, "slabs", t.stats.Slabs, "err", err)
		return err
	}
	before := out.TriangleCount()
	t.triangulate(out)

	slogger().Debug("fill: tessellated",
		"rule", t.rule,
		"edges", t.stats.Edges,
		"crossings", t.stats.Crossings,
		"slabs", t.stats.Slabs,
		"trapezoids", t.stats.Trapezoids,
		"triangles", out.TriangleCount()-before)
	return nil
}

func (t *Tessellator) reset() {
	t.edges = t.edges[:0]
	t.events = t.events[:0]
	t.traps = t.traps[:0]
	t.rows = t.rows[:0]
	t.stats = Stats{}
}

func (t *Tessellator) addEdges(edges []path.Edge) {
	for _, e := range edges {
		switch {
		case e.P0.Y < e.P1.Y:
			t.edges = append(t.edges, edge{top: e.P0, bot: e.P1, dir: 1})
		case e.P0.Y > e.P1.Y:
			t.edges = append(t.edges, edge{top: e.P1, bot: e.P0, dir: -1})
		}
	}
}

func compareTop(a, b edge) int {
	if c := cmp.Compare(a.top.Y, b.top.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.top.X, b.top.X)
}

// splitCrossings splits every pair of edges that properly cross at the
// crossing point. Both edges receive the same point.
func (t *Tessellator) splitCrossings() {
	slices.SortFunc(t.edges, compareTop)

	splits := make(map[int][]path.Point)
	for i := range t.edges {
		a := &t.edges[i]
		for j := i + 1; j < len(t.edges); j++ {
			b := &t.edges[j]
			if b.top.Y >= a.bot.Y {
				break
			}
			if b.minX() > a.maxX() || b.maxX() < a.minX() {
				continue
			}
			p, ok := crossing(a, b)
			if !ok {
				continue
			}
			t.stats.Crossings++
			if p.Y > a.top.Y && p.Y < a.bot.Y {
				splits[i] = append(splits[i], p)
			}
			if p.Y > b.top.Y && p.Y < b.bot.Y {
				splits[j] = append(splits[j], p)
			}
		}
	}
	if len(splits) == 0 {
		return
	}

	n := len(t.edges)
	for i := 0; i < n; i++ {
		pts, ok := splits[i]
		if !ok {
			continue
		}
		slices.SortFunc(pts, func(p, q path.Point) int { return cmp.Compare(p.Y, q.Y) })
		e := t.edges[i]
		prev := e.top
		first := true
		emit := func(p path.Point) {
			piece := edge{top: prev, bot: p, dir: e.dir}
			if first {
				t.edges[i] = piece
				first = false
			} else {
				t.edges = append(t.edges, piece)
			}
			prev = p
		}
		for _, p := range pts {
			if p.Y > prev.Y {
				emit(p)
			}
		}
		emit(e.bot)
	}
}

// crossing returns the point where a and b properly cross. Touching at an
// endpoint and collinear overlap are not crossings.
func crossing(a, b *edge) (path.Point, bool) {
	if a.top == b.top || a.top == b.bot || a.bot == b.top || a.bot == b.bot {
		return path.Point{}, false
	}
	da := a.bot.Sub(a.top)
	db := b.bot.Sub(b.top)
	denom := da.Cross(db)
	if denom == 0 {
		return path.Point{}, false
	}
	d := b.top.Sub(a.top)
	s := d.Cross(db) / denom
	u := d.Cross(da) / denom
	if s <= 0 || s >= 1 || u <= 0 || u >= 1 {
		return path.Point{}, false
	}
	return a.top.Add(da.Mul(s)), true
}

func (t *Tessellator) collectEvents() {
	for _, e := range t.edges {
		t.events = append(t.events, e.top.Y, e.bot.Y)
	}
	slices.Sort(t.events)
	t.events = slices.Compact(t.events)
	t.stats.Edges = len(t.edges)
}

// sweep walks the slabs between consecutive event lines. A trapezoid stays
// open for as long as its left and right edges bound the same inside run, so
// corners only appear where a run starts or ends.
func (t *Tessellator) sweep() error {
	slices.SortFunc(t.edges, compareTop)
	for range t.events {
		t.rows = append(t.rows, nil)
	}
	if t.open == nil {
		t.open = make(map[pair]int)
		t.next = make(map[pair]int)
	}
	clear(t.open)
	clear(t.next)

	var active []int
	next := 0
	for k := 0; k+1 < len(t.events); k++ {
		y0 := t.events[k]

		n := 0
		for _, i := range active {
			if t.edges[i].bot.Y > y0 {
				active[n] = i
				n++
			}
		}
		active = active[:n]
		for next < len(t.edges) && t.edges[next].top.Y <= y0 {
			active = append(active, next)
			next++
		}
		if len(active) > 0 {
			t.stats.Slabs++
			if err := t.runs(k, active); err != nil {
				return err
			}
		}
		t.settle(k)
	}
	t.settle(len(t.events) - 1)
	return nil
}

// runs finds the inside runs of slab k. Coincident spans are crossed
// together, so edges shared by two touching regions never bound a run.
func (t *Tessellator) runs(k int, active []int) error {
	y0, y1 := t.events[k], t.events[k+1]
	t.spans = t.spans[:0]
	for _, i := range active {
		e := &t.edges[i]
		t.spans = append(t.spans, span{edge: i, x0: e.xAt(y0), x1: e.xAt(y1)})
	}
	slices.SortFunc(t.spans, func(a, b span) int {
		if c := cmp.Compare(a.x0+a.x1, b.x0+b.x1); c != 0 {
			return c
		}
		if c := cmp.Compare(a.x0, b.x0); c != 0 {
			return c
		}
		return cmp.Compare(a.edge, b.edge)
	})

	winding := 0
	var left span
	for i := 0; i < len(t.spans); {
		s := t.spans[i]
		was := t.rule.inside(winding)
		for ; i < len(t.spans) && t.spans[i].x0 == s.x0 && t.spans[i].x1 == s.x1; i++ {
			winding += t.edges[t.spans[i].edge].dir
		}
		now := t.rule.inside(winding)
		switch {
		case !was && now:
			left = s
		case was && !now:
			t.extend(k, left, s)
		}
	}
	if winding != 0 {
		return ErrUnbalanced
	}
	return nil
}

// extend continues the open trapezoid bounded by l and r through slab k, or
// opens a new one on the upper event line.
func (t *Tessellator) extend(k int, l, r span) {
	if r.x0-l.x0+r.x1-l.x1 <= 0 {
		return
	}
	p := pair{left: l.edge, right: r.edge}
	i, ok := t.open[p]
	if !ok {
		i = len(t.traps)
		t.traps = append(t.traps, trapezoid{left: l.edge, right: r.edge, top: k, bot: -1})
		t.stats.Trapezoids++
	}
	t.next[p] = i
}

// settle closes on event line k every trapezoid the last slab did not extend.
func (t *Tessellator) settle(k int) {
	for p, i := range t.open {
		if _, ok := t.next[p]; !ok {
			t.traps[i].bot = k
		}
	}
	t.open, t.next = t.next, t.open
	clear(t.next)
}

// corners returns the x-coordinates of the trapezoid sides on event line k.
func (t *Tessellator) corners(tr trapezoid, k int) (xl, xr float64) {
	y := t.events[k]
	return t.edges[tr.left].xAt(y), t.edges[tr.right].xAt(y)
}

func (t *Tessellator) triangulate(out *mesh.Builder) {
	for _, tr := range t.traps {
		xl, xr := t.corners(tr, tr.top)
		t.rows[tr.top] = append(t.rows[tr.top], xl, xr)
		xl, xr = t.corners(tr, tr.bot)
		t.rows[tr.bot] = append(t.rows[tr.bot], xl, xr)
	}
	for k, row := range t.rows {
		slices.Sort(row)
		t.rows[k] = slices.Compact(row)
	}
	t.splitSides()

	for _, tr := range t.traps {
		xl0, xr0 := t.corners(tr, tr.top)
		xl1, xr1 := t.corners(tr, tr.bot)
		upper := chain(t.rows[tr.top], xl0, xr0)
		lower := chain(t.rows[tr.bot], xl1, xr1)
		zigzag(out, upper, t.events[tr.top], lower, t.events[tr.bot])
	}
}

// splitSides cuts a trapezoid on every event line where a vertex of another
// trapezoid lies on one of its sides. The new corners may land on further
// sides, so it repeats until nothing changes.
func (t *Tessellator) splitSides() {
	for changed := true; changed; {
		changed = false
		for i := 0; i < len(t.traps); i++ {
			tr := t.traps[i]
			for k := tr.top + 1; k < tr.bot; k++ {
				xl, xr := t.corners(tr, k)
				if !t.onRow(k, xl) && !t.onRow(k, xr) {
					continue
				}
				t.traps[i].bot = k
				t.traps = append(t.traps, trapezoid{left: tr.left, right: tr.right, top: k, bot: tr.bot})
				t.stats.Trapezoids++
				t.insertRow(k, xl)
				t.insertRow(k, xr)
				changed = true
				break
			}
		}
	}
}

// onRow reports whether row k holds a vertex at x once rounded to float32.
func (t *Tessellator) onRow(k int, x float64) bool {
	row := t.rows[k]
	i, found := slices.BinarySearch(row, x)
	if found {
		return true
	}
	x32 := float32(x)
	return (i < len(row) && float32(row[i]) == x32) || (i > 0 && float32(row[i-1]) == x32)
}

func (t *Tessellator) insertRow(k int, x float64) {
	if i, found := slices.BinarySearch(t.rows[k], x); !found {
		t.rows[k] = slices.Insert(t.rows[k], i, x)
	}
}

// chain returns the registered x-coordinates of row between lo and hi.
func chain(row []float64, lo, hi float64) []float64 {
	if hi <= lo {
		i, _ := slices.BinarySearch(row, lo)
		return row[i : i+1]
	}
	i, _ := slices.BinarySearch(row, lo)
	j, _ := slices.BinarySearch(row, hi)
	return row[i : j+1]
}

// zigzag triangulates the convex region between two sorted chains lying on
// the rows ya and yb, advancing along whichever chain lags behind.
func zigzag(out *mesh.Builder, a []float64, ya float64, b []float64, yb float64) {
	m, n := len(a), len(b)
	if m+n < 3 {
		return
	}
	wa, wb := a[m-1]-a[0], b[n-1]-b[0]
	i, j := 0, 0
	for i < m-1 || j < n-1 {
		advanceA := j == n-1
		if i < m-1 && j < n-1 {
			advanceA = (a[i+1]-a[0])*wb <= (b[j+1]-b[0])*wa
		}
		if advanceA {
			out.Triangle(path.Point{X: a[i], Y: ya}, path.Point{X: a[i+1], Y: ya}, path.Point{X: b[j], Y: yb})
			i++
		} else {
			out.Triangle(path.Point{X: a[i], Y: ya}, path.Point{X: b[j+1], Y: yb}, path.Point{X: b[j], Y: yb})
			j++
		}
	}
}
