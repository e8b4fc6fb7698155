package path

// Edge represents a line segment from P0 to P1.
type Edge struct {
	P0, P1 Point
}

// Edges returns the edges of the given polylines with every polyline closed
// back to its own first point, as a fill sees them. Edges never connect
// separate subpaths. Zero-length edges are skipped.
func Edges(lines []Polyline) []Edge {
	var n int
	for _, l := range lines {
		n += len(l.Points)
	}
	edges := make([]Edge, 0, n)
	for _, l := range lines {
		pts := l.Points
		if len(pts) < 2 {
			continue
		}
		for i, p0 := range pts {
			p1 := pts[(i+1)%len(pts)]
			if p0 != p1 {
				edges = append(edges, Edge{P0: p0, P1: p1})
			}
		}
	}
	return edges
}
