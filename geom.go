package tess

import (
	gpath "seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// AppendGeomPath replays a seehuhn.de/go/geom path through the builder.
// Coordinates are converted from float64 to float32.
func (b *Builder) AppendGeomPath(p gpath.Path) {
	b.check("AppendGeomPath")
	for cmd, pts := range p {
		switch cmd {
		case gpath.CmdMoveTo:
			b.MoveTo(fromVec(pts[0]))
		case gpath.CmdLineTo:
			b.LineTo(fromVec(pts[0]))
		case gpath.CmdQuadTo:
			b.QuadraticBezierTo(fromVec(pts[0]), fromVec(pts[1]))
		case gpath.CmdCubeTo:
			b.CubicBezierTo(fromVec(pts[0]), fromVec(pts[1]), fromVec(pts[2]))
		case gpath.CmdClose:
			b.Close()
		}
	}
}

func fromVec(v vec.Vec2) Point {
	return Point{X: float32(v.X), Y: float32(v.Y)}
}
