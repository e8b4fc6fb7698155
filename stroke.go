package tess

import (
	"fmt"
	"math"

	"github.com/gogpu/tess/internal/mesh"
	ipath "github.com/gogpu/tess/internal/path"
	"github.com/gogpu/tess/internal/stroke"
)

// TessellateStroke triangulates the outline of p stroked with opts.
//
// Both sides of every subpath are offset by LineWidth/2. Joins and the caps
// of open subpaths follow opts; round geometry is subdivided so its chord
// error stays within opts.Tolerance. A zero-length subpath renders a dot
// shaped by StartCap: a disc for round caps, an axis-aligned square for
// square caps and nothing for butt caps. The path is consumed even when an
// error is returned.
//
// As with TessellateFill, a curve needing more than 16384 segments at
// opts.Tolerance fails pass "stroke/flatten".
//
// TessellateStroke panics if opts.LineWidth is not positive.
func TessellateStroke(p *Path, opts StrokeOptions) (GeometryBuffer, error) {
	if !(opts.LineWidth > 0) {
		panic(fmt.Sprintf("tess: TessellateStroke with line width %v", opts.LineWidth))
	}
	p.consume("TessellateStroke")
	if math.IsInf(float64(opts.LineWidth), 0) {
		return GeometryBuffer{}, fmt.Errorf("%w: infinite line width", ErrInvalidInput)
	}
	if err := opts.validate(); err != nil {
		return GeometryBuffer{}, err
	}
	if err := p.validate(); err != nil {
		return GeometryBuffer{}, err
	}

	lines, err := ipath.Flatten(p.internal(), float64(opts.Tolerance))
	if err != nil {
		return GeometryBuffer{}, failed("stroke/flatten", err)
	}

	out := mesh.NewBuilder()
	s := stroke.NewStroker(opts.internal())
	s.SetTolerance(float64(opts.Tolerance))
	s.Tessellate(lines, out)
	if err := out.Err(); err != nil {
		return GeometryBuffer{}, failed("stroke/mesh", err)
	}

	buf := geometryFrom(out)
	Logger().Debug("tess: stroke",
		"width", opts.LineWidth,
		"join", opts.Join,
		"subpaths", len(lines),
		"vertices", len(buf.Vertices),
		"triangles", buf.TriangleCount())
	return buf, nil
}

// internal converts the options to the stroker's style. The enum values of
// LineCap and LineJoin match internal/stroke.
func (o StrokeOptions) internal() stroke.Stroke {
	return stroke.Stroke{
		Width:      float64(o.LineWidth),
		StartCap:   stroke.LineCap(o.StartCap),
		EndCap:     stroke.LineCap(o.EndCap),
		Join:       stroke.LineJoin(o.Join),
		MiterLimit: float64(o.MiterLimit),
	}
}
