package tess

import (
	"fmt"

	"github.com/gogpu/tess/internal/fill"
	"github.com/gogpu/tess/internal/mesh"
	ipath "github.com/gogpu/tess/internal/path"
)

// TessellateFill triangulates the interior of p under opts.Rule.
//
// Every subpath is implicitly closed and curves are flattened to within
// opts.Tolerance. Self-intersections and overlapping subpaths are resolved
// by the fill rule. The path is consumed even when an error is returned.
//
// Errors: ErrInvalidInput for non-finite coordinates or invalid options, a
// *TessellationError for failures inside a pass. A curve that would need
// more than 16384 segments to meet the tolerance fails pass "fill/flatten"
// instead of being approximated more coarsely. No partial buffer is
// returned with an error.
func TessellateFill(p *Path, opts FillOptions) (GeometryBuffer, error) {
	p.consume("TessellateFill")
	if err := opts.validate(); err != nil {
		return GeometryBuffer{}, err
	}
	if err := p.validate(); err != nil {
		return GeometryBuffer{}, err
	}

	lines, err := ipath.Flatten(p.internal(), float64(opts.Tolerance))
	if err != nil {
		return GeometryBuffer{}, failed("fill/flatten", err)
	}

	out := mesh.NewBuilder()
	t := fill.NewTessellator(opts.Rule.internal())
	if err := t.Tessellate(lines, out); err != nil {
		return GeometryBuffer{}, failed("fill/sweep", err)
	}
	if err := out.Err(); err != nil {
		return GeometryBuffer{}, failed("fill/mesh", err)
	}

	buf := geometryFrom(out)
	Logger().Debug("tess: fill",
		"rule", opts.Rule,
		"subpaths", len(lines),
		"vertices", len(buf.Vertices),
		"triangles", buf.TriangleCount())
	return buf, nil
}

func (fr FillRule) internal() fill.Rule {
	if fr == FillRuleEvenOdd {
		return fill.EvenOdd
	}
	return fill.NonZero
}

// failed wraps err for the given pass and logs it.
func failed(pass string, err error) error {
	Logger().Warn("tess: tessellation failed", "pass", pass, "err", err)
	return &TessellationError{Pass: pass, Err: err}
}

// geometryFrom copies a finished mesh into a GeometryBuffer.
func geometryFrom(m *mesh.Builder) GeometryBuffer {
	vs := m.Vertices()
	buf := GeometryBuffer{
		Vertices: make([]Point, len(vs)),
		Indices:  m.Indices(),
	}
	for i, v := range vs {
		buf.Vertices[i] = PointFromVec2(v)
	}
	return buf
}

func checkRule(rule FillRule) error {
	if rule != FillRuleNonZero && rule != FillRuleEvenOdd {
		return fmt.Errorf("%w: unknown fill rule %d", ErrInvalidInput, int(rule))
	}
	return nil
}
