// Package tess converts vector paths into triangle meshes for GPU rendering.
//
// # Overview
//
// tess turns path descriptions made of lines, quadratic and cubic Bezier
// curves into indexed triangle lists: filled regions under a winding rule,
// and stroked outlines with a line width, joins and caps. The output is a
// GeometryBuffer of float32 vertices and uint16 indices, ready for upload
// into a vertex and an index buffer.
//
// # Quick Start
//
//	import "github.com/gogpu/tess"
//
//	b := tess.NewBuilder()
//	b.MoveTo(tess.Pt(0, 0))
//	b.LineTo(tess.Pt(100, 0))
//	b.QuadraticBezierTo(tess.Pt(100, 100), tess.Pt(0, 100))
//	b.Close()
//
//	buf, err := tess.BuildFill(b)
//	if err != nil {
//	    return err
//	}
//	vertices, indices := buf.VertexBytes(), buf.IndexBytes()
//
// # Paths
//
// A Builder records MoveTo, LineTo, QuadraticBezierTo, CubicBezierTo,
// RelativeMoveTo and Close commands and Build turns them into an immutable
// Path. A Path is consumed by exactly one of TessellateFill or
// TessellateStroke; use Path.Clone to tessellate the same geometry twice.
// Reusing a built Builder or a consumed Path panics.
//
// # Output
//
// Every triangle in a GeometryBuffer is counter-clockwise, meaning positive
// signed area in path coordinates, and no two vertices are equal. A mesh
// needing more than 65536 vertices fails with ErrTooManyVertices. The
// buffers match VertexBufferLayout, IndexFormat and PrimitiveState.
//
// # Errors
//
// Non-finite coordinates and invalid options return ErrInvalidInput.
// Failures inside a tessellation pass return a *TessellationError naming
// the pass. A zero or negative stroke width is a programming error and
// panics.
//
// # Logging
//
// tess is silent by default. SetLogger installs a log/slog logger that
// receives per-call statistics at debug level and failures at warn level.
package tess
