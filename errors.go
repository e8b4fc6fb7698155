package tess

import (
	"errors"

	"github.com/gogpu/tess/internal/mesh"
	ipath "github.com/gogpu/tess/internal/path"
)

// Sentinel errors returned by the tessellators.
var (
	// ErrInvalidInput is returned for non-finite coordinates and invalid
	// tolerances. It is detected before any flattening.
	ErrInvalidInput = errors.New("tess: invalid input")

	// ErrTessellation is wrapped by every *TessellationError.
	ErrTessellation = errors.New("tess: tessellation failed")

	// ErrTooManyVertices is returned when a mesh needs more vertices than
	// 16-bit indices can address.
	ErrTooManyVertices = mesh.ErrTooManyVertices

	// ErrTooManySegments is returned when a curve cannot be flattened to
	// within the tolerance in 16384 segments.
	ErrTooManySegments = ipath.ErrTooManySegments
)

// TessellationError reports a failure inside one tessellation pass.
//
// Pass names the failing pass: "fill/flatten", "fill/sweep", "fill/mesh",
// "stroke/flatten" or "stroke/mesh". The error matches both
// ErrTessellation and Err with errors.Is.
type TessellationError struct {
	Pass string
	Err  error
}

func (e *TessellationError) Error() string {
	return "tess: " + e.Pass + ": " + e.Err.Error()
}

// Unwrap returns ErrTessellation and the underlying error.
func (e *TessellationError) Unwrap() []error {
	return []error{ErrTessellation, e.Err}
}
