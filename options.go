package tess

import (
	"fmt"
	"math"
)

// DefaultTolerance is the default maximum distance between a curve and its
// flattened polyline, in path units.
const DefaultTolerance = 0.01

// DefaultMiterLimit is the default ratio of miter length to line width above
// which a miter join falls back to a bevel.
const DefaultMiterLimit = 4.0

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// String returns the name of the fill rule.
func (fr FillRule) String() string {
	switch fr {
	case FillRuleNonZero:
		return "NonZero"
	case FillRuleEvenOdd:
		return "EvenOdd"
	default:
		return "Unknown"
	}
}

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

// String returns the name of the line cap.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "Butt"
	case LineCapRound:
		return "Round"
	case LineCapSquare:
		return "Square"
	default:
		return "Unknown"
	}
}

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

// String returns the name of the line join.
func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "Miter"
	case LineJoinRound:
		return "Round"
	case LineJoinBevel:
		return "Bevel"
	default:
		return "Unknown"
	}
}

// FillOptions configures fill tessellation.
type FillOptions struct {
	// Tolerance is the maximum flattening error in path units.
	Tolerance float32

	// Rule selects which regions are inside.
	Rule FillRule
}

// DefaultFillOptions returns tolerance 0.01 with the non-zero rule.
func DefaultFillOptions() FillOptions {
	return FillOptions{
		Tolerance: DefaultTolerance,
		Rule:      FillRuleNonZero,
	}
}

// WithTolerance returns a copy of the options with the given tolerance.
func (o FillOptions) WithTolerance(tolerance float32) FillOptions {
	o.Tolerance = tolerance
	return o
}

// WithRule returns a copy of the options with the given fill rule.
func (o FillOptions) WithRule(rule FillRule) FillOptions {
	o.Rule = rule
	return o
}

func (o FillOptions) validate() error {
	if err := checkTolerance(o.Tolerance); err != nil {
		return err
	}
	return checkRule(o.Rule)
}

// StrokeOptions configures stroke tessellation.
type StrokeOptions struct {
	// LineWidth is the full stroke width. It must be positive.
	LineWidth float32

	// Tolerance is the maximum flattening error in path units. It also
	// bounds the chord error of round joins and caps.
	Tolerance float32

	// MiterLimit is the miter length to line width ratio above which miter
	// joins become bevels. It must be at least 1.
	MiterLimit float32

	Join     LineJoin
	StartCap LineCap
	EndCap   LineCap
}

// DefaultStrokeOptions returns width 1, tolerance 0.01, miter joins with
// limit 4 and butt caps.
func DefaultStrokeOptions() StrokeOptions {
	return StrokeOptions{
		LineWidth:  1.0,
		Tolerance:  DefaultTolerance,
		MiterLimit: DefaultMiterLimit,
		Join:       LineJoinMiter,
		StartCap:   LineCapButt,
		EndCap:     LineCapButt,
	}
}

// WithLineWidth returns a copy of the options with the given line width.
func (o StrokeOptions) WithLineWidth(w float32) StrokeOptions {
	o.LineWidth = w
	return o
}

// WithTolerance returns a copy of the options with the given tolerance.
func (o StrokeOptions) WithTolerance(tolerance float32) StrokeOptions {
	o.Tolerance = tolerance
	return o
}

// WithJoin returns a copy of the options with the given line join.
func (o StrokeOptions) WithJoin(join LineJoin) StrokeOptions {
	o.Join = join
	return o
}

// WithCap returns a copy of the options with both caps set to lineCap.
func (o StrokeOptions) WithCap(lineCap LineCap) StrokeOptions {
	o.StartCap = lineCap
	o.EndCap = lineCap
	return o
}

// WithMiterLimit returns a copy of the options with the given miter limit.
// A value of 1.0 effectively disables miter joins.
func (o StrokeOptions) WithMiterLimit(limit float32) StrokeOptions {
	o.MiterLimit = limit
	return o
}

func (o StrokeOptions) validate() error {
	if err := checkTolerance(o.Tolerance); err != nil {
		return err
	}
	if !(o.MiterLimit >= 1) || math.IsInf(float64(o.MiterLimit), 0) {
		return fmt.Errorf("%w: miter limit %v must be a finite value >= 1", ErrInvalidInput, o.MiterLimit)
	}
	if o.Join < LineJoinMiter || o.Join > LineJoinBevel {
		return fmt.Errorf("%w: unknown line join %d", ErrInvalidInput, int(o.Join))
	}
	for _, c := range []LineCap{o.StartCap, o.EndCap} {
		if c < LineCapButt || c > LineCapSquare {
			return fmt.Errorf("%w: unknown line cap %d", ErrInvalidInput, int(c))
		}
	}
	return nil
}

func checkTolerance(tolerance float32) error {
	if !(tolerance > 0) || math.IsInf(float64(tolerance), 0) {
		return fmt.Errorf("%w: tolerance %v must be positive and finite", ErrInvalidInput, tolerance)
	}
	return nil
}

// FillOption configures BuildFill.
//
// Example:
//
//	buf, err := tess.BuildFill(b, tess.WithFillRule(tess.FillRuleEvenOdd))
type FillOption func(*FillOptions)

// WithFillTolerance sets the flattening tolerance for BuildFill.
func WithFillTolerance(tolerance float32) FillOption {
	return func(o *FillOptions) {
		o.Tolerance = tolerance
	}
}

// WithFillRule sets the fill rule for BuildFill.
func WithFillRule(rule FillRule) FillOption {
	return func(o *FillOptions) {
		o.Rule = rule
	}
}

// StrokeOption configures BuildStroke.
//
// Example:
//
//	buf, err := tess.BuildStroke(b, 2, tess.WithLineJoin(tess.LineJoinRound))
type StrokeOption func(*StrokeOptions)

// WithStrokeTolerance sets the flattening tolerance for BuildStroke.
func WithStrokeTolerance(tolerance float32) StrokeOption {
	return func(o *StrokeOptions) {
		o.Tolerance = tolerance
	}
}

// WithLineJoin sets the line join for BuildStroke.
func WithLineJoin(join LineJoin) StrokeOption {
	return func(o *StrokeOptions) {
		o.Join = join
	}
}

// WithLineCap sets both line caps for BuildStroke.
func WithLineCap(lineCap LineCap) StrokeOption {
	return func(o *StrokeOptions) {
		o.StartCap = lineCap
		o.EndCap = lineCap
	}
}

// WithMiterLimit sets the miter limit for BuildStroke.
func WithMiterLimit(limit float32) StrokeOption {
	return func(o *StrokeOptions) {
		o.MiterLimit = limit
	}
}
