package tess

// BuildFill builds the path in b and fills it. Without options it uses
// tolerance 0.01 and the non-zero rule.
//
// Example:
//
//	b := tess.NewBuilder()
//	b.Circle(50, 50, 40)
//	buf, err := tess.BuildFill(b)
func BuildFill(b *Builder, opts ...FillOption) (GeometryBuffer, error) {
	o := DefaultFillOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return TessellateFill(b.Build(), o)
}

// BuildStroke builds the path in b and strokes it with the given line width.
// Without options it uses tolerance 0.01, miter joins with limit 4 and butt
// caps.
//
// BuildStroke panics if lineWidth is not positive.
func BuildStroke(b *Builder, lineWidth float32, opts ...StrokeOption) (GeometryBuffer, error) {
	o := DefaultStrokeOptions()
	o.LineWidth = lineWidth
	for _, opt := range opts {
		opt(&o)
	}
	return TessellateStroke(b.Build(), o)
}
