package tess

import (
	"image"

	"golang.org/x/image/vector"
)

// Rasterize draws the triangles of buf into dst with full opacity, using
// anti-aliased coverage. Path coordinates map directly to dst pixel
// coordinates. Overlapping triangles do not accumulate beyond full coverage.
//
// Rasterize is a CPU preview of what a GPU draw of buf would cover.
func Rasterize(buf GeometryBuffer, dst *image.Alpha) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	r := dst.Bounds()
	if r.Empty() || buf.IsEmpty() {
		return nil
	}

	z := vector.NewRasterizer(r.Dx(), r.Dy())
	ox, oy := float32(r.Min.X), float32(r.Min.Y)
	for i := range buf.TriangleCount() {
		t := buf.Triangle(i)
		z.MoveTo(t[0].X-ox, t[0].Y-oy)
		z.LineTo(t[1].X-ox, t[1].Y-oy)
		z.LineTo(t[2].X-ox, t[2].Y-oy)
		z.ClosePath()
	}
	z.Draw(dst, r, image.Opaque, image.Point{})
	return nil
}
