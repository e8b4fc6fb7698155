// Package stroke tessellates stroked polylines into triangles.
//
// Each segment of a polyline is offset by half the stroke width on both
// sides and emitted as a quad of two triangles. Consecutive quads meet in a
// join; open polylines get caps at both ends.
//
// # Line Caps
//
//   - LineCapButt: Flat cap ending exactly at the endpoint
//   - LineCapRound: Semicircular cap with radius = width/2
//   - LineCapSquare: Square cap extending width/2 beyond the endpoint
//
// # Line Joins
//
//   - LineJoinMiter: Sharp corner, beveled when the miter ratio exceeds the limit
//   - LineJoinRound: Circular arc at corners
//   - LineJoinBevel: Straight line across the corner
//
// When the inner offset lines of a join intersect within both adjacent
// segments, the two quads share the intersection point and the join wedge is
// fanned from it. Otherwise the quads end square at the join point and the
// wedge is fanned from the join point itself, so the quads overlap on the
// inner side instead of folding over.
//
// Round geometry is subdivided so the chord error stays below the
// tolerance, using the segment count of nanovg's curveDivs.
//
// # Usage
//
//	style := stroke.Stroke{
//	    Width:      2.0,
//	    StartCap:   stroke.LineCapRound,
//	    EndCap:     stroke.LineCapRound,
//	    Join:       stroke.LineJoinMiter,
//	    MiterLimit: 4.0,
//	}
//
//	s := stroke.NewStroker(style)
//	s.SetTolerance(0.01)
//	out := mesh.NewBuilder()
//	s.Tessellate(polylines, out)
package stroke
