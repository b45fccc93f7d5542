// Package smooth computes smooth paths of cubic Béziers through ordered
// sequences of 2D points, and serializes them as SVG path data.
//
// # Control points
//
// The path visits every point in order. Each point after the first is
// reached by a cubic Bézier segment (see [Segment]) whose two control points
// are placed with a simple local heuristic: the tangent at a point is taken
// to be parallel to the line connecting its two neighbours, the "opposed
// line", and control points are offset from the point along that tangent by
// [SmoothingRatio] times the opposed line's length (see [ControlPoint]).
//
// The incoming segment's control point at a point and the outgoing segment's
// control point at the same point are offset in opposite directions, so the
// path has a continuous tangent at every interior point. At the two ends of
// the path the missing neighbour is replaced by the end point itself.
//
// There is no curve fitting, no simplification, and the heuristic has no
// tunable parameters.
//
// # Output
//
// The path can be consumed as
//   - structured control points ([ControlPoints], [Segments])
//   - path elements ([Elements], [Path])
//   - SVG path data ([SVGPath], [WriteSVG])
//   - a [seehuhn.de/go/geom/path.Path] ([GeomPath], [AppendGeom])
//   - a filled outline in a [golang.org/x/image/vector.Rasterizer] ([Rasterize], [Mask])
//
// SVG output formats coordinates exactly like ECMAScript's number to string
// conversion. Rounding can be enabled with [SVGOptions.Precision].
//
// # Input
//
// Points are plain values and slices of points are never modified. Any
// float64 coordinates are accepted; NaN and infinities propagate to the
// output. Use [Validate] to reject them up front.
//
// All functions are safe for concurrent use.
package smooth
