package smooth

import (
	"fmt"
	"iter"
	"math"
)

// SmoothingRatio is the fraction of the distance between a point's two
// neighbours by which its control points are offset from it.
const SmoothingRatio = 0.2

// ControlPoint returns a control point anchored at current.
//
// The control point lies on a line through current that is parallel to the
// opposed line, the line from previous to next. Its distance from current is
// [SmoothingRatio] times the length of the opposed line. With reverse set, it
// points in the opposite direction, which is what the end control point of
// an incoming segment needs.
//
// A nil previous or next stands in for a missing neighbour at either end of
// an open path and is replaced by current.
func ControlPoint(current Point, previous, next *Point, reverse bool) Point {
	p := current
	if previous != nil {
		p = *previous
	}
	n := current
	if next != nil {
		n = *next
	}
	o := LineProperties(p, n)
	angle := o.Angle
	if reverse {
		angle += math.Pi
	}
	return current.Translate(Polar(angle, o.Length*SmoothingRatio))
}

// ControlPointPair holds the two control points of the cubic Bézier segment
// that ends at a point.
type ControlPointPair struct {
	// Start is the outgoing control point of the previous point.
	Start Point
	// End is the incoming control point of the point itself.
	End Point
}

func (cp ControlPointPair) String() string {
	return fmt.Sprintf("[%s, %s]", cp.Start, cp.End)
}

// Tuples returns the pair as [[start.x, start.y], [end.x, end.y]].
func (cp ControlPointPair) Tuples() [2][2]float64 {
	return [2][2]float64{
		{cp.Start.X, cp.Start.Y},
		{cp.End.X, cp.End.Y},
	}
}

// Segment returns the cubic Bézier segment that leads from points[i-1] to
// points[i].
//
// The segment's first control point is anchored at points[i-1] and uses
// points[i-2] and points[i] as its neighbours. The second one is anchored at
// points[i], uses points[i-1] and points[i+1], and is reversed. Consecutive
// segments thus share the tangent direction at the point that joins them.
//
// Segment panics unless 1 ≤ i < len(points).
func Segment(points []Point, i int) CubicBez {
	if i < 1 || i >= len(points) {
		panic(fmt.Sprintf("segment index %d out of range [1, %d)", i, len(points)))
	}
	prev := points[i-1]
	pt := points[i]
	var prevprev, next *Point
	if i >= 2 {
		prevprev = &points[i-2]
	}
	if i+1 < len(points) {
		next = &points[i+1]
	}
	return CubicBez{
		P0: prev,
		P1: ControlPoint(prev, prevprev, &pt, false),
		P2: ControlPoint(pt, &prev, next, true),
		P3: pt,
	}
}

// Segments returns an iterator over the smoothed segments through points,
// keyed by the index of the point each segment ends at. The first point
// starts no segment of its own, so fewer than two points yield nothing.
func Segments(points []Point) iter.Seq2[int, CubicBez] {
	return func(yield func(int, CubicBez) bool) {
		for i := 1; i < len(points); i++ {
			if !yield(i, Segment(points, i)) {
				return
			}
		}
	}
}

// ControlPoints returns the control points of every segment of the smoothed
// path through points. The result has one entry per point after the first,
// and is empty, but not nil, for fewer than two points.
func ControlPoints(points []Point) []ControlPointPair {
	out := make([]ControlPointPair, 0, max(len(points)-1, 0))
	for _, seg := range Segments(points) {
		out = append(out, seg.Controls())
	}
	return out
}
