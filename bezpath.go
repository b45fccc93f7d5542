package smooth

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

type PathElementKind int

const (
	/// Move directly to the point without drawing anything, starting a new
	/// subpath.
	MoveToKind PathElementKind = iota + 1
	/// Draw a cubic bezier using the current location and the three points.
	CubicToKind
)

// / The element of a Bézier path.
// /
// / A valid path has `MoveTo` at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case CubicToKind:
		kind = "CubicTo"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

// Elements returns an iterator over the elements of the smoothed path
// through points: a [MoveTo] to the first point, followed by one [CubicTo]
// per remaining point. An empty slice yields no elements.
func Elements(points []Point) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if len(points) == 0 {
			return
		}
		if !yield(MoveTo(points[0])) {
			return
		}
		for _, seg := range Segments(points) {
			if !yield(seg.PathElement()) {
				return
			}
		}
	}
}

// Path returns the smoothed path through points. See [Elements] for its
// structure.
func Path(points []Point) BezPath {
	return slices.Collect(Elements(points))
}

// BezPath is a Bézier path made of [MoveTo] and [CubicTo] elements.
type BezPath []PathElement

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// SVG converts the path to an SVG path string.
func (p BezPath) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}
