package smooth

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrNonFinite is wrapped by errors about coordinates that are NaN or
// infinite.
var ErrNonFinite = errors.New("coordinate is not finite")

// InvalidPointError reports a point that cannot be part of a path.
type InvalidPointError struct {
	// Index is the point's position in the input.
	Index int
	Point Point
}

func (e *InvalidPointError) Error() string {
	return fmt.Sprintf("invalid point %s at index %d: %s", e.Point, e.Index, ErrNonFinite)
}

func (e *InvalidPointError) Unwrap() error { return ErrNonFinite }

// Validate reports whether all points have finite coordinates.
//
// The functions computing control points and paths accept any input, and
// non-finite coordinates propagate into their output. Callers that want to
// reject such input up front can call Validate first. The returned error
// joins one [*InvalidPointError] per offending point.
func Validate(points []Point) error {
	var errs []error
	for i, pt := range points {
		if pt.IsFinite() {
			continue
		}
		Logger().Debug("rejecting non-finite point",
			slog.Int("index", i),
			slog.Float64("x", pt.X),
			slog.Float64("y", pt.Y))
		errs = append(errs, &InvalidPointError{Index: i, Point: pt})
	}
	return errors.Join(errs...)
}

// FromPairs converts coordinate pairs to points.
func FromPairs(pairs [][2]float64) []Point {
	out := make([]Point, len(pairs))
	for i, p := range pairs {
		out[i] = Pt(p[0], p[1])
	}
	return out
}

// PointsFromSlices converts coordinate slices to points. Every slice must
// hold exactly two values.
func PointsFromSlices(coords [][]float64) ([]Point, error) {
	out := make([]Point, len(coords))
	for i, c := range coords {
		if len(c) != 2 {
			return nil, fmt.Errorf("point %d: got %d coordinates, want 2", i, len(c))
		}
		out[i] = Pt(c[0], c[1])
	}
	return out, nil
}
