package smooth

import (
	"context"
	"image"
	"image/color"
	"log/slog"
	"math"

	"golang.org/x/image/vector"
)

// Rasterize adds the smoothed path through points to r as a closed outline.
// The path is closed with a straight edge from the last point back to the
// first. Fewer than two points add nothing.
func Rasterize(r *vector.Rasterizer, points []Point) {
	if len(points) < 2 {
		return
	}
	for el := range Elements(points) {
		switch el.Kind {
		case MoveToKind:
			r.MoveTo(float32(el.P0.X), float32(el.P0.Y))
		case CubicToKind:
			r.CubeTo(
				float32(el.P0.X), float32(el.P0.Y),
				float32(el.P1.X), float32(el.P1.Y),
				float32(el.P2.X), float32(el.P2.Y))
		}
	}
	r.ClosePath()
}

// Mask fills the smoothed outline through points into a new w×h alpha mask.
func Mask(points []Point, w, h int) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	r := vector.NewRasterizer(w, h)
	Rasterize(r, points)
	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("rasterizing smoothed path",
			slog.Int("points", len(points)),
			slog.Int("width", w),
			slog.Int("height", h),
			slog.String("bounds", controlBounds(points).String()))
	}
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{A: 0xff}), image.Point{})
	return dst
}

// controlBounds returns the pixel rectangle covering the control polygon of
// the smoothed path, which contains the whole curve.
func controlBounds(points []Point) image.Rectangle {
	var b image.Rectangle
	add := func(pt Point) {
		// Coordinates outside the int32 range, NaN included, have no pixel.
		if !(math.Abs(pt.X) < math.MaxInt32 && math.Abs(pt.Y) < math.MaxInt32) {
			return
		}
		x, y := int(math.Floor(pt.X)), int(math.Floor(pt.Y))
		b = b.Union(image.Rect(x, y, x+1, y+1))
	}
	for _, pt := range points {
		add(pt)
	}
	for _, cp := range ControlPoints(points) {
		add(cp.Start)
		add(cp.End)
	}
	return b
}
