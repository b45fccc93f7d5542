package smooth

// Line represents a line segment.
type Line struct {
	/// The line's start point.
	P0 Point
	/// The line's end point.
	P1 Point
}

// LineProps describes the length and direction of a line segment.
type LineProps struct {
	// Length is the euclidean distance between the segment's end points.
	Length float64
	// Angle is the direction from the start to the end point, in radians,
	// in the range [-π, π].
	Angle float64
}

// LineProperties returns the length and angle of the line from a to b.
//
// Coinciding points produce a length and angle of 0.
func LineProperties(a, b Point) LineProps {
	return Line{a, b}.Props()
}

// Props returns the line's length and angle.
func (l Line) Props() LineProps {
	d := l.P1.Sub(l.P0)
	return LineProps{
		Length: d.Hypot(),
		Angle:  d.Angle(),
	}
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Angle returns the direction of the line, which is atan2(Δy, Δx).
func (l Line) Angle() float64 {
	return l.P1.Sub(l.P0).Angle()
}
