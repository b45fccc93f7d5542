package smooth

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVGPath], [SVG] and
// [WriteSVG]. The zero value writes coordinates without rounding.
type SVGOptions struct {
	// The number of decimal places to round coordinates to before formatting
	// them. Each coordinate becomes the nearest value with that many
	// decimals, judged by its exact binary value, with exact ties going to
	// the even digit. A value of 0 disables rounding, and coordinates are
	// formatted with the shortest representation that round-trips.
	Precision int
}

// SVGPath returns the SVG path data of the smoothed path through points, in
// the form
//
//	M x,y C x1,y1 x2,y2 x,y C ...
//
// with one curveto command per point after the first. An empty slice
// produces an empty string and a single point produces only the moveto.
func SVGPath(points []Point, opts SVGOptions) string {
	return SVG(Elements(points), opts)
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	// Writing to a strings.Builder cannot fail.
	_ = WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
//
// Commands use absolute coordinates and are separated by single spaces.
// Coordinates are formatted the way ECMAScript converts numbers to strings,
// so that -0 is written as 0 and very large or small magnitudes use
// exponent notation such as 1e+21 or 1.5e-7.
//
// See [SVG] for a version that returns a string instead.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	space := []byte(" ")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		if opts.Precision > 0 {
			n = roundTo(n, opts.Precision)
		}
		return formatNumber(n)
	}
	first := true
	for el := range seq {
		if err != nil {
			break
		}
		if !first {
			write(space)
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M %s,%s", format(el.P0.X), format(el.P0.Y))
		case CubicToKind:
			writef("C %s,%s %s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y),
				format(el.P2.X), format(el.P2.Y))
		default:
			panic("unreachable")
		}
	}
	if err != nil {
		Logger().Debug("writing SVG path data failed", slog.Any("error", err))
	}
	return err
}

// roundTo rounds v to the given number of decimal places. The decimal
// conversion in strconv is exact, so the result is the nearest such value
// to v itself and not to a scaled copy of it.
func roundTo(v float64, decimals int) float64 {
	// ParseFloat accepts everything FormatFloat writes, NaN and ±Inf included.
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', max(decimals, 0), 64), 64)
	return r
}

// formatNumber formats n like ECMAScript's Number::toString.
func formatNumber(n float64) string {
	switch {
	case n == 0:
		// Also covers -0.
		return "0"
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	}
	if abs := math.Abs(n); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	// strconv pads the exponent to two digits, as in 1.5e-07.
	mant, exp, _ := strings.Cut(strconv.FormatFloat(n, 'e', -1, 64), "e")
	return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}
