package smooth

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func toVec(pt Point) vec.Vec2 {
	return vec.Vec2{X: pt.X, Y: pt.Y}
}

// GeomPath returns the smoothed path through points as a
// [seehuhn.de/go/geom/path.Path], consisting of one [path.CmdMoveTo]
// followed by one [path.CmdCubeTo] per remaining point.
//
// The coordinate slice passed to yield is reused between calls.
func GeomPath(points []Point) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [3]vec.Vec2
		for el := range Elements(points) {
			switch el.Kind {
			case MoveToKind:
				buf[0] = toVec(el.P0)
				if !yield(path.CmdMoveTo, buf[:1]) {
					return
				}
			case CubicToKind:
				buf[0], buf[1], buf[2] = toVec(el.P0), toVec(el.P1), toVec(el.P2)
				if !yield(path.CmdCubeTo, buf[:3]) {
					return
				}
			}
		}
	}
}

// AppendGeom appends the smoothed path through points to d as a new
// subpath and returns d. A nil d allocates a new [path.Data].
func AppendGeom(d *path.Data, points []Point) *path.Data {
	if d == nil {
		d = &path.Data{}
	}
	for el := range Elements(points) {
		switch el.Kind {
		case MoveToKind:
			d.Cmds = append(d.Cmds, path.CmdMoveTo)
			d.Coords = append(d.Coords, toVec(el.P0))
		case CubicToKind:
			d.Cmds = append(d.Cmds, path.CmdCubeTo)
			d.Coords = append(d.Coords, toVec(el.P0), toVec(el.P1), toVec(el.P2))
		}
	}
	return d
}
