// =======================
// orient/geometry.go
// =======================

package orient

import (
	"fmt"
	"math"
)

// Kind distinguishes reference curves from spin-axis segments.
type Kind int

const (
	KindCurve Kind = iota
	KindSegment
)

// Geometry is an immutable named sequence of rest-frame points.
type Geometry struct {
	name   string
	kind   Kind
	points []Point3D
}

// NewGeometry copies coords into a Geometry. Every coordinate must have
// exactly three components.
func NewGeometry(name string, kind Kind, coords [][]float64) (*Geometry, error) {
	pts := make([]Point3D, len(coords))
	for i, c := range coords {
		if len(c) != 3 {
			return nil, fmt.Errorf("%w: %s point %d has %d components", ErrDimension, name, i, len(c))
		}
		pts[i] = Point3D{X: c[0], Y: c[1], Z: c[2]}
	}
	return &Geometry{name: name, kind: kind, points: pts}, nil
}

func newGeometry(name string, kind Kind, pts []Point3D) *Geometry {
	return &Geometry{name: name, kind: kind, points: pts}
}

func (g *Geometry) Name() string { return g.name }
func (g *Geometry) Kind() Kind   { return g.kind }
func (g *Geometry) Len() int     { return len(g.points) }

// Points returns a copy of the rest-frame points.
func (g *Geometry) Points() []Point3D {
	out := make([]Point3D, len(g.points))
	copy(out, g.points)
	return out
}

// Plane names a coordinate plane a ring lies in.
type Plane int

const (
	PlaneXY Plane = iota
	PlaneYZ
	PlaneXZ
)

func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "xy"
	case PlaneYZ:
		return "yz"
	case PlaneXZ:
		return "xz"
	}
	return fmt.Sprintf("Plane(%d)", int(p))
}

// Axis names a body axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Ring samples the unit circle in plane at n angles evenly spaced over
// [0, 2π], both ends included, so the last point closes the curve.
func Ring(plane Plane, n int) (*Geometry, error) {
	if n < 2 {
		return nil, fmt.Errorf("ring needs at least 2 points, got %d", n)
	}
	pts := make([]Point3D, n)
	for i := range pts {
		s, c := math.Sincos(2 * math.Pi * float64(i) / float64(n-1))
		switch plane {
		case PlaneXY:
			pts[i] = Point3D{X: c, Y: s}
		case PlaneYZ:
			pts[i] = Point3D{Y: c, Z: s}
		case PlaneXZ:
			pts[i] = Point3D{X: c, Z: s}
		default:
			return nil, fmt.Errorf("unknown plane %v", plane)
		}
	}
	return newGeometry("ring-"+plane.String(), KindCurve, pts), nil
}

// AxisSegment is the segment from -halfLength to +halfLength along axis.
func AxisSegment(axis Axis, halfLength float64) (*Geometry, error) {
	if !(halfLength > 0) || math.IsInf(halfLength, 0) {
		return nil, fmt.Errorf("axis half-length must be positive and finite, got %v", halfLength)
	}
	var end Point3D
	switch axis {
	case AxisX:
		end = Point3D{X: halfLength}
	case AxisY:
		end = Point3D{Y: halfLength}
	case AxisZ:
		end = Point3D{Z: halfLength}
	default:
		return nil, fmt.Errorf("unknown axis %v", axis)
	}
	start := Point3D{X: -end.X, Y: -end.Y, Z: -end.Z}
	return newGeometry("axis-"+axis.String(), KindSegment, []Point3D{start, end}), nil
}

// DefaultScene builds rings in the XY, YZ and XZ planes and, if withAxes is
// set, each ring's spin axis (Z, X, Y) in the same order.
func DefaultScene(ringPoints int, withAxes bool, halfLength float64) ([]*Geometry, error) {
	var scene []*Geometry
	for _, p := range []Plane{PlaneXY, PlaneYZ, PlaneXZ} {
		g, err := Ring(p, ringPoints)
		if err != nil {
			return nil, fmt.Errorf("building %v ring: %w", p, err)
		}
		scene = append(scene, g)
	}
	if !withAxes {
		return scene, nil
	}
	for _, a := range []Axis{AxisZ, AxisX, AxisY} {
		g, err := AxisSegment(a, halfLength)
		if err != nil {
			return nil, fmt.Errorf("building %v axis: %w", a, err)
		}
		scene = append(scene, g)
	}
	return scene, nil
}
