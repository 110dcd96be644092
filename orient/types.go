// =======================
// orient/types.go
// =======================

package orient

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const (
	// Tolerances used by health checks and the drift report.
	NormTolerance  = 1e-9
	OrthoTolerance = 1e-9

	DefaultRingPoints     = 100
	DefaultAxisHalfLength = 1.5
)

var (
	ErrMalformedSpeeds       = errors.New("malformed axis speeds")
	ErrDimension             = errors.New("point dimensionality mismatch")
	ErrUnknownRepresentation = errors.New("unknown representation")
)

// DefaultSpeeds are radians per tick for the X, Y and Z body axes.
var DefaultSpeeds = AxisSpeeds{X: 0.03, Y: 0.02, Z: 0.04}

// AngularState holds the accumulated angle about each body axis.
type AngularState struct{ X, Y, Z float64 }

// AxisSpeeds holds the per-tick angle increment for each body axis.
type AxisSpeeds struct{ X, Y, Z float64 }

// ParseSpeeds builds AxisSpeeds from a configuration list of exactly three values.
func ParseSpeeds(v []float64) (AxisSpeeds, error) {
	if len(v) != 3 {
		return AxisSpeeds{}, fmt.Errorf("%w: need 3 values, got %d", ErrMalformedSpeeds, len(v))
	}
	s := AxisSpeeds{X: v[0], Y: v[1], Z: v[2]}
	if err := s.Validate(); err != nil {
		return AxisSpeeds{}, err
	}
	return s, nil
}

// Validate rejects NaN and infinite speeds.
func (s AxisSpeeds) Validate() error {
	for i, v := range [3]float64{s.X, s.Y, s.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: axis %c is %v", ErrMalformedSpeeds, "XYZ"[i], v)
		}
	}
	return nil
}

func (a AngularState) add(s AxisSpeeds) AngularState {
	return AngularState{X: a.X + s.X, Y: a.Y + s.Y, Z: a.Z + s.Z}
}

// Representation selects how the combined orientation is encoded.
type Representation int

const (
	Euler Representation = iota
	Quat
)

func (r Representation) String() string {
	switch r {
	case Euler:
		return "euler"
	case Quat:
		return "quaternion"
	}
	return fmt.Sprintf("Representation(%d)", int(r))
}

// ParseRepresentation accepts "euler"/"matrix" and "quaternion"/"quat".
func ParseRepresentation(s string) (Representation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "euler", "matrix":
		return Euler, nil
	case "quaternion", "quat":
		return Quat, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRepresentation, s)
}

// Order is the sequence in which the elementary body rotations are applied.
type Order int

const (
	// OrderXYZ applies X first, then Y, then Z (Combined = Rz·Ry·Rx).
	OrderXYZ Order = iota
	// OrderZYX applies Z first, then Y, then X (Combined = Rx·Ry·Rz).
	OrderZYX
)

// Orientation is a combined rotation that can be applied to points.
type Orientation interface {
	Apply(p Point3D) Point3D
	AsMatrix() Matrix3
	AsQuaternion() Quaternion
}

// Accumulator owns the angular state of one animation and turns it into
// an orientation once per tick.
type Accumulator interface {
	Advance() Orientation
	Angles() AngularState
	Ticks() int
	Representation() Representation
}
