package orient

import "fmt"

// EulerAccumulator advances per-axis angles and composes them into a
// rotation matrix every tick.
type EulerAccumulator struct {
	speeds      AxisSpeeds
	angles      AngularState
	ticks       int
	reorthEvery int
}

// NewEulerAccumulator validates speeds. reorthEvery > 0 projects the
// combined matrix back onto SO(3) every reorthEvery ticks; 0 disables it.
func NewEulerAccumulator(speeds AxisSpeeds, reorthEvery int) (*EulerAccumulator, error) {
	if err := speeds.Validate(); err != nil {
		return nil, err
	}
	if reorthEvery < 0 {
		return nil, fmt.Errorf("re-orthonormalization interval must be >= 0, got %d", reorthEvery)
	}
	return &EulerAccumulator{speeds: speeds, reorthEvery: reorthEvery}, nil
}

// Advance increments the angles and returns Rz·Ry·Rx for the new angles.
func (e *EulerAccumulator) Advance() Orientation {
	return e.advance()
}

func (e *EulerAccumulator) advance() Matrix3 {
	e.angles = e.angles.add(e.speeds)
	e.ticks++
	m := MatrixFromAngles(e.angles, OrderXYZ)
	if e.reorthEvery > 0 && e.ticks%e.reorthEvery == 0 {
		m = m.Orthonormalize()
	}
	return m
}

func (e *EulerAccumulator) Angles() AngularState { return e.angles }
func (e *EulerAccumulator) Ticks() int           { return e.ticks }

func (e *EulerAccumulator) Representation() Representation { return Euler }

// QuaternionAccumulator advances per-axis angles and composes them into a
// unit quaternion every tick.
type QuaternionAccumulator struct {
	speeds AxisSpeeds
	angles AngularState
	ticks  int
}

func NewQuaternionAccumulator(speeds AxisSpeeds) (*QuaternionAccumulator, error) {
	if err := speeds.Validate(); err != nil {
		return nil, err
	}
	return &QuaternionAccumulator{speeds: speeds}, nil
}

// Advance increments the angles and returns qz·qy·qx renormalized.
func (a *QuaternionAccumulator) Advance() Orientation {
	return a.advance()
}

func (a *QuaternionAccumulator) advance() Quaternion {
	a.angles = a.angles.add(a.speeds)
	a.ticks++
	return QuaternionFromAngles(a.angles, OrderXYZ)
}

func (a *QuaternionAccumulator) Angles() AngularState { return a.angles }
func (a *QuaternionAccumulator) Ticks() int           { return a.ticks }

func (a *QuaternionAccumulator) Representation() Representation { return Quat }

// NewAccumulator builds the accumulator for the requested representation.
func NewAccumulator(rep Representation, speeds AxisSpeeds, reorthEvery int) (Accumulator, error) {
	switch rep {
	case Euler:
		e, err := NewEulerAccumulator(speeds, reorthEvery)
		if err != nil {
			return nil, err
		}
		return e, nil
	case Quat:
		q, err := NewQuaternionAccumulator(speeds)
		if err != nil {
			return nil, err
		}
		return q, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownRepresentation, rep)
}
