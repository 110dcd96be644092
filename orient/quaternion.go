package orient

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Quaternion is a scalar-first rotation quaternion (w, x, y, z) stored as
// Real, Imag, Jmag, Kmag.
type Quaternion quat.Number

var _ Orientation = Quaternion{}

func IdentityQuaternion() Quaternion { return Quaternion{Real: 1} }

// axisQuaternion is the half-angle quaternion for a rotation of angle a
// about the unit axis (x, y, z).
func axisQuaternion(a, x, y, z float64) Quaternion {
	s, c := math.Sincos(a / 2)
	return Quaternion{Real: c, Imag: s * x, Jmag: s * y, Kmag: s * z}
}

// QuaternionFromAngles composes the three elementary body rotations in the
// given order. The result is normalized.
func QuaternionFromAngles(a AngularState, order Order) Quaternion {
	qx := axisQuaternion(a.X, 1, 0, 0)
	qy := axisQuaternion(a.Y, 0, 1, 0)
	qz := axisQuaternion(a.Z, 0, 0, 1)
	if order == OrderZYX {
		return qx.Mul(qy).Mul(qz).Normalize()
	}
	return qz.Mul(qy).Mul(qx).Normalize()
}

func (q Quaternion) Number() quat.Number { return quat.Number(q) }

// Mul is the Hamilton product q·r.
func (q Quaternion) Mul(r Quaternion) Quaternion {
	return Quaternion(quat.Mul(quat.Number(q), quat.Number(r)))
}

func (q Quaternion) Conj() Quaternion { return Quaternion(quat.Conj(quat.Number(q))) }

func (q Quaternion) Norm() float64 { return quat.Abs(quat.Number(q)) }

// Normalize scales q to unit norm. The zero quaternion maps to identity.
func (q Quaternion) Normalize() Quaternion {
	n := q.Norm()
	if n == 0 {
		return IdentityQuaternion()
	}
	return Quaternion(quat.Scale(1/n, quat.Number(q)))
}

// Apply rotates p by the sandwich product q·p·q*. q must be unit-norm, so
// the conjugate stands in for the inverse.
func (q Quaternion) Apply(p Point3D) Point3D {
	n := quat.Number(q)
	r := quat.Mul(quat.Mul(n, quat.Number{Imag: p.X, Jmag: p.Y, Kmag: p.Z}), quat.Conj(n))
	return Point3D{X: r.Imag, Y: r.Jmag, Z: r.Kmag}
}

func (q Quaternion) AsQuaternion() Quaternion { return q }

func (q Quaternion) AsMatrix() Matrix3 {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	return Matrix3{M: [3][3]float64{
		{1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y)},
		{2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x)},
		{2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y)},
	}}
}

// NormError is |‖q‖ − 1|.
func (q Quaternion) NormError() float64 { return math.Abs(q.Norm() - 1) }
