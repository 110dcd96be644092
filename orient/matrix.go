package orient

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix3 is a row-major 3×3 matrix.
type Matrix3 struct {
	M [3][3]float64
}

var _ Orientation = Matrix3{}

func Identity3() Matrix3 {
	return Matrix3{M: [3][3]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

func rotX(a float64) Matrix3 {
	c, s := math.Cos(a), math.Sin(a)
	R := Identity3()
	R.M[1][1], R.M[1][2] = c, -s
	R.M[2][1], R.M[2][2] = s, c
	return R
}

func rotY(a float64) Matrix3 {
	c, s := math.Cos(a), math.Sin(a)
	R := Identity3()
	R.M[0][0], R.M[0][2] = c, s
	R.M[2][0], R.M[2][2] = -s, c
	return R
}

func rotZ(a float64) Matrix3 {
	c, s := math.Cos(a), math.Sin(a)
	R := Identity3()
	R.M[0][0], R.M[0][1] = c, -s
	R.M[1][0], R.M[1][1] = s, c
	return R
}

// MatrixFromAngles composes the three elementary body rotations in the given order.
func MatrixFromAngles(a AngularState, order Order) Matrix3 {
	rx, ry, rz := rotX(a.X), rotY(a.Y), rotZ(a.Z)
	if order == OrderZYX {
		return rx.Mul(ry).Mul(rz)
	}
	return rz.Mul(ry).Mul(rx)
}

func (A Matrix3) Mul(B Matrix3) Matrix3 {
	var R Matrix3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += A.M[r][k] * B.M[k][c]
			}
			R.M[r][c] = sum
		}
	}
	return R
}

func (A Matrix3) MulVec(p Point3D) Point3D {
	return Point3D{
		X: A.M[0][0]*p.X + A.M[0][1]*p.Y + A.M[0][2]*p.Z,
		Y: A.M[1][0]*p.X + A.M[1][1]*p.Y + A.M[1][2]*p.Z,
		Z: A.M[2][0]*p.X + A.M[2][1]*p.Y + A.M[2][2]*p.Z,
	}
}

func (A Matrix3) Transpose() Matrix3 {
	var R Matrix3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			R.M[r][c] = A.M[c][r]
		}
	}
	return R
}

// Apply rotates p as a linear map.
func (A Matrix3) Apply(p Point3D) Point3D { return A.MulVec(p) }

func (A Matrix3) AsMatrix() Matrix3 { return A }

// AsQuaternion converts a rotation matrix to a unit quaternion with w >= 0.
func (A Matrix3) AsQuaternion() Quaternion {
	m := A.M
	var q Quaternion
	switch tr := m[0][0] + m[1][1] + m[2][2]; {
	case tr > 0:
		s := math.Sqrt(tr+1) * 2
		q = Quaternion{Real: s / 4, Imag: (m[2][1] - m[1][2]) / s, Jmag: (m[0][2] - m[2][0]) / s, Kmag: (m[1][0] - m[0][1]) / s}
	case m[0][0] > m[1][1] && m[0][0] > m[2][2]:
		s := math.Sqrt(1+m[0][0]-m[1][1]-m[2][2]) * 2
		q = Quaternion{Real: (m[2][1] - m[1][2]) / s, Imag: s / 4, Jmag: (m[0][1] + m[1][0]) / s, Kmag: (m[0][2] + m[2][0]) / s}
	case m[1][1] > m[2][2]:
		s := math.Sqrt(1+m[1][1]-m[0][0]-m[2][2]) * 2
		q = Quaternion{Real: (m[0][2] - m[2][0]) / s, Imag: (m[0][1] + m[1][0]) / s, Jmag: s / 4, Kmag: (m[1][2] + m[2][1]) / s}
	default:
		s := math.Sqrt(1+m[2][2]-m[0][0]-m[1][1]) * 2
		q = Quaternion{Real: (m[1][0] - m[0][1]) / s, Imag: (m[0][2] + m[2][0]) / s, Jmag: (m[1][2] + m[2][1]) / s, Kmag: s / 4}
	}
	if q.Real < 0 {
		q = Quaternion{Real: -q.Real, Imag: -q.Imag, Jmag: -q.Jmag, Kmag: -q.Kmag}
	}
	return q.Normalize()
}

// OrthonormalityError is the largest absolute entry of AᵀA − I.
func (A Matrix3) OrthonormalityError() float64 {
	return A.Transpose().Mul(A).MaxAbsDiff(Identity3())
}

// Orthonormalize returns the rotation nearest to A in the Frobenius sense,
// U·Vᵀ from the SVD A = U·Σ·Vᵀ. A is returned unchanged if the
// factorization fails.
func (A Matrix3) Orthonormalize() Matrix3 {
	d := mat.NewDense(3, 3, []float64{
		A.M[0][0], A.M[0][1], A.M[0][2],
		A.M[1][0], A.M[1][1], A.M[1][2],
		A.M[2][0], A.M[2][1], A.M[2][2],
	})
	var svd mat.SVD
	if !svd.Factorize(d, mat.SVDFull) {
		return A
	}
	var u, v, r mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	r.Mul(&u, v.T())
	// Reflection: flip the last singular direction to stay in SO(3).
	if mat.Det(&r) < 0 {
		for i := 0; i < 3; i++ {
			u.Set(i, 2, -u.At(i, 2))
		}
		r.Mul(&u, v.T())
	}
	var R Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R.M[i][j] = r.At(i, j)
		}
	}
	return R
}

// MaxAbsDiff is the largest absolute entry-wise difference between A and B.
func (A Matrix3) MaxAbsDiff(B Matrix3) float64 {
	worst := 0.0
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			worst = math.Max(worst, math.Abs(A.M[r][c]-B.M[r][c]))
		}
	}
	return worst
}
