package orient

import (
	"math"
	"testing"
)

func TestMatrixFromAngles_IsOrthonormal(t *testing.T) {
	R := MatrixFromAngles(AngularState{X: math.Pi / 6, Y: math.Pi / 7, Z: math.Pi / 5}, OrderXYZ)
	if err := R.OrthonormalityError(); err > 1e-12 {
		t.Fatalf("R^T R != I: %.3g", err)
	}
	I := Identity3()
	if R.Mul(R.Transpose()).MaxAbsDiff(I) > 1e-12 {
		t.Fatal("R R^T != I")
	}
}

func TestAxisRotations(t *testing.T) {
	tests := []struct {
		R    Matrix3
		in   Point3D
		want Point3D
	}{
		{rotX(math.Pi / 2), Point3D{Y: 1}, Point3D{Z: 1}},
		{rotY(math.Pi / 2), Point3D{Z: 1}, Point3D{X: 1}},
		{rotZ(math.Pi / 2), Point3D{X: 1}, Point3D{Y: 1}},
	}
	for i, tt := range tests {
		if got := tt.R.MulVec(tt.in); !pointNear(got, tt.want, 1e-12) {
			t.Errorf("%d) %+v -> %+v, want %+v", i+1, tt.in, got, tt.want)
		}
	}
}

func TestOrthonormalizeRepairsDrift(t *testing.T) {
	R := MatrixFromAngles(AngularState{X: 0.4, Y: 1.3, Z: -0.8}, OrderXYZ)
	noisy := R
	noisy.M[0][1] += 1e-4
	noisy.M[2][0] -= 2e-4
	noisy.M[1][1] *= 1.0003
	if noisy.OrthonormalityError() < 1e-5 {
		t.Fatal("perturbation too small to test")
	}

	fixed := noisy.Orthonormalize()
	if err := fixed.OrthonormalityError(); err > 1e-12 {
		t.Fatalf("still not orthonormal: %.3g", err)
	}
	if d := fixed.MaxAbsDiff(R); d > 1e-3 {
		t.Fatalf("projection moved too far from original rotation: %.3g", d)
	}
	// A proper rotation keeps a right-handed frame.
	x := fixed.MulVec(Point3D{X: 1})
	y := fixed.MulVec(Point3D{Y: 1})
	z := fixed.MulVec(Point3D{Z: 1})
	cross := Point3D{X: x.Y*y.Z - x.Z*y.Y, Y: x.Z*y.X - x.X*y.Z, Z: x.X*y.Y - x.Y*y.X}
	if !pointNear(cross, z, 1e-9) {
		t.Fatalf("x × y = %+v, z = %+v", cross, z)
	}
}

func TestMatrixQuaternionConversion(t *testing.T) {
	// Angles chosen to hit every branch of the conversion.
	for _, a := range []AngularState{
		{},
		{X: 0.3, Y: 0.2, Z: 0.4},
		{X: math.Pi - 0.1},
		{Y: math.Pi - 0.1},
		{Z: math.Pi - 0.1},
		{X: 2.5, Y: -1.1, Z: 3.0},
	} {
		m := MatrixFromAngles(a, OrderXYZ)
		q := m.AsQuaternion()
		if q.NormError() > 1e-12 {
			t.Fatalf("%+v: |q| = %v", a, q.Norm())
		}
		if q.Real < 0 {
			t.Fatalf("%+v: w = %v < 0", a, q.Real)
		}
		if d := q.AsMatrix().MaxAbsDiff(m); d > 1e-12 {
			t.Fatalf("%+v: conversion error %.3g", a, d)
		}
	}
}
