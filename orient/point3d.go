// =======================
// orient/point3d.go
// =======================

package orient

import "math"

// Point3D holds a 3D coordinate.
type Point3D struct{ X, Y, Z float64 }

// Rotate applies the elementary X, Y and Z rotations for the given angles
// one after another, without building a combined orientation.
func (p Point3D) Rotate(a AngularState) Point3D {
	cosX, sinX := math.Cos(a.X), math.Sin(a.X)
	cosY, sinY := math.Cos(a.Y), math.Sin(a.Y)
	cosZ, sinZ := math.Cos(a.Z), math.Sin(a.Z)

	// X-axis rotation
	y1 := p.Y*cosX - p.Z*sinX
	z1 := p.Y*sinX + p.Z*cosX
	p.Y, p.Z = y1, z1

	// Y-axis rotation
	x1 := p.X*cosY + p.Z*sinY
	z2 := -p.X*sinY + p.Z*cosY
	p.X, p.Z = x1, z2

	// Z-axis rotation
	x2 := p.X*cosZ - p.Y*sinZ
	y2 := p.X*sinZ + p.Y*cosZ
	p.X, p.Y = x2, y2

	return p
}

func (p Point3D) Sub(q Point3D) Point3D { return Point3D{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }

// Len returns the Euclidean length of p taken as a vector.
func (p Point3D) Len() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Dist returns the distance between p and q.
func (p Point3D) Dist(q Point3D) float64 { return p.Sub(q).Len() }
