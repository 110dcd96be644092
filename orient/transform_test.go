package orient

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestTransformPreservesOrderAndCount(t *testing.T) {
	g, err := NewGeometry("pts", KindCurve, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1}})
	if err != nil {
		t.Fatal(err)
	}
	o := QuaternionFromAngles(AngularState{X: 0.5, Y: 0.25, Z: -1}, OrderXYZ)
	f := Transform(o, g)
	if len(f) != g.Len() {
		t.Fatalf("%d points out, %d in", len(f), g.Len())
	}
	for i, p := range g.Points() {
		if want := o.Apply(p); f[i] != want {
			t.Fatalf("point %d: %+v, want %+v", i, f[i], want)
		}
	}
}

func TestTransformIsIsometry(t *testing.T) {
	g, err := NewGeometry("tri", KindCurve, [][]float64{{1, 0, 0}, {0, 2, 0}, {0, 0, 3}, {-1, 0.5, 2}})
	if err != nil {
		t.Fatal(err)
	}
	pts := g.Points()
	a := AngularState{X: 1.1, Y: -0.4, Z: 2.2}
	for _, o := range []Orientation{MatrixFromAngles(a, OrderXYZ), QuaternionFromAngles(a, OrderXYZ)} {
		f := Transform(o, g)
		for i := range pts {
			for j := i + 1; j < len(pts); j++ {
				before, after := pts[i].Dist(pts[j]), f[i].Dist(f[j])
				if !scalar.EqualWithinAbs(before, after, 1e-12) {
					t.Fatalf("%T: |p%d-p%d| %v -> %v", o, i, j, before, after)
				}
			}
		}
	}
}

func TestTransformIdentity(t *testing.T) {
	scene, err := DefaultScene(16, true, 1.5)
	if err != nil {
		t.Fatal(err)
	}
	for _, o := range []Orientation{Identity3(), IdentityQuaternion()} {
		for _, g := range scene {
			f := Transform(o, g)
			for i, p := range g.Points() {
				if !pointNear(f[i], p, 1e-15) {
					t.Fatalf("%T moved %s point %d", o, g.Name(), i)
				}
			}
		}
	}
}

func TestTransformAllMatchesSequential(t *testing.T) {
	scene, err := DefaultScene(64, true, 1.5)
	if err != nil {
		t.Fatal(err)
	}
	acc := mustQuat(t, DefaultSpeeds)
	for tick := 0; tick < 20; tick++ {
		o := acc.Advance()
		frames := TransformAll(o, scene)
		if len(frames) != len(scene) {
			t.Fatalf("%d frames for %d objects", len(frames), len(scene))
		}
		for i, g := range scene {
			want := Transform(o, g)
			for j := range want {
				if frames[i][j] != want[j] {
					t.Fatalf("tick %d object %s point %d differs", tick, g.Name(), j)
				}
			}
		}
	}
	if got := TransformAll(Identity3(), nil); len(got) != 0 {
		t.Fatalf("empty scene gave %d frames", len(got))
	}
}
