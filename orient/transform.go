package orient

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Frame is one geometry's points after rotation, in input order.
type Frame []Point3D

// Transform applies o to every point of g.
func Transform(o Orientation, g *Geometry) Frame {
	out := make(Frame, len(g.points))
	for i, p := range g.points {
		out[i] = o.Apply(p)
	}
	return out
}

// TransformAll transforms each geometry with the same orientation. Objects
// are independent, so they are processed concurrently; frames[i] belongs
// to gs[i].
func TransformAll(o Orientation, gs []*Geometry) []Frame {
	frames := make([]Frame, len(gs))
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, g := range gs {
		i, g := i, g
		eg.Go(func() error {
			frames[i] = Transform(o, g)
			return nil
		})
	}
	_ = eg.Wait()
	return frames
}
