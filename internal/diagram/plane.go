package diagram

import (
	"math"

	"github.com/alexiusacademia/antgeom/internal/geometry"
	"gonum.org/v1/gonum/spatial/r3"
)

// Plane selects the two axes a diagram projects onto.
type Plane int

const (
	PlaneXY Plane = iota // top view
	PlaneXZ              // side view
)

// PlaneFor returns the plane that shows a topology best: patches from the
// top, wire antennas from the side.
func PlaneFor(t geometry.Topology) Plane {
	if t == geometry.RectangularPatch {
		return PlaneXY
	}
	return PlaneXZ
}

func (pl Plane) project(p r3.Vec) (h, v float64) {
	if pl == PlaneXZ {
		return p.X, p.Z
	}
	return p.X, p.Y
}

func (pl Plane) ranges(vv geometry.ViewVolume) (h, v [2]float64) {
	if pl == PlaneXZ {
		return vv.X, vv.Z
	}
	return vv.X, vv.Y
}

func (pl Plane) labels() (h, v string) {
	if pl == PlaneXZ {
		return "x", "z"
	}
	return "x", "y"
}

// silhouette returns the outline of a mesh seen in the plane: the bounding
// rectangle of its samples.
func silhouette(m geometry.Mesh, pl Plane) geometry.Shape {
	minH, minV := math.Inf(1), math.Inf(1)
	maxH, maxV := math.Inf(-1), math.Inf(-1)
	for _, row := range m {
		for _, p := range row {
			h, v := pl.project(p)
			minH, maxH = math.Min(minH, h), math.Max(maxH, h)
			minV, maxV = math.Min(minV, v), math.Max(maxV, v)
		}
	}
	if math.IsInf(minH, 1) {
		return nil
	}
	corner := func(h, v float64) r3.Vec {
		if pl == PlaneXZ {
			return r3.Vec{X: h, Z: v}
		}
		return r3.Vec{X: h, Y: v}
	}
	return geometry.Shape{
		corner(minH, minV),
		corner(maxH, minV),
		corner(maxH, maxV),
		corner(minH, maxV),
	}
}
