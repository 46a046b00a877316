package geometry

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultResolution is the number of samples taken along each parameter of a
// cylinder surface.
const DefaultResolution = 50

// Rectangle returns an axis-aligned rectangle in the plane z, anchored at
// corner and listed counter-clockwise from it. w extends along x, h along y.
func Rectangle(corner r2.Vec, w, h, z float64) Shape {
	x, y := corner.X, corner.Y
	return Shape{
		{X: x, Y: y, Z: z},
		{X: x + w, Y: y, Z: z},
		{X: x + w, Y: y + h, Z: z},
		{X: x, Y: y + h, Z: z},
	}
}

// RectangleByCenter returns an axis-aligned rectangle centered on c.
func RectangleByCenter(c r2.Vec, w, h, z float64) Shape {
	return Rectangle(r2.Vec{X: c.X - 0.5*w, Y: c.Y - 0.5*h}, w, h, z)
}

// CircleByCenter is a placeholder for an elliptical outline. It currently
// returns the same quad as RectangleByCenter.
func CircleByCenter(c r2.Vec, w, h, z float64) Shape {
	return RectangleByCenter(c, w, h, z)
}

// CircularPoint returns a one point shape marking a location such as a probe
// feed.
func CircularPoint(x, y, z float64) Shape {
	return Shape{{X: x, Y: y, Z: z}}
}

// Cylinder samples the side surface of a cylinder of the given radius whose
// axis is parallel to z through center, between zStart and zStop. Angle and
// height are both sampled resolution times, endpoints included.
func Cylinder(radius, zStart, zStop float64, center r2.Vec, resolution int) Mesh {
	if resolution < 2 {
		resolution = DefaultResolution
	}
	zs := floats.Span(make([]float64, resolution), zStart, zStop)
	thetas := floats.Span(make([]float64, resolution), 0, 2*math.Pi)
	// Span accumulates steps; the end of the arm must land exactly on zStop.
	zs[resolution-1] = zStop
	thetas[resolution-1] = 2 * math.Pi

	m := make(Mesh, len(zs))
	for i, z := range zs {
		row := make([]r3.Vec, len(thetas))
		for j, theta := range thetas {
			row[j] = r3.Vec{
				X: center.X + radius*math.Cos(theta),
				Y: center.Y + radius*math.Sin(theta),
				Z: z,
			}
		}
		m[i] = row
	}
	return m
}

// ZRange returns the lowest and highest z sampled by m.
func (m Mesh) ZRange() (lo, hi float64) {
	if len(m) == 0 || len(m[0]) == 0 {
		return 0, 0
	}
	lo, hi = m[0][0].Z, m[0][0].Z
	for _, row := range m {
		for _, p := range row {
			lo = math.Min(lo, p.Z)
			hi = math.Max(hi, p.Z)
		}
	}
	return lo, hi
}

// Slab is a flat rectangular layer: two parallel faces joined by four edges.
type Slab struct {
	Upper Shape    // front face, closed
	Lower Shape    // back face, closed
	Edges [4]Shape // two point segments joining matching corners
}

// FlatRectangleLayer describes a rectangular slab of the given width (x) and
// length (z). The upper face lies in the plane y = centerFront.Y and the
// lower face depth further along y. The faces repeat their first corner at
// the end. Upper is the outline a CAD step extrudes into the solid layer.
func FlatRectangleLayer(width, length, depth float64, centerFront r3.Vec) Slab {
	cx, cy, cz := centerFront.X, centerFront.Y, centerFront.Z
	w := width

	u1 := r3.Vec{X: cx - w/2, Y: cy, Z: cz}
	u2 := r3.Vec{X: cx - w/2, Y: cy, Z: cz + length}
	u3 := r3.Vec{X: cx + w/2, Y: cy, Z: cz + length}
	u4 := r3.Vec{X: cx + w/2, Y: cy, Z: cz}

	l1 := r3.Vec{X: cx - w/2, Y: cy + depth, Z: cz}
	l2 := r3.Vec{X: cx - w/2, Y: cy + depth, Z: cz + length}
	l3 := r3.Vec{X: cx + w/2, Y: cy + depth, Z: cz + length}
	l4 := r3.Vec{X: cx + w/2, Y: cy + depth, Z: cz}

	return Slab{
		Upper: Shape{u1, u2, u3, u4, u1},
		Lower: Shape{l1, l2, l3, l4, l1},
		Edges: [4]Shape{{u1, l1}, {u2, l2}, {u3, l3}, {u4, l4}},
	}
}
