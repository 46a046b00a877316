package geometry

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-9

func vecEqual(a, b r3.Vec) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tol) &&
		scalar.EqualWithinAbs(a.Y, b.Y, tol) &&
		scalar.EqualWithinAbs(a.Z, b.Z, tol)
}

func TestRectangleGenerators(t *testing.T) {
	c := r2.Vec{X: 1, Y: 2}
	slab := FlatRectangleLayer(4, 3, 1, r3.Vec{X: 1, Y: 2, Z: 0})
	tests := []struct {
		name  string
		shape Shape
	}{
		{"Rectangle", Rectangle(c, 4, 3, 1.6)},
		{"RectangleByCenter", RectangleByCenter(c, 4, 3, 1.6)},
		{"CircleByCenter", CircleByCenter(c, 4, 3, 1.6)},
		{"FlatRectangleLayer", slab.Upper[:4]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.shape) != 4 {
				t.Fatalf("len = %d, want 4", len(tt.shape))
			}
			xs, ys, zs := SplitAndClose(tt.shape)
			if len(xs) != 5 || len(ys) != 5 || len(zs) != 5 {
				t.Fatalf("SplitAndClose lengths = %d,%d,%d, want 5", len(xs), len(ys), len(zs))
			}
			if xs[4] != xs[0] || ys[4] != ys[0] || zs[4] != zs[0] {
				t.Errorf("closing point (%v,%v,%v) != first point (%v,%v,%v)",
					xs[4], ys[4], zs[4], xs[0], ys[0], zs[0])
			}
		})
	}
}

func TestRectangleCornerAnchored(t *testing.T) {
	got := Rectangle(r2.Vec{X: 2.5, Y: 5}, 5, 10, 1.6)
	want := Shape{
		{X: 2.5, Y: 5, Z: 1.6},
		{X: 7.5, Y: 5, Z: 1.6},
		{X: 7.5, Y: 15, Z: 1.6},
		{X: 2.5, Y: 15, Z: 1.6},
	}
	for i := range want {
		if !vecEqual(got[i], want[i]) {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRectangleByCenterIsCentered(t *testing.T) {
	for _, f := range []func(r2.Vec, float64, float64, float64) Shape{RectangleByCenter, CircleByCenter} {
		got := f(r2.Vec{X: 0, Y: 0}, 4, 2, 0)
		if !vecEqual(got[0], r3.Vec{X: -2, Y: -1}) || !vecEqual(got[2], r3.Vec{X: 2, Y: 1}) {
			t.Errorf("quad = %v, want corners (-2,-1) and (2,1)", got)
		}
	}
}

func TestCircularPoint(t *testing.T) {
	s := CircularPoint(3.5, 13, 1.6)
	if len(s) != 1 {
		t.Fatalf("len = %d, want 1", len(s))
	}
	xs, ys, zs := SplitAndClose(s)
	if len(xs) != 1 || len(ys) != 1 || len(zs) != 1 {
		t.Fatalf("SplitAndClose lengths = %d,%d,%d, want 1", len(xs), len(ys), len(zs))
	}
	if xs[0] != 3.5 || ys[0] != 13 || zs[0] != 1.6 {
		t.Errorf("SplitAndClose = (%v,%v,%v), want (3.5,13,1.6)", xs[0], ys[0], zs[0])
	}
}

func TestSplitAndCloseSegmentStaysOpen(t *testing.T) {
	xs, _, _ := SplitAndClose(Shape{{X: 0}, {X: 1}})
	if len(xs) != 2 {
		t.Errorf("len = %d, want 2", len(xs))
	}
	xs, _, _ = SplitAndClose(nil)
	if len(xs) != 0 {
		t.Errorf("len(nil) = %d, want 0", len(xs))
	}
}

func TestCylinder(t *testing.T) {
	center := r2.Vec{X: 1, Y: -2}
	m := Cylinder(0.5, -3, 7, center, DefaultResolution)

	if len(m) != DefaultResolution {
		t.Fatalf("rows = %d, want %d", len(m), DefaultResolution)
	}
	for i, row := range m {
		if len(row) != DefaultResolution {
			t.Fatalf("row %d has %d samples, want %d", i, len(row), DefaultResolution)
		}
		for j, p := range row {
			r := math.Hypot(p.X-center.X, p.Y-center.Y)
			if !scalar.EqualWithinAbs(r, 0.5, tol) {
				t.Fatalf("sample (%d,%d) at radius %v, want 0.5", i, j, r)
			}
			if p.Z != row[0].Z {
				t.Fatalf("row %d mixes heights %v and %v", i, row[0].Z, p.Z)
			}
		}
	}
	lo, hi := m.ZRange()
	if lo != -3 || hi != 7 {
		t.Errorf("ZRange() = [%v, %v], want [-3, 7]", lo, hi)
	}
	if !vecEqual(m[0][0], r3.Vec{X: 1.5, Y: -2, Z: -3}) {
		t.Errorf("first sample = %v, want (1.5,-2,-3)", m[0][0])
	}
	last := m[0][DefaultResolution-1]
	if !vecEqual(last, r3.Vec{X: 1.5, Y: -2, Z: -3}) {
		t.Errorf("last angle sample = %v, want the full turn back at (1.5,-2,-3)", last)
	}
}

func TestCylinderLowResolutionFallsBack(t *testing.T) {
	m := Cylinder(1, 0, 1, r2.Vec{}, 0)
	if len(m) != DefaultResolution {
		t.Errorf("rows = %d, want %d", len(m), DefaultResolution)
	}
}

func TestFlatRectangleLayer(t *testing.T) {
	s := FlatRectangleLayer(4, 10, 2, r3.Vec{X: 0, Y: 1, Z: 5})
	if len(s.Upper) != 5 || len(s.Lower) != 5 {
		t.Fatalf("faces have %d and %d points, want 5", len(s.Upper), len(s.Lower))
	}
	if s.Upper[0] != s.Upper[4] {
		t.Errorf("upper face not closed: %v", s.Upper)
	}
	for _, p := range s.Upper {
		if p.Y != 1 {
			t.Errorf("upper face point %v not at y=1", p)
		}
	}
	for _, p := range s.Lower {
		if p.Y != 3 {
			t.Errorf("lower face point %v not at y=3", p)
		}
	}
	for i, e := range s.Edges {
		if len(e) != 2 || e[0] != s.Upper[i] || e[1] != s.Lower[i] {
			t.Errorf("edge %d = %v, want %v -> %v", i, e, s.Upper[i], s.Lower[i])
		}
	}
	if !vecEqual(s.Upper[2], r3.Vec{X: 2, Y: 1, Z: 15}) {
		t.Errorf("upper[2] = %v, want (2,1,15)", s.Upper[2])
	}
}
