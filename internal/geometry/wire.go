package geometry

import "gonum.org/v1/gonum/spatial/r2"

// dipoleLayers returns the two arms of a dipole, symmetric about a feed gap
// centered on the origin.
func dipoleLayers(p DipoleParams, resolution int) Layers {
	hl, fg := p.HalfLength, p.FeedGap
	axis := r2.Vec{}
	return Layers{
		Solids: []Mesh{
			Cylinder(p.Radius, fg/2, hl+fg/2, axis, resolution),
			Cylinder(p.Radius, -hl-fg/2, -fg/2, axis, resolution),
		},
	}
}

// monopoleLayers returns a single arm standing on the ground plane at z = 0.
func monopoleLayers(p MonopoleParams, resolution int) Layers {
	return Layers{
		Solids: []Mesh{Cylinder(p.Radius, 0, p.Length, r2.Vec{}, resolution)},
	}
}
