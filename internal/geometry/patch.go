package geometry

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// PatchConductorPoints is the vertex count of the notched patch outline,
// closing point included.
const PatchConductorPoints = 13

// CutWidth returns the width of each of the two patch segments flanking the
// microstrip feed slot, so that stripWidth + 2*gap + 2*CutWidth == width.
func CutWidth(width, stripWidth, gap float64) float64 {
	return (width - stripWidth - gap*2) / 2
}

// PatchConductor returns the closed outline of a rectangular patch of length
// L (y) and width W (x) at height h, with a microstrip feed line of width ws
// inset x0 into the top edge through a slot leaving gap g on each side.
//
// The outline starts at the lower left corner of the patch body, runs along
// the bottom edge and up the right side to the top edge, dips x0 into the
// slot, follows the feed line out to 1.5L and back, and closes on the start
// point. The last point repeats the first.
func PatchConductor(L, W, h, x0, ws, g float64) Shape {
	const substrateOrigin = 0.0
	originW := -(substrateOrigin - W*0.5)
	originL := -(substrateOrigin - L*0.5)
	c := CutWidth(W, ws, g)

	return Shape{
		{X: originW, Y: originL, Z: h},
		{X: originW + W, Y: originL, Z: h},
		{X: originW + W, Y: originL + L, Z: h},
		{X: originW + c + ws + g*2, Y: originL + L, Z: h},
		{X: originW + c + ws + g*2, Y: originL + L - x0, Z: h},
		{X: originW + c + ws + g, Y: originL + L - x0, Z: h},
		{X: originW + c + ws + g, Y: originL + L*1.5, Z: h},
		{X: originW + c + g, Y: originL + L*1.5, Z: h},
		{X: originW + c + g, Y: originL + L - x0, Z: h},
		{X: originW + c, Y: originL + L - x0, Z: h},
		{X: originW + c, Y: originL + L, Z: h},
		{X: originW, Y: originL + L, Z: h},
		{X: originW, Y: originL, Z: h},
	}
}

// ProbeFeed returns the location of the probe pin of a probe fed patch.
func ProbeFeed(p PatchParams) Shape {
	return CircularPoint(p.Width/2+p.Y0, 1.5*p.Length-p.X0, p.Height)
}

// patchLayers builds the layer shapes of a rectangular patch. The ground
// plane is always emitted; an unknown feed stops before any conductor
// geometry is added.
func patchLayers(p PatchParams) (Layers, error) {
	var l Layers
	L, W, h := p.Length, p.Width, p.Height
	origin := r2.Vec{}

	l.Substrate = append(l.Substrate, Rectangle(origin, 2*W, 2*L, 0))

	switch p.Feed {
	case Microstrip:
		l.Substrate = append(l.Substrate, Rectangle(origin, 2*W, 2*L, h))
		l.Conductor = append(l.Conductor, PatchConductor(L, W, h, p.X0, p.StripWidth, p.Gap))
	case Probe:
		l.Substrate = append(l.Substrate, Rectangle(origin, 2*W, 2*L, h))
		l.Conductor = append(l.Conductor, Rectangle(r2.Vec{X: W / 2, Y: L / 2}, W, L, h))
		l.Conductor = append(l.Conductor, ProbeFeed(p))
	default:
		return l, &FeedTypeError{Feed: p.Feed}
	}

	if s := p.Superstrate; s != nil {
		l.Superstrate = append(l.Superstrate, SuperstrateFace(*s, h))
	}
	return l, nil
}

// SuperstrateFace lays a slab over a substrate of height h and returns its
// closed top face. FlatRectangleLayer works in a frame where depth runs along
// y and length along z; the slab is turned so length runs along y and depth
// rises along z from the substrate top.
func SuperstrateFace(s SlabParams, h float64) Shape {
	cf := s.CenterFront
	slab := FlatRectangleLayer(s.Width, s.Length, s.Depth, r3.Vec{X: cf.X, Z: cf.Y})
	top := h + cf.Z + s.Depth
	face := make(Shape, len(slab.Upper))
	for i, v := range slab.Upper {
		face[i] = r3.Vec{X: v.X, Y: v.Z, Z: top - v.Y}
	}
	return face
}

// Outline is the two dimensional top layer of a patch as handed to the
// manufacturing export collaborator.
type Outline struct {
	Feed     FeedType `json:"feed_type"`
	Boundary []r2.Vec `json:"boundary"`
	// Pin is the probe feed location; nil for microstrip feeds.
	Pin *r2.Vec `json:"pin,omitempty"`
}

// TopLayerOutline regenerates the conductor outline of a patch in the plane
// of the conductor, using whatever unit p is expressed in. Export callers
// pass meters.
func TopLayerOutline(p PatchParams) (Outline, error) {
	var shape Shape
	var pin *r2.Vec
	switch p.Feed {
	case Microstrip:
		shape = PatchConductor(p.Length, p.Width, 0, p.X0, p.StripWidth, p.Gap)
	case Probe:
		shape = Rectangle(r2.Vec{X: p.Width / 2, Y: p.Length / 2}, p.Width, p.Length, 0)
		f := ProbeFeed(p)[0]
		pin = &r2.Vec{X: f.X, Y: f.Y}
	default:
		return Outline{}, &FeedTypeError{Feed: p.Feed}
	}

	out := Outline{Feed: p.Feed, Boundary: make([]r2.Vec, len(shape)), Pin: pin}
	for i, v := range shape {
		out.Boundary[i] = r2.Vec{X: v.X, Y: v.Y}
	}
	return out, nil
}
