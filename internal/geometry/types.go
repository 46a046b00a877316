// Package geometry generates the point geometry of antenna structures.
//
// Every generator is a pure function of its inputs: shapes are returned as
// values and the caller owns aggregation. Coordinates are unit agnostic;
// callers pass millimeters for previews and meters when regenerating export
// outlines.
package geometry

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Topology names one of the supported antenna shapes.
type Topology string

const (
	RectangularPatch    Topology = "rectangular_patch"
	HalfWaveDipole      Topology = "half_wave_dipole"
	QuarterWaveMonopole Topology = "quarter_wave_monopole"
)

// Topologies lists the supported topologies in display order.
var Topologies = []Topology{RectangularPatch, HalfWaveDipole, QuarterWaveMonopole}

// FeedType is how the signal is coupled into a patch conductor.
type FeedType string

const (
	Microstrip FeedType = "microstrip"
	Probe      FeedType = "probe"
)

// Shape is an ordered point sequence describing a polyline or polygon
// boundary. A single point marks a location (e.g. a probe feed).
type Shape []r3.Vec

// Mesh is a parametric surface sampled on a grid. Rows are indexed by the
// height sample, columns by the angle sample.
type Mesh [][]r3.Vec

// Layers holds the shapes produced for each material layer, in draw order.
type Layers struct {
	Conductor   []Shape `json:"conductor"`
	Substrate   []Shape `json:"substrate"`
	Superstrate []Shape `json:"superstrate"`

	// Solids are renderable conductor surfaces (wire antenna arms).
	Solids []Mesh `json:"solids,omitempty"`
}

// Append adds all shapes of other after the shapes already in l.
func (l *Layers) Append(other Layers) {
	l.Conductor = append(l.Conductor, other.Conductor...)
	l.Substrate = append(l.Substrate, other.Substrate...)
	l.Superstrate = append(l.Superstrate, other.Superstrate...)
	l.Solids = append(l.Solids, other.Solids...)
}

// IsEmpty reports whether no geometry was produced.
func (l *Layers) IsEmpty() bool {
	return len(l.Conductor) == 0 && len(l.Substrate) == 0 &&
		len(l.Superstrate) == 0 && len(l.Solids) == 0
}

// SizingHint carries the derived scalars used to frame a view.
// Patch: Length and Width. Dipole: Length and Radius. Monopole: Length.
type SizingHint struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width,omitempty"`
	Radius float64 `json:"radius,omitempty"`
}

// ViewVolume is an axis-aligned box, [min, max] per axis.
type ViewVolume struct {
	X [2]float64 `json:"x"`
	Y [2]float64 `json:"y"`
	Z [2]float64 `json:"z"`
}

// Environment describes a bent-substrate placement. It is carried on a
// Generation so callers can round-trip it, but no generator reads it yet:
// curved substrate layers are not implemented.
type Environment struct {
	BendAngle float64 `json:"bend_angle"` // degrees
	Offset    r3.Vec  `json:"offset"`     // (k, h, f)
}

// Generation is the result of one topology generation call.
type Generation struct {
	Topology    Topology     `json:"topology"`
	Layers      Layers       `json:"layers"`
	Hint        SizingHint   `json:"hint"`
	View        ViewVolume   `json:"view"`
	Environment *Environment `json:"environment,omitempty"`
}

// PatchParams are the physical dimensions of a rectangular patch.
type PatchParams struct {
	Feed   FeedType `json:"feed_type"`
	Height float64  `json:"substrate_height"`
	Width  float64  `json:"width"`
	Length float64  `json:"length"`
	X0     float64  `json:"x0"` // feed insertion depth / probe offset along the length
	Y0     float64  `json:"y0"` // probe offset along the width

	// Dielectric is the substrate's relative permittivity. It is recorded
	// with the layers but does not change their geometry.
	Dielectric float64 `json:"dielectric,omitempty"`

	// Microstrip only
	StripWidth float64 `json:"strip_width,omitempty"`
	Gap        float64 `json:"gap,omitempty"`

	Superstrate *SlabParams `json:"superstrate,omitempty"`
}

// SlabParams places a flat rectangular layer slab over a patch. Width runs
// along x and Length along y from the front edge; Depth is the thickness.
// CenterFront is the middle of the front edge of the bottom face: X and Y in
// the patch plane, Z a lift above the substrate top.
type SlabParams struct {
	Width       float64 `json:"width"`
	Length      float64 `json:"length"`
	Depth       float64 `json:"depth"`
	CenterFront r3.Vec  `json:"center_front"`
}

// DipoleParams are the physical dimensions of a half-wave dipole.
type DipoleParams struct {
	Length     float64 `json:"length"`
	HalfLength float64 `json:"half_length"`
	Radius     float64 `json:"radius"`
	FeedGap    float64 `json:"feed_gap"`
}

// MonopoleParams are the physical dimensions of a quarter-wave monopole.
type MonopoleParams struct {
	Length float64 `json:"length"`
	Radius float64 `json:"radius"`
}

// Params selects the parameter block for Engine.Generate. Only the block
// matching the requested topology is read.
type Params struct {
	Patch       *PatchParams
	Dipole      *DipoleParams
	Monopole    *MonopoleParams
	Environment *Environment
}
