package design

import (
	"fmt"
	"strconv"

	"github.com/alexiusacademia/antgeom/internal/geometry"
)

// Positions of the calculator's patch panel features.
const (
	patchFeatFeedType        = 0
	patchFeatDielectric      = 1
	patchFeatSubstrateHeight = 2
)

// Value returns the raw value at position i.
func (fs FeatureSet) Value(i int) (string, error) {
	if i < 0 || i >= len(fs) {
		return "", &ValidationError{fmt.Sprintf("feature position %d missing (have %d)", i, len(fs))}
	}
	return fs[i].Value, nil
}

// Float parses the value at position i.
func (fs FeatureSet) Float(i int) (float64, error) {
	s, err := fs.Value(i)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("feature %d (%s): %w", i, fs[i].Name, err)
	}
	return v, nil
}

// floats parses the first n values.
func (fs FeatureSet) floats(n int) ([]float64, error) {
	vs := make([]float64, n)
	for i := range vs {
		v, err := fs.Float(i)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return vs, nil
}

// ParseFeatures converts positional panel features and calculated design
// parameters into engine parameters. Values must already be in the engine's
// working unit.
//
// Patch: features[0] feed type, features[1] dielectric, features[2]
// substrate height; params width, length, x0, y0 and, for microstrip feeds,
// strip width and gap.
// Dipole: params length, half length, radius, feed gap.
// Monopole: params length, radius.
//
// Names are not checked, and the feed type is passed to the engine as is.
func ParseFeatures(t geometry.Topology, features, params FeatureSet) (geometry.Params, error) {
	var p geometry.Params
	switch t {
	case geometry.RectangularPatch:
		feed, err := features.Value(patchFeatFeedType)
		if err != nil {
			return p, err
		}
		er, err := features.Float(patchFeatDielectric)
		if err != nil {
			return p, err
		}
		h, err := features.Float(patchFeatSubstrateHeight)
		if err != nil {
			return p, err
		}
		vs, err := params.floats(4)
		if err != nil {
			return p, err
		}
		pp := &geometry.PatchParams{
			Feed:       geometry.FeedType(feed),
			Height:     h,
			Width:      vs[0],
			Length:     vs[1],
			X0:         vs[2],
			Y0:         vs[3],
			Dielectric: er,
		}
		if pp.Feed == geometry.Microstrip {
			if pp.StripWidth, err = params.Float(4); err != nil {
				return p, err
			}
			if pp.Gap, err = params.Float(5); err != nil {
				return p, err
			}
		}
		p.Patch = pp
	case geometry.HalfWaveDipole:
		vs, err := params.floats(4)
		if err != nil {
			return p, err
		}
		p.Dipole = &geometry.DipoleParams{Length: vs[0], HalfLength: vs[1], Radius: vs[2], FeedGap: vs[3]}
	case geometry.QuarterWaveMonopole:
		vs, err := params.floats(2)
		if err != nil {
			return p, err
		}
		p.Monopole = &geometry.MonopoleParams{Length: vs[0], Radius: vs[1]}
	default:
		return p, &geometry.TopologyError{Topology: t}
	}
	return p, nil
}
