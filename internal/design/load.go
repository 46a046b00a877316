package design

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexiusacademia/antgeom/internal/geometry"
	"github.com/alexiusacademia/antgeom/internal/units"
)

// LoadFromFile loads a design definition from a JSON file
func LoadFromFile(filepath string) (*Design, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var d Design
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// LoadFeatureFile loads a positional calculator record. Only the JSON shape
// and unit are checked; positions are checked by ParseFeatures.
func LoadFeatureFile(filepath string) (*FeatureFile, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var ff FeatureFile
	if err := json.Unmarshal(data, &ff); err != nil {
		return nil, err
	}
	if _, err := units.Parse(string(ff.Unit)); err != nil {
		return nil, &ValidationError{err.Error()}
	}
	return &ff, nil
}

// Validate checks the design once, at the boundary, so the geometry engine
// can assume numerically valid input. A dipole without a half length gets
// half of its total length and an omitted unit becomes millimeters.
func (d *Design) Validate() error {
	u, err := units.Parse(string(d.Unit))
	if err != nil {
		return &ValidationError{err.Error()}
	}
	d.Unit = u

	switch d.Topology {
	case geometry.RectangularPatch:
		if d.Patch == nil {
			return &ValidationError{"rectangular_patch design needs a \"patch\" block"}
		}
		return ValidatePatch(*d.Patch)
	case geometry.HalfWaveDipole:
		if d.Dipole == nil {
			return &ValidationError{"half_wave_dipole design needs a \"dipole\" block"}
		}
		if d.Dipole.HalfLength == 0 {
			d.Dipole.HalfLength = d.Dipole.Length / 2
		}
		return ValidateDipole(*d.Dipole)
	case geometry.QuarterWaveMonopole:
		if d.Monopole == nil {
			return &ValidationError{"quarter_wave_monopole design needs a \"monopole\" block"}
		}
		return ValidateMonopole(*d.Monopole)
	case "":
		return &ValidationError{"design must name a topology"}
	}
	return &ValidationError{fmt.Sprintf("unknown topology %q (want one of %v)", d.Topology, geometry.Topologies)}
}

// ValidatePatch checks patch dimensions. The feed slot must fit inside the
// patch width and the feed inset must stay inside the patch length.
func ValidatePatch(p geometry.PatchParams) error {
	if p.Feed != geometry.Microstrip && p.Feed != geometry.Probe {
		return &ValidationError{fmt.Sprintf("feed type must be %q or %q, got %q", geometry.Microstrip, geometry.Probe, p.Feed)}
	}
	if p.Width <= 0 || p.Length <= 0 {
		return &ValidationError{fmt.Sprintf("patch width and length must be positive: width=%g, length=%g", p.Width, p.Length)}
	}
	if p.Height <= 0 {
		return &ValidationError{fmt.Sprintf("substrate height must be positive, got %g", p.Height)}
	}
	if p.Dielectric != 0 && p.Dielectric < 1 {
		return &ValidationError{fmt.Sprintf("dielectric constant must be at least 1, got %g", p.Dielectric)}
	}
	if p.X0 < 0 || p.X0 > p.Length {
		return &ValidationError{fmt.Sprintf("x0 must be within [0, length=%g], got %g", p.Length, p.X0)}
	}
	if p.Feed == geometry.Microstrip {
		if p.StripWidth <= 0 {
			return &ValidationError{fmt.Sprintf("strip width must be positive, got %g", p.StripWidth)}
		}
		if p.Gap < 0 {
			return &ValidationError{fmt.Sprintf("gap must not be negative, got %g", p.Gap)}
		}
		if geometry.CutWidth(p.Width, p.StripWidth, p.Gap) < 0 {
			return &ValidationError{fmt.Sprintf("strip width %g plus gaps 2x%g exceed patch width %g", p.StripWidth, p.Gap, p.Width)}
		}
	}
	if s := p.Superstrate; s != nil && (s.Width <= 0 || s.Length <= 0 || s.Depth <= 0) {
		return &ValidationError{"superstrate width, length and depth must be positive"}
	}
	return nil
}

// ValidateDipole checks dipole dimensions.
func ValidateDipole(p geometry.DipoleParams) error {
	if p.Length <= 0 || p.HalfLength <= 0 {
		return &ValidationError{fmt.Sprintf("dipole length and half length must be positive: length=%g, half_length=%g", p.Length, p.HalfLength)}
	}
	if p.Radius <= 0 {
		return &ValidationError{fmt.Sprintf("conductor radius must be positive, got %g", p.Radius)}
	}
	if p.FeedGap < 0 {
		return &ValidationError{fmt.Sprintf("feed gap must not be negative, got %g", p.FeedGap)}
	}
	return nil
}

// ValidateMonopole checks monopole dimensions.
func ValidateMonopole(p geometry.MonopoleParams) error {
	if p.Length <= 0 {
		return &ValidationError{fmt.Sprintf("monopole length must be positive, got %g", p.Length)}
	}
	if p.Radius <= 0 {
		return &ValidationError{fmt.Sprintf("conductor radius must be positive, got %g", p.Radius)}
	}
	return nil
}

// Params returns the engine parameters of d expressed in unit to.
func (d *Design) Params(to units.Unit) geometry.Params {
	from, _ := units.Parse(string(d.Unit))

	var p geometry.Params
	if d.Patch != nil {
		pp := *d.Patch
		units.ConvertAll(from, to, &pp.Height, &pp.Width, &pp.Length,
			&pp.X0, &pp.Y0, &pp.StripWidth, &pp.Gap)
		if s := pp.Superstrate; s != nil {
			ss := *s
			units.ConvertAll(from, to, &ss.Width, &ss.Length, &ss.Depth,
				&ss.CenterFront.X, &ss.CenterFront.Y, &ss.CenterFront.Z)
			pp.Superstrate = &ss
		}
		p.Patch = &pp
	}
	if d.Dipole != nil {
		dp := *d.Dipole
		units.ConvertAll(from, to, &dp.Length, &dp.HalfLength, &dp.Radius, &dp.FeedGap)
		p.Dipole = &dp
	}
	if d.Monopole != nil {
		mp := *d.Monopole
		units.ConvertAll(from, to, &mp.Length, &mp.Radius)
		p.Monopole = &mp
	}
	if d.Environment != nil {
		env := *d.Environment
		units.ConvertAll(from, to, &env.Offset.X, &env.Offset.Y, &env.Offset.Z)
		p.Environment = &env
	}
	return p
}
