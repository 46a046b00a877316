package design

import (
	"encoding/json"
	"fmt"

	"github.com/alexiusacademia/antgeom/internal/geometry"
	"github.com/alexiusacademia/antgeom/internal/units"
)

// Design is an antenna definition read from a JSON file.
//
// Dimensions are expressed in Unit (millimeters when omitted). Only the
// parameter block matching Topology is used.
type Design struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Topology    geometry.Topology `json:"topology"`
	Unit        units.Unit        `json:"unit,omitempty"`

	Patch    *geometry.PatchParams    `json:"patch,omitempty"`
	Dipole   *geometry.DipoleParams   `json:"dipole,omitempty"`
	Monopole *geometry.MonopoleParams `json:"monopole,omitempty"`

	// Environment is accepted and passed through, but bent substrates are
	// not generated.
	Environment *geometry.Environment `json:"environment,omitempty"`
}

// Feature is one positional name/value record as produced by the calculator
// front end.
type Feature struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// UnmarshalJSON accepts either {"name": ..., "value": ...} or the
// calculator's ["name", value] pair form. Numeric values are kept in their
// JSON spelling.
func (f *Feature) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err == nil {
		if len(pair) != 2 {
			return fmt.Errorf("feature pair has %d elements, want 2", len(pair))
		}
		if err := json.Unmarshal(pair[0], &f.Name); err != nil {
			return err
		}
		f.Value = rawValue(pair[1])
		return nil
	}

	var obj struct {
		Name  string          `json:"name"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	f.Name, f.Value = obj.Name, rawValue(obj.Value)
	return nil
}

// rawValue unquotes JSON strings and keeps numbers verbatim.
func rawValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// FeatureSet is an ordered list of features. Positions, not names, carry
// meaning.
type FeatureSet []Feature

// FeatureFile is a positional calculator record: the panel features and the
// calculated design parameters for one topology, already in Unit.
type FeatureFile struct {
	Topology geometry.Topology `json:"topology"`
	Unit     units.Unit        `json:"unit,omitempty"`
	Features FeatureSet        `json:"features"`
	Params   FeatureSet        `json:"params"`
}

// ValidationError represents an invalid design parameter
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
