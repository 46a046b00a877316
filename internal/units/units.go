package units

import "fmt"

// Unit tags the working length unit of a set of physical dimensions.
// The geometry engine itself is unit agnostic; the tag travels with the
// parameters so conversions happen once, at the boundary.
type Unit string

const (
	Millimeter Unit = "mm"
	Meter      Unit = "m"
)

// MillimetersPerMeter is the scale between the preview unit and the
// calculator/export unit.
const MillimetersPerMeter = 1000.0

// Parse returns the Unit named by s. An empty string selects millimeters,
// the preview unit.
func Parse(s string) (Unit, error) {
	switch Unit(s) {
	case "", Millimeter:
		return Millimeter, nil
	case Meter:
		return Meter, nil
	}
	return "", fmt.Errorf("unknown unit %q (want %q or %q)", s, Millimeter, Meter)
}

// Convert scales v from one unit to another. An empty unit is millimeters.
func Convert(v float64, from, to Unit) float64 {
	from, to = Unit(from.Label()), Unit(to.Label())
	if from == to {
		return v
	}
	if from == Meter && to == Millimeter {
		return v * MillimetersPerMeter
	}
	return v / MillimetersPerMeter
}

// ConvertAll converts each referenced value in place.
func ConvertAll(from, to Unit, vs ...*float64) {
	for _, v := range vs {
		*v = Convert(*v, from, to)
	}
}

// Label returns the axis label used in tables and diagrams.
func (u Unit) Label() string {
	if u == "" {
		return string(Millimeter)
	}
	return string(u)
}
