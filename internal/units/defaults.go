package units

// Input panel defaults of the antenna calculator front end. Lengths are in
// millimeters.

const (
	// Rectangular patch
	DefaultDielectric      = 4.4  // relative permittivity (FR-4)
	DefaultSubstrateHeight = 1.6  // mm
	DefaultGap             = 1.0  // mm, clearance between feed line and patch
	DefaultStripWidth      = 3.06 // mm, microstrip feed line width

	// Wire antennas
	DefaultWireRadius = 1.0 // mm
	DefaultFeedGap    = 5.0 // mm, dipole only
)
