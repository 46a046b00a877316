package geometry

import "fmt"

// TopologyError reports a topology tag the engine does not know.
type TopologyError struct {
	Topology Topology
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("unrecognized antenna type: %q", string(e.Topology))
}

// FeedTypeError reports an unknown patch feed. Geometry emitted before the
// feed was inspected (the ground plane) is still returned to the caller.
type FeedTypeError struct {
	Feed FeedType
}

func (e *FeedTypeError) Error() string {
	return fmt.Sprintf("unrecognized feed type for %s: %q", RectangularPatch, string(e.Feed))
}

// MissingParamsError reports a Generate call without the parameter block for
// the requested topology.
type MissingParamsError struct {
	Topology Topology
}

func (e *MissingParamsError) Error() string {
	return fmt.Sprintf("no parameters given for %s", e.Topology)
}
