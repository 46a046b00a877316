package geometry

// DefaultViewVolume frames a canvas when no topology could be generated.
var DefaultViewVolume = ViewVolume{
	X: [2]float64{0, 10},
	Y: [2]float64{0, 10},
	Z: [2]float64{-10, 10},
}

// ComputeViewVolume pads the sizing hint of a topology into a box that frames
// a 3D render. It does not affect geometry.
func ComputeViewVolume(t Topology, hint SizingHint) (ViewVolume, error) {
	l := hint.Length
	switch t {
	case RectangularPatch:
		return ViewVolume{
			X: [2]float64{0, 2.5 * l},
			Y: [2]float64{0, 2.5 * l},
			Z: [2]float64{-1.25 * l, 1.25 * l},
		}, nil
	case HalfWaveDipole:
		return ViewVolume{
			X: [2]float64{-l / 2, l / 2},
			Y: [2]float64{-l / 2, l / 2},
			Z: [2]float64{-0.75 * l, 0.75 * l},
		}, nil
	case QuarterWaveMonopole:
		return ViewVolume{
			X: [2]float64{-l / 2, l / 2},
			Y: [2]float64{-l / 2, l / 2},
			Z: [2]float64{0, 1.25 * l},
		}, nil
	}
	return DefaultViewVolume, &TopologyError{Topology: t}
}
