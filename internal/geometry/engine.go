package geometry

// Engine generates antenna geometry. An Engine keeps no geometry between
// calls, so one instance may serve any number of requests.
type Engine struct {
	// Resolution is the sample count per cylinder parameter. Values below 2
	// select DefaultResolution.
	Resolution int
}

// New returns an Engine sampling cylinders at DefaultResolution.
func New() *Engine {
	return &Engine{Resolution: DefaultResolution}
}

// Patch generates a rectangular patch. For an unknown feed type the returned
// Generation still holds the ground plane and is framed normally; the error
// is a *FeedTypeError.
func (e *Engine) Patch(p PatchParams) (*Generation, error) {
	layers, err := patchLayers(p)
	return e.finish(RectangularPatch, layers, SizingHint{Length: p.Length, Width: p.Width}), err
}

// Dipole generates a half-wave dipole.
func (e *Engine) Dipole(p DipoleParams) (*Generation, error) {
	layers := dipoleLayers(p, e.Resolution)
	return e.finish(HalfWaveDipole, layers, SizingHint{Length: p.Length, Radius: p.Radius}), nil
}

// Monopole generates a quarter-wave monopole.
func (e *Engine) Monopole(p MonopoleParams) (*Generation, error) {
	layers := monopoleLayers(p, e.Resolution)
	return e.finish(QuarterWaveMonopole, layers, SizingHint{Length: p.Length}), nil
}

// Generate dispatches to the generator for t. An unknown topology yields a
// *TopologyError and a Generation with no geometry framed by
// DefaultViewVolume.
func (e *Engine) Generate(t Topology, p Params) (*Generation, error) {
	var (
		gen *Generation
		err error
	)
	switch t {
	case RectangularPatch:
		if p.Patch == nil {
			return nil, &MissingParamsError{Topology: t}
		}
		gen, err = e.Patch(*p.Patch)
	case HalfWaveDipole:
		if p.Dipole == nil {
			return nil, &MissingParamsError{Topology: t}
		}
		gen, err = e.Dipole(*p.Dipole)
	case QuarterWaveMonopole:
		if p.Monopole == nil {
			return nil, &MissingParamsError{Topology: t}
		}
		gen, err = e.Monopole(*p.Monopole)
	default:
		return &Generation{Topology: t, View: DefaultViewVolume}, &TopologyError{Topology: t}
	}
	if gen != nil && p.Environment != nil {
		env := *p.Environment
		gen.Environment = &env
	}
	return gen, err
}

func (e *Engine) finish(t Topology, layers Layers, hint SizingHint) *Generation {
	// t is always one of the known topologies here.
	view, _ := ComputeViewVolume(t, hint)
	return &Generation{
		Topology: t,
		Layers:   layers,
		Hint:     hint,
		View:     view,
	}
}
