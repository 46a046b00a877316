package geometry

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestDipoleArms(t *testing.T) {
	const hl, g = 30.0, 5.0
	gen, err := New().Dipole(DipoleParams{Length: 60, HalfLength: hl, Radius: 1, FeedGap: g})
	if err != nil {
		t.Fatalf("Dipole() error = %v", err)
	}
	if n := len(gen.Layers.Solids); n != 2 {
		t.Fatalf("solids = %d, want 2", n)
	}

	upLo, upHi := gen.Layers.Solids[0].ZRange()
	dnLo, dnHi := gen.Layers.Solids[1].ZRange()
	if upLo != g/2 || upHi != hl+g/2 {
		t.Errorf("upper arm z = [%v, %v], want [%v, %v]", upLo, upHi, g/2, hl+g/2)
	}
	if dnLo != -hl-g/2 || dnHi != -g/2 {
		t.Errorf("lower arm z = [%v, %v], want [%v, %v]", dnLo, dnHi, -hl-g/2, -g/2)
	}
	if gap := upLo - dnHi; gap != g {
		t.Errorf("feed gap = %v, want %v", gap, g)
	}
	if mid := (upLo + dnHi) / 2; mid != 0 {
		t.Errorf("feed gap centered at %v, want 0", mid)
	}

	if gen.Hint != (SizingHint{Length: 60, Radius: 1}) {
		t.Errorf("Hint = %+v, want length 60 radius 1", gen.Hint)
	}
}

func TestMonopoleArm(t *testing.T) {
	for _, radius := range []float64{0.5, 1, 4} {
		gen, err := New().Monopole(MonopoleParams{Length: 31.25, Radius: radius})
		if err != nil {
			t.Fatalf("Monopole() error = %v", err)
		}
		if n := len(gen.Layers.Solids); n != 1 {
			t.Fatalf("solids = %d, want 1", n)
		}
		m := gen.Layers.Solids[0]
		if lo, hi := m.ZRange(); lo != 0 || hi != 31.25 {
			t.Errorf("radius %v: z = [%v, %v], want [0, 31.25]", radius, lo, hi)
		}

		// Opposite samples across a ring average to the axis.
		ring := m[0]
		var cx, cy float64
		for _, p := range ring[:len(ring)-1] {
			cx += p.X
			cy += p.Y
		}
		n := float64(len(ring) - 1)
		if !scalar.EqualWithinAbs(cx/n, 0, tol) || !scalar.EqualWithinAbs(cy/n, 0, tol) {
			t.Errorf("radius %v: axis at (%v, %v), want (0, 0)", radius, cx/n, cy/n)
		}
	}
}

func TestEngineResolution(t *testing.T) {
	e := &Engine{Resolution: 8}
	gen, _ := e.Monopole(MonopoleParams{Length: 10, Radius: 1})
	m := gen.Layers.Solids[0]
	if len(m) != 8 || len(m[0]) != 8 {
		t.Errorf("mesh = %dx%d, want 8x8", len(m), len(m[0]))
	}
}

func TestComputeViewVolume(t *testing.T) {
	tests := []struct {
		name string
		topo Topology
		hint SizingHint
		want ViewVolume
	}{
		{
			name: "patch",
			topo: RectangularPatch,
			hint: SizingHint{Length: 10, Width: 5},
			want: ViewVolume{X: [2]float64{0, 25}, Y: [2]float64{0, 25}, Z: [2]float64{-12.5, 12.5}},
		},
		{
			name: "dipole",
			topo: HalfWaveDipole,
			hint: SizingHint{Length: 60, Radius: 1},
			want: ViewVolume{X: [2]float64{-30, 30}, Y: [2]float64{-30, 30}, Z: [2]float64{-45, 45}},
		},
		{
			name: "monopole",
			topo: QuarterWaveMonopole,
			hint: SizingHint{Length: 20},
			want: ViewVolume{X: [2]float64{-10, 10}, Y: [2]float64{-10, 10}, Z: [2]float64{0, 25}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeViewVolume(tt.topo, tt.hint)
			if err != nil {
				t.Fatalf("ComputeViewVolume() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ComputeViewVolume() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeViewVolumeUnknown(t *testing.T) {
	got, err := ComputeViewVolume("helix", SizingHint{Length: 10})
	var te *TopologyError
	if !errors.As(err, &te) {
		t.Fatalf("error = %v, want *TopologyError", err)
	}
	if got != DefaultViewVolume {
		t.Errorf("ComputeViewVolume() = %+v, want default %+v", got, DefaultViewVolume)
	}
}

func TestGenerateDispatch(t *testing.T) {
	e := New()
	params := Params{
		Patch:    &PatchParams{Feed: Probe, Length: 10, Width: 5, Height: 1.6, X0: 2, Y0: 1},
		Dipole:   &DipoleParams{Length: 60, HalfLength: 30, Radius: 1, FeedGap: 5},
		Monopole: &MonopoleParams{Length: 30, Radius: 1},
	}
	for _, topo := range Topologies {
		t.Run(string(topo), func(t *testing.T) {
			gen, err := e.Generate(topo, params)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if gen.Topology != topo {
				t.Errorf("Topology = %q, want %q", gen.Topology, topo)
			}
			if gen.Layers.IsEmpty() {
				t.Error("no geometry generated")
			}
			want, _ := ComputeViewVolume(topo, gen.Hint)
			if gen.View != want {
				t.Errorf("View = %+v, want %+v", gen.View, want)
			}
		})
	}
}

func TestGenerateUnknownTopology(t *testing.T) {
	gen, err := New().Generate("yagi", Params{})
	var te *TopologyError
	if !errors.As(err, &te) {
		t.Fatalf("error = %v, want *TopologyError", err)
	}
	if !gen.Layers.IsEmpty() {
		t.Errorf("Layers = %+v, want empty", gen.Layers)
	}
	if gen.View != DefaultViewVolume {
		t.Errorf("View = %+v, want default", gen.View)
	}
}

func TestGenerateMissingParams(t *testing.T) {
	_, err := New().Generate(HalfWaveDipole, Params{})
	var me *MissingParamsError
	if !errors.As(err, &me) {
		t.Fatalf("error = %v, want *MissingParamsError", err)
	}
}

func TestGenerateCarriesEnvironment(t *testing.T) {
	env := &Environment{BendAngle: 30, Offset: r3.Vec{X: 1, Y: 2, Z: 3}}
	plain, _ := New().Generate(QuarterWaveMonopole, Params{Monopole: &MonopoleParams{Length: 10, Radius: 1}})
	bent, err := New().Generate(QuarterWaveMonopole, Params{
		Monopole:    &MonopoleParams{Length: 10, Radius: 1},
		Environment: env,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if bent.Environment == nil || *bent.Environment != *env {
		t.Fatalf("Environment = %v, want %v", bent.Environment, env)
	}
	if bent.Environment == env {
		t.Error("Environment aliases the caller's value")
	}
	// No generator reads the environment yet.
	if plain.Layers.Solids[0][3][7] != bent.Layers.Solids[0][3][7] {
		t.Error("environment changed the generated geometry")
	}
}

func TestEngineReuseDoesNotAccumulate(t *testing.T) {
	e := New()
	p := PatchParams{Feed: Probe, Length: 10, Width: 5, Height: 1.6, X0: 2, Y0: 1}
	first, _ := e.Patch(p)
	second, _ := e.Patch(p)
	if len(second.Layers.Substrate) != len(first.Layers.Substrate) ||
		len(second.Layers.Conductor) != len(first.Layers.Conductor) {
		t.Errorf("second call produced %d/%d shapes, first %d/%d",
			len(second.Layers.Substrate), len(second.Layers.Conductor),
			len(first.Layers.Substrate), len(first.Layers.Conductor))
	}
}

func TestLayersAppend(t *testing.T) {
	e := New()
	patch, _ := e.Patch(PatchParams{Feed: Probe, Length: 10, Width: 5, Height: 1.6})
	mono, _ := e.Monopole(MonopoleParams{Length: 10, Radius: 1})

	var all Layers
	if !all.IsEmpty() {
		t.Fatal("zero Layers not empty")
	}
	all.Append(patch.Layers)
	all.Append(mono.Layers)
	if len(all.Substrate) != 2 || len(all.Conductor) != 2 || len(all.Solids) != 1 {
		t.Errorf("Append gave %d substrate, %d conductor, %d solids; want 2, 2, 1",
			len(all.Substrate), len(all.Conductor), len(all.Solids))
	}
}
