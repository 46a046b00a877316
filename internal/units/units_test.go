package units

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Unit
		wantErr bool
	}{
		{"", Millimeter, false},
		{"mm", Millimeter, false},
		{"m", Meter, false},
		{"in", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		from, to Unit
		want     float64
	}{
		{"m to mm", 0.0285, Meter, Millimeter, 28.5},
		{"mm to m", 1.6, Millimeter, Meter, 0.0016},
		{"same", 3.06, Millimeter, Millimeter, 3.06},
		{"empty is mm", 3.06, "", Millimeter, 3.06},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Convert(tt.v, tt.from, tt.to)
			if d := got - tt.want; d > 1e-12 || d < -1e-12 {
				t.Errorf("Convert(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestConvertAllInPlace(t *testing.T) {
	a, b := 1.0, 2.5
	ConvertAll(Meter, Millimeter, &a, &b)
	if a != 1000 || b != 2500 {
		t.Errorf("ConvertAll = %v, %v, want 1000, 2500", a, b)
	}
}
