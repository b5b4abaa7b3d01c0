package noise

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"", KindGradient, false},
		{"gradient", KindGradient, false},
		{"simplex", KindSimplex, false},
		{"classic", KindClassic, false},
		{"value", "", true},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownKind) {
				t.Errorf("ParseKind(%q) error = %v, want ErrUnknownKind", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseKind(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestNewBuildsEveryKind(t *testing.T) {
	for _, k := range Kinds {
		src, err := New(k, 7, false)
		if err != nil {
			t.Fatalf("New(%q) failed: %v", k, err)
		}
		v1 := src.Sample(1.25, 3.5)
		v2 := src.Sample(1.25, 3.5)
		if v1 != v2 || math.IsNaN(v1) {
			t.Errorf("%s source not deterministic or NaN: %f, %f", k, v1, v2)
		}
	}

	if _, err := New("worley", 7, false); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("New(worley) error = %v, want ErrUnknownKind", err)
	}
}

func TestGradientKindIsField(t *testing.T) {
	src, err := New(KindGradient, 11, true)
	if err != nil {
		t.Fatal(err)
	}
	f, ok := src.(Field)
	if !ok {
		t.Fatalf("gradient backend is %T, want Field", src)
	}
	if f.Seed != 11 || !f.ClampNonNegative {
		t.Errorf("unexpected field config: %+v", f)
	}
}

func TestBackendsClamp(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for _, k := range Kinds {
		src, err := New(k, 3, true)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 500; i++ {
			x := rng.Float64()*50 - 25
			y := rng.Float64()*50 - 25
			if v := src.Sample(x, y); v < 0 {
				t.Fatalf("%s clamped sample = %f", k, v)
			}
		}
	}
}

func TestSameSeedSameBackendOutput(t *testing.T) {
	a := NewSimplex(5, false)
	b := NewSimplex(5, false)
	c := NewClassic(5, false)
	d := NewClassic(5, false)
	for i := 0; i < 20; i++ {
		x := float64(i) * 0.731
		if a.Sample(x, -x) != b.Sample(x, -x) {
			t.Fatalf("simplex instances with same seed diverge at %f", x)
		}
		if c.Sample(x, -x) != d.Sample(x, -x) {
			t.Fatalf("classic instances with same seed diverge at %f", x)
		}
	}
}

func TestFractalSingleOctaveIsBase(t *testing.T) {
	base := Field{Seed: 4}
	f := Fractal{Base: base, Octaves: 1, Persistence: 0.5, Lacunarity: 2}
	for i := 0; i < 50; i++ {
		x := float64(i) * 0.173
		if f.Sample(x, x+1) != base.Sample(x, x+1) {
			t.Fatalf("single-octave fractal differs from base at %f", x)
		}
	}
}

func TestFractalDeterministicAndBounded(t *testing.T) {
	f := Fractal{Base: Field{Seed: 42}, Octaves: 5, Persistence: 0.5, Lacunarity: 2}
	rng := rand.New(rand.NewSource(12345))
	for i := 0; i < 1000; i++ {
		x := rng.Float64()*200 - 100
		y := rng.Float64()*200 - 100
		v := f.Sample(x, y)
		if v != f.Sample(x, y) {
			t.Fatalf("fractal not deterministic at (%f, %f)", x, y)
		}
		// weighted mean of octaves inherits the base envelope
		if v < -1.5 || v > 1.5 {
			t.Fatalf("fractal sample %f outside loose bound", v)
		}
	}
}

func TestFractalZeroAmplitude(t *testing.T) {
	f := Fractal{Base: Field{}, Octaves: 3, Persistence: 0, Lacunarity: 2}
	// only the first octave carries weight
	if got, want := f.Sample(0.3, 0.6), (Field{}).Sample(0.3, 0.6); got != want {
		t.Errorf("fractal with zero persistence = %f, want %f", got, want)
	}
}
