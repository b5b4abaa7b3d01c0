package noise

import (
	"errors"
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Source is anything that maps a plane coordinate to a height value.
type Source interface {
	Sample(x, y float64) float64
}

// Kind names a noise backend.
type Kind string

const (
	KindGradient Kind = "gradient"
	KindSimplex  Kind = "simplex"
	KindClassic  Kind = "classic"
)

// Kinds lists the supported backends, default first.
var Kinds = []Kind{KindGradient, KindSimplex, KindClassic}

var ErrUnknownKind = errors.New("unknown noise kind")

// ParseKind accepts the empty string as the default backend.
func ParseKind(s string) (Kind, error) {
	if s == "" {
		return KindGradient, nil
	}
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// New builds a backend by kind.
func New(kind Kind, seed int32, clamp bool) (Source, error) {
	switch kind {
	case KindGradient, "":
		return Field{Seed: seed, ClampNonNegative: clamp}, nil
	case KindSimplex:
		return NewSimplex(seed, clamp), nil
	case KindClassic:
		return NewClassic(seed, clamp), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Simplex wraps OpenSimplex noise. Output is in [-1, 1].
type Simplex struct {
	noise opensimplex.Noise
	clamp bool
}

func NewSimplex(seed int32, clamp bool) *Simplex {
	return &Simplex{noise: opensimplex.New(int64(seed)), clamp: clamp}
}

func (s *Simplex) Sample(x, y float64) float64 {
	return clampIf(s.noise.Eval2(x, y), s.clamp)
}

// Classic is permutation-table Perlin noise. The table is built once per
// instance and never written afterwards.
type Classic struct {
	p     *perlin.Perlin
	clamp bool
}

const (
	classicAlpha  = 2.0
	classicBeta   = 2.0
	classicOctave = 1
)

func NewClassic(seed int32, clamp bool) *Classic {
	return &Classic{
		p:     perlin.NewPerlin(classicAlpha, classicBeta, classicOctave, int64(seed)),
		clamp: clamp,
	}
}

func (c *Classic) Sample(x, y float64) float64 {
	return clampIf(c.p.Noise2D(x, y), c.clamp)
}

func clampIf(v float64, clamp bool) float64 {
	if clamp && v < 0 {
		return 0
	}
	return v
}
