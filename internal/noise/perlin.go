package noise

import (
	"math"
	"math/bits"
)

// Seeded 2D gradient noise. Gradients come from an integer hash of the lattice
// coordinates, so there is no permutation table and nothing shared between calls.

const (
	hashMulA = 3284157443
	hashMulB = 1911520717
	hashMulC = 2048419325

	// maps a 32-bit hash onto [0, 2*Pi)
	angleScale = math.Pi / (1 << 31)
)

// Field is a configured noise source. The zero value is the unseeded,
// unclamped variant.
type Field struct {
	Seed int32
	// ClampNonNegative flattens everything below zero ("no terrain below sea level").
	ClampNonNegative bool
}

// Default returns the unseeded, unclamped field.
func Default() Field {
	return Field{}
}

// Sample evaluates the field at (x, y).
func (f Field) Sample(x, y float64) float64 {
	v := Sample(x, y, f.Seed)
	if f.ClampNonNegative && v < 0 {
		return 0
	}
	return v
}

// Sample returns unclamped gradient noise at (x, y) for the given seed.
// Output is roughly within [-1, 1]; the bound is not exact.
func Sample(x, y float64, seed int32) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	ix0 := int64(x0)
	iy0 := int64(y0)

	sx := x - x0
	sy := y - y0

	n0 := dotGridGradient(ix0, iy0, x, y, seed)
	n1 := dotGridGradient(ix0+1, iy0, x, y, seed)
	row0 := Interpolate(n0, n1, sx)

	n0 = dotGridGradient(ix0, iy0+1, x, y, seed)
	n1 = dotGridGradient(ix0+1, iy0+1, x, y, seed)
	row1 := Interpolate(n0, n1, sx)

	return Interpolate(row0, row1, sy)
}

// Smoothstep is the cubic Hermite weight (3 - 2w) * w^2.
func Smoothstep(w float64) float64 {
	return (3 - 2*w) * w * w
}

// Interpolate blends a0 and a1 using the smoothstep weight of w.
func Interpolate(a0, a1, w float64) float64 {
	return (a1-a0)*Smoothstep(w) + a0
}

// latticeHash mixes the seeded lattice coordinates into a 32-bit value.
func latticeHash(ix, iy int64, seed int32) uint32 {
	a := uint32(ix + int64(seed))
	b := uint32(iy + int64(seed))

	a *= hashMulA
	b ^= bits.RotateLeft32(a, 16)
	b *= hashMulB
	a ^= bits.RotateLeft32(b, 16)
	a *= hashMulC
	return a
}

// gradient returns the unit vector assigned to a lattice point.
func gradient(ix, iy int64, seed int32) (gx, gy float64) {
	angle := float64(latticeHash(ix, iy, seed)) * angleScale
	return math.Sin(angle), math.Cos(angle)
}

func dotGridGradient(ix, iy int64, x, y float64, seed int32) float64 {
	gx, gy := gradient(ix, iy, seed)
	dx := x - float64(ix)
	dy := y - float64(iy)
	return dx*gx + dy*gy
}
