package noise

// octaveOffset shifts each octave so they do not share lattice points.
const octaveOffset = 37.719

// Fractal sums octaves of a base source (fBm), normalised by the total amplitude.
type Fractal struct {
	Base        Source
	Octaves     int
	Persistence float64
	Lacunarity  float64
}

// Sample evaluates the octave sum. With one octave or fewer it is the base source.
func (f Fractal) Sample(x, y float64) float64 {
	if f.Octaves <= 1 {
		return f.Base.Sample(x, y)
	}

	amplitude := 1.0
	frequency := 1.0
	sum := 0.0
	norm := 0.0
	for i := 0; i < f.Octaves; i++ {
		off := float64(i) * octaveOffset
		sum += f.Base.Sample(x*frequency+off, y*frequency+off) * amplitude
		norm += amplitude
		amplitude *= f.Persistence
		frequency *= f.Lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}
