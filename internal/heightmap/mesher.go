package heightmap

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"terrain-viewer/internal/noise"
	"terrain-viewer/internal/profiling"
)

// FloatsPerVertex is the vertex layout handed to the renderer: position only.
const FloatsPerVertex = 3

// VerticesPerCell is two non-indexed triangles per grid cell.
const VerticesPerCell = 6

var ErrInvalidConfiguration = errors.New("invalid heightmap configuration")

// Params describes the sampled domain.
type Params struct {
	Size       int     // samples per side, at least 2
	NoiseScale float64 // multiplier from world units to noise space
	Extent     float64 // side length of the square domain
}

// Validate reports ErrInvalidConfiguration for parameters that cannot produce a grid.
func (p Params) Validate() error {
	if p.Size < 2 {
		return fmt.Errorf("%w: size %d < 2", ErrInvalidConfiguration, p.Size)
	}
	if !(p.Extent > 0) || math.IsInf(p.Extent, 0) {
		return fmt.Errorf("%w: extent %v", ErrInvalidConfiguration, p.Extent)
	}
	if math.IsNaN(p.NoiseScale) || math.IsInf(p.NoiseScale, 0) {
		return fmt.Errorf("%w: noise scale %v", ErrInvalidConfiguration, p.NoiseScale)
	}
	return nil
}

// Step is the spacing between neighbouring samples.
func (p Params) Step() float64 {
	return p.Extent / float64(p.Size-1)
}

// HeightGrid is a Size x Size height field stored row-major (row i, column j).
type HeightGrid struct {
	Size    int
	Step    float64
	Extent  float64
	Heights []float32
}

// At returns the height at row i, column j.
func (g *HeightGrid) At(i, j int) float32 {
	return g.Heights[i*g.Size+j]
}

// Row returns row i as a sub-slice of the grid.
func (g *HeightGrid) Row(i int) []float32 {
	return g.Heights[i*g.Size : (i+1)*g.Size]
}

// WorldX is the world-space x of column j. Z for row i uses the same mapping.
func (g *HeightGrid) WorldX(j int) float32 {
	return float32(-g.Extent/2 + float64(j)*g.Step)
}

// MinMax returns the lowest and highest heights.
func (g *HeightGrid) MinMax() (lo, hi float32) {
	lo, hi = g.Heights[0], g.Heights[0]
	for _, h := range g.Heights[1:] {
		if h < lo {
			lo = h
		}
		if h > hi {
			hi = h
		}
	}
	return lo, hi
}

// Normalized maps heights onto [0, 1]. A flat grid maps to all zeros.
func (g *HeightGrid) Normalized() []float32 {
	lo, hi := g.MinMax()
	out := make([]float32, len(g.Heights))
	span := hi - lo
	if span == 0 {
		return out
	}
	for k, h := range g.Heights {
		out[k] = (h - lo) / span
	}
	return out
}

// MeshBuffer is a flat, non-indexed triangle list of positions.
type MeshBuffer struct {
	Positions []float32
}

func (m *MeshBuffer) VertexCount() int {
	return len(m.Positions) / FloatsPerVertex
}

func (m *MeshBuffer) TriangleCount() int {
	return m.VertexCount() / 3
}

// Vertex returns vertex k.
func (m *MeshBuffer) Vertex(k int) [3]float32 {
	o := k * FloatsPerVertex
	return [3]float32{m.Positions[o], m.Positions[o+1], m.Positions[o+2]}
}

// Mesher samples a noise source over a grid and triangulates the result.
type Mesher struct {
	Source noise.Source
	// Workers > 1 splits sampling by row. Output is identical to the sequential path.
	Workers int
}

// Generate samples a seeded gradient-noise field and returns the grid and its mesh.
func Generate(size int, seed int32, noiseScale, horizontalExtent float64) (*HeightGrid, *MeshBuffer, error) {
	m := Mesher{Source: noise.Field{Seed: seed}}
	return m.Generate(Params{Size: size, NoiseScale: noiseScale, Extent: horizontalExtent})
}

// Generate builds a fresh grid and mesh. Nothing is returned on error.
func (m Mesher) Generate(p Params) (*HeightGrid, *MeshBuffer, error) {
	defer profiling.Track("heightmap.Generate")()

	if err := p.Validate(); err != nil {
		return nil, nil, err
	}
	if m.Source == nil {
		return nil, nil, fmt.Errorf("%w: nil noise source", ErrInvalidConfiguration)
	}

	grid := &HeightGrid{
		Size:    p.Size,
		Step:    p.Step(),
		Extent:  p.Extent,
		Heights: make([]float32, p.Size*p.Size),
	}
	m.sample(grid, p.NoiseScale)

	return grid, BuildMesh(grid), nil
}

func (m Mesher) sample(g *HeightGrid, scale float64) {
	workers := m.Workers
	if workers > g.Size {
		workers = g.Size
	}
	if workers <= 1 {
		for i := 0; i < g.Size; i++ {
			sampleRow(m.Source, g, i, scale)
		}
		return
	}

	rows := make(chan int, g.Size)
	for i := 0; i < g.Size; i++ {
		rows <- i
	}
	close(rows)

	// rows write disjoint slices of Heights
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range rows {
				sampleRow(m.Source, g, i, scale)
			}
		}()
	}
	wg.Wait()
}

func sampleRow(src noise.Source, g *HeightGrid, i int, scale float64) {
	row := g.Row(i)
	y := float64(i) * g.Step * scale
	for j := range row {
		row[j] = float32(src.Sample(float64(j)*g.Step*scale, y))
	}
}

// BuildMesh emits two triangles per cell:
// A = (j,i) (j+1,i) (j+1,i+1), B = (j,i) (j+1,i+1) (j,i+1).
// The winding decides front faces in the renderer and must not change.
func BuildMesh(g *HeightGrid) *MeshBuffer {
	cells := (g.Size - 1) * (g.Size - 1)
	pos := make([]float32, 0, cells*VerticesPerCell*FloatsPerVertex)

	emit := func(i, j int) {
		pos = append(pos, g.WorldX(j), g.At(i, j), g.WorldX(i))
	}

	for i := 0; i < g.Size-1; i++ {
		for j := 0; j < g.Size-1; j++ {
			emit(i, j)
			emit(i, j+1)
			emit(i+1, j+1)

			emit(i, j)
			emit(i+1, j+1)
			emit(i+1, j)
		}
	}
	return &MeshBuffer{Positions: pos}
}
