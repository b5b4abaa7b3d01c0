package terrain

import (
	"fmt"
	"slices"
	"sync"

	"terrain-viewer/internal/config"
	"terrain-viewer/internal/heightmap"
	"terrain-viewer/internal/profiling"
)

// Snapshot is an immutable view of one generated terrain.
type Snapshot struct {
	Seed     int32
	Version  uint64
	Settings config.TerrainSettings
	Grid     *heightmap.HeightGrid
	Mesh     *heightmap.MeshBuffer
}

// Ready reports whether the snapshot holds a generated pair.
func (s Snapshot) Ready() bool {
	return s.Grid != nil && s.Mesh != nil
}

// Terrain owns the current grid and mesh and swaps them together on regeneration.
type Terrain struct {
	mu       sync.RWMutex
	settings config.TerrainSettings
	current  Snapshot

	subMu       sync.Mutex
	subscribers []func(Snapshot)
}

// New creates an empty terrain; call Regenerate to build the first mesh.
func New(s config.TerrainSettings) *Terrain {
	return &Terrain{settings: s}
}

// Subscribe registers fn to be called after every successful regeneration.
func (t *Terrain) Subscribe(fn func(Snapshot)) {
	t.subMu.Lock()
	defer t.subMu.Unlock()
	t.subscribers = append(t.subscribers, fn)
}

// Current returns the latest snapshot.
func (t *Terrain) Current() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}

// Settings returns the generation settings.
func (t *Terrain) Settings() config.TerrainSettings {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.settings
}

// SetSettings replaces the generation settings used by the next Regenerate.
func (t *Terrain) SetSettings(s config.TerrainSettings) {
	t.mu.Lock()
	t.settings = s
	t.mu.Unlock()
}

// Regenerate builds a new grid and mesh for seed. On error the previous pair stays current.
func (t *Terrain) Regenerate(seed int32) error {
	defer profiling.Track("terrain.Regenerate")()

	s := t.Settings()
	src, err := s.Source(seed)
	if err != nil {
		return fmt.Errorf("terrain source: %w", err)
	}
	m := heightmap.Mesher{Source: src, Workers: s.Workers}
	grid, mesh, err := m.Generate(heightmap.Params{
		Size:       s.Size,
		NoiseScale: s.NoiseScale,
		Extent:     s.Extent,
	})
	if err != nil {
		return fmt.Errorf("regenerate seed %d: %w", seed, err)
	}

	t.mu.Lock()
	snap := Snapshot{
		Seed:     seed,
		Version:  t.current.Version + 1,
		Settings: s,
		Grid:     grid,
		Mesh:     mesh,
	}
	t.current = snap
	t.mu.Unlock()

	t.subMu.Lock()
	subs := slices.Clone(t.subscribers)
	t.subMu.Unlock()
	for _, fn := range subs {
		fn(snap)
	}
	return nil
}
