package config

import "sync"

const (
	MinSeed = 0
	MaxSeed = 1000
)

// PolygonMode is how terrain triangles are rasterised.
type PolygonMode int

const (
	PolygonFill PolygonMode = iota
	PolygonLine
	PolygonPoint
)

func (m PolygonMode) String() string {
	switch m {
	case PolygonLine:
		return "line"
	case PolygonPoint:
		return "point"
	default:
		return "fill"
	}
}

// Runtime holds settings the viewer changes while running
type Runtime struct {
	mu          sync.RWMutex
	seed        int32
	polygonMode PolygonMode
	freeCamera  bool
	overlay     bool
	fpsLimit    int
}

// NewRuntime seeds runtime state from loaded settings
func NewRuntime(s Settings) *Runtime {
	r := &Runtime{overlay: true, fpsLimit: s.Window.FPSLimit}
	r.SetSeed(s.Terrain.Seed)
	return r
}

// Seed returns the seed used for the next regeneration
func (r *Runtime) Seed() int32 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.seed
}

// SetSeed sets the seed, clamped to [MinSeed, MaxSeed]
func (r *Runtime) SetSeed(seed int32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if seed < MinSeed {
		seed = MinSeed
	}
	if seed > MaxSeed {
		seed = MaxSeed
	}
	r.seed = seed
}

// AddSeed moves the seed by delta and returns the clamped result
func (r *Runtime) AddSeed(delta int32) int32 {
	r.SetSeed(r.Seed() + delta)
	return r.Seed()
}

func (r *Runtime) PolygonMode() PolygonMode {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.polygonMode
}

func (r *Runtime) SetPolygonMode(m PolygonMode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.polygonMode = m
}

// FreeCamera reports whether mouse look is captured
func (r *Runtime) FreeCamera() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.freeCamera
}

// ToggleFreeCamera flips mouse capture and returns the new state
func (r *Runtime) ToggleFreeCamera() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.freeCamera = !r.freeCamera
	return r.freeCamera
}

func (r *Runtime) Overlay() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.overlay
}

func (r *Runtime) ToggleOverlay() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overlay = !r.overlay
	return r.overlay
}

// FPSLimit returns the frame cap; 0 means uncapped
func (r *Runtime) FPSLimit() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fpsLimit
}

func (r *Runtime) SetFPSLimit(limit int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if limit < 0 {
		limit = 0
	}
	r.fpsLimit = limit
}
