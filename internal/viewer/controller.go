package viewer

import (
	"terrain-viewer/internal/config"
	"terrain-viewer/internal/graphics"
	"terrain-viewer/internal/input"
	"terrain-viewer/internal/terrain"
)

// Actions is the part of the input manager the controller reads
type Actions interface {
	JustPressed(action input.Action) bool
	Movement() input.Movement
}

// Effects reports what an update changed outside the viewer state
type Effects struct {
	Quit            bool
	CursorChanged   bool
	ToggleProfiling bool
	Regenerated     bool
	// Err is the last regeneration failure; the previous terrain stays current
	Err error
}

// Controller applies input actions to the camera, runtime settings and terrain.
// It never touches the window.
type Controller struct {
	Runtime *config.Runtime
	Terrain *terrain.Terrain
	Camera  *graphics.Camera
}

// Update handles one frame of input
func (c *Controller) Update(in Actions, dt float64) Effects {
	var fx Effects

	if m := in.Movement(); !m.Empty() {
		c.Camera.Move(m, float32(dt))
	}

	switch {
	case in.JustPressed(input.ActionPolygonFill):
		c.Runtime.SetPolygonMode(config.PolygonFill)
	case in.JustPressed(input.ActionPolygonLine):
		c.Runtime.SetPolygonMode(config.PolygonLine)
	case in.JustPressed(input.ActionPolygonPoint):
		c.Runtime.SetPolygonMode(config.PolygonPoint)
	}

	if in.JustPressed(input.ActionToggleFreeCamera) {
		c.Runtime.ToggleFreeCamera()
		fx.CursorChanged = true
	}
	if in.JustPressed(input.ActionToggleOverlay) {
		c.Runtime.ToggleOverlay()
	}
	if in.JustPressed(input.ActionToggleProfiling) {
		fx.ToggleProfiling = true
	}

	regenerate := in.JustPressed(input.ActionRegenerate)
	if in.JustPressed(input.ActionSeedUp) {
		prev := c.Runtime.Seed()
		regenerate = c.Runtime.AddSeed(1) != prev || regenerate
	}
	if in.JustPressed(input.ActionSeedDown) {
		prev := c.Runtime.Seed()
		regenerate = c.Runtime.AddSeed(-1) != prev || regenerate
	}
	if regenerate {
		if err := c.Terrain.Regenerate(c.Runtime.Seed()); err != nil {
			fx.Err = err
		} else {
			fx.Regenerated = true
		}
	}

	if in.JustPressed(input.ActionQuit) {
		fx.Quit = true
	}
	return fx
}

// MouseLook turns absolute cursor positions into look deltas
type MouseLook struct {
	lastX, lastY float64
	primed       bool
}

// Reset forgets the last position so the next sample produces no jump
func (m *MouseLook) Reset() {
	m.primed = false
}

// Delta returns the screen-space offset since the previous position
func (m *MouseLook) Delta(x, y float64) (float32, float32) {
	if !m.primed {
		m.lastX, m.lastY = x, y
		m.primed = true
		return 0, 0
	}
	dx := float32(x - m.lastX)
	dy := float32(y - m.lastY)
	m.lastX, m.lastY = x, y
	return dx, dy
}
