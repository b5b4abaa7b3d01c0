package hud

import (
	"fmt"
	"time"

	"terrain-viewer/internal/config"
	"terrain-viewer/internal/graphics"
	renderer "terrain-viewer/internal/graphics/renderer"
	"terrain-viewer/internal/profiling"
	"terrain-viewer/internal/terrain"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	fontPixels = 24
	lineStep   = float32(20)
)

var (
	textColor      = mgl32.Vec3{1.0, 1.0, 1.0}
	controlsColor  = mgl32.Vec3{0.85, 0.85, 0.85}
	profilingColor = mgl32.Vec3{1.0, 0.9, 0.5}
)

// Controls lists the key bindings shown under the terrain info
var Controls = []string{
	"WASD/ZQSD move, Space/Shift up/down, mouse look, wheel zoom",
	"R regenerate, [ ] seed -/+",
	"F1 fill, F2 wireframe, F3 points",
	"F4 overlay, F5 free camera, F6 profiling, Esc quit",
}

// HUD draws the text overlay: FPS, terrain parameters and controls
type HUD struct {
	fontRenderer  *graphics.FontRenderer
	width, height int
	showProfiling bool

	// FPS tracking
	frames       int
	lastFPSCheck time.Time
	currentFPS   int

	stats FrameStats
}

// NewHUD creates a new HUD renderable for a viewport of width x height
func NewHUD(width, height int) *HUD {
	return &HUD{
		width:        width,
		height:       height,
		lastFPSCheck: time.Now(),
	}
}

// Init bakes the font atlas and creates the font renderer
func (h *HUD) Init() error {
	atlas, err := graphics.BakeFont(nil, fontPixels)
	if err != nil {
		return err
	}
	fr, err := graphics.NewFontRenderer(atlas.Upload(), h.width, h.height)
	if err != nil {
		return err
	}
	h.fontRenderer = fr
	return nil
}

// Render renders the HUD elements
func (h *HUD) Render(ctx renderer.RenderContext) {
	// Update FPS tracking
	h.frames++
	if time.Since(h.lastFPSCheck) >= time.Second {
		h.currentFPS = h.frames
		h.lastFPSCheck = time.Now()
		h.frames = 0
	}

	if ctx.Runtime != nil && !ctx.Runtime.Overlay() {
		return
	}
	defer profiling.Track("renderer.hud")()

	lines := InfoLines(h.currentFPS, ctx.Terrain, ctx.Runtime)
	if ctx.Camera != nil {
		p := ctx.Camera.Position
		lines = append(lines, fmt.Sprintf("Camera: %.2f, %.2f, %.2f  FOV %.0f", p[0], p[1], p[2], ctx.Camera.FOV))
	}
	y := float32(28)
	h.fontRenderer.RenderLines(lines, 10, y, lineStep, 0.75, textColor)
	y += lineStep * float32(len(lines))

	h.fontRenderer.RenderLines(Controls, 10, y+lineStep/2, lineStep, 0.6, controlsColor)
	y += lineStep/2 + lineStep*float32(len(Controls))

	if h.showProfiling {
		h.renderProfilingInfo(y + lineStep/2)
	}
}

// InfoLines describes the current terrain and viewer state
func InfoLines(fps int, snap terrain.Snapshot, rt *config.Runtime) []string {
	lines := []string{fmt.Sprintf("FPS: %d", fps)}
	if !snap.Ready() {
		lines = append(lines, "Terrain: not generated")
		return lines
	}

	s := snap.Settings
	kind := s.Noise.Kind
	if kind == "" {
		kind = "gradient"
	}
	if s.Noise.Octaves > 1 {
		kind = fmt.Sprintf("%s x%d", kind, s.Noise.Octaves)
	}
	lines = append(lines,
		fmt.Sprintf("Seed: %d  Size: %d  Noise: %s", snap.Seed, snap.Grid.Size, kind),
	)

	lo, hi := snap.Grid.MinMax()
	lines = append(lines,
		fmt.Sprintf("Triangles: %d  Height: %.3f .. %.3f", snap.Mesh.TriangleCount(), lo, hi),
	)

	if rt != nil {
		camera := "locked"
		if rt.FreeCamera() {
			camera = "free"
		}
		lines = append(lines, fmt.Sprintf("Mode: %s  Camera: %s", rt.PolygonMode(), camera))
	}
	return lines
}

// SetViewport updates the text projection
func (h *HUD) SetViewport(width, height int) {
	h.width, h.height = width, height
	if h.fontRenderer != nil {
		h.fontRenderer.SetViewport(width, height)
	}
}

// Dispose cleans up resources
func (h *HUD) Dispose() {
	if h.fontRenderer != nil {
		h.fontRenderer.Dispose()
		h.fontRenderer = nil
	}
}
