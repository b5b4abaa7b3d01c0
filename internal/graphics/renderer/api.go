package renderer

import (
	"terrain-viewer/internal/config"
	"terrain-viewer/internal/graphics"
	"terrain-viewer/internal/terrain"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Camera  *graphics.Camera
	Terrain terrain.Snapshot
	Runtime *config.Runtime
	DT      float64
	View    mgl32.Mat4
	Proj    mgl32.Mat4
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
