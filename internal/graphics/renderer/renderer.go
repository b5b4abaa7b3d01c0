package renderer

import (
	"fmt"

	"terrain-viewer/internal/config"
	"terrain-viewer/internal/graphics"
	"terrain-viewer/internal/profiling"
	"terrain-viewer/internal/terrain"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
}

// NewRenderer creates a new renderer with the given renderables.
// Renderables are drawn in the order given.
func NewRenderer(camera *graphics.Camera, rs ...Renderable) (*Renderer, error) {
	// Configure OpenGL
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	renderer := &Renderer{
		renderables: rs,
		camera:      camera,
	}

	// Initialize all renderables
	for i, r := range rs {
		if err := r.Init(); err != nil {
			// Dispose the ones that did initialise
			for k := i - 1; k >= 0; k-- {
				rs[k].Dispose()
			}
			return nil, fmt.Errorf("init renderable %T: %w", r, err)
		}
	}

	return renderer, nil
}

// Render draws one frame of the given terrain snapshot
func (r *Renderer) Render(snap terrain.Snapshot, rt *config.Runtime, dt float64) {
	defer profiling.Track("renderer.Render")()

	// Clear the screen
	gl.ClearColor(0.53, 0.81, 0.92, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Camera:  r.camera,
		Terrain: snap,
		Runtime: rt,
		DT:      dt,
		View:    r.camera.ViewMatrix(),
		Proj:    r.camera.ProjectionMatrix(),
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// Camera returns the camera instance
func (r *Renderer) Camera() *graphics.Camera {
	return r.camera
}

// UpdateViewport updates the camera and every renderable for a new window size
func (r *Renderer) UpdateViewport(width, height int) {
	r.camera.SetViewport(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
