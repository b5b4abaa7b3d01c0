package viewer

import (
	"fmt"
	"log"
	"time"

	"terrain-viewer/internal/config"
	"terrain-viewer/internal/graphics"
	"terrain-viewer/internal/graphics/renderables/hud"
	"terrain-viewer/internal/graphics/renderables/skybox"
	terrainrenderable "terrain-viewer/internal/graphics/renderables/terrain"
	"terrain-viewer/internal/graphics/renderer"
	"terrain-viewer/internal/input"
	"terrain-viewer/internal/profiling"
	"terrain-viewer/internal/terrain"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const slowFrame = 16 * time.Millisecond

// App owns the window loop: input, camera, regeneration, rendering and pacing
type App struct {
	window       *glfw.Window
	inputManager *input.InputManager

	runtime    *config.Runtime
	terrain    *terrain.Terrain
	camera     *graphics.Camera
	controller *Controller
	mouse      MouseLook

	renderer    *renderer.Renderer
	hudRenderer *hud.HUD

	fpsLimiter *FPSLimiter
	lastTime   time.Time
}

// NewApp generates the first terrain and initialises every renderable.
// It must run on the thread that owns the GL context.
func NewApp(window *glfw.Window, im *input.InputManager, s config.Settings) (*App, error) {
	rt := config.NewRuntime(s)
	tr := terrain.New(s.Terrain)

	start := time.Now()
	if err := tr.Regenerate(rt.Seed()); err != nil {
		return nil, err
	}
	log.Printf("Generated %dx%d terrain (seed %d) in %v", s.Terrain.Size, s.Terrain.Size, rt.Seed(), time.Since(start))

	width, height := window.GetSize()
	camera := graphics.NewCamera(s.Camera, width, height)

	hudRenderer := hud.NewHUD(width, height)
	hudRenderer.ProfilingSetGenerateDuration(time.Since(start))
	tr.Subscribe(func(snap terrain.Snapshot) {
		log.Printf("Terrain regenerated: seed %d, %d triangles", snap.Seed, snap.Mesh.TriangleCount())
	})

	r, err := renderer.NewRenderer(camera,
		terrainrenderable.NewTerrain(),
		skybox.NewSkybox(s.Skybox),
		hudRenderer,
	)
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}

	return &App{
		window:       window,
		inputManager: im,
		runtime:      rt,
		terrain:      tr,
		camera:       camera,
		controller:   &Controller{Runtime: rt, Terrain: tr, Camera: camera},
		renderer:     r,
		hudRenderer:  hudRenderer,
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     time.Now(),
	}, nil
}

// Run ticks until the window is closed
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()
	dt := startTick.Sub(a.lastTime).Seconds()
	a.lastTime = startTick

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	a.update(dt)

	renderStart := time.Now()
	a.renderer.Render(a.terrain.Current(), a.runtime, dt)
	a.hudRenderer.ProfilingSetRenderDuration(time.Since(renderStart))

	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	// Check if frame took too long
	processingDuration := time.Since(startTick)
	if processingDuration > slowFrame {
		log.Printf("Slow frame: %v. Top tasks: %s", processingDuration, profiling.TopN(5))
	}
	a.hudRenderer.ProfilingSetLastTotalFrameDuration(processingDuration)

	a.inputManager.PostUpdate() // Clear "JustPressed" flags

	a.fpsLimiter.Wait(a.runtime.FPSLimit())
}

func (a *App) update(dt float64) {
	defer profiling.Track("viewer.Update")()

	genStart := time.Now()
	fx := a.controller.Update(a.inputManager, dt)
	if fx.Regenerated {
		a.hudRenderer.ProfilingSetGenerateDuration(time.Since(genStart))
	}
	if fx.Err != nil {
		log.Printf("Regeneration failed, keeping previous terrain: %v", fx.Err)
	}
	if fx.CursorChanged {
		a.applyCursorMode()
	}
	if fx.ToggleProfiling {
		a.hudRenderer.ToggleProfiling()
	}
	if fx.Quit {
		a.window.SetShouldClose(true)
	}
}

func (a *App) applyCursorMode() {
	if a.runtime.FreeCamera() {
		a.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		a.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
	a.mouse.Reset()
}

// HandleCursor turns cursor movement into camera look while the free camera is on
func (a *App) HandleCursor(x, y float64) {
	dx, dy := a.mouse.Delta(x, y)
	if a.runtime.FreeCamera() {
		a.camera.Look(dx, dy)
	}
}

// HandleScroll zooms the camera
func (a *App) HandleScroll(yoff float64) {
	a.camera.Zoom(float32(yoff))
}

// Resize updates the viewport of every renderable
func (a *App) Resize(width, height int) {
	a.renderer.UpdateViewport(width, height)
}

// RefreshRender repaints during window resizes
func (a *App) RefreshRender() {
	a.renderer.Render(a.terrain.Current(), a.runtime, 0.016)
	a.window.SwapBuffers()
}

// Cleanup releases GL resources
func (a *App) Cleanup() {
	a.renderer.Dispose()
	graphics.ReleaseCubemaps()
}
