package terrain

import (
	"terrain-viewer/internal/config"
	"terrain-viewer/internal/graphics"
	renderer "terrain-viewer/internal/graphics/renderer"
	"terrain-viewer/internal/heightmap"
	"terrain-viewer/internal/profiling"
	terrainstate "terrain-viewer/internal/terrain"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	lowColor  = mgl32.Vec3{0.20, 0.45, 0.20}
	midColor  = mgl32.Vec3{0.55, 0.50, 0.35}
	highColor = mgl32.Vec3{0.95, 0.95, 0.95}
	lightDir  = mgl32.Vec3{-0.4, -1.0, -0.3}
)

// Terrain draws the heightmap mesh. The buffer is re-uploaded whenever a
// newer snapshot reaches Render.
type Terrain struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32

	uploaded    uint64 // snapshot version in the VBO
	vertexCount int32
	minHeight   float32
	maxHeight   float32
}

// NewTerrain creates a new terrain renderable
func NewTerrain() *Terrain {
	return &Terrain{}
}

// Init compiles the terrain shader and allocates the vertex buffer
func (t *Terrain) Init() error {
	var err error
	t.shader, err = graphics.NewShader("terrain")
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &t.vao)
	gl.BindVertexArray(t.vao)
	gl.GenBuffers(1, &t.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, heightmap.FloatsPerVertex, gl.FLOAT, false, heightmap.FloatsPerVertex*4, 0)
	gl.BindVertexArray(0)
	return nil
}

// Render uploads a newer mesh if needed and draws it
func (t *Terrain) Render(ctx renderer.RenderContext) {
	snap := ctx.Terrain
	if !snap.Ready() {
		return
	}
	if snap.Version != t.uploaded {
		func() {
			defer profiling.Track("renderer.terrain.upload")()
			t.upload(snap)
		}()
	}
	if t.vertexCount == 0 {
		return
	}

	defer profiling.Track("renderer.terrain.draw")()

	mode := config.PolygonFill
	if ctx.Runtime != nil {
		mode = ctx.Runtime.PolygonMode()
	}

	t.shader.Use()
	t.shader.SetMatrix4("model", ModelMatrix(snap.Settings.HeightScale))
	t.shader.SetMatrix4("view", ctx.View)
	t.shader.SetMatrix4("proj", ctx.Proj)
	t.shader.SetFloat("minHeight", t.minHeight)
	t.shader.SetFloat("maxHeight", t.maxHeight)
	t.shader.SetVector3("lightDir", lightDir)
	t.shader.SetVector3("lowColor", lowColor)
	t.shader.SetVector3("midColor", midColor)
	t.shader.SetVector3("highColor", highColor)

	// triangles are clockwise seen from above
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CW)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PolygonMode(gl.FRONT_AND_BACK, GLPolygonMode(mode))
	if mode != config.PolygonFill {
		// wireframe and points should stay visible from below
		gl.Disable(gl.CULL_FACE)
	}

	gl.BindVertexArray(t.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, t.vertexCount)
	gl.BindVertexArray(0)

	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.FrontFace(gl.CCW)
	gl.Disable(gl.CULL_FACE)
}

func (t *Terrain) upload(snap terrainstate.Snapshot) {
	pos := snap.Mesh.Positions
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vbo)
	if len(pos) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(pos)*4, gl.Ptr(pos), gl.STATIC_DRAW)
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	t.vertexCount = int32(snap.Mesh.VertexCount())
	t.minHeight, t.maxHeight = snap.Grid.MinMax()
	t.uploaded = snap.Version
}

// ModelMatrix exaggerates heights vertically. Zero keeps the mesh as generated.
func ModelMatrix(heightScale float32) mgl32.Mat4 {
	if heightScale == 0 {
		heightScale = 1
	}
	return mgl32.Scale3D(1, heightScale, 1)
}

// GLPolygonMode maps a polygon mode to its glPolygonMode value
func GLPolygonMode(m config.PolygonMode) uint32 {
	switch m {
	case config.PolygonLine:
		return gl.LINE
	case config.PolygonPoint:
		return gl.POINT
	default:
		return gl.FILL
	}
}

// SetViewport is a no-op; the terrain only depends on the camera matrices
func (t *Terrain) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (t *Terrain) Dispose() {
	if t.vao != 0 {
		gl.DeleteVertexArrays(1, &t.vao)
	}
	if t.vbo != 0 {
		gl.DeleteBuffers(1, &t.vbo)
	}
	if t.shader != nil {
		t.shader.Delete()
	}
}
