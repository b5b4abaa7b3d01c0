package skybox

import (
	"log"

	"terrain-viewer/internal/config"
	"terrain-viewer/internal/graphics"
	renderer "terrain-viewer/internal/graphics/renderer"
	"terrain-viewer/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const gradientFaceSize = 64

var (
	skyTop     = mgl32.Vec3{0.25, 0.45, 0.85}
	skyHorizon = mgl32.Vec3{0.80, 0.88, 0.95}
	skyBottom  = mgl32.Vec3{0.35, 0.38, 0.40}
)

// Vertices are the eight corners of a unit cube around the camera
var Vertices = []float32{
	-1, -1, 1,
	1, -1, 1,
	1, -1, -1,
	-1, -1, -1,
	-1, 1, 1,
	1, 1, 1,
	1, 1, -1,
	-1, 1, -1,
}

// Indices draw the cube from the inside
var Indices = []uint32{
	// right
	1, 2, 6,
	6, 5, 1,
	// left
	0, 4, 7,
	7, 3, 0,
	// top
	4, 5, 6,
	6, 7, 4,
	// bottom
	0, 3, 2,
	2, 1, 0,
	// back
	0, 1, 5,
	5, 4, 0,
	// front
	3, 7, 6,
	6, 2, 3,
}

// Skybox draws a cube map behind everything else
type Skybox struct {
	settings config.SkyboxSettings
	shader   *graphics.Shader
	vao      uint32
	vbo      uint32
	ebo      uint32
	texture  uint32
	// cached textures are owned by the graphics package cache
	owned bool
}

// NewSkybox creates a skybox from settings. An empty Dir uses a generated gradient.
func NewSkybox(s config.SkyboxSettings) *Skybox {
	return &Skybox{settings: s}
}

// Init compiles the shader, uploads the cube and loads the cube map
func (s *Skybox) Init() error {
	var err error
	s.shader, err = graphics.NewShader("skybox")
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.GenBuffers(1, &s.ebo)

	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(Vertices)*4, gl.Ptr(Vertices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, s.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(Indices)*4, gl.Ptr(Indices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.BindVertexArray(0)

	s.texture = s.loadTexture()
	return nil
}

func (s *Skybox) loadTexture() uint32 {
	if s.settings.Dir != "" {
		tex, err := graphics.GetCubemap(s.settings.Dir)
		if err == nil {
			return tex
		}
		log.Printf("skybox: %v, using gradient sky", err)
	}
	s.owned = true
	return graphics.UploadCubemap(graphics.GradientFaces(gradientFaceSize, skyTop, skyHorizon, skyBottom))
}

// Render draws the sky at the far plane
func (s *Skybox) Render(ctx renderer.RenderContext) {
	if !s.settings.Enabled {
		return
	}
	defer profiling.Track("renderer.skybox")()

	gl.DepthFunc(gl.LEQUAL)
	gl.DepthMask(false)

	s.shader.Use()
	s.shader.SetMatrix4("view", StripTranslation(ctx.View))
	s.shader.SetMatrix4("proj", ctx.Proj)
	s.shader.SetInt("skybox", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, s.texture)
	gl.BindVertexArray(s.vao)
	gl.DrawElements(gl.TRIANGLES, int32(len(Indices)), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)

	gl.DepthMask(true)
	gl.DepthFunc(gl.LESS)
}

// StripTranslation keeps only the rotation of a view matrix so the sky follows the camera
func StripTranslation(view mgl32.Mat4) mgl32.Mat4 {
	return view.Mat3().Mat4()
}

// SetViewport is a no-op for the skybox
func (s *Skybox) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (s *Skybox) Dispose() {
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
	}
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
	}
	if s.ebo != 0 {
		gl.DeleteBuffers(1, &s.ebo)
	}
	if s.owned && s.texture != 0 {
		gl.DeleteTextures(1, &s.texture)
	}
	if s.shader != nil {
		s.shader.Delete()
	}
}
