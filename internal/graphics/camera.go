package graphics

import (
	"terrain-viewer/internal/config"
	"terrain-viewer/internal/input"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	PitchLimit = 89.9
	MinFOV     = 1.0
	MaxFOV     = 80.0
)

// Camera is a free-fly camera. Callers own it and pass it where it is needed.
type Camera struct {
	Position mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32 // degrees
	Pitch float32 // degrees

	Speed       float32
	Sensitivity float32

	FOV         float32
	NearPlane   float32
	FarPlane    float32
	AspectRatio float32

	front mgl32.Vec3
	right mgl32.Vec3
	up    mgl32.Vec3
}

// NewCamera builds a camera from settings for a viewport of width x height
func NewCamera(s config.CameraSettings, width, height int) *Camera {
	c := &Camera{
		Position:    mgl32.Vec3(s.Position),
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Yaw:         s.Yaw,
		Pitch:       s.Pitch,
		Speed:       s.Speed,
		Sensitivity: s.Sensitivity,
		FOV:         s.FOV,
		NearPlane:   s.Near,
		FarPlane:    s.Far,
	}
	c.SetViewport(width, height)
	c.updateVectors()
	return c
}

// SetViewport updates the aspect ratio; zero-height windows (minimised) are ignored
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

func (c *Camera) Front() mgl32.Vec3 { return c.front }
func (c *Camera) Right() mgl32.Vec3 { return c.right }
func (c *Camera) Up() mgl32.Vec3    { return c.up }

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.front), c.up)
}

func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// Move translates the camera along every held direction for dt seconds
func (c *Camera) Move(m input.Movement, dt float32) {
	if m.Empty() {
		return
	}
	velocity := c.Speed * dt

	if m.Has(input.DirForward) {
		c.Position = c.Position.Add(c.front.Mul(velocity))
	}
	if m.Has(input.DirBackward) {
		c.Position = c.Position.Sub(c.front.Mul(velocity))
	}
	if m.Has(input.DirLeft) {
		c.Position = c.Position.Sub(c.right.Mul(velocity))
	}
	if m.Has(input.DirRight) {
		c.Position = c.Position.Add(c.right.Mul(velocity))
	}
	if m.Has(input.DirUp) {
		c.Position = c.Position.Add(c.up.Mul(velocity))
	}
	if m.Has(input.DirDown) {
		c.Position = c.Position.Sub(c.up.Mul(velocity))
	}
}

// Look applies a mouse offset in pixels; dy grows downwards like window coordinates
func (c *Camera) Look(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch -= dy * c.Sensitivity

	if c.Pitch > PitchLimit {
		c.Pitch = PitchLimit
	}
	if c.Pitch < -PitchLimit {
		c.Pitch = -PitchLimit
	}
	c.updateVectors()
}

// Zoom narrows the field of view for positive scroll offsets
func (c *Camera) Zoom(dy float32) {
	c.FOV -= dy
	if c.FOV < MinFOV {
		c.FOV = MinFOV
	}
	if c.FOV > MaxFOV {
		c.FOV = MaxFOV
	}
}

func (c *Camera) updateVectors() {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	front := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.front = front.Normalize()
	c.right = c.front.Cross(c.WorldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}
