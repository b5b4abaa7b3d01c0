package graphics

import (
	"testing"

	"terrain-viewer/internal/config"
	"terrain-viewer/internal/input"

	"github.com/go-gl/mathgl/mgl32"
)

func newTestCamera() *Camera {
	s := config.Default().Camera
	s.Position = [3]float32{0, 0, 0}
	s.Yaw = -90
	s.Pitch = 0
	return NewCamera(s, 800, 600)
}

func TestCameraDefaultFacesNegativeZ(t *testing.T) {
	c := newTestCamera()
	if !c.Front().ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-5) {
		t.Errorf("front = %v, want (0, 0, -1)", c.Front())
	}
	if !c.Right().ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Errorf("right = %v, want (1, 0, 0)", c.Right())
	}
	if !c.Up().ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, 1e-5) {
		t.Errorf("up = %v, want (0, 1, 0)", c.Up())
	}
}

func TestCameraPitchClamp(t *testing.T) {
	c := newTestCamera()
	c.Look(0, -100000)
	if c.Pitch != PitchLimit {
		t.Errorf("pitch = %f, want %f", c.Pitch, float32(PitchLimit))
	}
	c.Look(0, 100000)
	if c.Pitch != -PitchLimit {
		t.Errorf("pitch = %f, want %f", c.Pitch, float32(-PitchLimit))
	}
}

func TestCameraZoomClamp(t *testing.T) {
	c := newTestCamera()
	c.Zoom(1000)
	if c.FOV != MinFOV {
		t.Errorf("fov = %f, want %f", c.FOV, float32(MinFOV))
	}
	c.Zoom(-1000)
	if c.FOV != MaxFOV {
		t.Errorf("fov = %f, want %f", c.FOV, float32(MaxFOV))
	}
}

func TestCameraMove(t *testing.T) {
	c := newTestCamera()
	var m input.Movement
	c.Move(m.With(input.DirForward), 1)
	if !c.Position.ApproxEqualThreshold(mgl32.Vec3{0, 0, -c.Speed}, 1e-4) {
		t.Errorf("after forward: %v", c.Position)
	}

	// opposite directions cancel
	c.Move(m.With(input.DirLeft).With(input.DirRight).With(input.DirUp), 0.5)
	want := mgl32.Vec3{0, c.Speed * 0.5, -c.Speed}
	if !c.Position.ApproxEqualThreshold(want, 1e-4) {
		t.Errorf("after left+right+up: %v, want %v", c.Position, want)
	}
}

func TestCameraViewMatrixMapsPositionToOrigin(t *testing.T) {
	c := newTestCamera()
	c.Position = mgl32.Vec3{3, 4, 5}
	c.Look(37, -12)

	p := c.ViewMatrix().Mul4x1(c.Position.Vec4(1))
	if !p.Vec3().ApproxEqualThreshold(mgl32.Vec3{}, 1e-4) {
		t.Errorf("camera position in view space = %v, want origin", p)
	}

	ahead := c.Position.Add(c.Front().Mul(2))
	q := c.ViewMatrix().Mul4x1(ahead.Vec4(1))
	if q.Z() >= 0 {
		t.Errorf("point ahead of camera has view z = %f, want negative", q.Z())
	}
}

func TestCameraSetViewportIgnoresZero(t *testing.T) {
	c := newTestCamera()
	c.SetViewport(1000, 500)
	if c.AspectRatio != 2 {
		t.Errorf("aspect = %f, want 2", c.AspectRatio)
	}
	c.SetViewport(1000, 0)
	if c.AspectRatio != 2 {
		t.Errorf("zero height changed aspect to %f", c.AspectRatio)
	}
}
