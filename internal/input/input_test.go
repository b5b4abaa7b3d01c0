package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestKeyEdgeDetection(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyR, glfw.Press)
	if !im.JustPressed(ActionRegenerate) || !im.IsActive(ActionRegenerate) {
		t.Fatalf("R press should set JustPressed and IsActive")
	}

	im.PostUpdate()
	if im.JustPressed(ActionRegenerate) {
		t.Errorf("JustPressed should reset after PostUpdate")
	}
	if !im.IsActive(ActionRegenerate) {
		t.Errorf("held key should stay active")
	}

	// repeat while held is not a new press
	im.HandleKeyEvent(glfw.KeyR, glfw.Repeat)
	if im.JustPressed(ActionRegenerate) {
		t.Errorf("repeat should not count as a fresh press")
	}

	im.HandleKeyEvent(glfw.KeyR, glfw.Release)
	if !im.JustReleased(ActionRegenerate) || im.IsActive(ActionRegenerate) {
		t.Errorf("release should set JustReleased and clear IsActive")
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyP, glfw.Press)
	for a := Action(0); a < ActionCount; a++ {
		if im.IsActive(a) {
			t.Errorf("action %d active after unbound key", a)
		}
	}
}

func TestAlternateBindings(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyZ, glfw.Press)
	if !im.IsActive(ActionMoveForward) {
		t.Errorf("Z should move forward")
	}

	im.UnbindKey(glfw.KeyZ)
	im.HandleKeyEvent(glfw.KeyZ, glfw.Release)
	if !im.IsActive(ActionMoveForward) {
		t.Errorf("events on an unbound key must not change state")
	}
}

func TestOutOfRangeAction(t *testing.T) {
	im := NewInputManager()
	im.BindKey(glfw.KeyP, ActionCount)
	im.HandleKeyEvent(glfw.KeyP, glfw.Press)
	if im.IsActive(ActionCount) || im.JustPressed(-1) || im.JustReleased(ActionCount) {
		t.Errorf("out-of-range actions must read as inactive")
	}
}

func TestMovementFromKeys(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	im.HandleKeyEvent(glfw.KeyD, glfw.Press)
	im.HandleKeyEvent(glfw.KeyLeftShift, glfw.Press)

	m := im.Movement()
	for _, d := range []Direction{DirForward, DirRight, DirDown} {
		if !m.Has(d) {
			t.Errorf("movement missing direction %d", d)
		}
	}
	for _, d := range []Direction{DirBackward, DirLeft, DirUp} {
		if m.Has(d) {
			t.Errorf("movement has unexpected direction %d", d)
		}
	}

	im.HandleKeyEvent(glfw.KeyW, glfw.Release)
	if im.Movement().Has(DirForward) {
		t.Errorf("forward should clear after release")
	}
}

func TestMovementBitmask(t *testing.T) {
	var m Movement
	if !m.Empty() {
		t.Fatalf("zero movement should be empty")
	}
	m = m.With(DirUp).With(DirLeft)
	if !m.Has(DirUp) || !m.Has(DirLeft) || m.Has(DirRight) {
		t.Errorf("unexpected bits: %08b", m)
	}
	m = m.Without(DirUp)
	if m.Has(DirUp) || !m.Has(DirLeft) {
		t.Errorf("Without cleared wrong bit: %08b", m)
	}
}
