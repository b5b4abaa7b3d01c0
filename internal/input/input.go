package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical viewer action, not a physical key
type Action int

// Action constants using iota
const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionRegenerate
	ActionSeedUp
	ActionSeedDown
	ActionPolygonFill
	ActionPolygonLine
	ActionPolygonPoint
	ActionToggleFreeCamera
	ActionToggleOverlay
	ActionToggleProfiling
	ActionQuit
	ActionCount // Sentinel value for array sizing
)

// movementActions maps each camera direction to the action that drives it
var movementActions = [DirectionCount]Action{
	DirForward:  ActionMoveForward,
	DirBackward: ActionMoveBackward,
	DirLeft:     ActionMoveLeft,
	DirRight:    ActionMoveRight,
	DirUp:       ActionMoveUp,
	DirDown:     ActionMoveDown,
}

// InputManager maps physical keys to logical actions and tracks their state
type InputManager struct {
	mu sync.RWMutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]Action

	currentState [ActionCount]bool

	// Just pressed/released flags (reset each frame)
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
}

// NewInputManager creates a new InputManager with default key bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions: make(map[glfw.Key][]Action),
	}

	im.BindKey(glfw.KeyW, ActionMoveForward)
	im.BindKey(glfw.KeyZ, ActionMoveForward) // AZERTY
	im.BindKey(glfw.KeyS, ActionMoveBackward)
	im.BindKey(glfw.KeyA, ActionMoveLeft)
	im.BindKey(glfw.KeyQ, ActionMoveLeft) // AZERTY
	im.BindKey(glfw.KeyD, ActionMoveRight)
	im.BindKey(glfw.KeySpace, ActionMoveUp)
	im.BindKey(glfw.KeyLeftShift, ActionMoveDown)

	im.BindKey(glfw.KeyR, ActionRegenerate)
	im.BindKey(glfw.KeyRightBracket, ActionSeedUp)
	im.BindKey(glfw.KeyLeftBracket, ActionSeedDown)

	im.BindKey(glfw.KeyF1, ActionPolygonFill)
	im.BindKey(glfw.KeyF2, ActionPolygonLine)
	im.BindKey(glfw.KeyF3, ActionPolygonPoint)
	im.BindKey(glfw.KeyF4, ActionToggleOverlay)
	im.BindKey(glfw.KeyF5, ActionToggleFreeCamera)
	im.BindKey(glfw.KeyF6, ActionToggleProfiling)
	im.BindKey(glfw.KeyEscape, ActionQuit)

	return im
}

// BindKey binds a physical key to a logical action
// Multiple keys can be bound to the same action (e.g., WASD and ZQSD)
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (im *InputManager) UnbindKey(key glfw.Key) {
	im.mu.Lock()
	defer im.mu.Unlock()

	delete(im.keyToActions, key)
}

// HandleKeyEvent processes a key event and updates internal state
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	actions, exists := im.keyToActions[key]
	if !exists {
		return
	}

	isPressed := action == glfw.Press || action == glfw.Repeat
	for _, act := range actions {
		// Detect edges immediately when event arrives
		if isPressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		if !isPressed && im.currentState[act] {
			im.justReleased[act] = true
		}
		im.currentState[act] = isPressed
	}
}

// SetKeyCallback installs the GLFW key callback for this input manager
func (im *InputManager) SetKeyCallback(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
}

// PostUpdate must be called at the end of each frame to reset edge flags
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()

	for i := Action(0); i < ActionCount; i++ {
		im.justPressed[i] = false
		im.justReleased[i] = false
	}
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justPressed[action]
}

// JustReleased returns true only if the action was released in the current frame
func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justReleased[action]
}

// Movement returns the set of camera directions currently held
func (im *InputManager) Movement() Movement {
	im.mu.RLock()
	defer im.mu.RUnlock()

	var m Movement
	for d, act := range movementActions {
		if im.currentState[act] {
			m = m.With(Direction(d))
		}
	}
	return m
}
