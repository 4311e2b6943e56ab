// Package controls maps held keys and mouse motion onto scene and camera state.
package controls

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/classroom3d/internal/engine/camera"
	"github.com/Faultbox/classroom3d/internal/scene"
)

// Key identifies a bound key independent of the windowing layer.
type Key int

const (
	KeyEscape Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyR
	KeyX
	KeyY
	KeyZ
	KeyI
	KeyK
	KeyL
	KeyJ
	KeyO
	KeyP
	KeyC
	KeyV
	KeyB
	KeyN
	KeyM
	KeyU
	KeyH
	KeyF
	KeyT
	KeyG
	KeyQ
	KeyE
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyCount
)

// KeyState reports which keys are held this frame.
type KeyState interface {
	Down(k Key) bool
}

// Per-frame steps. Rotation, translation and scale step once per frame a key
// is held; eye and look-at movement is scaled by frame time.
const (
	RotateStep    = 1.0
	TranslateStep = 0.01
	ScaleStep     = 0.01
	EyeSpeed      = 2.5
)

// Mode selects which camera produces the view matrix.
type Mode int

const (
	ModeFly Mode = iota
	ModeLookAt
)

func (m Mode) String() string {
	if m == ModeLookAt {
		return "lookat"
	}
	return "fly"
}

// Controller owns the input-driven state of one frame.
type Controller struct {
	Scene  *scene.InputState
	Fly    *camera.Fly
	LookAt *camera.LookAt
	Mode   Mode
}

// New creates a controller over the given state.
func New(st *scene.InputState, fly *camera.Fly, lookAt *camera.LookAt, mode Mode) *Controller {
	return &Controller{Scene: st, Fly: fly, LookAt: lookAt, Mode: mode}
}

// Apply processes held keys for one frame of dt seconds.
// Returns true when the close key is held.
func (c *Controller) Apply(keys KeyState, dt float32) bool {
	if keys.Down(KeyEscape) {
		return true
	}

	c.applyFly(keys, dt)
	c.applyModel(keys)
	c.applyLookAt(keys, dt)
	return false
}

func (c *Controller) applyFly(keys KeyState, dt float32) {
	if keys.Down(KeyW) {
		c.Fly.ProcessKeyboard(camera.Forward, dt)
	}
	if keys.Down(KeyS) {
		c.Fly.ProcessKeyboard(camera.Backward, dt)
	}
	if keys.Down(KeyA) {
		c.Fly.ProcessKeyboard(camera.Left, dt)
	}
	if keys.Down(KeyD) {
		c.Fly.ProcessKeyboard(camera.Right, dt)
	}
}

func (c *Controller) applyModel(keys KeyState) {
	st := c.Scene

	// R reads the axis selected on a previous frame, before X/Y/Z update it.
	if keys.Down(KeyR) {
		st.RotateActive(RotateStep)
	}

	steps := []struct {
		key   Key
		value *float32
		delta float32
	}{
		{KeyI, &st.Translate[1], TranslateStep},
		{KeyK, &st.Translate[1], -TranslateStep},
		{KeyL, &st.Translate[0], TranslateStep},
		{KeyJ, &st.Translate[0], -TranslateStep},
		{KeyO, &st.Translate[2], TranslateStep},
		{KeyP, &st.Translate[2], -TranslateStep},
		{KeyC, &st.Scale[0], ScaleStep},
		{KeyV, &st.Scale[0], -ScaleStep},
		{KeyB, &st.Scale[1], ScaleStep},
		{KeyN, &st.Scale[1], -ScaleStep},
		{KeyM, &st.Scale[2], ScaleStep},
		{KeyU, &st.Scale[2], -ScaleStep},
	}
	for _, s := range steps {
		if keys.Down(s.key) {
			*s.value += s.delta
		}
	}

	if keys.Down(KeyX) {
		st.SelectAxis(scene.AxisX, RotateStep)
	}
	if keys.Down(KeyY) {
		st.SelectAxis(scene.AxisY, RotateStep)
	}
	if keys.Down(KeyZ) {
		st.SelectAxis(scene.AxisZ, RotateStep)
	}
}

func (c *Controller) applyLookAt(keys KeyState, dt float32) {
	step := EyeSpeed * dt

	eye := c.LookAt.Eye
	eyeKeys := []struct {
		key   Key
		axis  int
		delta float32
	}{
		{KeyH, 0, step},
		{KeyF, 0, -step},
		{KeyT, 2, step},
		{KeyG, 2, -step},
		{KeyQ, 1, step},
		{KeyE, 1, -step},
	}
	for _, k := range eyeKeys {
		if keys.Down(k.key) {
			eye[k.axis] += k.delta
			c.LookAt.ChangeEye(eye[0], eye[1], eye[2])
		}
	}

	target := c.LookAt.Target
	targetKeys := []struct {
		key   Key
		axis  int
		delta float32
	}{
		{Key1, 0, step},
		{Key2, 0, -step},
		{Key3, 1, step},
		{Key4, 1, -step},
		{Key5, 2, step},
		{Key6, 2, -step},
	}
	for _, k := range targetKeys {
		if keys.Down(k.key) {
			target[k.axis] += k.delta
			c.LookAt.ChangeLookAt(target[0], target[1], target[2])
		}
	}

	if keys.Down(Key7) {
		c.LookAt.ChangeViewUpVector(mgl32.Vec3{1, 0, 0})
	}
	if keys.Down(Key8) {
		c.LookAt.ChangeViewUpVector(mgl32.Vec3{0, 1, 0})
	}
	if keys.Down(Key9) {
		c.LookAt.ChangeViewUpVector(mgl32.Vec3{0, 0, 1})
	}
}

// MouseMove turns the fly camera; dy is positive when the mouse moves up.
func (c *Controller) MouseMove(dx, dy float32) {
	c.Fly.ProcessMouseMovement(dx, dy)
}

// Scroll zooms the fly camera.
func (c *Controller) Scroll(dy float32) {
	c.Fly.ProcessMouseScroll(dy)
}

// ToggleMode switches between the fly and look-at cameras.
func (c *Controller) ToggleMode() Mode {
	if c.Mode == ModeFly {
		c.Mode = ModeLookAt
	} else {
		c.Mode = ModeFly
	}
	return c.Mode
}

// Active returns the camera selected by Mode.
func (c *Controller) Active() camera.Viewer {
	if c.Mode == ModeLookAt {
		return c.LookAt
	}
	return c.Fly
}

// View returns the view matrix of the active camera.
func (c *Controller) View() mgl32.Mat4 {
	return c.Active().ViewMatrix()
}

// FieldOfView returns the vertical field of view in degrees.
// Both cameras share the fly camera's zoom.
func (c *Controller) FieldOfView() float32 {
	return c.Fly.Zoom
}
