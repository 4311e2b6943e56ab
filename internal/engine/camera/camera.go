// Package camera provides the two interchangeable view strategies: a yaw/pitch
// fly camera and an eye/look-at/up camera.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Viewer produces a view matrix.
type Viewer interface {
	ViewMatrix() mgl32.Mat4
}

// Direction is a keyboard movement direction for the fly camera.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// Fly camera defaults.
const (
	DefaultYaw         = -90.0
	DefaultPitch       = 0.0
	DefaultSpeed       = 2.5
	DefaultSensitivity = 0.1
	DefaultZoom        = 45.0

	MinZoom  = 1.0
	MaxZoom  = 45.0
	MaxPitch = 89.0
)

// Fly is a first-person camera steered by yaw and pitch (degrees).
type Fly struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32
	Pitch float32

	MovementSpeed    float32
	MouseSensitivity float32
	// Zoom is the vertical field of view in degrees.
	Zoom float32
}

// NewFly creates a fly camera at position with the given orientation.
func NewFly(position mgl32.Vec3, yaw, pitch float32) *Fly {
	c := &Fly{
		Position:         position,
		WorldUp:          mgl32.Vec3{0, 1, 0},
		Yaw:              yaw,
		Pitch:            pitch,
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
		Zoom:             DefaultZoom,
	}
	c.updateVectors()
	return c
}

// ViewMatrix returns the view matrix looking along Front.
func (c *Fly) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProcessKeyboard moves the camera along its own axes for dt seconds.
func (c *Fly) ProcessKeyboard(dir Direction, dt float32) {
	velocity := c.MovementSpeed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	}
}

// ProcessMouseMovement turns the camera by a mouse offset in pixels.
// Pitch is kept within ±MaxPitch so the view never flips.
func (c *Fly) ProcessMouseMovement(dx, dy float32) {
	c.Yaw += dx * c.MouseSensitivity
	c.Pitch += dy * c.MouseSensitivity

	if c.Pitch > MaxPitch {
		c.Pitch = MaxPitch
	}
	if c.Pitch < -MaxPitch {
		c.Pitch = -MaxPitch
	}
	c.updateVectors()
}

// ProcessMouseScroll narrows or widens the field of view.
func (c *Fly) ProcessMouseScroll(dy float32) {
	c.Zoom -= dy
	if c.Zoom < MinZoom {
		c.Zoom = MinZoom
	}
	if c.Zoom > MaxZoom {
		c.Zoom = MaxZoom
	}
}

func (c *Fly) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	front := mgl32.Vec3{
		float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		float32(gomath.Sin(pitch)),
		float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

// LookAt is a camera defined directly by eye, target and up vector.
type LookAt struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3
}

// NewLookAt creates a look-at camera.
func NewLookAt(eye, target, up mgl32.Vec3) *LookAt {
	return &LookAt{Eye: eye, Target: target, Up: up}
}

// ChangeEye moves the eye point.
func (c *LookAt) ChangeEye(x, y, z float32) {
	c.Eye = mgl32.Vec3{x, y, z}
}

// ChangeLookAt moves the point being looked at.
func (c *LookAt) ChangeLookAt(x, y, z float32) {
	c.Target = mgl32.Vec3{x, y, z}
}

// ChangeViewUpVector replaces the up vector.
func (c *LookAt) ChangeViewUpVector(up mgl32.Vec3) {
	c.Up = up
}

// ViewMatrix returns the view matrix from eye towards target.
func (c *LookAt) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}
