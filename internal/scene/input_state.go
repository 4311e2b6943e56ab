// Package scene composes the classroom: furniture assemblies, the room shell,
// and the ceiling fan, each expressed as a mesh plus transform params.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/classroom3d/internal/engine/transform"
)

// Axis selects which rotation angle the R key decrements.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the axis letter.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	default:
		return "Z"
	}
}

// InputState holds the keyboard-driven offsets layered onto every object.
// Values are never clamped: scale may go negative and angles grow without bound.
type InputState struct {
	Rotate    mgl32.Vec3 // degrees per axis
	Axis      Axis
	Translate mgl32.Vec3
	Scale     mgl32.Vec3
}

// NewInputState returns the neutral state: no rotation, no translation, unit scale, Z axis selected.
func NewInputState() InputState {
	return InputState{
		Axis:  AxisZ,
		Scale: mgl32.Vec3{1, 1, 1},
	}
}

// SelectAxis makes a the active axis and increments its angle by step.
func (s *InputState) SelectAxis(a Axis, step float32) {
	s.Axis = a
	s.Rotate[a] += step
}

// RotateActive decrements the angle of the active axis by step.
func (s *InputState) RotateActive(step float32) {
	s.Rotate[s.Axis] -= step
}

// Apply layers the global offsets onto p: translation and rotation are added,
// scale is multiplied so mirrored components stay mirrored.
func (s *InputState) Apply(p transform.Params) transform.Params {
	p.TX += s.Translate[0]
	p.TY += s.Translate[1]
	p.TZ += s.Translate[2]
	p.RX += s.Rotate[0]
	p.RY += s.Rotate[1]
	p.RZ += s.Rotate[2]
	p.SX *= s.Scale[0]
	p.SY *= s.Scale[1]
	p.SZ *= s.Scale[2]
	return p
}
