package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/classroom3d/internal/engine/geometry"
)

// Clip planes of the perspective projection.
const (
	NearPlane = 0.1
	FarPlane  = 100.0
)

// DrawCall is one bind-mesh/set-model/draw step.
type DrawCall struct {
	Material geometry.Material
	Model    mgl32.Mat4
}

// Scene is the layout plus the state that changes between frames.
type Scene struct {
	Layout Layout
	Input  InputState

	// FanSpeed is the blade spin rate in degrees per second; 0 keeps the fan still.
	FanSpeed float32
	FanAngle float32

	entries []Entry
}

// New creates a scene with neutral input state.
func New(layout Layout, fanSpeed float32) *Scene {
	return &Scene{
		Layout:   layout,
		Input:    NewInputState(),
		FanSpeed: fanSpeed,
		entries:  make([]Entry, 0, layout.Count()),
	}
}

// Advance moves time-driven state forward by dt seconds.
func (s *Scene) Advance(dt float32) {
	if s.FanSpeed == 0 {
		return
	}
	s.FanAngle += s.FanSpeed * dt
	for s.FanAngle >= 360 {
		s.FanAngle -= 360
	}
	for s.FanAngle < 0 {
		s.FanAngle += 360
	}
}

// Entries returns the current entries with the global input offsets applied.
// The returned slice is reused by the next call.
func (s *Scene) Entries() []Entry {
	s.entries = s.Layout.Entries(s.entries[:0], s.FanAngle)
	for i := range s.entries {
		s.entries[i].Params = s.Input.Apply(s.entries[i].Params)
	}
	return s.entries
}

// DrawCalls appends one draw call per entry to dst, in layout order.
func (s *Scene) DrawCalls(dst []DrawCall) []DrawCall {
	for _, e := range s.Entries() {
		dst = append(dst, DrawCall{Material: e.Material, Model: e.Params.Matrix()})
	}
	return dst
}

// Projection returns the perspective matrix for a vertical field of view in
// degrees and the current viewport size.
func Projection(fovDeg float32, width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(fovDeg), aspect, NearPlane, FarPlane)
}
