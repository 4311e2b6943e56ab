package game

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/classroom3d/internal/engine/input"
	"github.com/Faultbox/classroom3d/internal/game/controls"
)

// bindings maps control keys to physical key positions.
var bindings = [controls.KeyCount]sdl.Scancode{
	controls.KeyEscape: sdl.SCANCODE_ESCAPE,
	controls.KeyW:      sdl.SCANCODE_W,
	controls.KeyA:      sdl.SCANCODE_A,
	controls.KeyS:      sdl.SCANCODE_S,
	controls.KeyD:      sdl.SCANCODE_D,
	controls.KeyR:      sdl.SCANCODE_R,
	controls.KeyX:      sdl.SCANCODE_X,
	controls.KeyY:      sdl.SCANCODE_Y,
	controls.KeyZ:      sdl.SCANCODE_Z,
	controls.KeyI:      sdl.SCANCODE_I,
	controls.KeyK:      sdl.SCANCODE_K,
	controls.KeyL:      sdl.SCANCODE_L,
	controls.KeyJ:      sdl.SCANCODE_J,
	controls.KeyO:      sdl.SCANCODE_O,
	controls.KeyP:      sdl.SCANCODE_P,
	controls.KeyC:      sdl.SCANCODE_C,
	controls.KeyV:      sdl.SCANCODE_V,
	controls.KeyB:      sdl.SCANCODE_B,
	controls.KeyN:      sdl.SCANCODE_N,
	controls.KeyM:      sdl.SCANCODE_M,
	controls.KeyU:      sdl.SCANCODE_U,
	controls.KeyH:      sdl.SCANCODE_H,
	controls.KeyF:      sdl.SCANCODE_F,
	controls.KeyT:      sdl.SCANCODE_T,
	controls.KeyG:      sdl.SCANCODE_G,
	controls.KeyQ:      sdl.SCANCODE_Q,
	controls.KeyE:      sdl.SCANCODE_E,
	controls.Key1:      sdl.SCANCODE_1,
	controls.Key2:      sdl.SCANCODE_2,
	controls.Key3:      sdl.SCANCODE_3,
	controls.Key4:      sdl.SCANCODE_4,
	controls.Key5:      sdl.SCANCODE_5,
	controls.Key6:      sdl.SCANCODE_6,
	controls.Key7:      sdl.SCANCODE_7,
	controls.Key8:      sdl.SCANCODE_8,
	controls.Key9:      sdl.SCANCODE_9,
}

// Edge-triggered keys handled outside the per-frame controls.
const (
	screenshotKey = sdl.SCANCODE_F12
	toggleViewKey = sdl.SCANCODE_F2
	releaseKey    = sdl.SCANCODE_TAB
)

// heldKeys is implemented by *input.Input.
type heldKeys interface {
	IsKeyDown(sdl.Scancode) bool
}

// keyboard adapts the SDL key snapshot to controls.KeyState.
type keyboard struct {
	held heldKeys
}

var _ heldKeys = (*input.Input)(nil)

func (k keyboard) Down(key controls.Key) bool {
	if key < 0 || key >= controls.KeyCount {
		return false
	}
	return k.held.IsKeyDown(bindings[key])
}
