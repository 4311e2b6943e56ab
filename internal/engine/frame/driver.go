// Package frame runs the per-frame loop: poll, update, clear, draw, present.
package frame

import (
	"context"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/classroom3d/internal/logger"
	"github.com/Faultbox/classroom3d/internal/scene"
)

// State is the driver's lifecycle state.
type State int

const (
	Running State = iota
	Closing
)

func (s State) String() string {
	if s == Closing {
		return "closing"
	}
	return "running"
}

// Surface is the window the frames are presented to.
type Surface interface {
	// Poll drains pending window events and reports whether closing was requested.
	Poll() bool
	// Size returns the drawable size in pixels.
	Size() (int, int)
	Swap()
	Terminate()
}

// Backend draws meshes on the GPU.
type Backend interface {
	Begin()
	Draw(calls []scene.DrawCall, view, projection mgl32.Mat4)
	// Release frees every GPU mesh.
	Release()
}

// Controller updates frame state and supplies what to draw.
type Controller interface {
	// Update applies input and time for one frame; returns true to close.
	Update(dt float32) bool
	View() mgl32.Mat4
	FieldOfView() float32
	DrawCalls(dst []scene.DrawCall) []scene.DrawCall
}

// Config holds driver settings.
type Config struct {
	// FPSLimit caps the frame rate; 0 leaves it to vsync.
	FPSLimit int
}

// Driver owns the frame loop.
type Driver struct {
	config     Config
	surface    Surface
	backend    Backend
	controller Controller

	state State
	calls []scene.DrawCall

	// now is replaceable for tests.
	now func() time.Time
}

// NewDriver creates a driver in the Running state.
func NewDriver(cfg Config, surface Surface, backend Backend, controller Controller) *Driver {
	return &Driver{
		config:     cfg,
		surface:    surface,
		backend:    backend,
		controller: controller,
		state:      Running,
		now:        time.Now,
	}
}

// State returns the current lifecycle state.
func (d *Driver) State() State {
	return d.state
}

// Step runs one frame of dt seconds. It returns false once the driver is closing;
// a frame that observes the close signal draws nothing.
func (d *Driver) Step(dt float32) bool {
	if d.state != Running {
		return false
	}

	if d.surface.Poll() || d.controller.Update(dt) {
		d.Close()
		return false
	}

	width, height := d.surface.Size()
	projection := scene.Projection(d.controller.FieldOfView(), width, height)
	view := d.controller.View()

	d.calls = d.controller.DrawCalls(d.calls[:0])

	d.backend.Begin()
	d.backend.Draw(d.calls, view, projection)
	d.surface.Swap()
	return true
}

// Run steps frames until closing is requested or ctx is cancelled.
// Either way the driver ends in the Closing state; cancellation returns ctx.Err().
func (d *Driver) Run(ctx context.Context) error {
	logger.Info("starting frame loop")

	var frameBudget time.Duration
	if d.config.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(d.config.FPSLimit)
	}

	lastTime := d.now()
	frameCount := 0
	fpsTimer := lastTime

	for {
		select {
		case <-ctx.Done():
			d.Close()
			return ctx.Err()
		default:
		}

		frameStart := d.now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart

		if !d.Step(float32(dt)) {
			break
		}

		frameCount++
		if frameStart.Sub(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("frames", frameCount),
				zap.Float64("dt_ms", dt*1000),
			)
			frameCount = 0
			fpsTimer = frameStart
		}

		if frameBudget > 0 {
			if spent := d.now().Sub(frameStart); spent < frameBudget {
				time.Sleep(frameBudget - spent)
			}
		}
	}

	logger.Info("frame loop stopped")
	return nil
}

// Close enters the Closing state, releases GPU meshes and terminates the
// window. Only the first call has any effect.
func (d *Driver) Close() {
	if d.state == Closing {
		return
	}
	d.state = Closing
	logger.Info("closing", zap.Int("draw_calls_last_frame", len(d.calls)))
	d.backend.Release()
	d.surface.Terminate()
}
