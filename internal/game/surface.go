package game

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/classroom3d/internal/engine/debug"
	"github.com/Faultbox/classroom3d/internal/engine/input"
	"github.com/Faultbox/classroom3d/internal/engine/renderer"
	"github.com/Faultbox/classroom3d/internal/engine/window"
	"github.com/Faultbox/classroom3d/internal/game/controls"
	"github.com/Faultbox/classroom3d/internal/logger"
	"github.com/Faultbox/classroom3d/internal/scene"
)

// surface presents frames to the SDL window and routes window events.
type surface struct {
	window      *window.Window
	input       *input.Input
	renderer    *renderer.Renderer
	controls    *controls.Controller
	screenshots *debug.ScreenshotCapture

	mouseReleased     bool
	screenshotPending bool

	// showFPS puts the frame rate in the window title once a second.
	showFPS    bool
	frames     int
	fpsStarted time.Time
}

// Poll drains events; true means the window was asked to close.
func (s *surface) Poll() bool {
	quit := s.input.Update()

	for _, e := range s.input.Events() {
		switch e.Type {
		case input.EventWindowResize:
			// Event sizes are in screen coordinates; the viewport wants pixels.
			s.renderer.Resize(s.window.DrawableSize())

		case input.EventMouseMove:
			if !s.mouseReleased {
				s.controls.MouseMove(e.DX, e.DY)
			}

		case input.EventMouseWheel:
			s.controls.Scroll(e.Wheel)
		}
	}

	if s.input.IsKeyPressed(screenshotKey) {
		s.screenshotPending = true
	}
	if s.input.IsKeyPressed(toggleViewKey) {
		mode := s.controls.ToggleMode()
		logger.Info("camera switched", zap.String("mode", mode.String()))
	}
	if s.input.IsKeyPressed(releaseKey) {
		s.mouseReleased = !s.mouseReleased
		s.window.SetMouseCaptured(!s.mouseReleased)
	}

	return quit
}

func (s *surface) Size() (int, int) {
	return s.window.DrawableSize()
}

func (s *surface) Swap() {
	s.window.SwapBuffers()

	if !s.showFPS {
		return
	}
	s.frames++
	now := time.Now()
	if elapsed := now.Sub(s.fpsStarted); elapsed >= time.Second {
		fps := float64(s.frames) / elapsed.Seconds()
		s.window.SetTitle(fmt.Sprintf("%s - %.0f FPS", Title, fps))
		s.frames = 0
		s.fpsStarted = now
	}
}

func (s *surface) Terminate() {
	s.window.Close()
}

// backend returns the renderer wrapped so pending screenshots are read back
// after drawing and before the buffers swap.
func (s *surface) backend() *capturingBackend {
	return &capturingBackend{Renderer: s.renderer, surface: s}
}

type capturingBackend struct {
	*renderer.Renderer
	surface *surface
}

func (b *capturingBackend) Draw(calls []scene.DrawCall, view, projection mgl32.Mat4) {
	b.Renderer.Draw(calls, view, projection)

	if !b.surface.screenshotPending {
		return
	}
	b.surface.screenshotPending = false

	pixels, w, h := b.Renderer.ReadPixels()
	path, err := b.surface.screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}
