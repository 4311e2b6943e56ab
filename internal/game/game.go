// Package game wires the window, renderer, scene and controls into a running viewer.
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/classroom3d/internal/config"
	"github.com/Faultbox/classroom3d/internal/engine/camera"
	"github.com/Faultbox/classroom3d/internal/engine/debug"
	"github.com/Faultbox/classroom3d/internal/engine/frame"
	"github.com/Faultbox/classroom3d/internal/engine/input"
	"github.com/Faultbox/classroom3d/internal/engine/renderer"
	"github.com/Faultbox/classroom3d/internal/engine/window"
	"github.com/Faultbox/classroom3d/internal/game/controls"
	"github.com/Faultbox/classroom3d/internal/logger"
	"github.com/Faultbox/classroom3d/internal/scene"
)

// Title is the window title.
const Title = "Classroom 3D"

// Game is the main viewer instance.
type Game struct {
	config   *config.Config
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	scene    *scene.Scene
	controls *controls.Controller
	driver   *frame.Driver
}

// New creates the window, GL resources and scene described by cfg.
func New(cfg *config.Config) (*Game, error) {
	layout, err := LayoutFromConfig(cfg.Scene)
	if err != nil {
		return nil, err
	}

	logger.Info("initializing viewer",
		zap.String("preset", layout.Preset.String()),
		zap.String("grid", layout.Grid.String()),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	g := &Game{
		config: cfg,
		input:  input.New(),
		scene:  scene.New(layout, cfg.Scene.FanSpeed),
	}
	g.controls = ControllerFromConfig(cfg.Camera, &g.scene.Input)

	shotFormat, err := debug.ParseFormat(cfg.Debug.ScreenshotFormat)
	if err != nil {
		return nil, err
	}
	screenshots := debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "classroom")
	screenshots.SetFormat(shotFormat)

	// Create window (this also creates OpenGL context)
	g.window, err = window.New(window.Config{
		Title:        Title,
		Width:        cfg.Graphics.Width,
		Height:       cfg.Graphics.Height,
		Fullscreen:   cfg.Graphics.Fullscreen,
		VSync:        cfg.Graphics.VSync,
		CaptureMouse: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:  width,
		Height: height,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	surf := &surface{
		window:      g.window,
		input:       g.input,
		renderer:    g.renderer,
		controls:    g.controls,
		screenshots: screenshots,
		showFPS:     cfg.Debug.ShowFPS,
		fpsStarted:  time.Now(),
	}
	ctrl := &viewer{
		keys:     keyboard{held: g.input},
		controls: g.controls,
		scene:    g.scene,
	}
	g.driver = frame.NewDriver(frame.Config{FPSLimit: cfg.Graphics.FPSLimit}, surf, surf.backend(), ctrl)

	logger.Info("viewer initialized",
		zap.Int("entries", layout.Count()),
		zap.String("camera", g.controls.Mode.String()),
	)
	return g, nil
}

// Run drives frames until the window closes or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	return g.driver.Run(ctx)
}

// Close releases GPU resources and the window. Safe to call more than once.
func (g *Game) Close() {
	g.driver.Close()
}

// LayoutFromConfig resolves the configured preset and grid indexing.
func LayoutFromConfig(cfg config.SceneConfig) (scene.Layout, error) {
	preset, err := scene.ParsePreset(cfg.Preset)
	if err != nil {
		return scene.Layout{}, err
	}
	grid, err := scene.ParseGridIndexing(cfg.GridIndexing)
	if err != nil {
		return scene.Layout{}, err
	}
	return scene.Layout{Preset: preset, Grid: grid}, nil
}

// ControllerFromConfig builds both cameras from cfg and binds them to st.
func ControllerFromConfig(cfg config.CameraConfig, st *scene.InputState) *controls.Controller {
	fly := camera.NewFly(mgl32.Vec3(cfg.Position), cfg.Yaw, cfg.Pitch)
	fly.Zoom = cfg.Zoom
	fly.MovementSpeed = cfg.Speed
	fly.MouseSensitivity = cfg.Sensitivity

	lookAt := camera.NewLookAt(mgl32.Vec3(cfg.Eye), mgl32.Vec3(cfg.LookAt), mgl32.Vec3(cfg.Up))

	mode := controls.ModeFly
	if cfg.Mode == controls.ModeLookAt.String() {
		mode = controls.ModeLookAt
	}
	return controls.New(st, fly, lookAt, mode)
}

// viewer is the per-frame controller handed to the frame driver.
type viewer struct {
	keys     controls.KeyState
	controls *controls.Controller
	scene    *scene.Scene
}

func (v *viewer) Update(dt float32) bool {
	if v.controls.Apply(v.keys, dt) {
		return true
	}
	v.scene.Advance(dt)
	return false
}

func (v *viewer) View() mgl32.Mat4 {
	return v.controls.View()
}

func (v *viewer) FieldOfView() float32 {
	return v.controls.FieldOfView()
}

func (v *viewer) DrawCalls(dst []scene.DrawCall) []scene.DrawCall {
	return v.scene.DrawCalls(dst)
}
