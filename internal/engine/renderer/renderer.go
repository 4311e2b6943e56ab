// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/classroom3d/internal/engine/mesh"
	"github.com/Faultbox/classroom3d/internal/engine/shader"
	"github.com/Faultbox/classroom3d/internal/logger"
	"github.com/Faultbox/classroom3d/internal/scene"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// ClearColor is the background color.
var ClearColor = mgl32.Vec4{0.2, 0.3, 0.3, 1.0}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config  Config
	program *shader.Program
	meshes  *mesh.Library

	released bool
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3])
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.NewSceneProgram()
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	logger.Debug("shader program created", zap.Uint32("program", r.program.ID()))

	r.meshes = mesh.NewLibrary()

	return r, nil
}

// Release frees meshes and the shader program. Later calls do nothing.
func (r *Renderer) Release() {
	if r.released {
		return
	}
	r.released = true

	logger.Info("releasing renderer")
	r.meshes.Release()
	r.program.Delete()
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin clears color and depth for a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders each call in order with its own model matrix.
func (r *Renderer) Draw(calls []scene.DrawCall, view, projection mgl32.Mat4) {
	r.program.Use()
	r.program.SetMat4("projection", projection)
	r.program.SetMat4("view", view)

	for _, c := range calls {
		m := r.meshes.Get(c.Material)
		if m == nil {
			continue
		}
		r.program.SetMat4("model", c.Model)
		m.Draw()
	}
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&pixels[0]))
	return pixels, w, h
}
