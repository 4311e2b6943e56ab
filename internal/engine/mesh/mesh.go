// Package mesh uploads colored cube geometry to the GPU.
package mesh

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/classroom3d/internal/engine/geometry"
	"github.com/Faultbox/classroom3d/internal/logger"
)

// Mesh is an indexed vertex array resident on the GPU.
type Mesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// Create uploads interleaved position+color vertices and their indices.
// Must be called with a current OpenGL context.
func Create(vertices []float32, indices []uint32) *Mesh {
	m := &Mesh{indexCount: int32(len(indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	stride := int32(geometry.FloatsPerVertex * 4)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)

	// Color attribute (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	// The element buffer binding is VAO state; only unbind the array buffer.
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return m
}

// Draw issues one indexed triangle draw.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Delete frees the GPU objects.
func (m *Mesh) Delete() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	m.vao, m.vbo, m.ebo = 0, 0, 0
}

// Library holds one cube mesh per material.
type Library struct {
	meshes   map[geometry.Material]*Mesh
	released bool
}

// NewLibrary builds a cube for every material in the palette.
func NewLibrary() *Library {
	lib := &Library{meshes: make(map[geometry.Material]*Mesh, len(geometry.Palette))}
	indices := geometry.CubeIndices[:]
	for _, m := range geometry.Materials() {
		lib.meshes[m] = Create(geometry.Interleave(geometry.CubeFor(m)), indices)
	}
	logger.Debug("mesh library created", zap.Int("meshes", len(lib.meshes)))
	return lib
}

// Get returns the mesh for a material, or nil if it is unknown.
func (l *Library) Get(m geometry.Material) *Mesh {
	return l.meshes[m]
}

// Release deletes every mesh. Later calls do nothing.
func (l *Library) Release() {
	if l.released {
		return
	}
	l.released = true
	for _, m := range l.meshes {
		m.Delete()
	}
	logger.Debug("mesh library released", zap.Int("meshes", len(l.meshes)))
	l.meshes = nil
}
