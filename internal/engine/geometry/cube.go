// Package geometry builds the flat-colored cube meshes every scene object is made of.
package geometry

import "github.com/go-gl/mathgl/mgl32"

// CubeSize is the edge length of the cube produced by Cube.
const CubeSize = 0.5

// FloatsPerVertex is the interleaved stride: position (3) + color (3).
const FloatsPerVertex = 6

// Vertex is a cube corner with its flat color.
type Vertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// CubeIndices is the triangle list shared by every cube mesh.
// Two triangles per face, six faces.
var CubeIndices = [36]uint32{
	0, 3, 2,
	2, 1, 0,

	4, 5, 7,
	7, 6, 4,

	8, 9, 10,
	10, 11, 8,

	12, 13, 14,
	14, 15, 12,

	16, 17, 18,
	18, 19, 16,

	20, 21, 22,
	22, 23, 20,
}

// cubeCorners lists the 24 face corners in index order, 4 per face:
// back, right, front, left, top, bottom.
var cubeCorners = [24]mgl32.Vec3{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{1, 0, 0}, {1, 1, 0}, {1, 0, 1}, {1, 1, 1},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	{0, 0, 1}, {0, 1, 1}, {0, 1, 0}, {0, 0, 0},
	{1, 1, 1}, {1, 1, 0}, {0, 1, 0}, {0, 1, 1},
	{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1},
}

// Cube returns the 24 vertices of a cube spanning [0, CubeSize] on every axis,
// all tagged with the same color.
func Cube(color mgl32.Vec3) []Vertex {
	vertices := make([]Vertex, len(cubeCorners))
	for i, corner := range cubeCorners {
		vertices[i] = Vertex{
			Position: corner.Mul(CubeSize),
			Color:    color,
		}
	}
	return vertices
}

// Interleave packs vertices into the position+color float layout the GPU expects.
func Interleave(vertices []Vertex) []float32 {
	out := make([]float32, 0, len(vertices)*FloatsPerVertex)
	for _, v := range vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.Color[0], v.Color[1], v.Color[2],
		)
	}
	return out
}
