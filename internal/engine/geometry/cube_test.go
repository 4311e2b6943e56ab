package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCubeVertexCount(t *testing.T) {
	vs := Cube(mgl32.Vec3{1, 0, 0})
	if len(vs) != 24 {
		t.Fatalf("Cube() returned %d vertices, want 24", len(vs))
	}
}

func TestCubeIndicesInRange(t *testing.T) {
	vs := Cube(mgl32.Vec3{})
	for i, idx := range CubeIndices {
		if int(idx) >= len(vs) {
			t.Errorf("index %d = %d exceeds vertex count %d", i, idx, len(vs))
		}
	}
}

func TestCubeIndicesStayWithinFace(t *testing.T) {
	// Each 6-index group belongs to one face: its 4 vertices 4f..4f+3.
	for face := 0; face < 6; face++ {
		for k := 0; k < 6; k++ {
			idx := int(CubeIndices[face*6+k])
			if idx/4 != face {
				t.Errorf("face %d uses vertex %d from face %d", face, idx, idx/4)
			}
		}
	}
}

func TestCubeFaceColorsConstant(t *testing.T) {
	color := mgl32.Vec3{0.59, 0.19, 0}
	vs := Cube(color)
	for face := 0; face < 6; face++ {
		first := vs[face*4].Color
		for k := 1; k < 4; k++ {
			if vs[face*4+k].Color != first {
				t.Errorf("face %d vertex %d color %v differs from %v", face, k, vs[face*4+k].Color, first)
			}
		}
		if first != color {
			t.Errorf("face %d color = %v, want %v", face, first, color)
		}
	}
}

func TestCubeBounds(t *testing.T) {
	for i, v := range Cube(mgl32.Vec3{}) {
		for axis := 0; axis < 3; axis++ {
			c := v.Position[axis]
			if c != 0 && c != CubeSize {
				t.Errorf("vertex %d axis %d = %f, want 0 or %f", i, axis, c, CubeSize)
			}
		}
	}
}

func TestCubeFacesArePlanar(t *testing.T) {
	vs := Cube(mgl32.Vec3{})
	for face := 0; face < 6; face++ {
		shared := 0
		for axis := 0; axis < 3; axis++ {
			same := true
			for k := 1; k < 4; k++ {
				if vs[face*4+k].Position[axis] != vs[face*4].Position[axis] {
					same = false
				}
			}
			if same {
				shared++
			}
		}
		if shared != 1 {
			t.Errorf("face %d has %d constant axes, want 1", face, shared)
		}
	}
}

func TestInterleave(t *testing.T) {
	vs := []Vertex{
		{Position: mgl32.Vec3{1, 2, 3}, Color: mgl32.Vec3{0.1, 0.2, 0.3}},
		{Position: mgl32.Vec3{4, 5, 6}, Color: mgl32.Vec3{0.4, 0.5, 0.6}},
	}
	got := Interleave(vs)
	want := []float32{1, 2, 3, 0.1, 0.2, 0.3, 4, 5, 6, 0.4, 0.5, 0.6}
	if len(got) != len(want) {
		t.Fatalf("Interleave() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Interleave()[%d] = %f, want %f", i, got[i], want[i])
		}
	}
}

func TestPaletteCoversMaterials(t *testing.T) {
	for _, m := range Materials() {
		if _, ok := Palette[m]; !ok {
			t.Errorf("material %q missing from palette", m)
		}
	}
	if len(Materials()) != len(Palette) {
		t.Errorf("Materials() has %d entries, palette has %d", len(Materials()), len(Palette))
	}
}

func TestCubeForUnknownMaterial(t *testing.T) {
	vs := CubeFor("nope")
	if vs[0].Color != (mgl32.Vec3{1, 0, 1}) {
		t.Errorf("unknown material color = %v, want magenta", vs[0].Color)
	}
}
