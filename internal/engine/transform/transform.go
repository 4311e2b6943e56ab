// Package transform composes per-instance model matrices.
package transform

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Params are the nine scalars a model matrix is built from.
// Rotations are in degrees. A negative scale mirrors that axis, which is how
// legs are made to hang down from their anchor.
type Params struct {
	TX, TY, TZ float32
	RX, RY, RZ float32
	SX, SY, SZ float32
}

// Identity returns params that compose to the identity matrix.
func Identity() Params {
	return Params{SX: 1, SY: 1, SZ: 1}
}

// Matrix composes the params into a model matrix.
func (p Params) Matrix() mgl32.Mat4 {
	return Compose(p.TX, p.TY, p.TZ, p.RX, p.RY, p.RZ, p.SX, p.SY, p.SZ)
}

// Compose returns T(tx,ty,tz) · Rx(rx) · Ry(ry) · Rz(rz) · S(sx,sy,sz).
// The order is fixed; vertices are transformed as M·v.
func Compose(tx, ty, tz, rx, ry, rz, sx, sy, sz float32) mgl32.Mat4 {
	model := mgl32.Ident4()
	model = model.Mul4(mgl32.Translate3D(tx, ty, tz))
	model = model.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(rx)))
	model = model.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(ry)))
	model = model.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(rz)))
	model = model.Mul4(mgl32.Scale3D(sx, sy, sz))
	return model
}

// RotateY rotates the horizontal offset (x, z) about the vertical axis by deg,
// matching the handedness of Ry in Compose.
func RotateY(x, z, deg float32) (float32, float32) {
	if deg == 0 {
		return x, z
	}
	rad := float64(mgl32.DegToRad(deg))
	c := float32(gomath.Cos(rad))
	s := float32(gomath.Sin(rad))
	return x*c + z*s, -x*s + z*c
}
