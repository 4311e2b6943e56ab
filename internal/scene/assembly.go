package scene

import (
	"github.com/Faultbox/classroom3d/internal/engine/geometry"
	"github.com/Faultbox/classroom3d/internal/engine/transform"
)

// Entry is one drawable: a mesh and the params of its model matrix.
type Entry struct {
	Material geometry.Material
	Params   transform.Params
}

// part is a component of a compound object relative to its anchor.
type part struct {
	material   geometry.Material
	dx, dy, dz float32
	sx, sy, sz float32
}

// Table and chair relative to the assembly anchor (tabletop corner at table height).
// Legs and the chair pillar use a negative Y scale so they hang down from the anchor.
var tableAndChair = []part{
	{geometry.Tabletop, 0, 0, 0, 2.5, 0.2, 1.75},
	{geometry.TableLeg, 0, 0, 0, 0.2, -1.5, 0.2},
	{geometry.TableLeg, 1.15, 0, 0, 0.2, -1.5, 0.2},
	{geometry.TableLeg, 1.15, 0, 0.75, 0.2, -1.5, 0.2},
	{geometry.TableLeg, 0, 0, 0.75, 0.2, -1.5, 0.2},
	{geometry.ChairSeat, 0.3, -0.35, 1.0, 1.3, 0.1, 1.0},
	{geometry.ChairPillar, 0.55, -0.35, 1.2, 0.3, -0.8, 0.2},
	{geometry.ChairBack, 0.3, -0.3, 1.45, 1.3, 1.2, 0.1},
}

// AssemblyParts is the number of entries one table+chair assembly emits.
var AssemblyParts = len(tableAndChair)

// Assembly is one table with its chair.
// Rotation (degrees about the vertical axis) turns the whole assembly rigidly.
type Assembly struct {
	OffsetX  float32
	OffsetZ  float32
	Rotation float32
}

// Entries appends the assembly's draw entries to dst in fixed order:
// tabletop, four legs, chair seat, chair pillar, chair back.
func (a Assembly) Entries(dst []Entry) []Entry {
	for _, p := range tableAndChair {
		dst = append(dst, p.place(a.OffsetX, 0, a.OffsetZ, a.Rotation))
	}
	return dst
}

// place positions the part around the anchor. The part's offset is rotated
// with the assembly so the composite turns as one object.
func (p part) place(ax, ay, az, rotation float32) Entry {
	dx, dz := transform.RotateY(p.dx, p.dz, rotation)
	return Entry{
		Material: p.material,
		Params: transform.Params{
			TX: ax + dx, TY: ay + p.dy, TZ: az + dz,
			RY: rotation,
			SX: p.sx, SY: p.sy, SZ: p.sz,
		},
	}
}
