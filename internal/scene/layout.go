package scene

import (
	"fmt"

	"github.com/Faultbox/classroom3d/internal/engine/geometry"
	"github.com/Faultbox/classroom3d/internal/engine/transform"
)

// Preset selects which objects the layout contains.
type Preset int

const (
	// PresetClassroom is the room shell, the furniture grid, the off-grid desk and the fan.
	PresetClassroom Preset = iota
	// PresetRoom is the empty room shell with the fan.
	PresetRoom
)

// ParsePreset maps a config name to a Preset.
func ParsePreset(name string) (Preset, error) {
	switch name {
	case "classroom", "":
		return PresetClassroom, nil
	case "room":
		return PresetRoom, nil
	default:
		return 0, fmt.Errorf("unknown scene preset %q", name)
	}
}

func (p Preset) String() string {
	if p == PresetRoom {
		return "room"
	}
	return "classroom"
}

// GridIndexing selects how grid cells map onto assembly slots.
type GridIndexing int

const (
	// GridUnique gives every cell its own slot (row*cols + col).
	GridUnique GridIndexing = iota
	// GridAliased indexes slots by row+col. Colliding cells share a slot and all
	// of them draw the offset written to it last.
	GridAliased
)

// ParseGridIndexing maps a config name to a GridIndexing.
func ParseGridIndexing(name string) (GridIndexing, error) {
	switch name {
	case "unique", "":
		return GridUnique, nil
	case "aliased":
		return GridAliased, nil
	default:
		return 0, fmt.Errorf("unknown grid indexing %q", name)
	}
}

func (g GridIndexing) String() string {
	if g == GridAliased {
		return "aliased"
	}
	return "unique"
}

// Furniture grid.
const (
	GridRows    = 4
	GridCols    = 4
	GridSpacing = 2.0
)

// extraAssembly is the desk standing diagonally in the back corner.
var extraAssembly = Assembly{OffsetX: 8.6, OffsetZ: 9.5, Rotation: 135}

// box is a room-shell entry anchored at its minimum corner.
func box(m geometry.Material, tx, ty, tz, sx, sy, sz float32) Entry {
	return Entry{
		Material: m,
		Params:   transform.Params{TX: tx, TY: ty, TZ: tz, SX: sx, SY: sy, SZ: sz},
	}
}

// Room is x ∈ [-2, 10], y ∈ [-0.75, 3.25], z ∈ [-3, 11]; the floor top is at
// table leg depth so furniture stands on it.
var roomShell = []Entry{
	box(geometry.Floor, -2, -0.8, -3, 24, 0.1, 28),
	box(geometry.Wall, -2, -0.75, -3.1, 24, 8, 0.2),
	box(geometry.Wall, -2, -0.75, 11, 24, 8, 0.2),
	box(geometry.SideWall, -2.1, -0.75, -3, 0.2, 8, 28),
	box(geometry.SideWall, 10, -0.75, -3, 0.2, 8, 28),
	box(geometry.BlackboardFrame, 1.5, 0.5, -2.98, 10, 4, 0.04),
	box(geometry.Blackboard, 1.7, 0.7, -2.96, 9.2, 3.2, 0.04),
	box(geometry.Cabinet, 8.2, -0.75, -2.5, 3, 4, 1.5),
	box(geometry.Ceiling, -2, 3.25, -3, 24, 0.1, 28),
}

// RoomShellEntries is the number of room-shell draw entries.
var RoomShellEntries = len(roomShell)

// Ceiling fan mount point and parts.
const (
	FanX       = 3.6
	FanZ       = 3.75
	FanEntries = 3
)

// fanParts are holder rod, pivot housing and blade block, relative to the
// mount point on the ceiling. Offsets center each part on the fan axis.
var fanParts = []part{
	{geometry.FanHolder, -0.05, 3.25, -0.05, 0.2, -1.0, 0.2},
	{geometry.FanPivot, -0.15, 2.65, -0.15, 0.6, 0.2, 0.6},
	{geometry.FanBlade, -1.25, 2.6, -0.1, 5, 0.1, 0.4},
}

// Layout is the fixed arrangement of the scene.
type Layout struct {
	Preset Preset
	Grid   GridIndexing
}

// Count returns the number of draw entries the layout emits every frame.
func (l Layout) Count() int {
	n := RoomShellEntries + FanEntries
	if l.Preset == PresetClassroom {
		n += (GridRows*GridCols + 1) * AssemblyParts
	}
	return n
}

// Entries appends every entry in draw order: furniture grid, off-grid desk,
// room shell, fan. fanAngle spins the blade block about the fan axis.
func (l Layout) Entries(dst []Entry, fanAngle float32) []Entry {
	if l.Preset == PresetClassroom {
		for _, a := range l.gridAssemblies() {
			dst = a.Entries(dst)
		}
		dst = extraAssembly.Entries(dst)
	}
	dst = append(dst, roomShell...)
	dst = fanEntries(dst, fanAngle)
	return dst
}

// gridAssemblies returns one assembly per grid cell in row-major order.
func (l Layout) gridAssemblies() []Assembly {
	var slots [GridRows * GridCols]Assembly
	for i := 0; i < GridRows; i++ {
		for j := 0; j < GridCols; j++ {
			slots[l.slot(i, j)] = Assembly{
				OffsetX: float32(j) * GridSpacing,
				OffsetZ: float32(i) * GridSpacing,
			}
		}
	}

	cells := make([]Assembly, 0, GridRows*GridCols)
	for i := 0; i < GridRows; i++ {
		for j := 0; j < GridCols; j++ {
			cells = append(cells, slots[l.slot(i, j)])
		}
	}
	return cells
}

func (l Layout) slot(i, j int) int {
	if l.Grid == GridAliased {
		return i + j
	}
	return i*GridCols + j
}

func fanEntries(dst []Entry, angle float32) []Entry {
	for i, p := range fanParts {
		rotation := float32(0)
		if i == len(fanParts)-1 {
			rotation = angle
		}
		dst = append(dst, p.place(FanX, 0, FanZ, rotation))
	}
	return dst
}
