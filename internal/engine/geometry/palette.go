package geometry

import "github.com/go-gl/mathgl/mgl32"

// Material names one cube mesh by what it is used for.
type Material string

// Scene materials.
const (
	Tabletop        Material = "tabletop"
	TableLeg        Material = "tableLeg"
	ChairSeat       Material = "chairSeat"
	ChairPillar     Material = "chairPillar"
	ChairBack       Material = "chairBack"
	Floor           Material = "floor"
	Wall            Material = "wall"
	SideWall        Material = "sideWall"
	BlackboardFrame Material = "blackboardFrame"
	Blackboard      Material = "blackboard"
	Cabinet         Material = "cabinet"
	Ceiling         Material = "ceiling"
	FanHolder       Material = "fanHolder"
	FanPivot        Material = "fanPivot"
	FanBlade        Material = "fanBlade"
)

// Palette maps every material to its flat RGB color.
var Palette = map[Material]mgl32.Vec3{
	Tabletop:        {0.59, 0.19, 0.0},
	TableLeg:        {0.80, 0.59, 0.0},
	ChairSeat:       {0.45, 0.25, 0.10},
	ChairPillar:     {0.30, 0.30, 0.30},
	ChairBack:       {0.55, 0.30, 0.12},
	Floor:           {0.60, 0.60, 0.55},
	Wall:            {0.85, 0.82, 0.70},
	SideWall:        {0.78, 0.76, 0.65},
	BlackboardFrame: {0.40, 0.25, 0.10},
	Blackboard:      {0.05, 0.20, 0.10},
	Cabinet:         {0.50, 0.35, 0.20},
	Ceiling:         {0.95, 0.95, 0.95},
	FanHolder:       {0.20, 0.20, 0.20},
	FanPivot:        {0.35, 0.35, 0.40},
	FanBlade:        {0.75, 0.75, 0.80},
}

// Materials returns every palette entry in a fixed order.
func Materials() []Material {
	return []Material{
		Tabletop, TableLeg, ChairSeat, ChairPillar, ChairBack,
		Floor, Wall, SideWall, BlackboardFrame, Blackboard,
		Cabinet, Ceiling, FanHolder, FanPivot, FanBlade,
	}
}

// CubeFor builds the cube vertices for a material.
// Unknown materials get magenta so they stand out on screen.
func CubeFor(m Material) []Vertex {
	color, ok := Palette[m]
	if !ok {
		color = mgl32.Vec3{1, 0, 1}
	}
	return Cube(color)
}
