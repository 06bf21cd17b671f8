package room

import (
	"fmt"

	"github.com/spaghettifunk/crystalroom/engine/math"
	"github.com/spaghettifunk/crystalroom/engine/renderer/metadata"
	"github.com/spaghettifunk/crystalroom/engine/scene"
	"github.com/spaghettifunk/crystalroom/engine/systems"
)

// Slab is an axis-aligned box between two corners with a flat colour.
type Slab struct {
	Min    math.Vec3
	Max    math.Vec3
	Colour math.Vec4
}

// SlabModel groups slabs that are merged into one model and drawn with one fill.
type SlabModel struct {
	Name    string
	Slabs   []Slab
	Texture metadata.BuiltinTexture
}

// Placement puts a SlabModel at a world position.
type Placement struct {
	Model    *SlabModel
	Position math.Vec3
}

func slab(x1, y1, z1, x2, y2, z2 float32, colour math.Vec4) Slab {
	return Slab{Min: math.NewVec3(x1, y1, z1), Max: math.NewVec3(x2, y2, z2), Colour: colour}
}

var (
	grey   = math.NewColour(128, 128, 128, 255)
	wood   = math.NewColour(128, 128, 88, 255)
	fabric = math.NewColour(88, 88, 128, 255)
)

var Floor = SlabModel{
	Name:    "floor",
	Texture: metadata.TexChecker,
	Slabs: []Slab{
		slab(-10.0, -0.1, -20.0, 10.0, 0.0, 20.1, grey),
	},
}

var Ceiling = SlabModel{
	Name:    "ceiling",
	Texture: metadata.TexPanel,
	Slabs: []Slab{
		slab(-10.0, 4.0, -20.0, 10.0, 4.1, 20.1, grey),
	},
}

var Room = SlabModel{
	Name:    "room",
	Texture: metadata.TexBlock,
	Slabs: []Slab{
		// Left Wall
		slab(-10.1, 0.0, -20.0, -10.0, 4.0, 20.0, grey),
		// Back Wall
		slab(-10.0, -0.1, -20.1, 10.0, 4.0, -20.0, grey),
		// Right Wall
		slab(10.0, -0.1, -20.0, 10.1, 4.0, 20.0, grey),
	},
}

var Fixtures = SlabModel{
	Name:    "fixtures",
	Texture: metadata.TexNone,
	Slabs: []Slab{
		// Right side shelf
		slab(9.5, 0.75, 3.0, 10.1, 2.5, 3.1, grey), // Verticals
		slab(9.5, 0.95, 3.7, 10.1, 2.75, 3.8, grey),
		slab(9.5, 1.20, 2.5, 10.1, 1.30, 3.8, grey), // Horizontals
		slab(9.5, 2.00, 3.0, 10.1, 2.10, 4.2, grey),

		// Right railing
		slab(5.0, 1.1, 20.0, 10.0, 1.2, 20.1, grey),
		// Bars
		slab(9.0, 1.1, 20.0, 9.1, 0.0, 20.1, grey),
		slab(8.0, 1.1, 20.0, 8.1, 0.0, 20.1, grey),
		slab(7.0, 1.1, 20.0, 7.1, 0.0, 20.1, grey),
		slab(6.0, 1.1, 20.0, 6.1, 0.0, 20.1, grey),
		slab(5.0, 1.1, 20.0, 5.1, 0.0, 20.1, grey),

		// Left railing
		slab(-10.0, 1.1, 20.0, -5.0, 1.2, 20.1, grey),
		// Bars
		slab(-9.0, 1.1, 20.0, -9.1, 0.0, 20.1, grey),
		slab(-8.0, 1.1, 20.0, -8.1, 0.0, 20.1, grey),
		slab(-7.0, 1.1, 20.0, -7.1, 0.0, 20.1, grey),
		slab(-6.0, 1.1, 20.0, -6.1, 0.0, 20.1, grey),
		slab(-5.0, 1.1, 20.0, -5.1, 0.0, 20.1, grey),

		// Bottom Floor 2
		slab(-15.0, -6.1, 18.0, 15.0, -6.0, 30.0, grey),
	},
}

var Furniture = SlabModel{
	Name:    "furniture",
	Texture: metadata.TexChecker,
	Slabs: []Slab{
		// Table
		slab(-1.8, 0.7, 1.0, 0.0, 0.8, 0.0, wood),
		slab(-1.8, 0.7, 0.0, -1.8+0.1, 0.0, 0.0+0.1, wood), // Leg 1
		slab(-1.8, 0.7, 1.0, -1.8+0.1, 0.0, 1.0-0.1, wood), // Leg 2
		slab(0.0, 0.7, 1.0, 0.0-0.1, 0.0, 1.0-0.1, wood),   // Leg 3
		slab(0.0, 0.7, 0.0, 0.0-0.1, 0.0, 0.0+0.1, wood),   // Leg 4

		// Chair
		slab(-1.4, 0.5, -1.1, -0.8, 0.55, -0.5, fabric),          // Seat
		slab(-1.4, 1.0, -1.1, -1.4+0.06, 0.0, -1.1+0.06, fabric), // Leg 1
		slab(-1.4, 0.5, -0.5, -1.4+0.06, 0.0, -0.5-0.06, fabric), // Leg 2
		slab(-0.8, 0.5, -0.5, -0.8-0.06, 0.0, -0.5-0.06, fabric), // Leg 3
		slab(-0.8, 1.0, -1.1, -0.8-0.06, 0.0, -1.1+0.06, fabric), // Leg 4
		slab(-1.4, 0.97, -1.05, -0.8, 0.92, -1.10, fabric),       // Back high bar
	},
}

var Posts = SlabModel{
	Name:    "posts",
	Texture: metadata.TexNone,
	Slabs: []Slab{
		slab(0, 0.0, 0.0, 0.1, 1.3, 0.1, grey),
		slab(0, 0.0, 0.4, 0.1, 1.3, 0.5, grey),
		slab(0, 0.0, 0.8, 0.1, 1.3, 0.9, grey),
		slab(0, 0.0, 1.2, 0.1, 1.3, 1.3, grey),
		slab(0, 0.0, 1.6, 0.1, 1.3, 1.7, grey),
		slab(0, 0.0, 2.0, 0.1, 1.3, 2.1, grey),
		slab(0, 0.0, 2.4, 0.1, 1.3, 2.5, grey),
		slab(0, 0.0, 2.8, 0.1, 1.3, 2.9, grey),
		slab(0, 0.0, 3.2, 0.1, 1.3, 3.3, grey),
		slab(0, 0.0, 3.6, 0.1, 1.3, 3.7, grey),
	},
}

// RoomLayout is the order and position the slab models are added to a scene.
var RoomLayout = []Placement{
	{Model: &Room, Position: math.NewVec3Zero()},
	{Model: &Floor, Position: math.NewVec3Zero()},
	{Model: &Ceiling, Position: math.NewVec3Zero()},
	{Model: &Fixtures, Position: math.NewVec3Zero()},
	{Model: &Furniture, Position: math.NewVec3Zero()},
	{Model: &Furniture, Position: math.NewVec3(0, 0, 4)},
	{Model: &Posts, Position: math.NewVec3(-3, 0, 3)},
}

// BuildSlabModel merges every slab of sm into one model at pos, filled with
// the lit texture of sm or with the solid fill when it has none.
func BuildSlabModel(sm *SlabModel, pos math.Vec3, fills *systems.FillCollection) (*scene.Model, error) {
	fill, err := fills.ForTexture(sm.Texture)
	if err != nil {
		return nil, fmt.Errorf("slab model %s: %w", sm.Name, err)
	}
	m := scene.NewModel(sm.Name, fill)
	for _, s := range sm.Slabs {
		m.AddSolidColorBox(s.Min.X, s.Min.Y, s.Min.Z, s.Max.X, s.Max.Y, s.Max.Z, s.Colour)
	}
	m.SetPosition(pos)
	return m, nil
}
