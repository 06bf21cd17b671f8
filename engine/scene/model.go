package scene

import (
	"github.com/google/uuid"

	"github.com/spaghettifunk/crystalroom/engine/math"
	"github.com/spaghettifunk/crystalroom/engine/renderer/metadata"
	"github.com/spaghettifunk/crystalroom/engine/systems"
)

// Model is one mesh drawn with a single fill at a single transform. Every
// primitive added to it is merged into the same geometry.
type Model struct {
	ID        uuid.UUID
	Name      string
	Transform *math.Transform
	Geometry  metadata.GeometryConfig
	Fill      *metadata.Fill
}

func NewModel(name string, fill *metadata.Fill) *Model {
	return &Model{
		ID:        uuid.New(),
		Name:      name,
		Transform: math.TransformCreate(),
		Geometry:  metadata.GeometryConfig{Name: name},
		Fill:      fill,
	}
}

// AddSphere appends a sphere of the given radius centred on the model origin.
func (m *Model) AddSphere(radius float32) {
	m.Geometry.Append(*systems.GeometrySystemGenerateSphereConfig(radius, m.Name))
}

// AddCylinder appends a cylinder along +Z centred on the model origin.
func (m *Model) AddCylinder(radius, halfLength float32) {
	m.Geometry.Append(*systems.GeometrySystemGenerateCylinderConfig(radius, halfLength, m.Name))
}

// AddSolidColorBox appends an axis-aligned box between two corners.
func (m *Model) AddSolidColorBox(x1, y1, z1, x2, y2, z2 float32, colour math.Vec4) {
	m.Geometry.Append(*systems.GeometrySystemGenerateBoxConfig(x1, y1, z1, x2, y2, z2, colour, m.Name))
}

func (m *Model) SetPosition(position math.Vec3) {
	m.Transform.SetPosition(position)
}

func (m *Model) SetOrientation(rotation math.Quaternion) {
	m.Transform.SetRotation(rotation)
}

func (m *Model) Position() math.Vec3 {
	return m.Transform.Position
}

func (m *Model) Orientation() math.Quaternion {
	return m.Transform.Rotation
}

func (m *Model) VertexCount() uint32 {
	return m.Geometry.VertexCount()
}

func (m *Model) IndexCount() uint32 {
	return m.Geometry.IndexCount()
}

// WorldExtents returns the model bounds after applying its transform.
func (m *Model) WorldExtents() math.Extents3D {
	world := make([]math.Vertex3D, len(m.Geometry.Vertices))
	for i, v := range m.Geometry.Vertices {
		world[i].Position = m.Transform.Apply(v.Position)
	}
	return math.GeometryComputeExtents(world)
}
