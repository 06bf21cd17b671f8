package metadata

import (
	"github.com/spaghettifunk/crystalroom/engine/math"
)

/**
 * @brief Represents the configuration for a geometry.
 */
type GeometryConfig struct {
	/** @brief An array of Vertices. */
	Vertices []math.Vertex3D
	/** @brief An array of Indices. */
	Indices []uint32

	Center     math.Vec3
	MinExtents math.Vec3
	MaxExtents math.Vec3

	/** @brief The Name of the geometry. */
	Name string
}

func (g *GeometryConfig) VertexCount() uint32 {
	return uint32(len(g.Vertices))
}

func (g *GeometryConfig) IndexCount() uint32 {
	return uint32(len(g.Indices))
}

/**
 * @brief Appends other to g, rebasing its indices, and refreshes the extents.
 */
func (g *GeometryConfig) Append(other GeometryConfig) {
	base := uint32(len(g.Vertices))
	g.Vertices = append(g.Vertices, other.Vertices...)
	for _, idx := range other.Indices {
		g.Indices = append(g.Indices, base+idx)
	}
	g.UpdateExtents()
}

// UpdateExtents recomputes Center, MinExtents and MaxExtents from the vertices.
func (g *GeometryConfig) UpdateExtents() {
	ext := math.GeometryComputeExtents(g.Vertices)
	g.MinExtents = ext.Min
	g.MaxExtents = ext.Max
	g.Center = ext.Center()
}
