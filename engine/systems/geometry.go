package systems

import (
	"github.com/chewxy/math32"

	"github.com/spaghettifunk/crystalroom/engine/core"
	"github.com/spaghettifunk/crystalroom/engine/math"
	"github.com/spaghettifunk/crystalroom/engine/renderer/metadata"
)

const (
	/** @brief Longitude segments of generated spheres. */
	SphereSlices uint32 = 24
	/** @brief Latitude segments of generated spheres. */
	SphereStacks uint32 = 16
	/** @brief Segments around generated cylinders. */
	CylinderSlices uint32 = 16
)

var white = math.NewVec4(1, 1, 1, 1)

/**
 * @brief Generates an axis-aligned box spanning the two corners. Corners may be
 * given in any order. Texture coordinates follow world units so textures tile
 * across large slabs instead of stretching.
 *
 * @param x1, y1, z1 The first corner.
 * @param x2, y2, z2 The opposite corner.
 * @param colour The vertex colour of every face.
 * @param name The geometry name.
 */
func GeometrySystemGenerateBoxConfig(x1, y1, z1, x2, y2, z2 float32, colour math.Vec4, name string) *metadata.GeometryConfig {
	min_x, max_x := min(x1, x2), max(x1, x2)
	min_y, max_y := min(y1, y2), max(y1, y2)
	min_z, max_z := min(z1, z2), max(z1, z2)
	if min_x == max_x || min_y == max_y || min_z == max_z {
		core.LogWarn("box %s is flat on at least one axis", name)
	}

	config := &metadata.GeometryConfig{
		Vertices: make([]math.Vertex3D, 0, 4*6), // 4 verts per side, 6 side
		Indices:  make([]uint32, 0, 6*6),        // 6 indices per side, 6 side
		Name:     name,
	}

	// Front face
	addQuad(config, [4]math.Vec3{
		math.NewVec3(min_x, min_y, max_z),
		math.NewVec3(max_x, max_y, max_z),
		math.NewVec3(min_x, max_y, max_z),
		math.NewVec3(max_x, min_y, max_z),
	}, [2]math.Vec2{math.NewVec2(min_x, min_y), math.NewVec2(max_x, max_y)}, math.NewVec3(0, 0, 1), colour)

	// Back face
	addQuad(config, [4]math.Vec3{
		math.NewVec3(max_x, min_y, min_z),
		math.NewVec3(min_x, max_y, min_z),
		math.NewVec3(max_x, max_y, min_z),
		math.NewVec3(min_x, min_y, min_z),
	}, [2]math.Vec2{math.NewVec2(max_x, min_y), math.NewVec2(min_x, max_y)}, math.NewVec3(0, 0, -1), colour)

	// Left
	addQuad(config, [4]math.Vec3{
		math.NewVec3(min_x, min_y, min_z),
		math.NewVec3(min_x, max_y, max_z),
		math.NewVec3(min_x, max_y, min_z),
		math.NewVec3(min_x, min_y, max_z),
	}, [2]math.Vec2{math.NewVec2(min_z, min_y), math.NewVec2(max_z, max_y)}, math.NewVec3(-1, 0, 0), colour)

	// Right face
	addQuad(config, [4]math.Vec3{
		math.NewVec3(max_x, min_y, max_z),
		math.NewVec3(max_x, max_y, min_z),
		math.NewVec3(max_x, max_y, max_z),
		math.NewVec3(max_x, min_y, min_z),
	}, [2]math.Vec2{math.NewVec2(max_z, min_y), math.NewVec2(min_z, max_y)}, math.NewVec3(1, 0, 0), colour)

	// Bottom face
	addQuad(config, [4]math.Vec3{
		math.NewVec3(max_x, min_y, max_z),
		math.NewVec3(min_x, min_y, min_z),
		math.NewVec3(max_x, min_y, min_z),
		math.NewVec3(min_x, min_y, max_z),
	}, [2]math.Vec2{math.NewVec2(max_x, max_z), math.NewVec2(min_x, min_z)}, math.NewVec3(0, -1, 0), colour)

	// Top face
	addQuad(config, [4]math.Vec3{
		math.NewVec3(min_x, max_y, max_z),
		math.NewVec3(max_x, max_y, min_z),
		math.NewVec3(min_x, max_y, min_z),
		math.NewVec3(max_x, max_y, max_z),
	}, [2]math.Vec2{math.NewVec2(min_x, max_z), math.NewVec2(max_x, min_z)}, math.NewVec3(0, 1, 0), colour)

	config.UpdateExtents()
	return config
}

// addQuad appends one face laid out as
//
//	2    1
//
//	0    3
//
// with uv[0] at corner 0 and uv[1] at corner 1.
func addQuad(config *metadata.GeometryConfig, corners [4]math.Vec3, uv [2]math.Vec2, normal math.Vec3, colour math.Vec4) {
	v_offset := uint32(len(config.Vertices))
	texcoords := [4]math.Vec2{
		uv[0],
		uv[1],
		math.NewVec2(uv[0].X, uv[1].Y),
		math.NewVec2(uv[1].X, uv[0].Y),
	}
	for i := 0; i < 4; i++ {
		config.Vertices = append(config.Vertices, math.Vertex3D{
			Position: corners[i],
			Normal:   normal,
			Texcoord: texcoords[i],
			Colour:   colour,
		})
	}
	config.Indices = append(config.Indices,
		v_offset+0, v_offset+1, v_offset+2,
		v_offset+0, v_offset+3, v_offset+1)
}

/**
 * @brief Generates a UV sphere centred on the origin.
 *
 * @param radius The sphere radius. Non-positive values default to one.
 * @param name The geometry name.
 */
func GeometrySystemGenerateSphereConfig(radius float32, name string) *metadata.GeometryConfig {
	if radius <= 0 {
		core.LogWarn("Radius must be positive. Defaulting to one.")
		radius = 1.0
	}

	slices, stacks := SphereSlices, SphereStacks
	config := &metadata.GeometryConfig{
		Vertices: make([]math.Vertex3D, 0, (stacks+1)*(slices+1)),
		Indices:  make([]uint32, 0, stacks*slices*6),
		Name:     name,
	}

	for stack := uint32(0); stack <= stacks; stack++ {
		theta := math.K_PI * float32(stack) / float32(stacks)
		sin_theta, cos_theta := math32.Sincos(theta)
		for slice := uint32(0); slice <= slices; slice++ {
			phi := math.K_PI_2 * float32(slice) / float32(slices)
			sin_phi, cos_phi := math32.Sincos(phi)
			normal := math.NewVec3(sin_theta*cos_phi, cos_theta, sin_theta*sin_phi)
			config.Vertices = append(config.Vertices, math.Vertex3D{
				Position: normal.MulScalar(radius),
				Normal:   normal,
				Texcoord: math.NewVec2(float32(slice)/float32(slices), float32(stack)/float32(stacks)),
				Colour:   white,
			})
		}
	}

	for stack := uint32(0); stack < stacks; stack++ {
		for slice := uint32(0); slice < slices; slice++ {
			a := stack*(slices+1) + slice
			b := a + slices + 1
			config.Indices = append(config.Indices,
				a, a+1, b,
				a+1, b+1, b)
		}
	}

	config.UpdateExtents()
	return config
}

/**
 * @brief Generates a capped cylinder along the Z axis, centred on the origin
 * and spanning [-halfLength, halfLength].
 *
 * @param radius The cylinder radius. Non-positive values default to one.
 * @param halfLength Half of the cylinder length. Non-positive values default to one.
 * @param name The geometry name.
 */
func GeometrySystemGenerateCylinderConfig(radius, halfLength float32, name string) *metadata.GeometryConfig {
	if radius <= 0 {
		core.LogWarn("Radius must be positive. Defaulting to one.")
		radius = 1.0
	}
	if halfLength <= 0 {
		core.LogWarn("halfLength must be positive. Defaulting to one.")
		halfLength = 1.0
	}

	slices := CylinderSlices
	config := &metadata.GeometryConfig{
		Vertices: make([]math.Vertex3D, 0, 4*slices+6),
		Indices:  make([]uint32, 0, 12*slices),
		Name:     name,
	}

	// Side wall: one ring at each end.
	for slice := uint32(0); slice <= slices; slice++ {
		u := float32(slice) / float32(slices)
		s, c := math32.Sincos(math.K_PI_2 * u)
		normal := math.NewVec3(c, s, 0)
		for _, z := range [2]float32{-halfLength, halfLength} {
			v := float32(0)
			if z > 0 {
				v = 1
			}
			config.Vertices = append(config.Vertices, math.Vertex3D{
				Position: math.NewVec3(c*radius, s*radius, z),
				Normal:   normal,
				Texcoord: math.NewVec2(u, v),
				Colour:   white,
			})
		}
	}
	for slice := uint32(0); slice < slices; slice++ {
		a := slice * 2
		config.Indices = append(config.Indices,
			a, a+2, a+1,
			a+1, a+2, a+3)
	}

	// Caps.
	for _, z := range [2]float32{-halfLength, halfLength} {
		normal := math.NewVec3(0, 0, math32.Copysign(1, z))
		center := uint32(len(config.Vertices))
		config.Vertices = append(config.Vertices, math.Vertex3D{
			Position: math.NewVec3(0, 0, z),
			Normal:   normal,
			Texcoord: math.NewVec2(0.5, 0.5),
			Colour:   white,
		})
		for slice := uint32(0); slice <= slices; slice++ {
			s, c := math32.Sincos(math.K_PI_2 * float32(slice) / float32(slices))
			config.Vertices = append(config.Vertices, math.Vertex3D{
				Position: math.NewVec3(c*radius, s*radius, z),
				Normal:   normal,
				Texcoord: math.NewVec2(0.5+0.5*c, 0.5+0.5*s),
				Colour:   white,
			})
		}
		for slice := uint32(0); slice < slices; slice++ {
			if z > 0 {
				config.Indices = append(config.Indices, center, center+1+slice, center+2+slice)
			} else {
				config.Indices = append(config.Indices, center, center+2+slice, center+1+slice)
			}
		}
	}

	config.UpdateExtents()
	return config
}
