package math

import "github.com/chewxy/math32"

const directionEpsilon float32 = 1e-5

/**
 * @brief Returns the rotation that carries the +Z axis (0, 0, 1) onto the
 * given direction. The direction does not need to be normalized.
 *
 * A direction with squared length at or below 1e-5 yields the identity.
 * A direction pointing along -Z yields a half turn around the Y axis.
 *
 * @param dir The direction to rotate towards.
 * @return A unit quaternion.
 */
func QuatFromDirection(dir Vec3) Quaternion {
	lenSq := dir.LengthSquared()
	if lenSq <= directionEpsilon {
		return NewQuatIdentity()
	}
	d := dir.MulScalar(1.0 / math32.Sqrt(lenSq))

	// Half-angle form: cos(theta) = d.z, w = cos(theta/2).
	w := math32.Sqrt(math32.Max(0, (d.Z+1.0)*0.5))
	if w > 1.0-directionEpsilon {
		return Quaternion{0, 0, 0, w}
	}
	if w < directionEpsilon {
		// Antiparallel to +Z; any perpendicular axis works.
		return Quaternion{0, 1, 0, w}
	}

	axis := NewVec3Back().Cross(d)
	p := math32.Sqrt(1.0-w*w) / axis.Length()
	return Quaternion{axis.X * p, axis.Y * p, axis.Z * p, w}
}
