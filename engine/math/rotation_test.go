package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

const tolerance float32 = 1e-4

func TestQuatFromDirectionIdentity(t *testing.T) {
	q := QuatFromDirection(NewVec3(0, 0, 1))
	assert.True(t, Vec4(q).Compare(Vec4(NewQuatIdentity()), tolerance), "got %v", q)

	q = QuatFromDirection(NewVec3(0, 0, 7.5))
	assert.True(t, Vec4(q).Compare(Vec4(NewQuatIdentity()), tolerance), "got %v", q)
}

func TestQuatFromDirectionDegenerate(t *testing.T) {
	assert.Equal(t, NewQuatIdentity(), QuatFromDirection(NewVec3Zero()))
	assert.Equal(t, NewQuatIdentity(), QuatFromDirection(NewVec3(0.001, 0.001, 0)))
}

func TestQuatFromDirectionOpposite(t *testing.T) {
	q := QuatFromDirection(NewVec3(0, 0, -1))
	got := q.RotateVec3(NewVec3Back())
	assert.True(t, got.Compare(NewVec3(0, 0, -1), tolerance), "got %v", got)
}

func TestQuatFromDirectionAxes(t *testing.T) {
	for _, dir := range []Vec3{
		NewVec3(1, 0, 0),
		NewVec3(-1, 0, 0),
		NewVec3(0, 1, 0),
		NewVec3(0, -1, 0),
		NewVec3(0, 3, 4),
	} {
		q := QuatFromDirection(dir)
		got := q.RotateVec3(NewVec3Back())
		assert.True(t, got.Compare(dir.Normalized(), tolerance), "dir %v got %v", dir, got)
		assert.InDelta(t, 1.0, q.Normal(), 1e-4)
	}
}

func TestQuatFromDirectionRandom(t *testing.T) {
	r := rand.New(rand.NewSource(1337))
	for i := 0; i < 50; i++ {
		dir := NewVec3(r.Float32()*2-1, r.Float32()*2-1, r.Float32()*2-1)
		if dir.LengthSquared() <= 1e-3 {
			continue
		}
		q := QuatFromDirection(dir)
		assert.InDelta(t, 1.0, q.Normal(), 1e-4, "dir %v", dir)

		got := q.RotateVec3(NewVec3Back())
		assert.True(t, got.Compare(dir.Normalized(), tolerance), "dir %v got %v", dir, got)
	}
}

func TestRotateVec3MatchesMatrix(t *testing.T) {
	q := NewQuatFromAxisAngle(NewVec3(0, 1, 0), DegToRad(90), true)
	v := NewVec3(1, 2, 3)

	byQuat := q.RotateVec3(v)
	byMat := v.Transform(q.ToMat4())

	assert.True(t, byQuat.Compare(byMat, tolerance), "quat %v mat %v", byQuat, byMat)
	assert.True(t, byQuat.Compare(NewVec3(3, 2, -1), tolerance), "got %v", byQuat)
}

func TestTransformApply(t *testing.T) {
	tr := TransformFromPositionRotation(
		NewVec3(1, 0, 0),
		NewQuatFromAxisAngle(NewVec3(0, 1, 0), DegToRad(90), true),
	)
	got := tr.Apply(NewVec3(0, 0, 1))
	assert.True(t, got.Compare(NewVec3(2, 0, 0), tolerance), "got %v", got)
	assert.False(t, tr.IsDirty)

	tr.SetPosition(NewVec3Zero())
	assert.True(t, tr.IsDirty)
	got = tr.Apply(NewVec3(0, 0, 1))
	assert.True(t, got.Compare(NewVec3(1, 0, 0), tolerance), "got %v", got)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(0.1), Clamp(float32(-2), 0.1, 3.0))
	assert.Equal(t, float32(3.0), Clamp(float32(5), 0.1, 3.0))
	assert.Equal(t, 4, Clamp(4, 1, 6))
}

func TestGeometryComputeExtents(t *testing.T) {
	verts := []Vertex3D{
		{Position: NewVec3(-1, 2, 0)},
		{Position: NewVec3(3, -4, 5)},
		{Position: NewVec3(0, 0, -6)},
	}
	ext := GeometryComputeExtents(verts)
	assert.Equal(t, NewVec3(-1, -4, -6), ext.Min)
	assert.Equal(t, NewVec3(3, 2, 5), ext.Max)
	assert.Equal(t, Extents3D{}, GeometryComputeExtents(nil))
}
