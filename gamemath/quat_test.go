package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestQuatEulerRoundTrip(t *testing.T) {
	cases := []Euler{
		{},
		{X: 0.1, Y: -0.2768, Z: 0},
		{X: -0.01, Y: 1.05, Z: 0.3},
		{X: 0.002, Y: -0.109, Z: -0.4},
	}
	for _, e := range cases {
		got := QuatFromEuler(e).Euler()
		assert.InDelta(t, e.X, got.X, 1e-9)
		assert.InDelta(t, e.Y, got.Y, 1e-9)
		assert.InDelta(t, e.Z, got.Z, 1e-9)
	}
}

func TestQuatFromEulerIsUnit(t *testing.T) {
	q := QuatFromEuler(Euler{X: 0.7, Y: -1.3, Z: 2.1})
	assert.InDelta(t, 1, q.Length(), eps)
}

func TestQuatRotateYaw(t *testing.T) {
	// +90 degrees around Y turns -Z (forward) into -X
	q := QuatFromEuler(Euler{Y: math.Pi / 2})
	got := q.Rotate(NewVec3(0, 0, -1))
	assert.InDelta(t, -1, got.X, eps)
	assert.InDelta(t, 0, got.Y, eps)
	assert.InDelta(t, 0, got.Z, eps)
}

func TestQuatSlerpEndpoints(t *testing.T) {
	a := IdentityQuat()
	b := QuatFromEuler(Euler{Y: 1})

	require.Equal(t, a, a.Slerp(b, 0))
	require.Equal(t, b, a.Slerp(b, 1))

	mid := a.Slerp(b, 0.5).Euler()
	assert.InDelta(t, 0.5, mid.Y, 1e-9)
}

func TestQuatSlerpClampsFactor(t *testing.T) {
	a := IdentityQuat()
	b := QuatFromEuler(Euler{Y: 1})

	assert.Equal(t, b, a.Slerp(b, 3.5))
	assert.Equal(t, a, a.Slerp(b, -2))
}

func TestQuatSlerpTakesShortestArc(t *testing.T) {
	a := IdentityQuat()
	b := QuatFromEuler(Euler{Y: 0.5})
	neg := Quat{-b.X, -b.Y, -b.Z, -b.W}

	got := a.Slerp(neg, 0.5)
	assert.InDelta(t, 0.25, got.Euler().Y, 1e-9)
}

func TestLensProjectCentre(t *testing.T) {
	lens := Lens{FOV: 60, Near: 0.1}
	screen, depth, ok := lens.Project(Vec3{}, IdentityQuat(), NewVec3(0, 0, -10), 640, 360)
	require.True(t, ok)
	assert.InDelta(t, 320, screen.X, eps)
	assert.InDelta(t, 180, screen.Y, eps)
	assert.InDelta(t, 10, depth, eps)
}

func TestLensProjectBehindCamera(t *testing.T) {
	lens := Lens{FOV: 60, Near: 0.1}
	_, _, ok := lens.Project(Vec3{}, IdentityQuat(), NewVec3(0, 0, 5), 640, 360)
	assert.False(t, ok)
}

func TestLensProjectAppliesOffset(t *testing.T) {
	// lens pulled back 5 units: a point at the rig origin sits 5 units ahead
	lens := Lens{FOV: 60, Near: 0.1, Offset: NewVec3(0, 0, 5)}
	screen, depth, ok := lens.Project(Vec3{}, IdentityQuat(), Vec3{}, 640, 360)
	require.True(t, ok)
	assert.InDelta(t, 5, depth, eps)
	assert.InDelta(t, 320, screen.X, eps)

	// a point above the axis projects above the centre
	screen, _, _ = lens.Project(Vec3{}, IdentityQuat(), NewVec3(0, 1, 0), 640, 360)
	assert.Less(t, screen.Y, 180.0)
}
