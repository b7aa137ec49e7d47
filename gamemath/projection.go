package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Lens describes a perspective camera mounted on the ride rig. Offset is the
// camera position in rig-local space.
type Lens struct {
	FOV    float64 // vertical field of view in degrees
	Near   float64
	Offset Vec3
}

// Eye returns the world position of the lens for a rig at pos with rotation rot.
func (l Lens) Eye(pos Vec3, rot Quat) Vec3 {
	return pos.Add(rot.Rotate(l.Offset))
}

// Project maps a world point onto a width x height screen. The camera looks down
// its local -Z axis. ok is false when the point is behind the near plane.
func (l Lens) Project(pos Vec3, rot Quat, p Vec3, width, height float64) (screen dmath.Vec2, depth float64, ok bool) {
	local := rot.Conjugate().Rotate(p.Sub(l.Eye(pos, rot)))
	depth = -local.Z
	if depth < l.Near {
		return dmath.Vec2{}, depth, false
	}

	f := (height / 2) / math.Tan(l.FOV*math.Pi/360)
	screen = dmath.NewVec2(
		width/2+local.X/depth*f,
		height/2-local.Y/depth*f,
	)
	return screen, depth, true
}
