package navigation

import (
	"math"

	"github.com/automoto/solar-ride/gamemath"
)

// Pose is the live camera rig state.
type Pose struct {
	Position    gamemath.Vec3
	Orientation gamemath.Quat
}

// Solver derives a banked target orientation from the local path direction and
// eases the live pose toward it.
type Solver struct {
	BankScale       float64 // displacement -> angle gain, also divides pitch
	MaxBank         float64 // radians
	PositionRate    float64 // lerp factor per second
	OrientationRate float64 // slerp factor per second
}

func DefaultSolver() Solver {
	return Solver{
		BankScale:       80,
		MaxBank:         math.Pi / 3,
		PositionRate:    24,
		OrientationRate: 1,
	}
}

// BankAngle turns a displacement into a clamped lean angle. Moving toward -d
// leans positive, so the sign is opposite to the displacement.
func BankAngle(d, scale, maxAngle float64) float64 {
	a := math.Min(math.Abs(d*scale), maxAngle)
	if d*scale < 0 {
		return a
	}
	return -a
}

// Bank returns yaw and pitch for the path direction at index. A zero
// displacement (last sample) gives no turn.
func (s Solver) Bank(path *Path, index int) (yaw, pitch float64) {
	look := LookAheadIndex(index, path.Len())
	d := path.At(look).Sub(path.At(index))

	yaw = BankAngle(d.X, s.BankScale, s.MaxBank)
	pitch = BankAngle(d.Y, s.BankScale, s.MaxBank)
	if s.BankScale != 0 {
		pitch /= s.BankScale
	}
	return yaw, pitch
}

// Target builds the orientation the camera eases toward. The current roll is
// carried over so turns don't accumulate twist.
func (s Solver) Target(path *Path, index int, current gamemath.Quat) gamemath.Quat {
	yaw, pitch := s.Bank(path, index)
	return gamemath.QuatFromEuler(gamemath.Euler{
		X: pitch,
		Y: yaw,
		Z: current.Euler().Z,
	})
}

// Step advances pose by one frame of delta seconds toward the sample selected
// by offset. Interpolation factors are clamped to [0, 1] so a long frame (e.g.
// after the window was backgrounded) lands on the target instead of past it.
func (s Solver) Step(pose Pose, path *Path, offset, delta float64) Pose {
	if delta < 0 || math.IsNaN(delta) {
		delta = 0
	}
	index := SampleIndex(offset, path.Len())
	target := s.Target(path, index, pose.Orientation)

	return Pose{
		Position:    pose.Position.Lerp(path.At(index), gamemath.Clamp01(delta*s.PositionRate)),
		Orientation: pose.Orientation.Slerp(target, gamemath.Clamp01(delta*s.OrientationRate)),
	}
}

// Snap places the rig directly on the path. Only used when a session starts.
func (s Solver) Snap(path *Path, offset float64) Pose {
	index := SampleIndex(offset, path.Len())
	return Pose{
		Position:    path.At(index),
		Orientation: s.Target(path, index, gamemath.IdentityQuat()),
	}
}
