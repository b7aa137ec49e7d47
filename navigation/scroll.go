package navigation

import (
	"math"

	"github.com/automoto/solar-ride/gamemath"
)

// After smoothTime seconds Damp has closed about 98% of the gap.
const dampingSharpness = 4

// settleEpsilon is the gap below which Damp lands exactly on its target.
const settleEpsilon = 1e-6

// Damp eases current toward target with exponential smoothing. A smoothTime of
// zero or less returns target; a non-positive delta returns current.
func Damp(current, target, smoothTime, delta float64) float64 {
	if smoothTime <= 0 {
		return target
	}
	if delta <= 0 {
		return current
	}
	next := current + (target-current)*(1-math.Exp(-dampingSharpness*delta/smoothTime))
	if math.Abs(target-next) < settleEpsilon {
		return target
	}
	return next
}

// Advance moves a normalized scroll target by pixels of travel on a ride that
// spans total pixels. The result stays in [0, 1].
func Advance(target, pixels, total float64) float64 {
	if total <= 0 || math.IsNaN(pixels) {
		return gamemath.Clamp01(target)
	}
	return gamemath.Clamp01(target + pixels/total)
}
