package navigation

import (
	"math"

	"github.com/automoto/solar-ride/gamemath"
)

// SampleIndex maps a scroll offset in [0, 1] to a sample index in
// [0, count-1]. Offsets outside the range are clamped first; an offset of 1
// lands on the last sample.
func SampleIndex(offset float64, count int) int {
	if count <= 0 {
		return 0
	}
	if math.IsNaN(offset) {
		offset = 0
	}
	offset = gamemath.Clamp01(offset)

	idx := int(math.Floor(offset*float64(count) + 0.5))
	return min(idx, count-1)
}

// LookAheadIndex is the sample after index, or index itself at the end of the
// path.
func LookAheadIndex(index, count int) int {
	return max(min(index+1, count-1), 0)
}
