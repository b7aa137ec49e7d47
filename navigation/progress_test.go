package navigation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleIndexStaysInRange(t *testing.T) {
	const count = DefaultSampleCount
	for i := 0; i <= 10000; i++ {
		offset := float64(i) / 10000
		idx := SampleIndex(offset, count)
		assert.GreaterOrEqual(t, idx, 0)
		assert.LessOrEqual(t, idx, count-1)
	}
}

func TestSampleIndexEdges(t *testing.T) {
	tests := []struct {
		name   string
		offset float64
		count  int
		want   int
	}{
		{"start", 0, 2000, 0},
		{"end", 1, 2000, 1999},
		{"middle", 0.5, 2000, 1000},
		{"rounds half up", 0.125, 4, 1},
		{"below range", -0.3, 2000, 0},
		{"above range", 1.7, 2000, 1999},
		{"nan", math.NaN(), 2000, 0},
		{"single sample", 1, 1, 0},
		{"empty", 0.5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SampleIndex(tt.offset, tt.count))
		})
	}
}

func TestLookAheadIndex(t *testing.T) {
	assert.Equal(t, 1, LookAheadIndex(0, 10))
	assert.Equal(t, 9, LookAheadIndex(8, 10))
	assert.Equal(t, 9, LookAheadIndex(9, 10))
	assert.Equal(t, 0, LookAheadIndex(0, 1))
}
