package systems

import (
	"testing"
	"time"

	"github.com/automoto/solar-ride/components"
	"github.com/automoto/solar-ride/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestAdvanceClock(t *testing.T) {
	start := time.Unix(1000, 0)

	tests := []struct {
		name      string
		last      time.Time
		at        time.Time
		wantRaw   float64
		wantDelta float64
	}{
		{"regular frame", start, start.Add(16 * time.Millisecond), 0.016, 0.016},
		{"stalled window is capped", start, start.Add(3 * time.Second), 3, 0.25},
		{"clock going backwards", start, start.Add(-time.Second), 0, 0},
		{"first frame", time.Time{}, start, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := components.ClockData{Last: tt.last}
			advanceClock(&clock, tt.at, 0.25)
			assert.InDelta(t, tt.wantRaw, clock.Raw, 1e-9)
			assert.InDelta(t, tt.wantDelta, clock.Delta, 1e-9)
			assert.InDelta(t, tt.wantDelta, clock.Elapsed, 1e-9)
			assert.Equal(t, tt.at, clock.Last)
		})
	}
}

func TestUpdateClockReadsNow(t *testing.T) {
	start := time.Unix(2000, 0)
	current := start
	prev := now
	now = func() time.Time { return current }
	t.Cleanup(func() { now = prev })

	w := ecs.NewECS(donburi.NewWorld())
	factory.CreateClock(w, start)

	current = start.Add(100 * time.Millisecond)
	UpdateClock(w)
	current = current.Add(100 * time.Millisecond)
	UpdateClock(w)

	entry, ok := components.Clock.First(w.World)
	require.True(t, ok)
	clock := components.Clock.Get(entry)
	assert.InDelta(t, 0.1, clock.Delta, 1e-9)
	assert.InDelta(t, 0.2, clock.Elapsed, 1e-9)
	assert.InDelta(t, 0.1, frameDelta(w), 1e-9)
}

func TestCycle(t *testing.T) {
	assert.Equal(t, 1, cycle(0, 4))
	assert.Equal(t, 0, cycle(3, 4), "wraps")
	assert.Equal(t, 0, cycle(9, 4), "out of range restarts")
	assert.Equal(t, 0, cycle(-1, 4))
	assert.Equal(t, 0, cycle(0, 0))
}
