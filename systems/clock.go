package systems

import (
	"time"

	"github.com/automoto/solar-ride/components"
	cfg "github.com/automoto/solar-ride/config"
	"github.com/yohamta/donburi/ecs"
)

// now is swapped out by tests.
var now = time.Now

// UpdateClock measures wall-clock time since the previous frame. The delta
// other systems read is capped so a stalled window resumes smoothly.
func UpdateClock(ecs *ecs.ECS) {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)
	advanceClock(clock, now(), cfg.Camera.MaxFrameDelta)
}

func advanceClock(clock *components.ClockData, t time.Time, maxDelta float64) {
	raw := t.Sub(clock.Last).Seconds()
	if clock.Last.IsZero() || raw < 0 {
		raw = 0
	}
	clock.Last = t
	clock.Raw = raw
	clock.Delta = raw
	if maxDelta > 0 && clock.Delta > maxDelta {
		clock.Delta = maxDelta
	}
	clock.Elapsed += clock.Delta
}

func frameDelta(ecs *ecs.ECS) float64 {
	if entry, ok := components.Clock.First(ecs.World); ok {
		return components.Clock.Get(entry).Delta
	}
	return 0
}
