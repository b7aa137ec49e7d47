package factory

import (
	"time"

	"github.com/automoto/solar-ride/archetypes"
	"github.com/automoto/solar-ride/checkpoints"
	"github.com/automoto/solar-ride/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateScroll(ecs *ecs.ECS, speedFactor float64) *donburi.Entry {
	scroll := archetypes.Scroll.Spawn(ecs)
	components.Scroll.SetValue(scroll, components.ScrollData{SpeedFactor: speedFactor})
	return scroll
}

func CreateClock(ecs *ecs.ECS, now time.Time) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{Last: now})
	return clock
}

// CreateSkyData spawns the binding state with an unbound placement.
func CreateSkyData(ecs *ecs.ECS, placement *checkpoints.Placement) *donburi.Entry {
	sky := archetypes.SkyData.Spawn(ecs)
	components.SkyData.SetValue(sky, components.SkyDataData{
		State:     components.FetchPending,
		Placement: placement,
		People:    checkpoints.UnknownHeadcount,
	})
	return sky
}

func CreateSettings(ecs *ecs.ECS, settings components.SettingsData, debug bool) *donburi.Entry {
	entry := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(entry, settings)
	components.Debug.SetValue(entry, components.DebugData{Enabled: debug})
	return entry
}
