package systems

import (
	"fmt"

	"github.com/automoto/solar-ride/components"
	cfg "github.com/automoto/solar-ride/config"
	"github.com/automoto/solar-ride/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateSettings handles the viewer toggles and saves them when they change.
func UpdateSettings(ecs *ecs.ECS) {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		return
	}
	settings := components.Settings.Get(entry)
	debug := components.Debug.Get(entry)
	input := getOrCreateInput(ecs)

	if input.Action(cfg.ActionToggleDebug).JustPressed {
		debug.Enabled = !debug.Enabled
		if debug.Enabled {
			ShowMessage(ecs, "Debug overlay on")
		}
	}

	if input.Action(cfg.ActionToggleFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		settings.Dirty = true
	}

	if input.Action(cfg.ActionCycleResolution).JustPressed {
		settings.ResolutionIndex = cycle(settings.ResolutionIndex, len(cfg.ViewerSettings.Resolutions))
		res := cfg.ViewerSettings.Resolutions[settings.ResolutionIndex]
		if !settings.Fullscreen {
			ebiten.SetWindowSize(res.Width, res.Height)
		}
		settings.Dirty = true
		ShowMessage(ecs, "Window "+res.Label)
	}

	if input.Action(cfg.ActionCycleScrollSpeed).JustPressed {
		settings.ScrollSpeed = cycle(settings.ScrollSpeed, len(cfg.ViewerSettings.ScrollSpeeds))
		if scrollEntry, ok := components.Scroll.First(ecs.World); ok {
			components.Scroll.Get(scrollEntry).SpeedFactor = ScrollSpeedFactor(settings.ScrollSpeed)
		}
		settings.Dirty = true
		ShowMessage(ecs, fmt.Sprintf("Scroll speed %gx", ScrollSpeedFactor(settings.ScrollSpeed)))
	}

	if settings.Dirty {
		settings.Dirty = false
		saved := &SavedSettings{
			Fullscreen:      settings.Fullscreen,
			ResolutionIndex: settings.ResolutionIndex,
			ScrollSpeed:     settings.ScrollSpeed,
		}
		if err := SaveSettings(saved); err != nil {
			logger.L().Warn("could not save settings", zap.Error(err))
		}
	}
}

// cycle steps i to the next of n options, wrapping around. Out of range
// values restart at the first option.
func cycle(i, n int) int {
	if n <= 0 || i < 0 || i >= n-1 {
		return 0
	}
	return i + 1
}
