package systems

import (
	"github.com/automoto/solar-ride/components"
	cfg "github.com/automoto/solar-ride/config"
	"github.com/automoto/solar-ride/navigation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScroll turns this frame's input into scroll travel and eases the
// ride offset toward the new target.
func UpdateScroll(ecs *ecs.ECS) {
	entry, ok := components.Scroll.First(ecs.World)
	if !ok {
		return
	}
	scroll := components.Scroll.Get(entry)
	input := getOrCreateInput(ecs)

	if input.Action(cfg.ActionRestart).JustPressed {
		scroll.Target = 0
	}

	travel := scrollTravel(scroll, input)
	total := float64(cfg.Scroll.Pages) * cfg.Scroll.PageHeight
	scroll.Target = navigation.Advance(scroll.Target, travel, total)
	scroll.Offset = navigation.Damp(scroll.Offset, scroll.Target, cfg.Scroll.Damping, frameDelta(ecs))
}

// scrollTravel sums this frame's input in pixels; positive rides forward.
func scrollTravel(scroll *components.ScrollData, input *components.InputData) float64 {
	speed := scroll.SpeedFactor
	if speed <= 0 {
		speed = 1
	}

	var pixels float64

	// Wheel up is positive in ebiten and rides backwards
	pixels -= input.WheelY * cfg.Scroll.WheelStep * speed

	if input.Action(cfg.ActionScrollForward).Pressed {
		pixels += cfg.Scroll.KeyStep * speed
	}
	if input.Action(cfg.ActionScrollBack).Pressed {
		pixels -= cfg.Scroll.KeyStep * speed
	}
	if input.Action(cfg.ActionPageForward).JustPressed {
		pixels += cfg.Scroll.PageHeight
	}
	if input.Action(cfg.ActionPageBack).JustPressed {
		pixels -= cfg.Scroll.PageHeight
	}

	pixels += input.AnalogY * cfg.Scroll.AnalogFactor * speed

	if cfg.Scroll.DragEnabled {
		pixels += dragTravel(scroll)
	}
	return pixels
}

// dragTravel follows the cursor while the left button is held. Dragging up
// rides forward, like a touch scroll.
func dragTravel(scroll *components.ScrollData) float64 {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		scroll.Dragging = false
		return 0
	}
	_, y := ebiten.CursorPosition()
	if !scroll.Dragging {
		scroll.Dragging = true
		scroll.DragLastY = y
		return 0
	}
	dy := scroll.DragLastY - y
	scroll.DragLastY = y
	return float64(dy)
}
