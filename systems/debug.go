package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/solar-ride/components"
	"github.com/automoto/solar-ride/navigation"
	"github.com/automoto/solar-ride/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	minimapSize   = 140
	minimapMargin = 10
)

// DrawDebug prints the rig's pose and draws a top-down map of the proximity
// space when the overlay is enabled.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settingsEntry, ok := components.Debug.First(ecs.World)
	if !ok || !components.Debug.Get(settingsEntry).Enabled {
		return
	}

	cameraEntry, ok := tags.CameraRig.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	var scroll components.ScrollData
	if entry, ok := components.Scroll.First(ecs.World); ok {
		scroll = *components.Scroll.Get(entry)
	}
	index := 0
	if entry, ok := components.Route.First(ecs.World); ok {
		index = navigation.SampleIndex(scroll.Offset, components.Route.Get(entry).Path.Len())
	}

	var clock components.ClockData
	if entry, ok := components.Clock.First(ecs.World); ok {
		clock = *components.Clock.Get(entry)
	}

	pos := camera.Pose.Position
	rot := camera.Pose.Orientation.Euler()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"FPS %.0f frame %.1fms (raw %.1fms) up %.0fs\noffset %.4f target %.4f sample %d\npos %.2f %.2f %.2f\nrot %.3f %.3f %.3f",
		ebiten.ActualFPS(), clock.Delta*1000, clock.Raw*1000, clock.Elapsed,
		scroll.Offset, scroll.Target, index,
		pos.X, pos.Y, pos.Z, rot.X, rot.Y, rot.Z,
	), minimapMargin, 30)

	drawMinimap(ecs, screen)
}

// drawMinimap scales the whole proximity space into a corner of the screen.
func drawMinimap(ecs *ecs.ECS, screen *ebiten.Image) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	w, h := space.Width, space.Depth
	if w == 0 || h == 0 {
		return
	}
	scale := minimapSize / max(w, h)
	originX := float64(screen.Bounds().Dx()) - minimapSize - minimapMargin
	originY := float64(minimapMargin)

	vector.FillRect(screen, float32(originX), float32(originY), minimapSize, minimapSize, color.RGBA{0, 0, 0, 140}, false)

	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvCamera) {
			c = color.RGBA{255, 80, 80, 255}
		} else if entry, ok := checkpointEntry(obj); ok && components.Checkpoint.Get(entry).Active {
			c = color.RGBA{255, 255, 100, 255}
		}
		x := originX + obj.X*scale
		y := originY + obj.Y*scale
		ow := max(obj.W*scale, 1)
		oh := max(obj.H*scale, 1)
		vector.StrokeRect(screen, float32(x), float32(y), float32(ow), float32(oh), 1, c, false)
	}
}
