package systems

import (
	"fmt"

	"github.com/automoto/solar-ride/components"
	cfg "github.com/automoto/solar-ride/config"
	"github.com/automoto/solar-ride/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the progress bar, the checkpoint the rig is at and the
// state of the data load.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	margin := cfg.UI.HUDMargin
	face := fonts.Body.Get()

	offset := 0.0
	if entry, ok := components.Scroll.First(ecs.World); ok {
		offset = components.Scroll.Get(entry).Offset
	}

	// Progress bar along the bottom edge
	barH := cfg.UI.ProgressHeight
	vector.FillRect(screen, 0, height-barH, width, barH, cfg.UI.ProgressBgColor, false)
	vector.FillRect(screen, 0, height-barH, width*float32(offset), barH, cfg.UI.ProgressBarColor, false)

	if cp, ok := ActiveCheckpoint(ecs); ok {
		text.Draw(screen, cp.Title, face, int(margin), int(margin)+face.Metrics().Ascent.Ceil(), cfg.Checkpoint.ActiveTitleColor)
	}

	if status := fetchStatus(ecs); status != "" {
		b := text.BoundString(face, status)
		x := int(width) - b.Dx() - int(margin)
		text.Draw(screen, status, face, x, int(margin)+face.Metrics().Ascent.Ceil(), cfg.UI.HUDTextColor)
	}
}

func fetchStatus(ecs *ecs.ECS) string {
	entry, ok := components.SkyData.First(ecs.World)
	if !ok {
		return ""
	}
	sky := components.SkyData.Get(entry)
	switch sky.State {
	case components.FetchPending:
		return "Fetching sky data..."
	case components.FetchFailed:
		return "Sky data unavailable"
	case components.FetchBound:
		if sky.People >= 0 {
			return fmt.Sprintf("%d people in space", sky.People)
		}
	}
	return ""
}
