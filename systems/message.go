package systems

import (
	"strings"

	"github.com/automoto/solar-ride/components"
	cfg "github.com/automoto/solar-ride/config"
	"github.com/automoto/solar-ride/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// Cached font face for message rendering (lazy initialized)
var messageFontFace font.Face

// ShowMessage puts a toast on screen, replacing any current one.
func ShowMessage(ecs *ecs.ECS, msg string) {
	state := getOrCreateMessageState(ecs)
	state.Text = msg
	state.Remaining = cfg.Message.DisplayDuration
}

// UpdateMessage counts down the active toast
func UpdateMessage(ecs *ecs.ECS) {
	state := getOrCreateMessageState(ecs)
	if state.Remaining <= 0 {
		return
	}
	state.Remaining -= frameDelta(ecs)
	if state.Remaining <= 0 {
		state.Remaining = 0
		state.Text = ""
	}
}

// DrawMessage renders the active message at the top center of the screen
func DrawMessage(ecs *ecs.ECS, screen *ebiten.Image) {
	state := getOrCreateMessageState(ecs)
	if state.Text == "" {
		return
	}

	// Resolve placeholders based on input method
	input := getOrCreateInput(ecs)
	resolvedText := resolvePlaceholders(state.Text, input.LastInputMethod)

	// Lazy initialize cached font face
	if messageFontFace == nil {
		messageFontFace = fonts.Body.Get()
	}

	// Fade out over the last half second
	alpha := min(state.Remaining/0.5, 1)

	bounds := text.BoundString(messageFontFace, resolvedText) //nolint:staticcheck // TODO: migrate to text/v2
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()

	padding := cfg.Message.BoxPadding
	boxWidth := float32(textWidth) + float32(padding)*2
	boxHeight := float32(textHeight) + float32(padding)*2

	screenWidth := float64(screen.Bounds().Dx())
	boxX := float32((screenWidth - float64(boxWidth)) / 2)
	boxY := float32(cfg.Message.TopMargin)

	vector.FillRect(
		screen,
		boxX, boxY,
		boxWidth, boxHeight,
		fade(cfg.Message.BoxColor, alpha),
		false,
	)

	textX := int(boxX + float32(padding))
	textY := int(boxY + float32(padding) + float32(textHeight))
	text.Draw(screen, resolvedText, messageFontFace, textX, textY, fade(cfg.Message.TextColor, alpha))
}

// resolvePlaceholders replaces {placeholder} tokens with input-specific labels
func resolvePlaceholders(text string, inputMethod components.InputMethod) string {
	var labels map[string]string

	switch inputMethod {
	case components.InputGamepad:
		labels = cfg.Message.GamepadLabels
	case components.InputMouse:
		labels = cfg.Message.MouseLabels
	default:
		labels = cfg.Message.KeyboardLabels
	}

	result := text
	for placeholder, label := range labels {
		result = strings.ReplaceAll(result, "{"+placeholder+"}", label)
	}

	return result
}

// getOrCreateMessageState returns the singleton MessageState component
func getOrCreateMessageState(ecs *ecs.ECS) *components.MessageStateData {
	entry, ok := components.MessageState.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.MessageState))
	}
	return components.MessageState.Get(entry)
}
