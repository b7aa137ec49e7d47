package config

import "image/color"

// MessageConfig holds toast message settings
type MessageConfig struct {
	DisplayDuration float64 // Seconds
	TopMargin       float64
	BoxPadding      float64
	BoxColor        color.RGBA
	TextColor       color.RGBA

	StartHint string

	// Labels substituted for {placeholder} tokens per input device
	KeyboardLabels map[string]string
	GamepadLabels  map[string]string
	MouseLabels    map[string]string
}

var Message MessageConfig

func init() {
	Message = MessageConfig{
		DisplayDuration: 4,
		TopMargin:       40,
		BoxPadding:      8,
		BoxColor:        BlackOverlay,
		TextColor:       White,
		StartHint:       "{scroll} to ride, {speed} to change speed",
		KeyboardLabels: map[string]string{
			"scroll": "Arrow keys or Page Down",
			"speed":  "Tab",
		},
		GamepadLabels: map[string]string{
			"scroll": "Left stick",
			"speed":  "Start",
		},
		MouseLabels: map[string]string{
			"scroll": "Wheel or drag",
			"speed":  "Tab",
		},
	}
}
