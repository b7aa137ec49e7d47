package checkpoints

import (
	"fmt"
	"strconv"
	"strings"
)

// KelvinToFahrenheit converts k and formats it with two decimals.
func KelvinToFahrenheit(k float64) string {
	f := (k-273.15)*(9.0/5.0) + 32
	return strconv.FormatFloat(f, 'f', 2, 64)
}

func formatKelvin(k float64) string {
	return strconv.FormatFloat(k, 'f', -1, 64)
}

func welcomeSubtitle(people int) string {
	if people < 0 {
		return "Did you know that there are people in space right now?"
	}
	return fmt.Sprintf("Did you know that there's %d people in space right now?", people)
}

func planetSubtitle(avgTemp float64) string {
	return fmt.Sprintf("The planet has an average temperature of %s Kelvin, which is %s in Fahrenheit",
		formatKelvin(avgTemp), KelvinToFahrenheit(avgTemp))
}

// Wrap breaks s into lines of at most width runes at word boundaries. Words
// longer than width get a line of their own.
func Wrap(s string, width int) []string {
	words := strings.Fields(s)
	if width <= 0 || len(words) == 0 {
		if len(words) == 0 {
			return nil
		}
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	var line strings.Builder
	lineLen := 0
	for _, w := range words {
		n := len([]rune(w))
		if lineLen > 0 && lineLen+1+n > width {
			lines = append(lines, line.String())
			line.Reset()
			lineLen = 0
		}
		if lineLen > 0 {
			line.WriteByte(' ')
			lineLen++
		}
		line.WriteString(w)
		lineLen += n
	}
	return append(lines, line.String())
}

// SubtitleLines is the subtitle wrapped for a label width in runes.
func (c Checkpoint) SubtitleLines(width int) []string {
	return Wrap(c.Subtitle, width)
}
