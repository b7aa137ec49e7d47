package checkpoints

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{"empty", "", 10, nil},
		{"fits", "Loading the text...", 40, []string{"Loading the text..."}},
		{"breaks on words", "The planet has an average", 10, []string{"The planet", "has an", "average"}},
		{"long word alone", "a Fahrenheitish b", 5, []string{"a", "Fahrenheitish", "b"}},
		{"collapses spaces", "  one   two ", 20, []string{"one two"}},
		{"no width", "one two", 0, []string{"one two"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.in, tt.width))
		})
	}
}

func TestSubtitleLinesKeepsEveryWord(t *testing.T) {
	cp := Checkpoint{Subtitle: planetSubtitle(210)}
	lines := cp.SubtitleLines(42)
	for _, l := range lines {
		assert.LessOrEqual(t, len(l), 42)
	}
	assert.Equal(t, cp.Subtitle, joinLines(lines))
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += " "
		}
		out += l
	}
	return out
}
