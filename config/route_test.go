package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/solar-ride/checkpoints"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRoute(t *testing.T) {
	r, err := DefaultRoute()
	require.NoError(t, err)

	assert.Equal(t, "centripetal", r.Curve.Type)
	assert.Len(t, r.ControlPoints, 10)
	assert.Equal(t, []string{"mercure", "venus", "terre", "mars", "jupiter", "saturn", "uranus", "neptune"}, r.Bodies)
	require.Len(t, r.Anchors, 9)

	for i, a := range r.Anchors {
		assert.Equal(t, i, a.Slot)
	}
	assert.Empty(t, r.Anchors[0].Body, "welcome anchor has no body")
	assert.Equal(t, "mars", r.Anchors[4].Body)
}

func TestParseRouteRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "one control point",
			yaml: "controlPoints: [{x: 1, y: 0, z: 0}]\nbodies: [mars]\n",
			want: ErrInvalidRoute,
		},
		{
			name: "no bodies",
			yaml: "controlPoints: [{x: 0, y: 0, z: 0}, {x: 1, y: 0, z: 0}]\n",
			want: ErrInvalidRoute,
		},
		{
			name: "anchor past the rail",
			yaml: `controlPoints: [{x: 0, y: 0, z: 0}, {x: 1, y: 0, z: 0}]
bodies: [mars]
anchors:
  - {slot: 0, controlPoint: 0}
  - {slot: 1, body: mars, controlPoint: 5}
`,
			want: checkpoints.ErrAnchorOutOfRange,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRoute([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseRouteMalformed(t *testing.T) {
	_, err := ParseRoute([]byte("controlPoints: {"))
	assert.Error(t, err)
}

func TestLoadRouteFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "route.yaml")
	data := `curve: {type: chordal}
controlPoints: [{x: 0, y: 0, z: 0}, {x: 0, y: 0, z: -10}]
bodies: [mars]
anchors:
  - {slot: 0, controlPoint: 0, offset: {x: -3, y: 0, z: 0}}
  - {slot: 1, body: mars, controlPoint: 1}
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	r, err := LoadRoute(path)
	require.NoError(t, err)
	assert.Equal(t, "chordal", r.Curve.Type)
	assert.Equal(t, -3.0, r.Anchors[0].Offset.X)

	_, err = LoadRoute(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadRouteEmptyPathUsesEmbedded(t *testing.T) {
	r, err := LoadRoute("")
	require.NoError(t, err)
	assert.Len(t, r.Anchors, 9)
}
