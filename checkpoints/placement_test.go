package checkpoints

import (
	"testing"

	"github.com/automoto/solar-ride/gamemath"
	"github.com/automoto/solar-ride/skydata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testControlPoints = []gamemath.Vec3{
	{X: 20, Y: 0, Z: 10},
	{X: 21, Y: 0, Z: 0},
	{X: 28.5, Y: 0.5, Z: -11},
	{X: 30, Y: 1, Z: -13},
	{X: 33, Y: 2, Z: -16},
	{X: 27, Y: 5, Z: -33},
	{X: 18, Y: 5, Z: -40},
	{X: 5, Y: 3, Z: -50},
	{X: 7, Y: 0, Z: -60},
	{X: 7, Y: 0, Z: -62},
}

func testAnchors() []Anchor {
	anchors := []Anchor{{
		Slot:         0,
		ControlPoint: 0,
		Offset:       gamemath.NewVec3(-3, 0, -1),
		Rotation:     gamemath.Euler{Y: -0.2768},
	}}
	for i, body := range skydata.BodyIDs {
		anchors = append(anchors, Anchor{
			Slot:         i + 1,
			Body:         body,
			ControlPoint: i + 2,
			Offset:       gamemath.NewVec3(-3, 0, 2),
			Rotation:     gamemath.Euler{Y: 1.05},
		})
	}
	return anchors
}

func testRecords() []skydata.CelestialRecord {
	names := []string{"Mercury", "Venus", "Earth", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune"}
	temps := []float64{440, 737, 288, 210, 165, 134, 76, 72}
	out := make([]skydata.CelestialRecord, len(names))
	for i := range names {
		out[i] = skydata.CelestialRecord{ID: skydata.BodyIDs[i], EnglishName: names[i], AvgTemp: temps[i]}
	}
	return out
}

func newTestPlacement(t *testing.T) *Placement {
	t.Helper()
	p, err := NewPlacement(testControlPoints, testAnchors(), skydata.BodyIDs, DefaultText)
	require.NoError(t, err)
	return p
}

func TestKelvinToFahrenheit(t *testing.T) {
	assert.Equal(t, "32.00", KelvinToFahrenheit(273.15))
	assert.Equal(t, "-459.67", KelvinToFahrenheit(0))
	assert.Equal(t, "-81.67", KelvinToFahrenheit(210))
	assert.Equal(t, "212.00", KelvinToFahrenheit(373.15))
}

func TestGenerateBindsAllCheckpoints(t *testing.T) {
	p := newTestPlacement(t)
	require.NoError(t, p.Generate(testRecords(), 7))

	cps := p.Checkpoints()
	require.Len(t, cps, 9)
	for i, cp := range cps {
		assert.Equal(t, i, cp.Slot)
		assert.True(t, cp.Bound)
	}

	assert.Equal(t, "Welcome to the ride", cps[0].Title)
	assert.Contains(t, cps[0].Subtitle, "7")

	slot, ok := p.SlotFor("mars")
	require.True(t, ok)
	mars := cps[slot]
	assert.Equal(t, "Mars", mars.Title)
	assert.Contains(t, mars.Subtitle, "210 Kelvin")
	assert.Contains(t, mars.Subtitle, "-81.67")
}

func TestGeneratePositionsFromAnchors(t *testing.T) {
	p := newTestPlacement(t)
	require.NoError(t, p.Generate(testRecords(), 7))

	cps := p.Checkpoints()
	assert.Equal(t, gamemath.NewVec3(17, 0, 9), cps[0].Position)
	assert.Equal(t, gamemath.NewVec3(25.5, 0.5, -9), cps[1].Position)
	assert.Equal(t, -0.2768, cps[0].Rotation.Y)
}

func TestGenerateIsIdempotent(t *testing.T) {
	p := newTestPlacement(t)
	require.NoError(t, p.Generate(testRecords(), 7))
	first := p.Checkpoints()

	other := testRecords()
	other[0].EnglishName = "Changed"
	require.NoError(t, p.Generate(other, 99))
	require.NoError(t, p.Generate(testRecords(), 7))

	assert.Equal(t, first, p.Checkpoints())
}

func TestGenerateIgnoresRecordOrder(t *testing.T) {
	p := newTestPlacement(t)
	recs := testRecords()
	for i, j := 0, len(recs)-1; i < j; i, j = i+1, j-1 {
		recs[i], recs[j] = recs[j], recs[i]
	}
	require.NoError(t, p.Generate(recs, 7))

	for _, cp := range p.Checkpoints()[1:] {
		slot, _ := p.SlotFor(cp.Body)
		assert.Equal(t, slot, cp.Slot)
	}
	assert.Equal(t, "Mercury", p.Checkpoints()[1].Title)
}

func TestGenerateWithoutRecordsIsNoop(t *testing.T) {
	p := newTestPlacement(t)
	require.NoError(t, p.Generate(nil, 7))

	assert.False(t, p.Generated())
	cps := p.Checkpoints()
	require.Len(t, cps, 1)
	assert.False(t, cps[0].Bound)
	assert.Equal(t, "Loading the text...", cps[0].Subtitle)
}

func TestGenerateFailsOnMissingBody(t *testing.T) {
	p := newTestPlacement(t)
	recs := testRecords()[:5]

	err := p.Generate(recs, 7)
	require.ErrorIs(t, err, ErrInsufficientCelestialData)
	assert.False(t, p.Generated())
	assert.Len(t, p.Checkpoints(), 1)

	require.NoError(t, p.Generate(testRecords(), 7))
	assert.Len(t, p.Checkpoints(), 9)
}

func TestGenerateUnknownHeadcount(t *testing.T) {
	p := newTestPlacement(t)
	require.NoError(t, p.Generate(testRecords(), UnknownHeadcount))

	assert.NotContains(t, p.Checkpoints()[0].Subtitle, "-1")
}

func TestCheckpointsReturnsCopy(t *testing.T) {
	p := newTestPlacement(t)
	require.NoError(t, p.Generate(testRecords(), 7))

	cps := p.Checkpoints()
	cps[1].Title = "Pluto"
	assert.Equal(t, "Mercury", p.Checkpoints()[1].Title)
}
