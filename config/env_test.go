package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvMapDefaults(t *testing.T) {
	e, err := ParseEnvMap(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, "info", e.LogLevel)
	assert.Zero(t, e.Pages)
	assert.Empty(t, e.RouteFile)
}

func TestParseEnvMapInvalid(t *testing.T) {
	_, err := ParseEnvMap(map[string]string{"RIDE_PAGES": "many"})
	assert.Error(t, err)
}

func TestEnvApply(t *testing.T) {
	scroll, ride, data, debug := Scroll, Ride, Data, Debug
	t.Cleanup(func() { Scroll, Ride, Data, Debug = scroll, ride, data, debug })

	e, err := ParseEnvMap(map[string]string{
		"RIDE_PAGES":        "12",
		"RIDE_SAMPLES":      "500",
		"RIDE_PEOPLE_URL":   "http://localhost:9000/astros.json",
		"RIDE_BODIES_URL":   "http://localhost:9000/bodies/",
		"RIDE_HTTP_TIMEOUT": "3s",
		"RIDE_DEBUG":        "true",
	})
	require.NoError(t, err)
	e.Apply()

	assert.Equal(t, 12, Scroll.Pages)
	assert.Equal(t, 500, Ride.SampleCount)
	assert.Equal(t, "http://localhost:9000/astros.json", Data.PeopleURL)
	assert.Equal(t, "http://localhost:9000/bodies/", Data.BodiesURL)
	assert.Equal(t, 3*time.Second, Data.HTTPTimeout)
	assert.True(t, Debug.Overlay)
}

func TestEnvApplyKeepsDefaultsWhenUnset(t *testing.T) {
	scroll, ride := Scroll, Ride
	t.Cleanup(func() { Scroll, Ride = scroll, ride })

	Env{Samples: 1}.Apply()
	assert.Equal(t, 30, Scroll.Pages)
	assert.Equal(t, 2000, Ride.SampleCount, "a single sample is ignored")
}
