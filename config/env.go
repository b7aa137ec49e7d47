package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Env holds the environment overrides for the ride.
type Env struct {
	Pages       int           `env:"RIDE_PAGES"`
	Samples     int           `env:"RIDE_SAMPLES"`
	PeopleURL   string        `env:"RIDE_PEOPLE_URL"`
	BodiesURL   string        `env:"RIDE_BODIES_URL"`
	HTTPTimeout time.Duration `env:"RIDE_HTTP_TIMEOUT"`
	RouteFile   string        `env:"RIDE_ROUTE_FILE"`
	LogLevel    string        `env:"RIDE_LOG_LEVEL" envDefault:"info"`
	Debug       bool          `env:"RIDE_DEBUG"`
}

// ParseEnv loads overrides from the process environment.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// ParseEnvMap loads overrides from vars instead of the process environment.
func ParseEnvMap(vars map[string]string) (Env, error) {
	var e Env
	if err := env.ParseWithOptions(&e, env.Options{Environment: vars}); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// Apply copies set values over the global configuration.
func (e Env) Apply() {
	if e.Pages > 0 {
		Scroll.Pages = e.Pages
	}
	if e.Samples > 1 {
		Ride.SampleCount = e.Samples
	}
	if e.PeopleURL != "" {
		Data.PeopleURL = e.PeopleURL
	}
	if e.BodiesURL != "" {
		Data.BodiesURL = e.BodiesURL
	}
	if e.HTTPTimeout > 0 {
		Data.HTTPTimeout = e.HTTPTimeout
	}
	if e.Debug {
		Debug.Overlay = true
	}
}
