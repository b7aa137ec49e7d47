package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/automoto/solar-ride/checkpoints"
	"github.com/automoto/solar-ride/gamemath"
	"gopkg.in/yaml.v3"
)

//go:embed route.yaml
var defaultRoute []byte

var ErrInvalidRoute = errors.New("invalid route")

// CurveSpec selects the curve parameterization for the route.
type CurveSpec struct {
	Type    string  `yaml:"type"`
	Tension float64 `yaml:"tension"`
}

// Route is the authored ride: the camera rail and the checkpoint anchors
// hanging off it.
type Route struct {
	Curve         CurveSpec            `yaml:"curve"`
	ControlPoints []gamemath.Vec3      `yaml:"controlPoints"`
	Bodies        []string             `yaml:"bodies"`
	Anchors       []checkpoints.Anchor `yaml:"anchors"`
}

// DefaultRoute parses the embedded route.
func DefaultRoute() (*Route, error) {
	return ParseRoute(defaultRoute)
}

// LoadRoute reads a route file, or the embedded route when path is empty.
func LoadRoute(path string) (*Route, error) {
	if path == "" {
		return DefaultRoute()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read route %s: %w", path, err)
	}
	return ParseRoute(data)
}

func ParseRoute(data []byte) (*Route, error) {
	var r Route
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse route: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Validate checks the route shape. Anchors and bodies are checked again by
// the checkpoint placement when data is bound.
func (r *Route) Validate() error {
	if len(r.ControlPoints) < 2 {
		return fmt.Errorf("%w: need at least 2 control points, got %d", ErrInvalidRoute, len(r.ControlPoints))
	}
	if len(r.Bodies) == 0 {
		return fmt.Errorf("%w: no bodies listed", ErrInvalidRoute)
	}
	if err := checkpoints.ValidateAnchors(r.Anchors, r.Bodies, len(r.ControlPoints)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRoute, err)
	}
	return nil
}
