package factory

import (
	"fmt"

	"github.com/automoto/solar-ride/archetypes"
	"github.com/automoto/solar-ride/components"
	"github.com/automoto/solar-ride/config"
	"github.com/automoto/solar-ride/navigation"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRoute builds the curve and samples it once for the whole session.
// Curve settings missing from the route fall back to config.Ride.
func CreateRoute(ecs *ecs.ECS, route *config.Route, samples int) (*donburi.Entry, error) {
	curveType, tension := route.Curve.Type, route.Curve.Tension
	if curveType == "" {
		curveType = config.Ride.CurveType
	}
	if tension == 0 {
		tension = config.Ride.Tension
	}

	opts := []navigation.CurveOption{navigation.WithTension(tension)}
	if curveType != "" {
		opts = append(opts, navigation.WithType(navigation.CurveType(curveType)))
	}

	curve, err := navigation.NewCurve(route.ControlPoints, opts...)
	if err != nil {
		return nil, fmt.Errorf("build curve: %w", err)
	}
	path, err := navigation.NewPath(curve, samples)
	if err != nil {
		return nil, fmt.Errorf("sample curve: %w", err)
	}

	entry := archetypes.Route.Spawn(ecs)
	components.Route.SetValue(entry, components.RouteData{
		Route: route,
		Curve: curve,
		Path:  path,
	})
	return entry, nil
}
