package components

import (
	"github.com/automoto/solar-ride/config"
	"github.com/automoto/solar-ride/navigation"
	"github.com/yohamta/donburi"
)

// RouteData holds the static ride geometry, built once per scene.
type RouteData struct {
	Route *config.Route
	Curve *navigation.Curve
	Path  *navigation.Path
}

var Route = donburi.NewComponentType[RouteData]()
