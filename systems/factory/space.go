package factory

import (
	"math"

	"github.com/automoto/solar-ride/archetypes"
	"github.com/automoto/solar-ride/components"
	"github.com/automoto/solar-ride/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds a ground-plane space covering every point plus margin on
// each side.
func CreateSpace(ecs *ecs.ECS, points []gamemath.Vec3, margin float64, cellSize int) *donburi.Entry {
	minX, minZ := math.Inf(1), math.Inf(1)
	maxX, maxZ := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minZ, maxZ = math.Min(minZ, p.Z), math.Max(maxZ, p.Z)
	}
	if len(points) == 0 {
		minX, maxX, minZ, maxZ = 0, 0, 0, 0
	}

	width := int(math.Ceil(maxX-minX+2*margin)) + cellSize
	height := int(math.Ceil(maxZ-minZ+2*margin)) + cellSize

	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{
		Space:   resolv.NewSpace(width, height, cellSize, cellSize),
		OriginX: minX - margin,
		OriginZ: minZ - margin,
		Width:   float64(width),
		Depth:   float64(height),
	})
	return space
}
