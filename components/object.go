package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's footprint on the ride's ground plane (world X/Z),
// used for proximity checks.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData is the ground-plane collision space. Origin is the world X/Z that
// maps to space coordinate (0, 0); resolv cells only cover positive space.
type SpaceData struct {
	*resolv.Space
	OriginX, OriginZ float64
	Width, Depth     float64 // Extent in space coordinates
}

var Space = donburi.NewComponentType[SpaceData]()

// ToSpace converts world X/Z to space coordinates.
func (s *SpaceData) ToSpace(x, z float64) (float64, float64) {
	return x - s.OriginX, z - s.OriginZ
}
