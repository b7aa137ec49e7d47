package navigation

import "github.com/automoto/solar-ride/gamemath"

// DefaultSampleCount is the path resolution used by the ride.
const DefaultSampleCount = 2000

// Path is the densely sampled curve the camera travels on. It is built once per
// session and never resampled.
type Path struct {
	samples []gamemath.Vec3
}

func NewPath(c *Curve, count int) (*Path, error) {
	samples, err := c.Samples(count)
	if err != nil {
		return nil, err
	}
	return &Path{samples: samples}, nil
}

func (p *Path) Len() int {
	return len(p.samples)
}

func (p *Path) At(i int) gamemath.Vec3 {
	return p.samples[i]
}

// Points returns a copy of every sample.
func (p *Path) Points() []gamemath.Vec3 {
	return append([]gamemath.Vec3(nil), p.samples...)
}
