// Package navigation turns a scroll offset into a camera pose travelling along
// an authored Catmull-Rom curve.
package navigation

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/solar-ride/gamemath"
)

var (
	ErrTooFewControlPoints = errors.New("curve needs at least 2 control points")
	ErrTooFewSamples       = errors.New("sample count must be at least 2")
)

// CurveType selects the Catmull-Rom parameterization.
type CurveType string

const (
	Centripetal CurveType = "centripetal"
	Chordal     CurveType = "chordal"
	Uniform     CurveType = "catmullrom"
)

// DefaultTension only affects Uniform curves.
const DefaultTension = 0.5

// Curve is an open Catmull-Rom spline through an ordered list of control
// points. It is immutable after NewCurve.
type Curve struct {
	points  []gamemath.Vec3
	kind    CurveType
	tension float64
}

type CurveOption func(*Curve)

func WithType(kind CurveType) CurveOption {
	return func(c *Curve) { c.kind = kind }
}

func WithTension(tension float64) CurveOption {
	return func(c *Curve) { c.tension = tension }
}

// NewCurve builds a centripetal curve unless another type is requested.
func NewCurve(points []gamemath.Vec3, opts ...CurveOption) (*Curve, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewControlPoints, len(points))
	}

	c := &Curve{
		points:  append([]gamemath.Vec3(nil), points...),
		kind:    Centripetal,
		tension: DefaultTension,
	}
	for _, opt := range opts {
		opt(c)
	}

	switch c.kind {
	case Centripetal, Chordal, Uniform:
	default:
		return nil, fmt.Errorf("unknown curve type %q", c.kind)
	}
	return c, nil
}

// ControlPoints returns a copy of the control points.
func (c *Curve) ControlPoints() []gamemath.Vec3 {
	return append([]gamemath.Vec3(nil), c.points...)
}

func (c *Curve) Type() CurveType {
	return c.kind
}

// Point evaluates the curve at t in [0, 1].
func (c *Curve) Point(t float64) gamemath.Vec3 {
	t = gamemath.Clamp01(t)
	l := len(c.points)

	p := float64(l-1) * t
	seg := int(math.Floor(p))
	weight := p - float64(seg)
	if seg >= l-1 {
		seg = l - 2
		weight = 1
	}

	p1 := c.points[seg]
	p2 := c.points[seg+1]

	// open ends are extrapolated by mirroring the neighbouring point
	var p0, p3 gamemath.Vec3
	if seg > 0 {
		p0 = c.points[seg-1]
	} else {
		p0 = c.points[0].Add(c.points[0].Sub(c.points[1]))
	}
	if seg+2 < l {
		p3 = c.points[seg+2]
	} else {
		p3 = c.points[l-1].Add(c.points[l-1].Sub(c.points[l-2]))
	}

	if c.kind == Uniform {
		return gamemath.Vec3{
			X: uniformCubic(p0.X, p1.X, p2.X, p3.X, c.tension).at(weight),
			Y: uniformCubic(p0.Y, p1.Y, p2.Y, p3.Y, c.tension).at(weight),
			Z: uniformCubic(p0.Z, p1.Z, p2.Z, p3.Z, c.tension).at(weight),
		}
	}

	exp := 0.25
	if c.kind == Chordal {
		exp = 0.5
	}
	dt0 := math.Pow(p0.DistanceSquared(p1), exp)
	dt1 := math.Pow(p1.DistanceSquared(p2), exp)
	dt2 := math.Pow(p2.DistanceSquared(p3), exp)

	// coincident points would divide by zero
	if dt1 < 1e-4 {
		dt1 = 1
	}
	if dt0 < 1e-4 {
		dt0 = dt1
	}
	if dt2 < 1e-4 {
		dt2 = dt1
	}

	return gamemath.Vec3{
		X: nonUniformCubic(p0.X, p1.X, p2.X, p3.X, dt0, dt1, dt2).at(weight),
		Y: nonUniformCubic(p0.Y, p1.Y, p2.Y, p3.Y, dt0, dt1, dt2).at(weight),
		Z: nonUniformCubic(p0.Z, p1.Z, p2.Z, p3.Z, dt0, dt1, dt2).at(weight),
	}
}

// Samples returns count points evenly spaced in curve parameter, from the first
// control point to the last.
func (c *Curve) Samples(count int) ([]gamemath.Vec3, error) {
	if count < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSamples, count)
	}
	out := make([]gamemath.Vec3, count)
	for i := range out {
		out[i] = c.Point(float64(i) / float64(count-1))
	}
	return out, nil
}

// cubic is a Hermite polynomial c0 + c1*t + c2*t^2 + c3*t^3.
type cubic struct {
	c0, c1, c2, c3 float64
}

func hermite(x0, x1, t0, t1 float64) cubic {
	return cubic{
		c0: x0,
		c1: t0,
		c2: -3*x0 + 3*x1 - 2*t0 - t1,
		c3: 2*x0 - 2*x1 + t0 + t1,
	}
}

func (c cubic) at(t float64) float64 {
	t2 := t * t
	return c.c0 + c.c1*t + c.c2*t2 + c.c3*t2*t
}

func uniformCubic(x0, x1, x2, x3, tension float64) cubic {
	return hermite(x1, x2, tension*(x2-x0), tension*(x3-x1))
}

func nonUniformCubic(x0, x1, x2, x3, dt0, dt1, dt2 float64) cubic {
	t1 := (x1-x0)/dt0 - (x2-x0)/(dt0+dt1) + (x2-x1)/dt1
	t2 := (x2-x1)/dt1 - (x3-x1)/(dt1+dt2) + (x3-x2)/dt2
	return hermite(x1, x2, t1*dt1, t2*dt1)
}
