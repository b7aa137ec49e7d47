package gamemath

import "math"

// Euler holds rotations in radians applied in X, Y, Z order.
type Euler struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Quat is a rotation quaternion. The zero value is not a valid rotation; use
// IdentityQuat.
type Quat struct {
	X, Y, Z, W float64
}

func IdentityQuat() Quat {
	return Quat{W: 1}
}

// QuatFromEuler builds the quaternion for e using XYZ order.
func QuatFromEuler(e Euler) Quat {
	c1, s1 := math.Cos(e.X/2), math.Sin(e.X/2)
	c2, s2 := math.Cos(e.Y/2), math.Sin(e.Y/2)
	c3, s3 := math.Cos(e.Z/2), math.Sin(e.Z/2)

	return Quat{
		X: s1*c2*c3 + c1*s2*s3,
		Y: c1*s2*c3 - s1*c2*s3,
		Z: c1*c2*s3 + s1*s2*c3,
		W: c1*c2*c3 - s1*s2*s3,
	}
}

// Euler extracts XYZ-order angles from a unit quaternion.
func (q Quat) Euler() Euler {
	x2, y2, z2 := q.X+q.X, q.Y+q.Y, q.Z+q.Z
	xx, xy, xz := q.X*x2, q.X*y2, q.X*z2
	yy, yz, zz := q.Y*y2, q.Y*z2, q.Z*z2
	wx, wy, wz := q.W*x2, q.W*y2, q.W*z2

	m11 := 1 - (yy + zz)
	m12 := xy - wz
	m13 := xz + wy
	m22 := 1 - (xx + zz)
	m23 := yz - wx
	m32 := yz + wx
	m33 := 1 - (xx + yy)

	var e Euler
	e.Y = math.Asin(Clamp(m13, -1, 1))
	if math.Abs(m13) < 0.9999999 {
		e.X = math.Atan2(-m23, m33)
		e.Z = math.Atan2(-m12, m11)
	} else {
		// gimbal lock: fold roll into X
		e.X = math.Atan2(m32, m22)
		e.Z = 0
	}
	return e
}

func (q Quat) Dot(o Quat) float64 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

func (q Quat) Length() float64 {
	return math.Sqrt(q.Dot(q))
}

func (q Quat) Normalize() Quat {
	l := q.Length()
	if l == 0 {
		return IdentityQuat()
	}
	return Quat{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

func (q Quat) Conjugate() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

// Rotate applies the rotation to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// Slerp interpolates along the shortest arc from q to o. t is clamped to [0, 1]
// so oversized frame deltas cannot overshoot the target.
func (q Quat) Slerp(o Quat, t float64) Quat {
	t = Clamp01(t)
	if t == 0 {
		return q
	}
	if t == 1 {
		return o
	}

	cosHalf := q.Dot(o)
	if cosHalf < 0 {
		o = Quat{-o.X, -o.Y, -o.Z, -o.W}
		cosHalf = -cosHalf
	}
	if cosHalf >= 1 {
		return q
	}

	sqrSinHalf := 1 - cosHalf*cosHalf
	if sqrSinHalf <= 1e-12 {
		s := 1 - t
		return Quat{
			X: s*q.X + t*o.X,
			Y: s*q.Y + t*o.Y,
			Z: s*q.Z + t*o.Z,
			W: s*q.W + t*o.W,
		}.Normalize()
	}

	sinHalf := math.Sqrt(sqrSinHalf)
	half := math.Atan2(sinHalf, cosHalf)
	ra := math.Sin((1-t)*half) / sinHalf
	rb := math.Sin(t*half) / sinHalf

	return Quat{
		X: q.X*ra + o.X*rb,
		Y: q.Y*ra + o.Y*rb,
		Z: q.Z*ra + o.Z*rb,
		W: q.W*ra + o.W*rb,
	}
}

// AngleTo returns the rotation angle between q and o in radians.
func (q Quat) AngleTo(o Quat) float64 {
	return 2 * math.Acos(Clamp(math.Abs(q.Dot(o)), -1, 1))
}
