package core

import "math"

// ONB is an orthonormal basis whose W axis is aligned with a chosen direction
type ONB struct {
	axis [3]Vec3
}

// NewONB builds a right-handed frame with W along n
func NewONB(n Vec3) ONB {
	w := n.Normalize()

	// Pick a helper axis that is not nearly parallel to w
	a := NewVec3(1, 0, 0)
	if math.Abs(w.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	}

	v := w.Cross(a).Normalize()
	u := v.Cross(w)

	return ONB{axis: [3]Vec3{u, v, w}}
}

// W returns the axis the basis was built from
func (o ONB) W() Vec3 { return o.axis[2] }

// Local transforms a vector expressed in basis coordinates into world space
func (o ONB) Local(a Vec3) Vec3 {
	return o.axis[0].Multiply(a.X).
		Add(o.axis[1].Multiply(a.Y)).
		Add(o.axis[2].Multiply(a.Z))
}
