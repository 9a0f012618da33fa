package core

import "math"

// ONB is an orthonormal basis built around a W axis
type ONB struct {
	U, V, W Vec3
}

// NewONBFromW builds a right-handed basis whose W axis points along n
func NewONBFromW(n Vec3) ONB {
	w := n.Normalize()

	// Pick a helper axis that is not parallel to w
	a := NewVec3(1, 0, 0)
	if math.Abs(w.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	}

	v := w.Cross(a).Normalize()
	u := w.Cross(v)
	return ONB{U: u, V: v, W: w}
}

// Local transforms a vector expressed in basis coordinates into world space
func (o ONB) Local(a Vec3) Vec3 {
	return o.U.Multiply(a.X).Add(o.V.Multiply(a.Y)).Add(o.W.Multiply(a.Z))
}
