package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Affine is a 2D affine transform:
//
//	x' = A*x + C*y + Tx
//	y' = B*x + D*y + Ty
type Affine struct {
	A, B, C, D float64
	Tx, Ty     float64
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{A: 1, D: 1}
}

// TRS builds translate * rotate * scale. Rotation is in degrees, counter-clockwise in a y-up space.
func TRS(pos dmath.Vec2, rotationDeg float64, scale dmath.Vec2) Affine {
	rad := rotationDeg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Affine{
		A:  cos * scale.X,
		B:  sin * scale.X,
		C:  -sin * scale.Y,
		D:  cos * scale.Y,
		Tx: pos.X,
		Ty: pos.Y,
	}
}

// Mul returns m * n, i.e. n is applied first.
func (m Affine) Mul(n Affine) Affine {
	return Affine{
		A:  m.A*n.A + m.C*n.B,
		B:  m.B*n.A + m.D*n.B,
		C:  m.A*n.C + m.C*n.D,
		D:  m.B*n.C + m.D*n.D,
		Tx: m.A*n.Tx + m.C*n.Ty + m.Tx,
		Ty: m.B*n.Tx + m.D*n.Ty + m.Ty,
	}
}

// Apply transforms p.
func (m Affine) Apply(p dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{
		X: m.A*p.X + m.C*p.Y + m.Tx,
		Y: m.B*p.X + m.D*p.Y + m.Ty,
	}
}

// Det returns the determinant of the linear part.
func (m Affine) Det() float64 {
	return m.A*m.D - m.B*m.C
}

// Invert returns the inverse transform. A singular transform has no inverse;
// the zero Affine is returned, which collapses every point onto the origin.
func (m Affine) Invert() Affine {
	det := m.Det()
	if det == 0 {
		return Affine{}
	}
	inv := 1 / det
	a := m.D * inv
	b := -m.B * inv
	c := -m.C * inv
	d := m.A * inv
	return Affine{
		A:  a,
		B:  b,
		C:  c,
		D:  d,
		Tx: -(a*m.Tx + c*m.Ty),
		Ty: -(b*m.Tx + d*m.Ty),
	}
}
