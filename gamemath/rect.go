package gamemath

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// Rect is a node of the UI transform hierarchy. Local space has its origin at
// the pivot, x to the right and y up. Position is the pivot's location in the
// parent's local space (or world space for a root).
type Rect struct {
	Name     string
	Parent   *Rect
	Position dmath.Vec2
	Size     dmath.Vec2
	Pivot    dmath.Vec2 // normalized, (0.5, 0.5) is the center
	Scale    dmath.Vec2
	Rotation float64 // degrees
}

// NewRect returns an unparented, unrotated rect with unit scale and a centered pivot.
func NewRect(name string, x, y, w, h float64) *Rect {
	return &Rect{
		Name:     name,
		Position: dmath.Vec2{X: x, Y: y},
		Size:     dmath.Vec2{X: w, Y: h},
		Pivot:    dmath.Vec2{X: 0.5, Y: 0.5},
		Scale:    dmath.Vec2{X: 1, Y: 1},
	}
}

// SetParent attaches r under parent. Position is kept as-is (it is now
// interpreted in the parent's local space).
func (r *Rect) SetParent(parent *Rect) *Rect {
	r.Parent = parent
	return r
}

// LocalToParent maps r's local space into its parent's local space.
func (r *Rect) LocalToParent() Affine {
	return TRS(r.Position, r.Rotation, r.Scale)
}

// LocalToWorld maps r's local space into world space.
func (r *Rect) LocalToWorld() Affine {
	m := r.LocalToParent()
	for p := r.Parent; p != nil; p = p.Parent {
		m = p.LocalToParent().Mul(m)
	}
	return m
}

// WorldToLocal maps world space into r's local space.
func (r *Rect) WorldToLocal() Affine {
	return r.LocalToWorld().Invert()
}

// TransformPoint maps a local point to world space. A nil rect is world space itself.
func (r *Rect) TransformPoint(p dmath.Vec2) dmath.Vec2 {
	if r == nil {
		return p
	}
	return r.LocalToWorld().Apply(p)
}

// InverseTransformPoint maps a world point into r's local space.
func (r *Rect) InverseTransformPoint(p dmath.Vec2) dmath.Vec2 {
	if r == nil {
		return p
	}
	return r.WorldToLocal().Apply(p)
}

// Center is the middle of the rect in its own local space.
func (r *Rect) Center() dmath.Vec2 {
	return dmath.Vec2{
		X: (0.5 - r.Pivot.X) * r.Size.X,
		Y: (0.5 - r.Pivot.Y) * r.Size.Y,
	}
}

// WorldCenter is the middle of the rect in world space.
func (r *Rect) WorldCenter() dmath.Vec2 {
	return r.TransformPoint(r.Center())
}

// ContainsWorld reports whether a world point falls inside the rect.
func (r *Rect) ContainsWorld(p dmath.Vec2) bool {
	local := r.InverseTransformPoint(p)
	minX := -r.Pivot.X * r.Size.X
	minY := -r.Pivot.Y * r.Size.Y
	return local.X >= minX && local.X <= minX+r.Size.X &&
		local.Y >= minY && local.Y <= minY+r.Size.Y
}

// ResolveLocalAnchor projects a world anchor to the screen through cam and
// back into parent's local space. A nil cam is the screen-space overlay
// convention where world and screen coincide.
func ResolveLocalAnchor(world dmath.Vec2, parent *Rect, cam *Camera) dmath.Vec2 {
	screen := WorldToScreenPoint(cam, world)
	return ScreenPointToLocalPoint(parent, screen, cam)
}

// ScreenPointToLocalPoint maps a screen point into rect's local space.
func ScreenPointToLocalPoint(rect *Rect, screen dmath.Vec2, cam *Camera) dmath.Vec2 {
	return rect.InverseTransformPoint(ScreenToWorldPoint(cam, screen))
}
