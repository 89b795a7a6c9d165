package geom

import "gonum.org/v1/gonum/floats"

// Bounds is an axis-aligned box, inclusive of Min and Max.
type Bounds struct {
	Min, Max Vector
}

// BoundsOf returns the tight axis-aligned box enclosing pts, expanded by
// margin on every side. It panics if pts is empty, since an octree is never
// built over zero items.
func BoundsOf(pts []Vector, margin float64) Bounds {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	zs := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i], zs[i] = p.X, p.Y, p.Z
	}
	b := Bounds{
		Min: New(floats.Min(xs), floats.Min(ys), floats.Min(zs)),
		Max: New(floats.Max(xs), floats.Max(ys), floats.Max(zs)),
	}
	b.Min = Sub(b.Min, New(margin, margin, margin))
	b.Max = Add(b.Max, New(margin, margin, margin))
	return b
}

// Center returns the midpoint of the box.
func (b Bounds) Center() Vector {
	return Scale(0.5, Add(b.Min, b.Max))
}

// Contains reports whether v falls within the box (inclusive).
func (b Bounds) Contains(v Vector) bool {
	return v.X >= b.Min.X && v.X <= b.Max.X &&
		v.Y >= b.Min.Y && v.Y <= b.Max.Y &&
		v.Z >= b.Min.Z && v.Z <= b.Max.Z
}

// Octant returns the index in [0,8) of the child octant of b (split at its
// center) that contains v.
func (b Bounds) Octant(v Vector) int {
	c := b.Center()
	oct := 0
	if v.X > c.X {
		oct |= 1
	}
	if v.Y > c.Y {
		oct |= 2
	}
	if v.Z > c.Z {
		oct |= 4
	}
	return oct
}

// ChildBounds returns the bounding box of octant i of b.
func (b Bounds) ChildBounds(i int) Bounds {
	c := b.Center()
	child := Bounds{Min: b.Min, Max: c}
	if i&1 != 0 {
		child.Min.X, child.Max.X = c.X, b.Max.X
	}
	if i&2 != 0 {
		child.Min.Y, child.Max.Y = c.Y, b.Max.Y
	}
	if i&4 != 0 {
		child.Min.Z, child.Max.Z = c.Z, b.Max.Z
	}
	return child
}
