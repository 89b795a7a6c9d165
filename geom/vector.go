// Package geom provides the fixed-length 3-vector arithmetic the
// secondary-structure engine needs: points and directions for backbone
// atoms, amide hydrogens, and octree bounding boxes.
//
// There is no dense matrix of many atoms to exploit here, just a handful of
// individual vectors manipulated one at a time, so this wraps
// gonum.org/v1/gonum/spatial/r3 rather than a matrix type.
package geom

import "gonum.org/v1/gonum/spatial/r3"

// Vector is a point or direction in 3-space.
type Vector = r3.Vec

// New builds a Vector from its components.
func New(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Add returns a+b.
func Add(a, b Vector) Vector {
	return r3.Add(a, b)
}

// Sub returns a-b.
func Sub(a, b Vector) Vector {
	return r3.Sub(a, b)
}

// Scale returns v scaled by s.
func Scale(s float64, v Vector) Vector {
	return r3.Scale(s, v)
}

// Length returns the Euclidean norm of v.
func Length(v Vector) float64 {
	return r3.Norm(v)
}

// Normalize returns v rescaled to unit length. The caller must guarantee v
// is nonzero; normalizing the zero vector is undefined behavior this
// package does not guard against, the same contract spec.md §4.1 places on
// its callers (every caller here only ever normalizes a C=O or Cp-Op
// direction, which is nonzero by construction).
func Normalize(v Vector) Vector {
	return r3.Scale(1/r3.Norm(v), v)
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vector) float64 {
	return r3.Norm(r3.Sub(a, b))
}
