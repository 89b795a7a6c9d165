// Package octree implements a bounded-depth octree over a set of points,
// used by the secondary-structure engine to enumerate candidate hydrogen-bond
// partners without an O(n²) all-pairs scan. There is no octree in the
// reference corpus to adapt (see DESIGN.md); this package exists to satisfy
// the engine's need for a neighbor-radius query and follows the corpus's
// habit of giving each narrow concern its own small package (the way the
// teacher splits out v3, top, align, histo).
package octree

import (
	"fmt"

	"github.com/rcsb/secstruct/geom"
)

// maxDepth bounds recursion; maxLeafItems bounds how many items a leaf may
// hold before it is split.
const (
	maxDepth     = 16
	maxLeafItems = 8
)

// Item is a single entry in the tree: an index into the caller's own AA
// array plus the point used to locate it.
type Item struct {
	Index int
	Point geom.Vector
}

// ExcessiveDivisionError reports that a region of the tree could not be
// subdivided below maxLeafItems within maxDepth recursions (typically many
// coincident or near-coincident points). Per spec.md §7 this is tolerated:
// the affected leaf is kept oversized and candidate-pair enumeration simply
// continues over it.
type ExcessiveDivisionError struct {
	Depth, Count int
}

func (e *ExcessiveDivisionError) Error() string {
	return fmt.Sprintf("octree: could not separate %d items within depth %d", e.Count, e.Depth)
}

type node struct {
	bounds   geom.Bounds
	children *[8]*node // nil for a leaf
	items    []Item    // populated only for a leaf
}

// Tree is a bounded-depth octree over a fixed set of Items.
type Tree struct {
	root *node
}

// Build constructs a Tree around the bounding box of items, expanded by
// margin on each axis. It returns a usable tree even when a region could
// not be fully subdivided; in that case it also returns an
// *ExcessiveDivisionError so the caller can log it (the caller is expected
// to continue, per spec.md §7).
func Build(items []Item, margin float64) (*Tree, error) {
	if len(items) == 0 {
		return &Tree{root: &node{items: nil}}, nil
	}
	pts := make([]geom.Vector, len(items))
	for i, it := range items {
		pts[i] = it.Point
	}
	bounds := geom.BoundsOf(pts, margin)
	root, err := buildNode(bounds, items, 0)
	return &Tree{root: root}, err
}

func buildNode(bounds geom.Bounds, items []Item, depth int) (*node, error) {
	if len(items) <= maxLeafItems || depth >= maxDepth {
		var err error
		if depth >= maxDepth && len(items) > maxLeafItems {
			err = &ExcessiveDivisionError{Depth: depth, Count: len(items)}
		}
		return &node{bounds: bounds, items: items}, err
	}

	var buckets [8][]Item
	for _, it := range items {
		oct := bounds.Octant(it.Point)
		buckets[oct] = append(buckets[oct], it)
	}

	var children [8]*node
	var firstErr error
	for i, b := range buckets {
		if len(b) == 0 {
			continue
		}
		child, err := buildNode(bounds.ChildBounds(i), b, depth+1)
		children[i] = child
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return &node{bounds: bounds, children: &children}, firstErr
}

// CandidatePairs returns the set of unordered Index pairs {i,j} with i<j
// such that the Euclidean distance between their points is at most cutoff.
// The order in which pairs are produced is unspecified.
func (t *Tree) CandidatePairs(cutoff float64) [][2]int {
	var leaves []*node
	collectLeaves(t.root, &leaves)

	var pairs [][2]int
	for a := 0; a < len(leaves); a++ {
		for b := a; b < len(leaves); b++ {
			if !boxesNear(leaves[a].bounds, leaves[b].bounds, cutoff) {
				continue
			}
			if a == b {
				pairs = append(pairs, pairsWithin(leaves[a].items, cutoff)...)
			} else {
				pairs = append(pairs, pairsAcross(leaves[a].items, leaves[b].items, cutoff)...)
			}
		}
	}
	return pairs
}

func collectLeaves(n *node, out *[]*node) {
	if n == nil {
		return
	}
	if n.children == nil {
		if len(n.items) > 0 {
			*out = append(*out, n)
		}
		return
	}
	for _, c := range n.children {
		collectLeaves(c, out)
	}
}

// boxesNear reports whether two boxes could contain a point pair within
// cutoff of one another; it over-approximates (never a false negative) by
// expanding both boxes by cutoff before testing AABB overlap.
func boxesNear(a, b geom.Bounds, cutoff float64) bool {
	return a.Min.X-cutoff <= b.Max.X && a.Max.X+cutoff >= b.Min.X &&
		a.Min.Y-cutoff <= b.Max.Y && a.Max.Y+cutoff >= b.Min.Y &&
		a.Min.Z-cutoff <= b.Max.Z && a.Max.Z+cutoff >= b.Min.Z
}

func pairsWithin(items []Item, cutoff float64) [][2]int {
	var pairs [][2]int
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			addPair(items[i], items[j], cutoff, &pairs)
		}
	}
	return pairs
}

func pairsAcross(a, b []Item, cutoff float64) [][2]int {
	var pairs [][2]int
	for _, ai := range a {
		for _, bi := range b {
			addPair(ai, bi, cutoff, &pairs)
		}
	}
	return pairs
}

func addPair(a, b Item, cutoff float64, pairs *[][2]int) {
	if a.Index == b.Index || geom.Dist(a.Point, b.Point) > cutoff {
		return
	}
	i, j := a.Index, b.Index
	if i > j {
		i, j = j, i
	}
	*pairs = append(*pairs, [2]int{i, j})
}
