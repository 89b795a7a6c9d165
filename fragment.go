package secstruct

import "github.com/rcsb/secstruct/geom"

// symbolToComponent coarsens a fine-grained symbol into the published
// ComponentType alphabet (spec.md §4.7): every helix order collapses to
// Helix, leaving Turn, Strand, and Coil distinct.
func symbolToComponent(s symbol) ComponentType {
	switch s {
	case symHelix3, symHelix4, symHelix5:
		return Helix
	case symStrand, symStrandWeak:
		return Strand
	case symTurn:
		return Turn
	default:
		return Coil
	}
}

// buildFragments walks the per-residue symbol array and groups contiguous
// runs of the same coarsened ComponentType on the same chain into
// Fragments, in aaIndex space. A chain boundary always starts a new
// fragment, even if the symbol either side is identical (spec.md §4.7,
// "disjoint fragment extraction").
func buildFragments(sym []symbol, chain []int) []Fragment {
	var out []Fragment
	n := len(sym)
	i := 0
	for i < n {
		t := symbolToComponent(sym[i])
		j := i + 1
		for j < n && chain[j] == chain[i] && symbolToComponent(sym[j]) == t {
			j++
		}
		out = append(out, Fragment{Start: i, End: j - 1, Type: t})
		i = j
	}
	return out
}

// openDistanceGaps splits any fragment that straddles a physical chain
// break: two sequence-adjacent residues whose Cα atoms are farther apart
// than gapSplitThreshold cannot belong to the same secondary-structure
// element no matter what the pattern passes concluded (missing density,
// spec.md §4.7). A side of the split shorter than minSecondaryLength is
// demoted to None by splitAt; it is not absorbed into a neighboring
// fragment.
func openDistanceGaps(frags []Fragment, ca []geom.Vector, chain []int) []Fragment {
	var out []Fragment
	for _, f := range frags {
		split := false
		for i := f.Start; i < f.End; i++ {
			if chain[i] != chain[i+1] {
				continue
			}
			if geom.Dist(ca[i], ca[i+1]) > gapSplitThreshold {
				out = append(out, splitAt(f, i)...)
				split = true
				break
			}
		}
		if !split {
			out = append(out, f)
		}
	}
	if !hasSplit(frags, out) {
		return out
	}
	return openDistanceGaps(out, ca, chain)
}

func hasSplit(before, after []Fragment) bool {
	return len(after) != len(before)
}

// splitAt breaks fragment f into two at the gap between i and i+1,
// demoting whichever side is shorter than minSecondaryLength to None
// rather than leaving an implausibly short secondary-structure call
// standing on a density gap.
func splitAt(f Fragment, i int) []Fragment {
	left := Fragment{Start: f.Start, End: i, Type: f.Type}
	right := Fragment{Start: i + 1, End: f.End, Type: f.Type}
	if left.End-left.Start+1 < minSecondaryLength {
		left.Type = None
	}
	if right.End-right.Start+1 < minSecondaryLength {
		right.Type = None
	}
	return []Fragment{left, right}
}

// mergeAdjacentNone folds any None fragment into a same-typed neighbor it
// sits directly against on the same chain, and otherwise leaves it as a
// genuine gap marker. This is the final coarsening step of spec.md §4.7:
// opening gaps must not fragment a chain into more pieces than the
// structure actually has.
func mergeAdjacentNone(frags []Fragment, chain []int) []Fragment {
	var out []Fragment
	for _, f := range frags {
		if len(out) > 0 {
			prev := &out[len(out)-1]
			if prev.End+1 == f.Start && chain[prev.End] == chain[f.Start] {
				if prev.Type == None && f.Type == None {
					prev.End = f.End
					continue
				}
			}
		}
		out = append(out, f)
	}
	return out
}
