package secstruct

import (
	"github.com/rcsb/secstruct/geom"
	"github.com/rcsb/secstruct/octree"
)

// Annotations is the result of one Annotate call (spec.md §5): the
// published fragments in Structure global residue-index space, plus the
// fine-grained per-amino-acid symbol string the testable properties in
// spec.md §8 compare against a reference string.
type Annotations struct {
	Fragments []Fragment
	Flags     string
}

func symbolRune(s symbol) byte {
	switch s {
	case symHelix3:
		return 'G'
	case symHelix4:
		return 'H'
	case symHelix5:
		return 'I'
	case symStrand:
		return 'E'
	case symTurn:
		return 'T'
	default:
		return 'C'
	}
}

// Annotate runs the full secondary-structure assignment pipeline over s
// and publishes the result to the chains lookup resolves, per spec.md §5:
// backbone resolution, H-bond assignment over octree-pruned candidate
// pairs, turn and bridge pattern detection, symbol assignment, fragment
// extraction and gap-opening, and finally chain-local publication. Any
// non-fatal diagnostics (an unresolvable chain, an oversized octree leaf)
// are returned alongside the Annotations rather than aborting the run.
func Annotate(s Structure, lookup ChainLookup) (*Annotations, []Error) {
	var errs []Error

	spans := splitChains(s)

	var aaGlobal []int
	var aaChain []int
	for si, sp := range spans {
		for i := sp.start; i <= sp.end; i++ {
			if s.Residue(i).Classification() != AminoAcid {
				continue
			}
			aaGlobal = append(aaGlobal, i)
			aaChain = append(aaChain, si)
		}
	}

	atoms := make([]backboneAtoms, len(aaGlobal))
	for i, g := range aaGlobal {
		cur := resolveBackbone(s.Residue(g))
		var prev backboneAtoms
		havePrev := i > 0 && aaChain[i-1] == aaChain[i]
		if havePrev {
			prev = atoms[i-1]
		}
		atoms[i] = resolveAmideH(cur, prev, havePrev)
	}

	items := make([]octree.Item, len(atoms))
	for i, a := range atoms {
		items[i] = octree.Item{Index: i, Point: a.ca}
	}
	tree, err := octree.Build(items, 1.0)
	if err != nil {
		Logger.Printf("secstruct: octree build: %v", err)
		errs = append(errs, newError("secstruct: octree build: %v", err))
	}

	var annotations Annotations
	if tree != nil {
		bonds := assignHBonds(atoms, tree)
		flags := computeTurns(bonds, aaChain)
		computeBridges(flags, bonds, aaChain)
		sym := assignSymbols(flags)

		buf := make([]byte, len(sym))
		for i, sy := range sym {
			buf[i] = symbolRune(sy)
		}
		annotations.Flags = string(buf)

		frags := buildFragments(sym, aaChain)

		ca := make([]geom.Vector, len(atoms))
		for i, a := range atoms {
			ca[i] = a.ca
		}
		frags = openDistanceGaps(frags, ca, aaChain)
		frags = mergeAdjacentNone(frags, aaChain)

		for _, f := range frags {
			if f.Type == None || f.Type == UndefinedConformation {
				continue
			}
			annotations.Fragments = append(annotations.Fragments, Fragment{
				Start: aaGlobal[f.Start],
				End:   aaGlobal[f.End],
				Type:  f.Type,
			})
		}

		if e := publishFragments(frags, aaGlobal, spans, aaChain, s, lookup); e != nil {
			errs = append(errs, e...)
		}
	}

	if e := publishNucleicAcids(s, spans, lookup); e != nil {
		errs = append(errs, e...)
	}

	return &annotations, errs
}
