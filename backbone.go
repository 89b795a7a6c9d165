package secstruct

import "github.com/rcsb/secstruct/geom"

// backboneAtoms holds the resolved N, Cα, C, O and inferred amide-H
// coordinates for one amino acid, plus whether each is usable. Grounded on
// the backbone-atom scan in the teacher's RamaList (ramacalc.go): walk a
// residue's atoms by name, track where Cα sits, and tolerate absences
// rather than failing the whole pass.
type backboneAtoms struct {
	ca            geom.Vector
	n, c, o, h    geom.Vector
	hasN, hasCO   bool
	hasH          bool
}

// resolveBackbone locates N (first atom named "N" at or before Cα) and C,O
// (first atoms so named after Cα), per spec.md §4.3. If the residue's
// Classification claims AMINO_ACID but it has no Cα, the first atom is used
// as a surrogate and MissingAlpha is logged.
func resolveBackbone(r Residue) backboneAtoms {
	var b backboneAtoms
	caIdx := r.AlphaAtomIndex()
	n := r.AtomCount()
	if caIdx < 0 || caIdx >= n {
		if n == 0 {
			return b
		}
		Logger.Printf("secstruct: residue on chain %q classified AMINO_ACID has no CA atom, using atom 0 as surrogate", r.ChainID())
		caIdx = 0
	}
	b.ca = r.Atom(caIdx).Coordinate

	for i := 0; i <= caIdx && i < n; i++ {
		if r.Atom(i).Name == "N" {
			b.n = r.Atom(i).Coordinate
			b.hasN = true
			break
		}
	}

	var foundC, foundO bool
	for i := caIdx + 1; i < n; i++ {
		a := r.Atom(i)
		if a.Name == "C" && !foundC {
			b.c = a.Coordinate
			foundC = true
		}
		if a.Name == "O" && !foundO {
			b.o = a.Coordinate
			foundO = true
		}
		if foundC && foundO {
			break
		}
	}
	b.hasCO = foundC && foundO
	return b
}

// resolveAmideH infers the amide hydrogen position for residue i from its
// own N and, when available, the previous residue's carbonyl direction
// (spec.md §4.3). prev is the zero value (hasCO == false) for the first AA
// in a chain or when the predecessor's C/O could not be resolved; both
// cases fall back to this residue's own C=O direction.
func resolveAmideH(cur backboneAtoms, prev backboneAtoms, havePrev bool) backboneAtoms {
	if !cur.hasN || !cur.hasCO {
		return cur
	}
	dir := geom.Sub(cur.o, cur.c)
	if havePrev && prev.hasCO {
		if geom.Dist(prev.c, cur.n) <= prevCDistanceTrigger {
			dir = geom.Sub(prev.c, prev.o)
		}
	}
	cur.h = geom.Add(cur.n, geom.Scale(amideBondLength, geom.Normalize(dir)))
	cur.hasH = true
	return cur
}
