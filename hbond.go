package secstruct

import (
	"github.com/rcsb/secstruct/geom"
	"github.com/rcsb/secstruct/octree"
)

// residueBonds holds, for one amino acid, its single best CO-acceptor and
// NH-donor partner found across the whole structure: coHBonds is the
// aaIndex of the residue whose N-H hydrogen-bonds to this residue's C=O,
// hnHBonds is the aaIndex of the residue whose C=O accepts this residue's
// N-H. A value of -1 marks an empty slot. This mirrors the plain int
// arrays `coHBonds`/`hnHBonds` in DerivedInformation.java:108-109 — one
// best bond per donor/acceptor slot, not a short list of candidates
// (spec.md §3, §4.4).
type residueBonds struct {
	coHBonds, hnHBonds int
	coEnergy, hnEnergy float64
}

func newResidueBonds() residueBonds {
	return residueBonds{coHBonds: -1, hnHBonds: -1}
}

// hbondEnergy evaluates the Kabsch-Sander electrostatic approximation for
// a candidate hydrogen bond where donor contributes N-H and acceptor
// contributes C=O (spec.md §4.4).
func hbondEnergy(donor, acceptor backboneAtoms) (float64, bool) {
	if !donor.hasN || !donor.hasH || !acceptor.hasCO {
		return 0, false
	}
	rON := geom.Dist(acceptor.o, donor.n)
	rCH := geom.Dist(acceptor.c, donor.h)
	rOH := geom.Dist(acceptor.o, donor.h)
	rCN := geom.Dist(acceptor.c, donor.n)
	if rON == 0 || rCH == 0 || rOH == 0 || rCN == 0 {
		return 0, false
	}
	e := charge1 * charge2 * energyFactor * (1/rON + 1/rCH - 1/rOH - 1/rCN)
	return e, true
}

// recordBond installs partner into the single best-energy slot, but only
// when it beats whatever that slot already holds. This is the asymmetric
// check DerivedInformation.java:505,517 perform: compare the new energy
// against the slot's current best, and only on improvement write both the
// slot and its paired field on the other residue (done by the two call
// sites in assignHBonds, not here).
func recordBond(slot *int, energy *float64, partner int, e float64) {
	if *slot == -1 || e < *energy {
		*slot = partner
		*energy = e
	}
}

// assignHBonds evaluates every octree-supplied candidate pair of amino
// acids in both donor/acceptor directions and keeps only the single best
// partner per residue per role, per spec.md §4.4. atoms is indexed by
// aaIndex.
func assignHBonds(atoms []backboneAtoms, tree *octree.Tree) []residueBonds {
	bonds := make([]residueBonds, len(atoms))
	for i := range bonds {
		bonds[i] = newResidueBonds()
	}

	for _, pair := range tree.CandidatePairs(hBondCutoffDistance) {
		i, j := pair[0], pair[1]

		if e, ok := hbondEnergy(atoms[i], atoms[j]); ok && e < hBondEnergyMax {
			recordBond(&bonds[i].hnHBonds, &bonds[i].hnEnergy, j, e)
			recordBond(&bonds[j].coHBonds, &bonds[j].coEnergy, i, e)
		}
		if e, ok := hbondEnergy(atoms[j], atoms[i]); ok && e < hBondEnergyMax {
			recordBond(&bonds[j].hnHBonds, &bonds[j].hnEnergy, i, e)
			recordBond(&bonds[i].coHBonds, &bonds[i].coEnergy, j, e)
		}
	}
	return bonds
}

// hasHBond reports whether residue i's N-H donates to residue j's C=O,
// i.e. whether bonds[i].hnHBonds == j.
func hasHBond(bonds []residueBonds, i, j int) bool {
	return bonds[i].hnHBonds == j
}
