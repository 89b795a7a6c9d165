package secstruct

// bridgeType distinguishes the two beta-bridge geometries the
// Kabsch-Sander method recognizes.
type bridgeType int

const (
	noBridge bridgeType = iota
	parallelBridge
	antiparallelBridge
)

// patternFlags is the per-residue result of the n-turn and bridge-partner
// passes (spec.md §4.5): which turn orders start here, and up to two
// beta-bridge partners with their geometry.
type patternFlags struct {
	turn3, turn4, turn5       bool
	beta1, beta2              int
	beta1Type, beta2Type      bridgeType
}

func newPatternFlags() patternFlags {
	return patternFlags{beta1: -1, beta2: -1}
}

// sameChain is the small guard shared by the turn and bridge tests below:
// it reports whether i and j are both valid indices on the same chain,
// since the turn rule and the bridge rules' i±1/j±1 lookups only ever
// compare residues that exist and sit on the same chain.
func sameChain(chain []int, i, j int) bool {
	if i < 0 || j < 0 || i >= len(chain) || j >= len(chain) {
		return false
	}
	return chain[i] == chain[j]
}

// computeTurns sets turn3/turn4/turn5 at residue i when residue i+n's N-H
// hydrogen-bonds to residue i's C=O, for n in {3,4,5} (spec.md §4.5).
func computeTurns(bonds []residueBonds, chain []int) []patternFlags {
	flags := make([]patternFlags, len(bonds))
	for i := range flags {
		flags[i] = newPatternFlags()
	}
	for i := range bonds {
		for _, n := range [...]int{3, 4, 5} {
			j := i + n
			if !sameChain(chain, i, j) || !hasHBond(bonds, j, i) {
				continue
			}
			switch n {
			case 3:
				flags[i].turn3 = true
			case 4:
				flags[i].turn4 = true
			case 5:
				flags[i].turn5 = true
			}
		}
	}
	return flags
}

// isParallelBridge and isAntiparallelBridge implement the two canonical
// Kabsch-Sander bridge tests: a parallel bridge links (i,j) when the
// strands run the same direction through the H-bond pattern, an
// antiparallel bridge when they run opposite directions. Both tests have
// two independent cases (spec.md §4.5). hasHBond(bonds, donor, acceptor)
// reads as "donor's N-H bonds to acceptor's C=O"
// (DerivedInformation.java:505-508); every case below is stated with that
// donor-first argument order, per DerivedInformation.java:618-658
// (parallel) and :564-612 (antiparallel).
func isParallelBridge(bonds []residueBonds, chain []int, i, j int) bool {
	case1 := sameChain(chain, i-1, i) && sameChain(chain, i, i+1) &&
		hasHBond(bonds, j, i-1) && hasHBond(bonds, i+1, j)
	case2 := sameChain(chain, j-1, j) && sameChain(chain, j, j+1) &&
		hasHBond(bonds, i, j-1) && hasHBond(bonds, j+1, i)
	return case1 || case2
}

func isAntiparallelBridge(bonds []residueBonds, chain []int, i, j int) bool {
	case1 := hasHBond(bonds, i, j) && hasHBond(bonds, j, i)
	case2 := sameChain(chain, i-1, i) && sameChain(chain, i, i+1) &&
		sameChain(chain, j-1, j) && sameChain(chain, j, j+1) &&
		hasHBond(bonds, j+1, i-1) && hasHBond(bonds, i+1, j-1)
	return case1 || case2
}

// recordBridge adds partner j with the given geometry to residue i's
// pattern flags, filling beta1 before beta2 and canonicalizing the two
// slots so beta1 always holds the lower-indexed partner. A residue that
// already has both slots filled with different partners does not record
// a third; the Kabsch-Sander method only ever tracks two.
func recordBridge(flags []patternFlags, i, j int, t bridgeType) {
	f := &flags[i]
	switch {
	case f.beta1 == -1:
		f.beta1, f.beta1Type = j, t
	case f.beta1 == j:
		f.beta1Type = t
	case f.beta2 == -1:
		f.beta2, f.beta2Type = j, t
	case f.beta2 == j:
		f.beta2Type = t
	default:
		return
	}
	if f.beta2 != -1 && f.beta1 > f.beta2 {
		f.beta1, f.beta2 = f.beta2, f.beta1
		f.beta1Type, f.beta2Type = f.beta2Type, f.beta1Type
	}
}

// computeBridges evaluates every residue pair (i,j) at least three apart
// in aaIndex order for a bridge, whether the two sit on the same chain or
// on different chains, recording the result on both partners. Bridges, unlike turns, are
// symmetric and may span chains, so the candidate set here is every
// index pair rather than just octree-adjacent ones: both residues must
// already have resolved H-bond partners for the test to fire, and a
// cheap Cα distance prefilter is unnecessary once the H-bond graph is in
// hand.
func computeBridges(flags []patternFlags, bonds []residueBonds, chain []int) {
	n := len(bonds)
	for i := 0; i < n; i++ {
		for j := i + 3; j < n; j++ {
			switch {
			case isAntiparallelBridge(bonds, chain, i, j):
				recordBridge(flags, i, j, antiparallelBridge)
				recordBridge(flags, j, i, antiparallelBridge)
			case isParallelBridge(bonds, chain, i, j):
				recordBridge(flags, i, j, parallelBridge)
				recordBridge(flags, j, i, parallelBridge)
			}
		}
	}
}
