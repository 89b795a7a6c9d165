package secstruct

// symbol is the fine-grained per-residue secondary-structure letter the
// pattern passes assign, before fragment.go coarsens it into a
// ComponentType. Grounded on the ordered symbol-assignment passes of
// spec.md §4.6 (helix orders 3/4/5, strand, turn, coil).
type symbol int

const (
	symCoil symbol = iota
	symTurn
	symHelix3
	symHelix4
	symHelix5
	symStrandWeak // first residue painted by a confirmed ladder span, before escalation
	symStrand
)

// assignSymbols runs the eight ordered passes that turn per-residue turn
// and bridge flags into a symbol string: 4-helix, strand (both bridge
// slots), 5-helix, 3-helix, singlet demotion, then single-turn marking at
// orders 5, 4, and 3 for whatever is left over. Each assigning pass only
// writes residues the passes ahead of it left at symCoil, so earlier
// passes take priority exactly in the order listed (spec.md §4.6); the
// singlet demotion is the exception, resetting short helix and strand
// runs back to symCoil.
func assignSymbols(flags []patternFlags) []symbol {
	n := len(flags)
	sym := make([]symbol, n)

	assignHelixRun(sym, flags, 4, symHelix4)
	assignStrand(sym, flags)
	normalizeStrandWeak(sym)
	assignHelixRun(sym, flags, 5, symHelix5)
	assignHelixRun(sym, flags, 3, symHelix3)
	demoteSinglets(sym)
	assignSingleTurn(sym, flags, 5)
	assignSingleTurn(sym, flags, 4)
	assignSingleTurn(sym, flags, 3)

	return sym
}

func turnOrder(f *patternFlags, n int) bool {
	switch n {
	case 3:
		return f.turn3
	case 4:
		return f.turn4
	case 5:
		return f.turn5
	default:
		return false
	}
}

// assignHelixRun marks residues i..i+n-1 as a helix of the given order
// wherever two consecutive n-turns overlap (turn at i-1 and at i), the
// classic Kabsch-Sander rule that a single isolated n-turn is not itself
// a helix. Only symCoil residues are overwritten, so earlier,
// higher-priority passes stand.
func assignHelixRun(sym []symbol, flags []patternFlags, n int, s symbol) {
	for i := 1; i < len(flags); i++ {
		if !turnOrder(&flags[i-1], n) || !turnOrder(&flags[i], n) {
			continue
		}
		for k := i; k < i+n && k < len(sym); k++ {
			if sym[k] == symCoil {
				sym[k] = s
			}
		}
	}
}

// assignStrand runs the beta1 ladder-continuity walk followed by the
// beta2 one, per spec.md §4.6 step 2. Grounded on
// DerivedInformation.java:732-826: a residue with a bridge partner only
// becomes part of a strand once a later residue is found whose own
// partner sits close enough in sequence to the first residue's partner
// (within 2 positions if the residues are themselves adjacent, 3 if one
// gap position was skipped over), tolerating up to two consecutive
// unpaired residues in between. Beta1 runs before beta2 so a residue
// already confirmed by its beta1 partner is not reconsidered.
func assignStrand(sym []symbol, flags []patternFlags) {
	assignStrandPass(sym, func(i int) int { return flags[i].beta1 })
	assignStrandPass(sym, func(i int) int { return flags[i].beta2 })
}

// assignStrandPass implements one beta-slot ladder walk. partner(k)
// returns the bridge-partner aaIndex for residue k in this slot, or -1.
// The distance comparison is carried out in aaIndex space rather than
// Structure global residue-index space (DerivedInformation.java compares
// resPointers-mapped indices); see DESIGN.md for why that is an
// acceptable approximation here.
func assignStrandPass(sym []symbol, partner func(int) int) {
	n := len(sym)
	for i := 0; i < n; i++ {
		if partner(i) <= -1 {
			continue
		}
		ss := symStrandWeak
		for j := i + 1; j < n; j++ {
			var gap int
			if partner(j) > -1 {
				gap = 2
			} else {
				j++
				if j >= n {
					break
				}
				if partner(j) > -1 {
					gap = 3
				} else {
					j++
					if j >= n {
						break
					}
					if partner(j) <= -1 {
						break
					}
					gap = 2
				}
			}
			d := partner(i) - partner(j)
			if d < 0 {
				d = -d
			}
			if d <= gap {
				for k := i; k <= j; k++ {
					switch sym[k] {
					case symCoil, symStrandWeak:
						sym[k] = ss
						ss = symStrand
					case symStrand:
						ss = symStrand
					}
				}
			}
			i = j
		}
	}
}

// normalizeStrandWeak upgrades every symStrandWeak left over from
// assignStrand to symStrand. The weak/confirmed distinction only matters
// while the ladder walk is deciding which residues to escalate;
// ComponentType has no separate "first residue of a run" level, so once the
// walk is done the two collapse (spec.md §4.6's published alphabet is
// Helix/Strand/Turn/Coil, not the finer e/E split
// DerivedInformation.java's ssFlags carries internally).
func normalizeStrandWeak(sym []symbol) {
	for i, s := range sym {
		if s == symStrandWeak {
			sym[i] = symStrand
		}
	}
}

// demoteSinglets drops any helix or strand symbol that does not belong
// to a run of at least minSecondaryLength consecutive identical symbols
// back to symCoil (spec.md §4.6, §6 minSecondaryLength). This guards
// against the single-residue runs the helix passes can still produce at
// a fragment's edge.
func demoteSinglets(sym []symbol) {
	n := len(sym)
	i := 0
	for i < n {
		if sym[i] == symCoil || sym[i] == symTurn {
			i++
			continue
		}
		j := i
		for j < n && sym[j] == sym[i] {
			j++
		}
		if j-i < minSecondaryLength {
			for k := i; k < j; k++ {
				sym[k] = symCoil
			}
		}
		i = j
	}
}

// assignSingleTurn marks any residue still at symCoil that starts or
// ends an n-turn as symTurn. This runs after the helix passes so it only
// ever fills in turns that did not form a full helical run, working from
// order 5 down to order 3 to match spec.md §4.6's pass order. The end
// index is bounds-checked before use; see DESIGN.md for why that guard
// matters here.
func assignSingleTurn(sym []symbol, flags []patternFlags, n int) {
	last := len(flags) - 1
	for i := range flags {
		if !turnOrder(&flags[i], n) {
			continue
		}
		if sym[i] == symCoil {
			sym[i] = symTurn
		}
		end := i + n
		if end <= last && sym[end] == symCoil {
			sym[end] = symTurn
		}
	}
}
