package secstruct

// Fixed domain constants (spec.md §6). These are derived from the
// Kabsch-Sander method and Molscript's implementation of it, not runtime
// options: a caller that wants different thresholds needs a different
// algorithm, not a flag.
const (
	hBondCutoffDistance  = 8.0   // Å, octree radius query cutoff
	energyFactor         = 332.0 // kcal/mol·Å
	charge1              = 0.42
	charge2              = 0.20
	hBondEnergyMax       = -0.5  // a bond must have energy below this
	amideBondLength      = 1.008 // Å, N-H bond length used for inferred H
	prevCDistanceTrigger = 2.0   // Å, |Cp-N| trigger for the H-inference rule
	gapSplitThreshold    = 5.1   // Å, Cα-Cα distance that opens a fragment gap
	minSecondaryLength   = 3     // residues, shortest allowed HELIX/STRAND
)
