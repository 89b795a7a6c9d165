// Package secstruct assigns per-residue secondary structure and per-chain
// conformation fragments from a protein's atomic coordinates, following the
// Kabsch-Sander pattern-recognition method as adapted by Kraulis in
// Molscript. It consumes a read-only structural model and does not parse
// files, render anything, or mutate its input; see SPEC_FULL.md for the
// full requirements this package satisfies.
package secstruct

import "github.com/rcsb/secstruct/geom"

// Classification is the chemical category of a residue.
type Classification int

const (
	Unknown Classification = iota
	AminoAcid
	NucleicAcid
	Ligand
	Water
)

// Atom is a single atom of a residue: its PDB-style name, the chain it
// belongs to, and its coordinate.
type Atom struct {
	Name       string
	ChainID    string
	Coordinate geom.Vector
}

// Residue is one element of a Structure: its chain, classification, and
// ordered atoms. AlphaAtomIndex points into Atoms at the residue's Cα, or
// is -1 when absent.
type Residue interface {
	ChainID() string
	Classification() Classification
	AtomCount() int
	Atom(i int) Atom
	AlphaAtomIndex() int
}

// Structure is the read-only atomic model the engine consumes: an ordered
// sequence of residues in chain order. Implementations are borrowed
// immutably for the duration of one Annotate call; the engine never
// mutates a Structure.
type Structure interface {
	ResidueCount() int
	Residue(i int) Residue
}

// ComponentType is the coarse secondary-structure classification assigned
// to a Fragment.
type ComponentType int

const (
	UndefinedConformation ComponentType = iota
	Coil
	Turn
	Helix
	Strand
	None
)

func (c ComponentType) String() string {
	switch c {
	case Coil:
		return "COIL"
	case Turn:
		return "TURN"
	case Helix:
		return "HELIX"
	case Strand:
		return "STRAND"
	case None:
		return "NONE"
	default:
		return "UNDEFINED_CONFORMATION"
	}
}

// Fragment is a contiguous, inclusive residue range on one chain (global
// residue indices), labeled by a single ComponentType.
type Fragment struct {
	Start, End int
	Type       ComponentType
}

// ChainRanges receives the published fragment ranges for one chain, using
// chain-local residue indices (0-based, relative to the first residue, of
// any classification, of the chain's contiguous run in the Structure). This is the engine's output boundary, matching spec.md §6:
// "per-chain setFragmentRange(startLocal, endLocal, ComponentType) calls."
type ChainRanges interface {
	SetFragmentRange(startLocal, endLocal int, t ComponentType)
}

// ChainLookup resolves a chain ID to the ChainRanges sink that should
// receive that chain's fragments. Annotate calls Chain once for every
// fragment it publishes, so the same chain ID may be requested several
// times: first for the amino-acid fragments in residue order, then for
// the nucleic-acid runs, chain by chain.
type ChainLookup interface {
	Chain(chainID string) ChainRanges
}
