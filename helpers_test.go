package secstruct

import "github.com/rcsb/secstruct/geom"

// fakeResidue is a minimal Residue for tests: a fixed chain, a
// classification, and an explicit atom list with the Cα position given
// by index.
type fakeResidue struct {
	chain string
	class Classification
	atoms []Atom
	ca    int
}

func (r fakeResidue) ChainID() string               { return r.chain }
func (r fakeResidue) Classification() Classification { return r.class }
func (r fakeResidue) AtomCount() int                 { return len(r.atoms) }
func (r fakeResidue) Atom(i int) Atom                { return r.atoms[i] }
func (r fakeResidue) AlphaAtomIndex() int            { return r.ca }

// aa builds a fakeResidue for an amino acid with its backbone atoms laid
// out in the usual PDB order N, CA, C, O, with CA at position p and the
// other three at fixed offsets from it; callers choose distinct p values
// when residues must not coincide.
func aa(chain string, p geom.Vector) fakeResidue {
	return fakeResidue{
		chain: chain,
		class: AminoAcid,
		ca:    1,
		atoms: []Atom{
			{Name: "N", ChainID: chain, Coordinate: geom.Add(p, geom.New(-0.5, 0.3, 0))},
			{Name: "CA", ChainID: chain, Coordinate: p},
			{Name: "C", ChainID: chain, Coordinate: geom.Add(p, geom.New(0.5, 0.3, 0))},
			{Name: "O", ChainID: chain, Coordinate: geom.Add(p, geom.New(0.9, 1.1, 0))},
		},
	}
}

func nucleicAcid(chain string) fakeResidue {
	return fakeResidue{chain: chain, class: NucleicAcid, ca: -1}
}

type fakeStructure struct {
	residues []fakeResidue
}

func (s *fakeStructure) ResidueCount() int { return len(s.residues) }
func (s *fakeStructure) Residue(i int) Residue {
	return s.residues[i]
}

// fakeChainRanges records every SetFragmentRange call it receives, in
// call order, for assertion.
type fakeChainRanges struct {
	frags []Fragment
}

func (c *fakeChainRanges) SetFragmentRange(start, end int, t ComponentType) {
	c.frags = append(c.frags, Fragment{Start: start, End: end, Type: t})
}

// fakeLookup hands out a fakeChainRanges per chain ID on first request,
// so a test can inspect what each chain received after Annotate returns.
type fakeLookup struct {
	chains map[string]*fakeChainRanges
}

func newFakeLookup() *fakeLookup {
	return &fakeLookup{chains: map[string]*fakeChainRanges{}}
}

func (l *fakeLookup) Chain(id string) ChainRanges {
	c, ok := l.chains[id]
	if !ok {
		c = &fakeChainRanges{}
		l.chains[id] = c
	}
	return c
}
