package secstruct

import (
	"testing"

	"github.com/rcsb/secstruct/geom"
)

func TestSplitChainsGroupsContiguousIDs(t *testing.T) {
	s := &fakeStructure{residues: []fakeResidue{
		aa("A", geom.New(0, 0, 0)),
		aa("A", geom.New(3.8, 0, 0)),
		aa("B", geom.New(0, 0, 0)),
	}}
	spans := splitChains(s)
	if len(spans) != 2 {
		t.Fatalf("len(spans) = %d, want 2", len(spans))
	}
	if spans[0].id != "A" || spans[0].start != 0 || spans[0].end != 1 {
		t.Errorf("spans[0] = %+v", spans[0])
	}
	if spans[1].id != "B" || spans[1].start != 2 || spans[1].end != 2 {
		t.Errorf("spans[1] = %+v", spans[1])
	}
}

func TestNucleicAcidFragmentsMarksContiguousRuns(t *testing.T) {
	s := &fakeStructure{residues: []fakeResidue{
		nucleicAcid("R"),
		nucleicAcid("R"),
		nucleicAcid("R"),
	}}
	span := chainSpan{id: "R", start: 0, end: 2}
	frags := nucleicAcidFragments(s, span)
	if len(frags) != 1 {
		t.Fatalf("len(frags) = %d, want 1", len(frags))
	}
	if frags[0] != (Fragment{Start: 0, End: 2, Type: Strand}) {
		t.Fatalf("frags[0] = %+v, want {0 2 Strand}", frags[0])
	}
}

func TestNucleicAcidFragmentsSkipsNonNucleicResidues(t *testing.T) {
	s := &fakeStructure{residues: []fakeResidue{
		nucleicAcid("R"),
		aa("R", geom.New(0, 0, 0)),
		nucleicAcid("R"),
	}}
	span := chainSpan{id: "R", start: 0, end: 2}
	frags := nucleicAcidFragments(s, span)
	if len(frags) != 2 {
		t.Fatalf("len(frags) = %d, want 2 (split by the AA residue)", len(frags))
	}
}

func TestPublishNucleicAcidsCallsLookup(t *testing.T) {
	s := &fakeStructure{residues: []fakeResidue{
		nucleicAcid("R"), nucleicAcid("R"),
	}}
	spans := splitChains(s)
	lookup := newFakeLookup()
	if errs := publishNucleicAcids(s, spans, lookup); errs != nil {
		t.Fatalf("publishNucleicAcids: errs = %v, want nil", errs)
	}
	got := lookup.chains["R"]
	if got == nil || len(got.frags) != 1 {
		t.Fatalf("chain R fragments = %+v, want one Strand fragment", got)
	}
}
