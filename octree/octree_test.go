package octree

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/rcsb/secstruct/geom"
)

func bruteForcePairs(items []Item, cutoff float64) map[[2]int]bool {
	want := map[[2]int]bool{}
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if geom.Dist(items[i].Point, items[j].Point) <= cutoff {
				want[[2]int{items[i].Index, items[j].Index}] = true
			}
		}
	}
	return want
}

func toSet(pairs [][2]int) map[[2]int]bool {
	set := map[[2]int]bool{}
	for _, p := range pairs {
		if p[0] > p[1] {
			p[0], p[1] = p[1], p[0]
		}
		set[p] = true
	}
	return set
}

func TestCandidatePairsMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	items := make([]Item, 200)
	for i := range items {
		items[i] = Item{
			Index: i,
			Point: geom.New(rng.Float64()*40, rng.Float64()*40, rng.Float64()*40),
		}
	}

	tree, err := Build(items, 1.0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	const cutoff = 8.0
	got := toSet(tree.CandidatePairs(cutoff))
	want := bruteForcePairs(items, cutoff)

	for p := range want {
		if !got[p] {
			t.Errorf("missing candidate pair %v", p)
		}
	}
	for p := range got {
		if !want[p] {
			t.Errorf("unexpected candidate pair %v", p)
		}
	}
}

func TestCandidatePairsAscendingOrder(t *testing.T) {
	items := []Item{
		{Index: 5, Point: geom.New(0, 0, 0)},
		{Index: 2, Point: geom.New(1, 0, 0)},
	}
	tree, err := Build(items, 1.0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	pairs := tree.CandidatePairs(8.0)
	if len(pairs) != 1 {
		t.Fatalf("len(pairs) = %d, want 1", len(pairs))
	}
	if pairs[0][0] != 2 || pairs[0][1] != 5 {
		t.Fatalf("pair = %v, want [2 5]", pairs[0])
	}
}

func TestCandidatePairsEmpty(t *testing.T) {
	tree, err := Build(nil, 1.0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if pairs := tree.CandidatePairs(8.0); len(pairs) != 0 {
		t.Fatalf("len(pairs) = %d, want 0", len(pairs))
	}
}

func TestBuildReportsExcessiveDivision(t *testing.T) {
	items := make([]Item, maxLeafItems*4)
	for i := range items {
		// All coincident points: no subdivision can ever separate them.
		items[i] = Item{Index: i, Point: geom.New(1, 1, 1)}
	}
	_, err := Build(items, 1.0)
	if err == nil {
		t.Fatal("Build: want ExcessiveDivisionError, got nil")
	}
	if _, ok := err.(*ExcessiveDivisionError); !ok {
		t.Fatalf("Build: err type = %T, want *ExcessiveDivisionError", err)
	}
}

func TestSortedAscending(t *testing.T) {
	items := []Item{
		{Index: 0, Point: geom.New(0, 0, 0)},
		{Index: 1, Point: geom.New(0.5, 0, 0)},
		{Index: 2, Point: geom.New(1, 0, 0)},
	}
	tree, err := Build(items, 1.0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	pairs := tree.CandidatePairs(8.0)
	for _, p := range pairs {
		if p[0] >= p[1] {
			t.Fatalf("pair %v not ascending", p)
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i][0] < pairs[j][0] })
	if len(pairs) != 3 {
		t.Fatalf("len(pairs) = %d, want 3", len(pairs))
	}
}
