package shuffle

import (
	"math/rand"
	"sort"
	"testing"
)

func TestShuffle_PreservesElements(t *testing.T) {
	tests := []struct {
		name  string
		input []int
	}{
		{"empty", []int{}},
		{"single", []int{42}},
		{"pair", []int{1, 2}},
		{"many", []int{5, 3, 8, 1, 9, 2, 7, 4, 6, 0}},
		{"duplicates", []int{1, 1, 2, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := make([]int, len(tt.input))
			copy(input, tt.input)

			got := Shuffle(input)

			if len(got) != len(tt.input) {
				t.Fatalf("length changed: got %d, want %d", len(got), len(tt.input))
			}

			wantSorted := append([]int(nil), tt.input...)
			gotSorted := append([]int(nil), got...)
			sort.Ints(wantSorted)
			sort.Ints(gotSorted)
			for i := range wantSorted {
				if gotSorted[i] != wantSorted[i] {
					t.Fatalf("multiset changed: got %v, want permutation of %v", got, tt.input)
				}
			}
		})
	}
}

func TestShuffle_ShortInputsUnchanged(t *testing.T) {
	empty := Shuffle([]string{})
	if len(empty) != 0 {
		t.Errorf("empty slice changed: %v", empty)
	}

	single := Shuffle([]string{"only"})
	if len(single) != 1 || single[0] != "only" {
		t.Errorf("single-element slice changed: %v", single)
	}
}

func TestShuffle_InPlaceAndChained(t *testing.T) {
	input := []int{1, 2, 3, 4}
	got := Shuffle(input)
	if &got[0] != &input[0] {
		t.Error("expected shuffle to operate in place on the same backing array")
	}
}

func TestWithRand_Deterministic(t *testing.T) {
	a := WithRand(rand.New(rand.NewSource(7)), []int{1, 2, 3, 4, 5, 6})
	b := WithRand(rand.New(rand.NewSource(7)), []int{1, 2, 3, 4, 5, 6})

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different permutations: %v vs %v", a, b)
		}
	}
}

func TestWithRand_MovesCorrectPosition(t *testing.T) {
	// Over many seeded runs the first element should not stay in front
	// every time. This guards against an off-by-one that skips index 0.
	stayed := 0
	const runs = 200
	for seed := int64(0); seed < runs; seed++ {
		items := WithRand(rand.New(rand.NewSource(seed)), []int{0, 1, 2, 3})
		if items[0] == 0 {
			stayed++
		}
	}
	if stayed == runs {
		t.Error("first element never moved across 200 seeded shuffles")
	}
}
