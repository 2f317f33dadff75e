package acmatcher

import (
	"reflect"
	"sort"
	"testing"
)

func buildBoth(t *testing.T, patterns map[string]int) (Automaton, Automaton) {
	t.Helper()
	sb := NewBuilder()
	hb := NewBuilder()
	for p, id := range patterns {
		sb.Add([]rune(p), id)
		hb.Add([]rune(p), id)
	}
	return sb.BuildSorted(), hb.BuildHashed()
}

func sortMatches(m []Match) []Match {
	out := append([]Match(nil), m...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].End != out[j].End {
			return out[i].End < out[j].End
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func TestFindAllReportsOverlappingMatches(t *testing.T) {
	patterns := map[string]int{"彼": 0, "彼女": 1, "女": 2}
	sorted, hashed := buildBoth(t, patterns)

	want := []Match{{ID: 0, End: 1}, {ID: 1, End: 2}, {ID: 2, End: 2}}

	for name, a := range map[string]Automaton{"sorted": sorted, "hashed": hashed} {
		got := sortMatches(a.FindAll([]rune("彼女")))
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%s: FindAll = %+v, want %+v", name, got, want)
		}
	}
}

func TestFindAllUsesFailLinksAcrossNonMatchingPrefix(t *testing.T) {
	// "ab" and "b" both end at the same position in "xab": reaching the
	// "ab" node's fail link (the "b" node) must still report "b" as a
	// match there, exercising the output-union built during fail-link
	// resolution rather than the direct goto path.
	patterns := map[string]int{"ab": 0, "b": 1}
	sorted, hashed := buildBoth(t, patterns)

	want := []Match{{ID: 0, End: 3}, {ID: 1, End: 3}}

	for name, a := range map[string]Automaton{"sorted": sorted, "hashed": hashed} {
		got := sortMatches(a.FindAll([]rune("xab")))
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%s: FindAll = %+v, want %+v", name, got, want)
		}
	}
}

func TestFindAllNoMatches(t *testing.T) {
	sorted, hashed := buildBoth(t, map[string]int{"猫": 0})
	for name, a := range map[string]Automaton{"sorted": sorted, "hashed": hashed} {
		if got := a.FindAll([]rune("犬は可愛い")); len(got) != 0 {
			t.Errorf("%s: expected no matches, got %+v", name, got)
		}
	}
}

func TestFindAllBytesMatchesClassCodeAlphabet(t *testing.T) {
	sb := NewBuilder()
	sb.AddBytes([]byte("HK"), 0)
	a := sb.BuildSorted()

	got := a.FindAllBytes([]byte("RHKR"))
	want := []Match{{ID: 0, End: 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindAllBytes = %+v, want %+v", got, want)
	}
}

func TestEmptyAutomatonMatchesNothing(t *testing.T) {
	a := NewBuilder().BuildSorted()
	if got := a.FindAll([]rune("何か")); len(got) != 0 {
		t.Errorf("expected no matches from an empty dictionary, got %+v", got)
	}
}
