package vaporetto

import "github.com/legalforce-research/vaporetto-go/internal/acmatcher"

// TypeScorer adds character-class n-gram contributions to a boundary-score
// vector. Identical geometry to CharScorer's n-gram path (spec.md §4.3),
// but the haystack is the CharType sequence (treated as a byte string) and
// the window is type_window_size. There is no dictionary component.
//
// spec.md describes this scorer as operating on the slice ys[padding:],
// with offsets unpadded; since type_window_size can exceed neither is
// guaranteed and Go slices cannot be indexed below zero, addScores instead
// takes the full padded ys and the padding offset directly, reusing
// CharScorer's offset formula — padding = max(char_window, type_window)
// guarantees the same in-bounds, branch-free writes the padding scheme is
// built for.
type TypeScorer struct {
	window    int
	automaton acmatcher.Automaton
	entries   []charNgramEntry
}

func newTypeScorer(m *Model) *TypeScorer {
	s := &TypeScorer{window: m.TypeWindowSize}
	b := acmatcher.NewBuilder()
	for id, e := range m.TypeNgramModel {
		pattern := []byte(e.Pattern)
		b.AddBytes(pattern, id)
		s.entries = append(s.entries, charNgramEntry{weights: e.Weights, length: len(pattern)})
	}
	s.automaton = b.BuildSorted()
	return s
}

// addScores adds every type-n-gram match's weight vector into ys at
// absolute offset (e-W)+padding, per spec.md §4.3.
func (s *TypeScorer) addScores(sent *Sentence, padding int, ys []int32) {
	types := sent.CharTypes()
	raw := make([]byte, len(types))
	for i, t := range types {
		raw[i] = byte(t)
	}
	for _, match := range s.automaton.FindAllBytes(raw) {
		e := match.End - 1
		entry := s.entries[match.ID]
		start := (e - s.window) + padding
		for k, w := range entry.weights {
			ys[start+k] += w
		}
	}
}
