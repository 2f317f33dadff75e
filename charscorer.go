package vaporetto

import (
	"sort"

	"github.com/legalforce-research/vaporetto-go/internal/acmatcher"
)

// charNgramEntry is a compiled char-n-gram pattern: its weight vector and
// its length in runes.
type charNgramEntry struct {
	weights []int32
	length  int
}

// dictEntry is a compiled dictionary word: its {right, inside, left}
// weights and its length in runes.
type dictEntry struct {
	weights DictWeight
	length  int
}

// tagNgramEntry is a compiled left/right tag pattern: its weight rows
// (len(weights)/numTags rows of numTags each — the model defines the row
// count per pattern, it is not derived from window or pattern length) and
// its pattern length in runes.
type tagNgramEntry struct {
	weights []int32
	length  int
}

// selfNgramEntry is a compiled self-model pattern: exactly one row of
// numTags weights regardless of pattern length, applied at a single
// offset (-length) relative to the token boundary the match ends at.
type selfNgramEntry struct {
	weights []int32
	length  int
}

// CharScorer adds character-n-gram and dictionary-word contributions to a
// padded boundary-score vector, per spec.md §4.2.
type CharScorer struct {
	window int

	ngramAutomaton acmatcher.Automaton
	ngramEntries   []charNgramEntry

	dictAutomaton acmatcher.Automaton
	dictEntries   []dictEntry
}

func newCharScorer(m *Model) *CharScorer {
	s := &CharScorer{window: m.CharWindowSize}
	b := acmatcher.NewBuilder()
	for id, e := range m.CharNgramModel {
		b.Add([]rune(e.Pattern), id)
		s.ngramEntries = append(s.ngramEntries, charNgramEntry{weights: e.Weights, length: len([]rune(e.Pattern))})
	}
	s.ngramAutomaton = b.BuildSorted()

	db := acmatcher.NewBuilder()
	for id, e := range m.DictModel {
		db.Add([]rune(e.Word), id)
		s.dictEntries = append(s.dictEntries, dictEntry{weights: e.Weights, length: len([]rune(e.Word))})
	}
	s.dictAutomaton = db.BuildSorted()
	return s
}

// addNgramScores applies the n-gram contribution geometry of spec.md
// §4.2: a match of pattern p ending at (0-based, last-char) index e, with
// window W, adds w[0..2W-|p|+1] into ys starting at offset (e-W)+padding,
// i.e. gaps e-W through e+W-|p|, the gaps whose window holds the match.
func addNgramScores(matches []acmatcher.Match, entries []charNgramEntry, window, padding int, ys []int32) {
	for _, match := range matches {
		e := match.End - 1
		entry := entries[match.ID]
		start := (e - window) + padding
		for k, w := range entry.weights {
			ys[start+k] += w
		}
	}
}

// addDictScores applies the dictionary scorer geometry of spec.md §4.2: a
// match of length k ending at (0-based, last-char) index e contributes
// Right at gap e-k, Inside at each of the k-1 gaps strictly between, and
// Left at gap e, the gap immediately following the word's last character
// — Left always lands at e, for k==1 as much as for k>=2; when k==1 there
// are no inside gaps and Right and Left land on the two distinct gaps e-1
// and e.
func addDictScores(matches []acmatcher.Match, entries []dictEntry, padding, n int, ys []int32) {
	for _, match := range matches {
		e := match.End - 1
		entry := entries[match.ID]
		k := entry.length
		addGap := func(gap int, w int32) {
			if gap < 0 || gap > n-2 {
				return
			}
			ys[gap+padding] += w
		}
		if k == 1 {
			addGap(e-1, entry.weights.Right)
			addGap(e, entry.weights.Left)
			continue
		}
		addGap(e-k, entry.weights.Right)
		for g := e - k + 1; g <= e-1; g++ {
			addGap(g, entry.weights.Inside)
		}
		addGap(e, entry.weights.Left)
	}
}

// addScores implements the CharScorer leg of Predictor's pipeline step 2.
func (s *CharScorer) addScores(sent *Sentence, padding int, ys []int32) {
	chars := sent.Chars()
	n := len(chars)
	addNgramScores(s.ngramAutomaton.FindAll(chars), s.ngramEntries, s.window, padding, ys)
	addDictScores(s.dictAutomaton.FindAll(chars), s.dictEntries, padding, n, ys)
}

// CharScorerWithTags is the tagging superset of CharScorer: in addition to
// the boundary-score contributions above, it populates the three tag-score
// matrices from the left/right/self tag n-gram dictionaries.
type CharScorerWithTags struct {
	CharScorer

	numTags int

	leftAutomaton  acmatcher.Automaton
	leftEntries    []tagNgramEntry
	rightAutomaton acmatcher.Automaton
	rightEntries   []tagNgramEntry
	selfAutomaton  acmatcher.Automaton
	selfEntries    []selfNgramEntry
}

func newCharScorerWithTags(m *Model) *CharScorerWithTags {
	s := &CharScorerWithTags{CharScorer: *newCharScorer(m), numTags: len(m.TagModel.ClassInfo)}

	lb := acmatcher.NewBuilder()
	for id, e := range m.TagModel.LeftCharModel {
		lb.Add([]rune(e.Pattern), id)
		s.leftEntries = append(s.leftEntries, tagNgramEntry{weights: e.Weights, length: len([]rune(e.Pattern))})
	}
	s.leftAutomaton = lb.BuildSorted()

	rb := acmatcher.NewBuilder()
	for id, e := range m.TagModel.RightCharModel {
		rb.Add([]rune(e.Pattern), id)
		s.rightEntries = append(s.rightEntries, tagNgramEntry{weights: e.Weights, length: len([]rune(e.Pattern))})
	}
	s.rightAutomaton = rb.BuildSorted()

	sb := acmatcher.NewBuilder()
	for id, e := range m.TagModel.SelfCharModel {
		sb.Add([]rune(e.Pattern), id)
		s.selfEntries = append(s.selfEntries, selfNgramEntry{weights: e.Weights, length: len([]rune(e.Pattern))})
	}
	s.selfAutomaton = sb.BuildSorted()
	return s
}

// addScoresWithTags runs the base CharScorer contributions and populates
// tag_ys. Tag n-gram matching runs over chars padded with one leading and
// one trailing NUL sentinel rune so that edge-anchored patterns (a left
// pattern ending at the sentence's first token, a right pattern ending at
// its last) can match; match end positions are converted back to real
// character coordinates below. realE is never clamped: a match whose
// last matched rune is the trailing sentinel ends at realE == n for both
// the left and right model, same as any other match.
//
// Left-model rows start at realE-|p|+2 (pattern-length dependent: they
// describe the token immediately after the match, whose window widens
// with the match). Right-model rows start at realE-window (independent
// of pattern length: a fixed 2*window-row slice anchored at the match's
// end). Both were reconstructed by reconciling every row of the worked
// scenario in spec.md §8 against predictor.rs's generate_model_5 fixture
// byte for byte — see DESIGN.md.
func (s *CharScorerWithTags) addScoresWithTags(sent *Sentence, padding int, ys []int32, tagYs *TagScores) {
	s.CharScorer.addScores(sent, padding, ys)

	chars := sent.Chars()
	n := len(chars)
	padded := make([]rune, n+2)
	padded[0] = 0
	copy(padded[1:], chars)
	padded[n+1] = 0

	clip := func(i int) (int, bool) {
		if i < 0 || i > n-1 {
			return 0, false
		}
		return i, true
	}

	for _, match := range s.leftAutomaton.FindAll(padded) {
		entry := s.leftEntries[match.ID]
		realE := match.End - 2
		startRow := realE - entry.length + 2
		rows := len(entry.weights) / s.numTags
		for r := 0; r < rows; r++ {
			row := startRow + r
			if i, ok := clip(row); ok {
				tagYs.addRow(&tagYs.LeftScores, i, entry.weights[r*s.numTags:(r+1)*s.numTags])
			}
		}
	}

	for _, match := range s.rightAutomaton.FindAll(padded) {
		entry := s.rightEntries[match.ID]
		realE := match.End - 2
		startRow := realE - s.window
		rows := len(entry.weights) / s.numTags
		for r := 0; r < rows; r++ {
			row := startRow + r
			if i, ok := clip(row); ok {
				tagYs.addRow(&tagYs.RightScores, i, entry.weights[r*s.numTags:(r+1)*s.numTags])
			}
		}
	}

	for _, match := range s.selfAutomaton.FindAll(padded) {
		entry := s.selfEntries[match.ID]
		realE := match.End - 2
		index, ok := clip(realE)
		if !ok {
			continue
		}
		w := append([]int32(nil), entry.weights...)
		tagYs.SelfScores[index] = append(tagYs.SelfScores[index], SelfWeight{StartRelPosition: int32(-entry.length), Weight: w})
	}

	// Every self pattern contributes exactly one row (length numTags,
	// regardless of pattern length) at the position its match ends,
	// tagged with -|p| — fill_tags's scan walks each position's list
	// looking for the entry whose StartRelPosition exactly equals the
	// gap distance. Distinct patterns matching at the same position are
	// not otherwise ordered relative to each other, so sort descending by
	// StartRelPosition (shortest pattern first) to satisfy that scan's
	// termination rule, which skips entries greater than the gap distance
	// and stops at the first one less than it (spec.md §9).
	for _, list := range tagYs.SelfScores {
		if len(list) > 1 {
			sort.Slice(list, func(i, j int) bool { return list[i].StartRelPosition > list[j].StartRelPosition })
		}
	}
}
