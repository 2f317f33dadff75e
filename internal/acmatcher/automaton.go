// Package acmatcher implements the multi-pattern matcher vaporetto's core
// scorers depend on: an Aho-Corasick automaton that, given a haystack,
// yields every (pattern id, end position) occurrence of a fixed pattern
// dictionary, character-keyed or class-code-byte-keyed, in deterministic
// end-position order with all overlapping matches reported.
package acmatcher

import "io"

// Match is one pattern occurrence: ID is the pattern's id as given to
// Builder.Add, End is the index one-past the match's last matched
// element (rune index for FindAll, byte index for FindAllBytes) — i.e.
// the last matched element's index is End-1.
type Match struct {
	ID  int
	End int
}

// Automaton is a compiled, read-only, thread-safe pattern matcher.
type Automaton interface {
	// FindAll reports every occurrence of any added pattern in haystack,
	// keyed by rune index, in end-position order.
	FindAll(haystack []rune) []Match
	// FindAllBytes is the byte-keyed counterpart, used for the type-code
	// matcher whose alphabet is CharType bytes rather than runes.
	FindAllBytes(haystack []byte) []Match
	// WriteGraphviz dumps the compiled trie (nodes, goto edges, fail
	// edges) for debugging.
	WriteGraphviz(w io.Writer)
}
