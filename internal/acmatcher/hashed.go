package acmatcher

import (
	"fmt"
	"io"
)

// hashedState is one compiled state: its goto edges in an open-addressed
// probing table, its fail link, and its output pattern ids.
type hashedState struct {
	table  *runeIntProbing
	fail   int
	output []int
}

// Hashed is a compiled Automaton storing each state's goto edges in an
// open-addressed probing table with doubling resize — adapted from the
// teacher's probing_impl.go/probing_params.go, re-keyed from WordId to
// rune.
type Hashed struct {
	states []hashedState
}

func (m *Hashed) step(state int, r rune) int {
	for {
		if next, ok := m.states[state].table.get(r); ok {
			return next
		}
		if state == rootNode {
			return rootNode
		}
		state = m.states[state].fail
	}
}

// FindAll implements Automaton.
func (m *Hashed) FindAll(haystack []rune) []Match {
	var out []Match
	state := rootNode
	for i, r := range haystack {
		state = m.step(state, r)
		for _, id := range m.states[state].output {
			out = append(out, Match{ID: id, End: i + 1})
		}
	}
	return out
}

// FindAllBytes implements Automaton.
func (m *Hashed) FindAllBytes(haystack []byte) []Match {
	var out []Match
	state := rootNode
	for i, c := range haystack {
		state = m.step(state, rune(c))
		for _, id := range m.states[state].output {
			out = append(out, Match{ID: id, End: i + 1})
		}
	}
	return out
}

// WriteGraphviz implements Automaton.
func (m *Hashed) WriteGraphviz(w io.Writer) {
	fmt.Fprintln(w, "digraph {")
	fmt.Fprintln(w, "  // goto edges")
	for p, s := range m.states {
		s.table.each(func(r rune, q int) {
			fmt.Fprintf(w, "  %d -> %d [label=%q]\n", p, q, string(r))
		})
	}
	fmt.Fprintln(w, "  // fail edges")
	for p, s := range m.states {
		if p != rootNode {
			fmt.Fprintf(w, "  %d -> %d [style=dashed]\n", p, s.fail)
		}
	}
	fmt.Fprintln(w, "}")
}
