package acmatcher

import "sort"

const rootNode = 0

// buildNode is one trie node under construction. children maps an edge
// rune to the child node index; fail is the node's not-yet-resolved
// Aho-Corasick failure link (-1 means unresolved); output holds the ids of
// every pattern ending exactly at this node, before the fail-chain output
// union is computed.
type buildNode struct {
	children map[rune]int
	parent   int
	edge     rune
	fail     int
	output   []int
}

// Builder incrementally builds a trie of (pattern, id) entries, mirroring
// the teacher's map-per-state transition shape (Builder.transitions
// []*xqwMap). Build resolves fail links lazily and recursively exactly the
// way the teacher's linkTransition resolves back-off links on demand,
// memoizing into each node, and unions output sets along the way.
type Builder struct {
	nodes []buildNode
}

// NewBuilder returns an empty Builder, already containing the root node.
func NewBuilder() *Builder {
	return &Builder{nodes: []buildNode{{children: map[rune]int{}, fail: -1}}}
}

// Add inserts pattern (as a sequence of runes) associated with id. Adding
// the same pattern twice with different ids makes both ids match at that
// node; it is the caller's responsibility (Model.Validate) to keep
// patterns unique within one dictionary.
func (b *Builder) Add(pattern []rune, id int) {
	cur := rootNode
	for _, r := range pattern {
		next, ok := b.nodes[cur].children[r]
		if !ok {
			next = len(b.nodes)
			b.nodes = append(b.nodes, buildNode{children: map[rune]int{}, parent: cur, edge: r, fail: -1})
			b.nodes[cur].children[r] = next
		}
		cur = next
	}
	b.nodes[cur].output = append(b.nodes[cur].output, id)
}

// AddBytes inserts a byte-string pattern (used for the class-code type
// matcher, whose alphabet is small enough to key by rune(byte) directly).
func (b *Builder) AddBytes(pattern []byte, id int) {
	runes := make([]rune, len(pattern))
	for i, c := range pattern {
		runes[i] = rune(c)
	}
	b.Add(runes, id)
}

// childOf returns node n's child on edge r, resolved through a failed
// lookup the way the trie's own children map would resolve it directly —
// this only ever looks at n's own children, fail-chain fallback happens
// in failOf/step.
func (b *Builder) childOf(n int, r rune) (int, bool) {
	c, ok := b.nodes[n].children[r]
	return c, ok
}

// failOf resolves and memoizes node n's failure link: the nearest proper
// suffix of n's path that is also some node's path, found by walking the
// parent's own failure chain — exactly as the teacher's linkTransition
// walks BackOffState chains.
func (b *Builder) failOf(n int) int {
	if b.nodes[n].fail >= 0 {
		return b.nodes[n].fail
	}
	if n == rootNode {
		b.nodes[n].fail = rootNode
		return rootNode
	}
	p := b.nodes[n].parent
	edge := b.nodes[n].edge
	if p == rootNode {
		b.nodes[n].fail = rootNode
	} else {
		pf := b.failOf(p)
		for {
			if child, ok := b.childOf(pf, edge); ok {
				b.nodes[n].fail = child
				break
			}
			if pf == rootNode {
				b.nodes[n].fail = rootNode
				break
			}
			pf = b.failOf(pf)
		}
	}
	fail := b.nodes[n].fail
	// Resolve the fail target first so its output already holds its own
	// fail-chain union before it is copied into n's.
	b.failOf(fail)
	if len(b.nodes[fail].output) > 0 {
		b.nodes[n].output = append(b.nodes[n].output, b.nodes[fail].output...)
	}
	return fail
}

// resolveAll resolves every node's failure link and output union. Nodes
// are visited in insertion order, so each node's parent is resolved
// first; failOf resolves a node's fail target on demand before unioning
// its output.
func (b *Builder) resolveAll() {
	for i := range b.nodes {
		b.failOf(i)
	}
}

// compiledEdge is one sorted goto edge out of a state.
type compiledEdge struct {
	Rune  rune
	State int
}

// BuildSorted compiles the trie into a Sorted automaton: per-state edges
// flattened into a rune-sorted slice, queried by binary search — adapted
// directly from the teacher's sorted.go findNext.
func (b *Builder) BuildSorted() *Sorted {
	b.resolveAll()
	m := &Sorted{
		edges:  make([][]compiledEdge, len(b.nodes)),
		fail:   make([]int, len(b.nodes)),
		output: make([][]int, len(b.nodes)),
	}
	for i, n := range b.nodes {
		edges := make([]compiledEdge, 0, len(n.children))
		for r, c := range n.children {
			edges = append(edges, compiledEdge{r, c})
		}
		sort.Slice(edges, func(i, j int) bool { return edges[i].Rune < edges[j].Rune })
		m.edges[i] = edges
		m.fail[i] = n.fail
		if len(n.output) > 0 {
			m.output[i] = append([]int(nil), n.output...)
		}
	}
	return m
}

// BuildHashed compiles the trie into a Hashed automaton: per-state edges
// stored in an open-addressed probing table, re-keyed from the teacher's
// WordId to rune — adapted from probing_impl.go/probing_params.go.
func (b *Builder) BuildHashed() *Hashed {
	b.resolveAll()
	m := &Hashed{
		states: make([]hashedState, len(b.nodes)),
	}
	for i, n := range b.nodes {
		t := newRuneIntProbing(len(n.children))
		for r, c := range n.children {
			t.set(r, c)
		}
		m.states[i] = hashedState{
			table: t,
			fail:  n.fail,
		}
		if len(n.output) > 0 {
			m.states[i].output = append([]int(nil), n.output...)
		}
	}
	return m
}
