package strtrie

import "strings"

// Trie is a prefix set of strings. The zero value is not usable, create one with New.
type Trie struct {
	root *node
	size int // distinct inserted strings
}

// New creates a trie holding only the root.
func New() *Trie {
	return &Trie{root: newRoot()}
}

// Insert adds s to the trie. Inserting an existing member changes nothing,
// and inserting the empty string is a no-op.
func (t *Trie) Insert(s string) {
	if t.root.insert(s) {
		t.size++
	}
}

// Contains reports whether s was inserted.
// A proper prefix of a member is not a member unless it was inserted itself.
func (t *Trie) Contains(s string) bool {
	if s == "" {
		return false
	}
	n := t.root.find(s)
	return n != nil && n.isTerminal()
}

// HasPrefix reports whether at least one member starts with p.
// Unlike Contains it is true for every prefix of a member, and false for "".
func (t *Trie) HasPrefix(p string) bool {
	if p == "" {
		return false
	}
	return t.root.find(p) != nil
}

// Len returns the number of distinct members.
func (t *Trie) Len() int {
	return t.size
}

// NodeCount returns the number of non-root nodes.
func (t *Trie) NodeCount() int {
	count := 0
	t.root.forEachStepDown(func(*node) {
		count++
	})
	return count
}

// Equal reports whether a and b have the same structure, which for tries built
// only with Insert means the same members.
func Equal(a, b *Trie) bool {
	return a.root.equal(b.root)
}

// String renders the nodes with children sorted by rune, e.g.
// `Root{Internal('a'){Terminal('b')}}` for a trie holding "ab".
func (t *Trie) String() string {
	var sb strings.Builder
	t.root.writeTo(&sb)
	return sb.String()
}
