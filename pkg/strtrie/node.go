package strtrie

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"
)

// Kind is the tag of a trie node.
type Kind uint8

const (
	Root     Kind = iota // the root, carries no rune
	Internal             // a proper prefix of an inserted string
	Terminal             // the end of an inserted string
)

func (k Kind) String() string {
	switch k {
	case Root:
		return "Root"
	case Internal:
		return "Internal"
	case Terminal:
		return "Terminal"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// node is a single trie node. Each non-root node is owned by exactly one parent
// through the children entry keyed by its own value.
type node struct {
	kind     Kind
	value    rune // zero for the root
	children map[rune]*node
	depth    int // number of runes on the path from the root
}

func newRoot() *node {
	return &node{kind: Root, children: map[rune]*node{}}
}

func newChild(kind Kind, c rune, depth int) *node {
	return &node{kind: kind, value: c, children: map[rune]*node{}, depth: depth}
}

func (n *node) isRoot() bool {
	return n.kind == Root
}

func (n *node) isTerminal() bool {
	return n.kind == Terminal
}

// checks if the node has no children.
func (n *node) isLeaf() bool {
	return len(n.children) == 0
}

// insert consumes the first rune of s below n and recurses on the rest.
// It reports whether s was not a member before.
func (n *node) insert(s string) bool {
	c, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return false
	}
	rest := s[size:]
	last := rest == ""

	child, ok := n.children[c]
	if !ok {
		kind := Internal
		if last {
			kind = Terminal
		}
		child = newChild(kind, c, n.depth+1)
		n.children[c] = child
		if last {
			return true
		}
		return child.insert(rest)
	}

	if last {
		// promote, keeping the subtree. Terminal stays Terminal.
		added := !child.isTerminal()
		child.kind = Terminal
		return added
	}
	return child.insert(rest)
}

// find walks down from n following the runes of s and returns the node
// at the end of the path, or nil if the path leaves the trie.
func (n *node) find(s string) *node {
	current := n
	for _, c := range s {
		next, ok := current.children[c]
		if !ok {
			return nil
		}
		current = next
	}
	return current
}

// sortedKeys returns the child runes in ascending order, so walks never depend
// on map iteration order.
func (n *node) sortedKeys() []rune {
	return slices.Sorted(maps.Keys(n.children))
}

// applies f to each child, in rune order.
func (n *node) forEachChild(f func(child *node)) {
	for _, c := range n.sortedKeys() {
		f(n.children[c])
	}
}

// recursively applies f to each descendant of n (pre-order, children in rune order).
func (n *node) forEachStepDown(f func(child *node)) {
	n.forEachChild(func(child *node) {
		f(child)
		child.forEachStepDown(f)
	})
}

// equal compares two subtrees: same tag, same rune, same children.
func (n *node) equal(o *node) bool {
	if n.kind != o.kind || n.value != o.value || len(n.children) != len(o.children) {
		return false
	}
	for c, child := range n.children {
		other, ok := o.children[c]
		if !ok || !child.equal(other) {
			return false
		}
	}
	return true
}

func (n *node) writeTo(sb *strings.Builder) {
	if n.isRoot() {
		sb.WriteString("Root")
	} else {
		fmt.Fprintf(sb, "%s(%q)", n.kind, n.value)
	}
	if n.isLeaf() {
		return
	}
	sb.WriteByte('{')
	first := true
	n.forEachChild(func(child *node) {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		child.writeTo(sb)
	})
	sb.WriteByte('}')
}
