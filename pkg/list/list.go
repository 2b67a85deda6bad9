package list

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// List is a singly-linked list of owned nodes with a cached length.
// The zero value is an empty list ready to use.
type List[A any] struct {
	head   *node[A] // first node, nil when the list is empty
	length int      // number of nodes reachable from head
	gen    uint64   // bumped on every structural change, checked by iterators
}

// node owns its value and the link to the next node (nil at the tail).
type node[A any] struct {
	next  *node[A]
	value A
}

// New creates an empty list.
func New[A any]() *List[A] {
	return &List[A]{}
}

// FromSeq drains seq and pushes every element at the head, in the order seq yields them.
// The resulting list iterates in the REVERSE of seq's order:
//
//	FromSeq(slices.Values([]int{1, 2, 3})) // iterates 3, 2, 1
func FromSeq[A any](seq iter.Seq[A]) *List[A] {
	l := New[A]()
	for v := range seq {
		l.Push(v)
	}
	return l
}

// FromSlice is FromSeq over the values of vs, so the last value ends up at the head.
func FromSlice[A any](vs ...A) *List[A] {
	return FromSeq(slices.Values(vs))
}

// splices n in front of the current head.
func (l *List[A]) pushNode(n *node[A]) {
	n.next = l.head
	l.head = n
	l.length++
	l.gen++
}

// detaches and returns the head node, or nil if the list is empty.
func (l *List[A]) popNode() *node[A] {
	n := l.head
	if n == nil {
		return nil
	}
	l.head = n.next
	n.next = nil
	l.length--
	l.gen++
	return n
}

// Push makes v the new head. The previous head (if any) becomes the second element.
func (l *List[A]) Push(v A) {
	l.pushNode(&node[A]{value: v})
}

// Pop removes the head and returns its value.
// On an empty list it returns the zero value and false, and the list is left untouched.
func (l *List[A]) Pop() (A, bool) {
	n := l.popNode()
	if n == nil {
		var zero A
		return zero, false
	}
	return n.value, true
}

// Peek returns the head value without removing it.
func (l *List[A]) Peek() (A, bool) {
	if l.head == nil {
		var zero A
		return zero, false
	}
	return l.head.value, true
}

// Len returns the number of elements, in constant time.
func (l *List[A]) Len() int {
	return l.length
}

// IsEmpty reports whether the list has no elements.
func (l *List[A]) IsEmpty() bool {
	return l.head == nil
}

// Clear unlinks every node one by one, so a long chain is released without recursion
// and no node keeps the rest of the chain alive. Live iterators are invalidated.
func (l *List[A]) Clear() {
	for l.head != nil {
		n := l.head
		l.head = n.next
		n.next = nil
	}
	l.length = 0
	l.gen++
}

// Equal reports whether a and b have the same length and equal elements in iteration order.
func Equal[A comparable](a, b *List[A]) bool {
	return EqualFunc(a, b, func(x, y A) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[A, B any](a *List[A], b *List[B], eq func(A, B) bool) bool {
	if a.length != b.length {
		return false
	}
	na, nb := a.head, b.head
	for na != nil && nb != nil {
		if !eq(na.value, nb.value) {
			return false
		}
		na, nb = na.next, nb.next
	}
	return na == nil && nb == nil
}

// String renders the elements head to tail, e.g. "[3 2 1]".
func (l *List[A]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", n.value)
	}
	sb.WriteByte(']')
	return sb.String()
}
