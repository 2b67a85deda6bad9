package list

import "iter"

// Items is a forward-only iterator borrowing a List.
// It never owns nodes and it is invalidated by any Push, Pop or Clear on the list
// made after it was created.
type Items[A any] struct {
	list  *List[A]
	head  *node[A] // next node to yield
	nelem int      // remaining elements
	gen   uint64   // list generation the iterator was created at
}

// Iter returns an iterator that yields the elements from head to tail.
func (l *List[A]) Iter() *Items[A] {
	return &Items[A]{
		list:  l,
		head:  l.head,
		nelem: l.length,
		gen:   l.gen,
	}
}

// Next returns the next element and true, or the zero value and false once all
// elements were yielded. After the first false it keeps returning false.
//
// Panics if the list was mutated since the iterator was created.
func (it *Items[A]) Next() (A, bool) {
	var zero A
	if it.nelem == 0 || it.head == nil {
		return zero, false
	}
	if it.gen != it.list.gen {
		panic("[BUG] Items.Next: list was mutated while an iterator is live")
	}
	n := it.head
	it.head = n.next
	it.nelem--
	return n.value, true
}

// Len is the size hint: the number of elements still to be yielded.
func (it *Items[A]) Len() int {
	return it.nelem
}

// All returns the elements from head to tail as a range-over-func sequence.
// The same rule as Items applies: mutating the list while ranging over it panics.
func (l *List[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		it := l.Iter()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Values collects the elements into a slice, in iteration order.
func (l *List[A]) Values() []A {
	vs := make([]A, 0, l.length)
	for v := range l.All() {
		vs = append(vs, v)
	}
	return vs
}
