// ## Overview
// Package list implements a generic singly-linked list.
// The list owns a chain of nodes starting at its head and keeps a cached length,
// so push, pop and length are all constant time. Elements are pushed and popped
// at the head only, there is no indexing and no backward link.
//
// A list built from a sequence with FromSeq holds the elements in the REVERSE
// of the order the sequence produced them, because each element is pushed at the head.
//
// ## Example usage:
//
//	l := list.FromSlice(1, 2, 3) // iterates 3, 2, 1
//	l.Push(4)                    // iterates 4, 3, 2, 1
//
//	it := l.Iter()
//	for v, ok := it.Next(); ok; v, ok = it.Next() {
//	    fmt.Println(v)
//	}
//
//	for v := range l.All() {
//	    fmt.Println(v)
//	}
//
// Iterators borrow the list: mutating the list (Push, Pop, Clear) while an iterator is
// still being advanced makes the next advance panic.
package list
