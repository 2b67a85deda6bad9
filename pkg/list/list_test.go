package list

import (
	"iter"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPopEmptyList verifies that popping an empty list yields nothing and keeps the length at zero.
func TestPopEmptyList(t *testing.T) {
	l := New[struct{}]()
	_, ok := l.Pop()
	assert.False(t, ok, "Pop on an empty list should report absent")
	assert.Equal(t, 0, l.Len(), "Length should stay zero")
	assert.True(t, l.IsEmpty())
}

// TestZeroValueList verifies that the zero value is a usable empty list.
func TestZeroValueList(t *testing.T) {
	var l List[int]
	l.Push(7)
	v, ok := l.Pop()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}

// TestPushPopRoundtrip verifies a single push followed by two pops.
func TestPushPopRoundtrip(t *testing.T) {
	l := New[int]()
	l.Push(1)

	v, ok := l.Pop()
	assert.True(t, ok)
	assert.Equal(t, 1, v, "Pop should return the pushed value")

	_, ok = l.Pop()
	assert.False(t, ok, "Second pop should report absent")
	assert.Equal(t, 0, l.Len())
}

// TestListLen verifies the cached length across push and pop, including pop on empty.
func TestListLen(t *testing.T) {
	l := New[int]()
	l.Push(1)
	assert.Equal(t, 1, l.Len())
	l.Pop()
	assert.Equal(t, 0, l.Len())
	l.Pop()
	assert.Equal(t, 0, l.Len(), "Pop on empty must not underflow the length")
}

// TestPopOrderIsLIFO verifies that pushes v1..vn are popped back as vn..v1.
func TestPopOrderIsLIFO(t *testing.T) {
	l := New[string]()
	pushed := []string{"a", "b", "c", "d", "e"}
	for _, v := range pushed {
		l.Push(v)
	}

	popped := []string{}
	for range pushed {
		v, ok := l.Pop()
		require.True(t, ok)
		popped = append(popped, v)
	}

	want := slices.Clone(pushed)
	slices.Reverse(want)
	if diff := cmp.Diff(want, popped); diff != "" {
		t.Errorf("Pop order mismatch (-want +got):\n%s", diff)
	}
	_, ok := l.Pop()
	assert.False(t, ok)
	assert.Equal(t, 0, l.Len())
}

// TestFromSeq verifies that building from (1,2,3,4) pops back 4,3,2,1.
func TestFromSeq(t *testing.T) {
	vec := []int{1, 2, 3, 4}

	l := FromSeq(slices.Values(vec))
	assert.Equal(t, 4, l.Len())

	for i := len(vec) - 1; i >= 0; i-- {
		v, ok := l.Pop()
		require.True(t, ok)
		assert.Equal(t, vec[i], v)
	}
}

// TestFromSeqReversesOrder verifies the iteration order of a list built from a sequence.
func TestFromSeqReversesOrder(t *testing.T) {
	testCases := []struct {
		name string
		in   []int
		want []int
	}{
		{"empty", []int{}, []int{}},
		{"single", []int{1}, []int{1}},
		{"many", []int{1, 2, 3, 4}, []int{4, 3, 2, 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := FromSeq(slices.Values(tc.in))
			assert.Equal(t, len(tc.in), l.Len())
			if diff := cmp.Diff(tc.want, l.Values()); diff != "" {
				t.Errorf("Iteration order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestFromSeqIsLazy verifies that FromSeq draws the elements one at a time from a generator.
func TestFromSeqIsLazy(t *testing.T) {
	drawn := 0
	var gen iter.Seq[int] = func(yield func(int) bool) {
		for i := 1; i <= 3; i++ {
			drawn++
			if !yield(i * 10) {
				return
			}
		}
	}

	l := FromSeq(gen)
	assert.Equal(t, 3, drawn, "The sequence should be consumed fully")
	assert.Equal(t, []int{30, 20, 10}, l.Values())
}

// TestFromSlice verifies FromSlice behaves like FromSeq.
func TestFromSlice(t *testing.T) {
	assert.Equal(t, "[c b a]", FromSlice("a", "b", "c").String())
	assert.Equal(t, 0, FromSlice[int]().Len())
}

// TestIterator verifies the iterator yields 2 then 1 then stays exhausted.
func TestIterator(t *testing.T) {
	l := New[int]()
	l.Push(1)
	l.Push(2)

	it := l.Iter()
	assert.Equal(t, 2, it.Len(), "Size hint should equal the list length")

	v, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, it.Len())

	v, ok = it.Next()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 0, it.Len())

	_, ok = it.Next()
	assert.False(t, ok)
	_, ok = it.Next()
	assert.False(t, ok, "An exhausted iterator must keep returning absent")
}

// TestIteratorDoesNotConsume verifies that iterating leaves the list intact.
func TestIteratorDoesNotConsume(t *testing.T) {
	l := FromSlice(1, 2, 3)
	first := l.Values()
	second := l.Values()
	assert.Equal(t, first, second)
	assert.Equal(t, 3, l.Len())
}

// TestLenMatchesIterationCount verifies Len against a fresh iterator after random operations.
func TestLenMatchesIterationCount(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	l := New[int]()

	for i := 0; i < 1000; i++ {
		if r.Intn(3) == 0 {
			l.Pop()
		} else {
			l.Push(i)
		}

		count := 0
		for range l.All() {
			count++
		}
		require.Equal(t, l.Len(), count, "Len must equal the number of iterated elements")
	}
}

// TestIteratorPanicsOnMutation verifies the fail-fast check on a live iterator.
func TestIteratorPanicsOnMutation(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(l *List[int])
	}{
		{"push", func(l *List[int]) { l.Push(9) }},
		{"pop", func(l *List[int]) { l.Pop() }},
		{"clear", func(l *List[int]) { l.Clear() }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := FromSlice(1, 2, 3)
			it := l.Iter()
			it.Next()

			tc.mutate(l)
			assert.Panics(t, func() {
				it.Next()
			}, "Next should panic after the list was mutated")
		})
	}
}

// TestIteratorPopOnEmptyIsNotAMutation verifies that a no-op Pop does not invalidate iterators.
func TestIteratorPopOnEmptyIsNotAMutation(t *testing.T) {
	l := New[int]()
	it := l.Iter()
	l.Pop()
	assert.NotPanics(t, func() {
		_, ok := it.Next()
		assert.False(t, ok)
	})
}

// TestRangePanicsOnMutation verifies the same check for range-over-func iteration.
func TestRangePanicsOnMutation(t *testing.T) {
	l := FromSlice(1, 2, 3)
	assert.Panics(t, func() {
		for v := range l.All() {
			l.Push(v)
		}
	})
}

// TestRangeBreak verifies that breaking out of All stops the iteration.
func TestRangeBreak(t *testing.T) {
	l := FromSlice(1, 2, 3, 4)
	seen := []int{}
	for v := range l.All() {
		seen = append(seen, v)
		if v == 3 {
			break
		}
	}
	assert.Equal(t, []int{4, 3}, seen)
}

// TestPeek verifies that Peek returns the head without removing it.
func TestPeek(t *testing.T) {
	l := New[int]()
	_, ok := l.Peek()
	assert.False(t, ok)

	l.Push(5)
	v, ok := l.Peek()
	assert.True(t, ok)
	assert.Equal(t, 5, v)
	assert.Equal(t, 1, l.Len())
}

// TestClear verifies that Clear empties the list and that it is reusable afterwards.
func TestClear(t *testing.T) {
	l := FromSlice(1, 2, 3)
	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.True(t, l.IsEmpty())
	assert.Equal(t, "[]", l.String())

	l.Push(4)
	assert.Equal(t, []int{4}, l.Values())
}

// TestClearLongList verifies that a very long chain is released without recursion.
func TestClearLongList(t *testing.T) {
	l := New[int]()
	for i := 0; i < 1_000_000; i++ {
		l.Push(i)
	}
	assert.NotPanics(t, l.Clear)
	assert.Equal(t, 0, l.Len())
}

// TestEqual verifies structural equality of lists.
func TestEqual(t *testing.T) {
	a := FromSlice(1, 2, 3)
	b := FromSlice(1, 2, 3)
	c := FromSlice(3, 2, 1)
	d := FromSlice(1, 2)

	assert.True(t, Equal(a, a), "Equality should be reflexive")
	assert.True(t, Equal(a, b))
	assert.True(t, Equal(b, a), "Equality should be symmetric")
	assert.False(t, Equal(a, c), "Order matters")
	assert.False(t, Equal(a, d), "Length matters")
	assert.True(t, Equal(New[int](), New[int]()))
}

// TestEqualFunc verifies equality with a custom element comparison.
func TestEqualFunc(t *testing.T) {
	a := FromSlice(1, 2, 3)
	b := FromSlice("1", "2", "3")
	assert.True(t, EqualFunc(a, b, func(x int, y string) bool {
		return string(rune('0'+x)) == y
	}))
}

// TestString verifies the debug rendering is in iteration order.
func TestString(t *testing.T) {
	l := New[int]()
	assert.Equal(t, "[]", l.String())
	l.Push(1)
	l.Push(2)
	assert.Equal(t, "[2 1]", l.String())
}

func BenchmarkPushPop(b *testing.B) {
	l := New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Push(i)
	}
	for i := 0; i < b.N; i++ {
		l.Pop()
	}
}

func BenchmarkIterate(b *testing.B) {
	l := New[int]()
	for i := 0; i < 10_000; i++ {
		l.Push(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range l.All() {
		}
	}
}
