package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKinds = []Kind{LinkedList, RingDeque, Flat}

func kindName(k Kind) string {
	switch k {
	case RingDeque:
		return "vec-deque"
	case Flat:
		return "vec"
	default:
		return "linked-list"
	}
}

func TestPushPopOrder(t *testing.T) {
	for _, k := range allKinds {
		t.Run(kindName(k), func(t *testing.T) {
			s := New(k, nil)
			s.Push(3)
			s.Push(2)
			s.Push(1)
			require.Equal(t, []uint32{1, 2, 3}, s.Elements())

			v, ok := s.Pop()
			require.True(t, ok)
			assert.Equal(t, uint32(1), v)
			assert.Equal(t, 2, s.Len())
		})
	}
}

func TestPopEmpty(t *testing.T) {
	for _, k := range allKinds {
		t.Run(kindName(k), func(t *testing.T) {
			s := New(k, nil)
			_, ok := s.Pop()
			assert.False(t, ok)
		})
	}
}

func TestSwap(t *testing.T) {
	for _, k := range allKinds {
		t.Run(kindName(k), func(t *testing.T) {
			s := New(k, []uint32{1, 2, 3})
			s.Swap()
			assert.Equal(t, []uint32{2, 1, 3}, s.Elements())
		})
	}
}

func TestSwapSingleElementNoop(t *testing.T) {
	for _, k := range allKinds {
		t.Run(kindName(k), func(t *testing.T) {
			s := New(k, []uint32{1})
			s.Swap()
			assert.Equal(t, []uint32{1}, s.Elements())
		})
	}
}

func TestRotateAndReverseRotateAreInverse(t *testing.T) {
	for _, k := range allKinds {
		t.Run(kindName(k), func(t *testing.T) {
			s := New(k, []uint32{1, 2, 3, 4})
			s.Rotate()
			assert.Equal(t, []uint32{2, 3, 4, 1}, s.Elements())
			s.ReverseRotate()
			assert.Equal(t, []uint32{1, 2, 3, 4}, s.Elements())
		})
	}
}

func TestRotateAfterPopLeavesNoSlackPhantom(t *testing.T) {
	// Regression: once Pop leaves len(buf) > size ("slack"), Rotate must
	// write the crossing element into its new physical slot instead of
	// just sliding head, or a stale popped value reappears.
	for _, k := range allKinds {
		t.Run(kindName(k), func(t *testing.T) {
			s := New(k, []uint32{3, 1, 2, 0})
			_, ok := s.Pop()
			require.True(t, ok)
			assert.Equal(t, []uint32{1, 2, 0}, s.Elements())

			s.Rotate()
			assert.Equal(t, []uint32{2, 0, 1}, s.Elements())
		})
	}
}

func TestRotateN(t *testing.T) {
	for _, k := range allKinds {
		t.Run(kindName(k), func(t *testing.T) {
			s := New(k, []uint32{1, 2, 3, 4, 5})
			s.RotateN(2)
			assert.Equal(t, []uint32{3, 4, 5, 1, 2}, s.Elements())
			s.ReverseRotateN(2)
			assert.Equal(t, []uint32{1, 2, 3, 4, 5}, s.Elements())
		})
	}
}

func TestIsSorted(t *testing.T) {
	for _, k := range allKinds {
		t.Run(kindName(k), func(t *testing.T) {
			assert.True(t, New(k, []uint32{1, 2, 3}).IsSorted())
			assert.False(t, New(k, []uint32{3, 2, 1}).IsSorted())
			assert.True(t, New(k, nil).IsSorted())
		})
	}
}

func TestSortedAt(t *testing.T) {
	for _, k := range allKinds {
		t.Run(kindName(k), func(t *testing.T) {
			s := New(k, []uint32{3, 4, 5, 1, 2})
			at, ok := s.SortedAt()
			require.True(t, ok)
			assert.Equal(t, 3, at)

			unsortable := New(k, []uint32{3, 1, 4, 1, 5})
			_, ok = unsortable.SortedAt()
			assert.False(t, ok)
		})
	}
}

func TestMinimumTieBreaksLast(t *testing.T) {
	for _, k := range allKinds {
		t.Run(kindName(k), func(t *testing.T) {
			s := New(k, []uint32{5, 1, 9, 1, 7})
			v, idx, ok := s.Minimum()
			require.True(t, ok)
			assert.Equal(t, uint32(1), v)
			assert.Equal(t, 3, idx)
		})
	}
}

func TestMaximumTieBreaksLast(t *testing.T) {
	for _, k := range allKinds {
		t.Run(kindName(k), func(t *testing.T) {
			s := New(k, []uint32{5, 9, 1, 9, 7})
			v, idx, ok := s.Maximum()
			require.True(t, ok)
			assert.Equal(t, uint32(9), v)
			assert.Equal(t, 3, idx)
		})
	}
}

func TestInsertIndex(t *testing.T) {
	for _, k := range allKinds {
		t.Run(kindName(k), func(t *testing.T) {
			s := New(k, []uint32{9, 7, 5, 3, 1})
			idx, ok := s.InsertIndex(6)
			require.True(t, ok)
			assert.Equal(t, 2, idx)

			empty := New(k, nil)
			_, ok = empty.InsertIndex(1)
			assert.False(t, ok)
		})
	}
}

func TestPeekWraps(t *testing.T) {
	for _, k := range allKinds {
		t.Run(kindName(k), func(t *testing.T) {
			s := New(k, []uint32{10, 20, 30})
			assert.Equal(t, uint32(10), s.Peek(0))
			assert.Equal(t, uint32(20), s.Peek(1))
			assert.Equal(t, uint32(10), s.Peek(3))
			assert.Equal(t, uint32(30), s.Peek(-1))
			assert.Equal(t, uint32(10), s.Peek(-3))
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	for _, k := range allKinds {
		t.Run(kindName(k), func(t *testing.T) {
			s := New(k, []uint32{1, 2, 3})
			c := s.Clone()
			c.Pop()
			assert.Equal(t, 3, s.Len())
			assert.Equal(t, 2, c.Len())
		})
	}
}

func TestEmptyDisplay(t *testing.T) {
	assert.Equal(t, "", New(LinkedList, nil).String())
	assert.Equal(t, "Empty", New(RingDeque, nil).String())
	assert.Equal(t, "", New(Flat, nil).String())
}

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"linked-list": LinkedList, "ll": LinkedList,
		"vec-deque": RingDeque, "vd": RingDeque,
		"vec": Flat, "v": Flat,
	}
	for in, want := range cases {
		got, err := ParseKind(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseKind("bogus")
	assert.Error(t, err)
}
