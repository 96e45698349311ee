package solve

import (
	"testing"

	"github.com/Globidev/push-swap/pkg/instr"
	"github.com/Globidev/push-swap/pkg/replay"
	"github.com/Globidev/push-swap/pkg/stack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(next func() (instr.Instruction, bool)) []instr.Instruction {
	var out []instr.Instruction
	for {
		i, ok := next()
		if !ok {
			return out
		}
		out = append(out, i)
	}
}

func TestNaiveInsertSorts(t *testing.T) {
	for _, k := range []stack.Kind{stack.LinkedList, stack.RingDeque, stack.Flat} {
		input := stack.New(k, []uint32{4, 67, 3, 87, 23, 1, 0, 2})

		solver := NewNaiveInsert(input)
		moves := collect(solver.Next)

		a := input.Clone()
		b := stack.New(k, nil)
		replay.ApplyAll(moves, a, b)

		require.True(t, a.IsSorted(), "kind %v: %v", k, a.Elements())
		assert.Equal(t, 0, b.Len())
	}
}

func TestNaiveInsertEmptyInput(t *testing.T) {
	input := stack.New(stack.LinkedList, nil)
	solver := NewNaiveInsert(input)
	moves := collect(solver.Next)
	assert.Empty(t, moves)
}

func TestNaiveInsertAlreadySorted(t *testing.T) {
	input := stack.New(stack.LinkedList, []uint32{1, 2, 3, 4})
	solver := NewNaiveInsert(input)
	moves := collect(solver.Next)

	a := input.Clone()
	b := stack.New(stack.LinkedList, nil)
	replay.ApplyAll(moves, a, b)
	assert.True(t, a.IsSorted())
}

func TestSmartInsertSorts(t *testing.T) {
	for _, k := range []stack.Kind{stack.LinkedList, stack.RingDeque, stack.Flat} {
		input := stack.New(k, []uint32{4, 67, 3, 87, 23, 1, 0, 2, 42, 17})

		solver := NewSmartInsert(input, k)
		moves := collect(solver.Next)

		a := input.Clone()
		b := stack.New(k, nil)
		replay.ApplyAll(moves, a, b)

		require.True(t, a.IsSorted(), "kind %v: %v", k, a.Elements())
		assert.Equal(t, 0, b.Len())
	}
}

func TestSmartInsertUsuallyShorterThanNaive(t *testing.T) {
	input := stack.New(stack.LinkedList, []uint32{9, 2, 5, 8, 1, 6, 3, 7, 0, 4, 14, 11, 13, 10, 12})

	naive := collect(NewNaiveInsert(input).Next)
	smart := collect(NewSmartInsert(input, stack.LinkedList).Next)

	assert.LessOrEqual(t, len(smart), len(naive))
}

func TestSmartInsertSingleElement(t *testing.T) {
	input := stack.New(stack.LinkedList, []uint32{42})
	moves := collect(NewSmartInsert(input, stack.LinkedList).Next)

	a := input.Clone()
	b := stack.New(stack.LinkedList, nil)
	replay.ApplyAll(moves, a, b)
	assert.True(t, a.IsSorted())
	assert.Equal(t, 0, b.Len())
}
