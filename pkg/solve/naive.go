// Package solve implements the naive-insert and smart-insert push_swap
// solvers as explicit-state iterators.
package solve

import (
	"github.com/Globidev/push-swap/pkg/instr"
	"github.com/Globidev/push-swap/pkg/stack"
)

// NaiveInsert repeatedly rotates A's current minimum to the top and
// pushes it to B, finishing with a single rotation on whatever remains
// of A once it is single-rotation-sortable, then drains B back onto A.
// It is a correct but often suboptimal baseline solver.
type NaiveInsert struct {
	a      stack.Stack
	pushed int
	queue  []instr.Instruction
	done   bool
}

// NewNaiveInsert builds the solver over a (private, mutated) clone of
// the given stack.
func NewNaiveInsert(a stack.Stack) *NaiveInsert {
	return &NaiveInsert{a: a.Clone()}
}

// Next returns the next instruction and true, or false once the
// solution is exhausted.
func (s *NaiveInsert) Next() (instr.Instruction, bool) {
	for {
		if len(s.queue) > 0 {
			i := s.queue[0]
			s.queue = s.queue[1:]
			return i, true
		}
		if s.done {
			return 0, false
		}
		s.step()
	}
}

func (s *NaiveInsert) step() {
	_, minIdx, ok := s.a.Minimum()
	if !ok {
		s.queue = repeatN(instr.PushA, s.pushed)
		s.done = true
		return
	}

	if at, ok := s.a.SortedAt(); ok {
		i, n := naiveRotation(s.a.Len(), at)
		s.queue = append(repeatN(i, n), repeatN(instr.PushA, s.pushed)...)
		s.done = true
		return
	}

	i, n := naiveRotation(s.a.Len(), minIdx)
	switch i {
	case instr.RotateA:
		s.a.RotateN(n)
	case instr.ReverseRotateA:
		s.a.ReverseRotateN(n)
	}
	s.a.Pop()
	s.pushed++

	s.queue = append(repeatN(i, n), instr.PushB)
}

// naiveRotation picks the shorter of RotateA/ReverseRotateA to bring
// index at to the top of a stack of the given length.
func naiveRotation(length, at int) (instr.Instruction, int) {
	mid := length / 2
	if at < mid {
		return instr.RotateA, at
	}
	return instr.ReverseRotateA, length - at
}

func repeatN(i instr.Instruction, n int) []instr.Instruction {
	out := make([]instr.Instruction, n)
	for j := range out {
		out[j] = i
	}
	return out
}
