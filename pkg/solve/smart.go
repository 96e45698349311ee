package solve

import (
	"github.com/Globidev/push-swap/pkg/instr"
	"github.com/Globidev/push-swap/pkg/stack"
)

// smartWindow bounds the offsets considered each step when scanning A
// for the cheapest element to insert into B next.
const smartWindow = 100

// SmartInsert builds B in sorted order one element at a time, each step
// choosing (via a bounded window of candidate offsets into A) whichever
// element minimizes the combined rotation cost of bringing it to the
// top of A and inserting it at the right spot in B.
type SmartInsert struct {
	a, b  stack.Stack
	queue []instr.Instruction
	done  bool
}

// NewSmartInsert builds the solver over a (private, mutated) clone of
// the given stack, backed by a same-kind empty B.
func NewSmartInsert(a stack.Stack, kind stack.Kind) *SmartInsert {
	return &SmartInsert{a: a.Clone(), b: stack.New(kind, nil)}
}

// Next returns the next instruction and true, or false once the
// solution is exhausted.
func (s *SmartInsert) Next() (instr.Instruction, bool) {
	for {
		if len(s.queue) > 0 {
			i := s.queue[0]
			s.queue = s.queue[1:]
			return i, true
		}
		if s.done {
			return 0, false
		}
		if s.a.Len() > 0 {
			s.step()
		} else {
			s.drain()
		}
	}
}

type candidate struct {
	rotA, rotB int
	x          uint32
}

func (s *SmartInsert) step() {
	aLen, bLen := s.a.Len(), s.b.Len()

	var best candidate
	haveBest := false

	for delta := -smartWindow; delta < smartWindow; delta++ {
		x := s.a.Peek(delta)
		rotA := normalizeRotation(delta, aLen)

		var rotB int
		if idx, ok := s.b.InsertIndex(x); ok {
			rotB = idx
		} else if _, idx, ok := s.b.Maximum(); ok {
			rotB = idx
		} else {
			rotB = 0
		}

		cand := candidate{rotA: rotA, rotB: rotB, x: x}
		if !haveBest || isBetterCandidate(aLen, bLen, cand, best) {
			best = cand
			haveBest = true
		}
	}

	rotCost, rrotCost := rotationCosts(aLen, bLen, best.rotA, best.rotB)

	if rotCost <= rrotCost {
		rotBoth := min(best.rotA, best.rotB)
		s.queue = append(s.queue, repeatN(instr.RotateBoth, rotBoth)...)
		s.queue = append(s.queue, repeatN(instr.RotateA, best.rotA-rotBoth)...)
		s.queue = append(s.queue, repeatN(instr.RotateB, best.rotB-rotBoth)...)
		s.queue = append(s.queue, instr.PushB)
	} else {
		rrotA := aLen - best.rotA
		rrotB := bLen - best.rotB
		rotBoth := min(rrotA, rrotB)
		s.queue = append(s.queue, repeatN(instr.ReverseRotateBoth, rotBoth)...)
		s.queue = append(s.queue, repeatN(instr.ReverseRotateA, rrotA-rotBoth)...)
		s.queue = append(s.queue, repeatN(instr.ReverseRotateB, rrotB-rotBoth)...)
		s.queue = append(s.queue, instr.PushB)
	}

	s.a.RotateN(best.rotA)
	x, _ := s.a.Pop()
	s.b.RotateN(best.rotB)
	s.b.Push(x)
}

func (s *SmartInsert) drain() {
	if _, maxIdx, ok := s.b.Maximum(); ok {
		i, n := smartShortestRotation(s.b.Len(), maxIdx)
		s.queue = append(s.queue, repeatN(i, n)...)
	}
	s.queue = append(s.queue, repeatN(instr.PushA, s.b.Len())...)
	s.done = true
}

// isBetterCandidate orders candidates by (minCost asc, x asc), matching
// the original's lexicographic comparator.
func isBetterCandidate(aLen, bLen int, cand, best candidate) bool {
	cRot, cRrot := rotationCosts(aLen, bLen, cand.rotA, cand.rotB)
	bRot, bRrot := rotationCosts(aLen, bLen, best.rotA, best.rotB)
	cMin, bMin := min(cRot, cRrot), min(bRot, bRrot)
	if cMin != bMin {
		return cMin < bMin
	}
	return cand.x < best.x
}

func rotationCosts(aLen, bLen, rotA, rotB int) (rotCost, rrotCost int) {
	rrotA := aLen - rotA
	rrotB := bLen - rotB
	return absInt(rotA - rotB), absInt(rrotA - rrotB)
}

// normalizeRotation turns a (possibly negative, possibly
// out-of-range) offset into a positive rotation count, matching Peek's
// wraparound rule.
func normalizeRotation(delta, length int) int {
	return ((delta % length) + length) % length
}

// smartShortestRotation picks RotateB/ReverseRotateB to bring index at
// to the top of a stack of the given length, tying toward RotateB.
func smartShortestRotation(length, at int) (instr.Instruction, int) {
	mid := length / 2
	if at > mid {
		return instr.ReverseRotateB, length - at
	}
	return instr.RotateB, at
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
