package search

import (
	"github.com/Globidev/push-swap/pkg/instr"
	"github.com/Globidev/push-swap/pkg/replay"
)

// validateFn reports whether an instruction is worth expanding given
// the current stack sizes and the last instruction on the path.
type validateFn func(aLen, bLen int, last instr.Instruction) bool

// candidateInstrs lists, in generation order, the 11 operations and the
// precondition each needs to avoid producing a node reachable by a
// strictly shorter (or identical-cost but already-queued) path:
// two-push / two-swap / two-rotate cancellations and pointless
// push-then-immediate-undo sequences are all excluded here rather than
// discovered and discarded after the fact.
var candidateInstrs = []struct {
	i        instr.Instruction
	validate validateFn
}{
	{instr.RotateBoth, func(a, b int, last instr.Instruction) bool {
		return a >= 2 && b >= 2 && !among(last, instr.ReverseRotateA, instr.ReverseRotateB, instr.ReverseRotateBoth, instr.RotateA, instr.RotateB)
	}},
	{instr.RotateA, func(a, b int, last instr.Instruction) bool {
		return a >= 2 && !among(last, instr.ReverseRotateA, instr.ReverseRotateB, instr.ReverseRotateBoth)
	}},
	{instr.RotateB, func(a, b int, last instr.Instruction) bool {
		return b >= 2 && !among(last, instr.ReverseRotateA, instr.ReverseRotateB, instr.ReverseRotateBoth)
	}},
	{instr.ReverseRotateBoth, func(a, b int, last instr.Instruction) bool {
		return a >= 2 && b >= 2 && !among(last, instr.RotateA, instr.RotateB, instr.RotateBoth, instr.ReverseRotateA, instr.ReverseRotateB)
	}},
	{instr.ReverseRotateA, func(a, b int, last instr.Instruction) bool {
		return a >= 2 && !among(last, instr.RotateA, instr.RotateB, instr.RotateBoth)
	}},
	{instr.ReverseRotateB, func(a, b int, last instr.Instruction) bool {
		return b >= 2 && !among(last, instr.RotateA, instr.RotateB, instr.RotateBoth)
	}},
	{instr.SwapBoth, func(a, b int, last instr.Instruction) bool {
		return a >= 2 && b >= 2 && !among(last, instr.SwapA, instr.SwapB, instr.SwapBoth)
	}},
	{instr.SwapA, func(a, b int, last instr.Instruction) bool {
		return a >= 2 && !among(last, instr.SwapA, instr.SwapB, instr.SwapBoth)
	}},
	{instr.SwapB, func(a, b int, last instr.Instruction) bool {
		return b >= 2 && !among(last, instr.SwapA, instr.SwapB, instr.SwapBoth)
	}},
	{instr.PushA, func(a, b int, last instr.Instruction) bool {
		return b > 0 && last != instr.PushB
	}},
	{instr.PushB, func(a, b int, last instr.Instruction) bool {
		return a >= 2 && last != instr.PushA
	}},
}

func among(i instr.Instruction, set ...instr.Instruction) bool {
	for _, s := range set {
		if i == s {
			return true
		}
	}
	return false
}

// neighbors expands n into every node reachable by one pruned-valid
// instruction.
func neighbors(n node) []node {
	aLen, bLen := n.a.Len(), n.b.Len()
	last := n.lastInstr()

	out := make([]node, 0, len(candidateInstrs))
	for _, c := range candidateInstrs {
		if !c.validate(aLen, bLen, last) {
			continue
		}
		nn := node{
			a:      n.a.Clone(),
			b:      n.b.Clone(),
			instrs: append(append([]instr.Instruction{}, n.instrs...), c.i),
		}
		replay.Apply(c.i, nn.a, nn.b)
		out = append(out, nn)
	}
	return out
}
