// Package replay applies push_swap instructions to a pair of stacks.
package replay

import (
	"github.com/Globidev/push-swap/pkg/instr"
	"github.com/Globidev/push-swap/pkg/stack"
)

// Apply executes one instruction against stacks a and b in place. It is
// total: applying an instruction to stacks too short to act on is a
// no-op (the individual backends already treat push/pop/swap/rotate on
// an empty or single-element stack as no-ops).
func Apply(i instr.Instruction, a, b stack.Stack) {
	switch i {
	case instr.PushA:
		if n, ok := b.Pop(); ok {
			a.Push(n)
		}
	case instr.PushB:
		if n, ok := a.Pop(); ok {
			b.Push(n)
		}

	case instr.SwapA:
		a.Swap()
	case instr.SwapB:
		b.Swap()
	case instr.SwapBoth:
		a.Swap()
		b.Swap()

	case instr.RotateA:
		a.Rotate()
	case instr.RotateB:
		b.Rotate()
	case instr.RotateBoth:
		a.Rotate()
		b.Rotate()

	case instr.ReverseRotateA:
		a.ReverseRotate()
	case instr.ReverseRotateB:
		b.ReverseRotate()
	case instr.ReverseRotateBoth:
		a.ReverseRotate()
		b.ReverseRotate()
	}
}

// ApplyAll runs a whole sequence in order.
func ApplyAll(instrs []instr.Instruction, a, b stack.Stack) {
	for _, i := range instrs {
		Apply(i, a, b)
	}
}
