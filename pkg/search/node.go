// Package search implements the sequential and parallel breadth-first
// graph searches over push_swap states.
package search

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/Globidev/push-swap/pkg/instr"
	"github.com/Globidev/push-swap/pkg/stack"
)

// node is a search-graph vertex: the current pair of stacks plus the
// instruction sequence that reached them. Two nodes are considered
// equal (for closed-set purposes) solely by comparing (A, B); instrs
// is the path, not the state.
type node struct {
	a, b   stack.Stack
	instrs []instr.Instruction
}

func (n node) lastInstr() instr.Instruction {
	if len(n.instrs) == 0 {
		return instr.PushB
	}
	return n.instrs[len(n.instrs)-1]
}

// fingerprint hashes (A, B) into a 64-bit digest for the closed set. It
// length-prefixes each stack so no encoding of one sequence of
// elements can collide with a different split between A and B.
func fingerprint(a, b stack.Stack) uint64 {
	h := xxhash.New()
	writeStack(h, a)
	writeStack(h, b)
	return h.Sum64()
}

func writeStack(h *xxhash.Digest, s stack.Stack) {
	var buf [4]byte
	elems := s.Elements()
	binary.BigEndian.PutUint32(buf[:], uint32(len(elems)))
	h.Write(buf[:])
	for _, e := range elems {
		binary.BigEndian.PutUint32(buf[:], e)
		h.Write(buf[:])
	}
}
