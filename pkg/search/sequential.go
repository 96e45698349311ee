package search

import (
	"github.com/Globidev/push-swap/pkg/instr"
	"github.com/Globidev/push-swap/pkg/stack"
)

// Sequential performs a single-threaded breadth-first search over the
// state graph, returning the shortest instruction sequence that sorts
// A onto an empty B.
func Sequential(a stack.Stack, kind stack.Kind, stats *Stats) []instr.Instruction {
	open := []node{{a: a.Clone(), b: stack.New(kind, nil)}}
	closed := make(map[uint64]struct{})

	for len(open) > 0 {
		n := open[0]
		open = open[1:]

		if n.b.Len() == 0 && n.a.IsSorted() {
			return n.instrs
		}

		closed[fingerprint(n.a, n.b)] = struct{}{}
		if stats != nil {
			stats.closed.Add(1)
		}

		for _, nb := range neighbors(n) {
			h := fingerprint(nb.a, nb.b)
			if _, seen := closed[h]; seen {
				continue
			}
			open = append(open, nb)
			if stats != nil {
				stats.expanded.Add(1)
			}
		}
	}

	panic("search: open set exhausted without a solution (stacks are always solvable)")
}
