// Package stack provides three interchangeable backends for the two
// push_swap stacks (A and B), all satisfying the Stack interface.
package stack

import "fmt"

// Stack is the contract every backend implements. All operations treat
// the stack as a LIFO with "top" at index 0; Elements returns the
// current contents top-to-bottom.
type Stack interface {
	fmt.Stringer

	Push(n uint32)
	Pop() (uint32, bool)
	Swap()
	Rotate()
	ReverseRotate()

	Len() int
	IsSorted() bool
	// SortedAt reports the single rotation pivot that would sort the
	// stack, or ok=false if more than one descent exists (not sortable
	// by a single rotation) or the stack has fewer than 2 elements.
	SortedAt() (at int, ok bool)
	Minimum() (value uint32, index int, ok bool)
	Maximum() (value uint32, index int, ok bool)

	RotateN(n int)
	ReverseRotateN(n int)

	// InsertIndex finds the adjacency gap where t belongs, treating the
	// stack as sorted-descending-from-top; ok is false when no such gap
	// exists (t is larger than every element, t is smaller than every
	// element, or the stack is empty).
	InsertIndex(t uint32) (index int, ok bool)
	// Peek returns the element n positions from the top, wrapping
	// around (including negative offsets) according to stack length.
	Peek(n int) uint32

	Clone() Stack
	Elements() []uint32
}

// Kind selects a Stack backend.
type Kind int

const (
	LinkedList Kind = iota
	RingDeque
	Flat
)

// ParseKind maps a CLI flag value (and its short alias) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "linked-list", "ll":
		return LinkedList, nil
	case "vec-deque", "vd":
		return RingDeque, nil
	case "vec", "v":
		return Flat, nil
	default:
		return 0, fmt.Errorf("unknown stack type %q", s)
	}
}

// New builds an empty or pre-filled Stack of the given backend, with
// values laid out top-to-bottom (values[0] ends up on top).
func New(kind Kind, values []uint32) Stack {
	switch kind {
	case RingDeque:
		return newRingStack(values)
	case Flat:
		return newFlatStack(values)
	default:
		return newLinkedStack(values)
	}
}

// wrapIndex resolves a possibly-negative, possibly-out-of-range offset
// against a length, matching the wraparound rule used by Peek.
func wrapIndex(n, length int) int {
	return ((n % length) + length) % length
}

// sortedAt scans elems (top-to-bottom, treated as a ring) for a single
// descent and returns its 1-indexed pivot.
func sortedAt(elems []uint32) (int, bool) {
	n := len(elems)
	if n < 2 {
		return 0, false
	}
	pivot, found := 0, false
	for i := 0; i < n; i++ {
		a := elems[i]
		b := elems[(i+1)%n]
		if a > b {
			if found {
				return 0, false
			}
			pivot, found = i+1, true
		}
	}
	if !found {
		return 0, false
	}
	return pivot, true
}

func isSorted(elems []uint32) bool {
	for i := 1; i < len(elems); i++ {
		if elems[i-1] > elems[i] {
			return false
		}
	}
	return true
}

// minimum/maximum resolve ties toward the *last* matching index, which
// is what the original implementation's fold-based scan produces.
func minimum(elems []uint32) (uint32, int, bool) {
	if len(elems) == 0 {
		return 0, 0, false
	}
	minVal, minIdx := elems[0], 0
	for i := 1; i < len(elems); i++ {
		if elems[i] <= minVal {
			minVal, minIdx = elems[i], i
		}
	}
	return minVal, minIdx, true
}

func maximum(elems []uint32) (uint32, int, bool) {
	if len(elems) == 0 {
		return 0, 0, false
	}
	maxVal, maxIdx := elems[0], 0
	for i := 1; i < len(elems); i++ {
		if elems[i] >= maxVal {
			maxVal, maxIdx = elems[i], i
		}
	}
	return maxVal, maxIdx, true
}

func insertIndex(elems []uint32, t uint32) (int, bool) {
	n := len(elems)
	if n == 0 {
		return 0, false
	}
	for i := 0; i < n; i++ {
		l := elems[i]
		r := elems[(i+1)%n]
		if l >= t && r <= t {
			return i + 1, true
		}
	}
	return 0, false
}

func render(elems []uint32, empty string) string {
	if len(elems) == 0 {
		return empty
	}
	s := fmt.Sprint(elems[0])
	for _, e := range elems[1:] {
		s += fmt.Sprintf(" %d", e)
	}
	return s
}
