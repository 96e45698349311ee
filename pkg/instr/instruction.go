// Package instr implements the push_swap instruction codec: the 11 legal
// stack operations and their textual token form.
package instr

import "fmt"

// Instruction identifies one of the 11 legal push_swap operations.
type Instruction uint8

const (
	PushA Instruction = iota
	PushB
	SwapA
	SwapB
	SwapBoth
	RotateA
	RotateB
	RotateBoth
	ReverseRotateA
	ReverseRotateB
	ReverseRotateBoth

	count
)

// catalog is the single source of truth mapping an Instruction to its
// token; Parse and String both read from it so the two directions can
// never drift apart.
var catalog = [count]string{
	PushA:              "pa",
	PushB:              "pb",
	SwapA:              "sa",
	SwapB:              "sb",
	SwapBoth:           "ss",
	RotateA:            "ra",
	RotateB:            "rb",
	RotateBoth:         "rr",
	ReverseRotateA:     "rra",
	ReverseRotateB:     "rrb",
	ReverseRotateBoth:  "rrr",
}

// ParseError reports an unrecognized instruction token.
type ParseError struct {
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid instruction: %q", e.Token)
}

var tokenToInstr map[string]Instruction

func init() {
	tokenToInstr = make(map[string]Instruction, count)
	for i, tok := range catalog {
		tokenToInstr[tok] = Instruction(i)
	}
}

// Parse maps a token ("pa", "rrr", ...) to its Instruction.
func Parse(token string) (Instruction, error) {
	if i, ok := tokenToInstr[token]; ok {
		return i, nil
	}
	return 0, &ParseError{Token: token}
}

// String renders the instruction back to its token form.
func (i Instruction) String() string {
	if int(i) >= len(catalog) {
		return "??"
	}
	return catalog[i]
}

// Valid reports whether i is one of the 11 known instructions.
func (i Instruction) Valid() bool {
	return i < count
}

// Count is the number of distinct instructions.
const Count = int(count)
