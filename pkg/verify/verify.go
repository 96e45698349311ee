// Package verify replays an instruction sequence against a starting
// stack and reports whether it sorts it, mirroring push_swap's own
// "checker" mode.
package verify

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Globidev/push-swap/pkg/instr"
	"github.com/Globidev/push-swap/pkg/replay"
	"github.com/Globidev/push-swap/pkg/stack"
)

// Report summarizes a replay run.
type Report struct {
	Start, End stack.Stack
	Sorted     bool
	Moves      int
	Ratio      float64
	Trace      []string
}

// Run reads newline-delimited instruction tokens from r, applies each
// to a and a fresh B stack of the same backend kind, and returns a
// Report. Blank lines are skipped. An unparseable token aborts the
// replay and returns an error naming the offending line.
func Run(r io.Reader, a stack.Stack, kind stack.Kind, debugStates bool) (*Report, error) {
	start := a.Clone()
	b := stack.New(kind, nil)

	width := len(start.String())

	var trace []string
	moves := 0
	lineNo := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		i, err := instr.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		replay.Apply(i, a, b)
		moves++

		if debugStates {
			trace = append(trace, fmt.Sprintf("%-3s => %-*s %s %s", i, width, a, "|", b))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	ratio := 0.0
	if start.Len() > 0 {
		ratio = float64(moves) / float64(start.Len())
	}

	return &Report{
		Start:  start,
		End:    a,
		Sorted: a.IsSorted() && b.Len() == 0,
		Moves:  moves,
		Ratio:  ratio,
		Trace:  trace,
	}, nil
}
