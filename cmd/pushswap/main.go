package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Globidev/push-swap/pkg/instr"
	"github.com/Globidev/push-swap/pkg/search"
	"github.com/Globidev/push-swap/pkg/solve"
	"github.com/Globidev/push-swap/pkg/stack"
	"github.com/Globidev/push-swap/pkg/verify"
)

func main() {
	var stackTypeStr string

	rootCmd := &cobra.Command{
		Use:   "pushswap",
		Short: "push_swap — solve and verify the stack-sorting puzzle",
	}
	rootCmd.PersistentFlags().StringVarP(&stackTypeStr, "stack-type", "t", "linked-list",
		"Stack backend: linked-list|ll, vec-deque|vd, vec|v")

	var debugStates bool
	checkCmd := &cobra.Command{
		Use:   "check <N>...",
		Short: "Verify an instruction stream on stdin against the initial stack",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := stack.ParseKind(stackTypeStr)
			if err != nil {
				return err
			}
			values, err := parseValues(args)
			if err != nil {
				return err
			}

			a := stack.New(kind, values)
			report, err := verify.Run(os.Stdin, a, kind, debugStates)
			if err != nil {
				return err
			}

			printReport(report)
			if !report.Sorted {
				os.Exit(1)
			}
			return nil
		},
	}
	checkCmd.Flags().BoolVarP(&debugStates, "debug-states", "d", false, "Print A/B after each instruction")

	var strategyStr string
	var parThreads int
	var showProgress bool
	solveCmd := &cobra.Command{
		Use:   "solve <N>...",
		Short: "Solve the puzzle and print instructions to stdout",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := stack.ParseKind(stackTypeStr)
			if err != nil {
				return err
			}
			values, err := parseValues(args)
			if err != nil {
				return err
			}

			var stats *search.Stats
			if showProgress {
				stats = &search.Stats{}
				stop := make(chan struct{})
				stats.ReportEvery(2*time.Second, stop)
				defer close(stop)
			}

			moves, err := solveWith(strategyStr, values, kind, parThreads, stats)
			if err != nil {
				return err
			}

			w := bufio.NewWriterSize(os.Stdout, 4096)
			defer w.Flush()
			for _, i := range moves {
				fmt.Fprintln(w, i.String())
			}
			return nil
		},
	}
	solveCmd.Flags().StringVarP(&strategyStr, "strategy", "s", "smart-insert",
		"Strategy: astar|a*, par-astar|para*, naive-insert|naive, smart-insert|smart")
	solveCmd.Flags().IntVarP(&parThreads, "par-threads", "p", 0, "Worker count for par-astar (0 = NumCPU)")
	solveCmd.Flags().BoolVar(&showProgress, "progress", false, "Print periodic expanded/closed node counts to stderr (astar/par-astar only)")

	rootCmd.AddCommand(checkCmd, solveCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func parseValues(args []string) ([]uint32, error) {
	values := make([]uint32, len(args))
	for i, a := range args {
		v, err := strconv.ParseUint(strings.TrimSpace(a), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid stack element %q: %w", a, err)
		}
		values[i] = uint32(v)
	}
	return values, nil
}

func solveWith(strategy string, values []uint32, kind stack.Kind, parThreads int, stats *search.Stats) ([]instr.Instruction, error) {
	switch strings.ToLower(strategy) {
	case "astar", "a*":
		return search.Sequential(stack.New(kind, values), kind, stats), nil
	case "par-astar", "para*":
		if parThreads <= 0 {
			parThreads = runtime.NumCPU()
		}
		return search.Parallel(stack.New(kind, values), kind, parThreads, stats), nil
	case "naive-insert", "naive":
		return drain(solve.NewNaiveInsert(stack.New(kind, values)).Next), nil
	case "smart-insert", "smart":
		return drain(solve.NewSmartInsert(stack.New(kind, values), kind).Next), nil
	default:
		return nil, fmt.Errorf("unknown strategy: %s", strategy)
	}
}

func drain(next func() (instr.Instruction, bool)) []instr.Instruction {
	var out []instr.Instruction
	for {
		i, ok := next()
		if !ok {
			return out
		}
		out = append(out, i)
	}
}

func printReport(r *verify.Report) {
	fmt.Printf("Start: %s\n", r.Start)
	for _, line := range r.Trace {
		fmt.Println(line)
	}
	fmt.Printf("End: %s\n", r.End)
	sorted := "No"
	if r.Sorted {
		sorted = "Yes"
	}
	fmt.Printf("Sorted: %s\n", sorted)
	fmt.Printf("Moves: %d\n", r.Moves)
	fmt.Printf("Ratio: %.3f\n", r.Ratio)
}
