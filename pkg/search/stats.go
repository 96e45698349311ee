package search

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"
)

// Stats accumulates search progress counters that Sequential and
// Parallel both update as they run; a nil *Stats disables accounting
// entirely (every call site nil-checks before touching it).
type Stats struct {
	expanded atomic.Int64
	closed   atomic.Int64
}

// Snapshot reads the current counters.
func (s *Stats) Snapshot() (expanded, closed int64) {
	return s.expanded.Load(), s.closed.Load()
}

// ReportEvery starts a goroutine that prints a progress line on the
// given interval until stop is closed, in the same ticker-driven shape
// as a long-running batch search reporting throughput periodically.
// Lines go to stderr so they never land in solve's piped instruction
// stream on stdout.
func (s *Stats) ReportEvery(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		start := time.Now()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				expanded, closedN := s.Snapshot()
				fmt.Fprintf(os.Stderr, "  [%s] %d expanded, %d closed\n", time.Since(start).Round(time.Second), expanded, closedN)
			}
		}
	}()
}
