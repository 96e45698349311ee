package search

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Globidev/push-swap/pkg/instr"
	"github.com/Globidev/push-swap/pkg/stack"
)

// batchBufferSize is how many expanded-and-unseen nodes the main
// thread accumulates before taking the closed-set write lock; slack
// leaves enough headroom that one more worker batch (at most 11
// neighbors) never needs a second flush before the threshold is
// re-checked.
const (
	batchBufferSize = 512
	batchSlack      = 16
)

// openQueue is a single-producer (the main goroutine), multi-consumer
// (the worker goroutines) FIFO with its own synchronization — the
// stdlib realization of a work-stealing frontier, since the corpus
// carries no third-party work-stealing deque.
type openQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []node
	closed bool
}

func newOpenQueue() *openQueue {
	q := &openQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

func (q *openQueue) push(n node) {
	q.mu.Lock()
	q.items = append(q.items, n)
	q.mu.Unlock()
	q.cond.Signal()
}

// pop blocks until a node is available or the queue has been shut down
// with nothing left to drain.
func (q *openQueue) pop() (node, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.items) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.items) == 0 {
		return node{}, false
	}
	n := q.items[0]
	q.items = q.items[1:]
	return n, true
}

func (q *openQueue) shutdown() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.cond.Broadcast()
}

// closedSet is the visited-state set, read far more often than
// written, so readers (the stealers, checking a candidate neighbor)
// and the single writer (the main goroutine, flushing a batch) use a
// RWMutex rather than a plain Mutex.
type closedSet struct {
	mu  sync.RWMutex
	set map[uint64]struct{}
}

func newClosedSet() *closedSet {
	return &closedSet{set: make(map[uint64]struct{})}
}

func (c *closedSet) contains(h uint64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.set[h]
	return ok
}

func (c *closedSet) addAll(hashes []uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, h := range hashes {
		c.set[h] = struct{}{}
	}
}

type expansion struct {
	n node
	h uint64
}

// Parallel performs the same breadth-first search as Sequential, but
// expands nodes concurrently across workers goroutines (or
// runtime.NumCPU() of them when workers <= 0): one coordinating
// goroutine owns the open queue and the closed-set writes, the rest
// steal nodes from the open queue, expand them, and report unseen
// neighbors back over a results channel. At least one stealer is
// started, so workers <= 1 still runs two goroutines.
func Parallel(a stack.Stack, kind stack.Kind, workers int, stats *Stats) []instr.Instruction {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	numStealers := workers - 1
	if numStealers < 1 {
		numStealers = 1
	}

	queue := newOpenQueue()
	closed := newClosedSet()
	results := make(chan []expansion)

	g := new(errgroup.Group)
	for i := 0; i < numStealers; i++ {
		g.Go(func() error {
			for {
				n, ok := queue.pop()
				if !ok {
					return nil
				}

				var batch []expansion
				for _, nb := range neighbors(n) {
					h := fingerprint(nb.a, nb.b)
					if !closed.contains(h) {
						batch = append(batch, expansion{n: nb, h: h})
					}
				}
				results <- batch
				if stats != nil {
					stats.closed.Add(1)
				}
			}
		})
	}

	go func() {
		g.Wait()
		close(results)
	}()

	queue.push(node{a: a.Clone(), b: stack.New(kind, nil)})
	openSize := 1

	bufNodes := make([]node, 0, batchBufferSize)
	bufHashes := make([]uint64, 0, batchBufferSize)

	for batch := range results {
		openSize--

		for _, e := range batch {
			if e.n.b.Len() == 0 && e.n.a.IsSorted() {
				// Return as soon as a goal is seen, per the "main
				// returns as soon as any received batch contains a
				// goal" rule: don't wait for the rest of this batch,
				// the buffered backlog, or the workers still draining
				// the now-shut-down queue. A background goroutine
				// keeps receiving on results so any worker blocked
				// mid-send still completes and exits instead of
				// leaking.
				queue.shutdown()
				go drainResults(results)
				return e.n.instrs
			}
			bufNodes = append(bufNodes, e.n)
			bufHashes = append(bufHashes, e.h)
		}

		if openSize == 0 || len(bufNodes)+batchSlack > batchBufferSize {
			closed.addAll(bufHashes)
			openSize += len(bufNodes)
			if stats != nil {
				stats.expanded.Add(int64(len(bufNodes)))
			}
			for _, n := range bufNodes {
				queue.push(n)
			}
			bufNodes = bufNodes[:0]
			bufHashes = bufHashes[:0]
		}
	}

	panic("search: open set exhausted without a solution (stacks are always solvable)")
}

// drainResults keeps receiving until results closes, letting any
// worker still blocked on a send complete and exit once its queue.pop
// observes the shutdown.
func drainResults(results <-chan []expansion) {
	for range results {
	}
}
