// SPDX-License-Identifier: MIT

package markov

import "fmt"

// The transition graph has an edge i→j whenever P[i][j] > 0. The functions in
// this file walk that graph breadth-first to classify the chain.

// queueItem pairs a state index with its BFS depth from the start state.
type queueItem struct {
	state int
	depth int
}

// walker holds mutable BFS state over the transition graph.
type walker struct {
	c     *Chain
	queue []queueItem
	depth []int // -1 until visited
	order []int
}

func newWalker(c *Chain) *walker {
	n := c.Size()
	w := &walker{
		c:     c,
		queue: make([]queueItem, 0, n),
		depth: make([]int, n),
		order: make([]int, 0, n),
	}
	for i := range w.depth {
		w.depth[i] = -1
	}

	return w
}

// enqueue marks s visited at depth d and queues it.
func (w *walker) enqueue(s, d int) {
	w.depth[s] = d
	w.queue = append(w.queue, queueItem{state: s, depth: d})
}

// run explores everything reachable from start.
func (w *walker) run(start int) {
	w.enqueue(start, 0)
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.order = append(w.order, item.state)
		for j := 0; j < w.c.Size(); j++ {
			if w.c.edge(item.state, j) && w.depth[j] < 0 {
				w.enqueue(j, item.depth+1)
			}
		}
	}
}

// edge reports whether one step can move from state i to state j.
func (c *Chain) edge(i, j int) bool {
	v, _ := c.p.At(i, j)

	return v > 0
}

// Reachable returns the states reachable from state from in zero or more
// steps, in breadth-first order (from itself comes first).
// Errors: ErrInvalidArgument if from is out of range. Complexity: O(n²).
func (c *Chain) Reachable(from int) ([]int, error) {
	if from < 0 || from >= c.Size() {
		return nil, chainErrorf(opReachable, fmt.Errorf("state %d of %d: %w", from, c.Size(), ErrInvalidArgument))
	}
	w := newWalker(c)
	w.run(from)

	return w.order, nil
}

// IsIrreducible reports whether every state can reach every other state.
// Complexity: O(n³).
func (c *Chain) IsIrreducible() bool {
	for i := 0; i < c.Size(); i++ {
		w := newWalker(c)
		w.run(i)
		if len(w.order) != c.Size() {
			return false
		}
	}

	return true
}

// Period returns the period of an irreducible chain: the gcd of the lengths
// of all cycles in the transition graph. A period of 1 means the chain is
// aperiodic, and power iteration converges from any start.
//
// It is computed from a single BFS from state 0 as the gcd over every edge
// i→j of depth(i)+1−depth(j).
// Errors: ErrReducible. Complexity: O(n³).
func (c *Chain) Period() (int, error) {
	if !c.IsIrreducible() {
		return 0, chainErrorf(opPeriod, ErrReducible)
	}
	w := newWalker(c)
	w.run(0)

	g := 0
	for i := 0; i < c.Size(); i++ {
		for j := 0; j < c.Size(); j++ {
			if c.edge(i, j) {
				g = gcd(g, w.depth[i]+1-w.depth[j])
			}
		}
	}

	return g, nil
}

// IsErgodic reports whether the chain is irreducible and aperiodic, in which
// case its stationary distribution is unique and StationaryDistribution
// converges to it.
func (c *Chain) IsErgodic() bool {
	p, err := c.Period()

	return err == nil && p == 1
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
