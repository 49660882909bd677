package tspm

import (
	"fmt"

	"github.com/katalvlaran/pgsolve/bitset"
	"github.com/katalvlaran/pgsolve/game"
	"github.com/katalvlaran/pgsolve/intqueue"
)

// Solve runs the progress-measure engine over g and emits one decision per
// enabled vertex to sink: the winner, and the recorded strategy when the
// winner owns the vertex (game.NoStrategy otherwise).
//
// Preconditions and faults:
//   - game.ErrEmptyGame when no vertex is enabled.
//   - ErrDichotomy when the fixed point leaves a vertex undecided; this is
//     an internal fault, the sink receives nothing.
//   - A sink error aborts the emission loop and is returned as-is.
//
// Complexity: see the package documentation. All state is allocated here
// and garbage once Solve returns.
func Solve(g game.Game, sink game.Sink, opts ...Option) error {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if game.EnabledCount(g) == 0 {
		return game.ErrEmptyGame
	}

	s := newSolver(g, sink, cfg)
	s.run()

	return s.finish()
}

// solver holds the mutable state of a single run.
type solver struct {
	g    game.Game
	sink game.Sink
	opts Options

	n int // vertex count
	k int // maxPriority+1, at least 2

	pms      []int // n·k flat measure storage
	strategy []int // minimizing successor per vertex, -1 when unset
	counts   []int // per-priority lattice bound, monotonically non-increasing
	tmp      []int // Prog scratch
	best     []int // minimum-successor scratch

	dirty    *bitset.BitSet // membership mask of the todo queue
	unstable *bitset.BitSet // stability-sweep mark
	todo     *intqueue.IntQueue
	work     *intqueue.IntQueue // sweep-local worklist

	liftCount   int64
	liftAttempt int64
}

func newSolver(g game.Game, sink game.Sink, cfg Options) *solver {
	n := g.N()
	k := game.MaxPriority(g) + 1
	if k < 2 {
		k = 2
	}

	s := &solver{
		g:        g,
		sink:     sink,
		opts:     cfg,
		n:        n,
		k:        k,
		pms:      make([]int, n*k),
		strategy: make([]int, n),
		counts:   make([]int, k),
		tmp:      make([]int, k),
		best:     make([]int, k),
		dirty:    bitset.New(n),
		unstable: bitset.New(n),
		todo:     intqueue.New(n),
		work:     intqueue.New(n),
	}
	for v := 0; v < n; v++ {
		s.strategy[v] = -1
		if !g.Disabled(v) {
			s.counts[g.Priority(v)]++
		}
	}

	return s
}

func (s *solver) todoPush(v int) {
	if s.dirty.Test(v) {
		return
	}
	s.dirty.Set(v)
	s.todo.Push(v)
}

func (s *solver) todoPop() int {
	v := s.todo.Pop()
	s.dirty.Clear(v)

	return v
}

// lift raises v's measure for both players at once. A non-negative target
// restricts the maximizing scan to that single successor (the edge that just
// rose) and gates the minimizing scan on target being v's current strategy
// edge. Returns true iff any coordinate changed; counts[d] is decremented
// when a component transitions to Top with matching priority parity.
func (s *solver) lift(v, target int) bool {
	pm := s.pm(v)
	if pm[0] == top && pm[1] == top {
		return false
	}

	s.liftAttempt++

	plMax := s.g.Owner(v)
	plMin := 1 - plMax
	d := s.g.Priority(v)

	ch0, ch1 := false, false

	// Maximizing player: the owner picks the successor that drives its own
	// component highest.
	if pm[plMax] != top {
		if target != -1 {
			s.prog(s.tmp, s.pm(target), d, plMax)
			if s.less(pm, s.tmp, d, plMax) {
				s.pmCopy(pm, s.tmp, plMax)
				if plMax == 1 {
					ch1 = true
				} else {
					ch0 = true
				}
			}
		} else {
			for _, to := range s.g.Outs(v) {
				if s.g.Disabled(to) {
					continue
				}
				s.prog(s.tmp, s.pm(to), d, plMax)
				if s.less(pm, s.tmp, d, plMax) {
					s.pmCopy(pm, s.tmp, plMax)
					if plMax == 1 {
						ch1 = true
					} else {
						ch0 = true
					}
				}
			}
		}
	}

	// Minimizing player: the owner concedes only the least raise across all
	// successors; the chosen edge is the owner's strategy candidate.
	if pm[plMin] != top && (target == -1 || target == s.strategy[v]) {
		bestTo := -1
		for _, to := range s.g.Outs(v) {
			if s.g.Disabled(to) {
				continue
			}
			s.prog(s.tmp, s.pm(to), d, plMin)
			if bestTo == -1 || s.less(s.tmp, s.best, d, plMin) {
				copy(s.best, s.tmp)
				bestTo = to
			}
		}
		// Sometimes only the strategy edge moves while the minimum stays put.
		s.strategy[v] = bestTo
		if bestTo != -1 && s.less(pm, s.best, d, plMin) {
			s.pmCopy(pm, s.best, plMin)
			if plMin == 1 {
				ch1 = true
			} else {
				ch0 = true
			}
		}
	}

	if !ch0 && !ch1 {
		return false
	}

	// Top vertices never sit on a winning cycle of the other player, so the
	// per-priority bound tightens when parity matches.
	if ch0 && pm[0] == top && d%2 == 0 {
		s.counts[d]--
	}
	if ch1 && pm[1] == top && d%2 == 1 {
		s.counts[d]--
	}

	s.liftCount++
	if s.opts.OnLift != nil {
		s.opts.OnLift(LiftEvent{Vertex: v, Priority: d, Owner: s.g.Owner(v), Measure: pm})
	}

	return true
}

// update is the stability sweep for player pl: it marks every vertex whose
// pl-measure is still in motion (Top already, or liftable), propagates the
// mark backward through the edge relation, and then promotes the opposite
// component of every still-stable vertex to Top, scheduling it for
// re-lifting. Stability of the pl-measure certifies that pl cannot win the
// vertex, so the opponent must.
func (s *solver) update(pl int) {
	s.work.Reset()

	for v := 0; v < s.n; v++ {
		if s.g.Disabled(v) {
			continue
		}
		s.unstable.Clear(v)
		if s.pms[v*s.k+pl] == top || s.canlift(v, pl) {
			s.unstable.Set(v)
			s.work.Push(v)
		}
	}

	for !s.work.Empty() {
		v := s.work.Pop()
		for _, u := range s.g.Ins(v) {
			if s.g.Disabled(u) || s.unstable.Test(u) {
				continue
			}
			if s.g.Owner(u) != pl {
				// The minimizer escapes instability while some stable
				// successor keeps its measure from rising.
				bestTo := -1
				d := s.g.Priority(u)
				for _, to := range s.g.Outs(u) {
					if s.g.Disabled(to) || s.unstable.Test(to) {
						continue
					}
					s.prog(s.tmp, s.pm(to), d, pl)
					if bestTo == -1 || s.less(s.tmp, s.best, d, pl) {
						copy(s.best, s.tmp)
						bestTo = to
					}
				}
				if bestTo != -1 && !s.less(s.pm(u), s.best, d, pl) {
					continue
				}
			}
			s.unstable.Set(u)
			s.work.Push(u)
		}
	}

	for v := 0; v < s.n; v++ {
		if s.g.Disabled(v) {
			continue
		}
		if !s.unstable.Test(v) && s.pms[v*s.k+1-pl] != top {
			if s.g.Priority(v)%2 != pl {
				s.counts[s.g.Priority(v)]--
			}
			s.pms[v*s.k+1-pl] = top
			s.todoPush(v)
		}
	}
}

// run drives the lifting to its fixed point.
func (s *solver) run() {
	// Initialization pass, highest vertex first: lift everything once and
	// seed the todo queue from predecessors that reacted.
	for v := s.n - 1; v >= 0; v-- {
		if s.g.Disabled(v) || !s.lift(v, -1) {
			continue
		}
		for _, u := range s.g.Ins(v) {
			if !s.g.Disabled(u) && s.lift(u, v) {
				s.todoPush(u)
			}
		}
	}

	interval := int64(s.opts.UpdateInterval) * int64(s.n)
	var lastUpdate int64

	for {
		for !s.todo.Empty() {
			v := s.todoPop()
			for _, u := range s.g.Ins(v) {
				if !s.g.Disabled(u) && s.lift(u, v) {
					s.todoPush(u)
				}
			}
			if lastUpdate+interval < s.liftCount {
				lastUpdate = s.liftCount
				s.update(game.Even)
				s.update(game.Odd)
			}
		}

		// A drained queue is not yet a fixed point: a plateau may still hide
		// vertices whose stable measure certifies the opponent's win. Sweep
		// once more and loop while the sweep finds work.
		s.update(game.Even)
		s.update(game.Odd)
		if s.todo.Empty() {
			return
		}
	}
}

// finish asserts the dichotomy and emits the decisions.
func (s *solver) finish() error {
	for v := 0; v < s.n; v++ {
		if s.g.Disabled(v) {
			continue
		}
		pm := s.pm(v)
		if (pm[0] == top) == (pm[1] == top) {
			return fmt.Errorf("%w: vertex %d", ErrDichotomy, v)
		}
	}

	for v := 0; v < s.n; v++ {
		if s.g.Disabled(v) {
			continue
		}
		winner := game.Odd
		if s.pm(v)[0] == top {
			winner = game.Even
		}
		strat := game.NoStrategy
		if s.g.Owner(v) == winner {
			strat = s.strategy[v]
		}
		if err := s.sink.Solve(v, winner, strat); err != nil {
			return err
		}
	}

	return nil
}
