package zielonka

import (
	"fmt"

	"github.com/katalvlaran/pgsolve/bitset"
	"github.com/katalvlaran/pgsolve/game"
	"github.com/katalvlaran/pgsolve/intqueue"
	"github.com/katalvlaran/pgsolve/utree"
)

// frame is one suspended level of the recursion. stage records where to
// resume after a child returns.
type frame struct {
	v       int            // largest vertex index not yet scanned at this level
	d       int            // priority bound; the level player is d's parity
	g       *bitset.BitSet // level region, kept inclusive of the level attractor
	am      *bitset.BitSet // current attractor of the surviving targets
	targets []int          // priority-d vertices still in the level
	even    int            // even head at frame entry
	odd     int            // odd head at frame entry
	r       int            // recursion depth
	stage   int
	pushed  bool           // whether this frame ever descended
	ao      *bitset.BitSet // child's converged region, nil between rounds
}

// Solve runs the staged McNaughton–Zielonka recursion over g and emits one
// decision per enabled vertex to sink.
//
// Faults:
//   - game.ErrEmptyGame when no vertex is enabled.
//   - utree.ErrTreeBounds / utree.ErrChildNotFound on impossible tree
//     navigation, ErrWinnerUnset / ErrFrameBounds on broken invariants —
//     all internal faults; the sink receives nothing.
//   - A sink error aborts the emission loop and is returned as-is.
func Solve(g game.Game, sink game.Sink, opts ...Option) error {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	maxPrio := game.MaxPriority(g)
	if maxPrio < 0 {
		return game.ErrEmptyGame
	}

	n := g.N()
	s := &solver{
		g:        g,
		sink:     sink,
		opts:     cfg,
		n:        n,
		agent:    utree.NewAgent(n, maxPrio),
		winning:  make([]int, n),
		strategy: make([]int, n),
		region:   make([]int, n),
		q:        intqueue.New(n),
		queued:   bitset.New(n),
		u:        bitset.New(n),
	}
	for i := 0; i < n; i++ {
		s.winning[i] = -1
		s.strategy[i] = game.NoStrategy
	}

	even := s.agent.Init(game.Even)
	odd := s.agent.Init(game.Odd)

	enabled := bitset.New(n)
	for v := 0; v < n; v++ {
		if !g.Disabled(v) {
			enabled.Set(v)
		}
	}

	// Disabled vertices above the enabled maximum may carry priorities
	// beyond maxPrio; the scan starts below them.
	start := n - 1
	for g.Disabled(start) {
		start--
	}

	s.stack = append(s.stack, &frame{
		v:    start,
		d:    maxPrio,
		g:    enabled,
		even: even,
		odd:  odd,
	})

	if err := s.run(); err != nil {
		return err
	}

	return s.finish()
}

// solver holds the mutable state of a single run. The attractor scratch
// (worklist, queued mask, seed mask, escape counters) is shared by every
// frame; only region bitsets and target lists live per frame.
type solver struct {
	g    game.Game
	sink game.Sink
	opts Options

	n     int
	agent *utree.Agent

	winning  []int
	strategy []int

	region []int // outstanding-escape counters for stage-0 attraction
	q      *intqueue.IntQueue
	queued *bitset.BitSet
	u      *bitset.BitSet // seeds of the current opponent attractor

	stack []*frame
}

// run drives the stack until it empties.
func (s *solver) run() error {
	for len(s.stack) > 0 {
		f := s.stack[len(s.stack)-1]

		if s.opts.OnFrame != nil {
			s.opts.OnFrame(FrameEvent{
				Priority: f.d,
				Player:   f.d & 1,
				Stage:    f.stage,
				Depth:    f.r,
				Size:     f.g.Count(),
				EvenHead: f.even,
				OddHead:  f.odd,
			})
		}

		var err error
		switch f.stage {
		case 0:
			err = s.descend(f)
		case 1:
			err = s.handleChild(f)
		default:
			err = s.ascend(f)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// descend runs stage 0: attract the priority-d targets and push the first
// child on the remainder.
func (s *solver) descend(f *frame) error {
	if f.v < 0 || f.d < 0 {
		return fmt.Errorf("%w: v=%d d=%d", ErrFrameBounds, f.v, f.d)
	}

	pl := f.d & 1
	f.am = bitset.New(s.n)
	f.targets = f.targets[:0]
	for i := range s.region {
		s.region[i] = -1
	}

	v := f.v
	for ; v >= 0; v-- {
		if s.g.Priority(v) != f.d {
			break // below the target block
		}
		if !f.g.Test(v) || f.am.Test(v) {
			continue
		}
		s.attractTarget(f, pl, v)
	}
	f.v = v

	f.stage = 1
	child := f.g.Clone()
	child.Difference(f.am)
	if child.Any() {
		return s.pushChild(f, child)
	}

	// Nothing below the targets: the next entry sees ao == nil and falls
	// through to stage 2.
	return nil
}

// attractTarget seeds target t and floods its attractor for pl within the
// level region, using the outstanding-successor counters for opponent
// vertices. Targets reached by the flood join f.targets as they surface.
func (s *solver) attractTarget(f *frame, pl, t int) {
	s.winning[t] = pl
	s.strategy[t] = game.NoStrategy
	s.q.Push(t)
	s.queued.Set(t)

	for !s.q.Empty() {
		cur := s.q.Pop()
		s.queued.Clear(cur)
		if s.g.Priority(cur) == f.d {
			f.targets = append(f.targets, cur)
		}
		f.am.Set(cur)

		for _, from := range s.g.Ins(cur) {
			if !f.g.Test(from) || f.am.Test(from) || s.queued.Test(from) {
				continue
			}
			if s.g.Owner(from) == pl {
				s.winning[from] = pl
				s.strategy[from] = cur
				s.q.Push(from)
				s.queued.Set(from)

				continue
			}
			// First contact counts the surviving successors; later contacts
			// burn them down. At zero the vertex has nowhere else to go.
			count := s.region[from]
			if count < 0 {
				for _, to := range s.g.Outs(from) {
					if f.g.Test(to) {
						count++
					}
				}
			} else {
				count--
			}
			if count == 0 {
				s.winning[from] = pl
				s.strategy[from] = game.NoStrategy
				s.q.Push(from)
				s.queued.Set(from)
			} else {
				s.region[from] = count
			}
		}
	}
}

// pushChild suspends f and enters the remainder at d-1. The first descent
// moves the child-parity tree (f's opponent tree) down one level; later
// rounds arrive with that head already moved right by handleChild.
func (s *solver) pushChild(f *frame, child *bitset.BitSet) error {
	pl := f.d & 1
	if !f.pushed {
		if _, err := s.agent.StepDown(1 - pl); err != nil {
			return err
		}
		f.pushed = true
	}
	s.stack = append(s.stack, &frame{
		v:    f.v,
		d:    f.d - 1,
		g:    child,
		even: s.agent.Head(game.Even),
		odd:  s.agent.Head(game.Odd),
		r:    f.r + 1,
	})

	return nil
}

// handleChild runs stage 1: absorb the child's converged region into the
// opponent's winnings, shrink the level, re-attract the surviving targets,
// and descend again on what is left. An empty return ends the level.
func (s *solver) handleChild(f *frame) error {
	pl := f.d & 1

	if f.ao == nil || f.ao.None() {
		f.ao = nil
		f.stage = 2

		return nil
	}

	// Extend ao to the full opponent attractor within the level; u keeps
	// the seeds so the newly attracted layer is ao − u.
	s.u.Reset()
	s.queued.Reset()
	for i := s.n - 1; i >= 0; i-- {
		if !f.g.Test(i) || !f.ao.Test(i) {
			continue
		}
		s.u.Set(i)
		s.winning[i] = 1 - pl
		s.q.Push(i)
	}
	for !s.q.Empty() {
		cur := s.q.Pop()
		f.ao.Set(cur)

		for _, from := range s.g.Ins(cur) {
			if !f.g.Test(from) || f.ao.Test(from) || s.queued.Test(from) {
				continue
			}
			canEscape := false
			if s.g.Owner(from) == pl {
				for _, to := range s.g.Outs(from) {
					if !f.g.Test(to) || f.ao.Test(to) {
						continue
					}
					canEscape = true

					break
				}
			}
			if canEscape {
				continue
			}
			s.winning[from] = 1 - pl
			if s.g.Owner(from) == pl {
				s.strategy[from] = game.NoStrategy
			} else {
				s.strategy[from] = cur
			}
			s.q.Push(from)
			s.queued.Set(from)
		}
	}

	// The newly attracted layer climbs the opponent tree for rehandling;
	// the next round gets a fresh sibling.
	layer := f.ao.Clone()
	layer.Difference(s.u)
	s.agent.MapSet(1-pl, utree.SignTop, layer)
	if _, err := s.agent.StepRight(1 - pl); err != nil {
		return err
	}

	f.g.Difference(f.ao)
	s.reattract(f, pl)
	f.ao = nil

	child := f.g.Clone()
	child.Difference(f.am)
	if child.Any() {
		return s.pushChild(f, child)
	}

	// Level exhausted below the targets; next entry falls through to
	// stage 2.
	return nil
}

// reattract rebuilds am from the targets that survived the shrink, with the
// escape-scan attractor rule.
func (s *solver) reattract(f *frame, pl int) {
	f.am.Reset()
	s.queued.Reset()

	survivors := make([]int, 0, len(f.targets))
	for _, t := range f.targets {
		if !f.g.Test(t) {
			continue
		}
		survivors = append(survivors, t)
		if f.am.Test(t) {
			continue
		}
		s.winning[t] = pl
		s.strategy[t] = game.NoStrategy
		s.q.Push(t)
		s.queued.Set(t)

		for !s.q.Empty() {
			cur := s.q.Pop()
			f.am.Set(cur)

			for _, from := range s.g.Ins(cur) {
				if !f.g.Test(from) || f.am.Test(from) || s.queued.Test(from) {
					continue
				}
				if s.g.Owner(from) == pl {
					s.winning[from] = pl
					s.strategy[from] = cur
					s.q.Push(from)
					s.queued.Set(from)

					continue
				}
				canEscape := false
				for _, to := range s.g.Outs(from) {
					if !f.g.Test(to) || f.am.Test(to) {
						continue
					}
					canEscape = true

					break
				}
				if !canEscape {
					s.winning[from] = pl
					s.strategy[from] = game.NoStrategy
					s.q.Push(from)
					s.queued.Set(from)
				}
			}
		}
	}
	f.targets = survivors
}

// ascend runs stage 2: the level converged, so every remaining vertex is
// won by the level player. Targets the player owns pick any surviving
// successor as strategy, the level maps onto the player's tree, and the
// region returns to the parent.
func (s *solver) ascend(f *frame) error {
	pl := f.d & 1

	for _, t := range f.targets {
		if s.g.Owner(t) != pl {
			continue
		}
		for _, to := range s.g.Outs(t) {
			if f.g.Test(to) {
				s.strategy[t] = to

				break
			}
		}
	}

	s.agent.MapList(pl, utree.SignMid, f.targets)
	rest := f.am.Clone()
	for _, t := range f.targets {
		rest.Clear(t)
	}
	s.agent.MapSet(pl, utree.SignBot, rest)

	if f.pushed {
		if _, err := s.agent.StepUp(1 - pl); err != nil {
			return err
		}
	}

	s.stack = s.stack[:len(s.stack)-1]
	if len(s.stack) > 0 {
		s.stack[len(s.stack)-1].ao = f.g
	}

	return nil
}

// finish asserts that every enabled vertex was decided, emits the
// decisions, and writes the optional diagnostics.
func (s *solver) finish() error {
	for v := 0; v < s.n; v++ {
		if s.g.Disabled(v) {
			continue
		}
		if s.winning[v] != game.Even && s.winning[v] != game.Odd {
			return fmt.Errorf("%w: vertex %d", ErrWinnerUnset, v)
		}
	}

	for v := 0; v < s.n; v++ {
		if s.g.Disabled(v) {
			continue
		}
		if err := s.sink.Solve(v, s.winning[v], s.strategy[v]); err != nil {
			return err
		}
	}

	return s.diagnostics()
}

// diagnostics writes the optional CSV and HTML side outputs.
func (s *solver) diagnostics() error {
	if w := s.opts.WinningCSV; w != nil {
		if _, err := fmt.Fprintln(w, "vertex;winner;strategy"); err != nil {
			return fmt.Errorf("zielonka: writing winners header: %w", err)
		}
		for v := 0; v < s.n; v++ {
			if _, err := fmt.Fprintf(w, "%d;%d;%d\n", v, s.winning[v], s.strategy[v]); err != nil {
				return fmt.Errorf("zielonka: writing winners row: %w", err)
			}
		}
	}
	if w := s.opts.MappingsCSV; w != nil {
		if err := s.agent.WriteMappings(w); err != nil {
			return err
		}
	}
	if s.opts.EvenHTML != nil || s.opts.OddHTML != nil {
		s.agent.Collect()
	}
	if w := s.opts.EvenHTML; w != nil {
		if err := s.agent.WriteHTML(w, game.Even); err != nil {
			return err
		}
	}
	if w := s.opts.OddHTML; w != nil {
		if err := s.agent.WriteHTML(w, game.Odd); err != nil {
			return err
		}
	}

	return nil
}
