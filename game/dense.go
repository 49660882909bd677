package game

import (
	"fmt"

	"github.com/katalvlaran/pgsolve/bitset"
)

// Dense is an arena-backed Game: priorities, owners and adjacency are stored
// in flat slices indexed by vertex id. It is the canonical implementation
// produced by the Builder; the disabled mask is the only mutable state.
type Dense struct {
	priority []int
	owner    []int
	ins      [][]int
	outs     [][]int
	disabled *bitset.BitSet
}

// N returns the vertex count.
func (g *Dense) N() int { return len(g.priority) }

// Priority returns the priority of v.
func (g *Dense) Priority(v int) int { return g.priority[v] }

// Owner returns the owner of v.
func (g *Dense) Owner(v int) int { return g.owner[v] }

// Ins returns the ordered predecessors of v. The slice is shared; callers
// must not mutate it.
func (g *Dense) Ins(v int) []int { return g.ins[v] }

// Outs returns the ordered successors of v. The slice is shared; callers
// must not mutate it.
func (g *Dense) Outs(v int) []int { return g.outs[v] }

// Disabled reports whether v is masked out.
func (g *Dense) Disabled(v int) bool { return g.disabled.Test(v) }

// Disable masks v out of the game.
func (g *Dense) Disable(v int) { g.disabled.Set(v) }

// Enable returns v to the game.
func (g *Dense) Enable(v int) { g.disabled.Clear(v) }

// Builder accumulates vertices and edges and validates them into a Dense
// game. Vertices must be added in non-decreasing priority order; every
// vertex must have at least one outgoing edge by Build time.
type Builder struct {
	priority []int
	owner    []int
	edges    [][2]int
	err      error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// AddVertex appends a vertex with the given priority and owner and returns
// its id. The first violation of the vertex invariants is latched and
// reported by Build.
func (b *Builder) AddVertex(priority, owner int) int {
	id := len(b.priority)
	switch {
	case b.err != nil:
		// keep the first error
	case priority < 0:
		b.err = fmt.Errorf("%w: vertex %d has priority %d", ErrBadPriority, id, priority)
	case owner != Even && owner != Odd:
		b.err = fmt.Errorf("%w: vertex %d has owner %d", ErrBadOwner, id, owner)
	case id > 0 && priority < b.priority[id-1]:
		b.err = fmt.Errorf("%w: vertex %d has priority %d after %d", ErrPriorityOrder, id, priority, b.priority[id-1])
	}
	b.priority = append(b.priority, priority)
	b.owner = append(b.owner, owner)

	return id
}

// AddEdge records the directed edge from → to. Endpoint validation happens
// at Build time, once the final vertex count is known.
func (b *Builder) AddEdge(from, to int) *Builder {
	b.edges = append(b.edges, [2]int{from, to})

	return b
}

// Build validates the accumulated description and returns the Dense game.
//
// Validation order:
//  1. Any latched vertex error (bad priority, bad owner, ordering).
//  2. Every edge endpoint within [0, N).
//  3. Every vertex has at least one outgoing edge.
func (b *Builder) Build() (*Dense, error) {
	if b.err != nil {
		return nil, b.err
	}

	n := len(b.priority)
	g := &Dense{
		priority: append([]int(nil), b.priority...),
		owner:    append([]int(nil), b.owner...),
		ins:      make([][]int, n),
		outs:     make([][]int, n),
		disabled: bitset.New(n),
	}

	for _, e := range b.edges {
		from, to := e[0], e[1]
		if from < 0 || from >= n || to < 0 || to >= n {
			return nil, fmt.Errorf("%w: edge %d→%d in a game of %d vertices", ErrVertexRange, from, to, n)
		}
		g.outs[from] = append(g.outs[from], to)
		g.ins[to] = append(g.ins[to], from)
	}

	for v := 0; v < n; v++ {
		if len(g.outs[v]) == 0 {
			return nil, fmt.Errorf("%w: vertex %d", ErrNoSuccessor, v)
		}
	}

	return g, nil
}
