// Package game defines the read-only parity-game view consumed by the
// solving engines, the Sink interface that receives their per-vertex
// decisions, a dense arena-backed implementation, and a validating Builder.
//
// A parity game is a finite directed graph where every vertex carries a
// non-negative integer priority and is owned by one of two players, Even (0)
// or Odd (1). The engines partition the vertices into the winning region of
// each player and report a positional strategy on the winner's region.
//
// # Game view
//
// The Game interface exposes exactly what the engines need:
//
//	N()          — vertex count; ids are dense in [0, N)
//	Priority(v)  — non-negative, non-decreasing in v
//	Owner(v)     — Even or Odd
//	Ins(v)       — ordered predecessor list
//	Outs(v)      — ordered successor list
//	Disabled(v)  — vertices masked out of the current game
//
// Priorities must be non-decreasing in the vertex index; the Builder enforces
// this, so Priority(N()-1) is always the maximum priority.
//
// # Sink
//
// Engines emit one decision per enabled vertex: the winner and either a
// strategy successor (for vertices the winner owns) or NoStrategy. Decisions
// arrive only after an engine has fully converged — a failed run emits
// nothing.
//
// # Errors
//
//	ErrBadOwner      – owner outside {Even, Odd}
//	ErrBadPriority   – negative priority
//	ErrPriorityOrder – priorities not non-decreasing in vertex index
//	ErrVertexRange   – edge endpoint outside [0, N)
//	ErrNoSuccessor   – a vertex with no outgoing edge (ill-formed for
//	                   infinite-duration play)
//	ErrEmptyGame     – a solve was requested with no enabled vertices
package game
