// Package pgsolve is an in-memory toolkit for solving parity games —
// two-player infinite-duration games on labelled digraphs where the winner
// is decided by the parity of the maximum priority seen infinitely often.
//
// 🚀 What is pgsolve?
//
//	A small, focused library that brings together:
//		• Core primitives: a read-only game view, dense arena-backed games, decision sinks
//		• Progress measures: the TSPM lifting engine with a stability sweep
//		• Recursive solving: explicit-stack McNaughton–Zielonka guided by universal trees
//		• Universal trees: a slot-pool arena with navigation heads and garbage collection
//		• Diagnostics: CSV dumps of winners and tree mappings, SVG/HTML tree rendering
//
// ✨ Why choose pgsolve?
//
//   - Deterministic – both engines are single-threaded and allocation-scoped per solve
//   - Cross-checked – the two engines agree on every well-formed input, and the tests enforce it
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – optional hooks (OnLift, OnFrame…) for custom instrumentation
//
// Under the hood, everything is organized per concern:
//
//	bitset/   — fixed-width bit vectors with in-place set algebra
//	intqueue/ — bounded circular index queues (FIFO worklists, LIFO free-lists)
//	game/     — the Game view, Sink consumers, dense games and their Builder
//	tspm/     — small progress measures: lattice arithmetic, lifting, stability sweep
//	utree/    — universal-tree arena, navigation agent, mapping signs, rendering
//	zielonka/ — the staged McNaughton–Zielonka recursion with attractor primitives
//
// Quick ASCII example:
//
//	    0 ──▶ 1
//	    ▲     │
//	    └─────┘
//
//	a two-vertex cycle with priorities [0, 1]: the maximum priority seen
//	infinitely often is 1, so Odd wins everywhere.
//
// Dive into each package's doc.go for complexity notes and usage examples.
//
//	go get github.com/katalvlaran/pgsolve
package pgsolve
