// Package utree implements the universal ordered trees that bound the
// McNaughton–Zielonka recursion: a slot-pool arena of tree nodes, one
// navigation head per player, and a mapping from game vertices to tree
// positions tagged with a sign (BOT, MID or TOP).
//
// # Arena
//
// Nodes live in a fixed slab of slots addressed by id; nodes refer to their
// parent and kids by id, never by pointer, so the slab can double in place
// without fixups. Slots are handed out from a LIFO free-list; when it runs
// dry the arena garbage-collects every slot that is not a head, not an
// ancestor of a head, and has no mapped vertices, and only grows when the
// collection reclaims nothing. Slots 0 and 1 hold the Even and Odd roots and
// are never reclaimed.
//
// # Navigation
//
// Each player owns one head. StepDown lazily creates the leftmost kid two
// levels below, StepRight lazily appends the next sibling, StepUp returns to
// the parent and fails at a root. Levels decrease by 2 per generation so a
// tree of parity p only visits levels of parity p.
//
// # Mapping
//
// Map attaches a set of vertices to the current head with a sign, removing
// each vertex from its previous node. A node's members bitset always
// contains the members of all its descendants: additions propagate to every
// ancestor by an explicit parent walk, while removals stay local, so
// ancestors may over-approximate — which is exactly the conservative
// direction the garbage collector needs.
//
// Complexity:
//
//   - Time:  O(1) steps (amortized over lazy creation), O(n/64 · depth) per
//     Map, O(slots · depth) per collection
//   - Space: O(slots · n/64) for the members bitsets
package utree
