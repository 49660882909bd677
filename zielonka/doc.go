// Package zielonka solves parity games by the McNaughton–Zielonka
// recursion, implemented as an explicit frame stack whose descent is guided
// by a pair of universal ordered trees (one per player) from package utree.
//
// Each frame owns a level of the recursion: a priority bound d, the player
// of d's parity, and a subgame region. A frame runs in three stages:
//
//	stage 0 — attract the priority-d vertices (the targets) for the level
//	          player, descend into the remainder at d-1;
//	stage 1 — receive the child's converged region, attract it for the
//	          opponent, carve it out of the level, re-attract the surviving
//	          targets, and descend again on what is left;
//	stage 2 — the level has converged: fix the targets' strategies, map the
//	          level onto the player's tree, and hand the region to the
//	          parent.
//
// The trees record where each vertex currently lives in the recursion: the
// child-parity tree steps down when a level first descends, steps right for
// every additional round, and steps back up when the level converges.
// Vertices map to the head with sign MID (targets), BOT (rest of the level
// attractor) or TOP (carved out for rehandling up the tree); the arena
// reclaims nodes whose vertices have all moved elsewhere.
//
// The attractor of a target set for player pl is computed by a predecessor
// worklist: a pl-owned vertex joins as soon as one successor is inside, an
// opponent-owned vertex when its outstanding-successor counter (stage 0) or
// an escape scan (later rounds) shows no way out.
//
// Complexity:
//
//   - Time:  every round removes a non-empty region from its level, and
//     each attractor touches every edge at most once, so a level of m
//     vertices costs O(m·(n+e)) in the worst case.
//   - Space: O(n) bitsets per live frame, at most maxPriority+1 frames.
//
// Solve is single-threaded and reentrant; all state is per-call.
package zielonka
