// Package tspm solves parity games by two-sided small progress measures:
// every vertex carries one lexicographic measure per player, and measures
// are lifted monotonically until a fixed point splits the vertices into the
// two winning regions.
//
// The measure of vertex v is a vector of k = maxPriority+1 coordinates;
// coordinates of parity pl form player pl's component. A component raised to
// Top (written -1 in storage) means the corresponding player wins v: the
// component counts visits to priorities of that player's parity, and its
// divergence certifies that the play revisits them forever. At the fixed
// point exactly one component per vertex is Top — the engine asserts this
// dichotomy and fails with ErrDichotomy otherwise.
//
// The work loop is predecessor-driven: whenever a vertex's measure rises,
// its predecessors are re-lifted against it and queued on change. A periodic
// stability sweep detects vertices whose measure for one player can never
// rise again and promotes the opposite component to Top, which breaks the
// plateaus a pure lifting loop cannot leave.
//
// Complexity:
//
//   - Time:  each coordinate of each measure rises at most counts[i]+1
//     times, so the number of successful lifts is bounded by the lattice
//     volume; every lift scans one adjacency list.
//   - Space: O(n·k) for the measures plus O(n + k) scratch, all allocated
//     per Solve call and released on return.
//
// Solve is single-threaded and reentrant: concurrent calls share nothing.
package tspm
