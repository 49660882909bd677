// Package intqueue provides a bounded circular buffer of int indices with
// O(1) push and pop at either end. It backs the worklists of the solving
// engines (FIFO) and the free-list of the universal-tree arena (LIFO) without
// allocating during normal operation.
//
// Complexity:
//
//   - Time:  O(1) for Push, Pop, PopBack, Len, Empty
//   - Space: O(capacity), allocated at construction; Resize copies once
//
// The queue never grows on its own: pushing beyond capacity panics, because
// every caller sizes it to a hard upper bound (vertex count or pool size) and
// an overflow is a bug in the caller, not a runtime condition.
package intqueue
