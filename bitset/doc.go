// Package bitset provides a fixed-width bit vector over vertex indices,
// supporting in-place set algebra, population count, and deterministic
// ascending iteration over set bits.
//
// A BitSet is created with a fixed length and never resizes; every operation
// stays within the provisioned words, so the hot paths allocate nothing.
// Out-of-range indices are ignored by Set/Clear and report false from Test,
// mirroring the behavior of a set that simply cannot contain them.
//
// Complexity:
//
//   - Time:  O(1) for Set/Clear/Test, O(n/64) for algebra, Count and iteration
//   - Space: O(n/64) words, allocated once at construction
//
// BitSet is not safe for concurrent writers; guard it externally if shared.
package bitset
