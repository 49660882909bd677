package zielonka

import (
	"errors"
	"io"
)

// Sentinel errors returned by Solve.
var (
	// ErrWinnerUnset indicates an enabled vertex left without a winner
	// after the stack drained — an internal invariant violation.
	ErrWinnerUnset = errors.New("zielonka: vertex left undecided after convergence")

	// ErrFrameBounds indicates a frame with a negative cursor or priority
	// bound — an internal invariant violation.
	ErrFrameBounds = errors.New("zielonka: frame cursor out of bounds")
)

// FrameEvent describes one stage entry, for the OnFrame hook.
type FrameEvent struct {
	Priority int // the frame's priority bound d
	Player   int // d's parity
	Stage    int // 0 descend, 1 child handled, 2 ascend
	Depth    int // recursion depth
	Size     int // vertices currently in the frame's region
	EvenHead int // even tree head when the frame was entered
	OddHead  int // odd tree head when the frame was entered
}

// Options configures the engine.
//
// OnFrame     – optional hook invoked at every stage entry.
// WinningCSV  – optional writer receiving the vertex;winner;strategy dump
// after a successful solve.
// MappingsCSV – optional writer receiving the per-vertex tree signatures.
// EvenHTML, OddHTML – optional writers receiving the SVG/HTML rendering of
// the respective tree.
//
// All diagnostic writers are best-effort side outputs with no stable
// format; they are written only when the solve succeeded.
type Options struct {
	OnFrame     func(FrameEvent)
	WinningCSV  io.Writer
	MappingsCSV io.Writer
	EvenHTML    io.Writer
	OddHTML     io.Writer
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithOnFrame installs a hook observing every stage entry.
func WithOnFrame(fn func(FrameEvent)) Option {
	return func(o *Options) { o.OnFrame = fn }
}

// WithWinningCSV streams the final winner/strategy table to w.
func WithWinningCSV(w io.Writer) Option {
	return func(o *Options) { o.WinningCSV = w }
}

// WithMappingsCSV streams the final vertex-to-tree mapping table to w.
func WithMappingsCSV(w io.Writer) Option {
	return func(o *Options) { o.MappingsCSV = w }
}

// WithTreeHTML renders the final trees to the given writers; either may be
// nil to skip that player.
func WithTreeHTML(even, odd io.Writer) Option {
	return func(o *Options) {
		o.EvenHTML = even
		o.OddHTML = odd
	}
}

// DefaultOptions returns the production defaults: no hook, no diagnostics.
func DefaultOptions() Options { return Options{} }
