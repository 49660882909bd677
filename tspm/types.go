package tspm

import "errors"

// Sentinel errors returned by Solve.
var (
	// ErrDichotomy indicates that at the fixed point some vertex had both
	// or neither measure component at Top. This is an internal invariant
	// violation, never a property of the input.
	ErrDichotomy = errors.New("tspm: measure dichotomy violated at fixed point")
)

// DefaultUpdateInterval is the stability-sweep period, in successful lifts
// per vertex: the sweep runs every DefaultUpdateInterval·n lifts.
const DefaultUpdateInterval = 10

// LiftEvent describes one successful lift, for the OnLift hook.
//
// Measure aliases the engine's internal storage and is only valid for the
// duration of the hook call; copy it to retain it.
type LiftEvent struct {
	Vertex   int
	Priority int
	Owner    int
	Measure  []int
}

// Options configures the engine.
//
// UpdateInterval – stability-sweep period multiplier (sweep every
// UpdateInterval·n successful lifts). Must be positive.
// OnLift         – optional hook invoked after every successful lift.
type Options struct {
	UpdateInterval int
	OnLift         func(LiftEvent)
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithUpdateInterval overrides the stability-sweep period multiplier.
// Non-positive values panic.
func WithUpdateInterval(m int) Option {
	return func(o *Options) {
		if m <= 0 {
			panic("tspm: UpdateInterval must be positive")
		}
		o.UpdateInterval = m
	}
}

// WithOnLift installs a hook observing every successful lift.
func WithOnLift(fn func(LiftEvent)) Option {
	return func(o *Options) {
		o.OnLift = fn
	}
}

// DefaultOptions returns the production defaults: sweep every 10·n lifts,
// no hook.
func DefaultOptions() Options {
	return Options{UpdateInterval: DefaultUpdateInterval}
}
