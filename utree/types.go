package utree

import "errors"

// Sign tags a vertex-to-node mapping, distinguishing attractor layers that
// share a tree position.
type Sign int

const (
	// SignMid marks the target set of the level.
	SignMid Sign = 0
	// SignBot marks the rest of the level attractor.
	SignBot Sign = 1
	// SignTop marks vertices handed back up the tree for rehandling.
	SignTop Sign = 2
)

// String returns a compact tag for CSV dumps.
func (s Sign) String() string {
	switch s {
	case SignBot:
		return "bot"
	case SignTop:
		return "top"
	default:
		return "mid"
	}
}

// Sentinel errors reported by the navigation agent. Both are logic faults:
// they indicate a navigation request the tree cannot honor, never a
// recoverable condition.
var (
	// ErrTreeBounds indicates navigation beyond the tree: stepping up from
	// a root, sideways from a root, or below the lowest level.
	ErrTreeBounds = errors.New("utree: tree bounds reached")

	// ErrChildNotFound indicates a head whose parent no longer lists it —
	// an arena corruption.
	ErrChildNotFound = errors.New("utree: child not found under its parent")
)
