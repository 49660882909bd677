package utree

import (
	"fmt"

	"github.com/katalvlaran/pgsolve/bitset"
	"github.com/katalvlaran/pgsolve/intqueue"
)

// node is one arena slot. repr == -1 marks a free slot; otherwise repr is
// the node's sibling index under its parent.
type node struct {
	level   int
	parity  int
	parent  int // slot id, -1 for a root
	repr    int
	kids    []int // ordered kid slot ids
	members *bitset.BitSet
}

// Agent owns the arena and the two navigation heads, and maintains the
// vertex-to-node mapping for both players.
type Agent struct {
	size     int // game vertex count
	d        int // maximum priority, fixes the root levels
	poolSize int

	buffer []node
	pool   *intqueue.IntQueue // free slot ids, LIFO
	trees  [2]int             // current head per player

	mapSlot []int  // mapSlot[2v+pl] = slot the vertex is attached to
	mapSign []Sign // mapSign[2v+pl] = attachment sign

	scratch     *bitset.BitSet
	collections int
}

// NewAgent returns an arena for a game of size vertices and maximum
// priority d, provisioned with 4·max(size, d) slots. Call Init for both
// players before navigating.
func NewAgent(size, d int) *Agent {
	poolSize := 4 * size
	if d > size {
		poolSize = 4 * d
	}
	if poolSize < 4 {
		poolSize = 4
	}

	a := &Agent{
		size:     size,
		d:        d,
		poolSize: poolSize,
		buffer:   make([]node, poolSize),
		pool:     intqueue.New(poolSize),
		mapSlot:  make([]int, 2*size),
		mapSign:  make([]Sign, 2*size),
		scratch:  bitset.New(size),
	}
	a.trees[0], a.trees[1] = -1, -1
	for i := range a.buffer {
		a.buffer[i].repr = -1
		a.buffer[i].parent = -1
	}
	// LIFO pool: pushed descending so the first allocations take slots 0
	// and 1, the (informal) root positions.
	for i := poolSize - 1; i >= 0; i-- {
		a.pool.Push(i)
	}

	return a
}

// Collections returns how many garbage collections have run.
func (a *Agent) Collections() int { return a.collections }

// Head returns the current head slot of player pl.
func (a *Agent) Head(pl int) int { return a.trees[pl] }

// Level returns the level of slot id.
func (a *Agent) Level(id int) int { return a.buffer[id].level }

// MemberCount returns the number of vertices mapped at or below slot id.
func (a *Agent) MemberCount(id int) int { return a.buffer[id].members.Count() }

// Free reports whether slot id is currently unused.
func (a *Agent) Free(id int) bool { return a.buffer[id].repr == -1 }

// Slots returns the current arena capacity.
func (a *Agent) Slots() int { return a.poolSize }

// Mapping returns the slot and sign vertex v is attached to in player pl's
// tree.
func (a *Agent) Mapping(pl, v int) (slot int, sign Sign) {
	return a.mapSlot[2*v+pl], a.mapSign[2*v+pl]
}

// Init builds the root of player pl's tree at level d (or d+1 when d's
// parity differs from pl), maps every vertex to it with SignMid, and points
// the head at it.
func (a *Agent) Init(pl int) int {
	id := a.alloc()

	level := a.d
	if a.d%2 != pl {
		level = a.d + 1
	}
	n := &a.buffer[id]
	n.level = level
	n.parity = pl
	n.parent = -1
	n.repr = 0
	n.kids = n.kids[:0]
	n.members.SetAll()

	for v := 0; v < a.size; v++ {
		a.mapSlot[2*v+pl] = id
		a.mapSign[2*v+pl] = SignMid
	}
	a.trees[pl] = id

	return id
}

// StepUp moves player pl's head to its parent. Stepping up from a root is a
// logic fault.
func (a *Agent) StepUp(pl int) (int, error) {
	parent := a.buffer[a.trees[pl]].parent
	if parent < 0 {
		return -1, fmt.Errorf("%w: step up from the %s root", ErrTreeBounds, parityName(pl))
	}
	a.trees[pl] = parent

	return parent, nil
}

// StepDown moves player pl's head to its leftmost kid, creating it two
// levels down on first visit. Descending below level 0 is a bounds fault.
func (a *Agent) StepDown(pl int) (int, error) {
	head := a.trees[pl]
	if a.buffer[head].level < 2 {
		return -1, fmt.Errorf("%w: step down from level %d", ErrTreeBounds, a.buffer[head].level)
	}
	if len(a.buffer[head].kids) == 0 {
		kid := a.newKid(head, 0)
		a.buffer[head].kids = append(a.buffer[head].kids, kid)
	}
	a.trees[pl] = a.buffer[head].kids[0]

	return a.trees[pl], nil
}

// StepRight moves player pl's head to its next sibling, creating it with
// the following repr on first visit. A root has no siblings.
func (a *Agent) StepRight(pl int) (int, error) {
	head := a.trees[pl]
	parent := a.buffer[head].parent
	if parent < 0 {
		return -1, fmt.Errorf("%w: step right from the %s root", ErrTreeBounds, parityName(pl))
	}

	kids := a.buffer[parent].kids
	i := 0
	for i < len(kids) && kids[i] != head {
		i++
	}
	if i == len(kids) {
		return -1, fmt.Errorf("%w: slot %d under slot %d", ErrChildNotFound, head, parent)
	}

	if i == len(kids)-1 {
		sibling := a.newKid(parent, a.buffer[kids[i]].repr+1)
		a.buffer[parent].kids = append(a.buffer[parent].kids, sibling)
	}
	a.trees[pl] = a.buffer[parent].kids[i+1]

	return a.trees[pl], nil
}

// MapSet attaches every vertex of vs to player pl's head with the given
// sign. Each vertex leaves its previous node (a local clear — ancestors keep
// their over-approximation) and the whole set is merged into the head and
// every ancestor.
func (a *Agent) MapSet(pl int, sign Sign, vs *bitset.BitSet) {
	head := a.trees[pl]
	vs.ForEach(func(v int) bool {
		a.buffer[a.mapSlot[2*v+pl]].members.Clear(v)
		a.mapSlot[2*v+pl] = head
		a.mapSign[2*v+pl] = sign

		return true
	})
	for id := head; id != -1; id = a.buffer[id].parent {
		a.buffer[id].members.Union(vs)
	}
}

// MapList is MapSet for an explicit vertex list.
func (a *Agent) MapList(pl int, sign Sign, vs []int) {
	a.scratch.Reset()
	for _, v := range vs {
		a.scratch.Set(v)
	}
	a.MapSet(pl, sign, a.scratch)
}

// Collect sweeps the arena from the highest slot down and releases every
// slot that is free to go: not a root, not a head, not an ancestor of a
// head, and with no mapped vertices. Released ids return to the free-list.
func (a *Agent) Collect() {
	a.collections++
	for i := a.poolSize - 1; i >= 2; i-- {
		if a.buffer[i].repr == -1 {
			continue
		}
		if a.trees[0] == i || a.trees[1] == i {
			continue
		}
		if a.isAncestorOf(i, a.trees[0]) || a.isAncestorOf(i, a.trees[1]) {
			continue
		}
		if a.buffer[i].members.Count() > 0 {
			continue
		}
		a.release(i)
		a.pool.Push(i)
	}
}

// alloc hands out a free slot id, collecting when the free-list is dry and
// doubling the arena when the collection reclaimed nothing. Slot ids stay
// stable across growth.
func (a *Agent) alloc() int {
	if a.pool.Empty() {
		a.Collect()
	}
	if a.pool.Empty() {
		grown := make([]node, 2*a.poolSize)
		copy(grown, a.buffer)
		for i := a.poolSize; i < 2*a.poolSize; i++ {
			grown[i].repr = -1
			grown[i].parent = -1
		}
		a.buffer = grown
		a.pool.Resize(2 * a.poolSize)
		for i := a.poolSize; i < 2*a.poolSize; i++ {
			a.pool.Push(i)
		}
		a.poolSize *= 2
	}

	id := a.pool.PopBack()
	if a.buffer[id].members == nil {
		a.buffer[id].members = bitset.New(a.size)
	} else {
		a.buffer[id].members.Reset()
	}

	return id
}

// newKid allocates a node two levels under parent with the given repr.
func (a *Agent) newKid(parent, repr int) int {
	id := a.alloc()
	p := &a.buffer[parent]
	n := &a.buffer[id]
	n.level = p.level - 2
	n.parity = p.parity
	n.parent = parent
	n.repr = repr
	n.kids = n.kids[:0]

	return id
}

// release detaches slot id from its parent's kid list and marks it free.
// Kids of the released slot are left to their own collection turn.
func (a *Agent) release(id int) {
	n := &a.buffer[id]
	if n.parent >= 0 && a.buffer[n.parent].repr != -1 {
		kids := a.buffer[n.parent].kids
		for i, kid := range kids {
			if kid == id {
				a.buffer[n.parent].kids = append(kids[:i], kids[i+1:]...)

				break
			}
		}
	}
	n.kids = n.kids[:0]
	n.repr = -1
	n.members.Reset()
}

// isAncestorOf reports whether anc is x or one of x's ancestors.
func (a *Agent) isAncestorOf(anc, x int) bool {
	for x != -1 {
		if x == anc {
			return true
		}
		x = a.buffer[x].parent
	}

	return false
}

// PathString renders the slot's position as the root tag followed by the
// sibling indices along the path, e.g. "e,0,1".
func (a *Agent) PathString(id int) string {
	n := &a.buffer[id]
	if n.parent == -1 {
		return parityName(n.parity)
	}

	return fmt.Sprintf("%s,%d", a.PathString(n.parent), n.repr)
}

func parityName(pl int) string {
	if pl == 1 {
		return "o"
	}

	return "e"
}
