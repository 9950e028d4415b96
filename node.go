package bimap

import (
	"slices"

	"github.com/g-m-twostay/bimap/internal/avl"
	"golang.org/x/exp/constraints"
)

// roles of a slot
const (
	left  = 0
	right = 1
)

// arena stores the pairs. A pair is one slot index i addressed through two structural roles:
// links[left][i] places it in the Left tree and links[right][i] in the Right tree, while lefts[i] and
// rights[i] hold the values. Slot avl.Nil is the zero loopback and slot avl.Sentinel is the shared
// end node; both carry zero values and are never recycled.
type arena[L, R any, S constraints.Unsigned] struct {
	links  [2][]avl.Link[S]
	lefts  []L
	rights []R
	free   S // head of the freed slots, chained through links[left][i].L; avl.Nil if none.
}

func (u *arena[L, R, S]) init(hint S) {
	n := int(hint) + 2
	u.links[left] = make([]avl.Link[S], 2, n)
	u.links[right] = make([]avl.Link[S], 2, n)
	u.lefts = make([]L, 2, n)
	u.rights = make([]R, 2, n)
	u.free = avl.Nil
}

// alloc a detached slot holding (l, r). Freed slots are reused first.
// Panics with ErrCapacity, before modifying anything, if S can't address another slot.
func (u *arena[L, R, S]) alloc(l L, r R) S {
	i := u.free
	if i != avl.Nil {
		u.free = u.links[left][i].L
		u.lefts[i], u.rights[i] = l, r
	} else {
		if uint64(len(u.lefts)) > uint64(^S(0)) {
			panic(ErrCapacity)
		}
		i = S(len(u.lefts))
		u.links[left] = append(u.links[left], avl.Link[S]{})
		u.links[right] = append(u.links[right], avl.Link[S]{})
		u.lefts = append(u.lefts, l)
		u.rights = append(u.rights, r)
	}
	u.links[left][i], u.links[right][i] = avl.Fresh[S](), avl.Fresh[S]()
	return i
}

// release slot i once it's detached from both trees. The values are zeroed so they can be collected.
func (u *arena[L, R, S]) release(i S) {
	u.lefts[i], u.rights[i] = *new(L), *new(R)
	u.links[right][i] = avl.Link[S]{}
	u.links[left][i] = avl.Link[S]{L: u.free}
	u.free = i
}

// reset drops every slot except avl.Nil and avl.Sentinel.
// Time: O(n)
func (u *arena[L, R, S]) reset() {
	clear(u.lefts[2:])
	clear(u.rights[2:])
	u.lefts, u.rights = u.lefts[:2], u.rights[:2]
	u.links[left], u.links[right] = u.links[left][:2], u.links[right][:2]
	u.free = avl.Nil
}

func (u *arena[L, R, S]) clone() arena[L, R, S] {
	return arena[L, R, S]{
		links:  [2][]avl.Link[S]{slices.Clone(u.links[left]), slices.Clone(u.links[right])},
		lefts:  slices.Clone(u.lefts),
		rights: slices.Clone(u.rights),
		free:   u.free,
	}
}

func (u *arena[L, R, S]) swap(o *arena[L, R, S]) {
	u.lefts, o.lefts = o.lefts, u.lefts
	u.rights, o.rights = o.rights, u.rights
	u.free, o.free = o.free, u.free
}

// leftKeys orders slots by their Left values.
type leftKeys[L, R any, S constraints.Unsigned] struct {
	m *BiMap[L, R, S]
}

func (u leftKeys[L, R, S]) CompareNodes(a, b S) int {
	return u.m.cmpL(u.m.lefts[a], u.m.lefts[b])
}

func (u leftKeys[L, R, S]) CompareKey(a S, k *L) int {
	return u.m.cmpL(u.m.lefts[a], *k)
}

// rightKeys orders slots by their Right values.
type rightKeys[L, R any, S constraints.Unsigned] struct {
	m *BiMap[L, R, S]
}

func (u rightKeys[L, R, S]) CompareNodes(a, b S) int {
	return u.m.cmpR(u.m.rights[a], u.m.rights[b])
}

func (u rightKeys[L, R, S]) CompareKey(a S, k *R) int {
	return u.m.cmpR(u.m.rights[a], *k)
}
