// Package bimap provides BiMap, an ordered bidirectional map keeping a bijection between Left and Right
// values. Each pair is stored once, in one arena slot that is simultaneously a node of an AVL tree
// ordered by Left and a node of an AVL tree ordered by Right, so lookups from either side are O(log n)
// and switching sides with Flip is O(1).
//
// A BiMap isn't safe for concurrent use.
package bimap

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/g-m-twostay/bimap/internal/avl"
	"golang.org/x/exp/constraints"
)

// BiMap is a bijection between L and R ordered by cmpL and cmpR.
// S is the type of the slot indexes; a BiMap holds at most max(S)-1 pairs.
// BiMap must be created by New or NewOrdered and mustn't be copied by value; use Clone.
type BiMap[L, R any, S constraints.Unsigned] struct {
	arena[L, R, S]
	lv   avl.View[L, S]
	rv   avl.View[R, S]
	cmpL func(L, L) int
	cmpR func(R, R) int
}

// New empty BiMap with room for hint pairs. cmpL and cmpR are three-way comparisons defining strict weak orders.
func New[L, R any, S constraints.Unsigned](hint S, cmpL func(L, L) int, cmpR func(R, R) int) *BiMap[L, R, S] {
	u := &BiMap[L, R, S]{cmpL: cmpL, cmpR: cmpR}
	u.arena.init(hint)
	u.bind(0)
	return u
}

// NewOrdered is New with the natural orderings of L and R.
func NewOrdered[L, R cmp.Ordered, S constraints.Unsigned](hint S) *BiMap[L, R, S] {
	return New[L, R, S](hint, cmp.Compare[L], cmp.Compare[R])
}

func (u *BiMap[L, R, S]) bind(size uint) {
	u.lv.Init(&u.links[left], leftKeys[L, R, S]{u}, size)
	u.rv.Init(&u.links[right], rightKeys[L, R, S]{u}, size)
}

// Size is the number of pairs.
func (u *BiMap[L, R, S]) Size() uint {
	return u.lv.Size()
}

func (u *BiMap[L, R, S]) Empty() bool {
	return u.lv.Empty()
}

// Insert the pair (l, r) and return the iterator to l. If l or r is already present nothing is
// inserted and EndLeft is returned.
// Time: O(log n)
func (u *BiMap[L, R, S]) Insert(l L, r R) LeftIter[L, R, S] {
	if u.lv.Find(&l) != avl.Sentinel || u.rv.Find(&r) != avl.Sentinel {
		return u.EndLeft()
	}
	i := u.alloc(l, r)
	u.rv.Insert(i)
	return LeftIter[L, R, S]{u, u.lv.Insert(i)}
}

// detach slot i found through one side from the other side and free it.
func (u *BiMap[L, R, S]) drop(i S, from int) {
	if from == left {
		u.rv.Erase(&u.rights[i])
	} else {
		u.lv.Erase(&u.lefts[i])
	}
	u.release(i)
}

// EraseLeft removes the pair whose Left value is l. Returns whether a pair was removed.
// Time: O(log n)
func (u *BiMap[L, R, S]) EraseLeft(l L) bool {
	i := u.lv.Erase(&l)
	if i == avl.Nil {
		return false
	}
	u.drop(i, left)
	return true
}

// EraseRight removes the pair whose Right value is r. Returns whether a pair was removed.
// Time: O(log n)
func (u *BiMap[L, R, S]) EraseRight(r R) bool {
	i := u.rv.Erase(&r)
	if i == avl.Nil {
		return false
	}
	u.drop(i, right)
	return true
}

// EraseLeftAt removes the pair at it and returns the iterator to the next Left value.
// it mustn't be the end.
func (u *BiMap[L, R, S]) EraseLeftAt(it LeftIter[L, R, S]) LeftIter[L, R, S] {
	l := it.Value()
	next := u.UpperBoundLeft(l)
	u.EraseLeft(l)
	return next
}

// EraseRightAt removes the pair at it and returns the iterator to the next Right value.
// it mustn't be the end.
func (u *BiMap[L, R, S]) EraseRightAt(it RightIter[L, R, S]) RightIter[L, R, S] {
	r := it.Value()
	next := u.UpperBoundRight(r)
	u.EraseRight(r)
	return next
}

// EraseLeftRange removes the pairs in [first, last) and returns last.
func (u *BiMap[L, R, S]) EraseLeftRange(first, last LeftIter[L, R, S]) LeftIter[L, R, S] {
	for first != last {
		first = u.EraseLeftAt(first)
	}
	return last
}

// EraseRightRange removes the pairs in [first, last) and returns last.
func (u *BiMap[L, R, S]) EraseRightRange(first, last RightIter[L, R, S]) RightIter[L, R, S] {
	for first != last {
		first = u.EraseRightAt(first)
	}
	return last
}

// FindLeft returns the iterator to l, or EndLeft.
func (u *BiMap[L, R, S]) FindLeft(l L) LeftIter[L, R, S] {
	return LeftIter[L, R, S]{u, u.lv.Find(&l)}
}

// FindRight returns the iterator to r, or EndRight.
func (u *BiMap[L, R, S]) FindRight(r R) RightIter[L, R, S] {
	return RightIter[L, R, S]{u, u.rv.Find(&r)}
}

// AtLeft returns the Right value paired with l. The error wraps ErrNotFound if l is absent.
func (u *BiMap[L, R, S]) AtLeft(l L) (R, error) {
	if i := u.lv.Find(&l); i != avl.Sentinel {
		return u.rights[i], nil
	}
	return *new(R), fmt.Errorf("%w: left %v", ErrNotFound, l)
}

// AtRight returns the Left value paired with r. The error wraps ErrNotFound if r is absent.
func (u *BiMap[L, R, S]) AtRight(r R) (L, error) {
	if i := u.rv.Find(&r); i != avl.Sentinel {
		return u.lefts[i], nil
	}
	return *new(L), fmt.Errorf("%w: right %v", ErrNotFound, r)
}

// AtLeftOrDefault returns the Right value paired with l. If l is absent, the pair holding the zero R
// is removed if there's one, then (l, zero R) is inserted and zero R is returned.
func (u *BiMap[L, R, S]) AtLeftOrDefault(l L) R {
	if i := u.lv.Find(&l); i != avl.Sentinel {
		return u.rights[i]
	}
	var d R
	if it := u.FindRight(d); !it.IsEnd() {
		u.EraseRightAt(it)
	}
	return u.Insert(l, d).Flip().Value()
}

// AtRightOrDefault is AtLeftOrDefault from the Right side.
func (u *BiMap[L, R, S]) AtRightOrDefault(r R) L {
	if i := u.rv.Find(&r); i != avl.Sentinel {
		return u.lefts[i]
	}
	var d L
	if it := u.FindLeft(d); !it.IsEnd() {
		u.EraseLeftAt(it)
	}
	return u.Insert(d, r).Value()
}

// LowerBoundLeft is the first Left value not less than l.
func (u *BiMap[L, R, S]) LowerBoundLeft(l L) LeftIter[L, R, S] {
	return LeftIter[L, R, S]{u, u.lv.LowerBound(&l)}
}

// UpperBoundLeft is the first Left value greater than l.
func (u *BiMap[L, R, S]) UpperBoundLeft(l L) LeftIter[L, R, S] {
	return LeftIter[L, R, S]{u, u.lv.UpperBound(&l)}
}

// LowerBoundRight is the first Right value not less than r.
func (u *BiMap[L, R, S]) LowerBoundRight(r R) RightIter[L, R, S] {
	return RightIter[L, R, S]{u, u.rv.LowerBound(&r)}
}

// UpperBoundRight is the first Right value greater than r.
func (u *BiMap[L, R, S]) UpperBoundRight(r R) RightIter[L, R, S] {
	return RightIter[L, R, S]{u, u.rv.UpperBound(&r)}
}

func (u *BiMap[L, R, S]) BeginLeft() LeftIter[L, R, S] {
	return LeftIter[L, R, S]{u, u.lv.Begin()}
}

func (u *BiMap[L, R, S]) EndLeft() LeftIter[L, R, S] {
	return LeftIter[L, R, S]{u, u.lv.End()}
}

func (u *BiMap[L, R, S]) BeginRight() RightIter[L, R, S] {
	return RightIter[L, R, S]{u, u.rv.Begin()}
}

func (u *BiMap[L, R, S]) EndRight() RightIter[L, R, S] {
	return RightIter[L, R, S]{u, u.rv.End()}
}

// All pairs in Left order. The BiMap mustn't be modified during the iteration.
func (u *BiMap[L, R, S]) All() iter.Seq2[L, R] {
	return func(yield func(L, R) bool) {
		for i := u.lv.Begin(); i != avl.Sentinel; i = avl.Next(u.links[left], i) {
			if !yield(u.lefts[i], u.rights[i]) {
				return
			}
		}
	}
}

// AllRight yields every pair as (Right, Left) in Right order.
func (u *BiMap[L, R, S]) AllRight() iter.Seq2[R, L] {
	return func(yield func(R, L) bool) {
		for i := u.rv.Begin(); i != avl.Sentinel; i = avl.Next(u.links[right], i) {
			if !yield(u.rights[i], u.lefts[i]) {
				return
			}
		}
	}
}

// Clear removes every pair. Capacity is kept.
// Time: O(n)
func (u *BiMap[L, R, S]) Clear() {
	u.reset()
	u.lv.Reset()
	u.rv.Reset()
}

// Clone returns a deep copy that shares nothing with u. Values themselves are copied by assignment.
// Time: O(n)
func (u *BiMap[L, R, S]) Clone() *BiMap[L, R, S] {
	c := &BiMap[L, R, S]{arena: u.arena.clone(), cmpL: u.cmpL, cmpR: u.cmpR}
	c.bind(u.Size())
	return c
}

// Assign replaces the contents of u with a deep copy of o.
func (u *BiMap[L, R, S]) Assign(o *BiMap[L, R, S]) {
	if u == o {
		return
	}
	c := o.Clone()
	u.Clear()
	u.Swap(c)
}

// Swap the contents, comparators included, of u and o. Iterators obtained before the swap are invalidated.
// Time: O(log n)
func (u *BiMap[L, R, S]) Swap(o *BiMap[L, R, S]) {
	u.arena.swap(&o.arena)
	u.lv.Swap(&o.lv)
	u.rv.Swap(&o.rv)
	u.cmpL, o.cmpL = o.cmpL, u.cmpL
	u.cmpR, o.cmpR = o.cmpR, u.cmpR
}

// Move the contents of u into a new BiMap, leaving u empty.
func (u *BiMap[L, R, S]) Move() *BiMap[L, R, S] {
	m := New[L, R, S](0, u.cmpL, u.cmpR)
	m.Swap(u)
	return m
}

func equivalent[T any](c func(T, T) int, a, b T) bool {
	return c(a, b) == 0 && c(b, a) == 0
}

// Equal reports whether u and o have the same size and pairwise equivalent pairs in Left order,
// judged by u's comparators on both sides.
// Time: O(n)
func (u *BiMap[L, R, S]) Equal(o *BiMap[L, R, S]) bool {
	if u.Size() != o.Size() {
		return false
	}
	for a, b := u.BeginLeft(), o.BeginLeft(); !a.IsEnd(); a, b = a.Next(), b.Next() {
		if !equivalent(u.cmpL, a.Value(), b.Value()) || !equivalent(u.cmpR, a.Flip().Value(), b.Flip().Value()) {
			return false
		}
	}
	return true
}

// HeightLeft is the height of the Left tree.
func (u *BiMap[L, R, S]) HeightLeft() uint8 {
	return u.lv.Height()
}

// HeightRight is the height of the Right tree.
func (u *BiMap[L, R, S]) HeightRight() uint8 {
	return u.rv.Height()
}
