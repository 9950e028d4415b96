package bimap

import (
	"github.com/g-m-twostay/bimap/internal/avl"
	"golang.org/x/exp/constraints"
)

// LeftIter is a position in the Left order. Iterators are compared with ==, which compares the
// BiMap and the pair they point to. An iterator stays valid until its pair is erased.
type LeftIter[L, R any, S constraints.Unsigned] struct {
	m *BiMap[L, R, S]
	i S
}

// Value is the Left value at u. Panics at the end.
func (u LeftIter[L, R, S]) Value() L {
	if u.i == avl.Sentinel {
		panic("bimap: dereferencing the end iterator")
	}
	return u.m.lefts[u.i]
}

// Next in Left order. The last pair is followed by the end.
func (u LeftIter[L, R, S]) Next() LeftIter[L, R, S] {
	return LeftIter[L, R, S]{u.m, avl.Next(u.m.links[left], u.i)}
}

// Prev in Left order. The end is preceded by the last pair.
func (u LeftIter[L, R, S]) Prev() LeftIter[L, R, S] {
	return LeftIter[L, R, S]{u.m, avl.Prev(u.m.links[left], u.i)}
}

func (u LeftIter[L, R, S]) IsEnd() bool {
	return u.i == avl.Sentinel
}

// Flip to the same pair in the Right order; the end flips to the end.
// Time: O(1)
func (u LeftIter[L, R, S]) Flip() RightIter[L, R, S] {
	return RightIter[L, R, S]{u.m, u.i}
}

// RightIter is LeftIter for the Right order.
type RightIter[L, R any, S constraints.Unsigned] struct {
	m *BiMap[L, R, S]
	i S
}

// Value is the Right value at u. Panics at the end.
func (u RightIter[L, R, S]) Value() R {
	if u.i == avl.Sentinel {
		panic("bimap: dereferencing the end iterator")
	}
	return u.m.rights[u.i]
}

func (u RightIter[L, R, S]) Next() RightIter[L, R, S] {
	return RightIter[L, R, S]{u.m, avl.Next(u.m.links[right], u.i)}
}

func (u RightIter[L, R, S]) Prev() RightIter[L, R, S] {
	return RightIter[L, R, S]{u.m, avl.Prev(u.m.links[right], u.i)}
}

func (u RightIter[L, R, S]) IsEnd() bool {
	return u.i == avl.Sentinel
}

// Flip to the same pair in the Left order; the end flips to the end.
// Time: O(1)
func (u RightIter[L, R, S]) Flip() LeftIter[L, R, S] {
	return LeftIter[L, R, S]{u.m, u.i}
}
