package bimap

import (
	"github.com/g-m-twostay/bimap/internal/avl"
	"github.com/g-m-twostay/bimap/internal/bitarray"
)

// Corrupt reports whether the structure is broken: a tree violating the AVL or order properties,
// stale parent links, a stale cached begin, sizes disagreeing, a pair linked into only one tree, or
// a slot both free and linked. Used by tests and measurement tools.
// Time: O(n)
func (u *BiMap[L, R, S]) Corrupt() bool {
	n := len(u.lefts)
	if len(u.rights) != n || len(u.links[left]) != n || len(u.links[right]) != n {
		return true
	}
	seen := [2]bitarray.BitArray{bitarray.New(n), bitarray.New(n)}
	mark := func(side int) func(S) bool {
		return func(i S) bool {
			if int(i) >= n || seen[side].Get(int(i)) {
				return false
			}
			seen[side].Up(int(i))
			return true
		}
	}
	nl, okL := u.lv.Check(mark(left))
	nr, okR := u.rv.Check(mark(right))
	if !okL || !okR || nl != nr {
		return true
	}
	for i := 2; i < n; i++ {
		if seen[left].Get(i) != seen[right].Get(i) {
			return true
		}
	}
	free := 0
	for i := u.free; i != avl.Nil; i = u.links[left][i].L {
		if int(i) >= n || i == avl.Sentinel || seen[left].Get(int(i)) || free >= n {
			return true
		}
		seen[left].Up(int(i))
		free++
	}
	return uint(free)+nl+2 != uint(n)
}
