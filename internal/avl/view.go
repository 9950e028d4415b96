package avl

import "golang.org/x/exp/constraints"

// View is a Tree with a cached leftmost node. Positions are slot indexes; Sentinel is the end.
type View[K any, S constraints.Unsigned] struct {
	Tree[K, S]
	begin S
}

// Init binds the view to the link table *ls ordered by keys, holding size nodes under Sentinel.
// ls[Sentinel] must already exist.
func (u *View[K, S]) Init(ls *[]Link[S], keys Keys[K, S], size uint) {
	u.ls, u.keys, u.size = ls, keys, size
	u.refresh()
}

// refresh reattaches the root to Sentinel and recomputes the leftmost node.
// Time: O(log n)
func (u *View[K, S]) refresh() {
	ls := *u.ls
	if root := ls[Sentinel].L; root != Nil {
		ls[root].P = Sentinel
	}
	u.begin = Sentinel
	for ls[u.begin].L != Nil {
		u.begin = ls[u.begin].L
	}
}

// Insert the fresh slot e, returning e, or End if an equivalent key is already present.
func (u *View[K, S]) Insert(e S) S {
	if !u.Tree.Insert(e) {
		return Sentinel
	}
	u.refresh()
	return e
}

// Erase the node equivalent to k. Returns the detached slot, or Nil.
func (u *View[K, S]) Erase(k *K) S {
	gone := u.Tree.Erase(k)
	if gone != Nil {
		u.refresh()
	}
	return gone
}

func orEnd[S constraints.Unsigned](i S) S {
	if i == Nil {
		return Sentinel
	}
	return i
}

// Find the node equivalent to k, or End.
func (u *View[K, S]) Find(k *K) S {
	return orEnd(u.Tree.Find(k))
}

// LowerBound of k, or End.
func (u *View[K, S]) LowerBound(k *K) S {
	return orEnd(u.Tree.LowerBound(k))
}

// UpperBound of k, or End.
func (u *View[K, S]) UpperBound(k *K) S {
	return orEnd(u.Tree.UpperBound(k))
}

// Begin is the leftmost node, End when empty.
func (u *View[K, S]) Begin() S {
	return u.begin
}

// End is the one-past-the-last position.
func (u *View[K, S]) End() S {
	return Sentinel
}

func (u *View[K, S]) Size() uint {
	return u.size
}

func (u *View[K, S]) Empty() bool {
	return u.size == 0
}

// Swap the contents of two views. The link tables are exchanged by header, not copied.
// Time: O(log n)
func (u *View[K, S]) Swap(o *View[K, S]) {
	*u.ls, *o.ls = *o.ls, *u.ls
	u.size, o.size = o.size, u.size
	u.refresh()
	o.refresh()
}

// Reset forgets every node. Slots aren't freed; that's up to the owner of the link table.
func (u *View[K, S]) Reset() {
	(*u.ls)[Sentinel].L = Nil
	u.size = 0
	u.refresh()
}

// Check verifies the structure reachable from Sentinel: heights, AVL balance, parent links and strict
// key order. visit is called once per reachable slot and may return false to report a foreign slot.
// Returns the number of reachable nodes and whether the tree is intact. Implemented recursively.
func (u *View[K, S]) Check(visit func(S) bool) (uint, bool) {
	ls := *u.ls
	if ls[Sentinel].P != Nil || ls[Sentinel].R != Nil {
		return 0, false
	}
	root := ls[Sentinel].L
	if root != Nil && ls[root].P != Sentinel {
		return 0, false
	}
	var n uint
	var check func(cur S) bool
	check = func(cur S) bool {
		if cur == Nil {
			return true
		}
		if cur == Sentinel || int(cur) >= len(ls) || !visit(cur) {
			return false
		}
		c := ls[cur]
		n++
		if int(c.L) >= len(ls) || int(c.R) >= len(ls) {
			return false
		}
		if c.H != max(ls[c.L].H, ls[c.R].H)+1 {
			return false
		}
		if f := factor(ls, cur); f < -1 || f > 1 {
			return false
		}
		if c.L != Nil && (ls[c.L].P != cur || u.keys.CompareNodes(c.L, cur) >= 0) {
			return false
		}
		if c.R != Nil && (ls[c.R].P != cur || u.keys.CompareNodes(cur, c.R) >= 0) {
			return false
		}
		return check(c.L) && check(c.R)
	}
	if !check(root) || n != u.size {
		return n, false
	}
	// neighbours in order must be strictly increasing, which also covers non-adjacent subtrees
	for i := u.begin; i != Sentinel; {
		j := Next(ls, i)
		if j != Sentinel && u.keys.CompareNodes(i, j) >= 0 {
			return n, false
		}
		i = j
	}
	b := S(Sentinel)
	for ls[b].L != Nil {
		b = ls[b].L
	}
	return n, b == u.begin
}
