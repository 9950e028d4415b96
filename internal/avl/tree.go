package avl

import "golang.org/x/exp/constraints"

// Keys orders the slots of one link table. Both methods must describe the same strict weak order.
type Keys[K any, S constraints.Unsigned] interface {
	// CompareNodes compares the key stored at slot a with the key stored at slot b.
	CompareNodes(a, b S) int
	// CompareKey compares the key stored at slot a with k.
	CompareKey(a S, k *K) int
}

// Tree is an AVL tree whose structure lives in a shared link table.
// The nodes aren't owned by the tree; whoever allocates the slots frees them.
// The root is kept in the L link of Sentinel.
// Insert and erase are implemented recursively with rebalancing on the way back up.
type Tree[K any, S constraints.Unsigned] struct {
	ls   *[]Link[S]
	keys Keys[K, S]
	size uint
}

func (u *Tree[K, S]) insert(ls []Link[S], cur, e S) (S, bool) {
	if cur == Nil {
		return e, true
	}
	var ok bool
	if c := u.keys.CompareNodes(cur, e); c < 0 {
		if ls[cur].R, ok = u.insert(ls, ls[cur].R, e); !ok {
			return cur, false
		}
	} else if c > 0 {
		if ls[cur].L, ok = u.insert(ls, ls[cur].L, e); !ok {
			return cur, false
		}
	} else {
		return cur, false
	}
	return balance(ls, cur), true
}

// Insert the fresh slot e. Returns false and leaves the tree untouched if an equivalent key is present.
// Time: O(log n)
func (u *Tree[K, S]) Insert(e S) bool {
	ls := *u.ls
	root, ok := u.insert(ls, ls[Sentinel].L, e)
	if ok {
		ls[Sentinel].L = root
		u.size++
	}
	return ok
}

func removeMin[S constraints.Unsigned](ls []Link[S], cur S) S {
	if ls[cur].L == Nil {
		return ls[cur].R
	}
	ls[cur].L = removeMin(ls, ls[cur].L)
	return balance(ls, cur)
}

func (u *Tree[K, S]) erase(ls []Link[S], cur S, k *K) (S, S) {
	if cur == Nil {
		return Nil, Nil
	}
	var gone S
	if c := u.keys.CompareKey(cur, k); c < 0 {
		if ls[cur].R, gone = u.erase(ls, ls[cur].R, k); gone == Nil {
			return cur, Nil
		}
	} else if c > 0 {
		if ls[cur].L, gone = u.erase(ls, ls[cur].L, k); gone == Nil {
			return cur, Nil
		}
	} else {
		l, r := ls[cur].L, ls[cur].R
		if r == Nil {
			return l, cur
		}
		m := r
		for ls[m].L != Nil {
			m = ls[m].L
		}
		ls[m].R = removeMin(ls, r)
		ls[m].L = l
		return balance(ls, m), cur
	}
	return balance(ls, cur), gone
}

// Erase the node equivalent to k. Returns the detached slot, or Nil if k isn't present.
// The detached slot's links are left stale; the caller resets them.
// Time: O(log n)
func (u *Tree[K, S]) Erase(k *K) S {
	ls := *u.ls
	root, gone := u.erase(ls, ls[Sentinel].L, k)
	if gone != Nil {
		ls[Sentinel].L = root
		u.size--
	}
	return gone
}

// Find the slot equivalent to k, Nil if none.
func (u *Tree[K, S]) Find(k *K) S {
	ls := *u.ls
	for cur := ls[Sentinel].L; cur != Nil; {
		if c := u.keys.CompareKey(cur, k); c < 0 {
			cur = ls[cur].R
		} else if c > 0 {
			cur = ls[cur].L
		} else {
			return cur
		}
	}
	return Nil
}

// LowerBound is the first slot not less than k, Nil if none.
func (u *Tree[K, S]) LowerBound(k *K) S {
	if f := u.Find(k); f != Nil {
		return f
	}
	return u.UpperBound(k)
}

// UpperBound is the first slot greater than k, Nil if none.
func (u *Tree[K, S]) UpperBound(k *K) S {
	ls := *u.ls
	best := S(Nil)
	for cur := ls[Sentinel].L; cur != Nil; {
		if u.keys.CompareKey(cur, k) > 0 {
			best = cur
			cur = ls[cur].L
		} else {
			cur = ls[cur].R
		}
	}
	return best
}

// Height of the tree, 0 when empty.
func (u *Tree[K, S]) Height() uint8 {
	ls := *u.ls
	return ls[ls[Sentinel].L].H
}
