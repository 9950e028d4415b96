// Package avl implements AVL trees over link tables indexed by slot, so several trees can share slots.
package avl

import "golang.org/x/exp/constraints"

const (
	// Nil is the zero value loopback slot. Its height is always 0, so children can be read without checks.
	Nil = 0
	// Sentinel is the reserved slot anchoring the root (Sentinel.L) and marking the end position.
	// Its P is always Nil.
	Sentinel = 1
)

// Link is the structural record of one node in one tree.
// The zero value is meaningful: it is the Nil slot, or a freed slot.
type Link[S constraints.Unsigned] struct {
	L, R, P S
	H       uint8 // height of the subtree; 0 means no node
}

// Fresh returns the record of a node about to be attached.
func Fresh[S constraints.Unsigned]() Link[S] {
	return Link[S]{H: 1}
}

// update recomputes the height of i and points the parents of its children back to i.
func update[S constraints.Unsigned](ls []Link[S], i S) {
	n := &ls[i]
	if n.L != Nil {
		ls[n.L].P = i
	}
	if n.R != Nil {
		ls[n.R].P = i
	}
	n.H = max(ls[n.L].H, ls[n.R].H) + 1
}

func factor[S constraints.Unsigned](ls []Link[S], i S) int {
	return int(ls[ls[i].R].H) - int(ls[ls[i].L].H)
}

// rotateLeft the subtree rooting at i and return the new root.
// Time: O(1); Space: O(1)
func rotateLeft[S constraints.Unsigned](ls []Link[S], i S) S {
	rc := ls[i].R
	ls[i].R = ls[rc].L
	ls[rc].L = i
	update(ls, i)
	update(ls, rc)
	return rc
}

// rotateRight the subtree rooting at i and return the new root.
// Time: O(1); Space: O(1)
func rotateRight[S constraints.Unsigned](ls []Link[S], i S) S {
	lc := ls[i].L
	ls[i].L = ls[lc].R
	ls[lc].R = i
	update(ls, i)
	update(ls, lc)
	return lc
}

// balance updates i then restores the AVL property with at most two rotations.
// Returns the new root of the subtree.
func balance[S constraints.Unsigned](ls []Link[S], i S) S {
	update(ls, i)
	switch factor(ls, i) {
	case 2:
		if factor(ls, ls[i].R) < 0 {
			ls[i].R = rotateRight(ls, ls[i].R)
		}
		return rotateLeft(ls, i)
	case -2:
		if factor(ls, ls[i].L) > 0 {
			ls[i].L = rotateLeft(ls, ls[i].L)
		}
		return rotateRight(ls, i)
	}
	return i
}

func isLeft[S constraints.Unsigned](ls []Link[S], i S) bool {
	p := ls[i].P
	return p != Nil && ls[p].L == i
}

func isRight[S constraints.Unsigned](ls []Link[S], i S) bool {
	p := ls[i].P
	return p != Nil && ls[p].R == i
}

// Next in-order node after i. The maximum is followed by Sentinel; Sentinel is followed by itself.
func Next[S constraints.Unsigned](ls []Link[S], i S) S {
	if r := ls[i].R; r != Nil {
		for i = r; ls[i].L != Nil; i = ls[i].L {
		}
		return i
	}
	for isRight(ls, i) {
		i = ls[i].P
	}
	if isLeft(ls, i) {
		return ls[i].P
	}
	return Sentinel
}

// Prev in-order node before i. The minimum is preceded by Sentinel, and Sentinel by the maximum.
func Prev[S constraints.Unsigned](ls []Link[S], i S) S {
	if l := ls[i].L; l != Nil {
		for i = l; ls[i].R != Nil; i = ls[i].R {
		}
		return i
	}
	for isLeft(ls, i) {
		i = ls[i].P
	}
	if isRight(ls, i) {
		return ls[i].P
	}
	return Sentinel
}
