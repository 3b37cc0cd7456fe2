package Trees

import (
	"golang.org/x/exp/constraints"
)

// BSTree is a binary search tree with no repeated values. T is the type
// of values it will hold, B is the balancing policy. With B=AVL[T] the
// height of the tree stays below 1.44*log2(n+2), so every operation is
// O(log n). With B=Plain[T] it is an ordinary unbalanced tree, whose
// height can reach n-1 for sorted input.
// Values are ordered by a strict "less" relation, equality of a and b is
// !less(a,b) && !less(b,a). For floating point T, NaN must not be stored.
// All operations that walk down the tree are recursive unless noted.
// BSTree shouldn't be created directly using struct literal, use one of
// the New functions.
type BSTree[T any, B Balancer[T]] struct {
	root *node[T]
	less func(a, b T) bool
	size uint
	b    B
}

func lessOrdered[T constraints.Ordered](a, b T) bool {
	return a < b
}

// NewAVL returns an empty AVL tree ordered by <.
func NewAVL[T constraints.Ordered]() *BSTree[T, AVL[T]] {
	return &BSTree[T, AVL[T]]{less: lessOrdered[T]}
}

// NewAVLFunc returns an empty AVL tree ordered by less, which must be a
// strict total order.
func NewAVLFunc[T any](less func(a, b T) bool) *BSTree[T, AVL[T]] {
	return &BSTree[T, AVL[T]]{less: less}
}

// NewPlain returns an empty unbalanced tree ordered by <.
func NewPlain[T constraints.Ordered]() *BSTree[T, Plain[T]] {
	return &BSTree[T, Plain[T]]{less: lessOrdered[T]}
}

// NewPlainFunc returns an empty unbalanced tree ordered by less, which
// must be a strict total order.
func NewPlainFunc[T any](less func(a, b T) bool) *BSTree[T, Plain[T]] {
	return &BSTree[T, Plain[T]]{less: less}
}

// Size returns the size of the tree.
// Time: O(1); Space: O(1)
func (u *BSTree[T, B]) Size() uint {
	return u.size
}

// Empty reports whether the tree holds no element.
func (u *BSTree[T, B]) Empty() bool {
	return u.root == nil
}

// Height [Tree.Height]
// Time: O(1); Space: O(1)
func (u *BSTree[T, B]) Height() int {
	return u.root.height()
}

// Clear drops every element.
// Time: O(1)
func (u *BSTree[T, B]) Clear() {
	u.root, u.size = nil, 0
}

// settle refreshes the height of cur, whose subtree just changed, and
// hands it to the balancing policy.
func (u *BSTree[T, B]) settle(cur *node[T]) *node[T] {
	cur.fix()
	return u.b.rebalance(cur)
}

// insert the value v to the subtree rooting at cur recursively. Returns
// the new root of the subtree and whether v was inserted. A failed
// insertion happens when the value is already in u.
func (u *BSTree[T, B]) insert(cur *node[T], v T) (*node[T], bool) {
	if cur == nil {
		return newNode(v), true
	}
	inserted := false
	if u.less(v, cur.v) {
		cur.l, inserted = u.insert(cur.l, v)
	} else if u.less(cur.v, v) {
		cur.r, inserted = u.insert(cur.r, v)
	} else {
		return cur, false
	}
	if inserted {
		cur = u.settle(cur)
	}
	return cur, inserted
}

// Insert [Tree.Insert]. Recursive.
// Time: O(D)
func (u *BSTree[T, B]) Insert(v T) bool {
	var inserted bool
	u.root, inserted = u.insert(u.root, v)
	if inserted {
		u.size++
		u.check("Insert")
	}
	return inserted
}

// remove the value v from the subtree rooting at cur recursively. Returns
// the new root of the subtree and whether v was removed.
func (u *BSTree[T, B]) remove(cur *node[T], v T) (*node[T], bool) {
	if cur == nil {
		return nil, false
	}
	removed := false
	if u.less(v, cur.v) {
		cur.l, removed = u.remove(cur.l, v)
	} else if u.less(cur.v, v) {
		cur.r, removed = u.remove(cur.r, v)
	} else if cur.l == nil || cur.r == nil {
		child := cur.l
		if child == nil {
			child = cur.r
		}
		cur.l, cur.r = nil, nil
		return child, true
	} else {
		// two children: take over the in-order predecessor's value, then
		// remove the predecessor, which has no right child, from the left.
		cur.v = cur.l.maximum().v
		cur.l, removed = u.remove(cur.l, cur.v)
	}
	if removed {
		cur = u.settle(cur)
	}
	return cur, removed
}

// Remove [Tree.Remove]. Recursive.
// Time: O(D)
func (u *BSTree[T, B]) Remove(v T) bool {
	var removed bool
	u.root, removed = u.remove(u.root, v)
	if removed {
		u.size--
		u.check("Remove")
	}
	return removed
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[T, B]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if u.less(v, cur.v) {
			cur = cur.l
		} else if u.less(cur.v, v) {
			cur = cur.r
		} else {
			return true
		}
	}
	return false
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[T, B]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.minimum().v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T, B]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.maximum().v, true
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *BSTree[T, B]) Predecessor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if u.less(cur.v, v) {
			p = cur
			cur = cur.r
		} else {
			cur = cur.l
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *BSTree[T, B]) Successor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if u.less(v, cur.v) {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}
