package Trees

// A node in the BSTree. It owns its children exclusively and has no
// pointer back to its parent.
type node[T any] struct {
	v    T
	l, r *node[T]
	h    int // height of the subtree rooted here, a leaf has 0.
}

func newNode[T any](v T) *node[T] {
	return &node[T]{v: v}
}

// height of the subtree rooted at n, -1 for the nil subtree.
// Time: O(1)
func (n *node[T]) height() int {
	if n == nil {
		return -1
	}
	return n.h
}

// fix recomputes the cached height of n from its children.
// Time: O(1)
func (n *node[T]) fix() {
	n.h = 1 + max(n.l.height(), n.r.height())
}

// balanceFactor is height(left)-height(right).
func (n *node[T]) balanceFactor() int {
	return n.l.height() - n.r.height()
}

// maximum node of the subtree rooted at n, which must not be nil.
func (n *node[T]) maximum() *node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// minimum node of the subtree rooted at n, which must not be nil.
func (n *node[T]) minimum() *node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// rotateLeft performs a left rotation on n and returns the new root of
// the subtree, which is the former right child of n. The heights of n and
// then the new root are recomputed.
// Time: O(1); Space: O(1)
func rotateLeft[T any](n *node[T]) *node[T] {
	rc := n.r
	n.r = rc.l
	rc.l = n
	n.fix()
	rc.fix()
	return rc
}

// rotateRight performs a right rotation on n and returns the new root of
// the subtree, which is the former left child of n. The heights of n and
// then the new root are recomputed.
// Time: O(1); Space: O(1)
func rotateRight[T any](n *node[T]) *node[T] {
	lc := n.l
	n.l = lc.r
	lc.r = n
	n.fix()
	lc.fix()
	return lc
}
