package Trees

import "fmt"

// CorruptTreeError is the panic value raised when a tree built with the
// avldebug tag fails verification after a mutation.
type CorruptTreeError struct {
	Op   string // the mutating method that left the tree corrupt
	Size uint
}

func (e *CorruptTreeError) Error() string {
	return fmt.Sprintf("tree of size %d corrupt after %s", e.Size, e.Op)
}

// check verifies u after a mutation when built with the avldebug tag.
func (u *BSTree[T, B]) check(op string) {
	if debug && (u.Corrupt() || !isBalancedUnder[T, B](u)) {
		panic(&CorruptTreeError{op, u.size})
	}
}

// isBalancedUnder reports whether u satisfies the balance its policy
// promises. Plain promises nothing.
func isBalancedUnder[T any, B Balancer[T]](u *BSTree[T, B]) bool {
	if _, ok := any(u.b).(Plain[T]); ok {
		return true
	}
	return u.IsBalanced()
}

// balanced recomputes the height of n without using the cached heights,
// and reports whether every node below n has a balance factor within 1.
func balanced[T any](n *node[T]) (bool, int) {
	if n == nil {
		return true, -1
	}
	lb, lh := balanced(n.l)
	if !lb {
		return false, 0
	}
	rb, rh := balanced(n.r)
	if !rb {
		return false, 0
	}
	return lh-rh <= 1 && rh-lh <= 1, 1 + max(lh, rh)
}

// IsBalanced reports whether |height(left)-height(right)| <= 1 holds at
// every node. It walks the whole tree and recomputes heights, so it also
// cross checks the cached ones used by the balancing.
// Time: O(n); Space: O(D)
func (u *BSTree[T, B]) IsBalanced() bool {
	b, _ := balanced(u.root)
	return b
}

// corrupt reports whether the subtree at n has a value outside of the
// open interval (lo, hi) or a stale cached height. nil bounds are
// unbounded.
func (u *BSTree[T, B]) corrupt(n *node[T], lo, hi *T) bool {
	if n == nil {
		return false
	}
	if (lo != nil && !u.less(*lo, n.v)) || (hi != nil && !u.less(n.v, *hi)) {
		return true
	}
	if n.h != 1+max(n.l.height(), n.r.height()) {
		return true
	}
	return u.corrupt(n.l, lo, &n.v) || u.corrupt(n.r, &n.v, hi)
}

// Corrupt [Tree.Corrupt]. Recursive.
// Time: O(n); Space: O(D)
func (u *BSTree[T, B]) Corrupt() bool {
	return u.corrupt(u.root, nil, nil)
}
