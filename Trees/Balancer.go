package Trees

// Balancer is the balancing policy of a BSTree. It is called on every
// ancestor of a changed node, bottom-up, right after that ancestor's height
// has been refreshed, and returns the node that takes its place.
// The set of policies is closed: AVL and Plain.
type Balancer[T any] interface {
	rebalance(n *node[T]) *node[T]
}

// AVL keeps |height(left)-height(right)| <= 1 at every node using single
// and double rotations.
type AVL[T any] struct{}

func (AVL[T]) rebalance(n *node[T]) *node[T] {
	if bf := n.balanceFactor(); bf > 1 {
		if n.l.l.height() < n.l.r.height() {
			n.l = rotateLeft(n.l) // left-right case
		}
		return rotateRight(n)
	} else if bf < -1 {
		if n.r.r.height() < n.r.l.height() {
			n.r = rotateRight(n.r) // right-left case
		}
		return rotateLeft(n)
	}
	return n
}

// Plain never restructures; the tree is an ordinary binary search tree
// whose shape depends on insertion order.
type Plain[T any] struct{}

func (Plain[T]) rebalance(n *node[T]) *node[T] {
	return n
}
