package Trees

import (
	"github.com/g-m-twostay/go-trees/Queues"
)

func inOrder[T any](n *node[T], res []T) []T {
	if n == nil {
		return res
	}
	res = inOrder(n.l, res)
	res = append(res, n.v)
	return inOrder(n.r, res)
}

func preOrder[T any](n *node[T], res []T) []T {
	if n == nil {
		return res
	}
	res = append(res, n.v)
	res = preOrder(n.l, res)
	return preOrder(n.r, res)
}

func postOrder[T any](n *node[T], res []T) []T {
	if n == nil {
		return res
	}
	res = postOrder(n.l, res)
	res = postOrder(n.r, res)
	return append(res, n.v)
}

// InOrder [Tree.InOrder]. Recursive.
// Time: O(n); Space: O(D) besides the result.
func (u *BSTree[T, B]) InOrder() []T {
	return inOrder(u.root, make([]T, 0, u.size))
}

// PreOrder [Tree.PreOrder]. Recursive.
// Time: O(n); Space: O(D) besides the result.
func (u *BSTree[T, B]) PreOrder() []T {
	return preOrder(u.root, make([]T, 0, u.size))
}

// PostOrder [Tree.PostOrder]. Recursive.
// Time: O(n); Space: O(D) besides the result.
func (u *BSTree[T, B]) PostOrder() []T {
	return postOrder(u.root, make([]T, 0, u.size))
}

// LevelOrder [Tree.LevelOrder]
// Time: O(n); Space: O(width of the widest level) besides the result.
func (u *BSTree[T, B]) LevelOrder() []T {
	res := make([]T, 0, u.size)
	if u.root == nil {
		return res
	}
	q := Queues.MakeArrayQueue[*node[T]](u.size/2 + 1)
	for q.Push(u.root); !q.Empty(); {
		n, _ := q.Pop()
		res = append(res, n.v)
		if n.l != nil {
			q.Push(n.l)
		}
		if n.r != nil {
			q.Push(n.r)
		}
	}
	return res
}
