package Trees

// Tree represents an ordered set stored in a binary search tree.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool), and x is the
// zero value of T.
// Trees are not safe for concurrent use; guard them with a mutex if they
// are shared between goroutines.
type Tree[T any] interface {
	//Insert v to the Tree. Returns true if v was absent and is now stored,
	//false if v was already present, in which case the Tree is unchanged.
	Insert(v T) bool
	//Remove v from the Tree. Returns true if v was present and is now
	//removed, false if it was absent, in which case the Tree is unchanged.
	Remove(v T) bool
	//Has element v.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Size of the tree.
	Size() uint
	//Height of the tree, -1 when empty and 0 for a single element.
	Height() int
	//InOrder returns a new slice holding the elements in ascending order.
	InOrder() []T
	//PreOrder returns a new slice holding the elements node first, then
	//the left subtree, then the right subtree.
	PreOrder() []T
	//PostOrder returns a new slice holding the elements left subtree
	//first, then the right subtree, then the node.
	PostOrder() []T
	//LevelOrder returns a new slice holding the elements level by level
	//from the root, left to right within a level.
	LevelOrder() []T
	//Corrupt returns whether the tree has corrupt structures: the order
	//of the values is violated or a cached height is wrong.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}

var (
	_ Tree[int]    = (*BSTree[int, AVL[int]])(nil)
	_ Tree[string] = (*BSTree[string, Plain[string]])(nil)
)
