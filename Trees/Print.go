package Trees

import (
	"fmt"
	"io"
	"strings"
)

// to control the print routine
type branch byte

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Print writes an ASCII drawing of the tree to w, rotated a quarter turn
// counterclockwise: the root is on the left, right subtrees above their
// parent and left subtrees below. Each node shows its value and height.
func (u *BSTree[T, B]) Print(w io.Writer) error {
	var sb strings.Builder
	printTree(&sb, u.root, "", rootBranch)
	_, err := io.WriteString(w, sb.String())
	return err
}

func printTree[T any](sb *strings.Builder, n *node[T], prefix string, br branch) {
	if n == nil {
		return
	}
	if n.r != nil {
		t := "       "
		if br == leftBranch {
			t = "|      "
		}
		printTree(sb, n.r, prefix+t, rightBranch)
	}
	sb.WriteString(prefix)
	switch br {
	case rootBranch:
		sb.WriteString("|------+ ")
	case leftBranch:
		sb.WriteString("\\------+ ")
	case rightBranch:
		sb.WriteString("/------+ ")
	}
	fmt.Fprintf(sb, "%v h=%d\n", n.v, n.h)
	if n.l != nil {
		t := "       "
		if br == rightBranch {
			t = "|      "
		}
		printTree(sb, n.l, prefix+t, leftBranch)
	}
}
