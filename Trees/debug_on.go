//go:build avldebug

package Trees

// debug enables verification of the tree after every mutation.
const debug = true
