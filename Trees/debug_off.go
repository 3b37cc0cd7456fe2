//go:build !avldebug

package Trees

const debug = false
