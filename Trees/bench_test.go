package Trees

import (
	"math/rand"
	"testing"
)

const (
	size = 1 << 15
	iter = 10
)

func BenchmarkAVL_Insert(b *testing.B) {
	var t *BSTree[int, AVL[int]]
	for i := 0; i < b.N; i++ {
		t = NewAVL[int]()
		for _, j := range rand.Perm(size) {
			t.Insert(j)
		}
	}
	b.Log(t.Height())
}

func BenchmarkAVL_Delete(b *testing.B) {
	var t Tree[int]
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		t = NewAVL[int]()
		for _, j := range rand.Perm(size) {
			t.Insert(j)
		}
		b.StartTimer()
		for j := 0; j < size; j++ {
			t.Remove(j)
		}
	}
}

func BenchmarkAVL_All(b *testing.B) {
	var t *BSTree[int, AVL[int]]
	for i := 0; i < b.N; i++ {
		t = NewAVL[int]()
		for _, j := range rand.Perm(size / 2) {
			t.Insert(j)
		}
		for j, k := range rand.Perm(size / 2) {
			if k&1 == 1 {
				t.Remove(j)
			}
		}
		for _, j := range rand.Perm(size / 2) {
			t.Insert(j + size)
		}
		for j, k := range rand.Perm(size / 2) {
			if k&1 == 1 {
				t.Insert(j)
			}
		}
	}
	b.Log(t.Height())
}

func BenchmarkAVL_Sorted(b *testing.B) {
	for i := 0; i < b.N; i++ {
		t := NewAVL[int]()
		for j := 0; j < size; j++ {
			t.Insert(j)
		}
	}
}

// sorted input degenerates the plain tree into a chain, so it uses a
// smaller size to keep the quadratic cost bounded.
func BenchmarkPlain_Sorted(b *testing.B) {
	for i := 0; i < b.N; i++ {
		t := NewPlain[int]()
		for j := 0; j < size/iter; j++ {
			t.Insert(j)
		}
	}
}

var sideEff []int

func BenchmarkAVL_InOrder(b *testing.B) {
	t := NewAVL[int]()
	for _, j := range rand.Perm(size) {
		t.Insert(j)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sideEff = t.InOrder()
	}
}
