package pinned

import (
	"testing"
)

func BenchmarkSeqPush(b *testing.B) {
	s := NewSeq[int]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Push(i)
	}
}

func BenchmarkSliceAppendBaseline(b *testing.B) {
	var s []int
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s = append(s, i)
	}
	_ = s
}

func BenchmarkSeqGet(b *testing.B) {
	s := NewSeq[int]()
	for i := 0; i < 1<<16; i++ {
		s.Push(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Get(i & (1<<16 - 1))
	}
}

func BenchmarkOnceArraySet(b *testing.B) {
	a := NewOnceArray[int](b.N)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.Set(i, i)
	}
}

func BenchmarkOnceArrayGet(b *testing.B) {
	const size = 1 << 16
	a := NewOnceArray[int](size)
	for i := 0; i < size; i++ {
		_ = a.Set(i, i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = a.Get(i & (size - 1))
	}
}
