package symtab

import (
	"strconv"
	"testing"
)

func BenchmarkInternHit(b *testing.B) {
	tab := New()
	words := make([]string, 1024)
	for i := range words {
		words[i] = "station-" + strconv.Itoa(i)
		tab.Intern(words[i])
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tab.Intern(words[i%len(words)])
	}
}

func BenchmarkInternMiss(b *testing.B) {
	tab := New()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tab.Intern("station-" + strconv.Itoa(i))
	}
}

func BenchmarkResolve(b *testing.B) {
	tab := New()
	for i := 0; i < 1024; i++ {
		tab.Intern("station-" + strconv.Itoa(i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tab.Resolve(Symbol(i % 1024))
	}
}
