package window

import (
	"strconv"
	"testing"
)

func BenchmarkGenerate(b *testing.B) {
	sizes := []int{256, 1024, 4096}
	for _, n := range sizes {
		b.Run("hann/"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Generate(TypeHann, n)
			}
		})
		b.Run("blackman-harris/"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Generate(TypeBlackmanHarris, n)
			}
		})
		b.Run("parzen/"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Generate(TypeParzen, n)
			}
		})
	}
}

func BenchmarkAnalyze(b *testing.B) {
	w, err := Generate(TypeBlackmanHarris, 1024)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = Analyze(w)
	}
}
