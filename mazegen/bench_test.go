package mazegen

import "testing"

func BenchmarkWilson_16x16(b *testing.B) {
	rng := NewRand(1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = MustWilson(rng)
	}
}
