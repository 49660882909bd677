package zielonka_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pgsolve/game"
	"github.com/katalvlaran/pgsolve/tspm"
	"github.com/katalvlaran/pgsolve/zielonka"
)

// benchGame builds a reproducible random game of n vertices.
func benchGame(b *testing.B, n, maxPrio int) *game.Dense {
	b.Helper()
	rnd := rand.New(rand.NewSource(7))

	prios := make([]int, n)
	for i := range prios {
		prios[i] = rnd.Intn(maxPrio + 1)
	}
	// Builder requires sorted priorities; counting sort keeps it simple.
	buckets := make([]int, maxPrio+1)
	for _, p := range prios {
		buckets[p]++
	}
	gb := game.NewBuilder()
	for p, c := range buckets {
		for ; c > 0; c-- {
			gb.AddVertex(p, rnd.Intn(2))
		}
	}
	for v := 0; v < n; v++ {
		gb.AddEdge(v, rnd.Intn(n))
		gb.AddEdge(v, rnd.Intn(n))
	}
	g, err := gb.Build()
	if err != nil {
		b.Fatalf("Build: %v", err)
	}

	return g
}

// BenchmarkZielonka_Random measures the staged recursion on a random game.
func BenchmarkZielonka_Random(b *testing.B) {
	g := benchGame(b, 500, 7)
	rec := game.NewRecorder(g.N())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := zielonka.Solve(g, rec); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkTSPM_Random measures the lifting engine on the same game shape.
func BenchmarkTSPM_Random(b *testing.B) {
	g := benchGame(b, 500, 7)
	rec := game.NewRecorder(g.N())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := tspm.Solve(g, rec); err != nil {
			b.Fatal(err)
		}
	}
}
