// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/sixdegrees/core"
)

// BenchmarkAddEdge measures fresh movie–actor insertions.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge(core.Movie(fmt.Sprintf("M%d", i/16)), core.Actor(fmt.Sprintf("A%d", i)))
	}
}

// BenchmarkAddEdge_Duplicate measures the idempotent no-op path.
func BenchmarkAddEdge_Duplicate(b *testing.B) {
	g := core.NewGraph()
	m, a := core.Movie("M"), core.Actor("A")
	_, _ = g.AddEdge(m, a)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge(m, a)
	}
}

// BenchmarkRangeNeighbors_Frozen measures cached neighbor iteration.
func BenchmarkRangeNeighbors_Frozen(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 256; i++ {
		_, _ = g.AddEdge(core.Movie("M"), core.Actor(fmt.Sprintf("A%03d", i)))
	}
	g.Freeze()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.RangeNeighbors(core.Movie("M"), func(core.NodeID) bool { return true })
	}
}
