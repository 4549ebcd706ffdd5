package separation_test

import (
	"testing"

	"github.com/katalvlaran/sixdegrees/separation"
)

// BenchmarkShortestActorPath measures early-exit searches on a mid-size random catalog.
func BenchmarkShortestActorPath(b *testing.B) {
	c := randomCatalog(b, 11, 5000, 8000, 12)
	src, dst := c.Actors[0], c.Actors[len(c.Actors)-1]

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = separation.ShortestActorPath(c.Graph, src, dst)
	}
}

// BenchmarkDistanceDistribution measures a full traversal from one actor.
func BenchmarkDistanceDistribution(b *testing.B) {
	c := randomCatalog(b, 11, 5000, 8000, 12)
	target := c.Actors[len(c.Actors)/2]

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := separation.DistanceDistribution(c.Graph, target); err != nil {
			b.Fatal(err)
		}
	}
}
