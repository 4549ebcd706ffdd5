package bfs_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/sixdegrees/bfs"
	"github.com/katalvlaran/sixdegrees/core"
)

// BenchmarkBFS_Chain measures BFS on an alternating actor/movie chain.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 5000
	g := chain(N)
	g.Freeze()
	V := 2*N + 1
	E := 2 * N

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, core.Actor("a0"))
	}
}

// BenchmarkBFS_RandomCasts runs BFS on a random movie/cast graph:
// 2 000 movies, 5 000 actors, 8 cast members per movie.
func BenchmarkBFS_RandomCasts(b *testing.B) {
	const movies, actors, cast = 2000, 5000, 8
	rng := rand.New(rand.NewSource(42))
	g := core.NewGraph()
	for m := 0; m < movies; m++ {
		title := core.Movie(fmt.Sprintf("m%d", m))
		for c := 0; c < cast; c++ {
			_, _ = g.AddEdge(title, core.Actor(fmt.Sprintf("a%d", rng.Intn(actors))))
		}
	}
	g.Freeze()
	start := core.Actor(g.Names(core.KindActor)[0])

	b.ReportAllocs()
	b.SetBytes(int64(g.VertexCount() + g.EdgeCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, start)
	}
}
