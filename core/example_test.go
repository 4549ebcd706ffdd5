package core_test

import (
	"fmt"

	"github.com/katalvlaran/sixdegrees/core"
)

// ExampleGraph_AddEdge builds a two-movie cast graph and lists its partitions.
func ExampleGraph_AddEdge() {
	g := core.NewGraph()
	// "Apollo 13 (1995)" shares Kevin Bacon with "Footloose (1984)".
	_, _ = g.AddEdge(core.Movie("Apollo 13 (1995)"), core.Actor("Tom Hanks"))
	_, _ = g.AddEdge(core.Movie("Apollo 13 (1995)"), core.Actor("Kevin Bacon"))
	_, _ = g.AddEdge(core.Movie("Footloose (1984)"), core.Actor("Kevin Bacon"))
	_, _ = g.AddEdge(core.Movie("Footloose (1984)"), core.Actor("Lori Singer"))
	g.Freeze()

	fmt.Println(g.Names(core.KindMovie))
	fmt.Println(g.Names(core.KindActor))
	fmt.Printf("%+v\n", g.Stats())
	// Output:
	// [Apollo 13 (1995) Footloose (1984)]
	// [Kevin Bacon Lori Singer Tom Hanks]
	// {Movies:2 Actors:3 Edges:4}
}

// ExampleGraph_NeighborIDs shows that neighbors come back sorted by kind, then name.
func ExampleGraph_NeighborIDs() {
	g := core.NewGraph()
	_, _ = g.AddEdge(core.Movie("Footloose (1984)"), core.Actor("Kevin Bacon"))
	_, _ = g.AddEdge(core.Movie("Apollo 13 (1995)"), core.Actor("Kevin Bacon"))

	nbrs, _ := g.NeighborIDs(core.Actor("Kevin Bacon"))
	for _, n := range nbrs {
		fmt.Println(n)
	}
	// Output:
	// movie:Apollo 13 (1995)
	// movie:Footloose (1984)
}
