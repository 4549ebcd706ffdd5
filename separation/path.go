package separation

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sixdegrees/bfs"
	"github.com/katalvlaran/sixdegrees/core"
)

// Path is one shortest connection between two actors.
type Path struct {
	// Nodes is the full vertex path, movies included, source first.
	Nodes []core.NodeID `json:"-"`
	// Actors is Nodes with movies filtered out.
	Actors []string `json:"actors"`
	// Movies are the linking titles; Movies[i] joins Actors[i] and Actors[i+1].
	Movies []string `json:"movies"`
	// Degree is len(Actors)-1: 0 for a self query, 1 for co-stars.
	Degree int `json:"degree"`
}

// ShortestActorPath returns a shortest path from source to target.
//
// Both names must be actors in g, else ErrNodeNotFound. Disconnected actors
// yield ErrNoPath. When several shortest paths exist, the one found first by
// a BFS over sorted neighbors is returned. source == target gives
// Actors == [source] and Degree 0.
//
// Complexity: O(V + E) worst case; the search stops once target is found.
func ShortestActorPath(g *core.Graph, source, target string, opts ...Option) (*Path, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	src, err := requireActor(g, source)
	if err != nil {
		return nil, err
	}
	dst, err := requireActor(g, target)
	if err != nil {
		return nil, err
	}

	res, err := bfs.BFS(g, src, bfs.WithContext(o.ctx), bfs.WithTarget(dst))
	if err != nil {
		return nil, err
	}
	nodes, err := res.PathTo(dst)
	if errors.Is(err, bfs.ErrNoPath) {
		return nil, fmt.Errorf("%w: %q and %q", ErrNoPath, source, target)
	}
	if err != nil {
		return nil, err
	}

	return newPath(nodes), nil
}

// newPath splits a raw alternating vertex path into actors and movies.
func newPath(nodes []core.NodeID) *Path {
	p := &Path{
		Nodes:  nodes,
		Actors: make([]string, 0, len(nodes)/2+1),
		Movies: make([]string, 0, len(nodes)/2),
	}
	for _, id := range nodes {
		if id.IsMovie() {
			p.Movies = append(p.Movies, id.Name)
			continue
		}
		p.Actors = append(p.Actors, id.Name)
	}
	p.Degree = len(p.Actors) - 1

	return p
}
