package separation

import (
	"github.com/katalvlaran/sixdegrees/bfs"
	"github.com/katalvlaran/sixdegrees/core"
)

// DefaultBins is the number of histogram bins (degrees 0..6) the classic
// "six degrees" chart shows.
const DefaultBins = 7

// Bucket counts the actors at one degree of separation.
type Bucket struct {
	Degree int `json:"degree"`
	Count  int `json:"count"`
}

// Distribution is the histogram of actor degrees from one target.
type Distribution struct {
	Target string `json:"target"`
	// Buckets covers degrees 0..max contiguously, zero counts included.
	Buckets []Bucket `json:"buckets"`
	// Total is the number of reachable actors, target included.
	Total int `json:"total"`
	// Mean is the average degree over all Total actors.
	Mean float64 `json:"mean"`
}

// Max returns the largest degree with a bucket.
func (d *Distribution) Max() int { return len(d.Buckets) - 1 }

// Count returns the number of actors at degree, 0 when out of range.
func (d *Distribution) Count(degree int) int {
	if degree < 0 || degree >= len(d.Buckets) {
		return 0
	}
	return d.Buckets[degree].Count
}

// Padded returns a copy of Buckets extended with empty bins up to at least n,
// so charts for different actors share an x-axis.
func (d *Distribution) Padded(n int) []Bucket {
	size := max(n, len(d.Buckets))
	out := make([]Bucket, size)
	copy(out, d.Buckets)
	for i := len(d.Buckets); i < size; i++ {
		out[i] = Bucket{Degree: i}
	}
	return out
}

// DistanceDistribution computes how many actors lie at each degree from
// target, and the mean degree.
//
// Steps:
//  1. Full BFS from Actor(target) (bounded by WithMaxDegree if given).
//  2. Keep even raw-hop depths: in a bipartite graph these are exactly the
//     actor vertices. Degree = depth / 2.
//  3. Bucket by degree; Mean = Σ degree / count.
//
// The target itself is always counted at degree 0.
// Complexity: O(V + E).
func DistanceDistribution(g *core.Graph, target string, opts ...Option) (*Distribution, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	src, err := requireActor(g, target)
	if err != nil {
		return nil, err
	}

	res, err := bfs.BFS(g, src, o.bfsOptions()...)
	if err != nil {
		return nil, err
	}

	var counts []int
	sum, total := 0, 0
	for _, depth := range res.Depth {
		if depth%2 != 0 {
			continue
		}
		deg := depth / 2
		for len(counts) <= deg {
			counts = append(counts, 0)
		}
		counts[deg]++
		sum += deg
		total++
	}
	if total == 0 {
		return nil, ErrEmptyDistribution
	}

	d := &Distribution{
		Target:  target,
		Buckets: make([]Bucket, len(counts)),
		Total:   total,
		Mean:    float64(sum) / float64(total),
	}
	for deg, n := range counts {
		d.Buckets[deg] = Bucket{Degree: deg, Count: n}
	}

	return d, nil
}
