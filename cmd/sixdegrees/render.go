package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/sixdegrees/dataset"
	"github.com/katalvlaran/sixdegrees/separation"
)

// barWidth is the length of the longest histogram bar.
const barWidth = 40

// renderPath prints the alternating actor/movie chain and the score.
//
//	Kevin Bacon
//	  └─ Patriots Day (2016)
//	Mark Falvo
//	  └─ Captain America: Civil War (2016)
//	Tom Holland
//	Score: 2
func renderPath(w io.Writer, p *separation.Path) {
	for i, actor := range p.Actors {
		fmt.Fprintln(w, actor)
		if i < len(p.Movies) {
			fmt.Fprintf(w, "  └─ %s\n", dataset.DisplayTitle(p.Movies[i]))
		}
	}
	fmt.Fprintf(w, "Score: %d\n", p.Degree)
}

// renderDistribution prints a text histogram over at least bins degrees with
// the mean annotated below it.
func renderDistribution(w io.Writer, d *separation.Distribution, bins int) {
	buckets := d.Padded(bins)

	peak := 0
	for _, b := range buckets {
		peak = max(peak, b.Count)
	}

	fmt.Fprintf(w, "Score of every actor relative to %s (%d reachable)\n", d.Target, d.Total)
	for _, b := range buckets {
		bar := 0
		if peak > 0 {
			bar = b.Count * barWidth / peak
			if b.Count > 0 && bar == 0 {
				bar = 1
			}
		}
		line := fmt.Sprintf("%3d %8d %s", b.Degree, b.Count, strings.Repeat("█", bar))
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
	fmt.Fprintf(w, "mean: %.2f\n", d.Mean)
}
