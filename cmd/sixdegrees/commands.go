package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sixdegrees/builder"
	"github.com/katalvlaran/sixdegrees/internal/server"
	"github.com/katalvlaran/sixdegrees/separation"
)

// errEmptyInput is returned when an actor argument is blank.
var errEmptyInput = errors.New("actor names must not be empty")

// actorArgs trims args and rejects blanks.
func actorArgs(args []string) ([]string, error) {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = strings.TrimSpace(a)
		if out[i] == "" {
			return nil, errEmptyInput
		}
	}
	return out, nil
}

// explain turns query errors into the messages users act on.
func explain(err error) error {
	switch {
	case errors.Is(err, separation.ErrNodeNotFound):
		return fmt.Errorf("%w (check spelling)", err)
	case errors.Is(err, separation.ErrNoPath):
		return fmt.Errorf("no connection found: %w", err)
	default:
		return err
	}
}

func (a *app) newPathCmd() *cobra.Command {
	var noDist bool
	cmd := &cobra.Command{
		Use:   "path ACTOR1 ACTOR2",
		Short: "Show the shortest chain of movies linking two actors",
		Example: `  sixdegrees path "Kevin Bacon" "Tom Holland"
  sixdegrees path --no-dist "Kevin Bacon" "Meryl Streep"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := actorArgs(args)
			if err != nil {
				return err
			}
			c, err := a.load()
			if err != nil {
				return err
			}
			return a.compare(cmd.Context(), c, names[0], names[1], !noDist)
		},
	}
	cmd.Flags().BoolVar(&noDist, "no-dist", false, "skip the two distance distributions")
	return cmd
}

func (a *app) newDistCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dist ACTOR",
		Short: "Show how many actors lie at each degree from ACTOR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := actorArgs(args)
			if err != nil {
				return err
			}
			c, err := a.load()
			if err != nil {
				return err
			}
			d, err := a.distribution(cmd.Context(), c, names[0])
			if err != nil {
				return explain(err)
			}
			renderDistribution(a.stdout, d, a.cfg.Bins)
			return nil
		},
	}
}

func (a *app) newRandomCmd() *cobra.Command {
	var (
		seed   uint64
		noDist bool
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Pick two actors at random and show how they are connected",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.load()
			if err != nil {
				return err
			}
			if len(c.Actors) < 2 {
				return fmt.Errorf("dataset has %d actors, need at least 2", len(c.Actors))
			}
			s := seed
			if s == 0 {
				s = rand.Uint64()
			}
			a.logger.Debug("sampling actors", "seed", s)
			pair := c.RandomActors(rand.New(rand.NewPCG(s, s)), 2)

			fmt.Fprintf(a.stdout, "Actors selected: %s & %s\n", pair[0], pair[1])
			err = a.compare(cmd.Context(), c, pair[0], pair[1], !noDist)
			if errors.Is(err, separation.ErrNoPath) {
				// Disconnected pairs are a normal outcome of random sampling.
				fmt.Fprintln(a.stdout, "No connection found.")
				return nil
			}
			return err
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().BoolVar(&noDist, "no-dist", false, "skip the two distance distributions")
	return cmd
}

func (a *app) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print dataset and graph sizes",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := a.load()
			if err != nil {
				return err
			}
			sum := c.Summary()
			fmt.Fprintf(a.stdout, "movies:  %d\n", sum.Movies)
			fmt.Fprintf(a.stdout, "titles:  %d\n", sum.Titles)
			fmt.Fprintf(a.stdout, "actors:  %d\n", sum.Actors)
			fmt.Fprintf(a.stdout, "edges:   %d\n", sum.Edges)
			fmt.Fprintf(a.stdout, "skipped: %d\n", sum.Skipped)
			return nil
		},
	}
}

func (a *app) newServeCmd() *cobra.Command {
	var (
		addr string
		seed uint64
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve separation queries over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Addr = addr
			}
			c, err := a.load()
			if err != nil {
				return err
			}
			srv, err := server.New(c, server.Options{
				Logger:    a.logger,
				Bins:      a.cfg.Bins,
				MaxDegree: a.cfg.MaxDegree,
				Seed:      seed,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx, a.cfg.Addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config or SIXDEGREES_ADDR)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for /v1/actors/random (0 picks one)")
	return cmd
}

// compare prints the path between two actors and, when withDist is set, both
// distance distributions computed concurrently.
func (a *app) compare(ctx context.Context, c *builder.Catalog, from, to string, withDist bool) error {
	p, err := separation.ShortestActorPath(c.Graph, from, to, separation.WithContext(ctx))
	if err != nil {
		return explain(err)
	}
	renderPath(a.stdout, p)
	if !withDist {
		return nil
	}

	var dists [2]*separation.Distribution
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range []string{from, to} {
		g.Go(func() error {
			d, err := a.distribution(gctx, c, name)
			if err != nil {
				return err
			}
			dists[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return explain(err)
	}

	fmt.Fprintln(a.stdout, "A score of 1 means two actors share a movie, 2 means one actor connects them, and so on.")
	for _, d := range dists {
		fmt.Fprintln(a.stdout)
		renderDistribution(a.stdout, d, a.cfg.Bins)
	}
	return nil
}

func (a *app) distribution(ctx context.Context, c *builder.Catalog, name string) (*separation.Distribution, error) {
	return separation.DistanceDistribution(c.Graph, name,
		separation.WithContext(ctx),
		separation.WithMaxDegree(a.cfg.MaxDegree))
}
