package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sixdegrees/builder"
	"github.com/katalvlaran/sixdegrees/internal/config"
	"github.com/katalvlaran/sixdegrees/internal/logging"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	cfg        config.Config
	logger     *slog.Logger
	catalog    *builder.Catalog
}

// newRootCmd assembles the command tree writing to stdout/stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, cfg: config.Default()}

	root := &cobra.Command{
		Use:   "sixdegrees",
		Short: "Find how actors are connected through the movies they share",
		Long: `sixdegrees loads a movie/cast dataset into a bipartite graph and answers
"six degrees of Kevin Bacon" queries: the shortest chain of co-stars linking
two actors, and how far every other actor lies from a given one.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (missing file means defaults)")
	pf.String("dataset", a.cfg.Dataset, "movie data file, one Title/Cast 1/.../Cast N record per line ("+config.EnvDataset+")")
	pf.String("log-level", a.cfg.LogLevel, "debug, info, warn or error ("+config.EnvLogLevel+")")
	pf.String("log-format", a.cfg.LogFormat, "text or json ("+config.EnvLogFormat+")")
	pf.Bool("keep-empty-movies", a.cfg.KeepEmptyMovies, "list cast-less titles instead of skipping them ("+config.EnvKeepEmptyMovies+")")
	pf.Int("bins", a.cfg.Bins, "minimum histogram bins (degrees 0..bins-1)")
	pf.Int("max-degree", a.cfg.MaxDegree, "bound distribution traversals to this degree (0 = unbounded)")

	root.AddCommand(
		a.newPathCmd(),
		a.newDistCmd(),
		a.newRandomCmd(),
		a.newStatsCmd(),
		a.newServeCmd(),
	)
	return root
}

// setup resolves config (defaults → file → env → flags) and the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Resolve(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("dataset") {
		cfg.Dataset, _ = flags.GetString("dataset")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}
	if flags.Changed("keep-empty-movies") {
		cfg.KeepEmptyMovies, _ = flags.GetBool("keep-empty-movies")
	}
	if flags.Changed("bins") {
		cfg.Bins, _ = flags.GetInt("bins")
	}
	if flags.Changed("max-degree") {
		cfg.MaxDegree, _ = flags.GetInt("max-degree")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	lc := cfg.Logging("sixdegrees")
	lc.Output = a.stderr
	a.logger = logging.New(lc)
	return nil
}

// load builds the catalog from the configured dataset once per invocation.
func (a *app) load() (*builder.Catalog, error) {
	if a.catalog != nil {
		return a.catalog, nil
	}

	opts := []builder.Option{builder.WithLogger(a.logger)}
	if a.cfg.KeepEmptyMovies {
		opts = append(opts, builder.WithKeepEmptyMovies())
	}
	c, err := builder.LoadFile(a.cfg.Dataset, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}
	a.catalog = c
	return c, nil
}
