package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sixdegrees/dataset"
	"github.com/katalvlaran/sixdegrees/internal/config"
	"github.com/katalvlaran/sixdegrees/separation"
)

const testData = `Patriots Day (2016)/Mark Wahlberg/Kevin Bacon/Michelle Monaghan/Mark Falvo
Captain America: Civil War (2016)/Chris Evans/Mark Falvo/Tom Holland
Face|Off (1997)/John Travolta/Nicolas Cage
Empty Movie (1990)
`

// run executes the CLI against a temporary copy of testData.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return runEnv(t, nil, args...)
}

// runEnv is run with env applied over a cleared SIXDEGREES_* environment.
func runEnv(t *testing.T, env map[string]string, args ...string) (string, string, error) {
	t.Helper()
	for _, k := range []string{config.EnvDataset, config.EnvAddr, config.EnvLogLevel, config.EnvLogFormat, config.EnvKeepEmptyMovies} {
		t.Setenv(k, env[k])
	}
	path := filepath.Join(t.TempDir(), "movies.txt")
	require.NoError(t, os.WriteFile(path, []byte(testData), 0o600))

	var stdout, stderr bytes.Buffer
	root := newRootCmd(&stdout, &stderr)
	root.SetArgs(append([]string{"--dataset", path}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestPathCommand(t *testing.T) {
	out, _, err := run(t, "path", "Kevin Bacon", "Tom Holland")
	require.NoError(t, err)

	assert.Contains(t, out, "Kevin Bacon\n  └─ Patriots Day (2016)\nMark Falvo\n  └─ Captain America: Civil War (2016)\nTom Holland\nScore: 2\n")
	assert.Contains(t, out, "relative to Kevin Bacon (6 reachable)")
	assert.Contains(t, out, "relative to Tom Holland (6 reachable)")
	assert.Equal(t, 2, strings.Count(out, "mean: "))
}

func TestPathCommand_NoDist(t *testing.T) {
	out, _, err := run(t, "path", "--no-dist", "Kevin Bacon", "Kevin Bacon")
	require.NoError(t, err)
	assert.Equal(t, "Kevin Bacon\nScore: 0\n", out)
}

func TestPathCommand_Errors(t *testing.T) {
	_, _, err := run(t, "path", "Kevin Bacon", "Tom Hollnd")
	require.ErrorIs(t, err, separation.ErrNodeNotFound)
	assert.Contains(t, err.Error(), "check spelling")

	_, _, err = run(t, "path", "Kevin Bacon", "Nicolas Cage")
	require.ErrorIs(t, err, separation.ErrNoPath)
	assert.Contains(t, err.Error(), "no connection found")

	_, _, err = run(t, "path", " ", "Tom Holland")
	require.ErrorIs(t, err, errEmptyInput)

	_, _, err = run(t, "path", "Kevin Bacon")
	require.Error(t, err)
}

func TestDistCommand(t *testing.T) {
	out, _, err := run(t, "dist", "--bins", "4", "Mark Falvo")
	require.NoError(t, err)

	// Mark Falvo shares a movie with every other connected actor.
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "  0        1 "+strings.Repeat("█", barWidth/5), lines[1])
	assert.Equal(t, "  1        5 "+strings.Repeat("█", barWidth), lines[2])
	assert.Equal(t, "  3        0", lines[4])
	assert.Equal(t, "mean: 0.83", lines[5])
}

func TestRandomCommand_Seeded(t *testing.T) {
	first, _, err := run(t, "random", "--seed", "7", "--no-dist")
	require.NoError(t, err)
	second, _, err := run(t, "random", "--seed", "7", "--no-dist")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "Actors selected: "))
	assert.True(t, strings.Contains(first, "Score: ") || strings.Contains(first, "No connection found."))
}

func TestStatsCommand(t *testing.T) {
	out, stderr, err := run(t, "stats")
	require.NoError(t, err)
	assert.Equal(t, "movies:  3\ntitles:  3\nactors:  8\nedges:   9\nskipped: 1\n", out)
	assert.Contains(t, stderr, "skipping movie without cast")

	// A kept empty-cast title joins the movie set but never the graph.
	out, _, err = run(t, "stats", "--keep-empty-movies")
	require.NoError(t, err)
	assert.Equal(t, "movies:  3\ntitles:  4\nactors:  8\nedges:   9\nskipped: 0\n", out)
}

func TestConfigErrors(t *testing.T) {
	_, _, err := run(t, "stats", "--log-format", "xml")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = run(t, "stats", "--dataset", filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, dataset.ErrFileLoad)
}

func TestConfig_FlagOverridesBadEnv(t *testing.T) {
	_, _, err := runEnv(t, map[string]string{config.EnvLogLevel: "verbose"}, "stats", "--log-level", "debug")
	require.NoError(t, err)

	_, _, err = runEnv(t, map[string]string{config.EnvLogLevel: "verbose"}, "stats")
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestRenderPath_DisplayTitle(t *testing.T) {
	var buf bytes.Buffer
	renderPath(&buf, &separation.Path{
		Actors: []string{"John Travolta", "Nicolas Cage"},
		Movies: []string{"Face|Off (1997)"},
		Degree: 1,
	})
	assert.Equal(t, "John Travolta\n  └─ Face/Off (1997)\nNicolas Cage\nScore: 1\n", buf.String())
}

func TestRenderDistribution_SmallBarsVisible(t *testing.T) {
	d := &separation.Distribution{
		Target:  "X",
		Buckets: []separation.Bucket{{Degree: 0, Count: 1}, {Degree: 1, Count: 1000}},
		Total:   1001,
		Mean:    1000.0 / 1001,
	}
	var buf bytes.Buffer
	renderDistribution(&buf, d, 2)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "  0        1 █", lines[1])
	assert.Equal(t, "mean: 1.00", lines[3])
}
