package main

import (
	"io"
	"log"
	"testing"

	"github.com/golangdaddy/lanerush/pkg/autopilot"
	"github.com/golangdaddy/lanerush/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = log.New(io.Discard, "", 0)

func TestCautiousRunSurvives(t *testing.T) {
	cfg := config.Default()
	reports, err := simulate(cfg, options{frames: 3600, runs: 1, seed: 7, pilot: autopilot.Cautious}, quiet)
	require.NoError(t, err)
	require.Len(t, reports, 1)

	rep := reports[0]
	assert.False(t, rep.Crashed)
	assert.Equal(t, 3600, rep.Frames)
	// one minute of play at ten points a second
	assert.InDelta(t, 600, rep.Score, 1)
	assert.Equal(t, cfg.MaxEnemies, rep.Enemies)
	assert.GreaterOrEqual(t, rep.MinGap, cfg.SafeGap)
}

func TestRestartedRunsKeepGaps(t *testing.T) {
	cfg := config.Default()
	cfg.Difficulty = "hard"
	reports, err := simulate(cfg, options{frames: 2000, runs: 3, seed: 11, pilot: autopilot.Reckless}, quiet)
	require.NoError(t, err)
	require.Len(t, reports, 3)

	for i, rep := range reports {
		assert.GreaterOrEqual(t, rep.MinGap, cfg.SafeGap, "run %d", i+1)
		assert.LessOrEqual(t, rep.Frames, 2000)
		total := rep.Moves[autopilot.Left] + rep.Moves[autopilot.Right] + rep.Moves[autopilot.Hold]
		assert.Equal(t, rep.Frames, total, "one decision per frame")
		if !rep.Crashed {
			assert.Equal(t, 2000, rep.Frames)
		}
	}
}

func TestSurvivedRunsStartFreshSessions(t *testing.T) {
	cfg := config.Default()
	reports, err := simulate(cfg, options{frames: 300, runs: 3, seed: 5, pilot: autopilot.Cautious}, quiet)
	require.NoError(t, err)
	require.Len(t, reports, 3)

	for i, rep := range reports {
		assert.False(t, rep.Crashed, "run %d", i+1)
		assert.Equal(t, 300, rep.Frames)
		// five seconds at ten points a second, each run from zero
		assert.InDelta(t, 50, rep.Score, 1)
	}
}

func TestSimulateRejectsZeroRuns(t *testing.T) {
	_, err := simulate(config.Default(), options{frames: 10}, quiet)
	assert.Error(t, err)
}
