package tournament

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/knockout/pkg/tournament/games"
)

func TestMetricsReporter(t *testing.T) {
	metrics := NewMetrics()

	tour := newTestTournament(t, 3, map[int]games.Source{
		0: games.Sequence(games.Rock, games.Rock),
		1: games.Sequence(games.Rock, games.Scissors),
		2: games.Sequence(games.Paper),
	}, WithReporter(metrics))

	result, err := tour.Start(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, result.Winner)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.rounds))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.byes))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.matches))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.attempts.WithLabelValues("1/2-1/2")))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.attempts.WithLabelValues("1-0")))
	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.winner))

	// round one: rock/rock then rock/scissors, round two: paper/rock
	assert.Equal(t, 4.0, testutil.ToFloat64(metrics.moves.WithLabelValues("rock")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.moves.WithLabelValues("scissors")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.moves.WithLabelValues("paper")))

	count, err := testutil.GatherAndCount(metrics.Registry)
	require.NoError(t, err)
	assert.Positive(t, count)
}

func TestMetricsCancelled(t *testing.T) {
	metrics := NewMetrics()
	metrics.Finished(Result{Cancelled: true, Winner: None})
	assert.Equal(t, -1.0, testutil.ToFloat64(metrics.winner))
}
