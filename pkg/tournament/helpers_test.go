package tournament

import (
	"io"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/knockout/pkg/tournament/games"
)

// quietLogger discards everything the tournament logs.
func quietLogger() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}

// newTestTournament creates a tournament where the players listed in
// scripts play the given sources and everyone else plays randomly with a
// fixed seed.
func newTestTournament(t *testing.T, players int, scripts map[int]games.Source, options ...Option) *Tournament {
	t.Helper()

	options = append([]Option{
		WithLogger(quietLogger()),
		WithSources(func(player int) games.Source {
			if source, found := scripts[player]; found {
				return source
			}
			return games.NewRandom(uint64(player) + 1)
		}),
	}, options...)

	tour, err := NewTournament(Config{Name: "test", Players: players}, options...)
	require.NoError(t, err)
	return tour
}

type recordedRound struct {
	round int
	pairs []Pair
	bye   int
}

type recordedAttempt struct {
	round   int
	attempt Attempt

	// state as seen when the attempt was reported, before the arbiter
	// applied its result
	state Snapshot
}

// recorder is a Reporter which keeps every event, with a snapshot of the
// shared state taken at each attempt.
type recorder struct {
	mu sync.Mutex

	tour *Tournament

	rounds   []recordedRound
	attempts []recordedAttempt
	finished []Result

	onRound   func(round int)
	onAttempt func(n int)
}

func (rec *recorder) RoundStarted(round int, pairs []Pair, bye int) {
	rec.mu.Lock()
	rec.rounds = append(rec.rounds, recordedRound{round, append([]Pair(nil), pairs...), bye})
	hook := rec.onRound
	rec.mu.Unlock()

	if hook != nil {
		hook(round)
	}
}

func (rec *recorder) MatchPlayed(round int, attempt Attempt) {
	var state Snapshot
	if rec.tour != nil {
		state = rec.tour.State()
	}

	rec.mu.Lock()
	rec.attempts = append(rec.attempts, recordedAttempt{round, attempt, state})
	n, hook := len(rec.attempts), rec.onAttempt
	rec.mu.Unlock()

	if hook != nil {
		hook(n)
	}
}

func (rec *recorder) Finished(result Result) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.finished = append(rec.finished, result)
}

// record attaches a new recorder to an existing tournament.
func record(tour *Tournament) *recorder {
	rec := &recorder{tour: tour}
	tour.reporter = append(tour.reporter, rec)
	return rec
}
