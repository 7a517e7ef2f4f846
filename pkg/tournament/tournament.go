// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tournament

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"laptudirm.com/x/knockout/pkg/tournament/games"
)

var (
	ErrProtocol = errors.New("protocol violation")
	ErrStarted  = errors.New("start tour: tournament already started")
)

// Option customizes a Tournament.
type Option func(*Tournament)

// WithSources sets the move source of every player. source is called once
// per player, before any player starts.
func WithSources(source func(player int) games.Source) Option {
	return func(tour *Tournament) {
		tour.sources = source
	}
}

// WithReporter adds progress reporters to the tournament.
func WithReporter(reporters ...Reporter) Option {
	return func(tour *Tournament) {
		tour.reporter = append(tour.reporter, reporters...)
	}
}

// WithLogger sets the logger the tournament and its players log to.
func WithLogger(log *logrus.Entry) Option {
	return func(tour *Tournament) {
		tour.log = log
	}
}

// NewTournament validates the config and provisions the shared state and
// the synchronization primitives of a tournament. No player is running
// until Start is called.
func NewTournament(config Config, options ...Option) (*Tournament, error) {
	config = config.Resolve()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var tour Tournament
	tour.Config = config
	tour.ID = uuid.New()
	tour.Scheduler = &Knockout{}
	tour.log = logrus.NewEntry(logrus.StandardLogger())
	tour.sources = func(player int) games.Source {
		if config.Seed != 0 {
			return games.NewRandom(config.Seed + uint64(player))
		}

		return games.NewRandom(rand.Uint64())
	}

	for _, option := range options {
		option(&tour)
	}

	tour.log = tour.log.WithFields(logrus.Fields{
		"tournament": tour.ID.String(),
		"name":       config.Name,
	})

	var err error
	tour.state = newState(config.Players)
	if tour.signals, err = newSignals(config.Players); err != nil {
		// nothing else holds resources yet
		return nil, err
	}

	tour.players = make([]*Player, config.Players)
	for i := range tour.players {
		tour.players[i] = &Player{
			Index:  i,
			Source: tour.sources(i),

			state:   tour.state,
			signals: tour.signals,
			log:     tour.log,
		}
	}

	return &tour, nil
}

// Tournament is a single-elimination tournament among Config.Players
// concurrently running players, each on its own goroutine.
type Tournament struct {
	Config Config
	ID     uuid.UUID

	Scheduler Scheduler

	state   *State
	signals *Signals
	players []*Player

	sources  func(int) games.Source
	reporter Reporters
	log      *logrus.Entry

	mu      sync.Mutex
	running bool
	spawned bool
	stopped bool
	cancel  context.CancelFunc
	group   *errgroup.Group

	teardownOnce sync.Once
	teardowns    atomic.Int32

	result Result
}

// Start runs the tournament to completion and returns its result. It
// returns early, with Result.Cancelled set, if ctx is cancelled or Stop is
// called. In every case all players have exited and every primitive has
// been released once Start returns.
func (tour *Tournament) Start(ctx context.Context) (Result, error) {
	tour.mu.Lock()
	if tour.running {
		tour.mu.Unlock()
		return Result{}, ErrStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tour.running = true
	tour.cancel = cancel
	tour.result = Result{
		Name:    tour.Config.Name,
		Players: tour.Config.Players,
		Winner:  None,
	}

	if tour.stopped || ctx.Err() != nil {
		// Cancelled before any player was spawned.
		tour.teardown()
		tour.mu.Unlock()
		return tour.cancelled(), nil
	}

	group, gctx := errgroup.WithContext(ctx)
	for _, player := range tour.players {
		group.Go(player.Play)
	}

	tour.group = group
	tour.spawned = true
	tour.mu.Unlock()

	tour.log.WithField("players", tour.Config.Players).Debug("players spawned")

	err := tour.bracket(gctx)
	werr := tour.teardown()

	switch {
	case werr != nil:
		tour.log.WithError(werr).Error("player failed")
		return tour.result, werr

	case err == nil:
		tour.reporter.Finished(tour.result)
		return tour.result, nil

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return tour.cancelled(), nil

	default:
		tour.log.WithError(err).Error("arbiter failed")
		return tour.result, err
	}
}

// Stop asks the tournament to stop. It is safe to call at any time and
// from any goroutine, any number of times.
func (tour *Tournament) Stop() {
	tour.mu.Lock()
	defer tour.mu.Unlock()

	tour.stopped = true
	if tour.cancel != nil {
		tour.cancel()
	}

	if !tour.spawned {
		// No player to unwind, only the primitives to release.
		tour.teardown()
	}
}

// Released reports whether the tournament's primitives have been released.
func (tour *Tournament) Released() bool {
	return tour.signals.Closed()
}

// State returns a snapshot of the shared tournament state.
func (tour *Tournament) State() Snapshot {
	return tour.state.Snapshot()
}

func (tour *Tournament) cancelled() Result {
	tour.result.Cancelled = true
	tour.result.Winner = None
	tour.reporter.Finished(tour.result)
	return tour.result
}

// teardown marks the tournament finished, wakes every player so it can
// observe that, waits for all of them to exit, and releases the
// primitives. Only the first call does anything; it returns the first
// error returned by a player.
func (tour *Tournament) teardown() (err error) {
	tour.teardownOnce.Do(func() {
		tour.teardowns.Add(1)
		tour.log.Debug("tearing down tournament")

		tour.state.Cancel()
		tour.signals.Broadcast()

		if tour.group != nil {
			err = tour.group.Wait()
		}

		tour.signals.Close()
	})

	return err
}
