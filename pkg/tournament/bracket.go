// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
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
	"fmt"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/knockout/pkg/tournament/games"
)

// bracket runs rounds until a single player is left. Every round starts
// with the winners of the previous one; the number of rounds is never
// fixed up front.
func (tour *Tournament) bracket(ctx context.Context) error {
	active := make([]int, tour.Config.Players)
	for i := range active {
		active[i] = i
	}

	for round := 1; len(active) > 1; round++ {
		tour.state.BeginRound(round)
		tour.result.Rounds = round

		tour.Scheduler.Initialize(active)
		bye, hasBye := tour.Scheduler.Bye()
		pairs := Encounters(tour.Scheduler)

		tour.log.WithFields(logrus.Fields{
			"round":   round,
			"active":  len(active),
			"matches": len(pairs),
		}).Debug("round paired")
		tour.reporter.RoundStarted(round, pairs, bye)

		if hasBye {
			tour.state.Advance(bye)
		}

		for _, pair := range pairs {
			if err := tour.match(ctx, round, pair); err != nil {
				return err
			}
		}

		winners := tour.state.RoundWinners()
		if want := (len(active) + 1) / 2; len(winners) != want {
			return fmt.Errorf("%w: round %d: %d players advanced, want %d",
				ErrProtocol, round, len(winners), want)
		}

		active = winners
	}

	tour.state.Finish(active[0])
	tour.result.Winner = active[0]
	return nil
}

// match plays p1 against p2 until one of them wins. Ties are replayed
// between the same two players for as long as they keep happening.
func (tour *Tournament) match(ctx context.Context, round int, pair Pair) error {
	p1, p2 := pair.Player1, pair.Player2
	tour.state.Pair(p1, p2)

	for replay := 0; ; replay++ {
		tour.signals.Activate(p1)
		tour.signals.Activate(p2)

		// Either player may submit first.
		if err := tour.signals.WaitSubmitted(ctx, 2); err != nil {
			return err
		}

		m1, m2 := tour.state.Consume(p1, p2)
		if !m1.Valid() || !m2.Valid() {
			return fmt.Errorf("%w: round %d: players %d and %d submitted %s and %s",
				ErrProtocol, round, p1+1, p2+1, m1, m2)
		}

		score := games.Referee(m1, m2)
		tour.reporter.MatchPlayed(round, Attempt{
			Pair:   pair,
			Replay: replay,
			Moves:  [2]games.Move{m1, m2},
			Score:  score,
		})

		if !score.Decisive() {
			tour.result.Replays++
			continue
		}

		players := [2]int{p1, p2}
		winner := score.Winner()
		tour.state.Eliminate(players[winner], players[1-winner])
		tour.result.Matches++
		return nil
	}
}
