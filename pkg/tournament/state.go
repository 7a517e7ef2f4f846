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
	"sync"

	"laptudirm.com/x/knockout/pkg/tournament/games"
)

// None marks an unset participant reference, like a missing opponent or a
// tournament which has no winner yet.
const None = -1

// State is the single mutable record shared by the arbiter and every
// player. All of its fields are guarded by mu; every method below is one
// critical section.
type State struct {
	mu sync.Mutex

	totalPlayers int

	moves    []games.Move
	opponent []int
	inGame   []bool

	roundWinners []int
	currentRound int

	winner   int
	finished bool
}

func newState(players int) *State {
	state := State{
		totalPlayers: players,

		moves:    make([]games.Move, players),
		opponent: make([]int, players),
		inGame:   make([]bool, players),

		roundWinners: make([]int, 0, players),
		currentRound: 1,

		winner: None,
	}

	for i := 0; i < players; i++ {
		state.moves[i] = games.NoMove
		state.opponent[i] = None
		state.inGame[i] = true
	}

	return &state
}

// Draw is called by a player after it has been activated. If the player
// should keep playing it draws a move from source, publishes it, and
// returns true. It returns false if the tournament has finished or the
// player has been eliminated, in which case nothing is published.
func (state *State) Draw(player int, source games.Source) (games.Move, bool) {
	state.mu.Lock()
	defer state.mu.Unlock()

	if state.finished || !state.inGame[player] {
		return games.NoMove, false
	}

	move := source.Next()
	state.moves[player] = move
	return move, true
}

// BeginRound clears the winners of the last round and moves the round
// counter to round.
func (state *State) BeginRound(round int) {
	state.mu.Lock()
	defer state.mu.Unlock()

	state.roundWinners = state.roundWinners[:0]
	state.currentRound = round
}

// Advance appends a player to the current round's winners.
func (state *State) Advance(player int) {
	state.mu.Lock()
	defer state.mu.Unlock()

	state.roundWinners = append(state.roundWinners, player)
}

// Pair records p1 and p2 as each other's opponents.
func (state *State) Pair(p1, p2 int) {
	state.mu.Lock()
	defer state.mu.Unlock()

	state.opponent[p1] = p2
	state.opponent[p2] = p1
}

// Consume reads the moves published by p1 and p2 and resets them to
// games.NoMove so a stale move can never be read twice.
func (state *State) Consume(p1, p2 int) (games.Move, games.Move) {
	state.mu.Lock()
	defer state.mu.Unlock()

	m1, m2 := state.moves[p1], state.moves[p2]
	state.moves[p1], state.moves[p2] = games.NoMove, games.NoMove
	return m1, m2
}

// Eliminate knocks loser out of the tournament and advances winner to the
// next round as a single state transition.
func (state *State) Eliminate(winner, loser int) {
	state.mu.Lock()
	defer state.mu.Unlock()

	state.inGame[loser] = false
	state.opponent[winner], state.opponent[loser] = None, None
	state.roundWinners = append(state.roundWinners, winner)
}

// RoundWinners returns a copy of the players advancing from this round.
func (state *State) RoundWinners() []int {
	state.mu.Lock()
	defer state.mu.Unlock()

	winners := make([]int, len(state.roundWinners))
	copy(winners, state.roundWinners)
	return winners
}

// Finish crowns the winner of the tournament. It returns false if the
// tournament had already finished.
func (state *State) Finish(winner int) bool {
	state.mu.Lock()
	defer state.mu.Unlock()

	if state.finished {
		return false
	}

	state.winner = winner
	state.finished = true
	return true
}

// Cancel finishes the tournament without a winner. It is a no-op if the
// tournament has already finished.
func (state *State) Cancel() {
	state.mu.Lock()
	defer state.mu.Unlock()

	state.finished = true
}

// Snapshot is a consistent copy of the State, taken in a single critical
// section.
type Snapshot struct {
	TotalPlayers int
	Moves        []games.Move
	Opponent     []int
	InGame       []bool
	RoundWinners []int
	CurrentRound int
	Winner       int
	Finished     bool
}

// Snapshot copies the whole State.
func (state *State) Snapshot() Snapshot {
	state.mu.Lock()
	defer state.mu.Unlock()

	return Snapshot{
		TotalPlayers: state.totalPlayers,
		Moves:        append([]games.Move(nil), state.moves...),
		Opponent:     append([]int(nil), state.opponent...),
		InGame:       append([]bool(nil), state.inGame...),
		RoundWinners: append([]int(nil), state.roundWinners...),
		CurrentRound: state.currentRound,
		Winner:       state.winner,
		Finished:     state.finished,
	}
}
