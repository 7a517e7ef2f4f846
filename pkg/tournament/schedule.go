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

import "math/bits"

// Scheduler decides the encounters of a single round from the players
// still active in it.
type Scheduler interface {
	Initialize(active []int)
	Bye() (int, bool)
	NextEncounter() (int, int)
	TotalEncounters() int
}

// Knockout pairs active players in order, (a[0], a[1]), (a[2], a[3]),
// and so on. When the number of players is odd the last one gets a bye.
// The bye rule is fixed and deterministic; it is not a seeding strategy.
type Knockout struct {
	active    []int
	encounter int
}

func (ko *Knockout) Initialize(active []int) {
	ko.active = active
	ko.encounter = 0
}

// Bye returns the player advancing without a match this round, if any.
func (ko *Knockout) Bye() (int, bool) {
	if len(ko.active)%2 == 0 {
		return None, false
	}

	return ko.active[len(ko.active)-1], true
}

func (ko *Knockout) NextEncounter() (int, int) {
	p1, p2 := ko.active[2*ko.encounter], ko.active[2*ko.encounter+1]
	ko.encounter++
	return p1, p2
}

func (ko *Knockout) TotalEncounters() int {
	return len(ko.active) / 2
}

// Pair is an encounter between two players.
type Pair struct {
	Player1, Player2 int
}

// Encounters drains the scheduler's encounters for the current round.
func Encounters(scheduler Scheduler) []Pair {
	pairs := make([]Pair, scheduler.TotalEncounters())
	for i := range pairs {
		pairs[i].Player1, pairs[i].Player2 = scheduler.NextEncounter()
	}

	return pairs
}

// ExpectedRounds is the number of rounds a knockout among n players takes,
// ceil(log2(n)). It is informational; the arbiter only stops once a
// single player is left.
func ExpectedRounds(n int) int {
	if n <= 1 {
		return 0
	}

	return bits.Len(uint(n - 1))
}
