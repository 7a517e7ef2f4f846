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

package games

import (
	"math/rand/v2"
	"sync"
)

// Source produces the moves of a single participant. Every call to Next
// is one throw; sources are never shared between participants.
type Source interface {
	Next() Move
}

// NewRandom returns a Source which draws moves uniformly from the alphabet
// using its own generator seeded with seed.
func NewRandom(seed uint64) *Random {
	return &Random{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Random is a uniformly distributed move source.
type Random struct {
	rng *rand.Rand
}

func (random *Random) Next() Move {
	return Move(random.rng.IntN(MoveN))
}

// Sequence returns a Source which cycles through the given moves in order.
// It is used to script the outcome of matches.
func Sequence(moves ...Move) *Scripted {
	if len(moves) == 0 {
		panic("sequence: no moves")
	}

	return &Scripted{moves: moves}
}

// Scripted is a Source replaying a fixed list of moves.
type Scripted struct {
	mu    sync.Mutex
	moves []Move
	next  int
	drawn int
}

func (script *Scripted) Next() Move {
	script.mu.Lock()
	defer script.mu.Unlock()

	move := script.moves[script.next]
	script.next = (script.next + 1) % len(script.moves)
	script.drawn++
	return move
}

// Drawn returns the number of moves handed out so far.
func (script *Scripted) Drawn() int {
	script.mu.Lock()
	defer script.mu.Unlock()
	return script.drawn
}

// SourceFunc adapts an ordinary function into a Source.
type SourceFunc func() Move

func (fn SourceFunc) Next() Move {
	return fn()
}
