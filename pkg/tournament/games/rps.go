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
	"fmt"
	"strings"

	"laptudirm.com/x/knockout/pkg/tournament/common"
)

// Move is a single throw of rock-paper-scissors.
type Move int8

const (
	Rock Move = iota
	Scissors
	Paper

	// MoveN is the size of the move alphabet.
	MoveN = 3

	// NoMove marks a participant which has not published a move yet, or
	// whose last move was already consumed by the arbiter.
	NoMove Move = -1
)

// beats[a] is the move a wins against.
var beats = [MoveN]Move{
	Rock:     Scissors,
	Scissors: Paper,
	Paper:    Rock,
}

// Referee decides a single attempt of a match between two moves. It is
// pure and total over the move alphabet.
func Referee(a, b Move) common.Score {
	switch {
	case a == b:
		return common.Tie
	case beats[a] == b:
		return common.Player1Wins
	default:
		return common.Player2Wins
	}
}

// Valid reports whether the move belongs to the alphabet.
func (move Move) Valid() bool {
	return move >= Rock && move < MoveN
}

func (move Move) String() string {
	switch move {
	case Rock:
		return "rock"
	case Scissors:
		return "scissors"
	case Paper:
		return "paper"
	case NoMove:
		return "-"
	default:
		return "?"
	}
}

// ParseMove parses the name of a move, ignoring case. The single letter
// abbreviations r, s, and p are also accepted.
func ParseMove(str string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "rock", "r":
		return Rock, nil
	case "scissors", "s":
		return Scissors, nil
	case "paper", "p":
		return Paper, nil
	default:
		return NoMove, fmt.Errorf("parse move: invalid move %q", str)
	}
}
