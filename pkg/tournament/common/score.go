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

package common

// Score is the referee's decision for a single attempt of a match.
type Score int

const (
	Player1Wins Score = +1
	Tie         Score = 0
	Player2Wins Score = -1
)

// GameLostBy maps the losing side of a match to its Score.
var GameLostBy = [2]Score{
	0: Player2Wins,
	1: Player1Wins,
}

// Decisive reports whether the score ends a match.
func (score Score) Decisive() bool {
	return score == Player1Wins || score == Player2Wins
}

// Winner returns the index (0 or 1) of the side that won the match. It
// panics on a tie, which has no winner.
func (score Score) Winner() int {
	switch score {
	case Player1Wins:
		return 0
	case Player2Wins:
		return 1
	default:
		panic("score: tie has no winner")
	}
}

func (score Score) String() string {
	switch score {
	case Player1Wins:
		return "1-0"
	case Tie:
		return "1/2-1/2"
	case Player2Wins:
		return "0-1"
	default:
		return "?-?"
	}
}
