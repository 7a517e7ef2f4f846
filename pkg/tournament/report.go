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
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/knockout/pkg/tournament/common"
	"laptudirm.com/x/knockout/pkg/tournament/games"
)

// Reporter observes the progress of a tournament. Reporters are called
// from the arbiter's goroutine only and have no influence on the bracket.
type Reporter interface {
	// RoundStarted is called once the round's pairings are known. bye is
	// None if every player in the round has an opponent.
	RoundStarted(round int, pairs []Pair, bye int)

	// MatchPlayed is called for every attempt of a match, ties included.
	MatchPlayed(round int, attempt Attempt)

	// Finished is called once with the outcome of the tournament.
	Finished(result Result)
}

// Attempt is one exchange of moves inside a match.
type Attempt struct {
	Pair

	// Replay is zero for the first attempt and counts the ties before it.
	Replay int

	Moves [2]games.Move
	Score common.Score
}

// Winner returns the player who won the attempt, or None on a tie.
func (attempt Attempt) Winner() int {
	switch attempt.Score {
	case common.Player1Wins:
		return attempt.Player1
	case common.Player2Wins:
		return attempt.Player2
	default:
		return None
	}
}

// Result is the outcome of a whole tournament.
type Result struct {
	Name    string
	Players int

	// Winner of the tournament, None if it was cancelled.
	Winner int

	Rounds  int
	Matches int
	Replays int

	Cancelled bool
}

func (result Result) String() string {
	if result.Cancelled {
		return fmt.Sprintf("%s cancelled after %d matches", result.Name, result.Matches)
	}

	return fmt.Sprintf("Player %d wins %s in %d rounds", result.Winner+1, result.Name, result.Rounds)
}

// Reporters fans every event out to a list of reporters.
type Reporters []Reporter

func (reporters Reporters) RoundStarted(round int, pairs []Pair, bye int) {
	for _, reporter := range reporters {
		reporter.RoundStarted(round, pairs, bye)
	}
}

func (reporters Reporters) MatchPlayed(round int, attempt Attempt) {
	for _, reporter := range reporters {
		reporter.MatchPlayed(round, attempt)
	}
}

func (reporters Reporters) Finished(result Result) {
	for _, reporter := range reporters {
		reporter.Finished(result)
	}
}

// NewLogReporter returns a Reporter which logs every event and writes the
// final summary table to out.
func NewLogReporter(log *logrus.Entry, out io.Writer) *LogReporter {
	return &LogReporter{log: log, out: out}
}

// LogReporter is the console progress reporter. Players are shown
// 1-indexed.
type LogReporter struct {
	log *logrus.Entry
	out io.Writer
}

func (reporter *LogReporter) RoundStarted(round int, pairs []Pair, bye int) {
	reporter.log.Infof("\x1b[33mStarting\x1b[0m Round #%d: %d matches", round, len(pairs))

	if bye != None {
		reporter.log.Infof("Round #%d: Player %d advances with a bye", round, bye+1)
	}
}

func (reporter *LogReporter) MatchPlayed(round int, attempt Attempt) {
	prefix := fmt.Sprintf(
		"Round #%d: Player %d (%s) vs Player %d (%s)",
		round,
		attempt.Player1+1, attempt.Moves[0],
		attempt.Player2+1, attempt.Moves[1],
	)

	if !attempt.Score.Decisive() {
		reporter.log.Infof("%s: \x1b[33mtie\x1b[0m, replaying", prefix)
		return
	}

	reporter.log.Infof("\x1b[32mFinished\x1b[0m %s: Player %d wins (%s)", prefix, attempt.Winner()+1, attempt.Score)
}

func (reporter *LogReporter) Finished(result Result) {
	if result.Cancelled {
		reporter.log.Warn(result.String())
	} else {
		reporter.log.Info(result.String())
	}

	lines := []string{
		fmt.Sprintf("║ EVENT   | %s", result.Name),
		fmt.Sprintf("║ PLAYERS | %d", result.Players),
		fmt.Sprintf("║ ROUNDS  | %d (expected %d)", result.Rounds, ExpectedRounds(result.Players)),
		fmt.Sprintf("║ MATCHES | %d (%d replays)", result.Matches, result.Replays),
	}

	if result.Cancelled {
		lines = append(lines, "║ WINNER  | \x1b[31mcancelled\x1b[0m")
	} else {
		lines = append(lines, fmt.Sprintf("║ WINNER  | \x1b[32mPlayer %d\x1b[0m", result.Winner+1))
	}

	var table strings.Builder
	table.WriteString("╔═════════════════════════════════════════════════╗\n")
	for _, line := range lines {
		// pad by visible width, ignoring the colour escapes
		width := len([]rune(stripEscapes(line)))
		table.WriteString(line + strings.Repeat(" ", max(0, 50-width)) + "║\n")
	}
	table.WriteString("╚═════════════════════════════════════════════════╝\n")

	_, _ = io.WriteString(reporter.out, table.String())
}

func stripEscapes(str string) string {
	var out strings.Builder
	escape := false
	for _, r := range str {
		switch {
		case r == '\x1b':
			escape = true
		case escape && r == 'm':
			escape = false
		case !escape:
			out.WriteRune(r)
		}
	}

	return out.String()
}
