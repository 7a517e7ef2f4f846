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

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/knockout/pkg/tournament/games"
)

// Player is the task run by a single participant. It only ever publishes
// its own move; it never looks at its opponent or the bracket.
type Player struct {
	Index  int
	Source games.Source

	state   *State
	signals *Signals
	log     *logrus.Entry
}

// Play runs the player until the tournament finishes or the player is
// eliminated. Every activation results in exactly one submitted move.
func (player *Player) Play() error {
	log := player.log.WithField("player", player.Index+1)

	for moves := 0; ; moves++ {
		if !player.signals.Await(player.Index) {
			return fmt.Errorf("%w: player %d: activation signal released while playing",
				ErrProtocol, player.Index+1)
		}

		move, ok := player.state.Draw(player.Index, player.Source)
		if !ok {
			log.WithField("moves", moves).Trace("player exiting")
			return nil
		}

		log.Tracef("played %s", move)
		player.signals.Submit()
	}
}
