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

package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/knockout/pkg/tournament/common"
	"laptudirm.com/x/knockout/pkg/tournament/games"
)

// knockout referee
func Referee() *cobra.Command {
	return &cobra.Command{
		Use:   "referee move move",
		Short: "Decide a single throw between two moves",
		Args:  cobra.ExactArgs(2),
		Long: heredoc.Doc(`referee prints the decision the arbiter would take for a
			throw between the two given moves. Moves are rock, paper,
			or scissors, or their first letter.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			m1, err := games.ParseMove(args[0])
			if err != nil {
				return err
			}

			m2, err := games.ParseMove(args[1])
			if err != nil {
				return err
			}

			score := games.Referee(m1, m2)

			var decision string
			switch score {
			case common.Player1Wins:
				decision = "\x1b[32mfirst wins\x1b[0m"
			case common.Player2Wins:
				decision = "\x1b[32msecond wins\x1b[0m"
			default:
				decision = "\x1b[33mtie\x1b[0m"
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s vs %s: %s (%s)\n", m1, m2, score, decision)
			return nil
		},
	}
}
