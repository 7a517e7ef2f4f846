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
	"github.com/spf13/cobra"

	"laptudirm.com/x/knockout/pkg/common"
	"laptudirm.com/x/knockout/pkg/tournament"
)

// configFlags registers the flags which override the tournament config.
func configFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "Tournament config file (default: $XDG_CONFIG_HOME/knockout/config.yaml)")
	cmd.Flags().StringP("name", "n", "", "Name of the tournament")
	cmd.Flags().IntP("players", "p", 0, "Number of players, random if zero")
	cmd.Flags().Int("capacity", 0, "Largest number of players allowed")
	cmd.Flags().Uint64P("seed", "s", 0, "Seed for the players' moves, random if zero")
}

// resolveConfig loads the config file, applies the flags given on the
// command line on top of it, and fills in the remaining defaults.
func resolveConfig(cmd *cobra.Command) (tournament.Config, error) {
	config := tournament.DefaultConfig()

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path, _ = common.FindConfig()
	}

	if path != "" {
		var err error
		if config, err = tournament.LoadConfig(path); err != nil {
			return tournament.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		config.Name, _ = flags.GetString("name")
	}
	if flags.Changed("players") {
		config.Players, _ = flags.GetInt("players")
	}
	if flags.Changed("capacity") {
		config.Capacity, _ = flags.GetInt("capacity")
	}
	if flags.Changed("seed") {
		config.Seed, _ = flags.GetUint64("seed")
	}

	config = config.Resolve()
	return config, config.Validate()
}
