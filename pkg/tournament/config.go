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
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	MinPlayers = 2

	// DefaultCapacity is the largest tournament allowed unless the
	// configuration says otherwise.
	DefaultCapacity = 101
)

var ErrInvalidPlayers = errors.New("config: invalid number of players")

// DefaultConfig returns the configuration used when no file is given: a
// tournament among a random number of players.
func DefaultConfig() Config {
	return Config{
		Name:     "knockout",
		Capacity: DefaultCapacity,
	}
}

type Config struct {
	// Name of the tournament, only used for reporting.
	Name string `yaml:"name"`

	// Number of players in the tournament. If zero, a number is drawn
	// uniformly from [MinPlayers, Capacity] when the config is resolved.
	Players int `yaml:"players"`

	// Largest number of players allowed.
	Capacity int `yaml:"capacity"`

	// Seed for the players' move sources. A non-zero seed makes the whole
	// tournament reproducible; zero seeds every player randomly.
	Seed uint64 `yaml:"seed"`
}

// Resolve fills in the defaults of an incomplete config.
func (config Config) Resolve() Config {
	if config.Capacity == 0 {
		config.Capacity = DefaultCapacity
	}

	if config.Players == 0 && config.Capacity >= MinPlayers {
		config.Players = MinPlayers + rand.IntN(config.Capacity-MinPlayers+1)
	}

	return config
}

// Validate checks that the config describes a playable tournament.
func (config Config) Validate() error {
	if config.Capacity < MinPlayers {
		return fmt.Errorf("%w: capacity %d is below %d", ErrInvalidPlayers, config.Capacity, MinPlayers)
	}

	if config.Players < MinPlayers || config.Players > config.Capacity {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidPlayers, config.Players, MinPlayers, config.Capacity)
	}

	return nil
}

// LoadConfig reads a YAML tournament config from the given file. Fields
// missing from the file keep their DefaultConfig values.
func LoadConfig(name string) (Config, error) {
	file, err := os.ReadFile(name)
	if err != nil {
		return Config{}, err
	}

	config := DefaultConfig()

	decoder := yaml.NewDecoder(bytes.NewReader(file))
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("load config %s: %w", name, err)
	}

	return config, nil
}

// Marshal encodes the config as YAML.
func (config Config) Marshal() ([]byte, error) {
	return yaml.Marshal(config)
}
