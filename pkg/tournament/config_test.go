package tournament

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		valid  bool
	}{
		{"smallest", Config{Players: 2, Capacity: DefaultCapacity}, true},
		{"largest", Config{Players: 101, Capacity: DefaultCapacity}, true},
		{"too few", Config{Players: 1, Capacity: DefaultCapacity}, false},
		{"too many", Config{Players: 102, Capacity: DefaultCapacity}, false},
		{"larger capacity", Config{Players: 500, Capacity: 1000}, true},
		{"tiny capacity", Config{Players: 2, Capacity: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidPlayers)
			}
		})
	}
}

func TestConfigResolve(t *testing.T) {
	for i := 0; i < 200; i++ {
		config := Config{}.Resolve()
		assert.Equal(t, DefaultCapacity, config.Capacity)
		assert.NoError(t, config.Validate())
	}

	config := Config{Capacity: 3}.Resolve()
	assert.Contains(t, []int{2, 3}, config.Players)

	config = Config{Players: 17}.Resolve()
	assert.Equal(t, 17, config.Players)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "config.yaml")

	require.NoError(t, os.WriteFile(name, []byte("name: spring cup\nplayers: 12\nseed: 5\n"), 0644))

	config, err := LoadConfig(name)
	require.NoError(t, err)
	assert.Equal(t, Config{Name: "spring cup", Players: 12, Capacity: DefaultCapacity, Seed: 5}, config)
}

func TestLoadConfigEmpty(t *testing.T) {
	name := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(name, nil, 0644))

	config, err := LoadConfig(name)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	name := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(name, []byte("players: 4\nrounds: 3\n"), 0644))

	_, err = LoadConfig(name)
	assert.Error(t, err, "unknown fields are rejected")
}

func TestConfigMarshal(t *testing.T) {
	data, err := Config{Name: "cup", Players: 4, Capacity: 8}.Marshal()
	require.NoError(t, err)
	assert.Equal(t, "name: cup\nplayers: 4\ncapacity: 8\nseed: 0\n", string(data))
}
