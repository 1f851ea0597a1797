package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"boardai/agent"
	"boardai/config"
	"boardai/tuple"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tileConfig() *config.Config {
	return &config.Config{
		Game:     "tile",
		Episodes: 5,
		Block:    2,
		Agents: config.AgentsConfig{
			Slider: "name=walker role=slider seed=1",
			Placer: "name=env type=placer role=placer seed=2",
		},
	}
}

func TestRunTile(t *testing.T) {
	cfg := tileConfig()
	cfg.Output = config.OutputConfig{Dir: t.TempDir(), Format: "csv"}

	result, err := Run(cfg)
	require.NoError(t, err)

	assert.NotEmpty(t, result.Run)
	require.Len(t, result.Games, 5)
	for i, g := range result.Games {
		assert.Equal(t, i+1, g.Episode)
		assert.Equal(t, "tile", g.Game)
		assert.Greater(t, g.Steps, 2)
	}

	require.Len(t, result.Blocks, 3, "two full blocks and one flushed")
	assert.Equal(t, 5, result.Blocks[2].First)
	assert.Equal(t, 5, result.Blocks[2].Last)

	assert.Equal(t, filepath.Join(cfg.Output.Dir, result.Run), result.Dir)
	assert.FileExists(t, filepath.Join(result.Dir, "game_records.csv"))
	assert.FileExists(t, filepath.Join(result.Dir, "move_records.csv"))
}

func TestRunTupleSavesWeights(t *testing.T) {
	save := filepath.Join(t.TempDir(), "weights.bin")
	cfg := tileConfig()
	cfg.Episodes = 3
	cfg.Agents.Slider = "name=td type=tuple role=slider patterns=0,1,2/4,5,6 init=4096,4096 save=" + save

	result, err := Run(cfg)
	require.NoError(t, err)
	assert.Empty(t, result.Dir, "export is off without a format")

	tables, err := tuple.LoadFile(save)
	require.NoError(t, err)
	require.Len(t, tables, 2)

	trained := false
	for _, w := range tables[0] {
		if w != 0 {
			trained = true
			break
		}
	}
	assert.True(t, trained, "training should move some weights")
}

func TestRunNoGo(t *testing.T) {
	cfg := &config.Config{
		Game:     "nogo",
		Episodes: 4,
		Block:    4,
		Width:    3,
		Agents: config.AgentsConfig{
			Black: "name=b role=black seed=5",
			White: "name=w role=white seed=6",
		},
		Output: config.OutputConfig{Dir: t.TempDir(), Format: "parquet"},
	}

	result, err := Run(cfg)
	require.NoError(t, err)
	require.Len(t, result.Blocks, 1)

	wins := 0
	for _, n := range result.Blocks[0].Wins {
		wins += n
	}
	assert.Equal(t, 4, wins)
	assert.FileExists(t, filepath.Join(result.Dir, "game_records.parquet"))
}

func TestRunErrors(t *testing.T) {
	t.Run("wrong seat", func(t *testing.T) {
		cfg := tileConfig()
		cfg.Agents.Placer = "name=x role=slider"
		_, err := Run(cfg)
		assert.ErrorIs(t, err, agent.ErrInvalidRole)
	})

	t.Run("seated agents are closed on failure", func(t *testing.T) {
		save := filepath.Join(t.TempDir(), "weights.bin")
		cfg := tileConfig()
		cfg.Agents.Slider = "type=tuple role=slider patterns=0,1 init=256 save=" + save
		cfg.Agents.Placer = "name=x role=slider"

		_, err := Run(cfg)
		require.ErrorIs(t, err, agent.ErrInvalidRole)
		assert.FileExists(t, save, "the slider should still save its weights")
	})

	t.Run("missing weights", func(t *testing.T) {
		cfg := tileConfig()
		cfg.Agents.Slider = "type=tuple role=slider patterns=0,1 load=" + filepath.Join(t.TempDir(), "none.bin")
		_, err := Run(cfg)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
