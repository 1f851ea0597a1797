package agent

import (
	"testing"
	"time"

	"boardai/tuple"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	props := ParseArgs("name=tdl role=slider  verbose alpha=0.1 name=td")
	assert.Equal(t, map[string]string{
		"name":    "td",
		"role":    "slider",
		"verbose": "verbose",
		"alpha":   "0.1",
	}, props, "later pairs should override earlier ones")

	assert.Empty(t, ParseArgs("   "))
}

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, err := NewConfig("")
		require.NoError(t, err)
		assert.Equal(t, "unknown", c.Name)
		assert.Equal(t, "unknown", c.Role)
		assert.Equal(t, "random", c.Type)
		assert.Equal(t, tuple.DefaultAlpha, c.Alpha)
		assert.False(t, c.Seeded)
	})

	t.Run("typed keys", func(t *testing.T) {
		c, err := NewConfig("name=mcts role=white type=mcts seed=7 simulation=200 timeout=250 c=1.4 check=50")
		require.NoError(t, err)
		assert.Equal(t, "mcts", c.Name)
		assert.Equal(t, "white", c.Role)
		assert.Equal(t, uint64(7), c.Seed)
		assert.True(t, c.Seeded)
		assert.Equal(t, 200, c.Simulation)
		assert.Equal(t, 250*time.Millisecond, c.Timeout)
		assert.Equal(t, 1.4, c.Exploration)
		assert.Equal(t, 50, c.CheckInterval)
	})

	t.Run("weights keys", func(t *testing.T) {
		c, err := NewConfig("init=65536,010 load=in.bin save=out.bin alpha=0.5 patterns=0,1/4,5")
		require.NoError(t, err)
		assert.Equal(t, []int{65536, 10}, c.Init, "sizes are decimal")
		assert.Equal(t, "in.bin", c.Load)
		assert.Equal(t, "out.bin", c.Save)
		assert.Equal(t, 0.5, c.Alpha)
		assert.Equal(t, []tuple.Pattern{{0, 1}, {4, 5}}, c.Patterns)
	})

	t.Run("unknown keys are kept", func(t *testing.T) {
		c, err := NewConfig("name=a coach=bob")
		require.NoError(t, err)
		value, ok := c.Property("coach")
		assert.True(t, ok)
		assert.Equal(t, "bob", value)

		_, ok = c.Property("missing")
		assert.False(t, ok)
	})

	t.Run("reserved name characters", func(t *testing.T) {
		for _, name := range []string{"a[1]", "x:y", "semi;colon", "(p)"} {
			_, err := NewConfig("name=" + name)
			assert.ErrorIs(t, err, ErrInvalidName, "name %q should be rejected", name)
		}
	})

	t.Run("malformed values", func(t *testing.T) {
		for _, args := range []string{"seed=abc", "alpha=x", "timeout=soon", "simulation=many", "c=?", "check=1.5", "timeout=0.5", "simulation=2.9", "seed=1.5", "patterns=a,b", "patterns=/"} {
			_, err := NewConfig(args)
			assert.ErrorIs(t, err, ErrMalformedValue, "args %q should be rejected", args)
		}
	})

	t.Run("whole numbers with a zero fraction", func(t *testing.T) {
		c, err := NewConfig("timeout=250.0 check=10")
		require.NoError(t, err)
		assert.Equal(t, 250*time.Millisecond, c.Timeout)
		assert.Equal(t, 10, c.CheckInterval)
	})
}

func TestConfigNotify(t *testing.T) {
	c, err := NewConfig("name=a alpha=0.1")
	require.NoError(t, err)

	require.NoError(t, c.Notify("alpha=0.25"))
	assert.Equal(t, 0.25, c.Alpha)

	require.NoError(t, c.Notify("flag"))
	value, ok := c.Property("flag")
	assert.True(t, ok)
	assert.Equal(t, "flag", value)

	assert.ErrorIs(t, c.Notify("alpha=fast"), ErrMalformedValue)

	assert.ErrorIs(t, c.Notify("name=bad:name(x)"), ErrInvalidName)
	assert.Equal(t, "a", c.Name, "a rejected name should leave the old one")
}

func TestConfigRand(t *testing.T) {
	c, err := NewConfig("seed=42")
	require.NoError(t, err)

	a, b := c.rng(), c.rng()
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64(), "seeded generators should agree")
	}
}
