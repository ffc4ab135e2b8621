package config

import (
	"os"
	"path/filepath"
	"testing"

	"farmstead/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_CarriesDefaults(t *testing.T) {
	c := NewConfig()

	assert.Equal(t, 500, c.World.Goal)
	assert.Equal(t, 100, c.World.StartingBalance)
	assert.Equal(t, 4, c.World.PlotCount)
	assert.Equal(t, 0.15, c.Events.PestBelow)
	assert.Equal(t, 0.30, c.Events.RainBelow)
	assert.Len(t, c.Crops, 4)
	require.NoError(t, c.Validate())

	seeds := c.StartingSeeds()
	assert.Equal(t, 5, seeds.Count(model.Wheat))
	assert.Equal(t, 5, seeds.Count(model.Potato))
}

func TestLoad_YamlOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "farmstead.yml")
	body := []byte(`
version: "1"
world:
  goal: 1000
  plot_count: 8
  starting_seeds:
    carrot: 2
events:
  pest_below: 0.1
  rain_below: 0.5
  seed: 42
`)
	require.NoError(t, os.WriteFile(path, body, 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1000, c.World.Goal)
	assert.Equal(t, 8, c.World.PlotCount)
	// Unset fields fall back to defaults.
	assert.Equal(t, 100, c.World.StartingBalance)
	assert.Equal(t, 0.1, c.Events.PestBelow)
	assert.Equal(t, 0.5, c.Events.RainBelow)
	assert.Equal(t, int64(42), c.Events.Seed)
	assert.Equal(t, 2, c.StartingSeeds().Count(model.Carrot))
}

func TestLoad_RejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	body := []byte(`
events:
  pest_below: 0.9
  rain_below: 0.2
`)
	require.NoError(t, os.WriteFile(path, body, 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestValidate_UnknownStartingSeedCrop(t *testing.T) {
	c := NewConfig()
	c.World.StartingSeeds = map[model.CropKind]int{"mango": 3}
	assert.Error(t, c.Validate())
}

func TestFromEnv_DefaultsWhenUnset(t *testing.T) {
	b := FromEnv()
	assert.Equal(t, Default(), b)
}

func TestFromEnv_DifficultyPresetThenOverrides(t *testing.T) {
	t.Setenv("FARMSTEAD_DIFFICULTY", "hard")
	t.Setenv("FARMSTEAD_GOAL", "1200")
	t.Setenv("FARMSTEAD_STARTING_POTATO_SEEDS", "0")

	b := FromEnv()
	assert.Equal(t, 1200, b.Goal)
	assert.Equal(t, 60, b.StartingBalance)
	assert.Equal(t, 3, b.PlotCount)
	assert.Equal(t, 0, b.StartingPotatoSeeds)
	assert.Equal(t, 0.25, b.PestBelow)
}

func TestFromEnv_IgnoresMalformedValues(t *testing.T) {
	t.Setenv("FARMSTEAD_GOAL", "lots")
	t.Setenv("FARMSTEAD_PEST_BELOW", "often")

	b := FromEnv()
	assert.Equal(t, 500, b.Goal)
	assert.Equal(t, 0.15, b.PestBelow)
}

func TestApplyBalance_OverlaysWorldAndEvents(t *testing.T) {
	c := NewConfig()
	c.ApplyBalance(Casual())

	assert.Equal(t, 300, c.World.Goal)
	assert.Equal(t, 150, c.World.StartingBalance)
	assert.Equal(t, 6, c.World.PlotCount)
	assert.Equal(t, 0.05, c.Events.PestBelow)
	assert.Equal(t, 5, c.StartingSeeds().Count(model.Wheat))
	require.NoError(t, c.Validate())
}

func TestPresets_StayInternallyConsistent(t *testing.T) {
	for name, b := range map[string]Balance{"default": Default(), "casual": Casual(), "hard": Hard()} {
		assert.Greater(t, b.Goal, b.StartingBalance, name)
		assert.GreaterOrEqual(t, b.RainBelow, b.PestBelow, name)
		assert.Greater(t, b.PlotCount, 0, name)
	}
}
