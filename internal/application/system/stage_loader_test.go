package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravenkeep/darkcastle/internal/infrastructure/config"
)

func TestBuildLevelFromCastleStage(t *testing.T) {
	cfg := testTuning(t)
	stage, err := config.NewDefaultLoader().LoadStage("castle")
	require.NoError(t, err)

	lvl, err := BuildLevel(stage, cfg)
	require.NoError(t, err)

	assert.Len(t, lvl.Platforms, len(stage.Platforms))
	assert.Len(t, lvl.Enemies, len(stage.Enemies))
	assert.Len(t, lvl.Collectibles, len(stage.Collectibles))
	assert.Len(t, lvl.Doors, len(stage.Doors))
	assert.Equal(t, stage.PlayerSpawn.X, lvl.SpawnX)
	assert.Equal(t, stage.PlayerSpawn.Y, lvl.SpawnY)

	for _, e := range lvl.Enemies {
		assert.Equal(t, cfg.Enemy.MaxHealth, e.Health)
		assert.Equal(t, cfg.Enemy.Width, e.W)
		assert.False(t, e.Initialized)
	}

	p := NewLevelPlayer(lvl, cfg)
	assert.Equal(t, lvl.SpawnX, p.X)
	assert.Equal(t, cfg.Player.MaxHealth, p.Health)
	assert.Equal(t, cfg.Player.Attack.OffsetX, p.Attack.OffsetX)
}

func TestBuildLevelRejectsInvalidStage(t *testing.T) {
	cfg := testTuning(t)

	_, err := BuildLevel(&config.Stage{Name: "broken"}, cfg)
	assert.Error(t, err)
}

func TestLevelAliveEnemies(t *testing.T) {
	cfg := testTuning(t)
	stage, err := config.NewDefaultLoader().LoadStage("castle")
	require.NoError(t, err)
	lvl, err := BuildLevel(stage, cfg)
	require.NoError(t, err)

	require.Equal(t, 4, lvl.AliveEnemies())

	lvl.Enemies[0].Die(cfg.Enemy.DespawnGrace)
	assert.Equal(t, 3, lvl.AliveEnemies())

	lvl.Enemies[0].DespawnReady = true
	lvl.RemoveDespawned()
	assert.Len(t, lvl.Enemies, 3)
}
