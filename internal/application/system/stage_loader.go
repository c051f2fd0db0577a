package system

import (
	"fmt"

	"github.com/ravenkeep/darkcastle/internal/domain/entity"
	"github.com/ravenkeep/darkcastle/internal/infrastructure/config"
)

// Level is a stage instantiated into live entities and geometry.
type Level struct {
	Platforms    []entity.Rect
	Traps        []entity.Trap
	Collectibles []*entity.Collectible
	Doors        []entity.Door
	Decorations  []*entity.Decoration
	Enemies      []*entity.Enemy

	SpawnX, SpawnY float64
}

// BuildLevel turns a stage config into a Level using the given tuning
// for entity dimensions and stats.
func BuildLevel(stage *config.Stage, cfg *config.Tuning) (*Level, error) {
	if err := stage.Validate(); err != nil {
		return nil, fmt.Errorf("cannot build level: %w", err)
	}

	lvl := &Level{
		SpawnX: stage.PlayerSpawn.X,
		SpawnY: stage.PlayerSpawn.Y,
	}

	lvl.Platforms = make([]entity.Rect, 0, len(stage.Platforms))
	for _, p := range stage.Platforms {
		lvl.Platforms = append(lvl.Platforms, entity.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H})
	}

	for _, t := range stage.Traps {
		lvl.Traps = append(lvl.Traps, entity.Trap{
			Box: entity.Rect{X: t.X, Y: t.Y, W: t.W, H: t.H},
		})
	}

	for _, c := range stage.Collectibles {
		lvl.Collectibles = append(lvl.Collectibles, entity.NewCollectible(c.X, c.Y, c.Value))
	}

	for _, d := range stage.Doors {
		lvl.Doors = append(lvl.Doors, entity.Door{
			Box:   entity.Rect{X: d.X, Y: d.Y, W: d.W, H: d.H},
			DestX: d.DestX,
			DestY: d.DestY,
		})
	}

	for _, d := range stage.Decorations {
		lvl.Decorations = append(lvl.Decorations, entity.NewDecoration(d.X, d.Y, d.Kind, d.Frames, d.Rate))
	}

	enemyAttack := attackSpec(cfg.Enemy.Attack)
	for _, e := range stage.Enemies {
		lvl.Enemies = append(lvl.Enemies, entity.NewEnemy(
			e.X, e.Y,
			cfg.Enemy.Width, cfg.Enemy.Height,
			cfg.Enemy.MaxHealth,
			enemyAttack,
			e.PatrolLeft, e.PatrolRight,
		))
	}

	return lvl, nil
}

// NewLevelPlayer creates the knight at the level's spawn point.
func NewLevelPlayer(lvl *Level, cfg *config.Tuning) *entity.Player {
	return entity.NewPlayer(
		lvl.SpawnX, lvl.SpawnY,
		cfg.Player.Width, cfg.Player.Height,
		cfg.Player.MaxHealth,
		attackSpec(cfg.Player.Attack),
	)
}

// AliveEnemies counts enemies that are not dying or despawned.
func (l *Level) AliveEnemies() int {
	n := 0
	for _, e := range l.Enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// RemoveDespawned drops enemies whose despawn grace has elapsed.
func (l *Level) RemoveDespawned() {
	kept := l.Enemies[:0]
	for _, e := range l.Enemies {
		if !e.DespawnReady {
			kept = append(kept, e)
		}
	}
	l.Enemies = kept
}

func attackSpec(a config.AttackConfig) entity.AttackSpec {
	return entity.AttackSpec{
		FirstFrame: a.FirstFrame,
		LastFrame:  a.LastFrame,
		OffsetX:    a.OffsetX,
		OffsetY:    a.OffsetY,
		W:          a.Width,
		H:          a.Height,
	}
}
