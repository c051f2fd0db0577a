package config

import "fmt"

// Stage is the root config for stage YAML files.
type Stage struct {
	Name         string        `yaml:"name"`
	Music        string        `yaml:"music"`
	PlayerSpawn  Position      `yaml:"playerSpawn"`
	Platforms    []RectSpec    `yaml:"platforms"`
	Traps        []RectSpec    `yaml:"traps"`
	Collectibles []Collectible `yaml:"collectibles"`
	Doors        []Door        `yaml:"doors"`
	Decorations  []Decoration  `yaml:"decorations"`
	Enemies      []EnemySpawn  `yaml:"enemies"`
}

// Position is an anchor point in world pixels.
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// RectSpec is an axis-aligned rectangle in world pixels.
type RectSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Collectible places a score pickup.
type Collectible struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Value int     `yaml:"value"`
}

// Door places a teleport door and its destination anchor.
type Door struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w"`
	H     float64 `yaml:"h"`
	DestX float64 `yaml:"destX"`
	DestY float64 `yaml:"destY"`
}

// Decoration places a visual prop.
type Decoration struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Kind   string  `yaml:"kind"`
	Frames int     `yaml:"frames"`
	Rate   float64 `yaml:"rate"`
}

// EnemySpawn places a skeleton drop point and its patrol bounds.
type EnemySpawn struct {
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	PatrolLeft  float64 `yaml:"patrolLeft"`
	PatrolRight float64 `yaml:"patrolRight"`
}

// Validate checks the stage for geometry the simulation cannot handle.
func (s *Stage) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("stage has no name")
	}
	if len(s.Platforms) == 0 {
		return fmt.Errorf("stage %s has no platforms", s.Name)
	}
	for i, p := range s.Platforms {
		if p.W <= 0 || p.H <= 0 {
			return fmt.Errorf("stage %s: platform %d has non-positive size %gx%g", s.Name, i, p.W, p.H)
		}
	}
	for i, e := range s.Enemies {
		if e.PatrolLeft >= e.PatrolRight {
			return fmt.Errorf("stage %s: enemy %d patrol bounds inverted (%g >= %g)",
				s.Name, i, e.PatrolLeft, e.PatrolRight)
		}
	}
	for i, d := range s.Doors {
		if d.W <= 0 || d.H <= 0 {
			return fmt.Errorf("stage %s: door %d has non-positive size", s.Name, i)
		}
	}
	return nil
}
