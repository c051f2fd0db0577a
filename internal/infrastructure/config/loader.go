package config

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/tuning.yaml defaults/stages
var defaultsFS embed.FS

// GameConfig holds all loaded configuration.
type GameConfig struct {
	Tuning *Tuning
}

// Loader loads configuration from YAML files through fs.FS.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a loader reading from a directory path.
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a loader reading from an fs.FS.
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// NewDefaultLoader creates a loader over the embedded defaults, so the
// binary runs with no config directory on disk.
func NewDefaultLoader() *Loader {
	sub, err := fs.Sub(defaultsFS, "defaults")
	if err != nil {
		// embed paths are fixed at compile time
		panic(err)
	}
	return &Loader{fsys: sub}
}

// LoadTuning loads and validates tuning.yaml.
func (l *Loader) LoadTuning() (*Tuning, error) {
	data, err := fs.ReadFile(l.fsys, "tuning.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning.yaml: %w", err)
	}

	var cfg Tuning
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tuning.yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning.yaml: %w", err)
	}

	return &cfg, nil
}

// LoadStage loads and validates a stage YAML file.
func (l *Loader) LoadStage(name string) (*Stage, error) {
	path := "stages/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	var cfg Stage
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid stage %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadAll loads the base configuration.
func (l *Loader) LoadAll() (*GameConfig, error) {
	tuning, err := l.LoadTuning()
	if err != nil {
		return nil, err
	}
	return &GameConfig{Tuning: tuning}, nil
}
