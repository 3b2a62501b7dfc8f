package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics  *PhysicsConfig
	Entities *EntitiesConfig
	Game     *ManifestConfig
}

// ManifestConfig is the root config for game.yaml
type ManifestConfig struct {
	Title  string      `yaml:"title"`
	Levels []string    `yaml:"levels"`
	Audio  AudioConfig `yaml:"audio"`
}

type AudioConfig struct {
	Background string  `yaml:"background"`
	Hit        string  `yaml:"hit"`
	Volume     float64 `yaml:"volume"`
}

// Loader loads game configuration and levels from YAML and level files using fs.FS
type Loader struct {
	fsys     fs.FS
	basePath string
	levelFS  fs.FS
	levelDir string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
		levelFS:  os.DirFS(basePath),
		levelDir: "levels",
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
		levelFS:  fsys,
		levelDir: "levels",
	}
}

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

func loadYAML[T any](fsys fs.FS, name string) (*T, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	var cfg T
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadPhysics loads physics.yaml
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	return loadYAML[PhysicsConfig](l.fsys, "physics.yaml")
}

// LoadEntities loads entities.yaml
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	return loadYAML[EntitiesConfig](l.fsys, "entities.yaml")
}

// LoadManifest loads game.yaml
func (l *Loader) LoadManifest() (*ManifestConfig, error) {
	return loadYAML[ManifestConfig](l.fsys, "game.yaml")
}

// WithLevels reads level files from the root of fsys instead of levels/
func (l *Loader) WithLevels(fsys fs.FS) *Loader {
	l.levelFS = fsys
	l.levelDir = "."
	return l
}

// LoadLevel loads levels/<name>. Files ending in .tmx go through the Tiled
// importer; everything else is parsed as a Flare text map.
func (l *Loader) LoadLevel(name string) (*LevelFile, error) {
	p := path.Join(l.levelDir, name)
	if strings.EqualFold(path.Ext(name), ".tmx") {
		return LoadTMX(l.levelFS, p)
	}

	f, err := l.levelFS.Open(p)
	if err != nil {
		return nil, &ParseError{Reason: "failed to read level " + name, Err: err}
	}
	defer func() { _ = f.Close() }()

	lf, err := ParseLevel(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", name, err)
	}
	lf.Name = strings.TrimSuffix(name, path.Ext(name))
	return lf, nil
}

// LoadAll loads all base configurations (physics, entities, manifest)
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	manifest, err := l.LoadManifest()
	if err != nil {
		return nil, err
	}

	cfg := &GameConfig{
		Physics:  physics,
		Entities: entities,
		Game:     manifest,
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks every section
func (c *GameConfig) Validate() error {
	var errs []error
	if c.Physics == nil || c.Entities == nil || c.Game == nil {
		return errors.New("incomplete config")
	}
	errs = append(errs, c.Physics.Validate(), c.Entities.Validate())
	if len(c.Game.Levels) == 0 {
		errs = append(errs, errors.New("game.levels must list at least one level"))
	}
	return errors.Join(errs...)
}
