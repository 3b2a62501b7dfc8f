package config

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadPhysics(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 0.1, cfg.Physics.TileSize)
	assert.Equal(t, -2.2, cfg.Physics.Gravity)
	assert.Equal(t, 1.5, cfg.Physics.FrictionX)
	assert.Equal(t, 0.4, cfg.WallJump.Window)
	assert.Equal(t, 1.0, cfg.Attack.Lifetime)
	assert.Equal(t, 0.35, cfg.Hostile.Speed)
	assert.Equal(t, 15.0, cfg.Animation.FPS)
	assert.NoError(t, cfg.Validate())
}

func TestLoader_BasePath(t *testing.T) {
	assert.Equal(t, "../../../cmd/game/configs", NewLoader("../../../cmd/game/configs").BasePath())
	assert.Equal(t, "mem", NewFSLoader(fstest.MapFS{}, "mem").BasePath())
}

func TestLoader_LoadEntities(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadEntities()
	require.NoError(t, err)

	tags := cfg.Tiles.TileTags()
	assert.True(t, tags.IsSolid(0))
	assert.True(t, tags.IsSolid(101))
	assert.True(t, tags.IsHazard(100))
	assert.True(t, tags.IsClimbable(6))
	assert.False(t, tags.IsSolid(3))

	assert.Equal(t, []int{0, 1, 2}, cfg.Player.Sprites.Idle)
	assert.Len(t, cfg.Victory.Sprites.Idle, 12)
	annoying, ok := cfg.Hostiles["Annoying"]
	require.True(t, ok)
	assert.True(t, annoying.Static)
	assert.Equal(t, 39, cfg.Hitbox.UpCell)
	assert.NoError(t, cfg.Validate())
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Physics)
	assert.NotNil(t, cfg.Entities)
	assert.Equal(t, []string{"level1.txt", "level2.txt", "level3.txt"}, cfg.Game.Levels)
}

func TestLoader_LoadLevel(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	for _, name := range []string{"level1.txt", "level2.txt", "level3.txt"} {
		t.Run(name, func(t *testing.T) {
			lf, err := loader.LoadLevel(name)
			require.NoError(t, err)

			assert.Len(t, lf.Data, lf.Height)
			assert.GreaterOrEqual(t, len(lf.Objects), 2)
			assert.Equal(t, "Player", lf.Objects[0].Type)
			assert.Equal(t, "Victory", lf.Objects[1].Type)
		})
	}
}

func TestLoader_LoadLevel_Missing(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{}, "mem")

	_, err := loader.LoadLevel("nope.txt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMapParse))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoader_WithLevels(t *testing.T) {
	levels := fstest.MapFS{
		"flat.txt": &fstest.MapFile{Data: []byte("[header]\nwidth=2\nheight=1\n\n[layer]\ndata=\n1,1\n")},
	}
	loader := NewFSLoader(fstest.MapFS{}, "mem").WithLevels(levels)

	lf, err := loader.LoadLevel("flat.txt")
	require.NoError(t, err)
	assert.Equal(t, "flat", lf.Name)
	assert.Equal(t, [][]int{{1, 1}}, lf.Data)

	_, err = loader.LoadLevel("level1.txt")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoader_LoadLevel_TMX(t *testing.T) {
	loader := NewLoader("testdata")

	lf, err := loader.LoadLevel("simple.tmx")
	require.NoError(t, err)

	assert.Equal(t, "simple", lf.Name)
	assert.Equal(t, 3, lf.Width)
	assert.Equal(t, 2, lf.Height)
	assert.Equal(t, [][]int{{0, 0, 0}, {2, 2, 101}}, lf.Data)
	require.Len(t, lf.Objects, 2)
	assert.Equal(t, ObjectConfig{Type: "Player", X: 1, Y: 0}, lf.Objects[0])
	assert.Equal(t, ObjectConfig{Type: "Victory", X: 2, Y: 0}, lf.Objects[1])
}

func TestLoader_InvalidYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"physics.yaml": &fstest.MapFile{Data: []byte("physics: [not, a, map")},
	}
	loader := NewFSLoader(fsys, "mem")

	_, err := loader.LoadPhysics()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse physics.yaml")
}

func TestGameConfig_Validate(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")
	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	cfg.Physics.Physics.TileSize = 0
	cfg.Entities.Player.Width = 0
	cfg.Game.Levels = nil

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tileSize")
	assert.Contains(t, err.Error(), "player")
	assert.Contains(t, err.Error(), "levels")
}
