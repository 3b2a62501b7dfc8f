package config

import (
	"errors"
	"fmt"

	"github.com/younwookim/oof/internal/domain/entity"
)

// EntitiesConfig is the root config for entities.yaml
type EntitiesConfig struct {
	Tiles    TileTagConfig             `yaml:"tiles"`
	Player   TemplateConfig            `yaml:"player"`
	Victory  TemplateConfig            `yaml:"victory"`
	Hostiles map[string]TemplateConfig `yaml:"hostiles"`
	Hitbox   HitboxConfig              `yaml:"hitbox"`
}

// TileTagConfig lists the tile ids in each tag set
type TileTagConfig struct {
	Solid     []int `yaml:"solid"`
	Hazard    []int `yaml:"hazard"`
	Climbable []int `yaml:"climbable"`
}

// TemplateConfig describes an actor; extents are in tiles
type TemplateConfig struct {
	Width      float64          `yaml:"width"`
	Height     float64          `yaml:"height"`
	Static     bool             `yaml:"static"`
	StartFrame int              `yaml:"startFrame"`
	Sprites    SpriteSetsConfig `yaml:"sprites"`
}

type SpriteSetsConfig struct {
	Idle     []int `yaml:"idle"`
	Forward  []int `yaml:"forward"`
	Backward []int `yaml:"backward"`
}

// HitboxConfig sizes the attack volume in tiles and names its sprite cells
type HitboxConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Gap      float64 `yaml:"gap"`
	UpCell   int     `yaml:"upCell"`
	DownCell int     `yaml:"downCell"`
}

// TileTags converts the tag lists into the immutable lookup table
func (c TileTagConfig) TileTags() entity.TileTags {
	return entity.NewTileTags(toTileIDs(c.Solid), toTileIDs(c.Hazard), toTileIDs(c.Climbable))
}

func toTileIDs(ids []int) []entity.TileID {
	out := make([]entity.TileID, len(ids))
	for i, id := range ids {
		out[i] = entity.TileID(id)
	}
	return out
}

// Template scales the config to world units
func (c TemplateConfig) Template(tileSize float64) entity.Template {
	sprites := map[entity.SpriteSet][]int{}
	if len(c.Sprites.Idle) > 0 {
		sprites[entity.SpriteIdle] = c.Sprites.Idle
	}
	if len(c.Sprites.Forward) > 0 {
		sprites[entity.SpriteForward] = c.Sprites.Forward
	}
	if len(c.Sprites.Backward) > 0 {
		sprites[entity.SpriteBackward] = c.Sprites.Backward
	}

	return entity.Template{
		Width:      c.Width * tileSize,
		Height:     c.Height * tileSize,
		Static:     c.Static,
		StartFrame: c.StartFrame,
		Sprites:    sprites,
	}
}

// Validate checks every template and the tag table
func (c *EntitiesConfig) Validate() error {
	var errs []error
	check := func(name string, t TemplateConfig) {
		if !(t.Width > 0) || !(t.Height > 0) {
			errs = append(errs, fmt.Errorf("%s: %w: %vx%v", name, entity.ErrInvalidEntityExtent, t.Width, t.Height))
		}
		if len(t.Sprites.Idle) == 0 {
			errs = append(errs, fmt.Errorf("%s: idle sprites are required", name))
		}
	}
	check("player", c.Player)
	check("victory", c.Victory)
	for name, t := range c.Hostiles {
		check("hostiles."+name, t)
	}
	if !(c.Hitbox.Width > 0) || !(c.Hitbox.Height > 0) {
		errs = append(errs, fmt.Errorf("hitbox: %w", entity.ErrInvalidEntityExtent))
	}
	if len(c.Tiles.Solid) == 0 {
		errs = append(errs, errors.New("tiles.solid must not be empty"))
	}
	return errors.Join(errs...)
}
