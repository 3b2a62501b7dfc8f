package config

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"
)

// LoadTMX imports a Tiled map into the same raw form ParseLevel produces.
// The first tile layer becomes the grid; every object becomes a marker,
// in object-group order, positioned in tiles.
func LoadTMX(fsys fs.FS, tmxPath string) (*LevelFile, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, &ParseError{Reason: "load TMX " + tmxPath, Err: err}
	}
	if levelMap.Width <= 0 || levelMap.Height <= 0 || levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, &ParseError{Reason: fmt.Sprintf("TMX %s has invalid size", tmxPath)}
	}

	lf := &LevelFile{
		Name:   strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath)),
		Width:  levelMap.Width,
		Height: levelMap.Height,
	}

	if len(levelMap.Layers) > 0 {
		layer := levelMap.Layers[0]
		if len(layer.Tiles) != levelMap.Width*levelMap.Height {
			return nil, &ParseError{Reason: fmt.Sprintf("TMX layer %q has %d tiles, want %d",
				layer.Name, len(layer.Tiles), levelMap.Width*levelMap.Height)}
		}
		lf.Data = make([][]int, levelMap.Height)
		for y := 0; y < levelMap.Height; y++ {
			lf.Data[y] = make([]int, levelMap.Width)
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile == nil || tile.IsNil() {
					continue
				}
				// Global id, matching the values a Flare export writes
				lf.Data[y][x] = int(tile.Tileset.FirstGID + tile.ID)
			}
		}
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			objType := o.Type
			if objType == "" {
				objType = o.Name
			}
			lf.Objects = append(lf.Objects, ObjectConfig{
				Type: objType,
				X:    float64(int(o.X / tileW)),
				Y:    float64(int(o.Y / tileH)),
			})
		}
	}

	return lf, nil
}
