package system

import (
	"fmt"
	"io"

	"github.com/younwookim/oof/internal/domain/entity"
	"github.com/younwookim/oof/internal/infrastructure/config"
)

// LoadStage converts a parsed level file into a Stage entity.
// Raw value v > 0 becomes tile id v-1; anything else is empty.
// Object locations are in tiles and become world positions (x*ts, -y*ts).
// A file with no layer loads as an empty grid; any other grid must match
// the header dimensions.
func LoadStage(lf *config.LevelFile, tileSize float64) (*entity.Stage, error) {
	if err := checkGrid(lf); err != nil {
		return nil, err
	}

	tiles := make([]entity.TileID, lf.Width*lf.Height)
	for i := range tiles {
		tiles[i] = entity.EmptyTile
	}
	for y, row := range lf.Data {
		for x, v := range row {
			if v > 0 {
				tiles[y*lf.Width+x] = entity.TileID(v - 1)
			}
		}
	}

	markers := make([]entity.SpawnMarker, 0, len(lf.Objects))
	for _, o := range lf.Objects {
		markers = append(markers, entity.SpawnMarker{
			Type: o.Type,
			X:    o.X * tileSize,
			Y:    -o.Y * tileSize,
		})
	}

	stage, err := entity.NewStage(lf.Width, lf.Height, tileSize, tiles, markers)
	if err != nil {
		return nil, fmt.Errorf("failed to build stage %s: %w", lf.Name, err)
	}
	return stage, nil
}

func checkGrid(lf *config.LevelFile) error {
	if lf.Width <= 0 || lf.Height <= 0 {
		return &config.ParseError{Reason: fmt.Sprintf("invalid size %dx%d", lf.Width, lf.Height)}
	}
	if lf.Data == nil {
		return nil
	}
	if len(lf.Data) != lf.Height {
		return &config.ParseError{Reason: fmt.Sprintf("data has %d rows, want %d", len(lf.Data), lf.Height)}
	}
	for y, row := range lf.Data {
		if len(row) != lf.Width {
			return &config.ParseError{Reason: fmt.Sprintf("row %d has %d columns, want %d", y, len(row), lf.Width)}
		}
	}
	return nil
}

// ParseStage parses Flare map text straight into a Stage
func ParseStage(src io.Reader, tileSize float64) (*entity.Stage, error) {
	lf, err := config.ParseLevel(src)
	if err != nil {
		return nil, err
	}
	return LoadStage(lf, tileSize)
}

// LoadStages loads every level named in the manifest, in order
func LoadStages(loader *config.Loader, cfg *config.GameConfig) ([]*entity.Stage, error) {
	stages := make([]*entity.Stage, 0, len(cfg.Game.Levels))
	for _, name := range cfg.Game.Levels {
		lf, err := loader.LoadLevel(name)
		if err != nil {
			return nil, err
		}
		stage, err := LoadStage(lf, cfg.Physics.Physics.TileSize)
		if err != nil {
			return nil, err
		}
		stages = append(stages, stage)
	}
	return stages, nil
}
