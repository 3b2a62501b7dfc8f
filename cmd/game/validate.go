package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/younwookim/oof/internal/application/system"
	"github.com/younwookim/oof/internal/domain/entity"
	"github.com/younwookim/oof/internal/infrastructure/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Parse level files and print a summary",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	loader, err := newLoader(configDir)
	if err != nil {
		return err
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	tags := cfg.Entities.Tiles.TileTags()
	for _, file := range args {
		stage, err := loadLevelFile(file, cfg.Physics.Physics.TileSize)
		if err != nil {
			return err
		}
		describeLevel(cmd.OutOrStdout(), file, stage, tags)
	}
	return nil
}

// loadLevelFile reads a Flare .txt or Tiled .tmx file from disk
func loadLevelFile(file string, tileSize float64) (*entity.Stage, error) {
	dir, name := filepath.Split(file)
	if dir == "" {
		dir = "."
	}
	lf, err := config.NewLoader(dir).WithLevels(os.DirFS(dir)).LoadLevel(name)
	if err != nil {
		return nil, err
	}
	return system.LoadStage(lf, tileSize)
}

type tagCounts struct {
	solid, hazard, climbable, decor int
}

func countTags(stage *entity.Stage, tags entity.TileTags) tagCounts {
	var c tagCounts
	stage.OccupiedTiles(func(_, _ int, id entity.TileID) {
		switch {
		case tags.IsHazard(id):
			c.hazard++
		case tags.IsClimbable(id):
			c.climbable++
		case tags.IsSolid(id):
			c.solid++
		default:
			c.decor++
		}
	})
	return c
}

func describeLevel(w io.Writer, file string, stage *entity.Stage, tags entity.TileTags) {
	c := countTags(stage, tags)
	types := make([]string, 0, len(stage.Markers()))
	for _, m := range stage.Markers() {
		types = append(types, m.Type)
	}
	_, _ = fmt.Fprintf(w, "%s: %dx%d, %d markers [%s]\n", file, stage.Width, stage.Height, len(types), strings.Join(types, " "))
	_, _ = fmt.Fprintf(w, "  solid=%d hazard=%d climbable=%d decor=%d\n", c.solid, c.hazard, c.climbable, c.decor)
}
