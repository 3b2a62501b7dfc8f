package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/oof/internal/application/game"
	"github.com/younwookim/oof/internal/application/scene/playing"
	"github.com/younwookim/oof/internal/application/session"
	"github.com/younwookim/oof/internal/application/system"
	"github.com/younwookim/oof/internal/infrastructure/audio"
	"github.com/younwookim/oof/internal/infrastructure/config"
	"github.com/younwookim/oof/internal/infrastructure/persistence"
	"github.com/younwookim/oof/internal/infrastructure/watch"
)

type playOptions struct {
	levelsDir  string
	watch      bool
	recordPath string
	assetsDir  string
	mute       bool
}

var playOpts playOptions

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Args:  cobra.NoArgs,
	RunE:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags; the root command shares them
func addPlayFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&playOpts.levelsDir, "levels", "", "directory holding the level files named in game.yaml")
	f.BoolVar(&playOpts.watch, "watch", false, "reload levels when their files change")
	f.StringVar(&playOpts.recordPath, "record", "", "record input to file (e.g. --record replay.json)")
	f.StringVar(&playOpts.assetsDir, "assets", "assets", "directory holding audio assets")
	f.BoolVar(&playOpts.mute, "mute", false, "disable audio")
}

func runPlay(cmd *cobra.Command, args []string) error {
	loader, cfg, err := loadGame(configDir, playOpts.levelsDir)
	if err != nil {
		return err
	}

	stages, err := system.LoadStages(loader, cfg)
	if err != nil {
		return fmt.Errorf("failed to load levels: %w", err)
	}
	log.Printf("Loaded %d levels (config: %s)", len(stages), loader.BasePath())

	sess, err := session.New(cfg, stages, openCues(cfg))
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	opts := playing.Options{RecordPath: playOpts.recordPath}
	if playOpts.levelsDir != "" {
		if abs, err := filepath.Abs(playOpts.levelsDir); err == nil {
			opts.LevelsDir = abs
		} else {
			opts.LevelsDir = playOpts.levelsDir
		}
	}
	if tracker, err := persistence.Open("oof"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	} else {
		p := tracker.Progress()
		log.Printf("Progress: furthest level %d, %d wins", p.FurthestLevel, p.Wins)
		opts.Progress = tracker
	}

	if playOpts.watch {
		dir := watchedDir(configDir, playOpts.levelsDir)
		if dir == "" {
			return errors.New("--watch needs --levels or --config")
		}
		w, err := watch.New(dir)
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		defer func() { _ = w.Close() }()
		log.Printf("Watching %s for level changes", dir)

		go logWatchErrors(w.Errors)
		opts.Reloads = reloads(w.Events, loader, cfg)
	}

	d := cfg.Physics.Display
	scene := playing.New(cfg, sess, system.NewInputSystem(cfg.Physics), opts)
	g := game.New(scene, d.ScreenWidth, d.ScreenHeight, d.Framerate)

	ebiten.SetWindowSize(d.ScreenWidth*d.Scale, d.ScreenHeight*d.Scale)
	ebiten.SetWindowTitle(cfg.Game.Title)
	ebiten.SetTPS(d.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}

// loadGame loads the config and points level loading at levelsDir when set
func loadGame(cfgDir, levelsDir string) (*config.Loader, *config.GameConfig, error) {
	loader, err := newLoader(cfgDir)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if levelsDir != "" {
		loader.WithLevels(os.DirFS(levelsDir))
	}
	return loader, cfg, nil
}

func watchedDir(cfgDir, levelsDir string) string {
	switch {
	case levelsDir != "":
		return levelsDir
	case cfgDir != "":
		return filepath.Join(cfgDir, "levels")
	default:
		return ""
	}
}

func openCues(cfg *config.GameConfig) session.Cues {
	if playOpts.mute {
		return nil
	}
	cues, err := audio.New(audio.Context(), os.DirFS(playOpts.assetsDir), cfg.Game.Audio)
	if err != nil {
		log.Printf("Warning: audio disabled: %v", err)
		return nil
	}
	return cues
}

func logWatchErrors(errs <-chan error) {
	for err := range errs {
		log.Printf("Warning: watcher: %v", err)
	}
}

// reloads turns changed level paths into parsed stages. Files not named in
// the manifest are ignored; parse failures are logged and skipped.
func reloads(events <-chan string, loader *config.Loader, cfg *config.GameConfig) <-chan playing.LevelReload {
	out := make(chan playing.LevelReload, 4)
	go func() {
		defer close(out)
		for p := range events {
			r, ok := reloadLevel(p, loader, cfg)
			if ok {
				out <- r
			}
		}
	}()
	return out
}

func reloadLevel(p string, loader *config.Loader, cfg *config.GameConfig) (playing.LevelReload, bool) {
	name := filepath.Base(p)
	i := slices.Index(cfg.Game.Levels, name)
	if i < 0 {
		return playing.LevelReload{}, false
	}

	lf, err := loader.LoadLevel(name)
	if err != nil {
		log.Printf("Warning: reload of %s failed: %v", name, err)
		return playing.LevelReload{}, false
	}
	stage, err := system.LoadStage(lf, cfg.Physics.Physics.TileSize)
	if err != nil {
		log.Printf("Warning: reload of %s failed: %v", name, err)
		return playing.LevelReload{}, false
	}

	log.Printf("Reloaded %s", name)
	return playing.LevelReload{Index: i, Stage: stage}, true
}
