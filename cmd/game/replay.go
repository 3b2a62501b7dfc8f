package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/younwookim/oof/internal/application/replay"
	"github.com/younwookim/oof/internal/application/session"
	"github.com/younwookim/oof/internal/application/system"
	"github.com/younwookim/oof/internal/domain/entity"
	"github.com/younwookim/oof/internal/infrastructure/config"
)

var (
	maxFrames       int
	replayLevelsDir string
)

var replayCmd = &cobra.Command{
	Use:   "replay FILE",
	Short: "Run a recorded session headless",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplayCmd,
}

func init() {
	replayCmd.Flags().IntVar(&maxFrames, "max-frames", 0, "stop after this many frames (0 = all)")
	replayCmd.Flags().StringVar(&replayLevelsDir, "levels", "", "level directory (default: the one recorded, else the config's)")
}

func runReplayCmd(cmd *cobra.Command, args []string) error {
	data, err := replay.LoadReplay(args[0])
	if err != nil {
		return err
	}

	cfg, stages, err := loadReplayLevels(data, replayLevelsDir)
	if err != nil {
		return err
	}

	sess, frames, err := runReplay(cfg, stages, *data, maxFrames)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "final mode: %s after %d frames\n", sess.Mode(), frames)
	return nil
}

// loadReplayLevels loads the levels a recording was made against. levelsDir
// overrides the directory stored in the recording.
func loadReplayLevels(data *replay.ReplayData, levelsDir string) (*config.GameConfig, []*entity.Stage, error) {
	if levelsDir == "" {
		levelsDir = data.LevelsDir
	}
	loader, cfg, err := loadGame(configDir, levelsDir)
	if err != nil {
		return nil, nil, err
	}
	if len(data.Levels) > 0 {
		cfg.Game.Levels = data.Levels
	}
	stages, err := system.LoadStages(loader, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load levels: %w", err)
	}
	return cfg, stages, nil
}

// runReplay feeds recorded input to a fresh silent session at the recorded
// tick rate until the input runs out, the session quits, or limit frames ran.
func runReplay(cfg *config.GameConfig, stages []*entity.Stage, data replay.ReplayData, limit int) (*session.Session, int, error) {
	sess, err := session.New(cfg, stages, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to start session: %w", err)
	}
	if err := sess.Start(); err != nil {
		return nil, 0, err
	}

	replayer := replay.NewReplayer(data)
	rate := replayer.TickRate()
	if rate <= 0 {
		rate = cfg.Physics.Display.Framerate
	}
	dt := 1.0 / float64(rate)

	frames := 0
	for !sess.Done() && (limit <= 0 || frames < limit) {
		in, ok := replayer.GetInput()
		if !ok {
			break
		}
		if err := sess.Update(dt, in); err != nil {
			return nil, frames, fmt.Errorf("frame %d: %w", frames, err)
		}
		frames++
	}
	return sess, frames, nil
}
