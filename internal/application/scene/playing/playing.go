// Package playing provides the main gameplay scene.
package playing

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/oof/internal/application/scene"
	"github.com/younwookim/oof/internal/application/session"
	"github.com/younwookim/oof/internal/application/state"
	"github.com/younwookim/oof/internal/application/system"
	"github.com/younwookim/oof/internal/domain/entity"
	"github.com/younwookim/oof/internal/infrastructure/config"
)

// InputSource supplies one tick of logical actions
type InputSource interface {
	GetInput() system.InputState
}

// ProgressTracker is told about level entries and wins
type ProgressTracker interface {
	Reached(level int)
	Won()
}

// LevelReload carries a re-parsed level for hot swapping
type LevelReload struct {
	Index int
	Stage *entity.Stage
}

// Options configures the optional parts of the scene
type Options struct {
	// RecordPath enables input recording when set
	RecordPath string
	// LevelsDir is stored in recordings so replays load the same files
	LevelsDir string
	Reloads    <-chan LevelReload
	Progress   ProgressTracker
}

// Playing is the gameplay scene: it feeds input to the session and draws it
type Playing struct {
	config  *config.GameConfig
	session *session.Session
	input   InputSource
	opts    Options
	screenW int
	screenH int

	fade      *gween.Tween
	fadeAlpha float32

	recorder *Recorder
	renderer *renderer
}

// New creates a new Playing scene around a session
func New(cfg *config.GameConfig, sess *session.Session, input InputSource, opts Options) *Playing {
	p := &Playing{
		config:  cfg,
		session: sess,
		input:   input,
		opts:    opts,
		screenW: cfg.Physics.Display.ScreenWidth,
		screenH: cfg.Physics.Display.ScreenHeight,
	}

	if opts.RecordPath != "" {
		p.recorder = NewRecorder(cfg.Game.Title, cfg.Game.Levels, cfg.Physics.Display.Framerate)
		p.recorder.data.LevelsDir = opts.LevelsDir
		log.Printf("Recording enabled: %s", opts.RecordPath)
	}

	sess.OnTransition(p.onTransition)
	return p
}

func (p *Playing) onTransition(from, to state.Mode) {
	p.startFade()

	if p.opts.Progress != nil {
		switch {
		case to.IsLevel():
			p.opts.Progress.Reached(to.Level)
		case to == state.Win:
			p.opts.Progress.Won()
		}
	}

	if to == state.GameOver && p.recorder != nil {
		p.saveRecording()
	}
}

func (p *Playing) startFade() {
	secs := float32(p.config.Physics.Display.FadeSeconds)
	if secs <= 0 {
		p.fade = nil
		p.fadeAlpha = 0
		return
	}
	p.fade = gween.New(1, 0, secs, ease.OutQuad)
	p.fadeAlpha = 1
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.applyReloads()

	input := p.input.GetInput()
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	if err := p.session.Update(dt, input); err != nil {
		return nil, err
	}

	if p.fade != nil {
		alpha, done := p.fade.Update(float32(dt))
		p.fadeAlpha = alpha
		if done {
			p.fade = nil
			p.fadeAlpha = 0
		}
	}

	if p.session.Done() {
		if p.recorder != nil {
			p.saveRecording()
		}
		return nil, ebiten.Termination
	}
	return nil, nil // nil = stay on this scene
}

// applyReloads drains pending hot reloads without blocking
func (p *Playing) applyReloads() {
	if p.opts.Reloads == nil {
		return
	}
	for {
		select {
		case r, ok := <-p.opts.Reloads:
			if !ok {
				p.opts.Reloads = nil
				return
			}
			if err := p.session.ReplaceLevel(r.Index, r.Stage); err != nil {
				log.Printf("Warning: level reload rejected: %v", err)
				continue
			}
			log.Printf("Level %d reload queued", r.Index+1)
			if p.recorder != nil {
				log.Printf("Warning: level %d changed while recording; replays load the file as saved", r.Index+1)
			}
		default:
			return
		}
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.opts.RecordPath
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// FadeAlpha returns the opacity of the mode-entry overlay
func (p *Playing) FadeAlpha() float32 {
	return p.fadeAlpha
}

// Session returns the session this scene drives
func (p *Playing) Session() *session.Session {
	return p.session
}

// OnEnter starts the session (implements scene.Scene)
func (p *Playing) OnEnter() {
	if err := p.session.Start(); err != nil {
		log.Printf("Warning: %v", err)
	}
	p.startFade()
}

// OnExit stops recording (implements scene.Scene)
func (p *Playing) OnExit() {
	if p.recorder != nil {
		p.recorder.Stop()
	}
}

// Layout returns the logical screen size
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
