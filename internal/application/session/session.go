package session

import (
	"errors"
	"fmt"
	"log"

	"github.com/younwookim/oof/internal/application/state"
	"github.com/younwookim/oof/internal/application/system"
	"github.com/younwookim/oof/internal/domain/entity"
	"github.com/younwookim/oof/internal/infrastructure/config"
)

var (
	// ErrMissingSpawn means a level has fewer than two spawn markers
	ErrMissingSpawn = errors.New("level needs a player and a victory spawn marker")
	// ErrUnknownLevel means a level index is out of range
	ErrUnknownLevel = errors.New("unknown level")
	// ErrNoLevels means a session was created without levels
	ErrNoLevels = errors.New("no levels to play")
)

//go:generate mockgen -destination=mock/mock_cues.go -package=sessionmock github.com/younwookim/oof/internal/application/session Cues

// Cues receives fire-and-forget audio events
type Cues interface {
	PlayBackgroundLoop()
	PlayHitSound()
}

type silentCues struct{}

func (silentCues) PlayBackgroundLoop() {}
func (silentCues) PlayHitSound()       {}

// TransitionFunc is called after every mode change
type TransitionFunc func(from, to state.Mode)

// Session owns the active mode and every live entity
type Session struct {
	cfg     *config.GameConfig
	physics *system.PhysicsSystem
	input   *system.InputSystem
	combat  *system.CombatSystem
	cues    Cues

	levels  []*entity.Stage
	pending map[int]*entity.Stage

	playerTmpl   entity.Template
	victoryTmpl  entity.Template
	hostileTmpls map[string]entity.Template

	mode     state.Mode
	player   *entity.Actor
	victory  *entity.Actor
	hostiles []*entity.Actor
	hitbox   *entity.Hitbox

	animTimer   float64
	started     bool
	done        bool
	transitions []TransitionFunc
}

// New creates a session over the given levels. A nil cues plays nothing.
func New(cfg *config.GameConfig, levels []*entity.Stage, cues Cues) (*Session, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	for i, stage := range levels {
		if err := checkSpawns(stage); err != nil {
			return nil, fmt.Errorf("level %d: %w", i+1, err)
		}
	}
	if cues == nil {
		cues = silentCues{}
	}

	ts := cfg.Physics.Physics.TileSize
	s := &Session{
		cfg:          cfg,
		cues:         cues,
		levels:       append([]*entity.Stage(nil), levels...),
		pending:      make(map[int]*entity.Stage),
		playerTmpl:   cfg.Entities.Player.Template(ts),
		victoryTmpl:  cfg.Entities.Victory.Template(ts),
		hostileTmpls: make(map[string]entity.Template, len(cfg.Entities.Hostiles)),
		mode:         state.MainMenu,
	}
	for kind, tc := range cfg.Entities.Hostiles {
		s.hostileTmpls[kind] = tc.Template(ts)
	}
	for _, t := range []entity.Template{s.playerTmpl, s.victoryTmpl} {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("failed to build templates: %w", err)
		}
	}

	s.physics = system.NewPhysicsSystem(cfg.Physics, cfg.Entities.Tiles.TileTags())
	s.input = system.NewInputSystem(cfg.Physics)
	s.combat = system.NewCombatSystem(cfg.Physics, cfg.Entities.Hitbox, s.physics)
	return s, nil
}

func checkSpawns(stage *entity.Stage) error {
	if stage == nil || len(stage.Markers()) < 2 {
		return ErrMissingSpawn
	}
	return nil
}

// Start enters the main menu and starts the background loop. Calling it again does nothing.
func (s *Session) Start() error {
	if s.started {
		return nil
	}
	s.mode = state.MainMenu
	if err := s.SetEntities(); err != nil {
		return fmt.Errorf("failed to enter %s: %w", s.mode, err)
	}
	s.started = true
	s.cues.PlayBackgroundLoop()
	return nil
}

// OnTransition registers fn to run after every mode change
func (s *Session) OnTransition(fn TransitionFunc) {
	s.transitions = append(s.transitions, fn)
}

// Mode returns the active mode
func (s *Session) Mode() state.Mode { return s.mode }

// Done reports whether quit was requested
func (s *Session) Done() bool { return s.done }

// LevelCount returns the number of playable levels
func (s *Session) LevelCount() int { return len(s.levels) }

// Player returns the player actor, or nil outside a level
func (s *Session) Player() *entity.Actor { return s.player }

// Victory returns the level exit, or nil outside a level
func (s *Session) Victory() *entity.Actor { return s.victory }

// Hostiles returns the live hostiles of the current level
func (s *Session) Hostiles() []*entity.Actor { return s.hostiles }

// Tags returns the tile tag table the session's physics uses
func (s *Session) Tags() entity.TileTags { return s.physics.Tags() }

// Hitbox returns the live attack volume, or nil
func (s *Session) Hitbox() *entity.Hitbox { return s.hitbox }

// Stage returns the active level's grid, or nil outside a level
func (s *Session) Stage() *entity.Stage {
	if !s.mode.IsLevel() {
		return nil
	}
	return s.levels[s.mode.Level]
}

// ReplaceLevel swaps in a reloaded level. The level being played keeps its
// current grid until it is entered again.
func (s *Session) ReplaceLevel(i int, stage *entity.Stage) error {
	if i < 0 || i >= len(s.levels) {
		return fmt.Errorf("%w: %d", ErrUnknownLevel, i+1)
	}
	if err := checkSpawns(stage); err != nil {
		return fmt.Errorf("level %d: %w", i+1, err)
	}
	if s.mode.IsLevel() && s.mode.Level == i {
		s.pending[i] = stage
		return nil
	}
	s.levels[i] = stage
	delete(s.pending, i)
	return nil
}

// SetEntities rebuilds the entity set for the current mode from the level's
// spawn markers. Marker 0 is the player, marker 1 the victory, and any later
// marker whose type names a hostile template spawns that hostile.
func (s *Session) SetEntities() error {
	s.hitbox = nil
	s.hostiles = nil
	s.animTimer = 0

	if !s.mode.IsLevel() {
		s.player = nil
		s.victory = nil
		return nil
	}

	stage := s.levels[s.mode.Level]
	markers := stage.Markers()
	if len(markers) < 2 {
		return ErrMissingSpawn
	}
	motion := s.physics.Motion()

	player, err := s.playerTmpl.Spawn(markers[0].Type, markers[0].X, markers[0].Y, motion)
	if err != nil {
		return fmt.Errorf("failed to spawn player: %w", err)
	}
	victory, err := s.victoryTmpl.Spawn(markers[1].Type, markers[1].X, markers[1].Y, motion)
	if err != nil {
		return fmt.Errorf("failed to spawn victory: %w", err)
	}

	var hostiles []*entity.Actor
	for _, m := range markers[2:] {
		tmpl, ok := s.hostileTmpls[m.Type]
		if !ok {
			continue
		}
		h, err := tmpl.Spawn(m.Type, m.X, m.Y, motion)
		if err != nil {
			return fmt.Errorf("failed to spawn %s: %w", m.Type, err)
		}
		hostiles = append(hostiles, h)
	}

	s.player = player
	s.victory = victory
	s.hostiles = hostiles
	return nil
}

// Update runs one tick. At most one mode change happens per call.
func (s *Session) Update(dt float64, in system.InputState) error {
	if s.done {
		return nil
	}
	if in.IsPressed(system.ActionQuit) {
		s.done = true
		return nil
	}

	if !s.mode.IsLevel() {
		if in.IsPressed(system.ActionConfirm) {
			return s.transition(state.EventConfirm)
		}
		return nil
	}

	if in.IsPressed(system.ActionSkip) {
		return s.transition(state.EventSkip)
	}
	return s.updateLevel(dt, in)
}

func (s *Session) updateLevel(dt float64, in system.InputState) error {
	stage := s.levels[s.mode.Level]

	intents := system.PlayerIntents(in)
	for _, intent := range intents {
		if attack, ok := intent.(system.AttackIntent); ok && s.hitbox == nil {
			h, err := s.combat.SpawnHitbox(s.player, attack.Direction)
			if err != nil {
				return fmt.Errorf("failed to spawn hitbox: %w", err)
			}
			s.hitbox = h
		}
	}
	s.input.UpdatePlayer(s.player, intents)

	if s.player.CollidesWith(&s.victory.Body) {
		return s.transition(state.EventVictory)
	}

	if s.hitbox != nil {
		switch s.combat.UpdateHitbox(s.hitbox, s.player, dt, stage) {
		case system.HitboxExpired, system.HitboxFulfilled:
			s.hitbox = nil
		}
	}

	s.combat.UpdateHostiles(s.hostiles, s.player, dt, stage)

	report := s.physics.Integrate(&s.player.Body, dt, stage)
	if report.Fatal() {
		return s.transition(state.EventDeath)
	}
	if s.combat.HostileContact(s.player, s.hostiles) != nil {
		return s.transition(state.EventDeath)
	}

	if s.hitbox != nil && s.combat.StrikeHostiles(s.hitbox, s.player, s.hostiles) {
		s.hitbox = nil
	}

	s.animate(dt)
	return nil
}

// animate steps sprite frames at the configured rate. Dormant hostiles hold their frame.
func (s *Session) animate(dt float64) {
	frame := 1 / s.cfg.Physics.Animation.FPS
	s.animTimer += dt
	for s.animTimer >= frame {
		s.animTimer -= frame
		s.player.Anim.Advance()
		s.victory.Anim.Advance()
		for _, h := range s.hostiles {
			if !h.Static {
				h.Anim.Advance()
			}
		}
	}
}

func (s *Session) transition(e state.Event) error {
	from := s.mode
	to := state.Next(from, e, len(s.levels))
	if to == from {
		return nil
	}

	if to.IsLevel() {
		if stage, ok := s.pending[to.Level]; ok {
			s.levels[to.Level] = stage
			delete(s.pending, to.Level)
			log.Printf("Level %d reloaded", to.Level+1)
		}
	}

	s.mode = to
	if err := s.SetEntities(); err != nil {
		return fmt.Errorf("failed to enter %s: %w", to, err)
	}
	if e == state.EventVictory {
		s.cues.PlayHitSound()
	}
	for _, fn := range s.transitions {
		fn(from, to)
	}
	return nil
}
