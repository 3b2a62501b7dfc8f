package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/oof/internal/domain/entity"
	"github.com/younwookim/oof/internal/infrastructure/config"
)

// Action is a bit set of logical player actions
type Action uint16

const (
	ActionMoveLeft Action = 1 << iota
	ActionMoveRight
	ActionJump
	ActionAttackUp
	ActionAttackDown
	ActionWallJumpLeft
	ActionWallJumpRight
	ActionConfirm
	ActionSkip
	ActionQuit
)

var actionNames = []struct {
	action Action
	name   string
}{
	{ActionMoveLeft, "moveLeft"},
	{ActionMoveRight, "moveRight"},
	{ActionJump, "jump"},
	{ActionAttackUp, "attackUp"},
	{ActionAttackDown, "attackDown"},
	{ActionWallJumpLeft, "wallJumpLeft"},
	{ActionWallJumpRight, "wallJumpRight"},
	{ActionConfirm, "confirm"},
	{ActionSkip, "skip"},
	{ActionQuit, "quit"},
}

// String lists the set actions joined by '|'
func (a Action) String() string {
	if a == 0 {
		return "none"
	}
	s := ""
	for _, n := range actionNames {
		if a&n.action == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += n.name
	}
	return s
}

// InputState holds the actions held this tick and the ones that went down this tick
type InputState struct {
	Held    Action
	Pressed Action
}

// IsHeld reports whether the action is currently held
func (in InputState) IsHeld(a Action) bool {
	return in.Held&a != 0
}

// IsPressed reports whether the action went down this tick
func (in InputState) IsPressed(a Action) bool {
	return in.Pressed&a != 0
}

// KeyBinding maps a physical key to a logical action
type KeyBinding struct {
	Key    ebiten.Key
	Action Action
}

// DefaultBindings is the keyboard layout of the game
var DefaultBindings = []KeyBinding{
	{ebiten.KeyArrowLeft, ActionMoveLeft},
	{ebiten.KeyArrowRight, ActionMoveRight},
	{ebiten.KeySpace, ActionJump},
	{ebiten.KeySpace, ActionConfirm},
	{ebiten.KeyEnter, ActionConfirm},
	{ebiten.KeyW, ActionAttackUp},
	{ebiten.KeyS, ActionAttackDown},
	{ebiten.KeyA, ActionWallJumpLeft},
	{ebiten.KeyD, ActionWallJumpRight},
	{ebiten.KeyT, ActionSkip},
	{ebiten.KeyQ, ActionQuit},
	{ebiten.KeyEscape, ActionQuit},
}

// InputSystem handles player input
type InputSystem struct {
	config   *config.PhysicsConfig
	bindings []KeyBinding
}

// NewInputSystem creates a new input system with the default bindings
func NewInputSystem(cfg *config.PhysicsConfig) *InputSystem {
	return &InputSystem{
		config:   cfg,
		bindings: DefaultBindings,
	}
}

// Sample folds key state into an InputState using the given probes
func (s *InputSystem) Sample(pressed, justPressed func(ebiten.Key) bool) InputState {
	var in InputState
	for _, b := range s.bindings {
		if pressed(b.Key) {
			in.Held |= b.Action
		}
		if justPressed(b.Key) {
			in.Pressed |= b.Action
		}
	}
	return in
}

// GetInput reads the current keyboard state
func (s *InputSystem) GetInput() InputState {
	return s.Sample(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
}

// UpdatePlayer applies movement, jump and wall-jump intents to the player.
// Attack intents are handled by the combat system.
func (s *InputSystem) UpdatePlayer(player *entity.Actor, intents []Intent) {
	moving := false
	for _, intent := range intents {
		switch it := intent.(type) {
		case MoveIntent:
			moving = true
			s.handleMovement(player, it)
		case JumpIntent:
			s.handleJump(player)
		case WallJumpIntent:
			s.handleWallJump(player, it)
		}
	}

	if !moving && player.CollidedBottom {
		player.AccX = 0
		player.Anim.Select(entity.SpriteIdle)
	}
}

// handleMovement accelerates toward the held direction
func (s *InputSystem) handleMovement(player *entity.Actor, it MoveIntent) {
	accel := s.config.Movement.Acceleration
	if it.Direction < 0 {
		player.AccX = -accel
		player.Anim.Select(entity.SpriteForward)
	} else {
		player.AccX = accel
		player.Anim.Select(entity.SpriteBackward)
	}
}

// handleJump only fires while standing on something
func (s *InputSystem) handleJump(player *entity.Actor) {
	if !player.CollidedBottom {
		return
	}
	player.VelY = s.config.Movement.JumpVelocity
}

// handleWallJump launches away from the wall that armed the window
func (s *InputSystem) handleWallJump(player *entity.Actor, it WallJumpIntent) {
	if !player.WallJumpActive {
		return
	}

	wj := s.config.WallJump
	switch {
	case it.Side < 0 && player.CollidedLeft:
		player.VelX = wj.VelocityX
		player.AccX = wj.Acceleration
		player.Anim.Select(entity.SpriteBackward)
	case it.Side > 0 && player.CollidedRight:
		player.VelX = -wj.VelocityX
		player.AccX = -wj.Acceleration
		player.Anim.Select(entity.SpriteForward)
	default:
		return
	}
	player.VelY = wj.VelocityY
	player.DisarmWallJump()
}
