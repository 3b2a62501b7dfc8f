package system

import "github.com/younwookim/oof/internal/domain/entity"

// Intent represents an action that the player wants to perform
type Intent interface {
	isIntent()
}

// MoveIntent represents a horizontal movement intention
type MoveIntent struct {
	Direction int // -1 for left, 1 for right
}

func (MoveIntent) isIntent() {}

// JumpIntent represents a jump intention
type JumpIntent struct{}

func (JumpIntent) isIntent() {}

// WallJumpIntent asks to push off the wall on Side
type WallJumpIntent struct {
	Side int // -1 for the left wall, 1 for the right wall
}

func (WallJumpIntent) isIntent() {}

// AttackIntent represents an attack intention
type AttackIntent struct {
	Direction entity.AttackDirection
}

func (AttackIntent) isIntent() {}

// PlayerIntents translates one tick of input into intents.
// Edge-triggered actions (attacks, wall jumps) come first, then held ones.
func PlayerIntents(in InputState) []Intent {
	var intents []Intent

	if in.IsPressed(ActionAttackUp) {
		intents = append(intents, AttackIntent{Direction: entity.AttackUp})
	}
	if in.IsPressed(ActionAttackDown) {
		intents = append(intents, AttackIntent{Direction: entity.AttackDown})
	}
	if in.IsPressed(ActionWallJumpLeft) {
		intents = append(intents, WallJumpIntent{Side: -1})
	}
	if in.IsPressed(ActionWallJumpRight) {
		intents = append(intents, WallJumpIntent{Side: 1})
	}

	if in.IsHeld(ActionMoveLeft) {
		intents = append(intents, MoveIntent{Direction: -1})
	}
	if in.IsHeld(ActionMoveRight) {
		intents = append(intents, MoveIntent{Direction: 1})
	}
	if in.IsHeld(ActionJump) {
		intents = append(intents, JumpIntent{})
	}
	return intents
}
