package config

import (
	"errors"
	"fmt"
)

// PhysicsConfig is the root config for physics.yaml
type PhysicsConfig struct {
	Display   DisplayConfig   `yaml:"display"`
	Physics   PhysicsSettings `yaml:"physics"`
	Movement  MovementConfig  `yaml:"movement"`
	WallJump  WallJumpConfig  `yaml:"wallJump"`
	Attack    AttackConfig    `yaml:"attack"`
	Hostile   HostileConfig   `yaml:"hostile"`
	Animation AnimationConfig `yaml:"animation"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	Scale        int `yaml:"scale"`
	Framerate    int `yaml:"framerate"`
	// PixelsPerUnit maps world units to screen pixels
	PixelsPerUnit float64 `yaml:"pixelsPerUnit"`
	// FadeSeconds is the length of the fade-in when a mode is entered
	FadeSeconds float64 `yaml:"fadeSeconds"`
}

type PhysicsSettings struct {
	TileSize  float64 `yaml:"tileSize"`
	Gravity   float64 `yaml:"gravity"`
	FrictionX float64 `yaml:"frictionX"`
	FrictionY float64 `yaml:"frictionY"`
	// Epsilon is the extra push-out after penetration resolution, as a fraction of a tile
	Epsilon float64 `yaml:"epsilon"`
}

type MovementConfig struct {
	Acceleration float64 `yaml:"acceleration"`
	JumpVelocity float64 `yaml:"jumpVelocity"`
}

type WallJumpConfig struct {
	Window       float64 `yaml:"window"`
	VelocityX    float64 `yaml:"velocityX"`
	VelocityY    float64 `yaml:"velocityY"`
	Acceleration float64 `yaml:"acceleration"`
}

type AttackConfig struct {
	Lifetime     float64 `yaml:"lifetime"`
	Kick         float64 `yaml:"kick"`
	StrikeBoost  float64 `yaml:"strikeBoost"`
	Displacement float64 `yaml:"displacement"`
}

type HostileConfig struct {
	Speed float64 `yaml:"speed"`
	// WakeDistance is measured in tiles
	WakeDistance float64 `yaml:"wakeDistance"`
}

type AnimationConfig struct {
	FPS float64 `yaml:"fps"`
}

// Validate checks the values the simulation divides by or compares against
func (c *PhysicsConfig) Validate() error {
	var errs []error
	if !(c.Physics.TileSize > 0) {
		errs = append(errs, fmt.Errorf("physics.tileSize must be positive, got %v", c.Physics.TileSize))
	}
	if c.Physics.Epsilon < 0 || c.Physics.Epsilon >= 0.01 {
		errs = append(errs, fmt.Errorf("physics.epsilon must be in [0, 0.01), got %v", c.Physics.Epsilon))
	}
	if c.Physics.FrictionX < 0 || c.Physics.FrictionY < 0 {
		errs = append(errs, errors.New("physics friction must not be negative"))
	}
	if !(c.WallJump.Window > 0) {
		errs = append(errs, fmt.Errorf("wallJump.window must be positive, got %v", c.WallJump.Window))
	}
	if !(c.Attack.Lifetime > 0) {
		errs = append(errs, fmt.Errorf("attack.lifetime must be positive, got %v", c.Attack.Lifetime))
	}
	if !(c.Animation.FPS > 0) {
		errs = append(errs, fmt.Errorf("animation.fps must be positive, got %v", c.Animation.FPS))
	}
	if c.Display.Framerate <= 0 {
		errs = append(errs, fmt.Errorf("display.framerate must be positive, got %d", c.Display.Framerate))
	}
	return errors.Join(errs...)
}
