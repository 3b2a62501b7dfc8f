package entity

import (
	"fmt"
	"math"
)

// Body is the kinematic state of an entity.
// (X, Y) is the center in world units; Width and Height are full extents.
type Body struct {
	X, Y       float64
	VelX, VelY float64
	AccX, AccY float64

	FrictionX, FrictionY float64
	Gravity              float64

	Width, Height float64

	// Static bodies are never integrated
	Static bool

	CollidedTop    bool
	CollidedBottom bool
	CollidedLeft   bool
	CollidedRight  bool
	HazardCollide  bool

	// Wall-jump window. Left/right collision flags stay latched while it is armed.
	WallJumpActive bool
	WallJumpTimer  float64
}

// NewBody creates a body centered at (x, y)
func NewBody(x, y, width, height float64, static bool) (*Body, error) {
	if err := validateExtent(width, height); err != nil {
		return nil, err
	}
	return &Body{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Static: static,
	}, nil
}

func validateExtent(width, height float64) error {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return fmt.Errorf("%w: %vx%v", ErrInvalidEntityExtent, width, height)
	}
	return nil
}

// HalfWidth returns half of the body's width
func (b *Body) HalfWidth() float64 {
	return b.Width * 0.5
}

// HalfHeight returns half of the body's height
func (b *Body) HalfHeight() float64 {
	return b.Height * 0.5
}

// Left returns the world X of the left edge
func (b *Body) Left() float64 {
	return b.X - b.HalfWidth()
}

// Right returns the world X of the right edge
func (b *Body) Right() float64 {
	return b.X + b.HalfWidth()
}

// Top returns the world Y of the top edge
func (b *Body) Top() float64 {
	return b.Y + b.HalfHeight()
}

// Bottom returns the world Y of the bottom edge
func (b *Body) Bottom() float64 {
	return b.Y - b.HalfHeight()
}

// CollidesWith reports whether two bodies' bounding boxes overlap.
// Touching edges count as overlap.
func (b *Body) CollidesWith(other *Body) bool {
	dx := math.Abs(b.X - other.X)
	dy := math.Abs(b.Y - other.Y)
	return dx-(b.HalfWidth()+other.HalfWidth()) <= 0 &&
		dy-(b.HalfHeight()+other.HalfHeight()) <= 0
}

// ClearCollisions resets the per-tick collision flags.
// Left and right are kept while the wall-jump window is armed.
func (b *Body) ClearCollisions() {
	b.CollidedTop = false
	b.CollidedBottom = false
	b.HazardCollide = false
	if !b.WallJumpActive {
		b.CollidedLeft = false
		b.CollidedRight = false
	}
}

// DisarmWallJump closes the wall-jump window and drops the latched wall contact
func (b *Body) DisarmWallJump() {
	b.WallJumpActive = false
	b.WallJumpTimer = 0
	b.CollidedLeft = false
	b.CollidedRight = false
}
