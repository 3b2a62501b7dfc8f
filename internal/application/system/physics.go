package system

import (
	"math"

	"github.com/younwookim/oof/internal/domain/entity"
	"github.com/younwookim/oof/internal/infrastructure/config"
)

// CollisionReport is what one integration step observed
type CollisionReport struct {
	Top, Bottom, Left, Right bool
	Hazard                   bool
	// OutOfBounds is set when the bottom probe left the grid
	OutOfBounds bool
}

// Fatal reports whether the body fell out of the world or touched a hazard
func (r CollisionReport) Fatal() bool {
	return r.OutOfBounds || r.Hazard
}

// PhysicsSystem integrates bodies and resolves them against the tile grid
type PhysicsSystem struct {
	config *config.PhysicsConfig
	tags   entity.TileTags
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig, tags entity.TileTags) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		tags:   tags,
	}
}

// Tags returns the tile tag table the system resolves against
func (s *PhysicsSystem) Tags() entity.TileTags {
	return s.tags
}

// Motion returns the friction and gravity every spawned body gets
func (s *PhysicsSystem) Motion() entity.Motion {
	return entity.Motion{
		FrictionX: s.config.Physics.FrictionX,
		FrictionY: s.config.Physics.FrictionY,
		Gravity:   s.config.Physics.Gravity,
	}
}

// Integrate advances a body by dt seconds and resolves tile collisions.
// Static bodies are left untouched.
func (s *PhysicsSystem) Integrate(b *entity.Body, dt float64, stage *entity.Stage) CollisionReport {
	if b.Static {
		return CollisionReport{}
	}

	b.ClearCollisions()
	s.decayWallJump(b, dt)

	b.VelX = lerp(b.VelX, 0, clamp01(dt*b.FrictionX))
	b.VelY = lerp(b.VelY, 0, clamp01(dt*b.FrictionY))

	b.VelX += b.AccX * dt
	b.VelY += (b.AccY + b.Gravity) * dt

	b.X += b.VelX * dt
	b.Y += b.VelY * dt

	outOfBounds := s.resolveTiles(b, stage)

	return CollisionReport{
		Top:         b.CollidedTop,
		Bottom:      b.CollidedBottom,
		Left:        b.CollidedLeft,
		Right:       b.CollidedRight,
		Hazard:      b.HazardCollide,
		OutOfBounds: outOfBounds,
	}
}

// decayWallJump closes an armed window once it has been open too long
func (s *PhysicsSystem) decayWallJump(b *entity.Body, dt float64) {
	if !b.WallJumpActive {
		return
	}
	b.WallJumpTimer += dt
	if b.WallJumpTimer > s.config.WallJump.Window {
		b.DisarmWallJump()
	}
}

// resolveTiles probes bottom, top, left and right edge centers in that order.
// Each probe sees the position left by the previous one.
// Returns true when the bottom probe is outside the grid.
func (s *PhysicsSystem) resolveTiles(b *entity.Body, stage *entity.Stage) bool {
	ts := stage.TileSize
	eps := ts * s.config.Physics.Epsilon
	outOfBounds := false

	// Bottom: push up to the top edge of the tile row
	gx, gy := stage.WorldToTile(b.X, b.Bottom())
	if id, ok := stage.Tile(gx, gy); !ok {
		outOfBounds = true
	} else {
		if s.tags.IsSolid(id) {
			edge := -ts * float64(gy)
			b.Y += math.Abs(edge-b.Bottom()) + eps
			b.VelY, b.AccY = 0, 0
			b.CollidedBottom = true
		}
		s.markHazard(b, id)
	}

	// Top: push down to the bottom edge of the tile row
	gx, gy = stage.WorldToTile(b.X, b.Top())
	if id, ok := stage.Tile(gx, gy); ok {
		if s.tags.IsSolid(id) {
			edge := -ts*float64(gy) - ts
			b.Y -= math.Abs(edge-b.Top()) + eps
			b.VelY, b.AccY = 0, 0
			b.CollidedTop = true
		}
		s.markHazard(b, id)
	}

	// Left: push right to the right edge of the tile column
	gx, gy = stage.WorldToTile(b.Left(), b.Y)
	if id, ok := stage.Tile(gx, gy); ok {
		if s.tags.IsSolid(id) {
			edge := ts*float64(gx) + ts
			b.X += math.Abs(edge-b.Left()) + eps
			b.VelX, b.AccX = 0, 0
			b.CollidedLeft = true
			s.armWallJump(b, id)
		}
		s.markHazard(b, id)
	}

	// Right: push left to the left edge of the tile column
	gx, gy = stage.WorldToTile(b.Right(), b.Y)
	if id, ok := stage.Tile(gx, gy); ok {
		if s.tags.IsSolid(id) {
			edge := ts * float64(gx)
			b.X -= math.Abs(edge-b.Right()) + eps
			b.VelX, b.AccX = 0, 0
			b.CollidedRight = true
			s.armWallJump(b, id)
		}
		s.markHazard(b, id)
	}

	return outOfBounds
}

func (s *PhysicsSystem) markHazard(b *entity.Body, id entity.TileID) {
	if s.tags.IsHazard(id) {
		b.HazardCollide = true
	}
}

func (s *PhysicsSystem) armWallJump(b *entity.Body, id entity.TileID) {
	if s.tags.IsClimbable(id) {
		b.WallJumpActive = true
		b.WallJumpTimer = 0
	}
}

// HazardAt reports whether any of the body's four edge probes sits on a hazard tile
func (s *PhysicsSystem) HazardAt(b *entity.Body, stage *entity.Stage) bool {
	probes := [4][2]float64{
		{b.X, b.Bottom()},
		{b.X, b.Top()},
		{b.Left(), b.Y},
		{b.Right(), b.Y},
	}
	for _, p := range probes {
		gx, gy := stage.WorldToTile(p[0], p[1])
		if id, ok := stage.Tile(gx, gy); ok && s.tags.IsHazard(id) {
			return true
		}
	}
	return false
}

func lerp(from, to, t float64) float64 {
	return (1-t)*from + t*to
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
