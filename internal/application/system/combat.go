package system

import (
	"math"

	"github.com/younwookim/oof/internal/domain/entity"
	"github.com/younwookim/oof/internal/infrastructure/config"
)

// HitboxOutcome is what happened to a hitbox during one update
type HitboxOutcome int

const (
	HitboxAlive HitboxOutcome = iota
	HitboxExpired
	// HitboxFulfilled means the hitbox touched a hazard and kicked its owner
	HitboxFulfilled
)

// String returns the string representation of the outcome
func (o HitboxOutcome) String() string {
	switch o {
	case HitboxAlive:
		return "Alive"
	case HitboxExpired:
		return "Expired"
	case HitboxFulfilled:
		return "Fulfilled"
	default:
		return "Unknown"
	}
}

// CombatSystem handles the attack hitbox and hostile behaviour
type CombatSystem struct {
	config  *config.PhysicsConfig
	hitbox  config.HitboxConfig
	physics *PhysicsSystem
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(cfg *config.PhysicsConfig, hitbox config.HitboxConfig, physics *PhysicsSystem) *CombatSystem {
	return &CombatSystem{
		config:  cfg,
		hitbox:  hitbox,
		physics: physics,
	}
}

func (s *CombatSystem) gap() float64 {
	return s.hitbox.Gap * s.config.Physics.TileSize
}

// SpawnHitbox creates a hitbox anchored above or below the owner
func (s *CombatSystem) SpawnHitbox(owner *entity.Actor, dir entity.AttackDirection) (*entity.Hitbox, error) {
	ts := s.config.Physics.TileSize
	cell := s.hitbox.UpCell
	if dir == entity.AttackDown {
		cell = s.hitbox.DownCell
	}

	h, err := entity.NewHitbox(dir, s.hitbox.Width*ts, s.hitbox.Height*ts, cell)
	if err != nil {
		return nil, err
	}
	h.Follow(&owner.Body, s.gap())
	return h, nil
}

// UpdateHitbox ages the hitbox, keeps it on its owner and checks it against hazards.
// A hitbox that reports Expired or Fulfilled must be dropped by the caller.
func (s *CombatSystem) UpdateHitbox(h *entity.Hitbox, owner *entity.Actor, dt float64, stage *entity.Stage) HitboxOutcome {
	h.TimeAlive += dt
	if h.TimeAlive > s.config.Attack.Lifetime {
		return HitboxExpired
	}

	h.Follow(&owner.Body, s.gap())

	if s.physics.HazardAt(&h.Body, stage) {
		// Up attacks bounce the owner down off the hazard and vice versa
		if h.Direction == entity.AttackUp {
			owner.VelY = -s.config.Attack.Kick
		} else {
			owner.VelY = s.config.Attack.Kick
		}
		return HitboxFulfilled
	}
	return HitboxAlive
}

// StrikeHostiles knocks the first hostile overlapping the hitbox out of play.
// Returns true when a hostile was struck; the hitbox is spent.
func (s *CombatSystem) StrikeHostiles(h *entity.Hitbox, owner *entity.Actor, hostiles []*entity.Actor) bool {
	for _, hostile := range hostiles {
		if !hostile.CollidesWith(&h.Body) {
			continue
		}
		if owner.Y > hostile.Y {
			owner.VelY = s.config.Attack.StrikeBoost
		}
		hostile.Y -= s.config.Attack.Displacement
		return true
	}
	return false
}

// UpdateHostiles runs the chase behaviour.
// A static hostile wakes once the player is close enough on X and starts chasing on the next tick.
func (s *CombatSystem) UpdateHostiles(hostiles []*entity.Actor, player *entity.Actor, dt float64, stage *entity.Stage) {
	wake := s.config.Hostile.WakeDistance * s.config.Physics.TileSize
	for _, hostile := range hostiles {
		if hostile.Static {
			if math.Abs(hostile.X-player.X) < wake {
				hostile.Static = false
			}
			continue
		}

		if hostile.X-player.X < 0 {
			hostile.VelX = s.config.Hostile.Speed
		} else {
			hostile.VelX = -s.config.Hostile.Speed
		}
		s.physics.Integrate(&hostile.Body, dt, stage)
	}
}

// HostileContact returns the first hostile overlapping the player, or nil
func (s *CombatSystem) HostileContact(player *entity.Actor, hostiles []*entity.Actor) *entity.Actor {
	for _, hostile := range hostiles {
		if player.CollidesWith(&hostile.Body) {
			return hostile
		}
	}
	return nil
}
