package entity

// AttackDirection is the side of the owner a hitbox is anchored to
type AttackDirection int

const (
	AttackUp AttackDirection = iota
	AttackDown
)

// String returns the string representation of the direction
func (d AttackDirection) String() string {
	switch d {
	case AttackUp:
		return "Up"
	case AttackDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Hitbox is a short-lived attack volume that follows its owner
type Hitbox struct {
	Body      Body
	Direction AttackDirection
	TimeAlive float64
	Cell      int
}

// NewHitbox creates a static attack body; its position is set by Follow
func NewHitbox(dir AttackDirection, width, height float64, cell int) (*Hitbox, error) {
	body, err := NewBody(0, 0, width, height, true)
	if err != nil {
		return nil, err
	}
	return &Hitbox{
		Body:      *body,
		Direction: dir,
		Cell:      cell,
	}, nil
}

// Follow anchors the hitbox above or below the owner, offset by half the
// owner's height plus gap
func (h *Hitbox) Follow(owner *Body, gap float64) {
	offset := owner.HalfHeight() + gap
	h.Body.X = owner.X
	if h.Direction == AttackUp {
		h.Body.Y = owner.Y + offset
	} else {
		h.Body.Y = owner.Y - offset
	}
}
