package entity

// Motion holds the per-body physics constants applied at spawn
type Motion struct {
	FrictionX float64
	FrictionY float64
	Gravity   float64
}

// Template describes how to build an actor of one kind
type Template struct {
	Width, Height float64
	Static        bool
	StartFrame    int
	Sprites       map[SpriteSet][]int
}

// Validate checks that the template can produce a body
func (t Template) Validate() error {
	return validateExtent(t.Width, t.Height)
}

// Actor is an animated body: the player, the victory marker or a hostile
type Actor struct {
	Body
	Kind string
	Anim Animation
}

// Spawn builds a fresh actor centered on (x, y)
func (t Template) Spawn(kind string, x, y float64, m Motion) (*Actor, error) {
	body, err := NewBody(x, y, t.Width, t.Height, t.Static)
	if err != nil {
		return nil, err
	}
	body.FrictionX = m.FrictionX
	body.FrictionY = m.FrictionY
	body.Gravity = m.Gravity

	return &Actor{
		Body: *body,
		Kind: kind,
		Anim: NewAnimation(t.Sprites, t.StartFrame),
	}, nil
}
