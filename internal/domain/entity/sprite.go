package entity

// SpriteSet selects which animation sequence an actor plays
type SpriteSet int

const (
	SpriteIdle SpriteSet = iota
	SpriteForward
	SpriteBackward
)

// String returns the string representation of the sprite set
func (s SpriteSet) String() string {
	switch s {
	case SpriteIdle:
		return "Idle"
	case SpriteForward:
		return "Forward"
	case SpriteBackward:
		return "Backward"
	default:
		return "Unknown"
	}
}

// Animation steps through the sprite-sheet cells of the selected set
type Animation struct {
	sequences map[SpriteSet][]int
	set       SpriteSet
	frame     int
}

// NewAnimation starts on the idle set at the given frame
func NewAnimation(sequences map[SpriteSet][]int, startFrame int) Animation {
	a := Animation{
		sequences: sequences,
		set:       SpriteIdle,
	}
	if n := len(sequences[SpriteIdle]); n > 0 && startFrame > 0 {
		a.frame = startFrame % n
	}
	return a
}

// Select switches to another set, keeping the frame index when it still fits.
// Sets without a sequence are ignored.
func (a *Animation) Select(set SpriteSet) {
	seq, ok := a.sequences[set]
	if !ok || len(seq) == 0 {
		return
	}
	a.set = set
	if a.frame >= len(seq) {
		a.frame = 0
	}
}

// Advance moves to the next frame, wrapping at the end of the sequence
func (a *Animation) Advance() {
	n := len(a.sequences[a.set])
	if n == 0 {
		return
	}
	a.frame = (a.frame + 1) % n
}

// Set returns the active sprite set
func (a *Animation) Set() SpriteSet {
	return a.set
}

// Frame returns the index into the active sequence
func (a *Animation) Frame() int {
	return a.frame
}

// Cell returns the sprite-sheet cell to draw, or -1 if nothing is defined
func (a *Animation) Cell() int {
	seq := a.sequences[a.set]
	if len(seq) == 0 {
		return -1
	}
	return seq[a.frame]
}
