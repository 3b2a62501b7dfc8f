// Package scene defines the Scene interface the game loop delegates to.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game.
//
// Update returns the next scene to switch to, or nil to stay. Returning an
// error ends the game loop; ebiten.Termination ends it cleanly.
type Scene interface {
	// Update advances the scene by dt seconds (one fixed tick).
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called every time the scene becomes current.
	OnEnter()

	// OnExit is called when the scene is replaced.
	OnExit()
}
