// Package scene defines the Scene interface driven by the ebiten host.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the host. The game loop forwards Update and Draw
// to the current scene and switches when Update returns a new one.
type Scene interface {
	// Name identifies the scene in logs.
	Name() string

	// Update advances the scene by dt seconds. A non-nil next scene replaces
	// this one; an error stops the host.
	Update(dt float64) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter is called each time the scene becomes current.
	OnEnter()

	// OnExit is called when the scene is replaced or the host shuts down.
	OnExit()
}
