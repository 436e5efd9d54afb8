// Package game provides the ebiten.Game that drives scenes and samples the
// keyboard.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/motionkit/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	log     *zap.Logger
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0,
		log:     log,
	}
	g.current.OnEnter()
	g.log.Debug("scene entered", zap.String("scene", initialScene.Name()))
	return g
}

// Update updates the current scene and handles scene transitions.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	if next != nil {
		g.log.Info("scene changed",
			zap.String("from", g.current.Name()),
			zap.String("to", next.Name()),
		)
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time passed to scenes. Replays use the trace's
// frame length.
func (g *Game) SetDT(dt float64) {
	if dt > 0 {
		g.dt = dt
	}
}

// DT returns the delta time passed to scenes
func (g *Game) DT() float64 {
	return g.dt
}

// Close exits the current scene
func (g *Game) Close() {
	g.current.OnExit()
}
