// Package playing provides the gameplay scene: one simulation fed by an
// input source and drawn as debug rectangles.
package playing

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/younwookim/motionkit/internal/application/replay"
	"github.com/younwookim/motionkit/internal/application/scene"
	"github.com/younwookim/motionkit/internal/application/sim"
	"github.com/younwookim/motionkit/internal/application/state"
	"github.com/younwookim/motionkit/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorSolid      = color.RGBA{80, 80, 100, 255}
	colorPlayer     = color.RGBA{100, 200, 100, 255}
	colorFlash      = color.RGBA{255, 255, 255, 200}
	colorEnemy      = color.RGBA{200, 100, 100, 255}
	colorProjectile = color.RGBA{255, 200, 100, 255}
	colorDead       = color.RGBA{90, 90, 90, 255}
	colorHealthBG   = color.RGBA{60, 60, 60, 255}
	colorHealthFG   = color.RGBA{100, 200, 100, 255}
	colorPaused     = color.RGBA{0, 0, 0, 128}
	colorGameOver   = color.RGBA{100, 0, 0, 180}
)

// maxTriggers is how many recent animation triggers the HUD lists
const maxTriggers = 4

// InputSource yields one input sample per frame; ok is false once it has
// run out (a finished replay)
type InputSource interface {
	GetInput() (in entity.InputSample, ok bool)
}

// Options configures the scene
type Options struct {
	ScreenW, ScreenH int
	Scale            float64 // pixels per metre
	DT               float64 // frame length written to recordings
	Stage            string
	RecordPath       string // empty disables recording
}

// Playing is the main gameplay scene
type Playing struct {
	newDriver replay.DriverFactory
	driver    *sim.Driver
	input     InputSource
	opts      Options
	log       *zap.Logger

	state    state.GameState
	cam      camera
	snap     sim.Snapshot
	triggers []string
	runs     int

	recorder *replay.Recorder
}

// New creates the scene and its first simulation
func New(newDriver replay.DriverFactory, input InputSource, opts Options, log *zap.Logger) (*Playing, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Scale <= 0 {
		opts.Scale = 16
	}
	if opts.DT <= 0 {
		opts.DT = replay.DefaultDT
	}

	p := &Playing{
		newDriver: newDriver,
		input:     input,
		opts:      opts,
		log:       log,
		cam: camera{
			scale:   opts.Scale,
			screenW: float64(opts.ScreenW),
			screenH: float64(opts.ScreenH),
		},
	}
	if err := p.reset(); err != nil {
		return nil, err
	}
	return p, nil
}

// reset starts a fresh run
func (p *Playing) reset() error {
	d, err := p.newDriver()
	if err != nil {
		return fmt.Errorf("playing: %w", err)
	}
	p.driver = d
	p.snap = d.Snapshot()
	p.triggers = p.triggers[:0]
	p.runs++

	if r, ok := p.input.(interface{ Reset() }); ok {
		r.Reset()
	}
	if p.opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(int64(p.runs), p.opts.Stage, p.opts.DT)
		p.log.Info("recording enabled", zap.String("path", p.opts.RecordPath), zap.Int("run", p.runs))
	}
	return nil
}

// Name implements scene.Scene
func (p *Playing) Name() string { return "playing" }

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		p.transition(state.EventPause)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if p.state == state.StateGameOver || p.state == state.StateTraceEnded {
			if err := p.restart(); err != nil {
				return nil, err
			}
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		p.saveRecording()
	}

	return nil, p.tick(dt)
}

// tick advances the simulation one frame when the state allows it
func (p *Playing) tick(dt float64) error {
	if !p.state.Steps() {
		return nil
	}

	in, ok := p.input.GetInput()
	if !ok {
		p.transition(state.EventInputEnded)
		return nil
	}
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}

	if err := p.driver.Step(dt, in); err != nil {
		return fmt.Errorf("playing: step %d: %w", p.driver.Tick(), err)
	}
	p.snap = p.driver.Snapshot()
	for _, tr := range p.driver.Frame().Triggers {
		p.noteTrigger(tr)
	}

	if !p.playerAlive() {
		p.transition(state.EventPlayerDied)
		p.saveRecording()
	}
	return nil
}

func (p *Playing) restart() error {
	p.saveRecording()
	if err := p.reset(); err != nil {
		return err
	}
	p.transition(state.EventRestart)
	return nil
}

func (p *Playing) transition(ev state.Event) {
	prev := p.state
	p.state = p.state.Next(ev)
	if p.state != prev {
		p.log.Info("state changed",
			zap.Stringer("from", prev),
			zap.Stringer("to", p.state),
			zap.Uint64("tick", p.driver.Tick()),
		)
	}
}

func (p *Playing) playerAlive() bool {
	e, ok := p.snap.Find(p.driver.PlayerID())
	return ok && e.Alive
}

func (p *Playing) noteTrigger(tr sim.TriggerEvent) {
	p.triggers = append(p.triggers, fmt.Sprintf("#%d %s", tr.Entity, tr.Name))
	if len(p.triggers) > maxTriggers {
		p.triggers = p.triggers[len(p.triggers)-maxTriggers:]
	}
}

// saveRecording writes the current recording, if any
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	if err := p.recorder.Save(p.opts.RecordPath); err != nil {
		p.log.Error("failed to save recording", zap.String("path", p.opts.RecordPath), zap.Error(err))
		return
	}
	p.log.Info("recording saved",
		zap.String("path", p.opts.RecordPath),
		zap.Int("frames", p.recorder.FrameCount()),
	)
}

// State returns the session state
func (p *Playing) State() state.GameState { return p.state }

// Snapshot returns the world as of the last step
func (p *Playing) Snapshot() sim.Snapshot { return p.snap }

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	if player, ok := p.snap.Find(p.driver.PlayerID()); ok {
		w, h := p.driver.ArenaSize()
		p.cam.follow(player.Bounds.Center, w, h)
	}

	for _, s := range p.driver.Solids() {
		x, y, w, h := p.cam.rect(s)
		fillRect(screen, x, y, w, h, colorSolid)
	}
	for _, e := range p.snap.Entities {
		p.drawEntity(screen, e)
	}

	p.drawHUD(screen)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, colorPaused, "PAUSED\n\nPress ESC to resume")
	case state.StateGameOver:
		p.drawOverlay(screen, colorGameOver, "GAME OVER\n\nPress R to restart")
	case state.StateTraceEnded:
		p.drawOverlay(screen, colorPaused, fmt.Sprintf("TRACE ENDED\n\n%d frames\nPress R to replay", p.driver.Tick()))
	}
}

func (p *Playing) drawEntity(screen *ebiten.Image, e sim.EntityState) {
	c := colorEnemy
	switch e.Kind {
	case sim.KindPlayer:
		c = colorPlayer
		if p.snap.Player != nil && p.snap.Player.Invincible && p.snap.Tick/4%2 == 0 {
			c = colorFlash
		}
	case sim.KindProjectile:
		c = colorProjectile
	}
	if e.MaxHealth > 0 && !e.Alive {
		c = colorDead
	}

	x, y, w, h := p.cam.rect(e.Bounds)
	fillRect(screen, x, y, w, h, c)

	if e.Kind == sim.KindProjectile {
		cx, cy := x+w/2, y+h/2
		hx, hy := heading(cx, cy, e.Velocity, max(w, h))
		vector.StrokeLine(screen, float32(cx), float32(cy), float32(hx), float32(hy), 1, colorProjectile, false)
		return
	}

	// facing marker
	mx := x + w - 3
	if !e.FacingRight {
		mx = x + 1
	}
	fillRect(screen, mx, y+h/4, 2, 2, colorBG)

	if e.MaxHealth > 0 && e.Kind != sim.KindPlayer {
		ratio := max(e.Health/e.MaxHealth, 0)
		fillRect(screen, x, y-4, w, 2, colorHealthBG)
		fillRect(screen, x, y-4, w*ratio, 2, colorHealthFG)
	}
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	barX, barY := 10.0, float64(p.opts.ScreenH-20)
	barW, barH := 100.0, 10.0
	fillRect(screen, barX, barY, barW, barH, colorHealthBG)

	var lines []string
	if player, ok := p.snap.Find(p.driver.PlayerID()); ok && player.MaxHealth > 0 {
		fillRect(screen, barX, barY, barW*max(player.Health/player.MaxHealth, 0), barH, colorHealthFG)
		lines = append(lines, fmt.Sprintf("HP %.0f/%.0f", player.Health, player.MaxHealth))
	}
	if ps := p.snap.Player; ps != nil {
		lines = append(lines, fmt.Sprintf("pose %s  jumps %d  grounded %t", ps.Pose, ps.JumpsRemaining, ps.Grounded))
	}
	lines = append(lines,
		fmt.Sprintf("tick %d  t %.2fs  enemies %d", p.snap.Tick, p.snap.Time, p.snap.Count(sim.KindEnemy)),
		strings.Join(p.triggers, "  "),
	)

	ebitenutil.DebugPrint(screen, "A/D: Move | W/Space: Jump | ESC: Pause | R: Restart | F5: Save")
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), 10, 16)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.Color, text string) {
	fillRect(screen, 0, 0, float64(p.opts.ScreenW), float64(p.opts.ScreenH), c)
	ebitenutil.DebugPrintAt(screen, text, p.opts.ScreenW/2-50, p.opts.ScreenH/2-20)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.log.Debug("playing entered", zap.Int("run", p.runs))
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// heading returns the screen point length pixels from (x, y) along vel
func heading(x, y float64, vel entity.Vec2, length float64) (float64, float64) {
	a := entity.Rotation(vel)
	return x + length*math.Cos(a), y - length*math.Sin(a)
}

func fillRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)
}
