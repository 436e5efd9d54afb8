// Package sim runs the platformer core headless: one player, the enemies
// and projectiles of an arena, a physics space and the delayed-action queue.
package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/younwookim/motionkit/internal/application/system"
	"github.com/younwookim/motionkit/internal/domain/entity"
	"github.com/younwookim/motionkit/internal/ecs"
	"github.com/younwookim/motionkit/internal/infrastructure/config"
	"github.com/younwookim/motionkit/internal/infrastructure/physics"
)

var (
	ErrUnknownPrefab = errors.New("sim: unknown prefab")
	ErrUnknownEntity = errors.New("sim: unknown entity")
	ErrNoHealth      = errors.New("sim: entity has no health")
)

// stepEpsilon absorbs float drift when the accumulator lands on a step
const stepEpsilon = 1e-9

// projectileHits are the layers a projectile reacts to
const projectileHits = entity.LayerGround | entity.LayerPlatform | entity.LayerPlayer | entity.LayerEnemy

// Driver owns the world and advances it one variable-length step at a time
type Driver struct {
	cfg   *config.TuningConfig
	log   *zap.Logger
	world *ecs.World
	space *physics.Space

	locomotion  *system.LocomotionSystem
	health      *system.HealthSystem
	patrol      *system.PatrolSystem
	mortar      *system.MortarSystem
	projectiles *system.ProjectileSystem

	player *system.CharacterController

	tick        uint64
	time        float64
	accumulator float64

	queue   delayQueue
	pending map[entity.EntityID]bool
	spawns  []system.Spawn
	frame   Frame
}

// New builds a driver from a validated tuning config: the arena solids, the
// player at its spawn and every arena spawn. log may be nil.
func New(cfg *config.TuningConfig, log *zap.Logger) (*Driver, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}

	d := &Driver{
		cfg:         cfg,
		log:         log,
		world:       ecs.NewWorld(),
		space:       physics.NewSpace(cfg.Arena.Width, cfg.Arena.Height, cfg.Physics.CellSize, cfg.Physics.Gravity),
		locomotion:  system.NewLocomotionSystem(&cfg.Player.Locomotion),
		health:      system.NewHealthSystem(log),
		patrol:      system.NewPatrolSystem(),
		mortar:      system.NewMortarSystem(log),
		projectiles: system.NewProjectileSystem(),
		pending:     make(map[entity.EntityID]bool),
	}

	for _, s := range cfg.Arena.Solids {
		layer, _ := entity.ParseLayerMask([]string{s.Layer})
		d.space.AddSolid(s.Rect(), layer)
	}

	d.spawnPlayer(cfg.Arena.PlayerSpawn.Vec2())

	for _, s := range cfg.Arena.Spawns {
		if _, err := d.Spawn(system.Spawn{PrefabID: s.Prefab, Position: s.Position.Vec2()}); err != nil {
			return nil, err
		}
	}

	log.Info("simulation ready",
		zap.Int("entities", d.world.Len()),
		zap.Int("enemies", d.world.CountEnemies()),
		zap.Int("solids", len(cfg.Arena.Solids)),
		zap.Float64("fixedStep", cfg.Sim.FixedStep))
	return d, nil
}

func (d *Driver) spawnPlayer(pos entity.Vec2) {
	id := d.world.NewEntity()
	body := d.space.AddBody(id, d.cfg.Player.Body.Def(), pos)
	hc := d.cfg.Player.Health
	d.world.CreatePlayer(id, body, ecs.HealthData{
		Health:       entity.NewHealth(hc.Max, hc.Invincibility),
		DespawnDelay: hc.DespawnDelay(),
	})

	d.player = system.NewCharacterController(id, d.locomotion, d.space, body, d.log)
	d.player.OnCommand = func(cmd system.Command) { d.apply(cmd) }
}

// Step advances the simulation by dt seconds with one input sample.
//
// The input tick runs first (player controller, health timers, enemy
// behaviours, projectile lifetimes), then as many fixed physics sub-ticks as
// the accumulator allows, then contact resolution, then due despawns.
func (d *Driver) Step(dt float64, in entity.InputSample) error {
	if err := entity.CheckDelta(dt); err != nil {
		return err
	}

	d.tick++
	d.time += dt
	d.frame = Frame{Tick: d.tick, Time: d.time}

	if err := d.inputTick(dt, in); err != nil {
		return err
	}
	d.flushSpawns()

	if err := d.physicsTicks(dt); err != nil {
		return err
	}

	d.resolveContacts()
	d.flushSpawns()
	d.flushDespawns()
	d.updatePoses()
	return nil
}

func (d *Driver) inputTick(dt float64, in entity.InputSample) error {
	if d.player != nil {
		if !d.alive(d.player.ID) {
			in = entity.InputSample{}
		}
		if err := d.player.InputTick(in, dt); err != nil {
			return fmt.Errorf("player input tick: %w", err)
		}
	}

	var tickErr error
	d.world.Each(ecs.Health, func(_ entity.EntityID, entry *donburi.Entry) {
		if err := d.health.Tick(&ecs.Health.Get(entry).Health, dt); err != nil && tickErr == nil {
			tickErr = err
		}
	})
	if tickErr != nil {
		return tickErr
	}

	d.world.Each(ecs.Patrol, func(id entity.EntityID, entry *donburi.Entry) {
		if !d.alive(id) {
			return
		}
		body := ecs.Body.Get(entry)
		from := body.Position()
		next, cmds := d.patrol.Update(id, ecs.Patrol.Get(entry), from, dt)
		body.SetPosition(next)
		if dt > 0 {
			body.SetVelocity(next.Sub(from).Scale(1 / dt))
		}
		d.apply(cmds...)
	})

	target := d.target()
	d.world.Each(ecs.Mortar, func(id entity.EntityID, entry *donburi.Entry) {
		if !d.alive(id) {
			return
		}
		m := ecs.Mortar.Get(entry)
		if target == nil {
			// the player always spawns in New, so no target means it died
			d.mortar.TargetDown(id, m)
			return
		}
		self := ecs.Body.Get(entry).Position()
		d.apply(d.mortar.Update(id, m, self, target, dt)...)
	})

	d.world.Each(ecs.Projectile, func(id entity.EntityID, entry *donburi.Entry) {
		d.apply(d.projectiles.Update(id, ecs.Projectile.Get(entry), dt)...)
	})

	return nil
}

func (d *Driver) physicsTicks(dt float64) error {
	step := d.cfg.Sim.FixedStep
	d.accumulator += dt

	n := 0
	for d.accumulator+stepEpsilon >= step && n < d.cfg.Sim.MaxSubsteps {
		if d.player != nil {
			if err := d.player.PhysicsTick(step); err != nil {
				return fmt.Errorf("player physics tick: %w", err)
			}
		}
		d.space.Step(step)
		d.accumulator -= step
		n++
	}

	if d.accumulator+stepEpsilon >= step {
		dropped := d.accumulator - math.Mod(d.accumulator, step)
		d.accumulator -= dropped
		d.log.Debug("physics behind, dropping time",
			zap.Uint64("tick", d.tick),
			zap.Float64("dropped", dropped))
	}
	if d.accumulator < 0 {
		d.accumulator = 0
	}
	return nil
}

// target returns the player position enemies aim at, nil when there is
// no living player
func (d *Driver) target() *entity.Vec2 {
	entry, ok := d.world.Player()
	if !ok || !d.alive(d.world.PlayerID) {
		return nil
	}
	pos := ecs.Body.Get(entry).Position()
	return &pos
}

// alive reports whether id exists and has not died. Entities without
// health are always alive.
func (d *Driver) alive(id entity.EntityID) bool {
	entry, ok := d.world.Entry(id)
	if !ok {
		return false
	}
	if !entry.HasComponent(ecs.Health) {
		return true
	}
	return ecs.Health.Get(entry).IsAlive()
}

func (d *Driver) body(id entity.EntityID) (*physics.Body, bool) {
	entry, ok := d.world.Entry(id)
	if !ok {
		return nil, false
	}
	return ecs.Body.Get(entry).Body, true
}

// apply executes commands in order
func (d *Driver) apply(cmds ...system.Command) {
	for _, cmd := range cmds {
		switch cmd := cmd.(type) {
		case system.SetVerticalVelocity:
			if b, ok := d.body(cmd.Entity); ok {
				v := b.Velocity()
				v.Y = cmd.VY
				b.SetVelocity(v)
			}
		case system.ApplyForce:
			if b, ok := d.body(cmd.Entity); ok {
				b.AddForce(cmd.Force)
			}
		case system.AddVelocity:
			if b, ok := d.body(cmd.Entity); ok {
				b.SetVelocity(b.Velocity().Add(cmd.Delta))
			}
		case system.Flip:
			if entry, ok := d.world.Entry(cmd.Entity); ok {
				ecs.Animation.Get(entry).FacingRight = cmd.FacingRight
			}
		case system.Trigger:
			d.frame.Triggers = append(d.frame.Triggers, TriggerEvent{Entity: cmd.Entity, Name: cmd.Name})
			d.log.Debug("animation trigger",
				zap.Uint64("entity", uint64(cmd.Entity)),
				zap.String("trigger", cmd.Name))
		case system.Spawn:
			d.spawns = append(d.spawns, cmd)
		case system.Despawn:
			d.scheduleDespawn(cmd.Entity, cmd.Delay)
		}
	}
}

func (d *Driver) flushSpawns() {
	spawns := d.spawns
	d.spawns = nil
	for _, s := range spawns {
		if _, err := d.Spawn(s); err != nil {
			d.log.Warn("spawn skipped",
				zap.String("prefab", s.PrefabID),
				zap.Uint64("owner", uint64(s.Owner)),
				zap.Error(err))
		}
	}
}

// scheduleDespawn queues id for removal after delay seconds. An entity is
// queued at most once; later requests are ignored.
func (d *Driver) scheduleDespawn(id entity.EntityID, delay float64) {
	if d.pending[id] || !d.world.Exists(id) {
		return
	}
	if delay < 0 {
		delay = 0
	}
	d.pending[id] = true
	d.queue.push(d.time+delay, id)
}

func (d *Driver) flushDespawns() {
	for {
		id, ok := d.queue.popDue(d.time + stepEpsilon)
		if !ok {
			return
		}
		d.despawn(id)
	}
}

func (d *Driver) despawn(id entity.EntityID) {
	delete(d.pending, id)
	entry, ok := d.world.Entry(id)
	if !ok {
		return
	}

	d.space.RemoveBody(ecs.Body.Get(entry).Body)
	if entry.HasComponent(ecs.Mortar) {
		d.mortar.Forget(id)
	}
	if d.player != nil && d.player.ID == id {
		d.player = nil
	}
	d.world.DestroyEntity(id)

	d.log.Debug("despawned", zap.Uint64("entity", uint64(id)), zap.Uint64("tick", d.tick))
}

// Damage applies amount to any entity with health. Death schedules the
// despawn like any other fatal hit.
func (d *Driver) Damage(id entity.EntityID, amount float64) (entity.DamageResult, error) {
	entry, ok := d.world.Entry(id)
	if !ok {
		return entity.DamageIgnored, fmt.Errorf("%w: %d", ErrUnknownEntity, id)
	}
	if !entry.HasComponent(ecs.Health) {
		return entity.DamageIgnored, fmt.Errorf("%w: %d", ErrNoHealth, id)
	}

	hd := ecs.Health.Get(entry)
	res, cmds, err := d.health.Damage(id, &hd.Health, amount, hd.DespawnDelay)
	if err != nil {
		return res, err
	}
	d.apply(cmds...)
	return res, nil
}

func (d *Driver) updatePoses() {
	d.world.Each(ecs.Animation, func(id entity.EntityID, entry *donburi.Entry) {
		anim := ecs.Animation.Get(entry)
		switch {
		case d.player != nil && d.player.ID == id:
			anim.Pose = d.player.Pose()
		case entry.HasComponent(ecs.Patrol):
			if ecs.Body.Get(entry).Velocity() != (entity.Vec2{}) {
				anim.Pose = entity.PoseWalk
			} else {
				anim.Pose = entity.PoseIdle
			}
		case entry.HasComponent(ecs.Projectile):
			anim.FacingRight = ecs.Body.Get(entry).Velocity().X >= 0
		}
		d.frame.Poses = append(d.frame.Poses, PoseSample{Entity: id, Pose: anim.Pose, FacingRight: anim.FacingRight})
	})
}

// Tick returns the number of steps taken
func (d *Driver) Tick() uint64 { return d.tick }

// Time returns the simulated time in seconds
func (d *Driver) Time() float64 { return d.time }

// PlayerID returns the player entity, 0 once it has been despawned
func (d *Driver) PlayerID() entity.EntityID { return d.world.PlayerID }

// ArenaSize returns the arena bounds in metres
func (d *Driver) ArenaSize() (w, h float64) { return d.space.Size() }

// Solids returns the static arena geometry
func (d *Driver) Solids() []entity.Rect { return d.space.Solids() }

// Frame returns the presentation output of the last step
func (d *Driver) Frame() Frame {
	f := d.frame
	f.Triggers = append([]TriggerEvent(nil), f.Triggers...)
	f.Poses = append([]PoseSample(nil), f.Poses...)
	return f
}
