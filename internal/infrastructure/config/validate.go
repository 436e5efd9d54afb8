package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/younwookim/motionkit/internal/domain/entity"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("config: invalid value")

type validator struct {
	errs []error
}

func (v *validator) check(ok bool, field, format string, args ...any) {
	if !ok {
		v.errs = append(v.errs, fmt.Errorf("%w: %s %s", ErrInvalidConfig, field, fmt.Sprintf(format, args...)))
	}
}

func (v *validator) positive(field string, x float64) {
	v.check(x > 0, field, "must be > 0, got %v", x)
}

func (v *validator) nonNegative(field string, x float64) {
	v.check(x >= 0, field, "must be >= 0, got %v", x)
}

func (v *validator) layers(field string, names []string, required bool) {
	if required {
		v.check(len(names) > 0, field, "must name at least one layer")
	}
	_, ok := entity.ParseLayerMask(names)
	v.check(ok, field, "has unknown layer in %v", names)
}

// Validate reports every invalid field, joined into one error
func (c *TuningConfig) Validate() error {
	v := &validator{}

	v.positive("physics.gravity", c.Physics.Gravity)
	v.positive("physics.cellSize", c.Physics.CellSize)
	v.positive("sim.fixedStep", c.Sim.FixedStep)
	v.check(c.Sim.MaxSubsteps >= 1, "sim.maxSubsteps", "must be >= 1, got %d", c.Sim.MaxSubsteps)

	c.Player.Body.validate(v, "player.body")
	v.check(c.Player.Body.Def().Kind == entity.BodyDynamic, "player.body.kind", "must be dynamic")
	c.Player.Locomotion.validate(v, "player.locomotion")
	c.Player.Health.validate(v, "player.health")

	ids := make([]string, 0, len(c.Prefabs))
	for id := range c.Prefabs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		c.validatePrefab(v, id, c.Prefabs[id])
	}

	v.positive("arena.width", c.Arena.Width)
	v.positive("arena.height", c.Arena.Height)
	for i, s := range c.Arena.Solids {
		field := fmt.Sprintf("arena.solids[%d]", i)
		v.positive(field+".width", s.Width)
		v.positive(field+".height", s.Height)
		v.layers(field+".layer", []string{s.Layer}, true)
	}
	for i, s := range c.Arena.Spawns {
		_, ok := c.Prefabs[s.Prefab]
		v.check(ok, fmt.Sprintf("arena.spawns[%d].prefab", i), "references unknown prefab %q", s.Prefab)
	}

	return errors.Join(v.errs...)
}

func (c LocomotionConfig) validate(v *validator, field string) {
	v.positive(field+".moveSpeed", c.MoveSpeed)
	v.nonNegative(field+".acceleration", c.Acceleration)
	v.nonNegative(field+".deceleration", c.Deceleration)
	v.nonNegative(field+".airAcceleration", c.AirAcceleration)
	v.nonNegative(field+".airDeceleration", c.AirDeceleration)
	v.positive(field+".jumpForce", c.JumpForce)
	v.check(c.FallMultiplier >= 1, field+".fallMultiplier", "must be >= 1, got %v", c.FallMultiplier)
	v.check(c.LowJumpMultiplier >= 1, field+".lowJumpMultiplier", "must be >= 1, got %v", c.LowJumpMultiplier)
	v.check(c.MaxJumps >= 1, field+".maxJumps", "must be >= 1, got %d", c.MaxJumps)
	v.nonNegative(field+".coyoteTime", c.CoyoteTime)
	v.nonNegative(field+".jumpBufferTime", c.JumpBufferTime)
	v.positive(field+".groundCheckRadius", c.GroundCheckRadius)
	v.layers(field+".groundLayers", c.GroundLayers, true)
}

func (c HealthConfig) validate(v *validator, field string) {
	v.positive(field+".max", c.Max)
	v.nonNegative(field+".invincibility", c.Invincibility)
	v.nonNegative(field+".deathAnimation", c.DeathAnimation)
	v.nonNegative(field+".destroyDelay", c.DestroyDelay)
}

func (c BodyConfig) validate(v *validator, field string) {
	switch c.Kind {
	case "dynamic", "kinematic", "sensor":
	default:
		v.check(false, field+".kind", "must be dynamic, kinematic or sensor, got %q", c.Kind)
	}
	v.positive(field+".width", c.Width)
	v.positive(field+".height", c.Height)
	if c.Kind == "dynamic" {
		v.positive(field+".mass", c.Mass)
	}
	v.nonNegative(field+".gravityScale", c.GravityScale)
	v.layers(field+".layer", []string{c.Layer}, true)
	v.layers(field+".collidesWith", c.CollidesWith, false)
}

func (c *TuningConfig) validatePrefab(v *validator, id string, p PrefabConfig) {
	field := "prefabs." + id
	p.Body.validate(v, field+".body")

	if p.Health != nil {
		p.Health.validate(v, field+".health")
	}
	v.check(!(p.Patrol != nil && p.Mortar != nil), field, "must have at most one behaviour")

	if p.Patrol != nil {
		v.positive(field+".patrol.speed", p.Patrol.Speed)
		v.nonNegative(field+".patrol.contactDamage", p.Patrol.ContactDamage)
	}

	if m := p.Mortar; m != nil {
		v.positive(field+".mortar.detectionRadius", m.DetectionRadius)
		v.check(m.LaunchAngleDeg > 0 && m.LaunchAngleDeg < 90,
			field+".mortar.launchAngleDeg", "must be in (0, 90), got %v", m.LaunchAngleDeg)
		v.positive(field+".mortar.gravity", m.Gravity)
		v.positive(field+".mortar.shotInterval", m.ShotInterval)
		shell, ok := c.Prefabs[m.Projectile]
		v.check(ok && shell.Projectile != nil,
			field+".mortar.projectile", "must reference a projectile prefab, got %q", m.Projectile)
	}

	if pr := p.Projectile; pr != nil {
		v.positive(field+".projectile.damage", pr.Damage)
		v.positive(field+".projectile.lifetime", pr.Lifetime)
		v.nonNegative(field+".projectile.speed", pr.Speed)
	}
}
