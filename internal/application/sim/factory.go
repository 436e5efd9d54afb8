package sim

import (
	"fmt"

	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/younwookim/motionkit/internal/application/system"
	"github.com/younwookim/motionkit/internal/domain/entity"
	"github.com/younwookim/motionkit/internal/ecs"
	"github.com/younwookim/motionkit/internal/infrastructure/config"
	"github.com/younwookim/motionkit/internal/infrastructure/physics"
)

// Spawn instantiates a prefab from the tuning registry.
//
// Projectiles spawned with a zero velocity fly at the prefab speed along the
// owner's facing. A non-zero s.Gravity rescales the projectile's gravity so
// the world applies exactly the gravity its velocity was solved against.
func (d *Driver) Spawn(s system.Spawn) (entity.EntityID, error) {
	prefab, ok := d.cfg.Prefabs[s.PrefabID]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPrefab, s.PrefabID)
	}

	id := d.world.NewEntity()
	def := prefab.Body.Def()
	body := d.space.AddBody(id, def, s.Position)

	if pc := prefab.Projectile; pc != nil {
		scale := def.GravityScale
		if s.Gravity > 0 {
			scale = s.Gravity / d.space.Gravity()
			body.SetGravityScale(scale)
		}

		vel := s.Velocity
		if vel == (entity.Vec2{}) {
			vel = entity.Vec2{X: pc.Speed * d.facingSign(s.Owner)}
		}
		body.SetVelocity(vel)

		d.world.CreateProjectile(id, s.PrefabID, body, entity.NewProjectile(s.Owner, pc.Damage, pc.Lifetime, scale))
	} else {
		d.createEnemy(id, s, prefab, body)
	}

	d.log.Debug("spawned",
		zap.Uint64("entity", uint64(id)),
		zap.String("prefab", s.PrefabID),
		zap.Float64("x", s.Position.X),
		zap.Float64("y", s.Position.Y))
	return id, nil
}

func (d *Driver) createEnemy(id entity.EntityID, s system.Spawn, prefab config.PrefabConfig, body *physics.Body) {
	var health *ecs.HealthData
	if hc := prefab.Health; hc != nil {
		health = &ecs.HealthData{
			Health:       entity.NewHealth(hc.Max, hc.Invincibility),
			DespawnDelay: hc.DespawnDelay(),
		}
	}

	ai, ok := prefab.AI()
	switch {
	case ok && ai == entity.AIPatrol:
		pc := prefab.Patrol
		p := entity.NewPatrol(s.Position.Add(pc.PointA.Vec2()), s.Position.Add(pc.PointB.Vec2()), pc.Speed, pc.ContactDamage)
		entry := d.world.CreateEnemy(id, s.PrefabID, body, health, p.FacingRight, ecs.Patrol)
		ecs.Patrol.SetValue(entry, p)
	case ok && ai == entity.AIMortar:
		mc := prefab.Mortar
		m := entity.NewMortar(mc.DetectionRadius, mc.LaunchAngle(), mc.Gravity, mc.ShotInterval, mc.FirePoint.Offset(), mc.Projectile)
		entry := d.world.CreateEnemy(id, s.PrefabID, body, health, m.FacingRight, ecs.Mortar)
		ecs.Mortar.SetValue(entry, m)
	default:
		d.world.CreateEnemy(id, s.PrefabID, body, health, true)
	}
}

// facingSign returns +1 or -1 for the owner's facing, +1 without an owner
func (d *Driver) facingSign(owner entity.EntityID) float64 {
	entry, ok := d.world.Entry(owner)
	if !ok || !entry.HasComponent(ecs.Animation) {
		return 1
	}
	if ecs.Animation.Get(entry).FacingRight {
		return 1
	}
	return -1
}

// entityKind classifies an entry for snapshots
func entityKind(entry *donburi.Entry) Kind {
	switch {
	case entry.HasComponent(ecs.IsPlayer):
		return KindPlayer
	case entry.HasComponent(ecs.IsEnemy):
		return KindEnemy
	case entry.HasComponent(ecs.IsProjectile):
		return KindProjectile
	default:
		return KindUnknown
	}
}
