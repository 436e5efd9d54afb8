package sim

import (
	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/younwookim/motionkit/internal/domain/entity"
	"github.com/younwookim/motionkit/internal/ecs"
	"github.com/younwookim/motionkit/internal/infrastructure/physics"
)

// resolveContacts handles projectile hits and patrol contact damage
func (d *Driver) resolveContacts() {
	d.world.Each(ecs.Projectile, func(id entity.EntityID, entry *donburi.Entry) {
		p := ecs.Projectile.Get(entry)
		if !p.Active {
			return
		}

		hit := d.touching(ecs.Body.Get(entry).Body, projectileHits)
		hitPlayer, cmds := d.projectiles.Touch(id, p, hit)
		if hitPlayer {
			d.damagePlayer(p.Damage, id)
		}
		d.apply(cmds...)
	})

	d.world.Each(ecs.Patrol, func(id entity.EntityID, entry *donburi.Entry) {
		p := ecs.Patrol.Get(entry)
		if !(p.ContactDamage > 0) || !d.alive(id) {
			return
		}
		for _, other := range d.space.Overlapping(ecs.Body.Get(entry).Body, entity.LayerPlayer) {
			if other.ID() == d.world.PlayerID {
				d.damagePlayer(p.ContactDamage, id)
			}
		}
	})
}

// touching returns the layers in mask that b currently touches
func (d *Driver) touching(b *physics.Body, mask entity.LayerMask) entity.LayerMask {
	var hit entity.LayerMask
	for _, other := range d.space.Overlapping(b, mask) {
		hit |= other.Def().Layer & mask
	}
	for _, solid := range []entity.LayerMask{entity.LayerGround, entity.LayerPlatform} {
		if mask&solid != 0 && d.space.TouchesSolid(b, solid) {
			hit |= solid
		}
	}
	return hit
}

func (d *Driver) damagePlayer(amount float64, source entity.EntityID) {
	id := d.world.PlayerID
	if id == 0 {
		return
	}

	res, err := d.Damage(id, amount)
	if err != nil {
		d.log.Warn("player damage rejected",
			zap.Uint64("source", uint64(source)),
			zap.Float64("amount", amount),
			zap.Error(err))
		return
	}
	if res != entity.DamageIgnored {
		d.log.Debug("player hit",
			zap.Uint64("source", uint64(source)),
			zap.Float64("amount", amount),
			zap.Stringer("result", res))
	}
}
