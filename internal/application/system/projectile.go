package system

import "github.com/younwookim/motionkit/internal/domain/entity"

// ProjectileSystem expires projectiles and decides what a contact does
type ProjectileSystem struct{}

// NewProjectileSystem creates a new projectile system
func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

// Update ticks the lifetime; an expired projectile despawns immediately
func (s *ProjectileSystem) Update(id entity.EntityID, p *entity.Projectile, dt float64) []Command {
	if !p.Update(dt) {
		return nil
	}
	p.Deactivate()
	return []Command{Despawn{Entity: id}}
}

// Touch resolves a contact with something on the hit layers. Enemies are
// passed through; anything else destroys the projectile. hitPlayer reports
// whether the player should take the projectile's damage.
func (s *ProjectileSystem) Touch(id entity.EntityID, p *entity.Projectile, hit entity.LayerMask) (hitPlayer bool, cmds []Command) {
	if !p.Active || hit == 0 || hit == entity.LayerEnemy {
		return false, nil
	}
	p.Deactivate()
	return hit.Has(entity.LayerPlayer), []Command{Despawn{Entity: id}}
}
