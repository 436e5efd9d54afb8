package entity

import "math"

// Projectile represents a projectile entity (mortar shells, bolts, etc.)
type Projectile struct {
	Owner  EntityID
	Damage float64
	Active bool

	// Lifetime despawns the projectile even if it never hits anything
	Lifetime Countdown

	// GravityScale multiplies world gravity; 0 flies straight
	GravityScale float64
}

// NewProjectile creates an active projectile
func NewProjectile(owner EntityID, damage, lifetime, gravityScale float64) Projectile {
	lt := NewCountdown(lifetime)
	lt.Reset()
	return Projectile{
		Owner:        owner,
		Damage:       damage,
		Active:       true,
		Lifetime:     lt,
		GravityScale: gravityScale,
	}
}

// Update advances the lifetime and returns true once it has expired
func (p *Projectile) Update(dt float64) bool {
	if !p.Active {
		return false
	}
	p.Lifetime.Tick(dt)
	return !p.Lifetime.Active()
}

// Deactivate marks the projectile as inactive
func (p *Projectile) Deactivate() {
	p.Active = false
}

// Rotation returns the rotation angle of a velocity vector (for rendering)
func Rotation(vel Vec2) float64 {
	return math.Atan2(vel.Y, vel.X)
}
