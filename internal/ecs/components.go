package ecs

import (
	"github.com/yohamta/donburi"

	"github.com/younwookim/motionkit/internal/domain/entity"
	"github.com/younwookim/motionkit/internal/infrastructure/physics"
)

// IdentityData ties a donburi entry to its stable entity id
type IdentityData struct {
	ID     entity.EntityID
	Prefab string // empty for the player
}

// BodyData is the physics body backing an entity
type BodyData struct {
	*physics.Body
}

// HealthData is a health pool plus how long a dead entity lingers
type HealthData struct {
	entity.Health
	DespawnDelay float64 // seconds
}

// AnimationData is the presentation state hosts read each tick
type AnimationData struct {
	Pose        entity.Pose
	FacingRight bool
}

// Components
var (
	Identity   = donburi.NewComponentType[IdentityData]()
	Body       = donburi.NewComponentType[BodyData]()
	Health     = donburi.NewComponentType[HealthData]()
	Patrol     = donburi.NewComponentType[entity.Patrol]()
	Mortar     = donburi.NewComponentType[entity.Mortar]()
	Projectile = donburi.NewComponentType[entity.Projectile]()
	Animation  = donburi.NewComponentType[AnimationData]()
)

// Tags
var (
	IsPlayer     = donburi.NewTag().SetName("Player")
	IsEnemy      = donburi.NewTag().SetName("Enemy")
	IsProjectile = donburi.NewTag().SetName("Projectile")
)
