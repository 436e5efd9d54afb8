package system

import "github.com/younwookim/motionkit/internal/domain/entity"

// Command is a directive a system hands back to its host. Systems never
// touch bodies or the world directly; the host applies commands in order.
type Command interface {
	isCommand()
}

// SetVerticalVelocity overwrites the vertical velocity (jumps)
type SetVerticalVelocity struct {
	Entity entity.EntityID
	VY     float64
}

func (SetVerticalVelocity) isCommand() {}

// ApplyForce adds a force for the next physics step
type ApplyForce struct {
	Entity entity.EntityID
	Force  entity.Vec2
}

func (ApplyForce) isCommand() {}

// AddVelocity adds an instantaneous velocity change
type AddVelocity struct {
	Entity entity.EntityID
	Delta  entity.Vec2
}

func (AddVelocity) isCommand() {}

// Flip changes the facing direction. Cosmetic only.
type Flip struct {
	Entity      entity.EntityID
	FacingRight bool
}

func (Flip) isCommand() {}

// Trigger fires a named animation trigger ("Throw", "Damage", "Death")
type Trigger struct {
	Entity entity.EntityID
	Name   string
}

func (Trigger) isCommand() {}

// Spawn asks the host to instantiate a prefab
type Spawn struct {
	PrefabID string
	Position entity.Vec2
	Velocity entity.Vec2
	Owner    entity.EntityID
	Gravity  float64 // gravity the velocity was solved against, 0 for the prefab default
}

func (Spawn) isCommand() {}

// Despawn removes an entity after Delay seconds
type Despawn struct {
	Entity entity.EntityID
	Delay  float64
}

func (Despawn) isCommand() {}

// Animation trigger names
const (
	TriggerThrow  = "Throw"
	TriggerDamage = "Damage"
	TriggerDeath  = "Death"
)
