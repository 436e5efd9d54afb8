package sim

import (
	"github.com/yohamta/donburi"

	"github.com/younwookim/motionkit/internal/domain/entity"
	"github.com/younwookim/motionkit/internal/ecs"
)

// Kind is the coarse category of an entity
type Kind int

const (
	KindUnknown Kind = iota
	KindPlayer
	KindEnemy
	KindProjectile
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// EntityState is one entity in a snapshot
type EntityState struct {
	ID       entity.EntityID
	Kind     Kind
	Prefab   string
	Bounds   entity.Rect
	Velocity entity.Vec2

	// Zero for entities without health
	Health    float64
	MaxHealth float64
	Alive     bool

	FacingRight bool
	Pose        entity.Pose
}

// PlayerState is the locomotion view of the player
type PlayerState struct {
	ID             entity.EntityID
	Grounded       bool
	JumpsRemaining int
	Invincible     bool
	Pose           entity.Pose
}

// Snapshot is a deterministic view of the world after a step.
// Entities are ordered by id.
type Snapshot struct {
	Tick     uint64
	Time     float64
	Entities []EntityState
	Player   *PlayerState // nil once the player has been despawned
}

// TriggerEvent is an animation trigger fired during a step
type TriggerEvent struct {
	Entity entity.EntityID
	Name   string
}

// PoseSample is the animation pose of one entity after a step
type PoseSample struct {
	Entity      entity.EntityID
	Pose        entity.Pose
	FacingRight bool
}

// Frame is the presentation output of one step
type Frame struct {
	Tick     uint64
	Time     float64
	Triggers []TriggerEvent
	Poses    []PoseSample
}

// Snapshot captures the current world state
func (d *Driver) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     d.tick,
		Time:     d.time,
		Entities: make([]EntityState, 0, d.world.Len()),
	}

	d.world.Each(ecs.Identity, func(id entity.EntityID, entry *donburi.Entry) {
		body := ecs.Body.Get(entry)
		anim := ecs.Animation.Get(entry)
		es := EntityState{
			ID:          id,
			Kind:        entityKind(entry),
			Prefab:      ecs.Identity.Get(entry).Prefab,
			Bounds:      body.Bounds(),
			Velocity:    body.Velocity(),
			Alive:       true,
			FacingRight: anim.FacingRight,
			Pose:        anim.Pose,
		}
		if entry.HasComponent(ecs.Health) {
			hd := ecs.Health.Get(entry)
			es.Health = hd.Current
			es.MaxHealth = hd.Max
			es.Alive = hd.IsAlive()
		}
		snap.Entities = append(snap.Entities, es)
	})

	if d.player != nil {
		ps := &PlayerState{
			ID:             d.player.ID,
			Grounded:       d.player.State.Grounded,
			JumpsRemaining: d.player.State.JumpsRemaining,
			Pose:           d.player.Pose(),
		}
		if entry, ok := d.world.Entry(d.player.ID); ok {
			ps.Invincible = ecs.Health.Get(entry).IsInvincible()
		}
		snap.Player = ps
	}
	return snap
}

// Find returns the entity with id in the snapshot
func (s Snapshot) Find(id entity.EntityID) (EntityState, bool) {
	for _, e := range s.Entities {
		if e.ID == id {
			return e, true
		}
	}
	return EntityState{}, false
}

// Count returns how many entities of kind are in the snapshot
func (s Snapshot) Count(kind Kind) int {
	n := 0
	for _, e := range s.Entities {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
