package ecs

import (
	"sort"

	"github.com/yohamta/donburi"

	"github.com/younwookim/motionkit/internal/domain/entity"
	"github.com/younwookim/motionkit/internal/infrastructure/physics"
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{components: cs}
}

var (
	playerArchetype = newArchetype(
		IsPlayer,
		Identity,
		Body,
		Health,
		Animation,
	)
	enemyArchetype = newArchetype(
		IsEnemy,
		Identity,
		Body,
		Animation,
	)
	projectileArchetype = newArchetype(
		IsProjectile,
		Identity,
		Body,
		Projectile,
		Animation,
	)
)

// World is a donburi world addressed by stable entity ids.
// donburi recycles its entity handles; ids handed out here never are.
type World struct {
	world   donburi.World
	nextID  entity.EntityID
	handles map[entity.EntityID]donburi.Entity

	// Singleton references
	PlayerID entity.EntityID
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		world:   donburi.NewWorld(),
		nextID:  1, // 0 is "nil"
		handles: make(map[entity.EntityID]donburi.Entity),
	}
}

// NewEntity reserves a new unique entity id. Components are attached by one
// of the Create functions.
func (w *World) NewEntity() entity.EntityID {
	id := w.nextID
	w.nextID++
	return id
}

func (w *World) spawn(id entity.EntityID, prefab string, a *archetype, extra ...donburi.IComponentType) *donburi.Entry {
	cs := append(append([]donburi.IComponentType{}, a.components...), extra...)
	handle := w.world.Create(cs...)
	w.handles[id] = handle

	entry := w.world.Entry(handle)
	Identity.SetValue(entry, IdentityData{ID: id, Prefab: prefab})
	return entry
}

// CreatePlayer attaches player components to id
func (w *World) CreatePlayer(id entity.EntityID, body *physics.Body, health HealthData) *donburi.Entry {
	entry := w.spawn(id, "", playerArchetype)
	Body.SetValue(entry, BodyData{Body: body})
	Health.SetValue(entry, health)
	Animation.SetValue(entry, AnimationData{FacingRight: true})

	w.PlayerID = id
	return entry
}

// CreateEnemy attaches enemy components to id. health may be nil for
// indestructible enemies; behaviours are the AI components (Patrol, Mortar)
// the caller fills in afterwards.
func (w *World) CreateEnemy(id entity.EntityID, prefab string, body *physics.Body, health *HealthData, facingRight bool, behaviours ...donburi.IComponentType) *donburi.Entry {
	extra := behaviours
	if health != nil {
		extra = append(extra, Health)
	}

	entry := w.spawn(id, prefab, enemyArchetype, extra...)
	Body.SetValue(entry, BodyData{Body: body})
	if health != nil {
		Health.SetValue(entry, *health)
	}
	Animation.SetValue(entry, AnimationData{FacingRight: facingRight})
	return entry
}

// CreateProjectile attaches projectile components to id
func (w *World) CreateProjectile(id entity.EntityID, prefab string, body *physics.Body, p entity.Projectile) *donburi.Entry {
	entry := w.spawn(id, prefab, projectileArchetype)
	Body.SetValue(entry, BodyData{Body: body})
	Projectile.SetValue(entry, p)
	Animation.SetValue(entry, AnimationData{FacingRight: body.Velocity().X >= 0})
	return entry
}

// Entry returns the live entry for id
func (w *World) Entry(id entity.EntityID) (*donburi.Entry, bool) {
	handle, ok := w.handles[id]
	if !ok || !w.world.Valid(handle) {
		return nil, false
	}
	return w.world.Entry(handle), true
}

// DestroyEntity removes id from the world. It returns false when id was
// never created or is already gone.
func (w *World) DestroyEntity(id entity.EntityID) bool {
	handle, ok := w.handles[id]
	if !ok {
		return false
	}
	delete(w.handles, id)
	if w.world.Valid(handle) {
		w.world.Remove(handle)
	}
	if w.PlayerID == id {
		w.PlayerID = 0
	}
	return true
}

// Exists checks if id is a live entity
func (w *World) Exists(id entity.EntityID) bool {
	_, ok := w.Entry(id)
	return ok
}

// IDs returns the live entity ids in ascending order
func (w *World) IDs() []entity.EntityID {
	ids := make([]entity.EntityID, 0, len(w.handles))
	for id := range w.handles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Each calls fn for every live entity carrying c, in id order. Entities
// destroyed by fn are not visited afterwards.
func (w *World) Each(c donburi.IComponentType, fn func(id entity.EntityID, entry *donburi.Entry)) {
	for _, id := range w.IDs() {
		entry, ok := w.Entry(id)
		if !ok || !entry.HasComponent(c) {
			continue
		}
		fn(id, entry)
	}
}

// Len returns the number of live entities
func (w *World) Len() int {
	return len(w.handles)
}

// Player returns the player entry, if the player is alive in the world
func (w *World) Player() (*donburi.Entry, bool) {
	if w.PlayerID == 0 {
		return nil, false
	}
	return w.Entry(w.PlayerID)
}

// CountEnemies returns the number of live enemies
func (w *World) CountEnemies() int {
	n := 0
	IsEnemy.Each(w.world, func(*donburi.Entry) { n++ })
	return n
}
