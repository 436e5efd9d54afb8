package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"

	"github.com/younwookim/motionkit/internal/domain/entity"
	"github.com/younwookim/motionkit/internal/infrastructure/physics"
)

func createTestBody(s *physics.Space, id entity.EntityID, layer entity.LayerMask) *physics.Body {
	def := entity.BodyDef{Kind: entity.BodyKinematic, W: 1, H: 1, Layer: layer}
	return s.AddBody(id, def, entity.Vec2{X: 5, Y: 5})
}

func TestNewWorld(t *testing.T) {
	w := NewWorld()

	assert.NotNil(t, w)
	assert.Equal(t, entity.EntityID(1), w.nextID)
	assert.Equal(t, 0, w.Len())
	assert.Empty(t, w.IDs())
}

func TestNewEntity(t *testing.T) {
	w := NewWorld()

	id1 := w.NewEntity()
	id2 := w.NewEntity()
	id3 := w.NewEntity()

	assert.Equal(t, entity.EntityID(1), id1)
	assert.Equal(t, entity.EntityID(2), id2)
	assert.Equal(t, entity.EntityID(3), id3)
	assert.Equal(t, entity.EntityID(4), w.nextID)
}

func TestEntityIDNeverRecycled(t *testing.T) {
	s := physics.NewSpace(10, 10, 1, 9.81)
	w := NewWorld()

	id1 := w.NewEntity()
	w.CreateProjectile(id1, "shell", createTestBody(s, id1, entity.LayerProjectile), entity.NewProjectile(0, 1, 1, 1))
	require.True(t, w.DestroyEntity(id1))

	id2 := w.NewEntity()
	w.CreateProjectile(id2, "shell", createTestBody(s, id2, entity.LayerProjectile), entity.NewProjectile(0, 1, 1, 1))

	assert.NotEqual(t, id1, id2, "Entity IDs should never be recycled")
	assert.Equal(t, entity.EntityID(2), id2)
	assert.False(t, w.Exists(id1))
	assert.True(t, w.Exists(id2))
}

func TestCreatePlayer(t *testing.T) {
	s := physics.NewSpace(10, 10, 1, 9.81)
	w := NewWorld()

	id := w.NewEntity()
	body := createTestBody(s, id, entity.LayerPlayer)
	entry := w.CreatePlayer(id, body, HealthData{Health: entity.NewHealth(100, 1), DespawnDelay: 1.4})

	assert.Equal(t, id, w.PlayerID)
	assert.True(t, entry.HasComponent(IsPlayer))
	assert.False(t, entry.HasComponent(IsEnemy))
	assert.Equal(t, id, Identity.Get(entry).ID)
	assert.Empty(t, Identity.Get(entry).Prefab)
	assert.Same(t, body, Body.Get(entry).Body)
	assert.Equal(t, 100.0, Health.Get(entry).Current)
	assert.Equal(t, 1.4, Health.Get(entry).DespawnDelay)
	assert.True(t, Animation.Get(entry).FacingRight)

	player, ok := w.Player()
	require.True(t, ok)
	assert.Equal(t, entry.Entity(), player.Entity())
}

func TestCreateEnemy(t *testing.T) {
	s := physics.NewSpace(10, 10, 1, 9.81)
	w := NewWorld()

	t.Run("with health", func(t *testing.T) {
		id := w.NewEntity()
		hd := HealthData{Health: entity.NewHealth(30, 0.2), DespawnDelay: 1.4}
		entry := w.CreateEnemy(id, "patroller", createTestBody(s, id, entity.LayerEnemy), &hd, false, Patrol)
		Patrol.SetValue(entry, entity.NewPatrol(entity.Vec2{}, entity.Vec2{X: 1}, 2, 10))

		assert.True(t, entry.HasComponent(IsEnemy))
		assert.True(t, entry.HasComponent(Patrol))
		assert.False(t, entry.HasComponent(Mortar))
		assert.True(t, entry.HasComponent(Health))
		assert.Equal(t, "patroller", Identity.Get(entry).Prefab)
		assert.Equal(t, 2.0, Patrol.Get(entry).Speed)
		assert.False(t, Animation.Get(entry).FacingRight)
	})

	t.Run("indestructible", func(t *testing.T) {
		id := w.NewEntity()
		entry := w.CreateEnemy(id, "mortar", createTestBody(s, id, entity.LayerEnemy), nil, true, Mortar)

		assert.True(t, entry.HasComponent(Mortar))
		assert.False(t, entry.HasComponent(Health))
	})

	assert.Equal(t, 2, w.CountEnemies())
}

func TestDestroyEntity(t *testing.T) {
	s := physics.NewSpace(10, 10, 1, 9.81)
	w := NewWorld()

	id := w.NewEntity()
	w.CreatePlayer(id, createTestBody(s, id, entity.LayerPlayer), HealthData{Health: entity.NewHealth(10, 0)})
	require.True(t, w.Exists(id))

	assert.True(t, w.DestroyEntity(id))
	assert.False(t, w.Exists(id))
	assert.Equal(t, entity.EntityID(0), w.PlayerID)
	_, ok := w.Player()
	assert.False(t, ok)

	assert.False(t, w.DestroyEntity(id), "second destroy is a no-op")
	assert.False(t, w.DestroyEntity(99), "unknown id")
}

func TestExists(t *testing.T) {
	w := NewWorld()
	id := w.NewEntity()

	assert.False(t, w.Exists(id), "Reserved id without components should not exist")
	_, ok := w.Entry(id)
	assert.False(t, ok)
}

func TestEachVisitsInIDOrder(t *testing.T) {
	s := physics.NewSpace(10, 10, 1, 9.81)
	w := NewWorld()

	var ids []entity.EntityID
	for range 5 {
		id := w.NewEntity()
		w.CreateProjectile(id, "shell", createTestBody(s, id, entity.LayerProjectile), entity.NewProjectile(0, 1, 1, 1))
		ids = append(ids, id)
	}
	enemy := w.NewEntity()
	w.CreateEnemy(enemy, "mortar", createTestBody(s, enemy, entity.LayerEnemy), nil, true, Mortar)

	var visited []entity.EntityID
	w.Each(Projectile, func(id entity.EntityID, entry *donburi.Entry) {
		visited = append(visited, id)
		if id == ids[1] {
			w.DestroyEntity(ids[3])
		}
	})

	assert.Equal(t, []entity.EntityID{ids[0], ids[1], ids[2], ids[4]}, visited)
	assert.Equal(t, []entity.EntityID{ids[0], ids[1], ids[2], ids[4], enemy}, w.IDs())
	assert.Equal(t, 5, w.Len())
}
