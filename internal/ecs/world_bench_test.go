package ecs

import (
	"testing"

	"github.com/yohamta/donburi"

	"github.com/younwookim/motionkit/internal/domain/entity"
	"github.com/younwookim/motionkit/internal/infrastructure/physics"
)

const benchEnemies = 1_000

func benchWorld(b *testing.B) *World {
	b.Helper()
	s := physics.NewSpace(1000, 100, 2, 9.81)
	w := NewWorld()
	for i := range benchEnemies {
		id := w.NewEntity()
		def := entity.BodyDef{Kind: entity.BodyKinematic, W: 1, H: 1, Layer: entity.LayerEnemy}
		body := s.AddBody(id, def, entity.Vec2{X: float64(i%900) + 1, Y: 5})
		w.CreateEnemy(id, "patroller", body, &HealthData{Health: entity.NewHealth(10, 0.5)}, i%2 == 0, Patrol)
	}
	return w
}

// Each visits entities in id order through the handle map
func BenchmarkEach_Ordered(b *testing.B) {
	w := benchWorld(b)
	b.ResetTimer()

	var sum float64
	for b.Loop() {
		sum = 0
		w.Each(Body, func(_ entity.EntityID, entry *donburi.Entry) {
			sum += Body.Get(entry).Position().X
		})
	}
	_ = sum
}

// Tag iteration skips the ordering and walks archetype storage directly
func BenchmarkEach_Tag(b *testing.B) {
	w := benchWorld(b)
	b.ResetTimer()

	var sum float64
	for b.Loop() {
		sum = 0
		IsEnemy.Each(w.world, func(entry *donburi.Entry) {
			sum += Body.Get(entry).Position().X
		})
	}
	_ = sum
}

func BenchmarkEntryLookup(b *testing.B) {
	w := benchWorld(b)
	ids := w.IDs()
	b.ResetTimer()

	n := 0
	for b.Loop() {
		for _, id := range ids {
			if _, ok := w.Entry(id); ok {
				n++
			}
		}
	}
	_ = n
}
