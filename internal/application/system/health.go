package system

import (
	"go.uber.org/zap"

	"github.com/younwookim/motionkit/internal/domain/entity"
)

// HealthSystem applies damage and turns deaths into despawn directives
type HealthSystem struct {
	log *zap.Logger
}

// NewHealthSystem creates a new health system
func NewHealthSystem(log *zap.Logger) *HealthSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &HealthSystem{log: log}
}

// Damage applies amount to h. A fatal hit returns a Death trigger and a
// Despawn after despawnDelay; it happens once per entity.
func (s *HealthSystem) Damage(id entity.EntityID, h *entity.Health, amount, despawnDelay float64) (entity.DamageResult, []Command, error) {
	res, err := h.ApplyDamage(amount)
	if err != nil {
		return res, nil, err
	}

	switch res {
	case entity.DamageApplied:
		return res, []Command{Trigger{Entity: id, Name: TriggerDamage}}, nil
	case entity.DamageFatal:
		s.log.Info("entity died",
			zap.Uint64("entity", uint64(id)),
			zap.Float64("despawnIn", despawnDelay))
		return res, []Command{
			Trigger{Entity: id, Name: TriggerDamage},
			Trigger{Entity: id, Name: TriggerDeath},
			Despawn{Entity: id, Delay: despawnDelay},
		}, nil
	default:
		return res, nil, nil
	}
}

// Tick advances the invincibility window
func (s *HealthSystem) Tick(h *entity.Health, dt float64) error {
	return h.Tick(dt)
}
