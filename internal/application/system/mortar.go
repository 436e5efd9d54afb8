package system

import (
	"go.uber.org/zap"

	"github.com/younwookim/motionkit/internal/domain/ballistics"
	"github.com/younwookim/motionkit/internal/domain/entity"
)

// MortarSystem aims and fires stationary mortars at a target
type MortarSystem struct {
	log      *zap.Logger
	noTarget map[entity.EntityID]bool
}

// NewMortarSystem creates a new mortar system
func NewMortarSystem(log *zap.Logger) *MortarSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &MortarSystem{
		log:      log,
		noTarget: make(map[entity.EntityID]bool),
	}
}

// Update runs one input tick for the mortar at self. target is nil when
// no target was ever provided; use TargetDown once a target has died.
//
// While the target is in range the mortar faces it and fires on its cadence,
// the first shot on the tick it enters range. Leaving range stops shooting
// and re-arms the cadence.
func (s *MortarSystem) Update(id entity.EntityID, m *entity.Mortar, self entity.Vec2, target *entity.Vec2, dt float64) []Command {
	if target == nil {
		if !s.noTarget[id] {
			s.noTarget[id] = true
			s.log.Warn("mortar has no target", zap.Uint64("entity", uint64(id)))
		}
		s.stop(m)
		return nil
	}
	delete(s.noTarget, id)

	if !m.InRange(self, *target) {
		s.stop(m)
		return nil
	}

	var cmds []Command
	if (target.X > self.X && !m.FacingRight) || (target.X < self.X && m.FacingRight) {
		m.FacingRight = !m.FacingRight
		cmds = append(cmds, Flip{Entity: id, FacingRight: m.FacingRight})
	}

	if !m.Shooting {
		m.Shooting = true
		m.Cadence.Clear()
	} else {
		m.Cadence.Tick(dt)
	}
	if m.Cadence.Active() {
		return cmds
	}
	m.Cadence.Reset()

	return append(cmds, s.fire(id, m, self, *target)...)
}

// TargetDown idles the mortar at id after its target died or despawned
func (s *MortarSystem) TargetDown(id entity.EntityID, m *entity.Mortar) {
	if !s.noTarget[id] {
		s.noTarget[id] = true
		s.log.Debug("mortar target down", zap.Uint64("entity", uint64(id)))
	}
	s.stop(m)
}

func (s *MortarSystem) stop(m *entity.Mortar) {
	m.Shooting = false
	m.Cadence.Clear()
}

func (s *MortarSystem) fire(id entity.EntityID, m *entity.Mortar, self, target entity.Vec2) []Command {
	cmds := []Command{Trigger{Entity: id, Name: TriggerThrow}}

	req := ballistics.Request{
		Origin:  m.FirePoint.World(self, m.FacingRight),
		Target:  target,
		Angle:   m.LaunchAngle,
		Gravity: m.Gravity,
	}
	vel, ok := ballistics.Solve(req)
	if !ok {
		s.log.Debug("mortar shot skipped, target unreachable",
			zap.Uint64("entity", uint64(id)),
			zap.Float64("targetX", target.X),
			zap.Float64("targetY", target.Y))
		return cmds
	}

	if ce := s.log.Check(zap.DebugLevel, "mortar fired"); ce != nil {
		flight, _ := req.FlightTime(vel)
		ce.Write(
			zap.Uint64("entity", uint64(id)),
			zap.Float64("vx", vel.X),
			zap.Float64("vy", vel.Y),
			zap.Float64("flightTime", flight))
	}

	return append(cmds, Spawn{
		PrefabID: m.Prefab,
		Position: req.Origin,
		Velocity: vel,
		Owner:    id,
		Gravity:  m.Gravity,
	})
}

// Forget drops per-entity bookkeeping for a despawned mortar
func (s *MortarSystem) Forget(id entity.EntityID) {
	delete(s.noTarget, id)
}
