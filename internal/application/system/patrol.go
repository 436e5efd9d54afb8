package system

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/motionkit/internal/domain/entity"
)

// arriveDistance is how close a patroller must get before turning around
const arriveDistance = 0.1

// PatrolSystem walks patrollers back and forth between their waypoints
type PatrolSystem struct{}

// NewPatrolSystem creates a new patrol system
func NewPatrolSystem() *PatrolSystem {
	return &PatrolSystem{}
}

// Update advances the patroller at pos by dt and returns its new position.
// Each leg is a linear tween over the leg length at constant speed; on
// arrival the target swaps and the patroller turns to face it.
func (s *PatrolSystem) Update(id entity.EntityID, p *entity.Patrol, pos entity.Vec2, dt float64) (entity.Vec2, []Command) {
	if dt <= 0 || !(p.Speed > 0) {
		return pos, nil
	}

	if p.Leg == nil {
		p.LegFrom = pos
		p.LegTo = p.Target()
		length := p.LegFrom.Dist(p.LegTo)
		p.Leg = gween.New(0, float32(length), float32(length/p.Speed), ease.Linear)
	}

	travelled, done := p.Leg.Update(float32(dt))
	next := p.LegFrom
	if length := p.LegFrom.Dist(p.LegTo); length > 0 {
		dir := p.LegTo.Sub(p.LegFrom).Scale(1 / length)
		next = p.LegFrom.Add(dir.Scale(float64(travelled)))
	}

	if !done && next.Dist(p.LegTo) >= arriveDistance {
		return next, nil
	}

	// arrived: snap, swap target, face the other way
	next = p.LegTo
	p.TowardB = !p.TowardB
	p.Leg = nil

	var cmds []Command
	facing := p.Target().X >= next.X
	if facing != p.FacingRight {
		p.FacingRight = facing
		cmds = append(cmds, Flip{Entity: id, FacingRight: facing})
	}
	return next, cmds
}
