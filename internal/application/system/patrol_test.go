package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/motionkit/internal/domain/entity"
)

func TestPatrolSystem_WalksLeg(t *testing.T) {
	sys := NewPatrolSystem()
	p := entity.NewPatrol(entity.Vec2{X: -3}, entity.Vec2{X: 3}, 2, 10)
	pos := p.A

	var cmds []Command
	for i := 1; i <= 5; i++ {
		pos, cmds = sys.Update(1, &p, pos, 0.5)
		assert.InDelta(t, -3+float64(i), pos.X, 1e-6, "step %d", i)
		assert.Empty(t, cmds)
	}
	assert.True(t, p.TowardB)
	assert.True(t, p.FacingRight)

	// Sixth step reaches B, turns around
	pos, cmds = sys.Update(1, &p, pos, 0.5)
	assert.Equal(t, entity.Vec2{X: 3}, pos)
	assert.False(t, p.TowardB)
	assert.False(t, p.FacingRight)
	assert.Equal(t, []Command{Flip{Entity: 1, FacingRight: false}}, cmds)

	// And heads back to A
	pos, cmds = sys.Update(1, &p, pos, 0.5)
	assert.InDelta(t, 2, pos.X, 1e-6)
	assert.Empty(t, cmds)
}

func TestPatrolSystem_RoundTrip(t *testing.T) {
	sys := NewPatrolSystem()
	p := entity.NewPatrol(entity.Vec2{X: 0, Y: 1}, entity.Vec2{X: 4, Y: 1}, 2, 10)
	pos := p.A

	flips := 0
	for range 200 { // 4 s at 50 Hz
		var cmds []Command
		pos, cmds = sys.Update(1, &p, pos, 0.02)
		flips += len(cmds)
		assert.GreaterOrEqual(t, pos.X, -1e-6)
		assert.LessOrEqual(t, pos.X, 4+1e-6)
		assert.Equal(t, 1.0, pos.Y)
	}

	assert.Equal(t, 2, flips, "turned at B and back at A")
	assert.True(t, p.TowardB)
	assert.True(t, p.FacingRight)
}

func TestPatrolSystem_SnapsWithinArriveDistance(t *testing.T) {
	sys := NewPatrolSystem()
	p := entity.NewPatrol(entity.Vec2{X: 0}, entity.Vec2{X: 1}, 1, 0)

	// 0.95 m along a 1 m leg is close enough to turn around
	pos, cmds := sys.Update(2, &p, p.A, 0.95)
	assert.Equal(t, entity.Vec2{X: 1}, pos)
	assert.False(t, p.TowardB)
	require.Len(t, cmds, 1)
	assert.Equal(t, Flip{Entity: 2, FacingRight: false}, cmds[0])
}

func TestPatrolSystem_IgnoresBadInput(t *testing.T) {
	sys := NewPatrolSystem()

	p := entity.NewPatrol(entity.Vec2{X: 0}, entity.Vec2{X: 4}, 2, 0)
	pos, cmds := sys.Update(1, &p, entity.Vec2{X: 1}, 0)
	assert.Equal(t, entity.Vec2{X: 1}, pos)
	assert.Nil(t, cmds)
	assert.Nil(t, p.Leg)

	p = entity.NewPatrol(entity.Vec2{X: 0}, entity.Vec2{X: 4}, 0, 0)
	pos, cmds = sys.Update(1, &p, entity.Vec2{X: 1}, 0.5)
	assert.Equal(t, entity.Vec2{X: 1}, pos)
	assert.Nil(t, cmds)
}
