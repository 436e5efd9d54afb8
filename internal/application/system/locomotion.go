package system

import (
	"math"

	"github.com/younwookim/motionkit/internal/domain/entity"
	"github.com/younwookim/motionkit/internal/infrastructure/config"
)

// targetEpsilon decides whether the player is steering or letting go
const targetEpsilon = 0.01

// Environment is what the physics collaborator reports for one character
type Environment struct {
	Grounded bool
	Velocity entity.Vec2
	Gravity  float64 // positive magnitude acting on the body
}

// LocomotionSystem runs the character controller rules
type LocomotionSystem struct {
	config *config.LocomotionConfig
}

// NewLocomotionSystem creates a new locomotion system
func NewLocomotionSystem(cfg *config.LocomotionConfig) *LocomotionSystem {
	return &LocomotionSystem{config: cfg}
}

// Config returns the tuning the system runs with
func (s *LocomotionSystem) Config() *config.LocomotionConfig {
	return s.config
}

// NewState creates locomotion state sized by the config
func (s *LocomotionSystem) NewState() entity.Locomotion {
	return entity.NewLocomotion(s.config.MaxJumps, s.config.CoyoteTime, s.config.JumpBufferTime)
}

// Update is the input tick: ground transition, coyote time, jump buffering,
// the jump decision and facing. It runs before any physics sub-tick.
func (s *LocomotionSystem) Update(id entity.EntityID, st *entity.Locomotion, in entity.InputSample, env Environment, dt float64) ([]Command, error) {
	if err := entity.CheckDelta(dt); err != nil {
		return nil, err
	}
	in = in.Clamped()

	st.HorizontalVelocity = env.Velocity.X
	st.VerticalVelocity = env.Velocity.Y
	st.Axis = in.Axis
	st.JumpHeld = in.JumpHeld

	// Landing refills the jump budget
	if env.Grounded && !st.Grounded {
		st.JumpsRemaining = st.MaxJumps
	}
	st.Grounded = env.Grounded

	if st.Grounded {
		st.Coyote.Reset()
	} else {
		st.Coyote.Tick(dt)
	}

	if in.JumpPressed {
		st.JumpBuffer.Reset()
	} else {
		st.JumpBuffer.Tick(dt)
	}

	var cmds []Command
	if st.CanJump() {
		st.VerticalVelocity = s.config.JumpForce
		st.JumpsRemaining--
		st.Coyote.Clear()
		st.JumpBuffer.Clear()
		cmds = append(cmds, SetVerticalVelocity{Entity: id, VY: s.config.JumpForce})
	}

	if (in.Axis > 0 && !st.FacingRight) || (in.Axis < 0 && st.FacingRight) {
		st.FacingRight = !st.FacingRight
		cmds = append(cmds, Flip{Entity: id, FacingRight: st.FacingRight})
	}

	return cmds, nil
}

// FixedUpdate is the physics tick: a velocity servo towards Axis*MoveSpeed
// and the fall / low-jump gravity shaping.
func (s *LocomotionSystem) FixedUpdate(id entity.EntityID, st *entity.Locomotion, env Environment, dt float64) ([]Command, error) {
	if err := entity.CheckDelta(dt); err != nil {
		return nil, err
	}

	st.HorizontalVelocity = env.Velocity.X
	st.VerticalVelocity = env.Velocity.Y

	target := st.Axis * s.config.MoveSpeed
	rate := s.rate(st.Grounded, math.Abs(target) > targetEpsilon)

	cmds := []Command{
		ApplyForce{Entity: id, Force: entity.Vec2{X: (target - st.HorizontalVelocity) * rate}},
	}

	switch {
	case st.VerticalVelocity < 0:
		cmds = append(cmds, AddVelocity{
			Entity: id,
			Delta:  entity.Vec2{Y: -env.Gravity * (s.config.FallMultiplier - 1) * dt},
		})
	case st.VerticalVelocity > 0 && !st.JumpHeld:
		cmds = append(cmds, AddVelocity{
			Entity: id,
			Delta:  entity.Vec2{Y: -env.Gravity * (s.config.LowJumpMultiplier - 1) * dt},
		})
	}

	return cmds, nil
}

func (s *LocomotionSystem) rate(grounded, steering bool) float64 {
	switch {
	case grounded && steering:
		return s.config.Acceleration
	case grounded:
		return s.config.Deceleration
	case steering:
		return s.config.AirAcceleration
	default:
		return s.config.AirDeceleration
	}
}
