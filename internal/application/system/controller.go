package system

//go:generate go tool mockgen -destination=./mocks/controller_mock.go -package=mocks . GroundProbe,Body

import (
	"go.uber.org/zap"

	"github.com/younwookim/motionkit/internal/domain/entity"
)

// GroundProbe answers "is there ground under this point"
type GroundProbe interface {
	ProbeGround(pos entity.Vec2, radius float64, mask entity.LayerMask) bool
}

// Body is the physics body a controller drives
type Body interface {
	Position() entity.Vec2
	Velocity() entity.Vec2
	SetVelocity(v entity.Vec2)
	AddForce(f entity.Vec2)
	Gravity() float64
}

// CharacterController binds one locomotion state to its physics capabilities
// and applies the commands the locomotion system returns.
type CharacterController struct {
	ID     entity.EntityID
	State  entity.Locomotion
	system *LocomotionSystem
	probe  GroundProbe
	body   Body
	log    *zap.Logger
	warned bool

	// OnCommand receives the commands the controller does not apply itself
	// (Flip, Trigger). Optional.
	OnCommand func(Command)
}

// NewCharacterController creates a controller. probe or body may be nil;
// ticks are then skipped with a warning.
func NewCharacterController(id entity.EntityID, sys *LocomotionSystem, probe GroundProbe, body Body, log *zap.Logger) *CharacterController {
	if log == nil {
		log = zap.NewNop()
	}
	return &CharacterController{
		ID:     id,
		State:  sys.NewState(),
		system: sys,
		probe:  probe,
		body:   body,
		log:    log,
	}
}

func (c *CharacterController) ready() bool {
	if c.probe != nil && c.body != nil {
		return true
	}
	if !c.warned {
		c.warned = true
		c.log.Warn("character controller missing collaborator, skipping ticks",
			zap.Uint64("entity", uint64(c.ID)),
			zap.Bool("probe", c.probe != nil),
			zap.Bool("body", c.body != nil))
	}
	return false
}

// Environment samples the ground probe and body
func (c *CharacterController) Environment() Environment {
	cfg := c.system.Config()
	foot := cfg.GroundCheck.Offset().World(c.body.Position(), c.State.FacingRight)
	return Environment{
		Grounded: c.probe.ProbeGround(foot, cfg.GroundCheckRadius, cfg.GroundMask()),
		Velocity: c.body.Velocity(),
		Gravity:  c.body.Gravity(),
	}
}

// InputTick runs the input tick against the current environment
func (c *CharacterController) InputTick(in entity.InputSample, dt float64) error {
	if !c.ready() {
		return nil
	}
	cmds, err := c.system.Update(c.ID, &c.State, in, c.Environment(), dt)
	if err != nil {
		return err
	}
	c.Apply(cmds)
	return nil
}

// PhysicsTick runs one physics sub-tick
func (c *CharacterController) PhysicsTick(dt float64) error {
	if !c.ready() {
		return nil
	}
	env := Environment{
		Grounded: c.State.Grounded,
		Velocity: c.body.Velocity(),
		Gravity:  c.body.Gravity(),
	}
	cmds, err := c.system.FixedUpdate(c.ID, &c.State, env, dt)
	if err != nil {
		return err
	}
	c.Apply(cmds)
	return nil
}

// Apply applies body commands and forwards the rest to OnCommand
func (c *CharacterController) Apply(cmds []Command) {
	for _, cmd := range cmds {
		switch cmd := cmd.(type) {
		case SetVerticalVelocity:
			v := c.body.Velocity()
			v.Y = cmd.VY
			c.body.SetVelocity(v)
		case ApplyForce:
			c.body.AddForce(cmd.Force)
		case AddVelocity:
			c.body.SetVelocity(c.body.Velocity().Add(cmd.Delta))
		default:
			if c.OnCommand != nil {
				c.OnCommand(cmd)
			}
		}
	}
}

// Pose returns the animation pose for the current state
func (c *CharacterController) Pose() entity.Pose {
	return entity.ClassifyPose(c.State)
}
