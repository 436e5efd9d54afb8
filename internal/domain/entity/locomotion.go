package entity

// Locomotion is the movement state of one character.
// It is owned by a single controller and mutated only during that
// controller's input and physics ticks.
type Locomotion struct {
	HorizontalVelocity float64
	VerticalVelocity   float64

	Grounded       bool
	JumpsRemaining int // 0..MaxJumps
	MaxJumps       int
	FacingRight    bool

	Coyote     Countdown
	JumpBuffer Countdown

	// Last input sample, consumed by the physics tick
	Axis     float64
	JumpHeld bool
}

// NewLocomotion creates a character facing right, airborne, with an empty
// jump budget; the first ground contact refills it.
func NewLocomotion(maxJumps int, coyoteTime, jumpBufferTime float64) Locomotion {
	return Locomotion{
		MaxJumps:    maxJumps,
		FacingRight: true,
		Coyote:      NewCountdown(coyoteTime),
		JumpBuffer:  NewCountdown(jumpBufferTime),
	}
}

// CanJump reports whether a buffered jump would be honoured right now.
// The air branch only spends jumps that are already below the budget,
// so the first jump after leaving a ledge must come from coyote time.
func (l *Locomotion) CanJump() bool {
	if !l.JumpBuffer.Active() {
		return false
	}
	if l.Coyote.Active() && l.JumpsRemaining > 0 {
		return true
	}
	return !l.Grounded && l.JumpsRemaining > 0 && l.JumpsRemaining < l.MaxJumps
}

// Pose is the animation classification derived from locomotion state
type Pose int

const (
	PoseIdle Pose = iota
	PoseWalk
	PoseJump
	PoseFall
)

// String returns the animator parameter name for the pose
func (p Pose) String() string {
	switch p {
	case PoseIdle:
		return "Idle"
	case PoseWalk:
		return "Walk"
	case PoseJump:
		return "Jump"
	case PoseFall:
		return "Fall"
	default:
		return "Unknown"
	}
}

// poseThreshold separates rising/falling and idle/walking
const poseThreshold = 0.1

// ClassifyPose maps locomotion state to a pose.
// Near the apex of a jump the pose stays Jump.
func ClassifyPose(l Locomotion) Pose {
	if !l.Grounded {
		if l.VerticalVelocity < -poseThreshold {
			return PoseFall
		}
		return PoseJump
	}
	if l.Axis > poseThreshold || l.Axis < -poseThreshold {
		return PoseWalk
	}
	return PoseIdle
}
