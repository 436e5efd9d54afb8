package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLocomotion(t *testing.T) {
	l := NewLocomotion(2, 0.15, 0.1)

	assert.True(t, l.FacingRight)
	assert.False(t, l.Grounded)
	assert.Equal(t, 0, l.JumpsRemaining)
	assert.Equal(t, 2, l.MaxJumps)
	assert.Equal(t, 0.15, l.Coyote.Duration)
	assert.Equal(t, 0.1, l.JumpBuffer.Duration)
	assert.False(t, l.Coyote.Active())
	assert.False(t, l.JumpBuffer.Active())
}

func TestLocomotion_CanJump(t *testing.T) {
	tests := []struct {
		name     string
		grounded bool
		coyote   bool
		buffer   bool
		jumps    int
		want     bool
	}{
		{"grounded with buffer", true, true, true, 2, true},
		{"no buffered press", true, true, false, 2, false},
		{"coyote after leaving ledge", false, true, true, 2, true},
		{"air jump after first jump", false, false, true, 1, true},
		{"budget spent", false, false, true, 0, false},
		{"coyote but no jumps", false, true, true, 0, false},
		{"coyote lapsed with full budget", false, false, true, 2, false},
		{"grounded without coyote", true, false, true, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLocomotion(2, 0.15, 0.1)
			l.Grounded = tt.grounded
			l.JumpsRemaining = tt.jumps
			if tt.coyote {
				l.Coyote.Reset()
			}
			if tt.buffer {
				l.JumpBuffer.Reset()
			}
			assert.Equal(t, tt.want, l.CanJump())
		})
	}
}

func TestClassifyPose(t *testing.T) {
	tests := []struct {
		name     string
		grounded bool
		vy       float64
		axis     float64
		want     Pose
	}{
		{"standing", true, 0, 0, PoseIdle},
		{"small axis is idle", true, 0, 0.05, PoseIdle},
		{"walking right", true, 0, 0.5, PoseWalk},
		{"walking left", true, 0, -1, PoseWalk},
		{"rising", false, 5, 0, PoseJump},
		{"falling", false, -5, 1, PoseFall},
		{"apex stays jump", false, 0.05, 0, PoseJump},
		{"just below apex", false, -0.05, 0, PoseJump},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Locomotion{Grounded: tt.grounded, VerticalVelocity: tt.vy, Axis: tt.axis}
			assert.Equal(t, tt.want, ClassifyPose(l))
		})
	}
}

func TestPose_String(t *testing.T) {
	assert.Equal(t, "Idle", PoseIdle.String())
	assert.Equal(t, "Walk", PoseWalk.String())
	assert.Equal(t, "Jump", PoseJump.String())
	assert.Equal(t, "Fall", PoseFall.String())
	assert.Equal(t, "Unknown", Pose(42).String())
}
