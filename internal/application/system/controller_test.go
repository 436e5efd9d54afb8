package system_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/younwookim/motionkit/internal/application/system"
	"github.com/younwookim/motionkit/internal/application/system/mocks"
	"github.com/younwookim/motionkit/internal/domain/entity"
	"github.com/younwookim/motionkit/internal/infrastructure/config"
)

func newTestSystem() *system.LocomotionSystem {
	cfg := config.Default().Player.Locomotion
	return system.NewLocomotionSystem(&cfg)
}

func TestCharacterController_InputTickJumps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	probe := mocks.NewMockGroundProbe(ctrl)
	body := mocks.NewMockBody(ctrl)

	feet := entity.LayerGround | entity.LayerPlatform
	body.EXPECT().Position().Return(entity.Vec2{X: 2, Y: 1})
	probe.EXPECT().ProbeGround(entity.Vec2{X: 2, Y: 0.5}, 0.2, feet).Return(true)
	body.EXPECT().Velocity().Return(entity.Vec2{X: 1.5}).AnyTimes()
	body.EXPECT().Gravity().Return(9.81)
	body.EXPECT().SetVelocity(entity.Vec2{X: 1.5, Y: 15})

	c := system.NewCharacterController(1, newTestSystem(), probe, body, nil)
	require.NoError(t, c.InputTick(entity.InputSample{JumpPressed: true, JumpHeld: true}, 0.02))

	assert.True(t, c.State.Grounded)
	assert.Equal(t, 1, c.State.JumpsRemaining)
}

func TestCharacterController_ForwardsCosmeticCommands(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	probe := mocks.NewMockGroundProbe(ctrl)
	body := mocks.NewMockBody(ctrl)

	body.EXPECT().Position().Return(entity.Vec2{X: 2, Y: 1})
	probe.EXPECT().ProbeGround(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
	body.EXPECT().Velocity().Return(entity.Vec2{})
	body.EXPECT().Gravity().Return(9.81)

	var got []system.Command
	c := system.NewCharacterController(4, newTestSystem(), probe, body, nil)
	c.OnCommand = func(cmd system.Command) { got = append(got, cmd) }

	require.NoError(t, c.InputTick(entity.InputSample{Axis: -1}, 0.02))
	assert.Equal(t, []system.Command{system.Flip{Entity: 4, FacingRight: false}}, got)
	assert.False(t, c.State.FacingRight)
}

func TestCharacterController_GroundCheckMirrorsWithFacing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.Default().Player.Locomotion
	cfg.GroundCheck = config.OffsetConfig{X: 0.3, Y: -0.5}
	sys := system.NewLocomotionSystem(&cfg)

	probe := mocks.NewMockGroundProbe(ctrl)
	body := mocks.NewMockBody(ctrl)

	body.EXPECT().Position().Return(entity.Vec2{X: 2, Y: 1}).Times(2)
	body.EXPECT().Velocity().Return(entity.Vec2{}).Times(2)
	body.EXPECT().Gravity().Return(9.81).Times(2)
	gomock.InOrder(
		probe.EXPECT().ProbeGround(entity.Vec2{X: 2.3, Y: 0.5}, gomock.Any(), gomock.Any()).Return(true),
		probe.EXPECT().ProbeGround(entity.Vec2{X: 1.7, Y: 0.5}, gomock.Any(), gomock.Any()).Return(true),
	)

	c := system.NewCharacterController(1, sys, probe, body, nil)
	c.Environment()
	c.State.FacingRight = false
	c.Environment()
}

func TestCharacterController_PhysicsTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	probe := mocks.NewMockGroundProbe(ctrl)
	body := mocks.NewMockBody(ctrl)

	body.EXPECT().Velocity().Return(entity.Vec2{X: 0, Y: -2}).AnyTimes()
	body.EXPECT().Gravity().Return(9.81)
	body.EXPECT().AddForce(entity.Vec2{X: 7 * 35})
	body.EXPECT().SetVelocity(gomock.Any()).Do(func(v entity.Vec2) {
		assert.InDelta(t, -2-9.81*1.5*0.02, v.Y, 1e-12)
	})

	c := system.NewCharacterController(1, newTestSystem(), probe, body, nil)
	c.State.Axis = 1
	c.State.Grounded = false

	require.NoError(t, c.PhysicsTick(0.02))
}

func TestCharacterController_MissingCollaboratorWarnsOnce(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	probe := mocks.NewMockGroundProbe(ctrl)
	c := system.NewCharacterController(9, newTestSystem(), probe, nil, zap.New(core))

	for range 3 {
		require.NoError(t, c.InputTick(entity.InputSample{JumpPressed: true}, 0.02))
		require.NoError(t, c.PhysicsTick(0.02))
	}

	entries := logs.FilterMessage("character controller missing collaborator, skipping ticks").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, uint64(9), fields["entity"])
	assert.Equal(t, true, fields["probe"])
	assert.Equal(t, false, fields["body"])
}

func TestCharacterController_Pose(t *testing.T) {
	c := system.NewCharacterController(1, newTestSystem(), nil, nil, nil)

	assert.Equal(t, entity.PoseJump, c.Pose())

	c.State.Grounded = true
	assert.Equal(t, entity.PoseIdle, c.Pose())

	c.State.Axis = -1
	assert.Equal(t, entity.PoseWalk, c.Pose())

	c.State.Grounded = false
	c.State.VerticalVelocity = -3
	assert.Equal(t, entity.PoseFall, c.Pose())
}
