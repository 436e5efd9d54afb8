package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/younwookim/motionkit/internal/domain/entity"
)

func TestHealthSystem_Damage(t *testing.T) {
	sys := NewHealthSystem(nil)
	h := entity.NewHealth(100, 1)

	res, cmds, err := sys.Damage(5, &h, 30, 1.4)
	require.NoError(t, err)
	assert.Equal(t, entity.DamageApplied, res)
	assert.Equal(t, []Command{Trigger{Entity: 5, Name: TriggerDamage}}, cmds)
	assert.Equal(t, 70.0, h.Current)

	// Invincible right after the hit
	res, cmds, err = sys.Damage(5, &h, 30, 1.4)
	require.NoError(t, err)
	assert.Equal(t, entity.DamageIgnored, res)
	assert.Empty(t, cmds)
	assert.Equal(t, 70.0, h.Current)
}

func TestHealthSystem_DeathDespawnsOnce(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sys := NewHealthSystem(zap.New(core))
	h := entity.NewHealth(20, 0)

	res, cmds, err := sys.Damage(3, &h, 50, 1.4)
	require.NoError(t, err)
	assert.Equal(t, entity.DamageFatal, res)
	assert.Equal(t, []Command{
		Trigger{Entity: 3, Name: TriggerDamage},
		Trigger{Entity: 3, Name: TriggerDeath},
		Despawn{Entity: 3, Delay: 1.4},
	}, cmds)
	assert.Equal(t, 0.0, h.Current)

	for range 3 {
		res, cmds, err = sys.Damage(3, &h, 10, 1.4)
		require.NoError(t, err)
		assert.Equal(t, entity.DamageIgnored, res)
		assert.Empty(t, cmds)
	}

	assert.Equal(t, 1, logs.FilterMessage("entity died").Len())
}

func TestHealthSystem_InvalidDamage(t *testing.T) {
	sys := NewHealthSystem(nil)

	for _, amount := range []float64{0, -5} {
		h := entity.NewHealth(10, 0)
		_, cmds, err := sys.Damage(1, &h, amount, 1)
		assert.ErrorIs(t, err, entity.ErrInvalidDamage)
		assert.Nil(t, cmds)
		assert.Equal(t, 10.0, h.Current)
	}
}

func TestHealthSystem_TickEndsInvincibility(t *testing.T) {
	sys := NewHealthSystem(nil)
	h := entity.NewHealth(100, 0.5)

	_, _, err := sys.Damage(1, &h, 10, 1)
	require.NoError(t, err)
	require.True(t, h.IsInvincible())

	require.NoError(t, sys.Tick(&h, 0.25))
	assert.True(t, h.IsInvincible())
	require.NoError(t, sys.Tick(&h, 0.25))
	assert.False(t, h.IsInvincible())

	assert.ErrorIs(t, sys.Tick(&h, -1), entity.ErrInvalidDelta)
}
