package config

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/motionkit/configs"
	"github.com/younwookim/motionkit/internal/domain/entity"
)

func TestLoader_LoadTuning_Embedded(t *testing.T) {
	loader := NewFSLoader(configs.FS, ".")

	cfg, err := loader.LoadTuning(configs.Tuning)
	require.NoError(t, err)

	assert.Equal(t, 9.81, cfg.Physics.Gravity)
	assert.Equal(t, 0.02, cfg.Sim.FixedStep)
	assert.Equal(t, 5, cfg.Sim.MaxSubsteps)
	assert.Equal(t, 7.0, cfg.Player.Locomotion.MoveSpeed)
	assert.Equal(t, 2, cfg.Player.Locomotion.MaxJumps)
	assert.Equal(t, 0.15, cfg.Player.Locomotion.CoyoteTime)
	assert.Equal(t, entity.LayerGround|entity.LayerPlatform, cfg.Player.Locomotion.GroundMask())
	assert.InDelta(t, 1.4, cfg.Player.Health.DespawnDelay(), 1e-12)

	mortar, ok := cfg.Prefabs[PrefabMortar]
	require.True(t, ok)
	require.NotNil(t, mortar.Mortar)
	assert.Equal(t, 45.0, mortar.Mortar.LaunchAngleDeg)
	assert.Equal(t, PrefabMortarShell, mortar.Mortar.Projectile)

	ai, ok := mortar.AI()
	require.True(t, ok)
	assert.Equal(t, entity.AIMortar, ai)

	assert.Len(t, cfg.Arena.Solids, 2)
	assert.Len(t, cfg.Arena.Spawns, 2)
}

func TestLoader_EmbeddedMatchesDefault(t *testing.T) {
	loader := NewFSLoader(configs.FS, ".")

	cfg, err := loader.LoadTuning(configs.Tuning)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoader_LoadTuning_JSONOverridesDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"fast.json": {Data: []byte(`{
			"player": {"locomotion": {"moveSpeed": 12, "maxJumps": 3}},
			"sim": {"fixedStep": 0.01}
		}`)},
	}
	loader := NewFSLoader(fsys, ".")

	cfg, err := loader.LoadTuning("fast.json")
	require.NoError(t, err)

	assert.Equal(t, 12.0, cfg.Player.Locomotion.MoveSpeed)
	assert.Equal(t, 3, cfg.Player.Locomotion.MaxJumps)
	assert.Equal(t, 0.01, cfg.Sim.FixedStep)

	// untouched fields keep their defaults
	assert.Equal(t, 15.0, cfg.Player.Locomotion.JumpForce)
	assert.Equal(t, 5, cfg.Sim.MaxSubsteps)
}

func TestLoader_LoadTuning_YAMLOverridesDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"moon.yml": {Data: []byte("physics:\n  gravity: 1.62\n")},
	}
	loader := NewFSLoader(fsys, ".")

	cfg, err := loader.LoadTuning("moon.yml")
	require.NoError(t, err)
	assert.Equal(t, 1.62, cfg.Physics.Gravity)
}

func TestLoader_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.json":     {Data: []byte(`{"physics": `)},
		"unknown.yaml": {Data: []byte("physics:\n  gravty: 3\n")},
		"tuning.toml":  {Data: []byte(`gravity = 1`)},
		"invalid.json": {Data: []byte(`{"physics": {"gravity": -1}}`)},
	}
	loader := NewFSLoader(fsys, ".")

	tests := []struct {
		name    string
		file    string
		wantErr error
	}{
		{"missing file", "nope.yaml", nil},
		{"malformed json", "bad.json", nil},
		{"unknown yaml field", "unknown.yaml", nil},
		{"unsupported extension", "tuning.toml", ErrUnsupportedFormat},
		{"fails validation", "invalid.json", ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loader.LoadTuning(tt.file)
			require.Error(t, err)
			assert.Nil(t, cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestNewLoader_Directory(t *testing.T) {
	loader := NewLoader("../../../configs")

	cfg, err := loader.LoadTuning("tuning.yaml")
	require.NoError(t, err)
	assert.Equal(t, 15.0, cfg.Player.Locomotion.JumpForce)
}

func TestLoad(t *testing.T) {
	embedded, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), embedded)

	fromFile, err := Load(filepath.Join("..", "..", "..", "configs", "tuning.yaml"))
	require.NoError(t, err)
	assert.Equal(t, embedded, fromFile)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
