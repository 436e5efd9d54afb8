package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level   string
		enabled zap.AtomicLevel
	}{
		{"debug", zap.NewAtomicLevelAt(zap.DebugLevel)},
		{"info", zap.NewAtomicLevelAt(zap.InfoLevel)},
		{"WARN", zap.NewAtomicLevelAt(zap.WarnLevel)},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log, err := New(tt.level)
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tt.enabled.Level()))
			assert.False(t, log.Core().Enabled(tt.enabled.Level()-1))
		})
	}
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New("chatty")
	assert.Error(t, err)
}
