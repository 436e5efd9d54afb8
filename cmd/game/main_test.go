package main

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, options{logLevel: "info", scale: 2, ppm: 16}, opts)

	opts, err = parseFlags([]string{"-record", "out.json", "-scale", "3", "-ppm", "24", "-log-level", "debug"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "out.json", opts.recordPath)
	assert.Equal(t, 3, opts.scale)
	assert.Equal(t, 24.0, opts.ppm)
	assert.Equal(t, "debug", opts.logLevel)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"same record and replay file", []string{"-record", "a.json", "-replay", "a.json"}},
		{"zero scale", []string{"-scale", "0"}},
		{"negative ppm", []string{"-ppm", "-1"}},
		{"unknown flag", []string{"-fullscreen"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags(tt.args, io.Discard)
			assert.Error(t, err)
		})
	}
}

func TestParseFlags_Help(t *testing.T) {
	_, err := parseFlags([]string{"-h"}, io.Discard)
	assert.ErrorIs(t, err, flag.ErrHelp)
}
