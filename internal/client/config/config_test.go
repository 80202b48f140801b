package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	want := Config{
		ServerEndpointAddr:  "127.0.0.1:50051",
		DatabasePath:        "esgportal.db",
		CallTimeout:         15 * time.Second,
		OnlineCheckInterval: 3 * time.Second,
		LogLevel:            "warn",
		Mode:                ModeGRPC,
	}
	assert.Empty(t, cmp.Diff(want, c))
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "127.0.0.1:50051", cfg.ServerEndpointAddr)
	assert.Equal(t, ModeGRPC, cfg.Mode)
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"server_endpoint_addr": "json:1",
		"log_level":            "debug",
	})
	os.Args = []string{"testbin", "-c", path, "-a", "flag:2"}

	cfg := LoadConfig()
	assert.Equal(t, "flag:2", cfg.ServerEndpointAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "127.0.0.1:9090", "-d", "/tmp/s.db", "-t", "3", "-i", "10", "-l", "debug", "-m", "memory"},
			expected: &Config{
				ServerEndpointAddr:  "127.0.0.1:9090",
				DatabasePath:        "/tmp/s.db",
				CallTimeout:         3 * time.Second,
				OnlineCheckInterval: 10 * time.Second,
				LogLevel:            "debug",
				Mode:                ModeMemory,
			},
		},
		{
			name: "unknown flags are left to others",
			args: []string{"cmd", "-x", "1", "-a", "h:1"},
			expected: &Config{
				ServerEndpointAddr:  "h:1",
				DatabasePath:        "esgportal.db",
				CallTimeout:         15 * time.Second,
				OnlineCheckInterval: 3 * time.Second,
				LogLevel:            "warn",
				Mode:                ModeGRPC,
			},
		},
		{name: "incorrect timeout", args: []string{"cmd", "-t", "abc"}, expectPanic: true},
		{name: "unknown mode", args: []string{"cmd", "-m", "carrier-pigeon"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			config := &Config{}
			config.LoadDefaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
