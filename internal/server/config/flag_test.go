package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "127.0.0.1:9090", "-d", "db", "-s", "secret", "-t", "1", "-r", "3", "-v"},
			expected: &Config{
				EndpointAddrGRPC:             "127.0.0.1:9090",
				DatabaseDSN:                  "db",
				SecretKey:                    "secret",
				AccessTokenValidityDuration:  1 * time.Minute,
				RefreshTokenValidityDuration: 3 * time.Minute,
				Debug:                        true,
			},
		},
		{
			name: "foreign flags ignored",
			args: []string{"cmd", "-x", "1", "-a", ":1"},
			expected: &Config{
				EndpointAddrGRPC:             ":1",
				AccessTokenValidityDuration:  2 * time.Minute,
				RefreshTokenValidityDuration: 4 * time.Minute,
			},
		},
		{
			name:        "bad minutes",
			args:        []string{"cmd", "-t", "soon"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			config := &Config{AccessTokenValidityDuration: 2 * time.Minute, RefreshTokenValidityDuration: 4 * time.Minute}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
