package config_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplesocial/socialnet/pkg/socialnet"
	"github.com/simplesocial/socialnet/pkg/socialnet/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "Twitter", cfg.NetworkName)
	assert.Equal(t, "console", cfg.EventSink)
	assert.Equal(t, "passthrough", cfg.AssetLibrary)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SOCIAL_NETWORK_NAME", "Chirper")
	t.Setenv("SOCIAL_EVENT_SINK", "noop")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "Chirper", cfg.NetworkName)
	assert.Equal(t, "noop", cfg.EventSink)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*config.Config)
		expectError bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *config.Config) {},
		},
		{
			name:        "empty network name",
			mutate:      func(c *config.Config) { c.NetworkName = "" },
			expectError: true,
		},
		{
			name:        "unknown event sink",
			mutate:      func(c *config.Config) { c.EventSink = "kafka" },
			expectError: true,
		},
		{
			name:        "unknown asset library",
			mutate:      func(c *config.Config) { c.AssetLibrary = "s3" },
			expectError: true,
		},
		{
			name: "fs library requires a root",
			mutate: func(c *config.Config) {
				c.AssetLibrary = "fs"
				c.AssetRoot = ""
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Load()
			require.NoError(t, err)

			tt.mutate(cfg)
			err = cfg.Validate()

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBuildService(t *testing.T) {
	t.Setenv("SOCIAL_NETWORK_NAME", "Chirper")

	cfg, err := config.Load()
	require.NoError(t, err)

	var out bytes.Buffer
	svc, err := cfg.BuildService(&out)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = svc.Register(ctx, socialnet.RegisterRequest{Username: "alice", Password: "pass1"})
	require.NoError(t, err)

	summary, err := svc.Render(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Chirper social network:\nUser name: alice, Number of posts: 0, Number of followers: 0\n", summary)

	assert.Equal(t, "alice signed up\n", out.String())
}

func TestBuildServiceFsLibrary(t *testing.T) {
	t.Setenv("SOCIAL_ASSET_LIBRARY", "fs")
	t.Setenv("SOCIAL_ASSET_ROOT", t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	svc, err := cfg.BuildService(nil)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}
