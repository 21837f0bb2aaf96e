package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/simplesocial/socialnet/pkg/socialnet"
	assetfs "github.com/simplesocial/socialnet/pkg/socialnet/asset/fs"
	assetmemory "github.com/simplesocial/socialnet/pkg/socialnet/asset/memory"
	"github.com/simplesocial/socialnet/pkg/socialnet/repo/memory"
)

// Config represents configuration for a socialnet service instance.
type Config struct {
	// NetworkName is the display name used by Render.
	NetworkName string `env:"SOCIAL_NETWORK_NAME" env-default:"Twitter"`

	// EventSink selects the sink for successful-mutation lines:
	// "console", "noop".
	EventSink string `env:"SOCIAL_EVENT_SINK" env-default:"console"`

	// AssetLibrary selects the image asset collaborator: "passthrough",
	// "memory", "fs".
	AssetLibrary string `env:"SOCIAL_ASSET_LIBRARY" env-default:"passthrough"`

	// AssetRoot is the root directory for the fs asset library.
	AssetRoot string `env:"SOCIAL_ASSET_ROOT" env-default:"."`
}

// Load reads configuration from the environment on top of defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.NetworkName == "" {
		return errors.New("network name is required")
	}

	switch c.EventSink {
	case "console", "noop":
	default:
		return fmt.Errorf("event_sink must be 'console' or 'noop', got %q", c.EventSink)
	}

	switch c.AssetLibrary {
	case "passthrough", "memory", "fs":
	default:
		return fmt.Errorf("asset_library must be 'passthrough', 'memory' or 'fs', got %q", c.AssetLibrary)
	}

	if c.AssetLibrary == "fs" && c.AssetRoot == "" {
		return errors.New("asset_root is required when using the fs asset library")
	}

	return nil
}

// BuildService creates a fully wired Service from the configuration. The
// console sink writes to w; a nil writer means stdout.
func (c *Config) BuildService(w io.Writer) (socialnet.Service, error) {
	options := []socialnet.Option{
		socialnet.WithRepository(memory.New()),
		socialnet.WithNetworkName(c.NetworkName),
	}

	switch c.EventSink {
	case "console":
		options = append(options, socialnet.WithEventSink(socialnet.NewConsoleEventSink(w)))
	case "noop":
		options = append(options, socialnet.WithEventSink(socialnet.NewNoopEventSink()))
	}

	switch c.AssetLibrary {
	case "memory":
		options = append(options, socialnet.WithImageLibrary(assetmemory.New()))
	case "fs":
		library, err := assetfs.New(c.AssetRoot)
		if err != nil {
			return nil, err
		}
		options = append(options, socialnet.WithImageLibrary(library))
	}

	return socialnet.New(options...)
}
