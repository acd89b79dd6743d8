package shortpath

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Config holds the command line tool's settings.
type Config struct {
	// Cache time-to-live, for example 10s. Zero disables caching.
	TTL time.Duration `yaml:"ttl"`
	// Shorten paths even when they are under the length limit.
	Force bool `yaml:"force"`
	// How short paths are obtained.
	Method Method `yaml:"method"`
}

// DefaultConfig returns the settings used when no configuration file is found.
func DefaultConfig() *Config {
	return &Config{TTL: DefaultTTL, Method: MethodGenerate}
}

const configRelPath = "shortpath/config.yaml"

var (
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")

	// searchConfigFile is swapped out for testing.
	searchConfigFile = xdg.SearchConfigFile
)

// ReadConfig parses the configuration at the given path. Unset fields take their default value.
func ReadConfig(fp string) (*Config, error) {
	data, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingConfig, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if cfg.TTL < 0 {
		return nil, fmt.Errorf("%w: negative TTL %v", ErrInvalidConfig, cfg.TTL)
	}
	if !cfg.Method.IsAMethod() {
		return nil, fmt.Errorf("%w: unknown method %v", ErrInvalidConfig, cfg.Method)
	}
	return cfg, nil
}

// FindConfig reads the configuration from the XDG config directories, falling back to defaults if
// there is none.
func FindConfig() (*Config, error) {
	fp, err := searchConfigFile(configRelPath)
	if err != nil {
		return DefaultConfig(), nil
	}
	return ReadConfig(fp)
}
