package w4sprite

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigFile is where LoadConfig looks when no path is given.
const DefaultConfigFile = "w4sprite.yaml"

// Config carries the generator settings shared by the command line tool
// and by build scripts embedding the library.
type Config struct {
	Output   string `koanf:"output"`
	Format   string `koanf:"format"`
	Keywords string `koanf:"keywords"`
	Flatten  bool   `koanf:"flatten"`
	Workers  int    `koanf:"workers"`
	Verbose  bool   `koanf:"verbose"`
}

// LoadConfig layers configuration from three sources in increasing
// precedence: built-in defaults, the YAML file at path if one exists, and
// W4SPRITE_* environment variables. Command line flags are layered on top
// by the caller.
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"output":   "",
		"format":   "hex",
		"keywords": "raw",
		"flatten":  false,
		"workers":  0,
		"verbose":  false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("w4sprite: defaults: %w", err)
	}

	if path == "" {
		path = DefaultConfigFile
	}

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("w4sprite: read config %s: %w", path, err)
		}
	}

	// Transform: W4SPRITE_FORMAT -> format
	if err := k.Load(env.Provider("W4SPRITE_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "W4SPRITE_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("w4sprite: environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("w4sprite: decode config: %w", err)
	}

	return &cfg, nil
}
