// Package config loads the CLI configuration from an optional YAML, JSON or
// TOML file and DOCFRAME_* environment variables.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config is the engine connection and CLI behaviour.
type Config struct {
	URL      string        `mapstructure:"url"`
	Token    string        `mapstructure:"token"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Format   string        `mapstructure:"format"`
	Output   string        `mapstructure:"output"`
	LogLevel string        `mapstructure:"log_level"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		URL:      "http://localhost:8080",
		Timeout:  60 * time.Second,
		Format:   "pdf",
		LogLevel: "info",
	}
}

// envKeys maps environment variables to config keys.
var envKeys = map[string]string{
	"DOCFRAME_URL":       "url",
	"DOCFRAME_TOKEN":     "token",
	"DOCFRAME_TIMEOUT":   "timeout",
	"DOCFRAME_FORMAT":    "format",
	"DOCFRAME_OUTPUT":    "output",
	"DOCFRAME_LOG_LEVEL": "log_level",
}

// Load reads path (YAML, or JSON by extension) and overlays the environment.
// A missing file is not an error; an empty path skips the file.
func Load(path string) (Config, error) {
	return load(path, os.LookupEnv)
}

func load(path string, lookup func(string) (string, bool)) (Config, error) {
	raw := map[string]any{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := unmarshal(path, data, &raw); err != nil {
				return Config{}, err
			}
		}
	}

	for env, key := range envKeys {
		if v, ok := lookup(env); ok && v != "" {
			raw[key] = v
		}
	}

	cfg := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Timeout <= 0 {
		return Config{}, fmt.Errorf("invalid config: timeout must be positive, got %s", cfg.Timeout)
	}
	return cfg, nil
}

func unmarshal(path string, data []byte, out *map[string]any) error {
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, out)
	case ".toml":
		err = toml.Unmarshal(data, out)
	default:
		err = yaml.Unmarshal(data, out)
	}
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	if *out == nil {
		*out = map[string]any{}
	}
	return nil
}
