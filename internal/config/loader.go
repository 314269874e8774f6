package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if QUADRO_CONFIG is set
//  3. env (prefix QUADRO_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("QUADRO_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// QUADRO_LOG_LEVEL -> log_level, QUADRO_REDIS_URL -> redis_url, ...
	envProvider := env.Provider("QUADRO_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "quadro_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.Storage != StorageMemory && cfg.Storage != StorageRedis {
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
	if cfg.DefaultSeats <= 0 {
		return nil, fmt.Errorf("default_seats must be positive, got %d", cfg.DefaultSeats)
	}
	return &cfg, nil
}
