// Package config defines process configuration and its loading.
package config

// Config contains process configuration
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Storage selects the persistence backend: memory or redis.
	Storage string `koanf:"storage"`

	// RedisURL is the connection URL used when Storage is redis.
	RedisURL string `koanf:"redis_url"`

	// RedisPoolSize bounds the redis connection pool.
	RedisPoolSize int `koanf:"redis_pool_size"`

	// AuditMaxEntries caps the persisted management log.
	AuditMaxEntries int `koanf:"audit_max_entries"`

	// DefaultSeats is the seat count used when creating a room without
	// an explicit capacity.
	DefaultSeats int `koanf:"default_seats"`

	// Bootstrap seeds the predefined director and manager accounts on
	// first run.
	Bootstrap bool `koanf:"bootstrap"`
}

// Storage backend names
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

// New returns a Config populated with defaults
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Storage:         StorageMemory,
		RedisURL:        "redis://localhost:6379",
		RedisPoolSize:   10,
		AuditMaxEntries: 10_000,
		DefaultSeats:    6,
		Bootstrap:       true,
	}
}
