package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// CacheBackend selects which internal/addrcache implementation cmd/server wires up.
type CacheBackend string

const (
	CacheBackendNone   CacheBackend = "none"
	CacheBackendMemory CacheBackend = "memory"
	CacheBackendLRU    CacheBackend = "lru"
	CacheBackendRedis  CacheBackend = "redis"
	CacheBackendMongo  CacheBackend = "mongo"
	CacheBackendHybrid CacheBackend = "hybrid"
)

type CacheConfig struct {
	Backend  CacheBackend  `yaml:"backend" json:"backend"`
	TTL      time.Duration `yaml:"ttl" json:"ttl"`
	Capacity int           `yaml:"capacity" json:"capacity"`
	RedisURL string        `yaml:"redis_url" json:"redis_url"`
	MongoURI string        `yaml:"mongo_uri" json:"mongo_uri"`
	MongoDB  string        `yaml:"mongo_db" json:"mongo_db"`
}

type ServiceConfig struct {
	Port     string      `yaml:"port" json:"port"`
	LogLevel string      `yaml:"log_level" json:"log_level"`
	Cache    CacheConfig `yaml:"cache" json:"cache"`
}

var C ServiceConfig

// Load populates the package-level config from a YAML file. Missing fields
// keep their zero value; cmd/server layers viper env overrides on top of it.
func Load(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, &C); err != nil {
		return err
	}
	if v := os.Getenv("CACHE_BACKEND"); v != "" {
		C.Cache.Backend = CacheBackend(v)
	}
	return nil
}

// RequestTimeout returns a fixed 1.5s budget for a cache round-trip to a
// network-attached backend (redis/mongo/hybrid). No caller in this
// repository applies it; parse requests run under the HTTP request's own
// context.
func RequestTimeout() time.Duration { return 1500 * time.Millisecond }
