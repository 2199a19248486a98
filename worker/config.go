package worker

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the worker's environment-driven configuration, generalizing
// the teacher's hand-assembled ScryballConfig/ClientOptions into an
// env-tagged struct (the pattern used throughout the pack's service
// examples).
type Config struct {
	CorpusIndexURL  string   `env:"CORPUS_INDEX_URL"`
	CorpusChunkURLs []string `env:"CORPUS_CHUNK_URLS" envSeparator:","`
	VolatileDataURL string   `env:"VOLATILE_DATA_URL"`
	CacheCapacity   int      `env:"CACHE_CAPACITY" envDefault:"64"`
	HTTPUserAgent   string   `env:"HTTP_USER_AGENT" envDefault:"cardbinder-worker/1.0"`
}

// LoadConfig parses Config from the process environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing worker config: %w", err)
	}
	return cfg, nil
}
