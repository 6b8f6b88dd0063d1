package loader

import (
	"errors"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries the loader settings read from the environment. BaseURL
// selects HTTP fetching when set; otherwise word lists are read from
// DataDir.
type Config struct {
	ManifestPath string        `env:"NAMEKIT_MANIFEST" envDefault:"manifest.yaml"`
	DataDir      string        `env:"NAMEKIT_DATA_DIR" envDefault:"."`
	BaseURL      string        `env:"NAMEKIT_BASE_URL"`
	HTTPTimeout  time.Duration `env:"NAMEKIT_HTTP_TIMEOUT" envDefault:"10s"`
}

var defaultEnvLoaded sync.Once

// LoadConfig parses the loader configuration from environment variables,
// loading a .env file first if one exists.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}
