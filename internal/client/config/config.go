package config

import (
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/dmitrijs2005/wellbeinghub/internal/client/brand"
	"github.com/dmitrijs2005/wellbeinghub/internal/client/client"
)

// Session store backends.
const (
	StoreSQLite = client.StoreSQLite
	StoreMemory = client.StoreMemory
	StoreRedis  = client.StoreRedis
)

// Config holds runtime settings for the WellbeingHub CLI.
//
// An empty APIBaseURL is allowed: requests then go to root-relative paths,
// which fail at the transport level.
type Config struct {
	APIBaseURL     string `env:"API_BASE_URL, overwrite"`
	Brand          brand.Palette
	SessionStore   string        `env:"WB_SESSION_STORE, overwrite"`
	SessionDSN     string        `env:"WB_SESSION_DSN, overwrite"`
	RedisURL       string        `env:"WB_REDIS_URL, overwrite"`
	LogLevel       string        `env:"WB_LOG_LEVEL, overwrite"`
	RequestTimeout time.Duration `env:"WB_REQUEST_TIMEOUT, overwrite"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = ""
	c.Brand = brand.Defaults()
	c.SessionStore = StoreSQLite
	c.SessionDSN = "session.db"
	c.RedisURL = "redis://localhost:6379/0"
	c.LogLevel = "info"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, a JSON file (if present) and command-line flags (if
// present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg, envconfig.OsLookuper()); err != nil {
		panic(err)
	}
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
