package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/wellbeinghub/internal/client/brand"
	"github.com/dmitrijs2005/wellbeinghub/internal/flagx"
	"github.com/dmitrijs2005/wellbeinghub/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// use timex.Duration so they may be written as "5s" or integer nanoseconds.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	Brand          brand.Palette  `json:"brand"`
	SessionStore   string         `json:"session_store"`
	SessionDSN     string         `json:"session_dsn"`
	RedisURL       string         `json:"redis_url"`
	LogLevel       string         `json:"log_level"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJson overlays cfg with the JSON file named by -c/-config (or
// $WB_CONFIG). Keys missing from the file keep their current values.
// Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	path := flagx.ConfigFile(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.SessionStore, jc.SessionStore)
	setString(&cfg.SessionDSN, jc.SessionDSN)
	setString(&cfg.RedisURL, jc.RedisURL)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.Brand.Primary, jc.Brand.Primary)
	setString(&cfg.Brand.Accent1, jc.Brand.Accent1)
	setString(&cfg.Brand.Accent2, jc.Brand.Accent2)
	setString(&cfg.Brand.Accent3, jc.Brand.Accent3)
	setString(&cfg.Brand.Link, jc.Brand.Link)
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
