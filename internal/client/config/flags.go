package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/wellbeinghub/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   API base URL
//	-s string   session store: sqlite, memory or redis
//	-d string   SQLite session file
//	-r string   Redis URL for the redis session store
//	-l string   log level
//	-t int      request timeout in seconds
//
// os.Args is filtered with flagx.FilterArgs so foreign flags such as -c are
// ignored.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-d", "-r", "-l", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	fs.StringVar(&cfg.SessionStore, "s", cfg.SessionStore, "session store (sqlite, memory, redis)")
	fs.StringVar(&cfg.SessionDSN, "d", cfg.SessionDSN, "SQLite session database file")
	fs.StringVar(&cfg.RedisURL, "r", cfg.RedisURL, "Redis URL for the redis session store")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Only an explicit -t overrides, so sub-second values from env or JSON survive.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
