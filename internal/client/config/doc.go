// Package config loads runtime configuration for the WellbeingHub CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables: API_BASE_URL, BRAND_PRIMARY, BRAND_ACCENT_1,
//     BRAND_ACCENT_2, BRAND_ACCENT_3, BRAND_LINK, WB_SESSION_STORE,
//     WB_SESSION_DSN, WB_REDIS_URL, WB_LOG_LEVEL, WB_REQUEST_TIMEOUT.
//  3. Optional JSON file selected with -c or -config (or $WB_CONFIG).
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   API base URL
//	-s string   session store (sqlite, memory, redis)
//	-d string   SQLite session file
//	-r string   Redis URL
//	-l string   log level
//	-t int      request timeout (seconds)
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://api.example.org",
//	  "session_store": "sqlite",
//	  "session_dsn": "session.db",
//	  "redis_url": "redis://localhost:6379/0",
//	  "log_level": "info",
//	  "request_timeout": "10s",
//	  "brand": {"primary": "#00326a", "link": "#4a90e2"}
//	}
package config
