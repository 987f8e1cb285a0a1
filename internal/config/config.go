package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LogConfig controls where and how diagnostics are written. The game screen
// owns stdout, so console logs go to stderr and every sink is off by default.
type LogConfig struct {
	Level   string
	Format  string
	Console bool
	File    string
	Caller  bool
}

type AppConfig struct {
	Log LogConfig

	// MessagesDir holds optional YAML overrides for the message catalog.
	MessagesDir string
}

var logFormats = map[string]bool{"legacy": true, "json": true, "console": true}

// Load reads the CHESS_* environment variables. With none set the result
// keeps logging disabled and uses the embedded messages.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		Log: LogConfig{
			Level:  "info",
			Format: "legacy",
		},
	}

	if v := strings.TrimSpace(os.Getenv("CHESS_LOG_LEVEL")); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("CHESS_LOG_FORMAT")); v != "" {
		v = strings.ToLower(v)
		if !logFormats[v] {
			return nil, fmt.Errorf("CHESS_LOG_FORMAT: unsupported format %q", v)
		}
		cfg.Log.Format = v
	}
	if v := strings.TrimSpace(os.Getenv("CHESS_LOG_TO_CONSOLE")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Log.Console = b
		}
	}
	if v := strings.TrimSpace(os.Getenv("CHESS_LOG_CALLER")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Log.Caller = b
		}
	}
	cfg.Log.File = strings.TrimSpace(os.Getenv("CHESS_LOG_FILE"))
	cfg.MessagesDir = strings.TrimSpace(os.Getenv("CHESS_MESSAGES_DIR"))

	return cfg, nil
}
