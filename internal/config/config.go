// Package config reads runtime settings from the environment.
//
//	PORT               HTTP listen port                    (default 8080)
//	LOG_LEVEL          logrus level name                   (default info)
//	LOG_FORMAT         "json" or "text"                    (default text)
//	PATHERY_MAX_CELLS  largest grid the service accepts    (default 1048576)
//	PATHERY_TIMEOUT    per-request search deadline         (default 2s)
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrInvalid is wrapped by every configuration error.
var ErrInvalid = errors.New("config: invalid value")

// Defaults.
const (
	DefaultPort     = "8080"
	DefaultMaxCells = 1 << 20
	DefaultTimeout  = 2 * time.Second
)

// Log configures the logger.
type Log struct {
	Level  string
	Format string
}

// JSON reports whether JSON output was requested.
func (l Log) JSON() bool { return strings.EqualFold(l.Format, "json") }

// Config is the full runtime configuration.
type Config struct {
	Port     string
	Log      Log
	MaxCells int
	Timeout  time.Duration
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Port:     DefaultPort,
		Log:      Log{Level: "info", Format: "text"},
		MaxCells: DefaultMaxCells,
		Timeout:  DefaultTimeout,
	}
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup reads the configuration through lookup, which has the
// signature of os.LookupEnv. Unset or empty variables keep their defaults.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get("PORT"); ok {
		cfg.Port = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := get("LOG_FORMAT"); ok {
		cfg.Log.Format = strings.ToLower(v)
	}
	if v, ok := get("PATHERY_MAX_CELLS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("%w: PATHERY_MAX_CELLS=%q", ErrInvalid, v)
		}
		cfg.MaxCells = n
	}
	if v, ok := get("PATHERY_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("%w: PATHERY_TIMEOUT=%q", ErrInvalid, v)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}
