package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

const defaultEnvPath = "./configs/.env"

type Config struct {
}

// New loads ./configs/.env once. Variables already present in the environment win.
func New() *Config {
	once.Do(func() {
		instance = Load(defaultEnvPath)
	})
	return instance
}

// Load reads the given dotenv files without the process-wide singleton. Missing files are skipped.
func Load(paths ...string) *Config {
	for _, p := range paths {
		err := godotenv.Load(p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				slog.Warn("env file not found, using process environment", slog.String("path", p))
				continue
			}
			slog.Error("loading envs error", slog.String("path", p), slog.String("error", err.Error()))
		}
	}
	return &Config{}
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) GetDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration in env, using default", slog.String("key", key), slog.String("value", v))
		return fallback
	}
	return d
}

// GetLocation resolves an IANA zone name such as "Africa/Nairobi". Empty or unknown names fall back to time.Local.
func (c *Config) GetLocation(key string) *time.Location {
	name := os.Getenv(key)
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("unknown timezone in env, using local", slog.String("key", key), slog.String("value", name))
		return time.Local
	}
	return loc
}

func (c *Config) GetLogLevel(key string) slog.Level {
	switch strings.ToLower(os.Getenv(key)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
