package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Score store backends.
const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

type Config struct {
	Addr                   string
	DBPath                 string
	LogLevel               string
	ScoreStore             string
	RandomSeed             uint64
	ShutdownTimeoutSeconds int
	HistoryQueueSize       int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:                   envOr("ADDR", ":8080"),
		DBPath:                 envOr("DB_PATH", "file:braingym.db"),
		LogLevel:               strings.ToUpper(envOr("LOG_LEVEL", "INFO")),
		ScoreStore:             strings.ToLower(envOr("SCORE_STORE", StoreSQLite)),
		RandomSeed:             envUintOr("RANDOM_SEED", 0),
		ShutdownTimeoutSeconds: envIntOr("SHUTDOWN_TIMEOUT_SECONDS", 30),
		HistoryQueueSize:       envIntOr("HISTORY_QUEUE_SIZE", 64),
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Addr) == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	switch c.ScoreStore {
	case StoreSQLite:
		if strings.TrimSpace(c.DBPath) == "" {
			problems = append(problems, "DB_PATH cannot be empty")
		}
	case StoreMemory:
	default:
		problems = append(problems, fmt.Sprintf("SCORE_STORE must be %q or %q, got %q", StoreSQLite, StoreMemory, c.ScoreStore))
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR, got %q", c.LogLevel))
	}
	if c.ShutdownTimeoutSeconds <= 0 {
		problems = append(problems, "SHUTDOWN_TIMEOUT_SECONDS must be positive")
	}
	if c.HistoryQueueSize <= 0 {
		problems = append(problems, "HISTORY_QUEUE_SIZE must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ShutdownTimeout is the grace period for in-flight requests on shutdown.
func (c Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// Seed returns the configured random seed, or a time-derived one when unset.
func (c Config) Seed() uint64 {
	if c.RandomSeed != 0 {
		return c.RandomSeed
	}
	return uint64(time.Now().UnixNano())
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envUintOr(key string, def uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if u, err := strconv.ParseUint(v, 10, 64); err == nil {
			return u
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
