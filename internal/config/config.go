// Package config loads service settings from a .env file, the environment and command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSupabase = "supabase"
)

// Config holds every service setting
type Config struct {
	Port         string
	StoreDriver  string
	DatabaseDSN  string
	SupabaseURL  string
	SupabaseKey  string
	CaptionDelay time.Duration
	GeminiAPIKey string
	GeminiModel  string
	LogLevel     string
	IdentityFile string
	SeedMemes    bool
}

// Load reads .env (if present), then the environment, then args. Later sources win.
func Load(args []string) (*Config, error) {
	_ = godotenv.Load()

	delay, err := time.ParseDuration(getenv("CAPTION_DELAY", "1.5s"))
	if err != nil {
		return nil, fmt.Errorf("config: CAPTION_DELAY: %w", err)
	}
	driver := strings.ToLower(getenv("STORE_DRIVER", DriverMemory))
	seed, err := strconv.ParseBool(getenv("SEED_MEMES", strconv.FormatBool(driver == DriverMemory)))
	if err != nil {
		return nil, fmt.Errorf("config: SEED_MEMES: %w", err)
	}

	cfg := &Config{
		Port:         getenv("PORT", ":8080"),
		StoreDriver:  driver,
		DatabaseDSN:  getenv("DATABASE_DSN", ""),
		SupabaseURL:  getenv("SUPABASE_URL", ""),
		SupabaseKey:  getenv("SUPABASE_KEY", ""),
		CaptionDelay: delay,
		GeminiAPIKey: getenv("GEMINI_API_KEY", ""),
		GeminiModel:  getenv("GEMINI_MODEL", ""),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		IdentityFile: getenv("IDENTITY_FILE", ""),
		SeedMemes:    seed,
	}

	fs := flag.NewFlagSet("meme-market", flag.ContinueOnError)
	fs.StringVar(&cfg.Port, "a", cfg.Port, "listen address")
	fs.StringVar(&cfg.StoreDriver, "store", cfg.StoreDriver, "store driver: memory, postgres or supabase")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "postgres dsn")
	fs.DurationVar(&cfg.CaptionDelay, "caption-delay", cfg.CaptionDelay, "simulated captioning latency")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.IdentityFile, "identities", cfg.IdentityFile, "path of the identity JSON file")
	fs.BoolVar(&cfg.SeedMemes, "seed", cfg.SeedMemes, "load starter memes")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.StoreDriver = strings.ToLower(cfg.StoreDriver)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the selected driver has what it needs
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMemory:
	case DriverPostgres:
		if c.DatabaseDSN == "" {
			return errors.New("config: DATABASE_DSN is required for the postgres store")
		}
	case DriverSupabase:
		if c.SupabaseURL == "" || c.SupabaseKey == "" {
			return errors.New("config: SUPABASE_URL and SUPABASE_KEY are required for the supabase store")
		}
	default:
		return fmt.Errorf("config: unknown store driver %q", c.StoreDriver)
	}
	if c.CaptionDelay < 0 {
		return errors.New("config: caption delay must not be negative")
	}
	if c.Port == "" {
		return errors.New("config: listen address is empty")
	}
	return nil
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
