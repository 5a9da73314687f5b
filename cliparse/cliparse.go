package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string

	// Azure Translator credentials. Optional: the translator client
	// refuses calls with a typed error when any of them is empty.
	TranslatorKey      string
	TranslatorEndpoint string
	TranslatorRegion   string
}

// ParseFlags reads configuration from CLI flags with environment
// variable fallbacks.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("plm-translator", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or sqlite file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.TranslatorKey, "translator-key", "", "Azure Translator subscription key (prefer env)")
	fs.StringVar(&cfg.TranslatorEndpoint, "translator-endpoint", "", "Azure Translator endpoint (prefer env)")
	fs.StringVar(&cfg.TranslatorRegion, "translator-region", "", "Azure Translator region (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 5000 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.TranslatorKey == "" {
		cfg.TranslatorKey = os.Getenv("TRANSLATOR_KEY")
	}
	if cfg.TranslatorEndpoint == "" {
		cfg.TranslatorEndpoint = os.Getenv("TRANSLATOR_ENDPOINT")
	}
	if cfg.TranslatorRegion == "" {
		cfg.TranslatorRegion = os.Getenv("TRANSLATOR_REGION")
	}

	return cfg, nil
}
