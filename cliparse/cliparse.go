package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	IPHashSalt     string
	SendGridAPIKey string
	SendGridFrom   string
}

// DeliveryConfigured reports whether outbound report email can be sent.
func (c Config) DeliveryConfigured() bool {
	return c.SendGridAPIKey != ""
}

// ParseFlags builds the server configuration from CLI flags with
// environment fallback. A .env file in the working directory is loaded
// first if present.
func ParseFlags(args []string) (Config, error) {
	// Missing .env is fine; explicit env vars still apply.
	_ = godotenv.Load()

	var cfg Config

	fs := flag.NewFlagSet("stability-server", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.IPHashSalt, "ip-salt", "", "IP hash salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8344 // default
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
			cfg.DatabaseType = "postgres"
		}
	}
	if cfg.DatabaseType != "postgres" && cfg.DatabaseType != "sqlite" {
		return Config{}, errors.New("DATABASE_TYPE must be postgres or sqlite")
	}

	if cfg.IPHashSalt == "" {
		cfg.IPHashSalt = os.Getenv("IP_HASH_SALT")
	}
	if cfg.IPHashSalt == "" {
		return Config{}, errors.New("IP_HASH_SALT required")
	}

	// Report delivery is optional: without an API key the contact endpoint
	// still saves contact info but cannot email the report.
	cfg.SendGridAPIKey = os.Getenv("SENDGRID_API_KEY")
	cfg.SendGridFrom = os.Getenv("SENDGRID_FROM_EMAIL")
	if cfg.SendGridFrom == "" {
		cfg.SendGridFrom = "info@n-blk.com"
	}

	return cfg, nil
}
