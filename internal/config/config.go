package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const DefaultConfigSubject = "firebase.config.get"

// DefaultDotenvFiles follows the Next.js lookup order; earlier files win.
var DefaultDotenvFiles = []string{".env.local", ".env"}

type Config struct {
	LogLevel    string
	HTTPAddr    string
	MetricsAddr string

	// NATSURL is optional; the config responder is disabled without it.
	NATSURL       string
	ConfigSubject string

	CredentialsPath   string
	CredentialsBase64 string
}

func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:          os.Getenv("LOG_LEVEL"),
		HTTPAddr:          os.Getenv("HTTP_ADDR"),
		MetricsAddr:       os.Getenv("METRICS_ADDR"),
		NATSURL:           os.Getenv("NATS_URL"),
		ConfigSubject:     os.Getenv("FIREBASE_CONFIG_SUBJECT"),
		CredentialsPath:   os.Getenv("FIREBASE_CREDENTIALS_PATH"),
		CredentialsBase64: os.Getenv("FIREBASE_CREDENTIALS_BASE64"),
	}
	if cfg.ConfigSubject == "" {
		cfg.ConfigSubject = DefaultConfigSubject
	}

	// Validation
	var missing []string
	if cfg.LogLevel == "" {
		missing = append(missing, "LOG_LEVEL")
	}
	if cfg.HTTPAddr == "" {
		missing = append(missing, "HTTP_ADDR")
	}
	if cfg.MetricsAddr == "" {
		missing = append(missing, "METRICS_ADDR")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required env vars: %v", missing)
	}

	return cfg, nil
}

// LoadDotenv loads the given dotenv files, or DefaultDotenvFiles when none are
// given. Missing files are skipped and variables already set are kept.
func LoadDotenv(files ...string) error {
	if len(files) == 0 {
		files = DefaultDotenvFiles
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}
