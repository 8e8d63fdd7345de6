// Package config loads server settings from the environment, with an
// optional .env file for local development.
package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Config holds every setting the server reads at startup. All keys use
// the PORTAL_ prefix.
type Config struct {
	Addr       string // PORTAL_ADDR — listen address
	Env        string // PORTAL_ENV — "development" or "production"
	DBPath     string // PORTAL_DB_PATH — sqlite database file
	CSRFKey    string // PORTAL_CSRF_KEY — 32-byte hex key for CSRF tokens
	PdfEngine  string // PORTAL_PDF_ENGINE — "fpdf" or "off"
	ResendKey  string // PORTAL_RESEND_KEY — empty disables real delivery
	EmailFrom  string // PORTAL_EMAIL_FROM
	EmailReply string // PORTAL_EMAIL_REPLY_TO
}

// Load reads configuration from a .env file (if present) and the
// environment. Missing keys fall back to development defaults.
func Load() *Config {
	if err := godotenv.Load(".env"); err == nil {
		slog.Info("config_dotenv_loaded")
	}

	return &Config{
		Addr:       envOrDefault("PORTAL_ADDR", ":8080"),
		Env:        envOrDefault("PORTAL_ENV", "development"),
		DBPath:     envOrDefault("PORTAL_DB_PATH", "portal.db"),
		CSRFKey:    os.Getenv("PORTAL_CSRF_KEY"),
		PdfEngine:  envOrDefault("PORTAL_PDF_ENGINE", "fpdf"),
		ResendKey:  os.Getenv("PORTAL_RESEND_KEY"),
		EmailFrom:  envOrDefault("PORTAL_EMAIL_FROM", "Excel Courses <noreply@excelcourses.nz>"),
		EmailReply: envOrDefault("PORTAL_EMAIL_REPLY_TO", "support@excelcourses.nz"),
	}
}

// IsProduction reports whether the server runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
