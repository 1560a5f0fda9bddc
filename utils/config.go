package utils

import (
	"fmt"
	"os"
	"strings"
)

// Config is the single source of truth for connection and app settings.
// It is built once in main and handed to the service constructors; nothing
// reads connection env vars anywhere else.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	ListenAddr     string
	AllowedOrigins string

	// EventName feeds the export filename slug; optional.
	EventName string

	// R2 archive settings; empty R2Bucket disables archiving to R2 and
	// uploads are kept in the local uploads directory instead.
	R2AccountID       string
	R2AccessKeyID     string
	R2AccessKeySecret string
	R2Bucket          string
}

// ConfigFromEnv reads the configuration from environment variables.
func ConfigFromEnv() (Config, error) {
	var c Config
	c.DBHost = strings.TrimSpace(os.Getenv("DB_HOST"))
	c.DBPort = strings.TrimSpace(os.Getenv("DB_PORT"))
	c.DBUser = strings.TrimSpace(os.Getenv("DB_USER"))
	c.DBPassword = os.Getenv("DB_PASSWORD")
	c.DBName = strings.TrimSpace(os.Getenv("DB_NAME"))

	if c.DBPort == "" {
		c.DBPort = "5432"
	}

	c.ListenAddr = strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if c.ListenAddr == "" {
		c.ListenAddr = ":10000"
	}

	c.AllowedOrigins = strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS"))
	if c.AllowedOrigins == "" {
		c.AllowedOrigins = "http://localhost:3000"
	}

	c.EventName = strings.TrimSpace(os.Getenv("EVENT_NAME"))

	c.R2AccountID = strings.TrimSpace(os.Getenv("CLOUDFLARE_ACCOUNT_ID"))
	c.R2AccessKeyID = strings.TrimSpace(os.Getenv("R2_ACCESS_KEY_ID"))
	c.R2AccessKeySecret = os.Getenv("R2_ACCESS_KEY_SECRET")
	c.R2Bucket = strings.TrimSpace(os.Getenv("R2_BUCKET_NAME"))

	if c.DBHost == "" {
		return c, fmt.Errorf("DB_HOST is empty")
	}
	if c.DBUser == "" {
		return c, fmt.Errorf("DB_USER is empty")
	}
	if c.DBName == "" {
		return c, fmt.Errorf("DB_NAME is empty")
	}

	return c, nil
}

// R2Enabled reports whether a bucket is configured for archiving uploads.
func (c Config) R2Enabled() bool {
	return c.R2Bucket != ""
}

// DSN renders the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}
