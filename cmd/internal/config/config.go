package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
)

const (
	BackendSQLite = "sqlite"
	BackendS3     = "s3"

	DefaultCatalogURL = "https://businesses-industry-api-manus.onrender.com"
)

type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Handoff HandoffConfig
	NodeID  int64
	LogLvl  log.Lvl
}

type ServerConfig struct {
	Port          string
	SecureCookies bool
}

type CatalogConfig struct {
	BaseURL string
}

type HandoffConfig struct {
	Backend       string
	SQLitePath    string
	TTL           time.Duration
	SweepInterval time.Duration
	S3Bucket      string
	S3Region      string
}

func Load() (*Config, error) {
	ttl, err := time.ParseDuration(getEnv("HANDOFF_TTL", "12h"))
	if err != nil {
		return nil, fmt.Errorf("invalid HANDOFF_TTL: %w", err)
	}
	sweep, err := time.ParseDuration(getEnv("HANDOFF_SWEEP_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid HANDOFF_SWEEP_INTERVAL: %w", err)
	}
	if ttl <= 0 || sweep <= 0 {
		return nil, fmt.Errorf("HANDOFF_TTL and HANDOFF_SWEEP_INTERVAL must be positive")
	}

	nodeID, err := strconv.ParseInt(getEnv("NODE_ID", "1"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid NODE_ID: %w", err)
	}

	lvl, err := parseLevel(getEnv("LOG_LEVEL", "INFO"))
	if err != nil {
		return nil, err
	}

	handoff := HandoffConfig{
		Backend:       strings.ToLower(getEnv("HANDOFF_BACKEND", BackendSQLite)),
		SQLitePath:    getEnv("SQLITE_PATH", "database.db"),
		TTL:           ttl,
		SweepInterval: sweep,
		S3Bucket:      getEnv("HANDOFF_S3_BUCKET", ""),
		S3Region:      getEnv("AWS_S3_REGION", "us-east-2"),
	}

	switch handoff.Backend {
	case BackendSQLite:
	case BackendS3:
		if handoff.S3Bucket == "" {
			return nil, fmt.Errorf("HANDOFF_S3_BUCKET is required when HANDOFF_BACKEND=s3")
		}
	default:
		return nil, fmt.Errorf("invalid HANDOFF_BACKEND %q, expected sqlite or s3", handoff.Backend)
	}

	return &Config{
		Server: ServerConfig{
			Port:          getEnv("PORT", "7070"),
			SecureCookies: getBoolEnv("SECURE_COOKIES", false),
		},
		Catalog: CatalogConfig{
			BaseURL: getEnv("CATALOG_API_URL", DefaultCatalogURL),
		},
		Handoff: handoff,
		NodeID:  nodeID,
		LogLvl:  lvl,
	}, nil
}

func parseLevel(s string) (log.Lvl, error) {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return log.DEBUG, nil
	case "INFO":
		return log.INFO, nil
	case "WARN":
		return log.WARN, nil
	case "ERROR":
		return log.ERROR, nil
	case "OFF":
		return log.OFF, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
