package config

import (
	"testing"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "CATALOG_API_URL", "HANDOFF_BACKEND", "HANDOFF_TTL", "HANDOFF_SWEEP_INTERVAL", "NODE_ID", "LOG_LEVEL", "SECURE_COOKIES", "SQLITE_PATH"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "7070", cfg.Server.Port)
	require.False(t, cfg.Server.SecureCookies)
	require.Equal(t, DefaultCatalogURL, cfg.Catalog.BaseURL)
	require.Equal(t, BackendSQLite, cfg.Handoff.Backend)
	require.Equal(t, "database.db", cfg.Handoff.SQLitePath)
	require.Equal(t, 12*time.Hour, cfg.Handoff.TTL)
	require.Equal(t, time.Hour, cfg.Handoff.SweepInterval)
	require.Equal(t, int64(1), cfg.NodeID)
	require.Equal(t, log.INFO, cfg.LogLvl)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("CATALOG_API_URL", "http://localhost:5000")
	t.Setenv("HANDOFF_BACKEND", "S3")
	t.Setenv("HANDOFF_S3_BUCKET", "handoffs")
	t.Setenv("HANDOFF_TTL", "30m")
	t.Setenv("SECURE_COOKIES", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Server.Port)
	require.True(t, cfg.Server.SecureCookies)
	require.Equal(t, "http://localhost:5000", cfg.Catalog.BaseURL)
	require.Equal(t, BackendS3, cfg.Handoff.Backend)
	require.Equal(t, "handoffs", cfg.Handoff.S3Bucket)
	require.Equal(t, 30*time.Minute, cfg.Handoff.TTL)
	require.Equal(t, log.DEBUG, cfg.LogLvl)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"bad ttl":         {"HANDOFF_TTL": "soon"},
		"negative sweep":  {"HANDOFF_SWEEP_INTERVAL": "-1m"},
		"bad node":        {"NODE_ID": "one"},
		"bad level":       {"LOG_LEVEL": "LOUD"},
		"unknown backend": {"HANDOFF_BACKEND": "redis"},
		"s3 no bucket":    {"HANDOFF_BACKEND": "s3", "HANDOFF_S3_BUCKET": ""},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
		})
	}
}
