package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadPath_Defaults(t *testing.T) {
	path := writeConfig(t, "session:\n  path: /tmp/eventms/session.json\n")

	var cfg Config
	require.NoError(t, cleanenvport.LoadPath(path, &cfg))

	assert.Equal(t, "http://localhost:8000", cfg.Backend.BaseURL)
	assert.Equal(t, "slog", cfg.Logger.Engine)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "dev", cfg.Logger.Env)
	assert.Equal(t, ":8000", cfg.DevServer.Addr)
	assert.Equal(t, "debug", cfg.DevServer.GinMode)
}

func TestLoadPath_LoggerEnvIndependentOfGinMode(t *testing.T) {
	path := writeConfig(t, `
logger:
  env: prod
devserver:
  gin_mode: release
session:
  path: /tmp/eventms/session.json
`)

	var cfg Config
	require.NoError(t, cleanenvport.LoadPath(path, &cfg))

	assert.Equal(t, "prod", cfg.Logger.Env)
	assert.Equal(t, "release", cfg.DevServer.GinMode)
}

func TestLoggerConfig_LogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  logger.Level
	}{
		{"debug", logger.DebugLevel},
		{"info", logger.InfoLevel},
		{"warn", logger.WarnLevel},
		{"error", logger.ErrorLevel},
		{"bogus", logger.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			c := LoggerConfig{Level: tt.level}
			assert.Equal(t, tt.want, c.LogLevel())
		})
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := PostgresConfig{
		Host:     "db",
		Port:     5433,
		User:     "u",
		Password: "p",
		Database: "eventms",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5433 user=u password=p dbname=eventms sslmode=disable", p.DSN())
}
