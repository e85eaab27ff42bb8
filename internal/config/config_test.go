package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
firebase:
  project_id: test-project
`)
	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "firebase", cfg.Auth.Mode)
	assert.Equal(t, "mock", cfg.Storage.Type)
	assert.Equal(t, "http://localhost:8080", cfg.Storage.BaseURL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "0 0 2 * * *", cfg.Scheduler.MarkOverdueReservations)
}

func TestLoad_RequiresProjectID(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_LocalAuthRequiresSecret(t *testing.T) {
	path := writeConfig(t, `
firebase:
  project_id: test-project
auth:
  mode: local
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("LOG_LEVEL", "debug")

	path := writeConfig(t, `
firebase:
  project_id: test-project
server:
  port: 8080
`)
	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ":9999", cfg.GetServerAddress())
}
