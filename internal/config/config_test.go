package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFrom(t *testing.T, yaml string) *Config {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))
	t.Setenv("CONFIG_PATH", path)

	LoadConfig()
	return AppConfig
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

		LoadConfig()
		cfg := AppConfig

		assert.Equal(t, 5000, cfg.Server.Port)
		assert.Equal(t, "development", cfg.Server.Env)
		assert.Equal(t, 587, cfg.Email.SMTPPort)
		assert.Equal(t, "HR Bot", cfg.Email.FromName)
		assert.Equal(t, "local", cfg.Storage.Type)
		assert.Equal(t, "./uploads", cfg.Storage.BasePath)
		assert.Equal(t, int64(10*1024*1024), cfg.Upload.MaxSize)
	})

	t.Run("yaml values are read", func(t *testing.T) {
		cfg := loadFrom(t, `
server:
  port: 8080
  env: production
storage:
  base_path: /var/spool/hrmail
`)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "production", cfg.Server.Env)
		assert.Equal(t, "/var/spool/hrmail", cfg.Storage.BasePath)
	})

	t.Run("environment overrides yaml", func(t *testing.T) {
		t.Setenv("PORT", "9999")
		t.Setenv("SMTP_HOST", "smtp.example.com")
		t.Setenv("EMAIL_USER", "hr@example.com")
		t.Setenv("EMAIL_PASS", "app-password")

		cfg := loadFrom(t, "server:\n  port: 8080\n")

		assert.Equal(t, 9999, cfg.Server.Port)
		assert.Equal(t, "smtp.example.com", cfg.Email.SMTPHost)
		assert.Equal(t, "hr@example.com", cfg.Email.SMTPUsername)
		assert.Equal(t, "app-password", cfg.Email.SMTPPassword)
	})

	t.Run("relay user doubles as sender unless FROM_EMAIL is set", func(t *testing.T) {
		t.Setenv("EMAIL_USER", "hr@example.com")
		cfg := loadFrom(t, "")
		assert.Equal(t, "hr@example.com", cfg.Email.FromEmail)

		t.Setenv("FROM_EMAIL", "noreply@example.com")
		cfg = loadFrom(t, "")
		assert.Equal(t, "noreply@example.com", cfg.Email.FromEmail)
	})
}
