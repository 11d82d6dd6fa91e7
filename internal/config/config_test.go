package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
jwt:
  secret: "file-secret"
logging:
  level: "debug"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// untouched fields keep their defaults
	assert.Equal(t, "24h", cfg.JWT.TokenExpiration)
	assert.Equal(t, "localhost", cfg.Database.Host)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
jwt:
  secret: "file-secret"
database:
  host: "file-host"
`)

	t.Setenv("JWT_KEY", "env-secret")
	t.Setenv("DB_HOST", "env-host")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, "env-host", cfg.Database.Host)
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "8080"
`)

	_, err := LoadConfig(path)
	assert.Error(t, err, "missing JWT secret must fail validation")
}

func TestLoadConfigRejectsBadDuration(t *testing.T) {
	path := writeConfigFile(t, `
jwt:
  secret: "s"
  token_expiration: "one day"
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestGetPostgresConnectionString(t *testing.T) {
	path := writeConfigFile(t, `
jwt:
  secret: "s"
database:
  host: "db.internal"
  port: "5433"
  user: "svc"
  password: "pw"
  dbname: "staffhub"
  sslmode: "require"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	conn := cfg.GetPostgresConnectionString()
	assert.Contains(t, conn, "db.internal")
	assert.Contains(t, conn, "5433")
	assert.Contains(t, conn, "sslmode=require")
}
