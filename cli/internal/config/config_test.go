package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/classql/cli/internal/config"
)

// isolateHome keeps a stray ~/.classql.yaml from leaking into the test.
func isolateHome(t *testing.T) {
	t.Helper()
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	t.Setenv("HOME", t.TempDir())
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolateHome(t)
	t.Setenv("DATABASE_URL", "")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "classql.db", cfg.DatabasePath)
	assert.Equal(t, "sqlite", cfg.Provider)
	assert.Equal(t, "0.0.0.0:3000", cfg.ListenAddr)
	assert.Empty(t, cfg.DatabaseURL)
	assert.False(t, cfg.Telemetry)
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	isolateHome(t)
	t.Setenv("DATABASE_URL", "")

	path := filepath.Join(t.TempDir(), "custom.yaml")
	yaml := "database_path: explicit.db\nlisten_addr: 127.0.0.1:9000\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	config.SetConfigFile(path)
	t.Cleanup(func() { config.SetConfigFile("") })

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "explicit.db", cfg.DatabasePath)
	assert.Equal(t, "127.0.0.1:9000", cfg.ListenAddr)
	assert.Equal(t, "sqlite", cfg.Provider)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	isolateHome(t)
	t.Setenv("CLASSQL_DATABASE_PATH", "demo.db")
	t.Setenv("CLASSQL_PROVIDER", "postgresql")
	t.Setenv("CLASSQL_LISTEN_ADDR", "127.0.0.1:8080")
	t.Setenv("CLASSQL_TELEMETRY", "true")
	t.Setenv("DATABASE_URL", "postgres://db.internal/classql")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "demo.db", cfg.DatabasePath)
	assert.Equal(t, "postgresql", cfg.Provider)
	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
	assert.True(t, cfg.Telemetry)
	assert.Equal(t, "postgres://db.internal/classql", cfg.DatabaseURL)
}
