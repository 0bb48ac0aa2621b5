package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	config, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "visa.db", config.Database)
	assert.Equal(t, []string{"USD", "EUR", "RON", "GBP", "CHF"}, config.Currencies)
}

func TestLoad_FromFile(t *testing.T) {
	configContent := `
database = "statements/cards.db"
currencies = ["USD", "EUR", "JPY"]
`

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.toml")

	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	// Load the config
	config, err := Load(configPath)
	require.NoError(t, err)

	// Verify config values
	assert.Equal(t, "statements/cards.db", config.Database)
	assert.Equal(t, []string{"USD", "EUR", "JPY"}, config.Currencies)
}

func TestLoad_EnvOverridesDefault(t *testing.T) {
	t.Setenv("VISA_DB_PATH", "/tmp/env-visa.db")

	config, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env-visa.db", config.Database)
}

func TestLoad_InvalidFile(t *testing.T) {
	config, err := Load("nonexistent.toml")
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read config file")
}
