package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, ":8080", cfg.Address())
	assert.Equal(t, StorageDriverFile, cfg.Storage.Driver)
	assert.Equal(t, "dogLicenseApplications", cfg.Storage.Key)
	assert.Equal(t, "dog_license_applications", cfg.DynamoDB.Table)
	assert.Equal(t, 2*time.Second, cfg.Wizard.RedirectDelay)
	assert.Equal(t, 500*time.Millisecond, cfg.Wizard.LookupDelay)
	assert.Equal(t, "America/New_York", cfg.Location().String())
	assert.False(t, cfg.IsProduction())
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "redis")
	t.Setenv("REDIS_ADDRESS", "cache:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("TRACKING_LOOKUP_DELAY", "0s")
	t.Setenv("WIZARD_REDIRECT_DELAY", "3s")
	t.Setenv("DISPLAY_TIMEZONE", "UTC")

	cfg, err := LoadFrom(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, StorageDriverRedis, cfg.Storage.Driver)
	assert.Equal(t, "cache:6379", cfg.Redis.Address)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, time.Duration(0), cfg.Wizard.LookupDelay)
	assert.Equal(t, 3*time.Second, cfg.Wizard.RedirectDelay)
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestLoadFrom_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "storage:\n  driver: memory\n  key: custom\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := LoadFrom(viper.New(), dir)
	require.NoError(t, err)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "custom", cfg.Storage.Key)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFrom_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown driver":    {"STORAGE_DRIVER": "postgres"},
		"bad timezone":      {"DISPLAY_TIMEZONE": "Mars/Olympus"},
		"port out of range": {"APP_PORT": "70000"},
		"negative delay":    {"TRACKING_LOOKUP_DELAY": "-1s"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := LoadFrom(viper.New(), t.TempDir())
			assert.Error(t, err)
		})
	}
}
