package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App:    AppConfig{Environment: "development"},
		Logger: LoggerConfig{Level: "info"},
		Data:   DataConfig{Path: "/some/path", Backend: BackendBadger},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_AllEnvironments(t *testing.T) {
	tests := []struct {
		env   string
		valid bool
	}{
		{"development", true},
		{"staging", true},
		{"production", true},
		{"test", false},
		{"", false},
		{"DEVELOPMENT", false}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := validConfig()
			cfg.App.Environment = tt.env
			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_Backends(t *testing.T) {
	tests := []struct {
		backend string
		valid   bool
	}{
		{BackendBadger, true},
		{BackendSQLite, true},
		{"postgres", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			cfg := validConfig()
			cfg.Data.Backend = tt.backend
			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestSnapshotPath_PerBackend(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, filepath.Join("/some/path", "snapshots"), cfg.SnapshotPath())

	cfg.Data.Backend = BackendSQLite
	assert.Equal(t, filepath.Join("/some/path", "snapshots.db"), cfg.SnapshotPath())
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := expandPath("~/boards/data", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "boards", "data"), got)

	got, err = expandPath("", "/fallback")
	require.NoError(t, err)
	assert.Equal(t, "/fallback", got)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("# comment\nTEST_CFG_KEY=\"quoted value\"\n\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("TEST_CFG_KEY") })

	require.NoError(t, loadEnvFile(path))
	assert.Equal(t, "quoted value", os.Getenv("TEST_CFG_KEY"))

	// Existing env vars win over the file.
	require.NoError(t, os.WriteFile(path, []byte("TEST_CFG_KEY=other\n"), 0o600))
	require.NoError(t, loadEnvFile(path))
	assert.Equal(t, "quoted value", os.Getenv("TEST_CFG_KEY"))
}
