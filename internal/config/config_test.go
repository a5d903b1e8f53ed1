package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("should use defaults when the config file is missing", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "application.yaml"))

		assert.NoError(t, err)
		assert.Equal(t, ":5000", cfg.Server.Addr)
		assert.Equal(t, "./data", cfg.Storage.Dir)
		assert.Equal(t, "http://localhost:5000/api", cfg.Client.BaseURL)
	})

	t.Run("should load values from a yaml file", func(t *testing.T) {
		// given
		path := filepath.Join(t.TempDir(), "application.yaml")
		content := "server:\n  addr: \":8080\"\nstorage:\n  dir: \"/var/lib/financeflow\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		// when
		cfg, err := Load(path)

		// then
		assert.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Server.Addr)
		assert.Equal(t, "/var/lib/financeflow", cfg.Storage.Dir)
	})

	t.Run("should let environment variables override the file", func(t *testing.T) {
		// given
		path := filepath.Join(t.TempDir(), "application.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":8080\"\n"), 0o644))
		t.Setenv("FINANCEFLOW_SERVER_ADDR", ":9999")

		// when
		cfg, err := Load(path)

		// then
		assert.NoError(t, err)
		assert.Equal(t, ":9999", cfg.Server.Addr)
	})
}
