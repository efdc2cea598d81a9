package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvStorePath, "")
	t.Setenv(EnvCatalogPath, "")
	t.Setenv(EnvWhatsAppPhone, "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "catalog.yaml", cfg.CatalogPath)
	assert.Equal(t, "56974161396", cfg.WhatsAppPhone)
	assert.NotEmpty(t, cfg.StorePath)
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().WhatsAppPhone, cfg.WhatsAppPhone)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store_path: /tmp/cart.db\nwhatsapp_phone: \"56911111111\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/cart.db", cfg.StorePath)
	assert.Equal(t, "56911111111", cfg.WhatsAppPhone)
	assert.Equal(t, "catalog.yaml", cfg.CatalogPath)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog_path: from-file.yaml\n"), 0o644))

	t.Setenv(EnvCatalogPath, "from-env.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.yaml", cfg.CatalogPath)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store_path: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
