// Package config loads storefront configuration from an optional YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variable overrides, applied after the config file.
const (
	EnvStorePath     = "VENTASBRONCA_STORE_PATH"
	EnvCatalogPath   = "VENTASBRONCA_CATALOG_PATH"
	EnvWhatsAppPhone = "VENTASBRONCA_WHATSAPP_PHONE"
)

// Config holds the storefront settings.
type Config struct {
	// StorePath is the SQLite file backing the key-value store.
	StorePath string `yaml:"store_path"`
	// CatalogPath is the YAML product catalog.
	CatalogPath string `yaml:"catalog_path"`
	// WhatsAppPhone is the checkout recipient in international format
	// without the leading plus sign.
	WhatsAppPhone string `yaml:"whatsapp_phone"`
}

// Default returns the built-in configuration. The store lives under the
// user's home directory so the cart survives between runs.
func Default() Config {
	storePath := "ventasbronca.db"
	if home, err := os.UserHomeDir(); err == nil {
		storePath = filepath.Join(home, ".ventasbronca", "store.db")
	}
	return Config{
		StorePath:     storePath,
		CatalogPath:   "catalog.yaml",
		WhatsAppPhone: "56974161396",
	}
}

// Load builds the configuration: defaults, then the YAML file at path if it
// exists, then environment overrides. A missing file is not an error; a
// malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// fall through to defaults
		default:
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if v := os.Getenv(EnvStorePath); v != "" {
		cfg.StorePath = v
	}
	if v := os.Getenv(EnvCatalogPath); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv(EnvWhatsAppPhone); v != "" {
		cfg.WhatsAppPhone = v
	}

	return cfg, nil
}
