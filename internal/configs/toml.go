package configs

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// saveConfig writes cfg to path as TOML, creating the parent directory if
// needed.
func saveConfig(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return toml.NewEncoder(file).Encode(cfg)
}

// loadConfig reads the TOML file at path into cfg.
func loadConfig(path string, cfg *Config) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}
