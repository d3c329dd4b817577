package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	secerrors "github.com/AsilbekT/secman/internal/errors"

	"github.com/google/uuid"
)

const (
	// ConfigFileName is the per-project configuration file.
	ConfigFileName = ".secman.toml"

	// DefaultSecretsFile is the target file used when the config and the
	// --file flag are both absent.
	DefaultSecretsFile = "project_secrets.env"

	// DefaultKeyDeclaration is the reserved variable name whose line in the
	// secrets file names the master key environment variable.
	DefaultKeyDeclaration = "MASTER_KEY_ENV"
)

type Config struct {
	Project Project `toml:"project"`
	Secrets Secrets `toml:"secrets"`
}

type Project struct {
	Name string `toml:"name"`
	UUID string `toml:"project_uuid"`
}

type Secrets struct {
	// File is the default secrets file, relative to the config directory.
	File string `toml:"file"`

	// KeyDeclaration is the reserved name of the key declaration line.
	KeyDeclaration string `toml:"key_declaration"`
}

var declNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Default returns the configuration used when no .secman.toml exists.
func Default() *Config {
	return &Config{
		Secrets: Secrets{
			File:           DefaultSecretsFile,
			KeyDeclaration: DefaultKeyDeclaration,
		},
	}
}

// Load reads and validates the project configuration from dir.
// Returns ErrConfigNotFound when no config file exists there.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", secerrors.ErrConfigNotFound, path)
	}

	cfg := &Config{}
	if err := loadConfig(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", secerrors.ErrInvalidConfig, err)
	}

	// Fill defaults for omitted fields before validating.
	if cfg.Secrets.File == "" {
		cfg.Secrets.File = DefaultSecretsFile
	}
	if cfg.Secrets.KeyDeclaration == "" {
		cfg.Secrets.KeyDeclaration = DefaultKeyDeclaration
	}

	if !declNameRe.MatchString(cfg.Secrets.KeyDeclaration) {
		return nil, fmt.Errorf("%w: key_declaration %q is not a valid identifier",
			secerrors.ErrInvalidConfig, cfg.Secrets.KeyDeclaration)
	}

	return cfg, nil
}

// LoadOrDefault returns the project configuration, falling back to defaults
// when no config file exists. Invalid configs still fail.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if err != nil {
		if errors.Is(err, secerrors.ErrConfigNotFound) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Init creates a new project configuration in dir.
// Returns ErrAlreadyInitialized when a config file already exists.
func Init(dir, projectName, secretsFile string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("%w: %s", secerrors.ErrAlreadyInitialized, path)
	}

	if projectName == "" {
		projectName = filepath.Base(dir)
	}
	if secretsFile == "" {
		secretsFile = DefaultSecretsFile
	}

	cfg := &Config{
		Project: Project{
			Name: projectName,
			UUID: uuid.New().String(),
		},
		Secrets: Secrets{
			File:           secretsFile,
			KeyDeclaration: DefaultKeyDeclaration,
		},
	}

	if err := saveConfig(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return cfg, nil
}
