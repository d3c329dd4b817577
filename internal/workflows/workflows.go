package workflows

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AsilbekT/secman/internal/configs"
	secerrors "github.com/AsilbekT/secman/internal/errors"
	"github.com/AsilbekT/secman/internal/secrets"
)

// Env is the environment-style lookup used to resolve master key material.
// Workflows receive it as a collaborator rather than reading the process
// environment directly, so tests can inject their own.
type Env func(name string) string

// OSEnv resolves names against the process environment.
func OSEnv(name string) string {
	return os.Getenv(name)
}

// resolveConfig loads the project config from dir, falling back to defaults
// when the project was never initialized.
func resolveConfig(dir string) (*configs.Config, error) {
	cfg, err := configs.LoadOrDefault(dir)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveTargets maps file patterns (or the configured default) to the
// secrets files an operation will run over.
func resolveTargets(cfg *configs.Config, dir string, patterns []string) ([]string, error) {
	defaultFile := cfg.Secrets.File
	if !filepath.IsAbs(defaultFile) {
		defaultFile = filepath.Join(dir, defaultFile)
	}
	return secrets.ResolveFiles(patterns, defaultFile)
}

// resolveMasterKey reads the key declaration from the classified lines and
// resolves the actual key material through env. It fails before any file
// mutation when the declaration is missing or the variable is unset.
func resolveMasterKey(lines []secrets.Line, env Env) (key, envName string, err error) {
	envName, ok := secrets.KeyEnvName(lines)
	if !ok || envName == "" {
		return "", "", secerrors.ErrNoKeyDeclaration
	}
	key = env(envName)
	if key == "" {
		return "", "", fmt.Errorf("%w: %s", secerrors.ErrKeyUnset, envName)
	}
	return key, envName, nil
}
