package workflows

import (
	"context"
	"os"
	"path/filepath"

	"github.com/AsilbekT/secman/internal/audit"
	"github.com/AsilbekT/secman/internal/configs"
	"github.com/AsilbekT/secman/internal/secrets"
)

// InitOptions configures the init workflow.
type InitOptions struct {
	// Dir is the project directory. Defaults to the current directory.
	Dir string

	// ProjectName overrides the project name recorded in the config.
	// Defaults to the directory name.
	ProjectName string

	// SecretsFile overrides the default secrets file name.
	SecretsFile string

	// KeyEnvName is recorded in the new file's key declaration line.
	// May be empty; set-master fills it in later.
	KeyEnvName string
}

// InitResult contains the outcome of an init operation.
type InitResult struct {
	ConfigPath  string
	SecretsFile string

	// FileExisted reports that the secrets file was already present and
	// was left untouched.
	FileExisted bool
}

// Init creates the project configuration and a fresh secrets file with the
// standard header block and a key declaration line. An existing secrets
// file is never overwritten. Returns ErrAlreadyInitialized when the
// project already has a config.
func Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	if opts.Dir == "" {
		opts.Dir = "."
	}

	cfg, err := configs.Init(opts.Dir, opts.ProjectName, opts.SecretsFile)
	if err != nil {
		return nil, err
	}

	secretsPath := cfg.Secrets.File
	if !filepath.IsAbs(secretsPath) {
		secretsPath = filepath.Join(opts.Dir, secretsPath)
	}

	result := &InitResult{
		ConfigPath:  filepath.Join(opts.Dir, configs.ConfigFileName),
		SecretsFile: secretsPath,
	}

	if _, err := os.Stat(secretsPath); err == nil {
		// An existing secrets file is fine; init only guarantees it exists.
		result.FileExisted = true
	} else if err := secrets.WriteNewFile(secretsPath, cfg.Secrets.KeyDeclaration, opts.KeyEnvName); err != nil {
		return nil, err
	}

	audit.Log(opts.Dir, audit.Entry{
		Operation: "init",
		File:      secretsPath,
	})

	return result, nil
}
