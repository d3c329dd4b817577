package workflows

import (
	"context"
	"fmt"

	"github.com/AsilbekT/secman/internal/audit"
	secerrors "github.com/AsilbekT/secman/internal/errors"
	"github.com/AsilbekT/secman/internal/secrets"
)

// SetMasterOptions configures the set-master workflow.
type SetMasterOptions struct {
	// EnvName is the environment variable name to record in the key
	// declaration line.
	EnvName string

	// FilePatterns specifies target secrets files. Globs are allowed.
	FilePatterns []string

	// Dir is the project directory. Defaults to the current directory.
	Dir string
}

// SetMasterResult contains the outcome of a set-master operation.
type SetMasterResult struct {
	// Updated lists files whose key declaration was rewritten.
	Updated []string

	// Missing lists files that have no key declaration line; those files
	// were left untouched. The underlying transform treats a missing
	// declaration as a no-op, so callers must check this.
	Missing []string
}

// SetMaster rewrites the key declaration line of the target files to name
// EnvName. Files without a declaration line are reported in
// Missing rather than silently ignored.
func SetMaster(ctx context.Context, opts SetMasterOptions) (*SetMasterResult, error) {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if !secrets.IsValidName(opts.EnvName) {
		return nil, fmt.Errorf("%w: %q is not a valid environment variable name",
			secerrors.ErrInvalidConfig, opts.EnvName)
	}

	cfg, err := resolveConfig(opts.Dir)
	if err != nil {
		return nil, err
	}

	files, err := resolveTargets(cfg, opts.Dir, opts.FilePatterns)
	if err != nil {
		return nil, err
	}

	result := &SetMasterResult{}
	for _, file := range files {
		raws, err := secrets.ReadLines(file)
		if err != nil {
			return nil, err
		}
		lines := secrets.ClassifyAll(raws, cfg.Secrets.KeyDeclaration)

		newLines, changed := secrets.SetKeyDeclaration(lines, cfg.Secrets.KeyDeclaration, opts.EnvName)
		if !changed {
			result.Missing = append(result.Missing, file)
			continue
		}

		if err := secrets.WriteLines(file, newLines); err != nil {
			return nil, err
		}
		result.Updated = append(result.Updated, file)

		audit.Log(opts.Dir, audit.Entry{
			Operation: "set-master",
			File:      file,
			KeyEnv:    opts.EnvName,
		})
	}

	return result, nil
}
