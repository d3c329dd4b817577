package workflows

import (
	"context"
	"fmt"

	"github.com/AsilbekT/secman/internal/audit"
	secerrors "github.com/AsilbekT/secman/internal/errors"
	"github.com/AsilbekT/secman/internal/secrets"
)

// RemoveOptions configures the remove workflow.
type RemoveOptions struct {
	// Name is the secret to remove.
	Name string

	// FilePatterns specifies target secrets files. Globs are allowed.
	FilePatterns []string

	// Dir is the project directory. Defaults to the current directory.
	Dir string
}

// RemoveResult contains the outcome of a remove operation.
type RemoveResult struct {
	// Files lists the files the secret was removed from.
	Files []string
}

// Remove deletes the named secret's plain line and its encrypted companion
// from the target files. Other lines, including the key declaration, pass
// through unchanged. Returns ErrSecretNotFound when no target file declares
// the secret; files without it are left untouched.
func Remove(ctx context.Context, opts RemoveOptions) (*RemoveResult, error) {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if !secrets.IsValidName(opts.Name) {
		return nil, fmt.Errorf("%w: %q is not a valid secret name", secerrors.ErrSecretNotFound, opts.Name)
	}

	cfg, err := resolveConfig(opts.Dir)
	if err != nil {
		return nil, err
	}

	files, err := resolveTargets(cfg, opts.Dir, opts.FilePatterns)
	if err != nil {
		return nil, err
	}

	result := &RemoveResult{}
	for _, file := range files {
		raws, err := secrets.ReadLines(file)
		if err != nil {
			return nil, err
		}
		lines := secrets.ClassifyAll(raws, cfg.Secrets.KeyDeclaration)

		newLines, found := secrets.DeleteSecret(lines, opts.Name)
		if !found {
			continue
		}

		if err := secrets.WriteLines(file, newLines); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, file)

		audit.Log(opts.Dir, audit.Entry{
			Operation: "remove",
			File:      file,
			Secret:    opts.Name,
		})
	}

	if len(result.Files) == 0 {
		return nil, fmt.Errorf("%w: %s", secerrors.ErrSecretNotFound, opts.Name)
	}
	return result, nil
}
